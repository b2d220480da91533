// Package split divides (multi)polygons into polygons with a limited number
// of vertices.
//
// Each polygon is split by dividing its bounding box into quadrants at the
// centroid, and then recursing on the intersection of each quadrant with the
// polygon, until the pieces are of the desired complexity.
package split

import (
	"github.com/pkg/errors"

	"github.com/omniscale/polysplit/geom/geos"
	"github.com/omniscale/polysplit/log"
)

// Engine is the set of geometry operations the Splitter needs.
// *geos.Geos implements Engine.
type Engine interface {
	Type(geom *geos.Geom) string
	IsEmpty(geom *geos.Geom) bool
	IsValid(geom *geos.Geom) bool
	IsSimple(geom *geos.Geom) bool
	Geoms(geom *geos.Geom) []*geos.Geom
	NumExteriorPoints(geom *geos.Geom) (int, error)
	Clone(geom *geos.Geom) *geos.Geom
	Buffer(geom *geos.Geom, size float64) *geos.Geom
	Centroid(geom *geos.Geom) (geos.Point, error)
	Bounds(geom *geos.Geom) geos.Bounds
	BoundsPolygon(bounds geos.Bounds) *geos.Geom
	Intersection(a, b *geos.Geom) *geos.Geom
	Destroy(geom *geos.Geom)
}

const (
	// MinVertices is the smallest threshold that allows any piece at all:
	// a closed triangle ring has four points.
	MinVertices = 4
	// DefaultMaxDepth limits the recursion for pathological input.
	// 50 levels of quadrants are far below any useful coordinate precision.
	DefaultMaxDepth = 50

	// Clipping a triangle or a quadrilateral with an axis aligned rectangle
	// returns polygons with the same or more points. Pieces of these are not
	// split any further.
	quadrilateralPoints = 5
)

type kind int

const (
	kindEmpty kind = iota
	kindPolygon
	kindMultiPolygon
	kindCollection
	kindOther
)

func classify(e Engine, geom *geos.Geom) kind {
	if e.IsEmpty(geom) {
		return kindEmpty
	}
	switch e.Type(geom) {
	case "Polygon":
		return kindPolygon
	case "MultiPolygon":
		return kindMultiPolygon
	case "GeometryCollection":
		return kindCollection
	default:
		return kindOther
	}
}

type Splitter struct {
	// MaxVertices is the maximum number of exterior ring points of each piece.
	MaxVertices int
	// MaxDepth is the maximum number of quadrant subdivisions. Polygons that are
	// still too large at this depth are returned as they are.
	MaxDepth int

	e Engine
}

func New(e Engine, maxVertices int) (*Splitter, error) {
	if maxVertices < MinVertices {
		return nil, errors.Errorf("max vertices needs to be at least %d, got %d", MinVertices, maxVertices)
	}
	return &Splitter{
		MaxVertices: maxVertices,
		MaxDepth:    DefaultMaxDepth,
		e:           e,
	}, nil
}

// Split returns the pieces of geom. MultiPolygons are divided into their
// polygons first and the pieces are returned in the order of the polygons.
// Empty geometries and geometries other than (multi)polygons return no pieces.
// Invalid polygons are repaired with a zero buffer before they are split.
//
// All returned pieces are new geometries owned by the caller.
func (s *Splitter) Split(geom *geos.Geom) ([]*geos.Geom, error) {
	if geom == nil {
		log.Printf("[warn] nil geometry passed to splitter")
		return nil, nil
	}
	var pieces []*geos.Geom
	switch classify(s.e, geom) {
	case kindPolygon, kindMultiPolygon:
	default:
		return nil, nil
	}
	if err := s.split(&pieces, geom, 0); err != nil {
		for _, p := range pieces {
			s.e.Destroy(p)
		}
		return nil, err
	}
	return pieces, nil
}

func (s *Splitter) split(pieces *[]*geos.Geom, geom *geos.Geom, depth int) error {
	switch classify(s.e, geom) {
	case kindMultiPolygon, kindCollection:
		// collections only appear as the result of an intersection,
		// they are filtered in Split
		for _, part := range s.e.Geoms(geom) {
			if err := s.split(pieces, part, depth); err != nil {
				return err
			}
		}
		return nil
	case kindPolygon:
		return s.splitPolygon(pieces, geom, depth)
	case kindEmpty, kindOther:
		return nil
	default:
		panic("unknown geometry kind")
	}
}

func (s *Splitter) splitPolygon(pieces *[]*geos.Geom, polygon *geos.Geom, depth int) error {
	numPoints, err := s.e.NumExteriorPoints(polygon)
	if err != nil {
		return errors.Wrap(err, "counting polygon points")
	}
	if numPoints <= s.MaxVertices {
		return s.appendClone(pieces, polygon)
	}
	if depth >= s.MaxDepth {
		log.Printf("[warn] reached max split depth %d, keeping piece with %d points", s.MaxDepth, numPoints)
		return s.appendClone(pieces, polygon)
	}

	if !s.e.IsValid(polygon) || !s.e.IsSimple(polygon) {
		repaired := s.e.Buffer(polygon, 0)
		if repaired == nil {
			return errors.New("repairing invalid polygon with buffer")
		}
		defer s.e.Destroy(repaired)
		if s.e.IsEmpty(repaired) {
			log.Printf("[debug] invalid polygon with %d points repaired to empty geometry", numPoints)
			return nil
		}
		polygon = repaired
	}

	centroid, err := s.e.Centroid(polygon)
	if err != nil {
		return errors.Wrap(err, "calculating split point")
	}
	bounds := s.e.Bounds(polygon)
	if bounds == geos.NilBounds {
		return errors.New("couldn't create bounds for polygon")
	}

	for _, quadrant := range quadrants(bounds, centroid) {
		mask := s.e.BoundsPolygon(quadrant)
		if mask == nil {
			return errors.New("couldn't create quadrant polygon")
		}
		part := s.e.Intersection(mask, polygon)
		s.e.Destroy(mask)
		if part == nil {
			return errors.Errorf("couldn't create intersection with quadrant %v", quadrant)
		}
		if numPoints <= quadrilateralPoints {
			err = s.collect(pieces, part)
		} else {
			err = s.split(pieces, part, depth+1)
		}
		s.e.Destroy(part)
		if err != nil {
			return err
		}
	}
	return nil
}

// quadrants divides bounds at pivot. The order is not relevant for the result.
func quadrants(bounds geos.Bounds, pivot geos.Point) [4]geos.Bounds {
	return [4]geos.Bounds{
		{bounds.MinX, bounds.MinY, pivot.X, pivot.Y},
		{bounds.MinX, pivot.Y, pivot.X, bounds.MaxY},
		{pivot.X, bounds.MinY, bounds.MaxX, pivot.Y},
		{pivot.X, pivot.Y, bounds.MaxX, bounds.MaxY},
	}
}

// collect appends all polygons of geom without splitting them.
func (s *Splitter) collect(pieces *[]*geos.Geom, geom *geos.Geom) error {
	switch classify(s.e, geom) {
	case kindMultiPolygon, kindCollection:
		for _, part := range s.e.Geoms(geom) {
			if err := s.collect(pieces, part); err != nil {
				return err
			}
		}
	case kindPolygon:
		return s.appendClone(pieces, geom)
	}
	return nil
}

func (s *Splitter) appendClone(pieces *[]*geos.Geom, polygon *geos.Geom) error {
	piece := s.e.Clone(polygon)
	if piece == nil {
		return errors.New("couldn't clone polygon")
	}
	*pieces = append(*pieces, piece)
	return nil
}
