package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"

type CoordSeq struct {
	v *C.GEOSCoordSequence
}

func (this *Geos) CreateCoordSeq(size, dim uint32) (*CoordSeq, error) {
	result := C.GEOSCoordSeq_create_r(this.v, C.uint(size), C.uint(dim))
	if result == nil {
		return nil, CreateError("could not create CoordSeq")
	}
	return &CoordSeq{result}, nil
}

func (this *CoordSeq) SetXY(handle *Geos, i uint32, x, y float64) error {
	if C.GEOSCoordSeq_setX_r(handle.v, this.v, C.uint(i), C.double(x)) == 0 {
		return Error("unable to SetX")
	}
	if C.GEOSCoordSeq_setY_r(handle.v, this.v, C.uint(i), C.double(y)) == 0 {
		return Error("unable to SetY")
	}
	return nil
}

// AsLinearRing creates a LinearRing. The ring takes ownership of the
// CoordSeq, do not destroy it afterwards.
func (this *CoordSeq) AsLinearRing(handle *Geos) (*Geom, error) {
	ring := C.GEOSGeom_createLinearRing_r(handle.v, this.v)
	if ring == nil {
		return nil, CreateError("unable to create LinearRing")
	}
	return &Geom{ring}, nil
}

func (this *Geos) DestroyCoordSeq(coordSeq *CoordSeq) {
	if coordSeq.v != nil {
		C.GEOSCoordSeq_destroy_r(this.v, coordSeq.v)
		coordSeq.v = nil
	} else {
		panic("double free?")
	}
}

// Polygon creates a polygon without holes from a closed coordinate list
// (first point equals last point).
func (this *Geos) Polygon(coords []Point) (*Geom, error) {
	if len(coords) < 4 {
		return nil, CreateError("polygon ring needs at least four points")
	}
	if coords[0] != coords[len(coords)-1] {
		return nil, CreateError("polygon ring not closed")
	}
	coordSeq, err := this.CreateCoordSeq(uint32(len(coords)), 2)
	if err != nil {
		return nil, err
	}
	for i, c := range coords {
		if err := coordSeq.SetXY(this, uint32(i), c.X, c.Y); err != nil {
			this.DestroyCoordSeq(coordSeq)
			return nil, err
		}
	}
	ring, err := coordSeq.AsLinearRing(this)
	if err != nil {
		this.DestroyCoordSeq(coordSeq)
		return nil, err
	}
	polygon := C.GEOSGeom_createPolygon_r(this.v, ring.v, nil, 0)
	if polygon == nil {
		this.Destroy(ring)
		return nil, CreateError("unable to create Polygon")
	}
	return &Geom{polygon}, nil
}

// BoundsPolygon returns a rectangular polygon for the bounds.
func (this *Geos) BoundsPolygon(bounds Bounds) *Geom {
	geom, err := this.Polygon([]Point{
		{bounds.MinX, bounds.MinY},
		{bounds.MinX, bounds.MaxY},
		{bounds.MaxX, bounds.MaxY},
		{bounds.MaxX, bounds.MinY},
		{bounds.MinX, bounds.MinY},
	})
	if err != nil {
		return nil
	}
	return geom
}

// ExteriorCoords returns the points of the exterior ring of a polygon.
func (this *Geos) ExteriorCoords(geom *Geom) ([]Point, error) {
	ring := C.GEOSGetExteriorRing_r(this.v, geom.v)
	if ring == nil {
		return nil, Error("unable to get exterior ring")
	}
	cs := C.GEOSGeom_getCoordSeq_r(this.v, ring)
	if cs == nil {
		return nil, Error("unable to get coord sequence")
	}
	var size C.uint
	if C.GEOSCoordSeq_getSize_r(this.v, cs, &size) == 0 {
		return nil, Error("unable to get coord sequence size")
	}
	coords := make([]Point, int(size))
	var x, y C.double
	for i := 0; i < int(size); i++ {
		if C.GEOSCoordSeq_getX_r(this.v, cs, C.uint(i), &x) == 0 ||
			C.GEOSCoordSeq_getY_r(this.v, cs, C.uint(i), &y) == 0 {
			return nil, Error("unable to read coordinate")
		}
		coords[i] = Point{float64(x), float64(y)}
	}
	return coords, nil
}
