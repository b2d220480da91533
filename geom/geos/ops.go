package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"

func (g *Geos) Contains(a, b *Geom) bool {
	result := C.GEOSContains_r(g.v, a.v, b.v)
	if result == 1 {
		return true
	}
	// result == 2 -> exception (already logged to console)
	return false
}

func (g *Geos) Intersection(a, b *Geom) *Geom {
	result := C.GEOSIntersection_r(g.v, a.v, b.v)
	if result == nil {
		return nil
	}
	geom := &Geom{result}
	return geom
}

// Buffer returns a new buffered geometry. A size of 0 is commonly used to
// repair self-intersecting polygons.
func (g *Geos) Buffer(geom *Geom, size float64) *Geom {
	buffered := C.GEOSBuffer_r(g.v, geom.v, C.double(size), 50)
	if buffered == nil {
		return nil
	}
	return &Geom{buffered}
}

// Centroid returns the center of mass of geom.
func (g *Geos) Centroid(geom *Geom) (Point, error) {
	centroid := C.GEOSGetCentroid_r(g.v, geom.v)
	if centroid == nil {
		return Point{}, Error("unable to calculate centroid")
	}
	defer C.GEOSGeom_destroy_r(g.v, centroid)
	if C.GEOSisEmpty_r(g.v, centroid) != 0 {
		return Point{}, Error("centroid of empty geometry")
	}
	var x, y C.double
	if C.GEOSGeomGetX_r(g.v, centroid, &x) == 0 ||
		C.GEOSGeomGetY_r(g.v, centroid, &y) == 0 {
		return Point{}, Error("unable to read centroid coordinates")
	}
	return Point{float64(x), float64(y)}, nil
}
