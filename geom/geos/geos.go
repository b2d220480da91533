package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>

extern GEOSContextHandle_t polysplitInitGEOS();
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/omniscale/polysplit/log"
)

// GEOS reports errors for invalid input (e.g. self-intersections found
// during intersection) that the splitter handles itself.
//
//export goLogGeosMessage
func goLogGeosMessage(isError C.int, msg *C.char) {
	if isError != 0 {
		log.Printf("[info] GEOS: %s", C.GoString(msg))
	} else {
		log.Printf("[debug] GEOS: %s", C.GoString(msg))
	}
}

// Geos wraps a GEOS context handle. A handle must not be shared between
// goroutines, create one with NewGeos for each.
type Geos struct {
	v C.GEOSContextHandle_t
}

type Geom struct {
	v *C.GEOSGeometry
}

type CreateError string
type Error string

func (e Error) Error() string {
	return string(e)
}

func (e CreateError) Error() string {
	return string(e)
}

func NewGeos() *Geos {
	geos := &Geos{}
	geos.v = C.polysplitInitGEOS()
	return geos
}

func (this *Geos) Finish() {
	if this.v != nil {
		C.finishGEOS_r(this.v)
		this.v = nil
	}
}

type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

var NilBounds = Bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

type Point struct {
	X float64
	Y float64
}

// Type returns the GEOS type name of geom, e.g. Polygon or MultiPolygon.
func (this *Geos) Type(geom *Geom) string {
	geomType := C.GEOSGeomType_r(this.v, geom.v)
	if geomType == nil {
		return "Unknown"
	}
	defer C.GEOSFree_r(this.v, unsafe.Pointer(geomType))
	return C.GoString(geomType)
}

func (this *Geos) IsEmpty(geom *Geom) bool {
	// 2 -> exception (already logged to console)
	return C.GEOSisEmpty_r(this.v, geom.v) == 1
}

func (this *Geos) IsValid(geom *Geom) bool {
	return C.GEOSisValid_r(this.v, geom.v) == 1
}

func (this *Geos) IsSimple(geom *Geom) bool {
	return C.GEOSisSimple_r(this.v, geom.v) == 1
}

func (this *Geos) NumGeoms(geom *Geom) int {
	n := C.GEOSGetNumGeometries_r(this.v, geom.v)
	if n == -1 {
		return 0
	}
	return int(n)
}

// Geoms returns the parts of a multi geometry or collection. The parts are
// owned by geom and become invalid when geom is destroyed.
func (this *Geos) Geoms(geom *Geom) []*Geom {
	n := this.NumGeoms(geom)
	if n == 0 {
		return nil
	}
	result := make([]*Geom, 0, n)
	for i := 0; i < n; i++ {
		part := C.GEOSGetGeometryN_r(this.v, geom.v, C.int(i))
		if part == nil {
			return nil
		}
		result = append(result, &Geom{part})
	}
	return result
}

// NumExteriorPoints returns the number of points of the exterior ring of a
// polygon, including the closing point.
func (this *Geos) NumExteriorPoints(geom *Geom) (int, error) {
	ring := C.GEOSGetExteriorRing_r(this.v, geom.v)
	if ring == nil {
		return 0, Error("unable to get exterior ring")
	}
	n := C.GEOSGeomGetNumPoints_r(this.v, ring)
	if n == -1 {
		return 0, Error("unable to count exterior ring points")
	}
	return int(n), nil
}

func (this *Geos) Clone(geom *Geom) *Geom {
	result := C.GEOSGeom_clone_r(this.v, geom.v)
	if result == nil {
		return nil
	}
	return &Geom{result}
}

func (this *Geos) Area(geom *Geom) float64 {
	var area C.double
	if ret := C.GEOSArea_r(this.v, geom.v, &area); ret == 1 {
		return float64(area)
	}
	return 0
}

func (this *Geos) Bounds(geom *Geom) Bounds {
	if this.IsEmpty(geom) {
		return NilBounds
	}
	var minx, miny, maxx, maxy C.double
	if C.GEOSGeom_getXMin_r(this.v, geom.v, &minx) == 0 ||
		C.GEOSGeom_getYMin_r(this.v, geom.v, &miny) == 0 ||
		C.GEOSGeom_getXMax_r(this.v, geom.v, &maxx) == 0 ||
		C.GEOSGeom_getYMax_r(this.v, geom.v, &maxy) == 0 {
		return NilBounds
	}
	return Bounds{float64(minx), float64(miny), float64(maxx), float64(maxy)}
}

func (this *Geos) Equals(a, b *Geom) bool {
	return C.GEOSEquals_r(this.v, a.v, b.v) == 1
}

func (this *Geos) Destroy(geom *Geom) {
	if geom.v != nil {
		C.GEOSGeom_destroy_r(this.v, geom.v)
		geom.v = nil
	} else {
		log.Printf("[warn] double free of GEOS geometry")
	}
}
