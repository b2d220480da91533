package ogr

/*
#cgo LDFLAGS: -lgdal
#include <stdlib.h>
#include "gdal.h"
#include "ogr_api.h"
#include "cpl_error.h"
#include "cpl_conv.h"
*/
import "C"
import (
	"unsafe"
)

func init() {
	C.GDALAllRegister()
}

type DataSource struct {
	v C.GDALDatasetH
}

type Layer struct {
	v C.OGRLayerH
}

type OgrError struct {
	message string
}

func (e *OgrError) Error() string {
	return e.message
}

func lastOgrError(fallback string) error {
	msg := C.CPLGetLastErrorMsg()
	if msg == nil {
		return &OgrError{fallback}
	}
	str := C.GoString(msg)
	if str == "" {
		return &OgrError{fallback}
	}
	return &OgrError{fallback + ": " + str}
}

// Open opens an existing vector data source read-only.
func Open(name string) (*DataSource, error) {
	namec := C.CString(name)
	defer C.free(unsafe.Pointer(namec))
	ds := C.GDALOpenEx(namec, C.GDAL_OF_VECTOR|C.GDAL_OF_READONLY, nil, nil, nil)
	if ds == nil {
		return nil, lastOgrError("failed to open " + name)
	}
	return &DataSource{ds}, nil
}

// Create creates a new vector data source with the named driver,
// e.g. "ESRI Shapefile" or "GPKG".
func Create(driverName, name string) (*DataSource, error) {
	driverc := C.CString(driverName)
	defer C.free(unsafe.Pointer(driverc))
	driver := C.GDALGetDriverByName(driverc)
	if driver == nil {
		return nil, &OgrError{driverName + " driver not available"}
	}

	namec := C.CString(name)
	defer C.free(unsafe.Pointer(namec))
	ds := C.GDALCreate(driver, namec, 0, 0, 0, C.GDT_Unknown, nil)
	if ds == nil {
		return nil, lastOgrError("creation of output file " + name + " failed")
	}
	return &DataSource{ds}, nil
}

func (ds *DataSource) Close() {
	if ds.v != nil {
		C.GDALClose(ds.v)
		ds.v = nil
	}
}

func (ds *DataSource) Layer() (*Layer, error) {
	layer := C.GDALDatasetGetLayer(ds.v, 0)
	if layer == nil {
		return nil, lastOgrError("failed to get layer 0")
	}
	return &Layer{layer}, nil
}

func (ds *DataSource) LayerByName(name string) (*Layer, error) {
	namec := C.CString(name)
	defer C.free(unsafe.Pointer(namec))
	layer := C.GDALDatasetGetLayerByName(ds.v, namec)
	if layer == nil {
		return nil, lastOgrError("can't find layer " + name)
	}
	return &Layer{layer}, nil
}

// CreatePolygonLayer creates a polygon layer with a single integer field.
func (ds *DataSource) CreatePolygonLayer(name, idField string) (*Layer, error) {
	namec := C.CString(name)
	defer C.free(unsafe.Pointer(namec))
	layer := C.GDALDatasetCreateLayer(ds.v, namec, nil, C.wkbPolygon, nil)
	if layer == nil {
		return nil, lastOgrError("layer creation failed")
	}

	fieldc := C.CString(idField)
	defer C.free(unsafe.Pointer(fieldc))
	field := C.OGR_Fld_Create(fieldc, C.OFTInteger64)
	defer C.OGR_Fld_Destroy(field)
	if C.OGR_L_CreateField(layer, field, 1) != C.OGRERR_NONE {
		return nil, lastOgrError("creating " + idField + " field failed")
	}
	return &Layer{layer}, nil
}

// FeatureCount returns the number of features, or -1 if the count is not
// available without scanning the whole layer.
func (layer *Layer) FeatureCount() int {
	return int(C.OGR_L_GetFeatureCount(layer.v, 0))
}

// IntegerField returns the index of the named field. It returns an error if
// the field does not exist or if it is not an integer field.
func (layer *Layer) IntegerField(name string) (int, error) {
	namec := C.CString(name)
	defer C.free(unsafe.Pointer(namec))
	layerDef := C.OGR_L_GetLayerDefn(layer.v)
	idx := C.OGR_FD_GetFieldIndex(layerDef, namec)
	if idx < 0 {
		return -1, &OgrError{"can't find ID field " + name}
	}
	fieldDef := C.OGR_FD_GetFieldDefn(layerDef, idx)
	switch C.OGR_Fld_GetType(fieldDef) {
	case C.OFTInteger, C.OFTInteger64:
		return int(idx), nil
	default:
		return -1, &OgrError{"ID field " + name + " isn't integer type"}
	}
}

type Feature struct {
	// ID is the value of the ID field, or the feature id if no field is used.
	ID int64
	// Wkb is nil for features without geometry.
	Wkb []byte
}

func (layer *Layer) ResetReading() {
	C.OGR_L_ResetReading(layer.v)
}

// NextFeature returns the next feature of the layer, or false at the end of
// the layer. idField is the index of the integer ID field, or -1.
func (layer *Layer) NextFeature(idField int) (Feature, bool) {
	feature := C.OGR_L_GetNextFeature(layer.v)
	if feature == nil {
		return Feature{}, false
	}
	defer C.OGR_F_Destroy(feature)

	f := Feature{}
	if idField >= 0 {
		f.ID = int64(C.OGR_F_GetFieldAsInteger64(feature, C.int(idField)))
	} else {
		f.ID = int64(C.OGR_F_GetFID(feature))
	}

	geom := C.OGR_F_GetGeometryRef(feature)
	if geom != nil {
		size := C.OGR_G_WkbSize(geom)
		if size > 0 {
			buf := make([]byte, size)
			C.OGR_G_ExportToWkb(geom, C.wkbNDR, (*C.uchar)(&buf[0]))
			f.Wkb = buf
		}
	}
	return f, true
}

// WriteFeature writes a new feature with the WKB geometry and the id as
// first field.
func (layer *Layer) WriteFeature(id int64, wkb []byte) error {
	if len(wkb) == 0 {
		return &OgrError{"empty geometry"}
	}
	var geom C.OGRGeometryH
	if C.OGR_G_CreateFromWkb(unsafe.Pointer(&wkb[0]), nil, &geom, C.int(len(wkb))) != C.OGRERR_NONE {
		return lastOgrError("failed to parse WKB")
	}

	feature := C.OGR_F_Create(C.OGR_L_GetLayerDefn(layer.v))
	defer C.OGR_F_Destroy(feature)
	C.OGR_F_SetFieldInteger64(feature, 0, C.GIntBig(id))
	// feature takes ownership of geom
	C.OGR_F_SetGeometryDirectly(feature, geom)

	if C.OGR_L_CreateFeature(layer.v, feature) != C.OGRERR_NONE {
		return lastOgrError("failed to create feature in output")
	}
	return nil
}
