// Package reader provides the records of polygon data sources.
package reader

import (
	"path/filepath"
	"strings"
)

// Record is a single feature of a data source.
type Record struct {
	// ID is the value of the ID field or the feature id of the source.
	ID int64
	// Wkb is the geometry of the record, nil if the record has no geometry.
	Wkb []byte
}

// Reader returns all records of a data source. Next returns io.EOF after the
// last record.
type Reader interface {
	Next() (Record, error)
	// Count returns the number of records, or -1 if it is not known.
	Count() int
	Close() error
}

type Options struct {
	// Layer is the name of the input layer. The first layer is used if empty.
	Layer string
	// IDField is the name of the integer field that is used as ID of each
	// record. The feature id is used if empty.
	IDField string
}

// Open opens name as GeoJSON if it ends with .geojson or .json, or with
// OGR otherwise.
func Open(name string, opts Options) (Reader, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".geojson", ".json":
		r, err := OpenGeoJSON(name, opts)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		r, err := OpenOGR(name, opts)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}
