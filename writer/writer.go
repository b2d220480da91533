// Package writer stores the split polygons.
package writer

import (
	"path/filepath"
	"strings"

	"github.com/omniscale/polysplit/database/postgis"
)

// Writer stores polygon features with an integer id.
type Writer interface {
	// Write stores the WKB polygon with the id.
	Write(id int64, wkb []byte) error
	// Close flushes all written features.
	Close() error
}

const (
	DriverGeoJSON = "geojson"
	DriverPostGIS = "postgis"
	// DefaultDriver is the default OGR driver.
	DefaultDriver  = "ESRI Shapefile"
	DefaultIDField = "id"
)

type Options struct {
	// Layer is the name of the output layer or table.
	Layer string
	// IDField is the name of the integer ID field, DefaultIDField if empty.
	IDField string
	// Schema is the database schema for PostGIS.
	Schema string
	// Srid of the PostGIS geometry column.
	Srid int
}

func (o Options) idField() string {
	if o.IDField == "" {
		return DefaultIDField
	}
	return o.IDField
}

// layer returns the layer name, or the base name of dest without extension.
func (o Options) layer(dest string) string {
	if o.Layer != "" {
		return o.Layer
	}
	base := filepath.Base(dest)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Open creates a new writer. driver is DriverGeoJSON, DriverPostGIS or the
// name of an OGR driver. dest is a file name or the PostgreSQL connection
// for PostGIS.
func Open(driver, dest string, opts Options) (Writer, error) {
	switch strings.ToLower(driver) {
	case DriverGeoJSON:
		w, err := CreateGeoJSON(dest, opts)
		if err != nil {
			return nil, err
		}
		return w, nil
	case DriverPostGIS:
		layer := opts.Layer
		if layer == "" {
			layer = "polysplit"
		}
		pg, err := postgis.Open(dest, postgis.TableSpec{
			Schema:  opts.Schema,
			Name:    layer,
			IDField: opts.idField(),
			Srid:    opts.Srid,
		})
		if err != nil {
			return nil, err
		}
		return pg, nil
	default:
		w, err := CreateOGR(driver, dest, opts)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}
