package writer

import (
	"github.com/omniscale/polysplit/geom/ogr"
)

type OGRWriter struct {
	ds    *ogr.DataSource
	layer *ogr.Layer
}

// CreateOGR creates dest with the OGR driver and a single polygon layer.
func CreateOGR(driver, dest string, opts Options) (*OGRWriter, error) {
	if driver == "" {
		driver = DefaultDriver
	}
	ds, err := ogr.Create(driver, dest)
	if err != nil {
		return nil, err
	}
	layer, err := ds.CreatePolygonLayer(opts.layer(dest), opts.idField())
	if err != nil {
		ds.Close()
		return nil, err
	}
	return &OGRWriter{ds: ds, layer: layer}, nil
}

func (w *OGRWriter) Write(id int64, wkb []byte) error {
	return w.layer.WriteFeature(id, wkb)
}

func (w *OGRWriter) Close() error {
	w.ds.Close()
	return nil
}
