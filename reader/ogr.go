package reader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/omniscale/polysplit/geom/ogr"
)

type OGRReader struct {
	ds      *ogr.DataSource
	layer   *ogr.Layer
	idField int
	count   int
}

// OpenOGR opens any vector source supported by GDAL/OGR.
func OpenOGR(name string, opts Options) (*OGRReader, error) {
	ds, err := ogr.Open(name)
	if err != nil {
		return nil, err
	}

	var layer *ogr.Layer
	if opts.Layer != "" {
		layer, err = ds.LayerByName(opts.Layer)
	} else {
		layer, err = ds.Layer()
	}
	if err != nil {
		ds.Close()
		return nil, errors.Wrap(err, "can't find input layer")
	}

	idField := -1
	if opts.IDField != "" {
		idField, err = layer.IntegerField(opts.IDField)
		if err != nil {
			ds.Close()
			return nil, err
		}
	}
	layer.ResetReading()

	return &OGRReader{
		ds:      ds,
		layer:   layer,
		idField: idField,
		count:   layer.FeatureCount(),
	}, nil
}

func (r *OGRReader) Next() (Record, error) {
	f, ok := r.layer.NextFeature(r.idField)
	if !ok {
		return Record{}, io.EOF
	}
	return Record{ID: f.ID, Wkb: f.Wkb}, nil
}

func (r *OGRReader) Count() int {
	return r.count
}

func (r *OGRReader) Close() error {
	r.ds.Close()
	return nil
}
