package reader

import (
	"io"
	"io/ioutil"
	"math"

	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// GeoJSONReader reads all features of a GeoJSON FeatureCollection.
// The whole collection is loaded on open.
type GeoJSONReader struct {
	features []*geojson.Feature
	idField  string
	pos      int
}

func OpenGeoJSON(name string, opts Options) (*GeoJSONReader, error) {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	return NewGeoJSON(data, opts)
}

// NewGeoJSON reads the FeatureCollection from data. The GeoJSON format has
// no layers, opts.Layer is ignored.
func NewGeoJSON(data []byte, opts Options) (*GeoJSONReader, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing GeoJSON")
	}

	if opts.IDField != "" {
		for i, f := range fc.Features {
			v, ok := f.Properties[opts.IDField]
			if !ok {
				return nil, errors.Errorf("can't find ID field %s in feature %d", opts.IDField, i)
			}
			if _, ok := asInteger(v); !ok {
				return nil, errors.Errorf("ID field %s isn't integer type in feature %d: %v", opts.IDField, i, v)
			}
		}
	}
	return &GeoJSONReader{
		features: fc.Features,
		idField:  opts.IDField,
	}, nil
}

func asInteger(v interface{}) (int64, bool) {
	switch v := v.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

func (r *GeoJSONReader) Next() (Record, error) {
	if r.pos >= len(r.features) {
		return Record{}, io.EOF
	}
	f := r.features[r.pos]
	rec := Record{ID: int64(r.pos)}
	r.pos++

	if r.idField != "" {
		rec.ID, _ = asInteger(f.Properties[r.idField])
	} else if id, ok := asInteger(f.ID); ok {
		// use feature id like OGR does
		rec.ID = id
	}

	if f.Geometry != nil {
		buf, err := wkb.Marshal(f.Geometry)
		if err != nil {
			return rec, errors.Wrapf(err, "encoding geometry of feature %d", rec.ID)
		}
		rec.Wkb = buf
	}
	return rec, nil
}

func (r *GeoJSONReader) Count() int {
	return len(r.features)
}

func (r *GeoJSONReader) Close() error {
	r.features = nil
	return nil
}
