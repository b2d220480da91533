package writer

import (
	"io/ioutil"

	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// GeoJSONWriter collects all features and writes a single FeatureCollection
// on Close.
type GeoJSONWriter struct {
	dest    string
	idField string
	fc      *geojson.FeatureCollection
}

func CreateGeoJSON(dest string, opts Options) (*GeoJSONWriter, error) {
	// fail early if dest is not writable
	if err := ioutil.WriteFile(dest, nil, 0644); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dest)
	}
	return &GeoJSONWriter{
		dest:    dest,
		idField: opts.idField(),
		fc:      geojson.NewFeatureCollection(),
	}, nil
}

func (w *GeoJSONWriter) Write(id int64, buf []byte) error {
	geom, err := wkb.Unmarshal(buf)
	if err != nil {
		return errors.Wrapf(err, "decoding polygon %d", id)
	}
	f := geojson.NewFeature(geom)
	f.Properties[w.idField] = id
	w.fc.Append(f)
	return nil
}

func (w *GeoJSONWriter) Close() error {
	data, err := w.fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding GeoJSON")
	}
	if err := ioutil.WriteFile(w.dest, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", w.dest)
	}
	return nil
}
