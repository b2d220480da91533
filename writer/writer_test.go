package writer

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/geojson"
)

func square(t *testing.T, x, y float64) []byte {
	t.Helper()
	buf, err := wkb.Marshal(orb.Polygon{{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y}}})
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "polysplit_writer")
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestOptionsLayer(t *testing.T) {
	for _, tc := range []struct {
		opts  Options
		dest  string
		layer string
	}{
		{Options{}, "/tmp/out.shp", "out"},
		{Options{}, "parts.gpkg", "parts"},
		{Options{Layer: "split"}, "/tmp/out.shp", "split"},
	} {
		if l := tc.opts.layer(tc.dest); l != tc.layer {
			t.Errorf("unexpected layer %q for %s", l, tc.dest)
		}
	}
	if f := (Options{}).idField(); f != DefaultIDField {
		t.Error("unexpected default id field", f)
	}
}

func TestGeoJSONWriter(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	dest := filepath.Join(dir, "out.geojson")
	w, err := Open(DriverGeoJSON, dest, Options{IDField: "osm_id"})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(7, square(t, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(7, square(t, 1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(8, []byte{1, 2}); err == nil {
		t.Error("expected error for invalid wkb")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 2 {
		t.Fatal("unexpected features", len(fc.Features))
	}
	for i, f := range fc.Features {
		if id := f.Properties.MustInt("osm_id", -1); id != 7 {
			t.Errorf("unexpected id %d of feature %d", id, i)
		}
		if _, ok := f.Geometry.(orb.Polygon); !ok {
			t.Errorf("unexpected geometry %T of feature %d", f.Geometry, i)
		}
	}
	if b := fc.Features[1].Geometry.Bound(); b.Min[0] != 1 {
		t.Error("unexpected order of features", b)
	}
}

func TestGeoJSONWriterNotWritable(t *testing.T) {
	if _, err := Open(DriverGeoJSON, "/nonexistent/dir/out.geojson", Options{}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestOGRWriter(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	dest := filepath.Join(dir, "parts.shp")
	w, err := Open(DefaultDriver, dest, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := w.(*OGRWriter); !ok {
		t.Fatalf("expected OGRWriter, got %T", w)
	}
	for i := 0; i < 3; i++ {
		if err := w.Write(int64(i), square(t, float64(i), 0)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".shp", ".shx", ".dbf"} {
		if _, err := os.Stat(filepath.Join(dir, "parts"+ext)); err != nil {
			t.Error(err)
		}
	}

	if _, err := Open("NoSuchDriver", filepath.Join(dir, "x"), Options{}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
