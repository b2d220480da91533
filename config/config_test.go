package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/omniscale/polysplit/log"
)

func TestParseDefaults(t *testing.T) {
	opts, errs := Parse([]string{"in.shp", "out.shp"})
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if opts.Input != "in.shp" || opts.Output != "out.shp" {
		t.Error("unexpected input/output", opts.Input, opts.Output)
	}
	if opts.MaxVertices != 250 || opts.MaxDepth != 50 {
		t.Error("unexpected limits", opts.MaxVertices, opts.MaxDepth)
	}
	if opts.Driver != "ESRI Shapefile" || opts.Schema != "public" || opts.Srid != 4326 {
		t.Error("unexpected output defaults", opts)
	}
	if opts.LogLevel() != log.LProgress {
		t.Error("unexpected log level", opts.LogLevel())
	}
}

func TestParseFlags(t *testing.T) {
	opts, errs := Parse([]string{"-m", "20", "-n", "osm_id", "-f", "geojson", "-o", "parts", "-v", "in.geojson", "out.geojson"})
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if opts.MaxVertices != 20 || opts.IDField != "osm_id" || opts.Driver != "geojson" || opts.OutputLayer != "parts" {
		t.Error("unexpected options", opts)
	}
	if opts.LogLevel() != log.LDebug {
		t.Error("unexpected log level", opts.LogLevel())
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		errs int
	}{
		{[]string{"in.shp"}, 1},
		{[]string{}, 1},
		{[]string{"-m", "5", "in.shp", "out.shp"}, 1},
		{[]string{"-m", "5", "-maxdepth", "0", "in.shp"}, 3},
		{[]string{"-srid", "-1", "in.shp", "out.shp"}, 1},
		{[]string{"-v", "-quiet", "in.shp", "out.shp"}, 1},
		{[]string{"in.shp", "out.shp", "more.shp"}, 1},
		{[]string{"-unknown", "in.shp", "out.shp"}, 1},
	} {
		opts, errs := Parse(tc.args)
		if opts != nil {
			t.Errorf("expected no options for %v", tc.args)
		}
		if len(errs) != tc.errs {
			t.Errorf("expected %d errors for %v, got %v", tc.errs, tc.args, errs)
		}
	}
}

func TestParseConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "polysplit_config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	yamlFile := filepath.Join(dir, "polysplit.yml")
	if err := ioutil.WriteFile(yamlFile, []byte("maxvertices: 100\ndriver: postgis\nidfield: osm_id\ndbschema: import\n"), 0644); err != nil {
		t.Fatal(err)
	}
	opts, errs := Parse([]string{"-config", yamlFile, "in.shp", "postgis://localhost/osm"})
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if opts.MaxVertices != 100 || opts.Driver != "postgis" || opts.IDField != "osm_id" || opts.Schema != "import" {
		t.Error("unexpected options", opts)
	}

	// flags overwrite config values
	opts, errs = Parse([]string{"-config", yamlFile, "-m", "30", "-n", "gid", "in.shp", "out"})
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if opts.MaxVertices != 30 || opts.IDField != "gid" {
		t.Error("unexpected options", opts)
	}

	jsonFile := filepath.Join(dir, "polysplit.json")
	if err := ioutil.WriteFile(jsonFile, []byte(`{"maxvertices": 3, "srid": 3857}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, errs := Parse([]string{"-config", jsonFile, "in.shp", "out.shp"}); len(errs) != 1 {
		t.Error("expected error for maxvertices from json config", errs)
	}

	if _, errs := Parse([]string{"-config", filepath.Join(dir, "missing.yml"), "in.shp", "out.shp"}); len(errs) != 1 {
		t.Error("expected error for missing config", errs)
	}
}
