package geos

import (
	"math"
	"testing"
)

func TestBoundsPolygon(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	geom := g.BoundsPolygon(Bounds{0, 0, 10, 5})
	if geom == nil {
		t.Fatal("no polygon")
	}
	defer g.Destroy(geom)

	if g.Type(geom) != "Polygon" {
		t.Fatal("not a polygon", g.Type(geom))
	}
	if !g.IsValid(geom) {
		t.Fatal("not valid")
	}
	if area := g.Area(geom); area != 50 {
		t.Fatal("unexpected area", area)
	}
	if b := g.Bounds(geom); b != (Bounds{0, 0, 10, 5}) {
		t.Fatal("unexpected bounds", b)
	}
	n, err := g.NumExteriorPoints(geom)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatal("unexpected number of points", n)
	}
}

func TestPolygonNotClosed(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	_, err := g.Polygon([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	if err == nil {
		t.Fatal("expected error for open ring")
	}
}

func TestEmptyBounds(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	geom := g.FromWkt("POLYGON EMPTY")
	if geom == nil {
		t.Fatal("no geometry")
	}
	defer g.Destroy(geom)
	if !g.IsEmpty(geom) {
		t.Fatal("not empty")
	}
	if b := g.Bounds(geom); b != NilBounds {
		t.Fatal("expected NilBounds", b)
	}
}

func TestCentroid(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	// L-shape, centroid is not the bbox center
	geom := g.FromWkt("POLYGON((0 0, 10 0, 10 2, 2 2, 2 10, 0 10, 0 0))")
	defer g.Destroy(geom)

	c, err := g.Centroid(geom)
	if err != nil {
		t.Fatal(err)
	}
	// two rectangles: 10x2 (center 5,1) and 2x8 (center 1,6)
	expected := (20*5.0 + 16*1.0) / 36
	if math.Abs(c.X-expected) > 1e-9 || math.Abs(c.Y-(20*1.0+16*6.0)/36) > 1e-9 {
		t.Fatal("unexpected centroid", c)
	}
}

func TestBufferRepair(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	bowtie := g.FromWkt("POLYGON((0 0, 10 10, 10 0, 0 10, 0 0))")
	defer g.Destroy(bowtie)
	if g.IsValid(bowtie) {
		t.Fatal("bowtie should be invalid")
	}

	repaired := g.Buffer(bowtie, 0)
	if repaired == nil {
		t.Fatal("no buffer result")
	}
	defer g.Destroy(repaired)
	if !g.IsValid(repaired) {
		t.Fatal("repaired not valid", g.AsWkt(repaired))
	}
	if g.Area(repaired) <= 0 {
		t.Fatal("repaired has no area", g.AsWkt(repaired))
	}
}

func TestParts(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	geom := g.FromWkt("MULTIPOLYGON(((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 6, 5 5)))")
	defer g.Destroy(geom)

	if g.NumGeoms(geom) != 2 {
		t.Fatal("expected two parts")
	}
	parts := g.Geoms(geom)
	n, _ := g.NumExteriorPoints(parts[0])
	if n != 4 {
		t.Error("unexpected number of points", n)
	}
	n, _ = g.NumExteriorPoints(parts[1])
	if n != 5 {
		t.Error("unexpected number of points", n)
	}
}

func TestWkbRoundtrip(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	geom := g.BoundsPolygon(Bounds{-1, -1, 1, 1})
	defer g.Destroy(geom)

	wkb := g.AsWkb(geom)
	if len(wkb) == 0 {
		t.Fatal("empty wkb")
	}
	decoded := g.FromWkb(wkb)
	if decoded == nil {
		t.Fatal("unable to decode wkb")
	}
	defer g.Destroy(decoded)
	if !g.Equals(geom, decoded) {
		t.Fatal("not equal", g.AsWkt(decoded))
	}
	if g.FromWkb(nil) != nil {
		t.Fatal("expected nil for empty wkb")
	}
}
