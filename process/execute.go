package process

import (
	"time"

	"github.com/pkg/errors"

	"github.com/omniscale/polysplit/config"
	"github.com/omniscale/polysplit/geom/geos"
	"github.com/omniscale/polysplit/log"
	"github.com/omniscale/polysplit/reader"
	"github.com/omniscale/polysplit/split"
	"github.com/omniscale/polysplit/writer"
)

// Execute splits the input of opts into the output.
// The writer is not closed on errors, PostGIS imports are not committed.
func Execute(opts *config.Options) error {
	defer log.Step("Splitting " + opts.Input)()

	r, err := reader.Open(opts.Input, reader.Options{
		Layer:   opts.InputLayer,
		IDField: opts.IDField,
	})
	if err != nil {
		return errors.Wrapf(err, "opening %s", opts.Input)
	}
	defer r.Close()

	w, err := writer.Open(opts.Driver, opts.Output, writer.Options{
		Layer:   opts.OutputLayer,
		IDField: opts.IDField,
		Schema:  opts.Schema,
		Srid:    opts.Srid,
	})
	if err != nil {
		return errors.Wrapf(err, "creating %s", opts.Output)
	}

	g := geos.NewGeos()
	defer g.Finish()

	s, err := split.New(g, opts.MaxVertices)
	if err != nil {
		return err
	}
	s.MaxDepth = opts.MaxDepth

	runOpts := Options{}
	if opts.Verbose {
		runOpts.Progress = time.Second
	}
	counts, err := Run(r, w, s, g, runOpts)
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", opts.Output)
	}
	log.Printf("[info] %d features read, %d polygons written, %d without polygons, %d invalid",
		counts.Read, counts.Written, counts.Empty, counts.Invalid)
	return nil
}
