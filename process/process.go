// Package process splits all polygons of a reader and stores the pieces
// in a writer.
package process

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/omniscale/polysplit/geom/geos"
	"github.com/omniscale/polysplit/log"
	"github.com/omniscale/polysplit/reader"
	"github.com/omniscale/polysplit/split"
	"github.com/omniscale/polysplit/stats"
	"github.com/omniscale/polysplit/writer"
)

type Options struct {
	// Progress is the interval of progress log messages, 0 disables them.
	Progress time.Duration
}

// Run splits every record of r and writes each piece with the id of the
// record to w. Read and write errors abort the run. Records with
// undecodable geometries are skipped and counted as invalid.
func Run(r reader.Reader, w writer.Writer, s *split.Splitter, g *geos.Geos, opts Options) (stats.Counts, error) {
	st := stats.StatsReporter(r.Count(), opts.Progress)
	err := run(r, w, s, g, st)
	counts := st.Stop()
	return counts, err
}

func run(r reader.Reader, w writer.Writer, s *split.Splitter, g *geos.Geos, st *stats.Statistics) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		st.AddRead(1)

		var geom *geos.Geom
		if rec.Wkb != nil {
			geom = g.FromWkb(rec.Wkb)
			if geom == nil {
				log.Printf("[warn] invalid geometry for feature %d", rec.ID)
				st.AddInvalid(1)
				continue
			}
		} else {
			log.Printf("[debug] feature %d without geometry", rec.ID)
		}

		n, err := splitRecord(rec.ID, geom, w, s, g)
		if geom != nil {
			g.Destroy(geom)
		}
		if err != nil {
			return err
		}
		if n == 0 {
			st.AddEmpty(1)
		}
		st.AddWritten(n)
	}
}

func splitRecord(id int64, geom *geos.Geom, w writer.Writer, s *split.Splitter, g *geos.Geos) (int, error) {
	pieces, err := s.Split(geom)
	if err != nil {
		return 0, errors.Wrapf(err, "splitting feature %d", id)
	}
	defer func() {
		for _, p := range pieces {
			g.Destroy(p)
		}
	}()

	for _, p := range pieces {
		wkb := g.AsWkb(p)
		if wkb == nil {
			return 0, errors.Errorf("encoding piece of feature %d", id)
		}
		if err := w.Write(id, wkb); err != nil {
			return 0, errors.Wrapf(err, "writing feature %d", id)
		}
	}
	return len(pieces), nil
}
