package stats

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/omniscale/polysplit/log"
)

// StartHttpPProf serves the pprof handlers on bind, e.g. localhost:6060.
func StartHttpPProf(bind string) {
	go func() {
		log.Println("[error]", http.ListenAndServe(bind, nil))
	}()
}
