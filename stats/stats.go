package stats

import (
	"time"

	"github.com/omniscale/polysplit/log"
)

// Counts of a single polysplit run.
type Counts struct {
	// Read is the number of records read from the source.
	Read int64
	// Written is the number of pieces written to the destination.
	Written int64
	// Empty is the number of records that resulted in no pieces.
	Empty int64
	// Invalid is the number of records with undecodable geometries.
	Invalid int64
}

type Statistics struct {
	read    chan int
	written chan int
	empty   chan int
	invalid chan int
	stop    chan chan Counts
}

func (s *Statistics) AddRead(n int)    { s.read <- n }
func (s *Statistics) AddWritten(n int) { s.written <- n }
func (s *Statistics) AddEmpty(n int)   { s.empty <- n }
func (s *Statistics) AddInvalid(n int) { s.invalid <- n }

// Stop ends the reporter and returns the final counts.
func (s *Statistics) Stop() Counts {
	result := make(chan Counts)
	s.stop <- result
	return <-result
}

// StatsReporter collects counts in a background goroutine and logs the
// progress every interval. total is the number of records in the source,
// or -1 if it is not known. An interval of 0 disables the progress output.
func StatsReporter(total int, interval time.Duration) *Statistics {
	c := Counts{}
	s := Statistics{
		read:    make(chan int),
		written: make(chan int),
		empty:   make(chan int),
		invalid: make(chan int),
		stop:    make(chan chan Counts),
	}

	go func() {
		var tick <-chan time.Time
		if interval > 0 {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			tick = ticker.C
		}
		for {
			select {
			case n := <-s.read:
				c.Read += int64(n)
			case n := <-s.written:
				c.Written += int64(n)
			case n := <-s.empty:
				c.Empty += int64(n)
			case n := <-s.invalid:
				c.Invalid += int64(n)
			case <-tick:
				c.print(total)
			case result := <-s.stop:
				result <- c
				return
			}
		}
	}()
	return &s
}

func (c *Counts) print(total int) {
	if total >= 0 {
		log.Printf("[progress] %d / %d features read, %d written", c.Read, total, c.Written)
	} else {
		log.Printf("[progress] %d features read, %d written", c.Read, c.Written)
	}
}
