package stats

import (
	"testing"
	"time"
)

func TestStatsReporter(t *testing.T) {
	s := StatsReporter(10, 0)
	s.AddRead(1)
	s.AddWritten(4)
	s.AddRead(1)
	s.AddEmpty(1)
	s.AddRead(1)
	s.AddInvalid(1)

	c := s.Stop()
	if c != (Counts{Read: 3, Written: 4, Empty: 1, Invalid: 1}) {
		t.Fatalf("unexpected counts %#v", c)
	}
}

func TestStatsReporterTick(t *testing.T) {
	s := StatsReporter(-1, time.Millisecond)
	for i := 0; i < 5; i++ {
		s.AddRead(1)
		time.Sleep(time.Millisecond)
	}
	if c := s.Stop(); c.Read != 5 {
		t.Fatalf("unexpected counts %#v", c)
	}
}
