package report

import (
	"testing"
	"time"
)

func TestPerfCollector_Accumulates(t *testing.T) {
	pc := NewPerfCollector()

	pc.StartPhase("a")
	time.Sleep(100 * time.Microsecond)
	pc.EndPhase(10)
	pc.StartPhase("b")
	pc.EndPhase(0)
	pc.StartPhase("a")
	time.Sleep(100 * time.Microsecond)
	pc.EndPhase(30)

	stats := pc.Stats()
	if len(stats) != 2 {
		t.Fatalf("got %d phases, want 2", len(stats))
	}
	if stats[0].Name != "a" || stats[1].Name != "b" {
		t.Errorf("phase order = %s, %s, want a, b", stats[0].Name, stats[1].Name)
	}
	if stats[0].Calls != 40 {
		t.Errorf("calls = %d, want 40", stats[0].Calls)
	}
	if stats[0].Total < 200*time.Microsecond {
		t.Errorf("total = %v, want at least 200µs", stats[0].Total)
	}
	if pc.NsPerCall("a") <= 0 {
		t.Error("expected positive ns/call for a")
	}
	if pc.NsPerCall("b") != 0 {
		t.Error("phase without calls should report 0 ns/call")
	}
	if pc.NsPerCall("missing") != 0 {
		t.Error("unknown phase should report 0 ns/call")
	}
}

func TestPerfCollector_EndWithoutStart(t *testing.T) {
	pc := NewPerfCollector()
	pc.EndPhase(5)
	if len(pc.Stats()) != 0 {
		t.Error("EndPhase without StartPhase should record nothing")
	}
}

func TestPerfCollector_Nil(t *testing.T) {
	var pc *PerfCollector
	pc.StartPhase("x")
	pc.EndPhase(1)
	if pc.Stats() != nil || pc.NsPerCall("x") != 0 {
		t.Error("nil collector should be inert")
	}
}
