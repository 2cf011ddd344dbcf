package report

import (
	"log/slog"
	"time"
)

// PerfCollector times named phases of a report run. Each phase records how
// many calls it covered so per-call cost can be derived.
type PerfCollector struct {
	order      []string
	total      map[string]time.Duration
	calls      map[string]int
	phaseStart time.Time
	lastPhase  string
}

// NewPerfCollector creates an empty collector.
func NewPerfCollector() *PerfCollector {
	return &PerfCollector{
		total: make(map[string]time.Duration),
		calls: make(map[string]int),
	}
}

// StartPhase begins timing phase. A phase may be started more than once;
// its durations and calls accumulate.
func (p *PerfCollector) StartPhase(phase string) {
	if p == nil {
		return
	}
	if _, ok := p.total[phase]; !ok {
		p.order = append(p.order, phase)
		p.total[phase] = 0
	}
	p.lastPhase = phase
	p.phaseStart = time.Now()
}

// EndPhase stops the current phase and credits it with calls.
func (p *PerfCollector) EndPhase(calls int) {
	if p == nil || p.lastPhase == "" {
		return
	}
	p.total[p.lastPhase] += time.Since(p.phaseStart)
	p.calls[p.lastPhase] += calls
	p.lastPhase = ""
}

// PhaseStats is the accumulated timing of one phase.
type PhaseStats struct {
	Name      string
	Total     time.Duration
	Calls     int
	NsPerCall float64
}

// Stats returns per-phase statistics in the order phases were first started.
func (p *PerfCollector) Stats() []PhaseStats {
	if p == nil {
		return nil
	}
	out := make([]PhaseStats, 0, len(p.order))
	for _, name := range p.order {
		s := PhaseStats{Name: name, Total: p.total[name], Calls: p.calls[name]}
		if s.Calls > 0 {
			s.NsPerCall = float64(s.Total.Nanoseconds()) / float64(s.Calls)
		}
		out = append(out, s)
	}
	return out
}

// NsPerCall returns the per-call cost of phase, or 0 if it has no calls.
func (p *PerfCollector) NsPerCall(phase string) float64 {
	if p == nil || p.calls[phase] == 0 {
		return 0
	}
	return float64(p.total[phase].Nanoseconds()) / float64(p.calls[phase])
}

// LogValue implements slog.LogValuer for structured logging.
func (s PhaseStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("phase", s.Name),
		slog.Int64("total_us", s.Total.Microseconds()),
		slog.Int("calls", s.Calls),
		slog.Float64("ns_per_call", s.NsPerCall),
	)
}
