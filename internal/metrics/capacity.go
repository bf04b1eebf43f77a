package metrics

import "github.com/san-kum/dynarray/internal/workload"

// Reallocations counts capacity changes between consecutive snapshots.
type Reallocations struct {
	name    string
	lastCap int
	count   int
	samples int
}

func NewReallocations() *Reallocations {
	return &Reallocations{name: "reallocations"}
}

func (r *Reallocations) Name() string { return r.name }

func (r *Reallocations) Observe(s workload.Snapshot) {
	if r.samples > 0 && s.Cap != r.lastCap {
		r.count++
	}
	r.lastCap = s.Cap
	r.samples++
}

func (r *Reallocations) Value() float64 { return float64(r.count) }

func (r *Reallocations) Reset() {
	r.lastCap = 0
	r.count = 0
	r.samples = 0
}

// PeakSlack tracks the largest number of unused slots seen.
type PeakSlack struct {
	name string
	peak int
}

func NewPeakSlack() *PeakSlack {
	return &PeakSlack{name: "peak_slack"}
}

func (p *PeakSlack) Name() string { return p.name }

func (p *PeakSlack) Observe(s workload.Snapshot) {
	p.peak = max(p.peak, s.Cap-s.Size)
}

func (p *PeakSlack) Value() float64 { return float64(p.peak) }

func (p *PeakSlack) Reset() { p.peak = 0 }

// LoadFactor is the mean of size/cap over all snapshots. A zero-capacity
// list counts as fully loaded.
type LoadFactor struct {
	name    string
	total   float64
	samples int
}

func NewLoadFactor() *LoadFactor {
	return &LoadFactor{name: "load_factor"}
}

func (l *LoadFactor) Name() string { return l.name }

func (l *LoadFactor) Observe(s workload.Snapshot) {
	if s.Cap == 0 {
		l.total += 1
	} else {
		l.total += float64(s.Size) / float64(s.Cap)
	}
	l.samples++
}

func (l *LoadFactor) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.total / float64(l.samples)
}

func (l *LoadFactor) Reset() {
	l.total = 0
	l.samples = 0
}
