package metrics

import "github.com/san-kum/dynarray/internal/workload"

type FailedOps struct {
	name  string
	count int
}

func NewFailedOps() *FailedOps {
	return &FailedOps{name: "failed_ops"}
}

func (f *FailedOps) Name() string { return f.name }

func (f *FailedOps) Observe(s workload.Snapshot) {
	if s.Failed() {
		f.count++
	}
}

func (f *FailedOps) Value() float64 { return float64(f.count) }

func (f *FailedOps) Reset() { f.count = 0 }

// Defaults returns a fresh instance of every metric.
func Defaults() []workload.Metric {
	return []workload.Metric{
		NewReallocations(),
		NewPeakSlack(),
		NewLoadFactor(),
		NewFailedOps(),
	}
}
