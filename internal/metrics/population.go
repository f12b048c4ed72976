package metrics

import "github.com/san-kum/sandfall/internal/sandbox"

// Population tracks the peak live particle count over a run.
type Population struct {
	name string
	peak int
}

func NewPopulation() *Population {
	return &Population{name: "peak_population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(f sandbox.Frame) {
	if f.Live > p.peak {
		p.peak = f.Live
	}
}

func (p *Population) Value() float64 {
	return float64(p.peak)
}

func (p *Population) Reset() {
	p.peak = 0
}

// MeanPopulation tracks the average live particle count per frame.
type MeanPopulation struct {
	name    string
	total   int
	samples int
}

func NewMeanPopulation() *MeanPopulation {
	return &MeanPopulation{name: "mean_population"}
}

func (m *MeanPopulation) Name() string { return m.name }

func (m *MeanPopulation) Observe(f sandbox.Frame) {
	m.total += f.Live
	m.samples++
}

func (m *MeanPopulation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanPopulation) Reset() {
	m.total = 0
	m.samples = 0
}
