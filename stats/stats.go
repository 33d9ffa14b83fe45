// Package stats reduces replicate time series to per-replicate integrals and
// summarizes them per environmental condition.
package stats

import (
	"math"
	"sort"

	"envfig/dataset"
)

// DataInterval is the nominal sampling interval of the experiment output, in
// the same units as Observation.Time.
const DataInterval = 10.0

// Aggregate is one replicate's full time series reduced to a single number.
type Aggregate struct {
	EnvChangeFreq float64
	Replicate     string
	Integral      float64
}

// ConditionSummary describes the replicate integrals sharing one
// environmental change frequency.
type ConditionSummary struct {
	EnvChangeFreq float64
	X             float64 // 1/EnvChangeFreq, the reciprocal-axis position
	Mean          float64
	SD            float64 // sample standard deviation
	SEM           float64
	N             int
}

// Integrate groups observations by (EnvChangeFreq, Replicate) and reduces each
// group to DataInterval * sum(proportion) / (max(time) - min(time)), a
// sampling-interval-normalized mean of the proportion over the observed span.
// Aggregates are returned in natural sort order of the group key.
//
// A group with a single distinct timestamp has zero span and divides by zero;
// the resulting non-finite integral is deliberately not guarded here and is
// dropped at render time instead.
func Integrate(obs []dataset.Observation) []Aggregate {
	type key struct {
		freq float64
		rep  string
	}
	type series struct {
		sum        float64
		minT, maxT float64
	}

	groups := make(map[key]*series)
	for _, o := range obs {
		k := key{o.EnvChangeFreq, o.Replicate}
		s := groups[k]
		if s == nil {
			s = &series{minT: o.Time, maxT: o.Time}
			groups[k] = s
		}
		s.sum += o.ProducerProportion
		if o.Time < s.minT {
			s.minT = o.Time
		}
		if o.Time > s.maxT {
			s.maxT = o.Time
		}
	}

	aggs := make([]Aggregate, 0, len(groups))
	for k, s := range groups {
		aggs = append(aggs, Aggregate{
			EnvChangeFreq: k.freq,
			Replicate:     k.rep,
			Integral:      DataInterval * s.sum / (s.maxT - s.minT),
		})
	}

	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].EnvChangeFreq != aggs[j].EnvChangeFreq {
			return aggs[i].EnvChangeFreq < aggs[j].EnvChangeFreq
		}
		return aggs[i].Replicate < aggs[j].Replicate
	})

	return aggs
}

// FilterChanging drops the static-baseline condition (EnvChangeFreq == 0),
// which has no position on the reciprocal axis. Idempotent.
func FilterChanging(aggs []Aggregate) []Aggregate {
	kept := make([]Aggregate, 0, len(aggs))
	for _, a := range aggs {
		if a.EnvChangeFreq > 0 {
			kept = append(kept, a)
		}
	}
	return kept
}

// Summarize computes mean, sample SD and SEM of the replicate integrals per
// distinct EnvChangeFreq, ordered by increasing frequency. Input is expected
// to be filtered already; a zero frequency would put its summary at x = +Inf.
func Summarize(aggs []Aggregate) []ConditionSummary {
	byFreq := make(map[float64][]float64)
	for _, a := range aggs {
		byFreq[a.EnvChangeFreq] = append(byFreq[a.EnvChangeFreq], a.Integral)
	}

	freqs := make([]float64, 0, len(byFreq))
	for f := range byFreq {
		freqs = append(freqs, f)
	}
	sort.Float64s(freqs)

	summaries := make([]ConditionSummary, 0, len(freqs))
	for _, f := range freqs {
		vals := byFreq[f]
		n := float64(len(vals))

		mean := 0.0
		for _, v := range vals {
			mean += v
		}
		mean /= n

		sd := 0.0
		if len(vals) > 1 {
			variance := 0.0
			for _, v := range vals {
				variance += (v - mean) * (v - mean)
			}
			sd = math.Sqrt(variance / (n - 1))
		}

		summaries = append(summaries, ConditionSummary{
			EnvChangeFreq: f,
			X:             1 / f,
			Mean:          mean,
			SD:            sd,
			SEM:           sd / math.Sqrt(n),
			N:             len(vals),
		})
	}

	return summaries
}
