// Package stats collects frame and tick timing.
package stats

import (
	"math"
	"time"
)

// Durations is a ring buffer of recent durations, optionally calling Report
// every ReportEvery collections.
type Durations struct {
	Report      func(ds *Durations)
	ReportEvery int

	d []time.Duration
	i int
	n int
}

// Init sizes the ring to hold n durations and sets the report hook.
func (ds *Durations) Init(n, every int, report func(ds *Durations)) {
	ds.d = make([]time.Duration, 0, n)
	ds.i = 0
	ds.n = 0
	ds.ReportEvery = every
	ds.Report = report
}

// Collect records a duration, overwriting the oldest once full.
func (ds *Durations) Collect(d time.Duration) {
	if len(ds.d) < cap(ds.d) {
		ds.d = append(ds.d, d)
	} else if len(ds.d) > 0 {
		ds.d[ds.i] = d
		ds.i = (ds.i + 1) % len(ds.d)
	}
	ds.n++
	if ds.Report != nil && ds.ReportEvery > 0 && ds.n%ds.ReportEvery == 0 {
		ds.Report(ds)
	}
}

// Time collects the time elapsed since start.
func (ds *Durations) Time(start time.Time) {
	ds.Collect(time.Since(start))
}

// Count returns how many durations are held.
func (ds *Durations) Count() int { return len(ds.d) }

// Collected returns how many durations were ever collected.
func (ds *Durations) Collected() int { return ds.n }

func (ds *Durations) Total() time.Duration {
	var total time.Duration
	for _, d := range ds.d {
		total += d
	}
	return total
}

// Average returns the mean of the held durations, or zero when empty.
func (ds *Durations) Average() time.Duration {
	if len(ds.d) == 0 {
		return 0
	}
	return time.Duration(math.Round(float64(ds.Total()) / float64(len(ds.d))))
}

func (ds *Durations) Max() time.Duration {
	var max time.Duration
	for _, d := range ds.d {
		if d > max {
			max = d
		}
	}
	return max
}

// Rate returns how many average durations fit in a second.
func (ds *Durations) Rate() float64 {
	avg := ds.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
