package heightmap

import "math"

// Stats captures the range and total of a set of elevations.
type Stats struct {
	Min   float32
	Max   float32
	Num   int
	Total float64
}

// Reset spreads Min and Max to the farthest possible values.
func (stats *Stats) Reset() {
	stats.Min = math.MaxFloat32
	stats.Max = -math.MaxFloat32
	stats.Num = 0
	stats.Total = 0
}

// Add accounts for a value, raising the max or lowering the min.
func (stats *Stats) Add(v float32) {
	if v > stats.Max {
		stats.Max = v
	}
	if v < stats.Min {
		stats.Min = v
	}
	stats.Num++
	stats.Total += float64(v)
}

// Spread returns the gap between the highest and lowest value.
func (stats Stats) Spread() float32 {
	return stats.Max - stats.Min
}

// Project maps a value in the collected range onto [0, 1].
func (stats Stats) Project(v float32) float32 {
	spread := stats.Spread()
	if spread <= 0 {
		return 0
	}
	return (v - stats.Min) / spread
}

func (stats Stats) Mean() float64 {
	if stats.Num == 0 {
		return 0
	}
	return stats.Total / float64(stats.Num)
}
