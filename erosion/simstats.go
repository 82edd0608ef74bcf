package erosion

// Pre advances the generation number and clears the per-tick totals.
type Pre struct{}

var _ Ticker = Pre{}

func (Pre) Tick(next, prev *Generation) {
	next.Num = prev.Num + 1
	next.Eroded = 0
	next.Deposited = 0
	next.WaterStats.Reset()
	next.SedimentStats.Reset()
}

// Post collects water and sediment stats over the new generation.
type Post struct{}

var _ Ticker = Post{}

func (Post) Tick(next, prev *Generation) {
	next.WaterStats.Reset()
	next.SedimentStats.Reset()
	for i := 0; i < next.Len(); i++ {
		next.WaterStats.Add(next.Water[i])
		next.SedimentStats.Add(next.Sediment[i])
	}
}
