package erosion

// Ticker writes a new generation from a previous.
type Ticker interface {
	Tick(next, prev *Generation)
}

// Tickers is a list of tickers to tick, in order, for each tick.
type Tickers []Ticker

var _ Ticker = Tickers(nil)

// Tick ticks all the tickers.
func (tickers Tickers) Tick(next, prev *Generation) {
	for _, ticker := range tickers {
		ticker.Tick(next, prev)
	}
}

// Resetter writes an initial generation.
type Resetter interface {
	Reset(gen *Generation)
}

// Resetters is a list of resetters to reset.
type Resetters []Resetter

var _ Resetter = Resetters(nil)

// Reset resets the generation with all the resetters.
func (resetters Resetters) Reset(gen *Generation) {
	for _, resetter := range resetters {
		resetter.Reset(gen)
	}
}
