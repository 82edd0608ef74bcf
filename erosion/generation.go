package erosion

import (
	"teppa/feedback"
	"teppa/heightmap"
)

// Generation is one buffer set of raindrop particles, stored as parallel
// attribute arrays.
//
// Simulations treat generations as frame buffers, alternating and recycling
// the previous generation as the next generation's memory.
type Generation struct {
	Num int

	// Position is in normalized [-1, 1] field space, two per particle.
	Position []float32 `attrib:"position,2"`
	Velocity []float32 `attrib:"velocity,2"`
	Water    []float32 `attrib:"water,1"`
	Sediment []float32 `attrib:"sediment,1"`

	// TapIndex and TapDelta stage the height changes each particle made
	// this tick, on the four field cells around where it started.
	TapIndex []int32
	TapDelta []float32

	// Eroded and Deposited total the height actually removed from and
	// added to the field this tick.
	Eroded    float64
	Deposited float64

	WaterStats    heightmap.Stats
	SedimentStats heightmap.Stats
}

// NewGeneration allocates a generation for n particles.
func NewGeneration(n int) (*Generation, error) {
	gen := &Generation{
		TapIndex: make([]int32, 4*n),
		TapDelta: make([]float32, 4*n),
	}
	if _, err := feedback.Alloc(gen, n); err != nil {
		return nil, err
	}
	return gen, nil
}

// Len returns the particle count.
func (gen *Generation) Len() int {
	return len(gen.Water)
}

// Buffers holds the two generations of a simulation. Each tick reads the
// current generation, writes the other, then swaps their roles.
type Buffers struct {
	sets  [2]*Generation
	pairs [2]feedback.Pair
	cur   int
	swaps int
}

// NewBuffers allocates both generations and checks their wiring.
func NewBuffers(n int) (*Buffers, error) {
	var b Buffers
	for i := range b.sets {
		gen, err := NewGeneration(n)
		if err != nil {
			return nil, err
		}
		b.sets[i] = gen
	}
	pair, err := feedback.NewPair(b.sets[0], b.sets[1])
	if err != nil {
		return nil, err
	}
	b.pairs = [2]feedback.Pair{pair, pair.Reverse()}
	return &b, nil
}

// Current returns the generation the next tick reads.
func (b *Buffers) Current() *Generation { return b.sets[b.cur] }

// Other returns the generation the next tick writes.
func (b *Buffers) Other() *Generation { return b.sets[1-b.cur] }

// Pair returns the attribute wiring of the next tick.
func (b *Buffers) Pair() feedback.Pair { return b.pairs[b.cur] }

// Index returns 0 while the first allocated generation is current, else 1.
func (b *Buffers) Index() int { return b.cur }

// Swap exchanges the roles of the two generations.
func (b *Buffers) Swap() {
	b.cur = 1 - b.cur
	b.swaps++
}

// Swaps returns how many times the roles have been exchanged.
func (b *Buffers) Swaps() int { return b.swaps }
