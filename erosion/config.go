package erosion

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"go.uber.org/multierr"
)

// MaxPopulation bounds the particle buffers a simulation may allocate.
const MaxPopulation = 1 << 22

// ErrInvalidConfig matches any rejected physics parameter.
var ErrInvalidConfig = errors.New("invalid erosion config")

// Config holds the population and the physics constants of the update rule.
type Config struct {
	Population int
	Seed       int64

	// Inertia is how much velocity carries over each tick, in [0, 1].
	Inertia float32
	// Gravity scales acceleration down the slope.
	Gravity float32
	// Dt scales velocity into displacement, in field units per tick.
	Dt float32
	// Capacity scales how much sediment moving water can hold.
	Capacity float32
	// MinSlope keeps capacity positive on flat ground.
	MinSlope float32
	// ErodeRate and DepositRate are the fractions of the capacity gap closed
	// each tick.
	ErodeRate   float32
	DepositRate float32
	// Evaporation is the fraction of water lost each tick.
	Evaporation float32
}

// DefaultConfig returns the parameters used by the commands.
func DefaultConfig() Config {
	return Config{
		Population:  1000,
		Seed:        1,
		Inertia:     0.8,
		Gravity:     4,
		Dt:          0.01,
		Capacity:    4,
		MinSlope:    0.01,
		ErodeRate:   0.3,
		DepositRate: 0.3,
		Evaporation: 0.002,
	}
}

// Validate reports every parameter that is not finite or out of range.
func (cfg Config) Validate() (err error) {
	check := func(name string, v, lo, hi float32) {
		if math32.IsNaN(v) || v < lo || v > hi {
			err = multierr.Append(err, fmt.Errorf("%w: %v=%v not in [%v, %v]", ErrInvalidConfig, name, v, lo, hi))
		}
	}
	var inf float32 = math.MaxFloat32
	check("inertia", cfg.Inertia, 0, 1)
	check("gravity", cfg.Gravity, 0, inf)
	check("dt", cfg.Dt, math.SmallestNonzeroFloat32, 1)
	check("capacity", cfg.Capacity, 0, inf)
	check("min-slope", cfg.MinSlope, 0, inf)
	check("erode-rate", cfg.ErodeRate, 0, 1)
	check("deposit-rate", cfg.DepositRate, 0, 1)
	check("evaporation", cfg.Evaporation, 0, 1)
	return err
}

// Bind attaches the configuration to the provided FlagSet.
func (cfg *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Population, "population", cfg.Population, "number of raindrop particles")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for raindrop placement")
	fs.Var((*float32Value)(&cfg.Inertia), "inertia", "fraction of velocity kept each tick")
	fs.Var((*float32Value)(&cfg.Gravity), "gravity", "acceleration down the slope")
	fs.Var((*float32Value)(&cfg.Dt), "dt", "displacement per unit velocity per tick")
	fs.Var((*float32Value)(&cfg.Capacity), "capacity", "sediment capacity factor")
	fs.Var((*float32Value)(&cfg.MinSlope), "min-slope", "minimum slope used for capacity")
	fs.Var((*float32Value)(&cfg.ErodeRate), "erode-rate", "fraction of spare capacity eroded each tick")
	fs.Var((*float32Value)(&cfg.DepositRate), "deposit-rate", "fraction of excess sediment deposited each tick")
	fs.Var((*float32Value)(&cfg.Evaporation), "evaporation", "fraction of water evaporated each tick")
}

type float32Value float32

func (f *float32Value) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}
