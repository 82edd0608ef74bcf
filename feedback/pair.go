package feedback

import (
	"fmt"
	"reflect"
	"strings"
)

// Pair is the wiring of one update pass: In is read, Out is written.
type Pair struct {
	In, Out Set
}

// NewPair binds both buffer sets and checks that they have the same
// attributes, in the same order, with the same sizes and particle counts, and
// that no output array overlaps any input array.
func NewPair(in, out interface{}) (Pair, error) {
	inSet, err := Bind(in)
	if err != nil {
		return Pair{}, err
	}
	outSet, err := Bind(out)
	if err != nil {
		return Pair{}, err
	}
	if len(inSet) != len(outSet) {
		return Pair{}, fmt.Errorf("%w: input has %v attributes, output %v", ErrLayout, len(inSet), len(outSet))
	}
	for i := range inSet {
		a, b := inSet[i], outSet[i]
		if a.Name != b.Name || a.Size != b.Size || a.Len() != b.Len() {
			return Pair{}, fmt.Errorf("%w: input %v does not match output %v", ErrLayout, a, b)
		}
	}
	for _, a := range inSet {
		for _, b := range outSet {
			if overlaps(a.Data, b.Data) {
				return Pair{}, fmt.Errorf("%w: output %v aliases input %v", ErrLayout, b.Name, a.Name)
			}
		}
	}
	return Pair{In: inSet, Out: outSet}, nil
}

// Reverse returns the pair for the following pass, after the sets swap roles.
func (p Pair) Reverse() Pair {
	return Pair{In: p.Out, Out: p.In}
}

// Varyings lists the output names in binding order.
func (p Pair) Varyings() []string {
	names := make([]string, len(p.Out))
	for i, attr := range p.Out {
		names[i] = attr.Output()
	}
	return names
}

func (p Pair) String() string {
	var sb strings.Builder
	for i, attr := range p.In {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v[%v] => %v", attr.Input(), attr.Size, attr.Output())
	}
	return fmt.Sprintf("Pair(%v particles: %v)", p.In.Len(), sb.String())
}

func overlaps(a, b []float32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const size = 4 // bytes per float32
	as := reflect.ValueOf(a).Pointer()
	bs := reflect.ValueOf(b).Pointer()
	ae := as + uintptr(len(a))*size
	be := bs + uintptr(len(b))*size
	return as < be && bs < ae
}
