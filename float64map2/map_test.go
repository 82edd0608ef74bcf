package float64map2_test

import (
	"fmt"
	"testing"

	"teppa/float64map2"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	plane := float64map2.Func(func(x, y float64) float64 { return x + 2*y })

	assert.Equal(t, 5.0, plane.Eval2(1, 2))
	assert.Equal(t, 10.0, float64map2.Scale{Source: plane, Factor: 2}.Eval2(1, 2))
	assert.Equal(t, -15.0, float64map2.Amplify{Source: plane, Gain: -3}.Eval2(1, 2))
	assert.Equal(t, 10.0, float64map2.Sum{plane, plane}.Eval2(1, 2))
	assert.Equal(t, 0.0, float64map2.Sum{}.Eval2(1, 2))
}

func TestTesselation(t *testing.T) {
	source := float64map2.Func(func(x, y float64) float64 { return x*x - 3*y })
	tess := float64map2.Tesselation{Source: source, Width: 8, Height: 8}
	for _, y := range []float64{0, 1.5, 4, 7} {
		t.Run(fmt.Sprintf("y=%v", y), func(t *testing.T) {
			assert.InDelta(t, tess.Eval2(0, y), tess.Eval2(8, y), 1e-9)
			assert.InDelta(t, tess.Eval2(y, 0), tess.Eval2(y, 8), 1e-9)
		})
	}
}

func TestSimplex(t *testing.T) {
	a := float64map2.NewSimplex(7, 64, float64map2.DefaultOctaves)
	b := float64map2.NewSimplex(7, 64, float64map2.DefaultOctaves)
	c := float64map2.NewSimplex(8, 64, float64map2.DefaultOctaves)

	var differs bool
	for i := 0; i < 16; i++ {
		x, y := float64(i)*3.7, float64(i)*1.3
		assert.Equal(t, a.Eval2(x, y), b.Eval2(x, y), "same seed must agree")
		if a.Eval2(x, y) != c.Eval2(x, y) {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should differ somewhere")
	assert.InDelta(t, a.Eval2(0, 10), a.Eval2(64, 10), 1e-9)
}
