package heightmap

import (
	"fmt"
	"image"
	"image/color"
	"math"

	// Decoders for Load.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"teppa/float64map2"

	billy "gopkg.in/src-d/go-billy.v4"
)

// FromImage samples the red channel of every pixel, scaled to [0, 1].
func FromImage(img image.Image) (*Field, error) {
	rect := img.Bounds()
	data := make([]float32, 0, rect.Dx()*rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			data = append(data, float32(r>>8)/255)
		}
	}
	return New(rect.Dx(), rect.Dy(), data)
}

// Load decodes a heightmap image from a filesystem. PNG, JPEG, GIF, BMP,
// TIFF and WebP are recognized.
func Load(fs billy.Filesystem, name string) (*Field, error) {
	file, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unable to decode heightmap %q: %w", name, err)
	}
	field, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("invalid %v heightmap %q: %w", format, name, err)
	}
	return field, nil
}

// FromMap evaluates a procedural map at every cell and rescales the result
// so the lowest cell is 0 and the highest 1. A flat map yields all zeros.
func FromMap(m float64map2.Map, width, height int) (*Field, error) {
	field, err := Blank(width, height)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(field.Data))
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := m.Eval2(float64(x), float64(y))
			values[y*width+x] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if spread := hi - lo; spread > 0 {
		for i, v := range values {
			field.Data[i] = float32((v - lo) / spread)
		}
	}
	return field, nil
}

// Simplex synthesizes a size by size field of seamless fractal simplex noise.
func Simplex(seed int64, size int) (*Field, error) {
	return FromMap(float64map2.NewSimplex(seed, float64(size), float64map2.DefaultOctaves), size, size)
}

// Image encodes the field as 8 bit grayscale.
func (f *Field) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			v := f.Data[y*f.Width+x]
			img.SetGray(x, y, color.Gray{uint8(math.Round(float64(clamp01(v)) * 255))})
		}
	}
	return img
}
