package icons

import (
	"image"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/pmartell/iconforge/internal/color"
	"github.com/pmartell/iconforge/internal/png"
)

// Spec is one entry of the icon set: a square size and its output filename.
type Spec struct {
	Size int
	Name string
}

// DefaultSet is the icon set expected by the desktop bundler.
// 128x128@2x.png is the 128 icon at double pixel density.
var DefaultSet = []Spec{
	{Size: 32, Name: "32x32.png"},
	{Size: 128, Name: "128x128.png"},
	{Size: 256, Name: "128x128@2x.png"},
	{Size: 512, Name: "icon.png"},
}

// Result reports one written icon.
type Result struct {
	Name  string
	Size  int
	Bytes int
}

// Render encodes and writes every icon in set under dir as a solid fill.
// The first failure aborts the run; icons already written stay on disk.
// The partial results are returned alongside the error.
func Render(dir string, fill color.RGBA, set []Spec) ([]Result, error) {
	results := make([]Result, 0, len(set))
	for _, s := range set {
		data, err := png.EncodeSolid(s.Size, fill)
		if err != nil {
			return results, errors.Wrapf(err, "encoding %s", s.Name)
		}
		if err := os.WriteFile(filepath.Join(dir, s.Name), data, 0644); err != nil {
			return results, errors.Wrapf(err, "writing %s", s.Name)
		}
		results = append(results, Result{Name: s.Name, Size: s.Size, Bytes: len(data)})
	}
	return results, nil
}

// RenderFrom resamples src to every size in set and writes the encoded icons.
// Failure semantics match Render.
func RenderFrom(src image.Image, dir string, set []Spec) ([]Result, error) {
	results := make([]Result, 0, len(set))
	for _, s := range set {
		scaled := resize.Resize(uint(s.Size), uint(s.Size), src, resize.Lanczos3)
		data, err := png.EncodeRGBA(s.Size, s.Size, flattenRGBA(scaled, s.Size))
		if err != nil {
			return results, errors.Wrapf(err, "encoding %s", s.Name)
		}
		if err := os.WriteFile(filepath.Join(dir, s.Name), data, 0644); err != nil {
			return results, errors.Wrapf(err, "writing %s", s.Name)
		}
		results = append(results, Result{Name: s.Name, Size: s.Size, Bytes: len(data)})
	}
	return results, nil
}

// flattenRGBA converts img into interleaved 8-bit RGBA bytes, row-major.
func flattenRGBA(img image.Image, size int) []byte {
	pix := make([]byte, 0, size*size*4)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8))
		}
	}
	return pix
}
