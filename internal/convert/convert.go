// Package convert moves images between the 24-bit bitmap pipeline format and
// the general-purpose formats (PNG, JPEG, GIF) handled by the imaging
// library. It exists so non-BMP sources can be binarized and so binarized
// output can be exported for viewing.
package convert

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
)

// FromImage converts any image.Image into a pixel grid, flattening alpha.
// The visual top row of the image becomes the last grid row, matching the
// bitmap format's bottom-up storage.
func FromImage(img image.Image) bitmap.Grid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	grid := bitmap.NewGrid(width, height)
	for y := 0; y < height; y++ {
		row := grid[height-1-y]
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = bitmap.Pixel{
				B: uint8(b >> 8),
				G: uint8(g >> 8),
				R: uint8(r >> 8),
			}
		}
	}
	return grid
}

// ToImage converts a pixel grid into an NRGBA image in visual top-down
// order, suitable for the standard encoders.
func ToImage(grid bitmap.Grid) *image.NRGBA {
	width := grid.Width()
	height := grid.Height()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := grid[height-1-y]
		for x := 0; x < width; x++ {
			p := row[x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = 255
		}
	}
	return img
}

// ToBMP decodes the PNG, JPEG, or GIF at src and writes it to dst as an
// uncompressed 24-bit bitmap ready for the pipeline.
func ToBMP(src, dst string) error {
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	return bitmap.Encode(dst, FromImage(img))
}

// FromBMP decodes the 24-bit bitmap at src and saves it to dst in the format
// implied by dst's extension (.png, .jpg, .gif, ...).
func FromBMP(src, dst string) error {
	grid, err := bitmap.Decode(src)
	if err != nil {
		return err
	}
	if err := imaging.Save(ToImage(grid), dst); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
