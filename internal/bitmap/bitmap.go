package bitmap

import (
	"errors"
	"image"
	"image/color"
)

// Sentinel errors reported for files that are not plain 24-bit bitmaps.
var (
	// ErrBadSignature indicates the file does not start with the "BM" magic.
	ErrBadSignature = errors.New("bitmap: missing BM signature")

	// ErrUnsupportedDepth indicates a bit depth other than 24, or a
	// compressed or palette-indexed pixel format.
	ErrUnsupportedDepth = errors.New("bitmap: only uncompressed 24-bit files are supported")
)

// fileHeader is the packed 54-byte BMP header: the 14-byte file header
// followed by the 40-byte BITMAPINFOHEADER, with no padding between fields.
// Field widths and order match the on-disk little-endian layout exactly so
// the whole struct round-trips through encoding/binary.
type fileHeader struct {
	Signature       [2]byte
	FileSize        int32
	Reserved        int32
	DataOffset      int32
	HeaderSize      int32
	Width           int32
	Height          int32
	Planes          int16
	BitsPerPixel    int16
	Compression     int32
	DataSize        int32
	HorizontalRes   int32
	VerticalRes     int32
	Colors          int32
	ImportantColors int32
}

// headerSize is the byte length of fileHeader on disk.
const headerSize = 54

// infoHeaderSize is the value of the HeaderSize field for BITMAPINFOHEADER.
const infoHeaderSize = 40

// Pixel is a single 24-bit pixel in on-disk byte order: blue, green, red.
// A row of pixels is byte-for-byte identical to its unpadded on-disk form.
type Pixel struct {
	B uint8
	G uint8
	R uint8
}

// Grid is a decoded pixel grid: Grid[row][col], row-major, with row 0 holding
// the bottom scanline (the first row read from disk). Rows are independent
// slices, so a contiguous band Grid[start:end] is a disjoint mutable view
// suitable for handing to a worker.
type Grid [][]Pixel

// NewGrid allocates a height x width grid with one backing slice per row.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for i := range g {
		g[i] = make([]Pixel, width)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns, 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of the grid. Mutating the copy never affects the
// original.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = make([]Pixel, len(row))
		copy(c[i], row)
	}
	return c
}

// RowPadding returns the number of zero bytes written after each row on disk
// so the row length aligns to a 4-byte boundary. The general form is
// (4 - rowBytes%4) % 4 with rowBytes = 3*width; for 3-byte pixels this
// reduces to width % 4.
func RowPadding(width int) int {
	return (4 - (3*width)%4) % 4
}

// ColorModel implements image.Image.
func (g Grid) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image with the origin at the visual top-left.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width(), g.Height())
}

// At implements image.Image. The grid stores rows bottom-up, so the visual
// coordinate y maps to grid row height-1-y.
func (g Grid) At(x, y int) color.Color {
	p := g[len(g)-1-y][x]
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// Info describes a bitmap file's header without its pixel data.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// BitsPerPixel is the declared bit depth. Decode accepts only 24.
	BitsPerPixel int `json:"bits_per_pixel"`

	// DataOffset is the byte position where pixel data begins.
	DataOffset int `json:"data_offset"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}
