package bitmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Decode reads the 24-bit bitmap at path and returns its pixel grid.
//
// The header is validated before any pixel data is read: the file must carry
// the "BM" signature and declare an uncompressed 24-bit pixel format. The
// decoder then seeks to the header's data offset, so files with extended info
// headers or an embedded color table between header and pixels are handled.
//
// Returns:
//   - Grid: height rows by width columns, row 0 = bottom scanline.
//   - error: wraps the os error if the file cannot be opened; ErrBadSignature
//     or ErrUnsupportedDepth for files that are not plain 24-bit bitmaps.
func Decode(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bitmap: %w", err)
	}
	defer f.Close()

	hdr, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(int64(hdr.DataOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to pixel data: %w", err)
	}

	width := int(hdr.Width)
	height := int(hdr.Height)
	pad := RowPadding(width)

	br := bufio.NewReader(f)
	grid := make(Grid, height)
	for i := 0; i < height; i++ {
		grid[i] = make([]Pixel, width)
		if err := binary.Read(br, binary.LittleEndian, grid[i]); err != nil {
			return nil, fmt.Errorf("failed to read pixel row %d: %w", i, err)
		}
		if _, err := br.Discard(pad); err != nil {
			return nil, fmt.Errorf("failed to skip row padding: %w", err)
		}
	}
	return grid, nil
}

// DecodeInfo reads only the header of the bitmap at path and returns its
// metadata. Unlike Decode it does not reject unsupported bit depths, so it
// can be used to report why a file will not decode.
func DecodeInfo(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bitmap: %w", err)
	}
	defer f.Close()

	var hdr fileHeader
	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("failed to read bitmap header: %w", err)
	}
	if hdr.Signature[0] != 'B' || hdr.Signature[1] != 'M' {
		return nil, ErrBadSignature
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &Info{
		Width:         int(hdr.Width),
		Height:        int(hdr.Height),
		BitsPerPixel:  int(hdr.BitsPerPixel),
		DataOffset:    int(hdr.DataOffset),
		FileSizeBytes: stat.Size(),
	}, nil
}

// readHeader reads and validates the fixed header from r.
func readHeader(r io.Reader) (*fileHeader, error) {
	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("failed to read bitmap header: %w", err)
	}
	if hdr.Signature[0] != 'B' || hdr.Signature[1] != 'M' {
		return nil, ErrBadSignature
	}
	if hdr.BitsPerPixel != 24 || hdr.Compression != 0 {
		return nil, fmt.Errorf("%w (got %d bpp, compression %d)",
			ErrUnsupportedDepth, hdr.BitsPerPixel, hdr.Compression)
	}
	if hdr.Width < 0 || hdr.Height < 0 {
		return nil, fmt.Errorf("bitmap: invalid dimensions %dx%d", hdr.Width, hdr.Height)
	}
	return &hdr, nil
}
