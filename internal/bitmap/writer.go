package bitmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Encode writes grid to path as an uncompressed 24-bit bitmap, creating or
// truncating the destination. Rows are written in grid order (no vertical
// flip), each followed by its alignment padding, so Encode is the exact
// inverse of Decode for pixel content.
//
// The FileSize and DataSize header fields are computed as
//
//	headerSize + height*(3*width + padding) + 2
//	             height*(3*width + padding) + 2
//
// carrying two bytes of slack. Readers locate pixel data through DataOffset
// and the dimension fields, never through the size fields, so the slack does
// not affect decodability.
func Encode(path string, grid Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create bitmap: %w", err)
	}
	defer f.Close()

	width := grid.Width()
	height := grid.Height()
	pad := RowPadding(width)
	rowBytes := 3*width + pad

	hdr := fileHeader{
		Signature:    [2]byte{'B', 'M'},
		FileSize:     int32(headerSize + height*rowBytes + 2),
		DataOffset:   headerSize,
		HeaderSize:   infoHeaderSize,
		Width:        int32(width),
		Height:       int32(height),
		Planes:       1,
		BitsPerPixel: 24,
		DataSize:     int32(height*rowBytes + 2),
	}

	bw := bufio.NewWriter(f)
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("failed to write bitmap header: %w", err)
	}

	padding := make([]byte, pad)
	for i := 0; i < height; i++ {
		if err := binary.Write(bw, binary.LittleEndian, grid[i]); err != nil {
			return fmt.Errorf("failed to write pixel row %d: %w", i, err)
		}
		if _, err := bw.Write(padding); err != nil {
			return fmt.Errorf("failed to write row padding: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush bitmap: %w", err)
	}
	return f.Close()
}
