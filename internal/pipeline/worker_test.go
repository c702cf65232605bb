package pipeline

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

func TestWorkerStreamsOnlyItsRows(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bmp")
	if err := bitmap.Encode(input, checkerGrid(4, 4)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := Worker(&buf, WorkerOptions{
		Input:  input,
		Start:  1,
		End:    3,
		Cutoff: 128,
		Mode:   threshold.ModeMean,
	})
	if err != nil {
		t.Fatalf("Worker failed: %v", err)
	}

	// Two rows of four 3-byte pixels, no padding.
	if buf.Len() != 2*4*3 {
		t.Fatalf("stream length: got %d, want %d", buf.Len(), 2*4*3)
	}
	for _, b := range buf.Bytes() {
		if b != 0 && b != 255 {
			t.Fatalf("streamed byte %d is not pure black or white", b)
		}
	}
}

func TestWorkerLegacyWritesWholeFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bmp")
	output := filepath.Join(dir, "output.bmp")
	if err := bitmap.Encode(input, checkerGrid(4, 4)); err != nil {
		t.Fatal(err)
	}

	err := Worker(nil, WorkerOptions{
		Input:  input,
		Output: output,
		Start:  0,
		End:    2,
		Cutoff: 128,
		Mode:   threshold.ModeMean,
	})
	if err != nil {
		t.Fatalf("Worker failed: %v", err)
	}

	got, err := bitmap.Decode(output)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	want, err := bitmap.Decode(input)
	if err != nil {
		t.Fatal(err)
	}

	// Rows inside the partition are binarized; rows outside are written
	// back untouched, which is exactly the legacy race's defect.
	for i := 0; i < 2; i++ {
		for j := range got[i] {
			p := got[i][j]
			if p != (bitmap.Pixel{}) && p != (bitmap.Pixel{B: 255, G: 255, R: 255}) {
				t.Fatalf("partition pixel (%d,%d) = %+v, not binarized", i, j, p)
			}
		}
	}
	for i := 2; i < 4; i++ {
		for j := range got[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("untouched pixel (%d,%d) changed: %+v -> %+v",
					i, j, want[i][j], got[i][j])
			}
		}
	}
}

func TestWorkerRejectsBadRange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bmp")
	if err := bitmap.Encode(input, checkerGrid(2, 2)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Worker(&buf, WorkerOptions{Input: input, Start: 1, End: 9}); err == nil {
		t.Error("Worker accepted a range past the grid height")
	}
}
