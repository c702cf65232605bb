//go:build cgo

package ocr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/convert"
)

// Grade runs Tesseract over the 24-bit bitmap at path and reports how well
// the text survived binarization.
//
// Parameters:
//   - path: Bitmap to grade, typically the binarized pipeline output.
//   - language: Tesseract language code. Empty selects "eng".
//
// Tesseract does not read our bitmap variant directly, so the grid is
// re-encoded as a temporary PNG first.
func Grade(path, language string) (*Result, error) {
	if language == "" {
		language = "eng"
	}

	grid, err := bitmap.Decode(path)
	if err != nil {
		return nil, err
	}

	tmp, err := pngCopy(grid)
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(filepath.Dir(tmp))

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetImage(tmp); err != nil {
		return nil, fmt.Errorf("failed to load image into OCR engine: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get word boxes: %w", err)
	}

	confidence := 0.0
	for _, box := range boxes {
		confidence += box.Confidence
	}
	if len(boxes) > 0 {
		confidence /= float64(len(boxes)) * 100.0
	}

	return &Result{
		Text:           text,
		WordCount:      len(boxes),
		MeanConfidence: confidence,
		Language:       language,
	}, nil
}

// pngCopy writes grid to a temporary PNG and returns its path. The caller
// removes the file.
func pngCopy(grid bitmap.Grid) (string, error) {
	dir, err := os.MkdirTemp("", "bmp-binarize-ocr-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	path := filepath.Join(dir, "page.png")
	if err := imaging.Save(convert.ToImage(grid), path); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("failed to write temp png: %w", err)
	}
	return path, nil
}
