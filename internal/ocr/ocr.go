package ocr

import "errors"

// ErrUnavailable is returned by Grade when the binary was built without CGO
// and no Tesseract bindings are present.
var ErrUnavailable = errors.New("ocr: built without cgo, Tesseract support unavailable")

// Result summarizes an OCR pass over a binarized image.
type Result struct {
	// Text is the full recognized text.
	Text string `json:"text"`

	// WordCount is the number of recognized words.
	WordCount int `json:"word_count"`

	// MeanConfidence is the average per-word confidence, 0.0 to 1.0.
	// Higher values indicate the binarization preserved legibility.
	MeanConfidence float64 `json:"mean_confidence"`

	// Language is the Tesseract language code used, e.g. "eng".
	Language string `json:"language"`
}
