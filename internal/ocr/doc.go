// Package ocr grades binarized output by running it through the Tesseract
// OCR engine (via gosseract/v2). Thresholding is a standard preprocessing
// step for document OCR; the word count and mean confidence reported here
// give a quick quality signal for a chosen cutoff.
//
// # Prerequisites
//
// The real implementation is only built with CGO enabled and requires
// Tesseract on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Without CGO, Grade returns ErrUnavailable so the rest of the tool keeps
// working.
package ocr
