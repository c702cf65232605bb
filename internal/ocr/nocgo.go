//go:build !cgo

package ocr

// Grade requires the CGO Tesseract bindings; this build has none.
func Grade(path, language string) (*Result, error) {
	return nil, ErrUnavailable
}
