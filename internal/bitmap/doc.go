// Package bitmap implements decoding and encoding of uncompressed 24-bit
// Windows bitmap (BMP) files.
//
// Only the plain 24-bit BGR variant is supported: no compression, no color
// palette, no bit depths other than 24. Files using any other pixel format
// are rejected with ErrUnsupportedDepth before any pixel data is read.
//
// # Pixel layout
//
// BMP stores pixels bottom-up in blue, green, red byte order, with every row
// padded to a 4-byte boundary. The Grid type preserves the on-disk row order:
// row 0 of a decoded Grid is the bottom scanline of the image. Callers that
// need the conventional top-down view (for example to hand the image to
// standard library image consumers) should use Grid's image.Image
// implementation, which flips vertically in At.
//
// # Header handling
//
// The decoder reads the 54-byte packed header, then seeks to the header's
// data offset before reading pixels. The offset is authoritative: files whose
// pixel data does not immediately follow the fixed header (larger info
// headers, embedded color tables) decode correctly. The size fields in the
// header are never trusted on read; dimensions and the data offset define the
// pixel array.
//
// # Error Handling
//
// Open and create failures are returned wrapped with %w so callers can
// inspect the underlying os error. Format violations are reported through the
// sentinel errors ErrBadSignature and ErrUnsupportedDepth, matchable with
// errors.Is.
package bitmap
