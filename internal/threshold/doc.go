// Package threshold implements per-pixel binarization: every pixel becomes
// pure black or pure white depending on whether its level falls below a
// cutoff.
//
// Two level functions are available. ModeMean uses the truncating integer
// mean of the three channels, (r+g+b)/3, computed in a wide intermediate so
// the sum cannot overflow. ModeLuma uses CIE Lab lightness, which tracks
// perceived brightness more closely on saturated colors. In both modes the
// decision is the same: level < threshold produces black, anything else
// (including equality) produces white.
//
// Apply mutates only its argument and shares no state, so it is safe to call
// concurrently on disjoint pixels; the executor package relies on this.
//
// Otsu selects a cutoff automatically from the image's gray histogram by
// maximizing between-class variance, the standard choice when binarizing
// scanned documents for OCR.
package threshold
