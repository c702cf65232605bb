package threshold

import (
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/histogram"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
)

// Otsu selects a binarization cutoff for the grid automatically using Otsu's
// method: the image is reduced to a 256-bin gray histogram and the cutoff
// that maximizes the variance between the resulting black and white classes
// is returned.
//
// On a bimodal image (dark text on a light page) the result lands between
// the two modes. On a constant image every cutoff is equivalent; 0 is
// returned and the whole image binarizes to white.
func Otsu(g bitmap.Grid) uint8 {
	if g.Height() == 0 || g.Width() == 0 {
		return 0
	}
	gray := effect.Grayscale(g)
	bins := histogram.NewRGBAHistogram(gray).R.Bins
	return otsuFromBins(bins)
}

// otsuFromBins runs the between-class variance maximization over a 256-bin
// gray histogram. The classic method marks levels <= t as background; Apply
// uses a strict level < cutoff comparison, so t+1 is returned to keep the
// background class black. A flat histogram has no split and yields 0.
func otsuFromBins(bins []int) uint8 {
	total := 0
	sum := 0.0
	for level, n := range bins {
		total += n
		sum += float64(level) * float64(n)
	}
	if total == 0 {
		return 0
	}

	var (
		best    uint8
		bestVar float64
		wBack   float64
		sumBack float64
	)
	totalF := float64(total)
	for level := 0; level < 256; level++ {
		wBack += float64(bins[level])
		if wBack == 0 {
			continue
		}
		wFore := totalF - wBack
		if wFore == 0 {
			break
		}
		sumBack += float64(level) * float64(bins[level])

		meanBack := sumBack / wBack
		meanFore := (sum - sumBack) / wFore
		diff := meanBack - meanFore
		between := wBack * wFore * diff * diff
		if between > bestVar {
			bestVar = between
			best = uint8(level)
		}
	}
	if bestVar == 0 {
		return 0
	}
	return best + 1
}
