package timeline

// Pixel bands for connector gaps and duration blocks. The continuous
// minute math upstream collapses into this small fixed palette of layout
// sizes; renderers scale the pixel values to their own units.
const (
	GapBandSmall  = 24
	GapBandMedium = 48
	GapBandLarge  = 72

	DurationBandSmall  = 80
	DurationBandMedium = 120
	DurationBandLarge  = 160
)

// GapBand maps the minute gap between two consecutive timeline entries to
// a connector size. ok=false means the gap is undefined (an untimed
// neighbor) and maps to the small band, as do zero and negative gaps.
func GapBand(minutes int, ok bool) int {
	switch {
	case !ok || minutes < 30:
		return GapBandSmall
	case minutes < 60:
		return GapBandMedium
	}
	return GapBandLarge
}

// DurationBand maps a task duration in minutes to a block size. Zero and
// negative durations map to the small band.
func DurationBand(minutes int) int {
	switch {
	case minutes < 30:
		return DurationBandSmall
	case minutes < 60:
		return DurationBandMedium
	}
	return DurationBandLarge
}
