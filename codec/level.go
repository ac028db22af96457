package codec

// Tier classifies a raw signed compression level into the mode it selects.
// Several libraries overload a single integer so that negative values pick a
// fast mode, zero a default mode and positive values a high-compression mode.
// The conversion happens once, here, instead of leaking sign checks into the
// codecs.
type Tier int

const (
	TierFast Tier = iota
	TierDefault
	TierHigh
)

// Level is a raw signed compression level split into its tier and magnitude.
type Level struct {
	Tier      Tier
	Magnitude int
	Raw       int
}

// NewLevel converts a raw signed level into its tagged form.
func NewLevel(raw int) Level {
	switch {
	case raw < 0:
		return Level{Tier: TierFast, Magnitude: -raw, Raw: raw}
	case raw == 0:
		return Level{Tier: TierDefault, Raw: raw}
	default:
		return Level{Tier: TierHigh, Magnitude: raw, Raw: raw}
	}
}
