package ashwam

import "fmt"

// Config holds the tunable knobs of the scoring engine. Both knobs apply
// identically to predicted and gold spans so neither side is systematically
// favored.
type Config struct {
	// JaccardThreshold is the minimum token-set overlap for a same-domain
	// pair to become a match candidate.
	JaccardThreshold float64 `json:"jaccard_threshold" yaml:"jaccard_threshold"`

	// StripPunctuation removes leading and trailing punctuation from each
	// whitespace token before comparison, so "chest." and "chest" count as
	// the same token.
	StripPunctuation bool `json:"strip_punctuation" yaml:"strip_punctuation"`
}

// DefaultConfig returns the engine defaults: the 0.5 overlap threshold and
// punctuation stripping enabled.
func DefaultConfig() Config {
	return Config{
		JaccardThreshold: 0.5,
		StripPunctuation: true,
	}
}

// Validate checks configuration bounds.
func (c Config) Validate() error {
	if c.JaccardThreshold < 0 || c.JaccardThreshold > 1 {
		return fmt.Errorf("%w: jaccard_threshold %v outside [0,1]", ErrInvalidConfig, c.JaccardThreshold)
	}
	return nil
}
