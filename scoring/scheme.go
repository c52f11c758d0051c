// SPDX-License-Identifier: MIT

package scoring

// Scheme scores symbol pairs for an aligner.
//
// Score must be a pure function of (a, b). GapPenalty is added once per
// position aligned against a gap and is normally negative.
type Scheme interface {
	Score(a, b byte) (int, error)
	GapPenalty() int
}

// Defaults for the uniform scheme.
const (
	DefaultMatch    = 3
	DefaultMismatch = -3
	DefaultGap      = -2
)

// Uniform scores every identical pair with Match and every other pair with
// Mismatch. Symbols are compared byte-for-byte (case-sensitive).
type Uniform struct {
	Match    int
	Mismatch int
	Gap      int
}

var _ Scheme = Uniform{}

// DefaultUniform returns Uniform{Match: 3, Mismatch: -3, Gap: -2}.
func DefaultUniform() Uniform {
	return Uniform{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// Score returns Match when a == b, otherwise Mismatch. It never fails.
func (u Uniform) Score(a, b byte) (int, error) {
	if a == b {
		return u.Match, nil
	}

	return u.Mismatch, nil
}

// GapPenalty returns u.Gap.
func (u Uniform) GapPenalty() int { return u.Gap }
