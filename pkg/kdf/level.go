package kdf

// DepthLevel is a named scrypt work-factor preset. Exact values are a
// configuration concern; higher levels trade CPU time for resistance
// to offline guessing.
type DepthLevel uint32

const (
	// LevelNormal is the default work factor.
	LevelNormal DepthLevel = 1024

	// LevelHigh is the advanced work factor.
	LevelHigh DepthLevel = 8096

	// LevelUltra is the top work factor; derivation takes noticeably
	// longer.
	LevelUltra DepthLevel = 262144
)

// Scrypt returns the scrypt Kdf for the preset, with the standard
// block size and parallelization.
func (l DepthLevel) Scrypt() Scrypt {
	return Scrypt{N: uint32(l), R: 8, P: 1}
}
