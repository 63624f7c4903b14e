// Package hdpath parses BIP-32 derivation paths of the form
// m/44'/60'/0'/0/0 into an ordered list of child indices.
package hdpath

import (
	"strconv"
	"strings"
)

// HardenedOffset is added to a child index during hardened derivation.
const HardenedOffset uint32 = 1 << 31

// ChildNumber is a single child index in a derivation path.
// The index is stored unshifted; Raw applies the hardened offset.
type ChildNumber struct {
	index    uint32
	hardened bool
}

// Normal returns a non-hardened child number for index i.
func Normal(i uint32) ChildNumber {
	return ChildNumber{index: i}
}

// Hardened returns a hardened child number for index i.
func Hardened(i uint32) ChildNumber {
	return ChildNumber{index: i, hardened: true}
}

// Index returns the unshifted child index.
func (c ChildNumber) Index() uint32 {
	return c.index
}

// IsHardened reports whether the child uses hardened derivation.
func (c ChildNumber) IsHardened() bool {
	return c.hardened
}

// Raw returns the index as used on the wire: hardened children are
// offset by 2^31.
func (c ChildNumber) Raw() uint32 {
	if c.hardened {
		return c.index + HardenedOffset
	}
	return c.index
}

func (c ChildNumber) String() string {
	s := strconv.FormatUint(uint64(c.index), 10)
	if c.hardened {
		s += "'"
	}
	return s
}

// HDPath is an ordered derivation path, root to leaf. It is non-empty
// when produced by Parse and should be treated as immutable.
type HDPath []ChildNumber

func (p HDPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, c := range p {
		b.WriteString("/")
		b.WriteString(c.String())
	}
	return b.String()
}

// Parse parses a textual derivation path.
//
// The path must start with the root marker "m/"; the remainder is one
// or more "/"-separated base-10 indices, each optionally suffixed with
// "'" for hardened derivation. Indices must fit in [0, 2^31).
//
// Validation is two-stage: the root marker is checked first (ErrPathFormat),
// then each segment is parsed independently; a bad segment yields a
// *ChildIndexError naming the segment and wrapping the parse failure.
func Parse(path string) (HDPath, error) {
	if !strings.HasPrefix(path, "m/") {
		return nil, ErrPathFormat
	}

	segments := strings.Split(path[2:], "/")
	out := make(HDPath, 0, len(segments))

	for _, seg := range segments {
		raw := seg

		hardened := false
		if strings.HasSuffix(raw, "'") {
			hardened = true
			raw = raw[:len(raw)-1]
		}

		// Bit size 31 keeps the index below the hardened offset.
		idx, err := strconv.ParseUint(raw, 10, 31)
		if err != nil {
			return nil, &ChildIndexError{Segment: seg, Err: err}
		}

		if hardened {
			out = append(out, Hardened(uint32(idx)))
		} else {
			out = append(out, Normal(uint32(idx)))
		}
	}

	return out, nil
}
