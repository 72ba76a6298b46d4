package striping

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Byte layout of the encoded record. The four counters are 32-bit
// big-endian; the pattern consumes the remainder without a terminator.
const (
	sizeIndex     = 0
	widthIndex    = 4
	parityIndex   = 8
	ecQuorumIndex = 12
	patternIndex  = 16
)

var (
	ErrMalformedRecord = errors.New("malformed striping policy record")
	ErrInvalidPolicy   = errors.New("invalid striping policy")
)

// PatternRAID0 is the only striping pattern currently deployed.
const PatternRAID0 = "RAID0"

// Policy is the striping descriptor embedded in file metadata. It is a
// value object: build it once, never mutate it.
type Policy struct {
	Pattern       string
	StripeSize    int32 // kilobytes per stripe
	Width         int32 // OSDs per stripe
	ParityWidth   int32
	ECWriteQuorum int32
}

// New builds a policy without parity or EC quorum.
func New(pattern string, stripeSize, width int32) Policy {
	return Policy{Pattern: pattern, StripeSize: stripeSize, Width: width}
}

func (p Policy) Validate() error {
	if p.Pattern == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidPolicy)
	}
	for i := 0; i < len(p.Pattern); i++ {
		if p.Pattern[i] > 127 {
			return fmt.Errorf("%w: pattern must be ASCII", ErrInvalidPolicy)
		}
	}
	if p.StripeSize <= 0 {
		return fmt.Errorf("%w: stripe size must be positive", ErrInvalidPolicy)
	}
	if p.Width < 1 {
		return fmt.Errorf("%w: width must be at least 1", ErrInvalidPolicy)
	}
	if p.ParityWidth < 0 || p.ParityWidth >= p.Width {
		return fmt.Errorf("%w: parity width must be below width", ErrInvalidPolicy)
	}
	if p.ECWriteQuorum < 0 {
		return fmt.Errorf("%w: negative EC write quorum", ErrInvalidPolicy)
	}
	return nil
}

// Encode renders the record's canonical byte form. The length is always
// 16 + len(pattern).
func (p Policy) Encode() []byte {
	buf := make([]byte, patternIndex+len(p.Pattern))
	binary.BigEndian.PutUint32(buf[sizeIndex:], uint32(p.StripeSize))
	binary.BigEndian.PutUint32(buf[widthIndex:], uint32(p.Width))
	binary.BigEndian.PutUint32(buf[parityIndex:], uint32(p.ParityWidth))
	binary.BigEndian.PutUint32(buf[ecQuorumIndex:], uint32(p.ECWriteQuorum))
	copy(buf[patternIndex:], p.Pattern)
	return buf
}

// Decode parses an encoded record. A buffer shorter than the fixed
// prefix is malformed.
func Decode(buf []byte) (Policy, error) {
	if len(buf) < patternIndex {
		return Policy{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedRecord, len(buf), patternIndex)
	}
	return Policy{
		StripeSize:    int32(binary.BigEndian.Uint32(buf[sizeIndex:])),
		Width:         int32(binary.BigEndian.Uint32(buf[widthIndex:])),
		ParityWidth:   int32(binary.BigEndian.Uint32(buf[parityIndex:])),
		ECWriteQuorum: int32(binary.BigEndian.Uint32(buf[ecQuorumIndex:])),
		Pattern:       string(buf[patternIndex:]),
	}, nil
}

// String is the canonical form; policy equality is defined on it.
func (p Policy) String() string {
	if p.ParityWidth == 0 && p.ECWriteQuorum == 0 {
		return fmt.Sprintf("%s, %d, %d", p.Pattern, p.StripeSize, p.Width)
	}
	return fmt.Sprintf("%s, %d, %d, %d, %d", p.Pattern, p.StripeSize, p.Width, p.ParityWidth, p.ECWriteQuorum)
}

func (p Policy) Equal(o Policy) bool {
	return p.String() == o.String()
}
