package striping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	policies := []Policy{
		{Pattern: "RAID0", StripeSize: 128, Width: 4},
		{Pattern: "RAID0", StripeSize: 4, Width: 1},
		{Pattern: "RAID6", StripeSize: 1024, Width: 8, ParityWidth: 2, ECWriteQuorum: 5},
		{Pattern: "X", StripeSize: 1, Width: 1},
		{Pattern: "STRIPING_POLICY_ERASURECODE", StripeSize: 256, Width: 6, ParityWidth: 3, ECWriteQuorum: 4},
	}

	for _, p := range policies {
		t.Run(p.Pattern, func(t *testing.T) {
			buf := p.Encode()
			assert.Len(t, buf, 16+len(p.Pattern))

			decoded, err := Decode(buf)
			require.NoError(t, err)
			assert.Equal(t, p, decoded)
			assert.True(t, p.Equal(decoded))
		})
	}
}

func TestEncodeWireSample(t *testing.T) {
	p := Policy{Pattern: "RAID0", StripeSize: 128, Width: 4}

	expected := []byte{
		0x00, 0x00, 0x00, 0x80, // stripe size
		0x00, 0x00, 0x00, 0x04, // width
		0x00, 0x00, 0x00, 0x00, // parity width
		0x00, 0x00, 0x00, 0x00, // EC write quorum
		0x52, 0x41, 0x49, 0x44, 0x30, // "RAID0"
	}
	assert.Equal(t, expected, p.Encode())

	decoded, err := Decode(expected)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestDecodeMalformed(t *testing.T) {
	for _, size := range []int{0, 1, 8, 15} {
		buf := make([]byte, size)
		_, err := Decode(buf)
		assert.ErrorIs(t, err, ErrMalformedRecord, "buffer of %d bytes", size)
	}

	// exactly 16 bytes is a valid record with an empty pattern
	decoded, err := Decode(make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, "", decoded.Pattern)
}

func TestCanonicalString(t *testing.T) {
	assert.Equal(t, "RAID0, 128, 4", Policy{Pattern: "RAID0", StripeSize: 128, Width: 4}.String())
	assert.Equal(t, "RAID6, 128, 4, 2, 3",
		Policy{Pattern: "RAID6", StripeSize: 128, Width: 4, ParityWidth: 2, ECWriteQuorum: 3}.String())

	a := Policy{Pattern: "RAID0", StripeSize: 128, Width: 4}
	b := Policy{Pattern: "RAID0", StripeSize: 128, Width: 4}
	c := Policy{Pattern: "RAID0", StripeSize: 64, Width: 4}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestValidate(t *testing.T) {
	valid := Policy{Pattern: "RAID0", StripeSize: 128, Width: 4}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		p    Policy
	}{
		{"empty pattern", Policy{StripeSize: 128, Width: 4}},
		{"non-ASCII pattern", Policy{Pattern: "RAID\xc3\x9f", StripeSize: 128, Width: 4}},
		{"zero stripe size", Policy{Pattern: "RAID0", Width: 4}},
		{"negative stripe size", Policy{Pattern: "RAID0", StripeSize: -1, Width: 4}},
		{"zero width", Policy{Pattern: "RAID0", StripeSize: 128}},
		{"parity not below width", Policy{Pattern: "RAID0", StripeSize: 128, Width: 4, ParityWidth: 4}},
		{"negative EC quorum", Policy{Pattern: "RAID0", StripeSize: 128, Width: 4, ECWriteQuorum: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.p.Validate(), ErrInvalidPolicy)
		})
	}
}
