package capability

import (
	"os"
	"testing"
	"time"

	"quorumfs/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.MRCConfig {
	return &config.MRCConfig{
		AdvertisedAddress: "mrc.example.org:8601",
		CapabilityTimeout: 600,
		CapabilitySecret:  "test-secret",
	}
}

func TestBuildRW(t *testing.T) {
	b := NewBuilder(testConfig())
	issued := time.Unix(1700000000, 0)
	b.now = func() time.Time { return issued }

	c := b.BuildRW("vol/file-1", 3)

	assert.Equal(t, AccessReadWrite, c.AccessMode)
	assert.Equal(t, uint32(600), c.Validity)
	assert.Equal(t, issued.Unix()+600, c.ExpiresAt)
	assert.Equal(t, "mrc.example.org:8601", c.ClientIdentity)
	assert.Equal(t, uint32(3), c.Epoch)
	assert.False(t, c.ReplicateOnClose)
	assert.Equal(t, SnapConfigDisabled, c.SnapConfig)
	assert.NotEmpty(t, c.Signature)
}

func TestVerify(t *testing.T) {
	b := NewBuilder(testConfig())
	c := b.BuildRW("vol/file-1", 0)

	assert.True(t, c.Verify("test-secret"))
	assert.False(t, c.Verify("wrong-secret"))

	tampered := *c
	tampered.FileID = "vol/file-2"
	assert.False(t, tampered.Verify("test-secret"))
}

func TestExpired(t *testing.T) {
	b := NewBuilder(testConfig())
	issued := time.Unix(1700000000, 0)
	b.now = func() time.Time { return issued }

	c := b.BuildRW("vol/file-1", 0)
	assert.False(t, c.Expired(issued))
	assert.False(t, c.Expired(issued.Add(600*time.Second)))
	assert.True(t, c.Expired(issued.Add(601*time.Second)))
}

func TestHostnameFallback(t *testing.T) {
	cfg := testConfig()
	cfg.AdvertisedAddress = ""
	b := NewBuilder(cfg)

	c := b.BuildRW("vol/file-1", 0)
	// identity falls back to the local hostname, which may legitimately
	// be empty only if the lookup failed
	hostname, _ := os.Hostname()
	assert.Equal(t, hostname, c.ClientIdentity)
	assert.True(t, c.Verify("test-secret"))
}

func TestToXCap(t *testing.T) {
	b := NewBuilder(testConfig())
	c := b.BuildRW("vol/file-1", 7)

	xcap := c.ToXCap()
	require.NotNil(t, xcap)
	assert.Equal(t, "vol/file-1", xcap.FileId)
	assert.Equal(t, AccessReadWrite, xcap.AccessMode)
	assert.Equal(t, uint64(c.ExpiresAt), xcap.ExpireTimeS)
	assert.Equal(t, uint32(600), xcap.ExpireTimeoutS)
	assert.Equal(t, uint32(7), xcap.TruncateEpoch)
	assert.Equal(t, c.Signature, xcap.ServerSignature)
}
