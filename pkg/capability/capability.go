package capability

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"quorumfs/pkg/config"
	"quorumfs/pkg/protocol"
	"quorumfs/pkg/types"
)

// Access modes granted by a capability.
const (
	AccessRead      uint32 = 0x1
	AccessWrite     uint32 = 0x2
	AccessReadWrite uint32 = AccessRead | AccessWrite
)

// Snapshot configurations. Reconfiguration capabilities always disable
// snapshots.
const (
	SnapConfigDisabled uint32 = 0
	SnapConfigAtEpoch  uint32 = 1
)

// Capability is a short-lived signed token authorizing operations on a
// file. It is opaque to the coordinator beyond being issuable and
// attachable to OSD RPCs.
type Capability struct {
	FileID           types.FileID
	AccessMode       uint32
	Validity         uint32 // seconds
	ExpiresAt        int64  // unix seconds
	ClientIdentity   string
	Epoch            uint32
	ReplicateOnClose bool
	SnapConfig       uint32
	SnapTimestamp    int64
	Signature        string
}

// Builder issues capabilities signed with the configured shared secret.
type Builder struct {
	cfg *config.MRCConfig
	now func() time.Time
}

func NewBuilder(cfg *config.MRCConfig) *Builder {
	return &Builder{cfg: cfg, now: time.Now}
}

// BuildRW issues a read-write capability for the file, valid for the
// configured capability timeout. The client identity defaults to the
// advertised address, falling back to the local hostname.
func (b *Builder) BuildRW(fileID types.FileID, epoch uint32) *Capability {
	validity := uint32(b.cfg.CapabilityTimeout)
	now := b.now().Unix()

	clientIdentity := b.cfg.AdvertisedAddress
	if clientIdentity == "" {
		if hostname, err := os.Hostname(); err == nil {
			clientIdentity = hostname
		}
	}

	c := &Capability{
		FileID:           fileID,
		AccessMode:       AccessReadWrite,
		Validity:         validity,
		ExpiresAt:        now + int64(validity),
		ClientIdentity:   clientIdentity,
		Epoch:            epoch,
		ReplicateOnClose: false,
		SnapConfig:       SnapConfigDisabled,
		SnapTimestamp:    0,
	}
	c.Signature = sign(c, b.cfg.CapabilitySecret)
	return c
}

// Verify recomputes the signature with the given secret.
func (c *Capability) Verify(secret string) bool {
	expected := sign(c, secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(c.Signature)) == 1
}

func (c *Capability) Expired(now time.Time) bool {
	return now.Unix() > c.ExpiresAt
}

// ToXCap converts the capability to its wire form.
func (c *Capability) ToXCap() *protocol.XCap {
	return &protocol.XCap{
		FileId:           string(c.FileID),
		AccessMode:       c.AccessMode,
		ExpireTimeS:      uint64(c.ExpiresAt),
		ExpireTimeoutS:   c.Validity,
		ClientIdentity:   c.ClientIdentity,
		TruncateEpoch:    c.Epoch,
		ReplicateOnClose: c.ReplicateOnClose,
		SnapConfig:       c.SnapConfig,
		SnapTimestamp:    uint64(c.SnapTimestamp),
		ServerSignature:  c.Signature,
	}
}

func sign(c *Capability, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%d:%d:%d:%s:%d:%t:%d:%d",
		c.FileID, c.AccessMode, c.Validity, c.ExpiresAt, c.ClientIdentity,
		c.Epoch, c.ReplicateOnClose, c.SnapConfig, c.SnapTimestamp)
	return hex.EncodeToString(mac.Sum(nil))
}
