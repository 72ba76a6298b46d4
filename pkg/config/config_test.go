package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"mrc": {
			"address": ":8601",
			"capability_secret": "s3cret",
			"osds": {"osd-a": "localhost:7001"}
		}
	}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8601", cfg.MRC.Address)
	assert.Equal(t, "s3cret", cfg.MRC.CapabilitySecret)
	assert.Equal(t, DefaultCapabilityTimeout, cfg.MRC.CapabilityTimeout)
	assert.Equal(t, DefaultLeaseTimeoutMs, cfg.MRC.LeaseTimeoutMs)
	assert.Equal(t, DefaultOSDRPCTimeoutMs, cfg.MRC.OSDRPCTimeoutMs)
	assert.Equal(t, "localhost:7001", cfg.MRC.OSDs["osd-a"])
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("QUORUMFS_MRC_ADDRESS", ":9999")
	t.Setenv("QUORUMFS_LEASE_TIMEOUT_MS", "2500")

	cfg := LoadFromEnv()
	assert.Equal(t, ":9999", cfg.MRC.Address)
	assert.Equal(t, 2500, cfg.MRC.LeaseTimeoutMs)
	assert.Equal(t, DefaultOSDRPCTimeoutMs, cfg.MRC.OSDRPCTimeoutMs)
}
