package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"quorumfs/pkg/auth"
)

const (
	DefaultCapabilityTimeout = 600   // seconds
	DefaultLeaseTimeoutMs    = 15000 // lease-wait sleep during reconfiguration
	DefaultOSDRPCTimeoutMs   = 30000 // per-call deadline against OSDs
)

type Config struct {
	MRC MRCConfig `json:"mrc"`
}

// MRCConfig configures the metadata server and its reconfiguration
// coordinator.
type MRCConfig struct {
	Address           string          `json:"address"`
	AdvertisedAddress string          `json:"advertised_address,omitempty"`
	CapabilityTimeout int             `json:"capability_timeout,omitempty"` // seconds
	CapabilitySecret  string          `json:"capability_secret"`
	LeaseTimeoutMs    int             `json:"lease_timeout_ms,omitempty"`
	OSDRPCTimeoutMs   int             `json:"osd_rpc_timeout_ms,omitempty"`
	ReplMasterUUID    string          `json:"repl_master_uuid,omitempty"`
	Auth              auth.AuthConfig `json:"auth,omitempty"`

	// OSDs seeds the UUID to address mapping normally maintained by the
	// directory service.
	OSDs map[string]string `json:"osds,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.MRC.applyDefaults()
	return &cfg, nil
}

func LoadFromEnv() *Config {
	cfg := &Config{
		MRC: MRCConfig{
			Address:           getEnv("QUORUMFS_MRC_ADDRESS", ":8601"),
			AdvertisedAddress: getEnv("QUORUMFS_ADVERTISED_ADDRESS", ""),
			CapabilitySecret:  getEnv("QUORUMFS_CAPABILITY_SECRET", ""),
			CapabilityTimeout: getEnvInt("QUORUMFS_CAPABILITY_TIMEOUT", DefaultCapabilityTimeout),
			LeaseTimeoutMs:    getEnvInt("QUORUMFS_LEASE_TIMEOUT_MS", DefaultLeaseTimeoutMs),
			OSDRPCTimeoutMs:   getEnvInt("QUORUMFS_OSD_RPC_TIMEOUT_MS", DefaultOSDRPCTimeoutMs),
		},
	}
	return cfg
}

func (c *MRCConfig) applyDefaults() {
	if c.CapabilityTimeout <= 0 {
		c.CapabilityTimeout = DefaultCapabilityTimeout
	}
	if c.LeaseTimeoutMs <= 0 {
		c.LeaseTimeoutMs = DefaultLeaseTimeoutMs
	}
	if c.OSDRPCTimeoutMs <= 0 {
		c.OSDRPCTimeoutMs = DefaultOSDRPCTimeoutMs
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
