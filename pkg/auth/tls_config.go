package auth

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfigBuilder builds TLS configurations for the MRC server and for
// client connections to OSDs and MRCs.
type TLSConfigBuilder struct {
	config *AuthConfig
}

func NewTLSConfigBuilder(config *AuthConfig) (*TLSConfigBuilder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &TLSConfigBuilder{config: config}, nil
}

// BuildServerConfig creates the TLS configuration for the server side.
// Returns nil when auth is disabled.
func (b *TLSConfigBuilder) BuildServerConfig() (*tls.Config, error) {
	if !b.config.Enabled {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(b.config.CertPath, b.config.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// BuildClientConfig creates the TLS configuration for dialing servers.
func (b *TLSConfigBuilder) BuildClientConfig() (*tls.Config, error) {
	if !b.config.Enabled {
		return &tls.Config{InsecureSkipVerify: true}, nil
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	caPool, err := b.loadCAPool(b.config.CAPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load CA pool: %w", err)
	}
	tlsConfig.RootCAs = caPool

	if b.config.CertPath != "" && b.config.KeyPath != "" {
		cert, err := tls.LoadX509KeyPair(b.config.CertPath, b.config.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

func (b *TLSConfigBuilder) loadCAPool(path string) (*x509.CertPool, error) {
	if path == "" {
		return x509.SystemCertPool()
	}

	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, ErrInvalidCA
	}
	return pool, nil
}
