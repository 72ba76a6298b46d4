package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, (&AuthConfig{}).Validate())
	assert.NoError(t, (*AuthConfig)(nil).Validate())

	enabled := &AuthConfig{Enabled: true}
	assert.ErrorIs(t, enabled.Validate(), ErrMissingCertificate)

	complete := &AuthConfig{Enabled: true, CertPath: "cert.pem", KeyPath: "key.pem"}
	assert.NoError(t, complete.Validate())
}

func TestBuildConfigsDisabled(t *testing.T) {
	builder, err := NewTLSConfigBuilder(&AuthConfig{})
	require.NoError(t, err)

	serverCfg, err := builder.BuildServerConfig()
	require.NoError(t, err)
	assert.Nil(t, serverCfg)

	clientCfg, err := builder.BuildClientConfig()
	require.NoError(t, err)
	require.NotNil(t, clientCfg)
	assert.True(t, clientCfg.InsecureSkipVerify)
}
