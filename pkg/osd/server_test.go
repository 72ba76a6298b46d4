package osd

import (
	"context"
	"testing"

	"quorumfs/pkg/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServerInvalidateReportsState(t *testing.T) {
	s := NewServer("osd-a", ":0", zap.NewNop(), nil)
	s.SeedObject("file-1", 0, 4)
	s.SeedObject("file-1", 1, 2)
	s.SetPrimary("file-1", true)

	resp, err := s.XLocSetInvalidate(context.Background(), &protocol.XLocSetInvalidateRequest{
		FileId: "file-1",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsPrimary)
	require.NotNil(t, resp.Status)
	assert.Equal(t, uint64(4), resp.Status.MaxObjVersion)
	assert.Len(t, resp.Status.ObjectVersions, 2)
}

func TestServerInvalidateUnknownFile(t *testing.T) {
	s := NewServer("osd-a", ":0", zap.NewNop(), nil)

	resp, err := s.XLocSetInvalidate(context.Background(), &protocol.XLocSetInvalidateRequest{
		FileId: "file-unknown",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsPrimary)
	require.NotNil(t, resp.Status)
	assert.Empty(t, resp.Status.ObjectVersions)
}

func TestServerReadProbe(t *testing.T) {
	s := NewServer("osd-a", ":0", zap.NewNop(), nil)

	resp, err := s.Read(context.Background(), &protocol.ReadRequest{
		FileId: "file-1",
		Length: 1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}
