package osd

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quorumfs/pkg/protocol"
	"quorumfs/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// fakeOSDService fakes one OSD endpoint.
type fakeOSDService struct {
	mu          sync.Mutex
	invalidates int
	reads       int

	isPrimary bool
	status    *protocol.ReplicaStatus
	err       error
}

func (f *fakeOSDService) XLocSetInvalidate(ctx context.Context, in *protocol.XLocSetInvalidateRequest, opts ...grpc.CallOption) (*protocol.XLocSetInvalidateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidates++
	if f.err != nil {
		return nil, f.err
	}
	return &protocol.XLocSetInvalidateResponse{IsPrimary: f.isPrimary, Status: f.status}, nil
}

func (f *fakeOSDService) Read(ctx context.Context, in *protocol.ReadRequest, opts ...grpc.CallOption) (*protocol.ReadResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.err != nil {
		return nil, f.err
	}
	return &protocol.ReadResponse{Data: []byte{0}}, nil
}

func newTestClient(services map[string]*fakeOSDService) *Client {
	dial := func(ctx context.Context, addr string) (protocol.OSDServiceClient, func() error, error) {
		svc, ok := services[addr]
		if !ok {
			return nil, nil, errors.New("connection refused")
		}
		return svc, func() error { return nil }, nil
	}
	return NewClientWithDialer(time.Second, zap.NewNop(), dial)
}

func TestInvalidate(t *testing.T) {
	svc := &fakeOSDService{
		isPrimary: true,
		status: &protocol.ReplicaStatus{
			MaxObjVersion: 4,
			ObjectVersions: []*protocol.ObjectVersion{
				{ObjectNumber: 0, ObjectVersion: 4},
			},
		},
	}
	client := newTestClient(map[string]*fakeOSDService{"osd-a:7001": svc})

	result, err := client.Invalidate(context.Background(), "osd-a:7001", &protocol.FileCredentials{}, "file-1")
	require.NoError(t, err)
	assert.True(t, result.IsPrimary)
	require.NotNil(t, result.Status)
	assert.Equal(t, int64(4), result.Status.MaxObjVersion)
	require.Len(t, result.Status.ObjectVersions, 1)
	assert.Equal(t, types.ObjectVersion{ObjectNumber: 0, Version: 4}, result.Status.ObjectVersions[0])
}

func TestInvalidateWithoutStatus(t *testing.T) {
	svc := &fakeOSDService{}
	client := newTestClient(map[string]*fakeOSDService{"osd-a:7001": svc})

	result, err := client.Invalidate(context.Background(), "osd-a:7001", &protocol.FileCredentials{}, "file-1")
	require.NoError(t, err)
	assert.False(t, result.IsPrimary)
	assert.Nil(t, result.Status)
}

func TestInvalidateTransportError(t *testing.T) {
	client := newTestClient(map[string]*fakeOSDService{})

	_, err := client.Invalidate(context.Background(), "osd-gone:7001", &protocol.FileCredentials{}, "file-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "osd-gone:7001")
}

func TestReadProbe(t *testing.T) {
	svc := &fakeOSDService{}
	client := newTestClient(map[string]*fakeOSDService{"osd-e:7005": svc})

	err := client.ReadProbe(context.Background(), "osd-e:7005", &protocol.FileCredentials{}, "file-1")
	require.NoError(t, err)
	assert.Equal(t, 1, svc.reads)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(map[string]string{"osd-a": "localhost:7001"})

	addr, err := registry.Lookup("osd-a")
	require.NoError(t, err)
	assert.Equal(t, "localhost:7001", addr)

	_, err = registry.Lookup("osd-x")
	assert.Error(t, err)

	registry.Register("osd-x", "localhost:7009")
	addr, err = registry.Lookup("osd-x")
	require.NoError(t, err)
	assert.Equal(t, "localhost:7009", addr)
}
