package osd

import (
	"context"
	"fmt"
	"net"
	"time"

	"quorumfs/pkg/auth"
	"quorumfs/pkg/protocol"
	"quorumfs/pkg/types"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultRPCTimeout bounds a single call against an OSD.
const DefaultRPCTimeout = 30 * time.Second

// InvalidateResult is the outcome of invalidating one replica.
type InvalidateResult struct {
	IsPrimary bool
	Status    *types.ReplicaStatus
}

// dialFunc opens a client to one OSD; the returned closer releases the
// connection. Injectable for tests.
type dialFunc func(ctx context.Context, addr string) (protocol.OSDServiceClient, func() error, error)

// Client is a typed façade over the OSD RPC surface. It is shared
// between components and safe for concurrent use.
type Client struct {
	authConfig *auth.AuthConfig
	timeout    time.Duration
	logger     *zap.Logger
	dial       dialFunc
}

func NewClient(authConfig *auth.AuthConfig, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	c := &Client{
		authConfig: authConfig,
		timeout:    timeout,
		logger:     logger,
	}
	c.dial = c.dialGRPC
	return c
}

// NewClientWithDialer builds a client with a custom dialer. Used by
// tests to stub out the network.
func NewClientWithDialer(timeout time.Duration, logger *zap.Logger, dial dialFunc) *Client {
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	return &Client{timeout: timeout, logger: logger, dial: dial}
}

// Invalidate marks the replica on the given OSD invalid for client I/O
// and returns its current object-version map.
func (c *Client) Invalidate(ctx context.Context, addr string, creds *protocol.FileCredentials, fileID types.FileID) (*InvalidateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, closer, err := c.dial(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to OSD %s: %w", addr, err)
	}
	defer closer()

	resp, err := client.XLocSetInvalidate(ctx, &protocol.XLocSetInvalidateRequest{
		FileCredentials: creds,
		FileId:          string(fileID),
	})
	if err != nil {
		return nil, fmt.Errorf("invalidate on OSD %s failed: %w", addr, err)
	}

	return &InvalidateResult{
		IsPrimary: resp.GetIsPrimary(),
		Status:    protocol.ReplicaStatusFromProto(resp.GetStatus()),
	}, nil
}

// ReadProbe reads a single byte of object 0 from the OSD to trigger
// replication priming on a fresh replica.
func (c *Client) ReadProbe(ctx context.Context, addr string, creds *protocol.FileCredentials, fileID types.FileID) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, closer, err := c.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("failed to connect to OSD %s: %w", addr, err)
	}
	defer closer()

	_, err = client.Read(ctx, &protocol.ReadRequest{
		FileCredentials: creds,
		FileId:          string(fileID),
		ObjectNumber:    0,
		ObjectVersion:   0,
		Offset:          0,
		Length:          1,
	})
	if err != nil {
		return fmt.Errorf("read probe on OSD %s failed: %w", addr, err)
	}
	return nil
}

// dialGRPC creates a gRPC connection to an OSD with proper TLS
// configuration.
func (c *Client) dialGRPC(ctx context.Context, addr string) (protocol.OSDServiceClient, func() error, error) {
	var dialOpts []grpc.DialOption

	if c.authConfig != nil && c.authConfig.Enabled {
		tlsBuilder, err := auth.NewTLSConfigBuilder(c.authConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create TLS config builder: %w", err)
		}

		tlsConfig, err := tlsBuilder.BuildClientConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build client TLS config: %w", err)
		}

		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		tlsConfig.ServerName = host

		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)))
		c.logger.Debug("Connecting to OSD with TLS", zap.String("address", addr))
	} else {
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		c.logger.Debug("Connecting to OSD without TLS", zap.String("address", addr))
	}

	conn, err := grpc.DialContext(ctx, addr, dialOpts...)
	if err != nil {
		return nil, nil, err
	}
	return protocol.NewOSDServiceClient(conn), conn.Close, nil
}
