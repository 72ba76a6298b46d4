package osd

import (
	"context"
	"fmt"
	"net"
	"sync"

	"quorumfs/pkg/auth"
	"quorumfs/pkg/protocol"
	"quorumfs/pkg/types"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// Server is a development OSD: it keeps per-file replica state in
// memory and answers the RPC surface the coordinator drives. The real
// on-OSD replica state machine (lease handling, object fetch) lives
// outside this repository.
type Server struct {
	protocol.UnimplementedOSDServiceServer

	uuid       types.OSDID
	address    string
	logger     *zap.Logger
	authConfig *auth.AuthConfig

	mu    sync.RWMutex
	files map[types.FileID]*replicaState

	server   *grpc.Server
	listener net.Listener
}

type replicaState struct {
	invalidated    bool
	isPrimary      bool
	truncateEpoch  int64
	fileSize       int64
	objectVersions map[int64]int64
}

func NewServer(uuid types.OSDID, address string, logger *zap.Logger, authConfig *auth.AuthConfig) *Server {
	return &Server{
		uuid:       uuid,
		address:    address,
		logger:     logger,
		authConfig: authConfig,
		files:      make(map[types.FileID]*replicaState),
	}
}

func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	s.listener = listener

	var serverOpts []grpc.ServerOption
	if s.authConfig != nil && s.authConfig.Enabled {
		tlsBuilder, err := auth.NewTLSConfigBuilder(s.authConfig)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
		tlsConfig, err := tlsBuilder.BuildServerConfig()
		if err != nil {
			return fmt.Errorf("failed to build server TLS config: %w", err)
		}
		if tlsConfig != nil {
			serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsConfig)))
		}
	}

	s.server = grpc.NewServer(serverOpts...)
	protocol.RegisterOSDServiceServer(s.server, s)

	s.logger.Info("OSD starting",
		zap.String("uuid", string(s.uuid)),
		zap.String("address", s.address))
	return s.server.Serve(listener)
}

func (s *Server) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
}

// SeedObject records an object version on the local replica, for
// development setups and tests.
func (s *Server) SeedObject(fileID types.FileID, objNo, version int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(fileID)
	state.objectVersions[objNo] = version
	if version > state.fileSize {
		state.fileSize = version
	}
}

// SetPrimary marks the local replica as the lease holder.
func (s *Server) SetPrimary(fileID types.FileID, primary bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateLocked(fileID).isPrimary = primary
}

func (s *Server) stateLocked(fileID types.FileID) *replicaState {
	state, ok := s.files[fileID]
	if !ok {
		state = &replicaState{objectVersions: make(map[int64]int64)}
		s.files[fileID] = state
	}
	return state
}

// XLocSetInvalidate marks the replica invalid for client I/O and
// reports its object-version map.
func (s *Server) XLocSetInvalidate(ctx context.Context, req *protocol.XLocSetInvalidateRequest) (*protocol.XLocSetInvalidateResponse, error) {
	fileID := types.FileID(req.FileId)

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(fileID)
	state.invalidated = true

	status := &protocol.ReplicaStatus{
		TruncateEpoch: uint64(state.truncateEpoch),
		FileSize:      uint64(state.fileSize),
	}
	for objNo, version := range state.objectVersions {
		status.ObjectVersions = append(status.ObjectVersions, &protocol.ObjectVersion{
			ObjectNumber:  uint64(objNo),
			ObjectVersion: uint64(version),
		})
		if version > int64(status.MaxObjVersion) {
			status.MaxObjVersion = uint64(version)
		}
	}

	s.logger.Debug("Replica invalidated",
		zap.String("file_id", req.FileId),
		zap.Bool("is_primary", state.isPrimary))

	return &protocol.XLocSetInvalidateResponse{
		IsPrimary: state.isPrimary,
		Status:    status,
	}, nil
}

// Read serves priming probes. The dev OSD has no object data; it
// answers with a single zero byte whatever length was requested.
func (s *Server) Read(ctx context.Context, req *protocol.ReadRequest) (*protocol.ReadResponse, error) {
	length := req.Length
	if length == 0 || length > 1 {
		length = 1
	}

	s.logger.Debug("Read probe",
		zap.String("file_id", req.FileId),
		zap.Uint64("object", req.ObjectNumber))

	return &protocol.ReadResponse{Data: make([]byte, length)}, nil
}
