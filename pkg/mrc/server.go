package mrc

import (
	"context"
	"fmt"
	"net"
	"time"

	"quorumfs/pkg/auth"
	"quorumfs/pkg/config"
	"quorumfs/pkg/coordinator"
	"quorumfs/pkg/osd"
	"quorumfs/pkg/protocol"
	"quorumfs/pkg/striping"
	"quorumfs/pkg/types"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// Server is the metadata server: it owns the file metadata store, the
// processing stage, the replica-set reconfiguration coordinator and the
// administrative gRPC surface.
type Server struct {
	protocol.UnimplementedAdminServiceServer

	cfg    *config.MRCConfig
	logger *zap.Logger

	store     *Store
	stage     *ProcessingStage
	coord     *coordinator.Coordinator
	osdClient *osd.Client
	registry  *osd.Registry

	server   *grpc.Server
	listener net.Listener
}

func New(cfg *config.MRCConfig, logger *zap.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		logger:    logger,
		store:     NewStore(cfg.ReplMasterUUID),
		stage:     NewProcessingStage(logger),
		registry:  osd.NewRegistry(cfg.OSDs),
		osdClient: osd.NewClient(&cfg.Auth, time.Duration(cfg.OSDRPCTimeoutMs)*time.Millisecond, logger),
	}
	s.coord = coordinator.New(s, logger)
	return s
}

// Dispatcher implementation: the coordinator's view of the server.

func (s *Server) OSDClient() *osd.Client     { return s.osdClient }
func (s *Server) OSDRegistry() *osd.Registry { return s.registry }
func (s *Server) Config() *config.MRCConfig  { return s.cfg }
func (s *Server) Store() *Store              { return s.store }

func (s *Server) EnqueueCallback(cb *coordinator.CallbackRequest) {
	s.stage.Enqueue(cb)
}

func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	}
	s.listener = listener

	var serverOpts []grpc.ServerOption
	if s.cfg.Auth.Enabled {
		tlsBuilder, err := auth.NewTLSConfigBuilder(&s.cfg.Auth)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
		tlsConfig, err := tlsBuilder.BuildServerConfig()
		if err != nil {
			return fmt.Errorf("failed to build server TLS config: %w", err)
		}
		if tlsConfig != nil {
			serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsConfig)))
			s.logger.Info("TLS enabled for MRC", zap.String("address", s.cfg.Address))
		}
	}

	s.server = grpc.NewServer(serverOpts...)
	protocol.RegisterAdminServiceServer(s.server, s)

	s.stage.Start()
	s.coord.Start()

	s.logger.Info("MRC starting", zap.String("address", s.cfg.Address))
	return s.server.Serve(listener)
}

func (s *Server) Stop() {
	s.coord.Shutdown()
	s.stage.Stop()
	if s.server != nil {
		s.server.GracefulStop()
	}
}

// CreateFile registers a file's metadata with its initial replica set.
func (s *Server) CreateFile(ctx context.Context, req *protocol.CreateFileRequest) (*protocol.CreateFileResponse, error) {
	fileID := types.FileID(req.FileId)
	if fileID == "" {
		return &protocol.CreateFileResponse{Success: false, Message: "file ID is required"}, nil
	}

	sp := striping.New(striping.PatternRAID0, 128, 1)
	if len(req.StripingPolicy) > 0 {
		var err error
		sp, err = striping.Decode(req.StripingPolicy)
		if err != nil {
			return &protocol.CreateFileResponse{Success: false, Message: err.Error()}, nil
		}
	}

	set := &types.XLocSet{
		UpdatePolicy: req.ReplicaUpdatePolicy,
		Version:      1,
	}
	for _, r := range req.Replicas {
		set.Replicas = append(set.Replicas, protocol.ReplicaFromProto(r))
	}

	if err := s.store.CreateFile(fileID, set, sp); err != nil {
		return &protocol.CreateFileResponse{Success: false, Message: err.Error()}, nil
	}

	s.logger.Info("File created",
		zap.String("file_id", req.FileId),
		zap.String("policy", req.ReplicaUpdatePolicy),
		zap.Int("replicas", len(req.Replicas)))

	return &protocol.CreateFileResponse{Success: true}, nil
}

// AddReplicas extends a file's replica set. The call blocks until the
// coordinator has finished the reconfiguration protocol.
func (s *Server) AddReplicas(ctx context.Context, req *protocol.AddReplicasRequest) (*protocol.AddReplicasResponse, error) {
	fileID := types.FileID(req.FileId)
	if len(req.NewReplicas) == 0 {
		return &protocol.AddReplicasResponse{Success: false, Message: "no replicas to add"}, nil
	}

	meta, err := s.store.GetFile(fileID)
	if err != nil {
		return &protocol.AddReplicasResponse{Success: false, Message: err.Error()}, nil
	}
	cur := meta.XLocSet

	newXLocs := make([]types.XLoc, 0, len(req.NewReplicas))
	for _, r := range req.NewReplicas {
		xloc := protocol.ReplicaFromProto(r)
		if len(xloc.OSDs) == 0 {
			return &protocol.AddReplicasResponse{Success: false, Message: "replica without OSDs"}, nil
		}
		if cur.ContainsOSD(xloc.Head()) {
			return &protocol.AddReplicasResponse{Success: false,
				Message: fmt.Sprintf("OSD %s already holds a replica", xloc.Head())}, nil
		}
		newXLocs = append(newXLocs, xloc)
	}

	// The extended set is the current one plus the new replicas at the
	// tail; its version stays equal to the current version until the
	// install bumps it.
	ext := cur.Clone()
	ext.Replicas = append(ext.Replicas, newXLocs...)

	op := newReconfigOp(s)
	m := s.coord.AddReplicas(fileID, meta.Epoch, cur, ext, newXLocs, op)
	if err := s.coord.Submit(m); err != nil {
		return &protocol.AddReplicasResponse{Success: false, Message: err.Error()}, nil
	}

	select {
	case record := <-op.done:
		if record != nil {
			return &protocol.AddReplicasResponse{Success: false, Message: record.Error()}, nil
		}
		return &protocol.AddReplicasResponse{Success: true, Version: uint64(op.installedVersion)}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RemoveReplicas is reserved; the coordinator reports it as not
// implemented.
func (s *Server) RemoveReplicas(ctx context.Context, req *protocol.RemoveReplicasRequest) (*protocol.RemoveReplicasResponse, error) {
	fileID := types.FileID(req.FileId)
	meta, err := s.store.GetFile(fileID)
	if err != nil {
		return &protocol.RemoveReplicasResponse{Success: false, Message: err.Error()}, nil
	}

	op := newReconfigOp(s)
	m := s.coord.RemoveReplicas(fileID, meta.Epoch, meta.XLocSet, meta.XLocSet, op)
	if err := s.coord.Submit(m); err != nil {
		return &protocol.RemoveReplicasResponse{Success: false, Message: err.Error()}, nil
	}

	select {
	case record := <-op.done:
		if record != nil {
			return &protocol.RemoveReplicasResponse{Success: false, Message: record.Error()}, nil
		}
		return &protocol.RemoveReplicasResponse{Success: true}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ReplaceReplica is reserved; the coordinator reports it as not
// implemented.
func (s *Server) ReplaceReplica(ctx context.Context, req *protocol.ReplaceReplicaRequest) (*protocol.ReplaceReplicaResponse, error) {
	fileID := types.FileID(req.FileId)
	meta, err := s.store.GetFile(fileID)
	if err != nil {
		return &protocol.ReplaceReplicaResponse{Success: false, Message: err.Error()}, nil
	}

	op := newReconfigOp(s)
	m := s.coord.ReplaceReplica(fileID, meta.Epoch, meta.XLocSet, meta.XLocSet, op)
	if err := s.coord.Submit(m); err != nil {
		return &protocol.ReplaceReplicaResponse{Success: false, Message: err.Error()}, nil
	}

	select {
	case record := <-op.done:
		if record != nil {
			return &protocol.ReplaceReplicaResponse{Success: false, Message: record.Error()}, nil
		}
		return &protocol.ReplaceReplicaResponse{Success: true}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Server) GetXLocSet(ctx context.Context, req *protocol.GetXLocSetRequest) (*protocol.GetXLocSetResponse, error) {
	meta, err := s.store.GetFile(types.FileID(req.FileId))
	if err != nil {
		return &protocol.GetXLocSetResponse{Success: false, Message: err.Error()}, nil
	}
	return &protocol.GetXLocSetResponse{
		Success: true,
		XlocSet: protocol.XLocSetToProto(meta.XLocSet),
	}, nil
}

func (s *Server) Status(ctx context.Context, req *protocol.StatusRequest) (*protocol.StatusResponse, error) {
	files := s.store.ListFiles()
	resp := &protocol.StatusResponse{
		Address:   s.cfg.Address,
		FileCount: int32(len(files)),
	}
	for _, meta := range files {
		resp.Files = append(resp.Files, &protocol.FileStatus{
			FileId:              string(meta.FileID),
			Version:             uint64(meta.XLocSet.Version),
			ReplicaUpdatePolicy: meta.XLocSet.UpdatePolicy,
			ReplicaCount:        int32(meta.XLocSet.ReplicaCount()),
		})
	}
	return resp, nil
}

// reconfigOp is the server-side metadata operation handed to the
// coordinator. It installs the new XLocSet under the processing stage's
// discipline and relays the outcome to the waiting RPC handler.
type reconfigOp struct {
	server           *Server
	installedVersion int64
	done             chan *coordinator.ErrorRecord
}

func newReconfigOp(server *Server) *reconfigOp {
	return &reconfigOp{server: server, done: make(chan *coordinator.ErrorRecord, 1)}
}

func (op *reconfigOp) InstallXLocSet(fileID types.FileID, ext *types.XLocSet) error {
	if err := op.server.store.InstallXLocSet(fileID, ext); err != nil {
		return err
	}
	op.installedVersion = ext.Version + 1
	op.done <- nil
	return nil
}

func (op *reconfigOp) FinishRequest(record *coordinator.ErrorRecord) {
	op.done <- record
}
