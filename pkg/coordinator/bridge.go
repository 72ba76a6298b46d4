package coordinator

import (
	"quorumfs/pkg/config"
	"quorumfs/pkg/osd"
	"quorumfs/pkg/types"
)

// CallbackRequest re-enters the metadata processing stage: the stage
// runs the closure under its single-writer-per-file discipline and
// signals the outcome on Done. The coordinator holds no metadata locks
// itself.
type CallbackRequest struct {
	FileID types.FileID
	Run    func() error
	Done   chan error
}

func NewCallbackRequest(fileID types.FileID, run func() error) *CallbackRequest {
	return &CallbackRequest{FileID: fileID, Run: run, Done: make(chan error, 1)}
}

// Callback is implemented by the metadata operation that initiated the
// reconfiguration. InstallXLocSet must, under the metadata transaction,
// replace the file's XLocSet with the extended one (version bumped) and
// finish the request. FinishRequest reports a failed protocol run.
type Callback interface {
	InstallXLocSet(fileID types.FileID, extXLocSet *types.XLocSet) error
	FinishRequest(record *ErrorRecord)
}

// Dispatcher is the coordinator's back-reference into the metadata
// server: the shared OSD client, the OSD address registry, the
// configuration, and the processing stage's callback queue.
type Dispatcher interface {
	OSDClient() *osd.Client
	OSDRegistry() *osd.Registry
	Config() *config.MRCConfig
	EnqueueCallback(cb *CallbackRequest)
}
