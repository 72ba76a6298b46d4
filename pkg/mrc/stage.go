package mrc

import (
	"context"

	"quorumfs/pkg/coordinator"

	"go.uber.org/zap"
)

const callbackQueueSize = 256

// ProcessingStage executes metadata callback requests one at a time,
// which gives every file a single writer. The coordinator re-enters
// this stage to install a new XLocSet instead of taking metadata locks
// itself.
type ProcessingStage struct {
	q      chan *coordinator.CallbackRequest
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewProcessingStage(logger *zap.Logger) *ProcessingStage {
	ctx, cancel := context.WithCancel(context.Background())
	return &ProcessingStage{
		q:      make(chan *coordinator.CallbackRequest, callbackQueueSize),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (p *ProcessingStage) Start() {
	go p.run()
}

func (p *ProcessingStage) Stop() {
	p.cancel()
	<-p.done
}

// Enqueue hands a callback request to the stage. The result is
// signalled on the request's Done channel.
func (p *ProcessingStage) Enqueue(cb *coordinator.CallbackRequest) {
	select {
	case <-p.ctx.Done():
		cb.Done <- coordinator.ErrShutdown
	case p.q <- cb:
	}
}

func (p *ProcessingStage) run() {
	defer close(p.done)
	for {
		select {
		case <-p.ctx.Done():
			return
		case cb := <-p.q:
			err := cb.Run()
			if err != nil {
				p.logger.Debug("Callback request failed",
					zap.String("file_id", string(cb.FileID)),
					zap.Error(err))
			}
			cb.Done <- err
		}
	}
}
