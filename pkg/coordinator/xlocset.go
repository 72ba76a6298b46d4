package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quorumfs/pkg/capability"
	"quorumfs/pkg/osd"
	"quorumfs/pkg/policy"
	"quorumfs/pkg/protocol"
	"quorumfs/pkg/types"

	"go.uber.org/zap"
)

// RequestKind selects the reconfiguration operation.
type RequestKind int

const (
	KindAddReplicas RequestKind = iota
	KindRemoveReplicas
	KindReplaceReplica
)

func (k RequestKind) String() string {
	switch k {
	case KindAddReplicas:
		return "AddReplicas"
	case KindRemoveReplicas:
		return "RemoveReplicas"
	case KindReplaceReplica:
		return "ReplaceReplica"
	}
	return "unknown"
}

// RequestMethod is one queued reconfiguration. It is owned by the queue
// until dequeued and exclusively by the worker afterwards.
type RequestMethod struct {
	kind       RequestKind
	fileID     types.FileID
	cap        *capability.Capability
	callback   Callback
	curXLocSet *types.XLocSet
	extXLocSet *types.XLocSet
	newXLocs   []types.XLoc
}

func (m *RequestMethod) Kind() RequestKind    { return m.kind }
func (m *RequestMethod) FileID() types.FileID { return m.fileID }

const requestQueueSize = 256

// Coordinator serializes XLocSet changes: a single worker drives the
// invalidate / collect / decide / prime / install protocol for one
// request at a time. Producers submit concurrently and are never
// blocked by protocol work.
type Coordinator struct {
	master     Dispatcher
	capBuilder *capability.Builder
	logger     *zap.Logger

	q      chan *RequestMethod
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func New(master Dispatcher, logger *zap.Logger) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		master:     master,
		capBuilder: capability.NewBuilder(master.Config()),
		logger:     logger,
		q:          make(chan *RequestMethod, requestQueueSize),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (c *Coordinator) Start() {
	go c.run()
}

// Shutdown interrupts the worker. The in-flight request, if any, is
// abandoned; no protocol state is persisted.
func (c *Coordinator) Shutdown() {
	c.cancel()
	<-c.done
}

// AddReplicas builds a request to extend the file's XLocSet. The
// capability is issued immediately; the protocol runs when the request
// is dequeued. Pre-conditions: ext has the same version as cur, and
// newXLocs is the suffix of ext not present in cur.
func (c *Coordinator) AddReplicas(fileID types.FileID, epoch uint32, cur, ext *types.XLocSet, newXLocs []types.XLoc, callback Callback) *RequestMethod {
	return &RequestMethod{
		kind:       KindAddReplicas,
		fileID:     fileID,
		cap:        c.capBuilder.BuildRW(fileID, epoch),
		callback:   callback,
		curXLocSet: cur,
		extXLocSet: ext,
		newXLocs:   newXLocs,
	}
}

// RemoveReplicas builds a request to shrink the file's XLocSet.
// Reserved; the worker reports it as not implemented.
func (c *Coordinator) RemoveReplicas(fileID types.FileID, epoch uint32, cur, ext *types.XLocSet, callback Callback) *RequestMethod {
	return &RequestMethod{
		kind:       KindRemoveReplicas,
		fileID:     fileID,
		cap:        c.capBuilder.BuildRW(fileID, epoch),
		callback:   callback,
		curXLocSet: cur,
		extXLocSet: ext,
	}
}

// ReplaceReplica builds a request to swap one replica. Reserved; the
// worker reports it as not implemented.
func (c *Coordinator) ReplaceReplica(fileID types.FileID, epoch uint32, cur, ext *types.XLocSet, callback Callback) *RequestMethod {
	return &RequestMethod{
		kind:       KindReplaceReplica,
		fileID:     fileID,
		cap:        c.capBuilder.BuildRW(fileID, epoch),
		callback:   callback,
		curXLocSet: cur,
		extXLocSet: ext,
	}
}

// Submit enqueues a request. FIFO across requests; at most one
// reconfiguration is in flight at any time.
func (c *Coordinator) Submit(m *RequestMethod) error {
	if c.ctx.Err() != nil {
		return ErrShutdown
	}
	select {
	case <-c.ctx.Done():
		return ErrShutdown
	case c.q <- m:
		return nil
	}
}

func (c *Coordinator) run() {
	defer close(c.done)
	for {
		select {
		case <-c.ctx.Done():
			return
		case m := <-c.q:
			if err := c.processRequest(m); err != nil {
				c.logger.Info("XLocSet coordinator stopping",
					zap.String("file_id", string(m.fileID)),
					zap.Error(err))
				return
			}
		}
	}
}

// processRequest dispatches on the request kind. All failures except
// shutdown are absorbed into the request's error path; shutdown is
// returned to stop the worker.
func (c *Coordinator) processRequest(m *RequestMethod) error {
	var err error
	switch m.kind {
	case KindAddReplicas:
		err = c.processAddReplicas(m)
	case KindRemoveReplicas, KindReplaceReplica:
		err = fmt.Errorf("%w: %s", ErrNotImplemented, m.kind)
	default:
		err = fmt.Errorf("unknown request kind %d", m.kind)
	}

	if err == nil {
		return nil
	}
	if isShutdown(err) {
		return ErrShutdown
	}
	c.handleError(m, err)
	return nil
}

func (c *Coordinator) processAddReplicas(m *RequestMethod) error {
	creds := &protocol.FileCredentials{
		Xcap:  m.cap.ToXCap(),
		Xlocs: protocol.XLocSetToProto(m.curXLocSet),
	}

	// Invalidate the current replicas and collect their states. The new
	// replicas carry no data yet, so only the heads of the current set
	// are contacted.
	states, responseCount, err := c.invalidateReplicas(m, creds)
	if err != nil {
		return err
	}

	if responseCount == 0 {
		return fmt.Errorf("%w: no replica responded to invalidation of file %s",
			ErrInsufficientQuorum, m.fileID)
	}

	tag := policy.Tag(m.extXLocSet.UpdatePolicy)
	if tag == policy.ReadOnly {
		// Full replicas are filled lazily by background replication,
		// partial replicas are installed as-is. Nothing synchronous.
	} else {
		if err := c.primeNewReplicas(m, tag, states); err != nil {
			return err
		}
	}

	return c.installXLocSet(m)
}

// invalidateReplicas issues the invalidate fan-out in extended-XLocSet
// order. Transport errors are absorbed per replica: the OSD counts as
// "no status". If the primary stayed silent and not every replica
// responded, the worker sleeps until the lease expired so no straggler
// can still serve client I/O under the old XLocSet.
func (c *Coordinator) invalidateReplicas(m *RequestMethod, creds *protocol.FileCredentials) ([]*types.ReplicaStatus, int, error) {
	client := c.master.OSDClient()
	registry := c.master.OSDRegistry()

	curCount := m.curXLocSet.ReplicaCount()
	states := make([]*types.ReplicaStatus, curCount)
	primaryResponded := false
	responseCount := 0

	for i := 0; i < curCount; i++ {
		if err := c.ctx.Err(); err != nil {
			return nil, 0, ErrShutdown
		}

		osdID := m.extXLocSet.OSDUUID(i, 0)
		addr, err := registry.Lookup(osdID)
		if err != nil {
			c.logger.Warn("Cannot resolve OSD for invalidation",
				zap.String("file_id", string(m.fileID)),
				zap.String("osd", string(osdID)),
				zap.Error(err))
			continue
		}

		result, err := client.Invalidate(c.ctx, addr, creds, m.fileID)
		if err != nil {
			c.logger.Debug("Invalidate failed, continuing with remaining replicas",
				zap.String("file_id", string(m.fileID)),
				zap.String("osd", string(osdID)),
				zap.Error(err))
			continue
		}

		responseCount++
		states[i] = result.Status
		if result.IsPrimary {
			primaryResponded = true
		}
	}

	// If the primary didn't respond its lease has to time out before the
	// protocol may continue. If every replica replied and none was
	// primary there is no lease to wait for.
	if !primaryResponded && responseCount != curCount {
		leaseTimeout := time.Duration(c.master.Config().LeaseTimeoutMs) * time.Millisecond
		c.logger.Info("Primary did not respond, waiting for lease timeout",
			zap.String("file_id", string(m.fileID)),
			zap.Duration("lease_timeout", leaseTimeout),
			zap.Int("responses", responseCount),
			zap.Int("replicas", curCount))

		timer := time.NewTimer(leaseTimeout)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.ctx.Done():
			return nil, 0, ErrShutdown
		}
	}

	return states, responseCount, nil
}

// primeNewReplicas runs the DECIDE step for coordinated policies and
// synchronously primes as many of the newly added replicas as the
// policy's read/write overlap requires.
func (c *Coordinator) primeNewReplicas(m *RequestMethod, tag policy.Tag, states []*types.ReplicaStatus) error {
	backupCanRead, err := policy.BackupCanRead(tag)
	if err != nil {
		return &UserError{Errno: EINVAL, Message: err.Error()}
	}

	n := m.extXLocSet.ReplicaCount()
	authState := policy.CalculateAuthoritativeState(m.fileID, states, m.curXLocSet.HeadOSDs())

	// An empty or sparse file has no objects to catch up on; every
	// replica counts as current.
	minMajority := n
	if len(authState.ObjectVersions) > 0 {
		minMajority = policy.CalculateMinimalMajority(states, authState)
	}

	requiredRead := 1
	if !backupCanRead {
		requiredRead, err = policy.NumRequiredAcks(tag, policy.OpRead, n)
		if err != nil {
			return &UserError{Errno: EINVAL, Message: err.Error()}
		}
	}

	// The policy guarantees R + W > N. minMajority replicas are already
	// current and count toward writes, requiredRead replicas will be
	// contacted by future reads; the freshly added tail has to make up
	// the difference before the new XLocSet may be installed.
	requiredUpdates := n - minMajority - requiredRead + 1

	c.logger.Debug("XLocSet change quorum decision",
		zap.String("file_id", string(m.fileID)),
		zap.String("policy", string(tag)),
		zap.Int("replicas", n),
		zap.Int("min_majority", minMajority),
		zap.Int("required_read", requiredRead),
		zap.Int("required_updates", requiredUpdates))

	if requiredUpdates <= 0 {
		return nil
	}
	if requiredUpdates > len(m.newXLocs) {
		return fmt.Errorf("%w: %d replicas must be primed but only %d were added",
			ErrInsufficientQuorum, requiredUpdates, len(m.newXLocs))
	}

	creds := &protocol.FileCredentials{
		Xcap:  m.cap.ToXCap(),
		Xlocs: protocol.XLocSetToProto(m.extXLocSet),
	}
	client := c.master.OSDClient()
	registry := c.master.OSDRegistry()

	// The new replicas sit at the tail of the extended list; prime the
	// last requiredUpdates of them.
	for i := n - requiredUpdates; i < n; i++ {
		if err := c.ctx.Err(); err != nil {
			return ErrShutdown
		}

		osdID := m.extXLocSet.OSDUUID(i, 0)
		addr, err := registry.Lookup(osdID)
		if err != nil {
			return fmt.Errorf("cannot resolve OSD %s for priming: %w", osdID, err)
		}
		if err := c.primeReplica(client, addr, creds, m.fileID); err != nil {
			return err
		}

		c.logger.Debug("Primed new replica",
			zap.String("file_id", string(m.fileID)),
			zap.String("osd", string(osdID)))
	}

	return nil
}

func (c *Coordinator) primeReplica(client *osd.Client, addr string, creds *protocol.FileCredentials, fileID types.FileID) error {
	// A one-byte read triggers the fetch of the authoritative state on
	// the fresh replica.
	// TODO(replication): ask the primary to step down afterwards so the
	// next new replica can be primed without contention.
	return client.ReadProbe(c.ctx, addr, creds, fileID)
}

// installXLocSet hands the extended set to the metadata processing
// stage and waits for the outcome. The install is atomic: either the
// bumped set becomes visible to all future operations or nothing
// changes.
func (c *Coordinator) installXLocSet(m *RequestMethod) error {
	cb := NewCallbackRequest(m.fileID, func() error {
		return m.callback.InstallXLocSet(m.fileID, m.extXLocSet)
	})
	c.master.EnqueueCallback(cb)

	select {
	case err := <-cb.Done:
		return err
	case <-c.ctx.Done():
		return ErrShutdown
	}
}

// handleError classifies a failed run and reports it on the request's
// error path. The canonical XLocSet is untouched in every case.
func (c *Coordinator) handleError(m *RequestMethod, err error) {
	var record *ErrorRecord

	var userErr *UserError
	var redirect *RedirectError
	switch {
	case errors.As(err, &userErr):
		record = &ErrorRecord{Kind: KindUserError, Errno: userErr.Errno, Message: userErr.Message, Cause: err}
	case errors.As(err, &redirect):
		record = &ErrorRecord{Kind: KindRedirect, Message: err.Error(), RedirectUUID: redirect.MasterUUID, Cause: err}
	case errors.Is(err, ErrNotAllowed):
		record = &ErrorRecord{Kind: KindPermissionDenied, Errno: EPERM, Message: err.Error(), Cause: err}
	case errors.Is(err, ErrInsufficientQuorum):
		record = &ErrorRecord{Kind: KindInsufficientQuorum, Message: err.Error(), Cause: err}
	case errors.Is(err, ErrNotImplemented):
		record = &ErrorRecord{Kind: KindUserError, Errno: ENOSYS, Message: err.Error(), Cause: err}
	default:
		record = &ErrorRecord{Kind: KindInternalError, Message: fmt.Sprintf("an error has occurred at the MRC: %v", err), Cause: err}
	}

	c.logger.Warn("XLocSet change failed",
		zap.String("file_id", string(m.fileID)),
		zap.String("kind", m.kind.String()),
		zap.String("error_kind", record.Kind.String()),
		zap.Error(err))

	m.callback.FinishRequest(record)
}

func isShutdown(err error) bool {
	return errors.Is(err, ErrShutdown) || errors.Is(err, context.Canceled)
}
