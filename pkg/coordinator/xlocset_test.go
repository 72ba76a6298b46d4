package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"quorumfs/pkg/config"
	"quorumfs/pkg/osd"
	"quorumfs/pkg/protocol"
	"quorumfs/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// osdBehavior scripts one fake OSD.
type osdBehavior struct {
	err       error
	isPrimary bool
	status    *protocol.ReplicaStatus
}

// osdHarness fakes the OSD fleet and records the RPCs it saw.
type osdHarness struct {
	mu          sync.Mutex
	behaviors   map[string]*osdBehavior
	invalidated []string
	probed      []string
}

func newOSDHarness() *osdHarness {
	return &osdHarness{behaviors: make(map[string]*osdBehavior)}
}

func (h *osdHarness) set(addr string, b *osdBehavior) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.behaviors[addr] = b
}

func (h *osdHarness) invalidatedAddrs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.invalidated...)
}

func (h *osdHarness) probedAddrs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.probed...)
}

type harnessOSDClient struct {
	h    *osdHarness
	addr string
}

func (c *harnessOSDClient) XLocSetInvalidate(ctx context.Context, in *protocol.XLocSetInvalidateRequest, opts ...grpc.CallOption) (*protocol.XLocSetInvalidateResponse, error) {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	c.h.invalidated = append(c.h.invalidated, c.addr)

	b, ok := c.h.behaviors[c.addr]
	if !ok || b.err != nil {
		if b != nil && b.err != nil {
			return nil, b.err
		}
		return nil, errors.New("connection refused")
	}
	return &protocol.XLocSetInvalidateResponse{IsPrimary: b.isPrimary, Status: b.status}, nil
}

func (c *harnessOSDClient) Read(ctx context.Context, in *protocol.ReadRequest, opts ...grpc.CallOption) (*protocol.ReadResponse, error) {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	c.h.probed = append(c.h.probed, c.addr)

	b, ok := c.h.behaviors[c.addr]
	if !ok {
		return nil, errors.New("connection refused")
	}
	if b.err != nil {
		return nil, b.err
	}
	return &protocol.ReadResponse{Data: []byte{0}}, nil
}

// fakeMaster wires the coordinator to the harness and executes callback
// requests on a dedicated goroutine, mirroring the processing stage.
type fakeMaster struct {
	client   *osd.Client
	registry *osd.Registry
	cfg      *config.MRCConfig
}

func newFakeMaster(h *osdHarness, cfg *config.MRCConfig, osds map[string]string) *fakeMaster {
	dial := func(ctx context.Context, addr string) (protocol.OSDServiceClient, func() error, error) {
		return &harnessOSDClient{h: h, addr: addr}, func() error { return nil }, nil
	}
	return &fakeMaster{
		client:   osd.NewClientWithDialer(time.Second, zap.NewNop(), dial),
		registry: osd.NewRegistry(osds),
		cfg:      cfg,
	}
}

func (f *fakeMaster) OSDClient() *osd.Client     { return f.client }
func (f *fakeMaster) OSDRegistry() *osd.Registry { return f.registry }
func (f *fakeMaster) Config() *config.MRCConfig  { return f.cfg }

func (f *fakeMaster) EnqueueCallback(cb *CallbackRequest) {
	go func() { cb.Done <- cb.Run() }()
}

// testOp collects the outcome of one request.
type testOp struct {
	installErr error
	onInstall  func(fileID types.FileID, ext *types.XLocSet)

	installed chan *types.XLocSet
	failed    chan *ErrorRecord
}

func newTestOp() *testOp {
	return &testOp{
		installed: make(chan *types.XLocSet, 1),
		failed:    make(chan *ErrorRecord, 1),
	}
}

func (o *testOp) InstallXLocSet(fileID types.FileID, ext *types.XLocSet) error {
	if o.installErr != nil {
		return o.installErr
	}
	if o.onInstall != nil {
		o.onInstall(fileID, ext)
	}
	o.installed <- ext
	return nil
}

func (o *testOp) FinishRequest(record *ErrorRecord) {
	o.failed <- record
}

func (o *testOp) awaitInstall(t *testing.T) *types.XLocSet {
	t.Helper()
	select {
	case ext := <-o.installed:
		return ext
	case record := <-o.failed:
		t.Fatalf("request failed instead of installing: %v", record)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for install")
	}
	return nil
}

func (o *testOp) awaitFailure(t *testing.T) *ErrorRecord {
	t.Helper()
	select {
	case record := <-o.failed:
		return record
	case <-o.installed:
		t.Fatal("request installed instead of failing")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for failure")
	}
	return nil
}

func testMRCConfig(leaseTimeoutMs int) *config.MRCConfig {
	return &config.MRCConfig{
		Address:           "localhost:8601",
		AdvertisedAddress: "localhost:8601",
		CapabilityTimeout: 60,
		CapabilitySecret:  "test-secret",
		LeaseTimeoutMs:    leaseTimeoutMs,
		OSDRPCTimeoutMs:   1000,
	}
}

var testOSDAddrs = map[string]string{
	"osd-a": "osd-a:7001",
	"osd-b": "osd-b:7002",
	"osd-c": "osd-c:7003",
	"osd-d": "osd-d:7004",
	"osd-e": "osd-e:7005",
}

func xlocSet(policy string, version int64, osds ...string) *types.XLocSet {
	set := &types.XLocSet{UpdatePolicy: policy, Version: version}
	for _, o := range osds {
		set.Replicas = append(set.Replicas, types.XLoc{OSDs: []types.OSDID{types.OSDID(o)}})
	}
	return set
}

// extend returns cur plus new single-OSD replicas at the tail, and the
// added XLocs.
func extend(cur *types.XLocSet, osds ...string) (*types.XLocSet, []types.XLoc) {
	ext := cur.Clone()
	var added []types.XLoc
	for _, o := range osds {
		xloc := types.XLoc{OSDs: []types.OSDID{types.OSDID(o)}}
		ext.Replicas = append(ext.Replicas, xloc)
		added = append(added, xloc)
	}
	return ext, added
}

func startCoordinator(t *testing.T, master Dispatcher) *Coordinator {
	t.Helper()
	c := New(master, zap.NewNop())
	c.Start()
	t.Cleanup(c.Shutdown)
	return c
}

func currentStatus(version int64) *protocol.ReplicaStatus {
	return &protocol.ReplicaStatus{
		MaxObjVersion: uint64(version),
		ObjectVersions: []*protocol.ObjectVersion{
			{ObjectNumber: 0, ObjectVersion: uint64(version)},
		},
	}
}

// A read-only set grows from three to five replicas: no lease wait, no
// priming, the extended set is installed as-is.
func TestAddReplicasReadOnly(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{})
	h.set("osd-b:7002", &osdBehavior{})
	h.set("osd-c:7003", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("ronly", 7, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d", "osd-e")
	op := newTestOp()

	start := time.Now()
	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	installed := op.awaitInstall(t)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 5*time.Second, "lease wait must be skipped when every replica responded")
	assert.Equal(t, int64(7), installed.Version, "version is bumped by the metadata install, not the coordinator")
	assert.Equal(t, 5, installed.ReplicaCount())
	assert.Equal(t, []string{"osd-a:7001", "osd-b:7002", "osd-c:7003"}, h.invalidatedAddrs())
	assert.Empty(t, h.probedAddrs(), "read-only replicas are filled lazily")
}

// WqRq grows from three to five replicas while all three hold object 0
// at version 4: exactly one new replica has to be primed, the last of
// the extended list.
func TestAddReplicasWqRqPrimesTail(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{status: currentStatus(4)})
	h.set("osd-b:7002", &osdBehavior{status: currentStatus(4)})
	h.set("osd-c:7003", &osdBehavior{status: currentStatus(4), isPrimary: true})
	h.set("osd-d:7004", &osdBehavior{})
	h.set("osd-e:7005", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("WqRq", 7, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d", "osd-e")
	op := newTestOp()

	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	installed := op.awaitInstall(t)
	assert.Equal(t, 5, installed.ReplicaCount())
	assert.Equal(t, []string{"osd-e:7005"}, h.probedAddrs(),
		"minMajority=3, requiredRead=2: one priming probe against the tail")
}

// WaR1 grows from three to four replicas while the primary stays
// silent: the worker has to wait out the lease before deciding. With
// two current replicas and a read quorum of three no priming is needed.
func TestAddReplicasWaR1SilentPrimaryWaitsForLease(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{status: currentStatus(4)})
	h.set("osd-b:7002", &osdBehavior{err: errors.New("i/o timeout")})
	h.set("osd-c:7003", &osdBehavior{status: currentStatus(4)})
	h.set("osd-d:7004", &osdBehavior{})

	leaseTimeoutMs := 150
	master := newFakeMaster(h, testMRCConfig(leaseTimeoutMs), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("WaR1", 7, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d")
	op := newTestOp()

	start := time.Now()
	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	installed := op.awaitInstall(t)
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, time.Duration(leaseTimeoutMs)*time.Millisecond,
		"the silent primary's lease must expire before the protocol continues")
	assert.Equal(t, 4, installed.ReplicaCount())
	assert.Empty(t, h.probedAddrs(), "requiredUpdates = 4 - 2 - 3 + 1 = 0")
}

// The lease wait is skipped as soon as the primary responded, even when
// other replicas stay silent.
func TestLeaseWaitSkippedWhenPrimaryResponded(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{status: currentStatus(4), isPrimary: true})
	h.set("osd-b:7002", &osdBehavior{err: errors.New("i/o timeout")})
	h.set("osd-c:7003", &osdBehavior{status: currentStatus(4)})
	h.set("osd-d:7004", &osdBehavior{})
	h.set("osd-e:7005", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(10000), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("WqRq", 1, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d", "osd-e")
	op := newTestOp()

	start := time.Now()
	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	op.awaitInstall(t)
	assert.Less(t, time.Since(start), 5*time.Second)
}

// An unknown policy tag in the extended set is a caller error: EINVAL,
// and the metadata layer must not see an install.
func TestAddReplicasUnknownPolicy(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{status: currentStatus(4)})
	h.set("osd-b:7002", &osdBehavior{status: currentStatus(4)})
	h.set("osd-c:7003", &osdBehavior{status: currentStatus(4)})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("WqRx", 7, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d", "osd-e")
	op := newTestOp()

	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	record := op.awaitFailure(t)
	assert.Equal(t, KindUserError, record.Kind)
	assert.Equal(t, EINVAL, record.Errno)
}

// A rejected install surfaces as permission denied and leaves the
// coordinator ready for the next request.
func TestInstallNotAllowed(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{})
	h.set("osd-b:7002", &osdBehavior{})
	h.set("osd-c:7003", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("ronly", 7, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d")

	op := newTestOp()
	op.installErr = fmt.Errorf("%w: volume is read-only", ErrNotAllowed)
	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	record := op.awaitFailure(t)
	assert.Equal(t, KindPermissionDenied, record.Kind)
	assert.Equal(t, EPERM, record.Errno)

	// the next request proceeds normally
	op2 := newTestOp()
	m2 := c.AddReplicas("file-1", 0, cur, ext, added, op2)
	require.NoError(t, c.Submit(m2))
	op2.awaitInstall(t)
}

// A redirect from the metadata layer carries the master's UUID.
func TestInstallRedirect(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("ronly", 2, "osd-a")
	ext, added := extend(cur, "osd-b")

	op := newTestOp()
	op.installErr = &RedirectError{MasterUUID: "mrc-master"}
	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	record := op.awaitFailure(t)
	assert.Equal(t, KindRedirect, record.Kind)
	assert.Equal(t, "mrc-master", record.RedirectUUID)
}

// No replica responding means the invalidation cannot have reached a
// majority: the reconfiguration aborts without an install.
func TestNoResponsesAbortsWithoutInstall(t *testing.T) {
	h := newOSDHarness() // every dial answers "connection refused"

	master := newFakeMaster(h, testMRCConfig(50), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("WqRq", 7, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d", "osd-e")
	op := newTestOp()

	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	record := op.awaitFailure(t)
	assert.Equal(t, KindInsufficientQuorum, record.Kind)
	select {
	case <-op.installed:
		t.Fatal("no install may happen after a failed phase")
	default:
	}
}

// requiredUpdates may equal the number of added replicas; every one of
// them is primed then.
func TestRequiredUpdatesMayConsumeAllNewReplicas(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{status: currentStatus(2)})
	h.set("osd-b:7002", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	// N=2, minMajority=1, requiredRead=1: requiredUpdates = 2-1-1+1 = 1
	cur := xlocSet("WqRq", 3, "osd-a")
	ext, added := extend(cur, "osd-b")
	op := newTestOp()

	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	op.awaitInstall(t)
	assert.Equal(t, []string{"osd-b:7002"}, h.probedAddrs())
}

// More required updates than added replicas cannot restore the quorum
// overlap: the change aborts as insufficient.
func TestRequiredUpdatesBeyondNewReplicasAborts(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{status: currentStatus(5)})
	h.set("osd-b:7002", &osdBehavior{err: errors.New("i/o timeout")})
	h.set("osd-c:7003", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(50), testOSDAddrs)
	c := startCoordinator(t, master)

	// WaRa, N=3: requiredRead=1, minMajority=1 (only osd-a reported
	// object 0): requiredUpdates = 3-1-1+1 = 2 > 1 added replica.
	cur := xlocSet("WaRa", 4, "osd-a", "osd-b")
	ext, added := extend(cur, "osd-c")
	op := newTestOp()

	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	record := op.awaitFailure(t)
	assert.Equal(t, KindInsufficientQuorum, record.Kind)
	assert.Empty(t, h.probedAddrs())
}

// An empty file has no objects to catch up on; nothing must be primed.
func TestEmptyFileNeedsNoPriming(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{})
	h.set("osd-b:7002", &osdBehavior{})
	h.set("osd-c:7003", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("WqRq", 1, "osd-a", "osd-b", "osd-c")
	ext, added := extend(cur, "osd-d", "osd-e")
	op := newTestOp()

	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	require.NoError(t, c.Submit(m))

	op.awaitInstall(t)
	assert.Empty(t, h.probedAddrs())
}

// Requests are strictly serialized: K concurrent submissions produce
// exactly K installs in submission order.
func TestRequestsSerializeInSubmitOrder(t *testing.T) {
	h := newOSDHarness()
	h.set("osd-a:7001", &osdBehavior{})
	h.set("osd-b:7002", &osdBehavior{})
	h.set("osd-c:7003", &osdBehavior{})

	master := newFakeMaster(h, testMRCConfig(15000), testOSDAddrs)
	c := startCoordinator(t, master)

	const k = 8
	var mu sync.Mutex
	var order []types.FileID

	ops := make([]*testOp, k)
	for i := 0; i < k; i++ {
		op := newTestOp()
		op.onInstall = func(fileID types.FileID, ext *types.XLocSet) {
			mu.Lock()
			order = append(order, fileID)
			mu.Unlock()
		}
		ops[i] = op

		cur := xlocSet("ronly", 1, "osd-a", "osd-b", "osd-c")
		ext, added := extend(cur, "osd-d")
		fileID := types.FileID(fmt.Sprintf("file-%d", i))
		m := c.AddReplicas(fileID, 0, cur, ext, added, ops[i])
		require.NoError(t, c.Submit(m))
	}

	for i := 0; i < k; i++ {
		ops[i].awaitInstall(t)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, order, k)
	for i := 0; i < k; i++ {
		assert.Equal(t, types.FileID(fmt.Sprintf("file-%d", i)), order[i])
	}
}

// Reserved request kinds are reported, not silently dropped.
func TestRemoveAndReplaceNotImplemented(t *testing.T) {
	h := newOSDHarness()
	master := newFakeMaster(h, testMRCConfig(50), testOSDAddrs)
	c := startCoordinator(t, master)

	cur := xlocSet("WqRq", 1, "osd-a", "osd-b")

	op := newTestOp()
	require.NoError(t, c.Submit(c.RemoveReplicas("file-1", 0, cur, cur, op)))
	record := op.awaitFailure(t)
	assert.Equal(t, ENOSYS, record.Errno)

	op2 := newTestOp()
	require.NoError(t, c.Submit(c.ReplaceReplica("file-1", 0, cur, cur, op2)))
	record2 := op2.awaitFailure(t)
	assert.Equal(t, ENOSYS, record2.Errno)
}

func TestSubmitAfterShutdown(t *testing.T) {
	h := newOSDHarness()
	master := newFakeMaster(h, testMRCConfig(50), testOSDAddrs)
	c := New(master, zap.NewNop())
	c.Start()
	c.Shutdown()

	cur := xlocSet("ronly", 1, "osd-a")
	ext, added := extend(cur, "osd-b")
	op := newTestOp()

	m := c.AddReplicas("file-1", 0, cur, ext, added, op)
	assert.ErrorIs(t, c.Submit(m), ErrShutdown)
}
