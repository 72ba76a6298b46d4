package policy

import (
	"testing"

	"quorumfs/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiresLease(t *testing.T) {
	for _, tag := range []Tag{WaR1, WaRa, WqRq} {
		lease, err := RequiresLease(tag)
		require.NoError(t, err)
		assert.True(t, lease, "policy %s", tag)
	}

	lease, err := RequiresLease(ReadOnly)
	require.NoError(t, err)
	assert.False(t, lease)

	_, err = RequiresLease(Tag("WaRx"))
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestBackupCanRead(t *testing.T) {
	tests := []struct {
		tag     Tag
		canRead bool
	}{
		{WaR1, false},
		{WaRa, true},
		{WqRq, false},
		{ReadOnly, true},
	}
	for _, tt := range tests {
		canRead, err := BackupCanRead(tt.tag)
		require.NoError(t, err)
		assert.Equal(t, tt.canRead, canRead, "policy %s", tt.tag)
	}

	_, err := BackupCanRead(Tag("bogus"))
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestNumRequiredAcks(t *testing.T) {
	tests := []struct {
		tag          Tag
		replicaCount int
		acks         int
	}{
		{WaR1, 2, 1},
		{WaR1, 4, 3},
		{WaRa, 3, 2},
		{WaRa, 5, 4},
		{WqRq, 2, 1},
		{WqRq, 3, 1},
		{WqRq, 4, 2},
		{WqRq, 5, 2},
		{WqRq, 7, 3},
		{ReadOnly, 5, 0},
	}
	for _, tt := range tests {
		acks, err := NumRequiredAcks(tt.tag, OpWrite, tt.replicaCount)
		require.NoError(t, err)
		assert.Equal(t, tt.acks, acks, "policy %s, %d replicas", tt.tag, tt.replicaCount)
	}
}

// The read and write quorums of every coordinated policy must overlap
// once the local replica is counted in.
func TestQuorumOverlap(t *testing.T) {
	for _, tag := range []Tag{WaR1, WaRa, WqRq} {
		for n := 2; n <= 16; n++ {
			writeAcks, err := NumRequiredAcks(tag, OpWrite, n)
			require.NoError(t, err)
			readAcks, err := NumRequiredAcks(tag, OpRead, n)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, writeAcks+readAcks+1, n,
				"R + W overlap violated for %s with %d replicas", tag, n)
		}
	}
}

func TestRequiresCoordination(t *testing.T) {
	set := &types.XLocSet{
		UpdatePolicy: string(WqRq),
		Replicas: []types.XLoc{
			{OSDs: []types.OSDID{"osd-a"}},
			{OSDs: []types.OSDID{"osd-b"}},
		},
	}
	assert.True(t, RequiresCoordination(set))

	single := &types.XLocSet{
		UpdatePolicy: string(WqRq),
		Replicas:     []types.XLoc{{OSDs: []types.OSDID{"osd-a"}}},
	}
	assert.False(t, RequiresCoordination(single))

	ronly := &types.XLocSet{
		UpdatePolicy: string(ReadOnly),
		Replicas: []types.XLoc{
			{OSDs: []types.OSDID{"osd-a"}},
			{OSDs: []types.OSDID{"osd-b"}},
		},
	}
	assert.False(t, RequiresCoordination(ronly))
}

func status(versions ...types.ObjectVersion) *types.ReplicaStatus {
	return &types.ReplicaStatus{ObjectVersions: versions}
}

func ov(objNo, version int64) types.ObjectVersion {
	return types.ObjectVersion{ObjectNumber: objNo, Version: version}
}

func TestCalculateAuthoritativeState(t *testing.T) {
	osds := []types.OSDID{"osd-a", "osd-b", "osd-c"}
	states := []*types.ReplicaStatus{
		status(ov(0, 4), ov(1, 2)),
		status(ov(0, 4), ov(1, 3)),
		status(ov(0, 3)),
	}

	auth := CalculateAuthoritativeState("file-1", states, osds)
	require.Len(t, auth.ObjectVersions, 2)

	byObj := make(map[int64]types.ObjectVersionMapping)
	for _, ovm := range auth.ObjectVersions {
		byObj[ovm.ObjectNumber] = ovm
	}

	assert.Equal(t, int64(4), byObj[0].Version)
	assert.ElementsMatch(t, []types.OSDID{"osd-a", "osd-b"}, byObj[0].OSDs)

	assert.Equal(t, int64(3), byObj[1].Version)
	assert.ElementsMatch(t, []types.OSDID{"osd-b"}, byObj[1].OSDs)
}

func TestCalculateAuthoritativeStateSkipsSilentReplicas(t *testing.T) {
	osds := []types.OSDID{"osd-a", "osd-b", "osd-c"}
	states := []*types.ReplicaStatus{
		status(ov(0, 4)),
		nil,
		status(ov(0, 4)),
	}

	auth := CalculateAuthoritativeState("file-1", states, osds)
	require.Len(t, auth.ObjectVersions, 1)
	assert.ElementsMatch(t, []types.OSDID{"osd-a", "osd-c"}, auth.ObjectVersions[0].OSDs)
}

// Adding a replica whose versions are at or below the existing maxima
// must not change the authoritative state entries.
func TestAuthoritativeStateMonotone(t *testing.T) {
	osds := []types.OSDID{"osd-a", "osd-b"}
	states := []*types.ReplicaStatus{
		status(ov(0, 4), ov(1, 7)),
		status(ov(0, 2)),
	}
	before := CalculateAuthoritativeState("file-1", states, osds)

	stale := status(ov(0, 4), ov(1, 6))
	after := CalculateAuthoritativeState("file-1",
		append(states, stale), append(osds, "osd-c"))

	require.Len(t, after.ObjectVersions, len(before.ObjectVersions))
	for i, ovm := range before.ObjectVersions {
		assert.Equal(t, ovm.ObjectNumber, after.ObjectVersions[i].ObjectNumber)
		assert.Equal(t, ovm.Version, after.ObjectVersions[i].Version)
	}
}

func TestCalculateAuthoritativeStateEpochs(t *testing.T) {
	osds := []types.OSDID{"osd-a", "osd-b"}
	states := []*types.ReplicaStatus{
		{TruncateEpoch: 2, MaxObjVersion: 9},
		{TruncateEpoch: 5, MaxObjVersion: 4},
	}

	auth := CalculateAuthoritativeState("file-1", states, osds)
	assert.Equal(t, int64(5), auth.TruncateEpoch)
	assert.Equal(t, int64(9), auth.MaxObjVersion)
	assert.Empty(t, auth.ObjectVersions)
}

func TestCalculateMinimalMajority(t *testing.T) {
	osds := []types.OSDID{"osd-a", "osd-b", "osd-c"}

	t.Run("AllCurrent", func(t *testing.T) {
		states := []*types.ReplicaStatus{
			status(ov(0, 4)),
			status(ov(0, 4)),
			status(ov(0, 4)),
		}
		auth := CalculateAuthoritativeState("file-1", states, osds)
		assert.Equal(t, 3, CalculateMinimalMajority(states, auth))
	})

	t.Run("OneBehind", func(t *testing.T) {
		states := []*types.ReplicaStatus{
			status(ov(0, 4), ov(1, 2)),
			status(ov(0, 4), ov(1, 2)),
			status(ov(0, 4), ov(1, 1)),
		}
		auth := CalculateAuthoritativeState("file-1", states, osds)
		assert.Equal(t, 2, CalculateMinimalMajority(states, auth))
	})

	t.Run("SilentReplica", func(t *testing.T) {
		states := []*types.ReplicaStatus{
			status(ov(0, 4)),
			nil,
			status(ov(0, 4)),
		}
		auth := CalculateAuthoritativeState("file-1", states, osds)
		assert.Equal(t, 2, CalculateMinimalMajority(states, auth))
	})

	t.Run("NoObjects", func(t *testing.T) {
		states := []*types.ReplicaStatus{status(), status(), status()}
		auth := CalculateAuthoritativeState("file-1", states, osds)
		assert.Equal(t, 3, CalculateMinimalMajority(states, auth))
	})
}
