package policy

import (
	"fmt"

	"quorumfs/pkg/types"
)

// Tag identifies a replica update policy. The values are the wire names
// stored in file metadata.
type Tag string

const (
	// WaR1 is write-all, read-one: the primary writes to every replica,
	// backups cannot serve reads.
	WaR1 Tag = "WaR1"
	// WaRa is write-all, read-any: every copy is current, so any replica
	// may serve reads.
	WaRa Tag = "WaRa"
	// WqRq is write-quorum, read-quorum with majority overlap.
	WqRq Tag = "WqRq"
	// ReadOnly marks lazily filled read-only replication.
	ReadOnly Tag = "ronly"
	// None disables replication (single replica).
	None Tag = ""
)

// Op distinguishes the quorum an operation needs.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

var ErrUnknownPolicy = fmt.Errorf("unknown replica update policy")

func Known(t Tag) bool {
	switch t {
	case WaR1, WaRa, WqRq, ReadOnly, None:
		return true
	}
	return false
}

// Coordinated reports whether the tag requires primary/backup
// coordination across replicas.
func Coordinated(t Tag) bool {
	return t == WaR1 || t == WaRa || t == WqRq
}

// RequiresCoordination reports whether the set needs lease coordination:
// more than one replica under a coordinated policy.
func RequiresCoordination(set *types.XLocSet) bool {
	return set.ReplicaCount() > 1 && Coordinated(Tag(set.UpdatePolicy))
}

// RequiresLease reports whether the policy designates a lease-holding
// primary. False means all replicas act as primaries.
func RequiresLease(t Tag) (bool, error) {
	switch t {
	case WaR1, WaRa, WqRq:
		return true, nil
	case ReadOnly, None:
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownPolicy, t)
}

// BackupCanRead reports whether a backup replica may serve reads.
func BackupCanRead(t Tag) (bool, error) {
	switch t {
	case WaRa, ReadOnly:
		return true, nil
	case WaR1, WqRq, None:
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownPolicy, t)
}

// NumRequiredAcks returns how many remote replicas have to acknowledge
// an operation before it completes. replicaCount is the total number of
// replicas including the local one; the local replica is excluded from
// the returned count.
func NumRequiredAcks(t Tag, op Op, replicaCount int) (int, error) {
	switch t {
	case WaR1, WaRa:
		return replicaCount - 1, nil
	case WqRq:
		// majority including the local replica
		return (replicaCount+2)/2 - 1, nil
	case ReadOnly, None:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, t)
}

// CalculateAuthoritativeState derives, for every object number reported
// by any replica, the winning version and the replicas holding it. Ties
// on the version carry identical content and resolve to the same entry.
// Silent replicas are passed as nil status and skipped. The result is
// deterministic in the order of the osds slice.
func CalculateAuthoritativeState(fileID types.FileID, states []*types.ReplicaStatus, osds []types.OSDID) *types.AuthoritativeReplicaState {
	auth := &types.AuthoritativeReplicaState{}

	maxVersions := make(map[int64]int64)
	var order []int64
	for _, state := range states {
		if state == nil {
			continue
		}
		if state.TruncateEpoch > auth.TruncateEpoch {
			auth.TruncateEpoch = state.TruncateEpoch
		}
		if state.MaxObjVersion > auth.MaxObjVersion {
			auth.MaxObjVersion = state.MaxObjVersion
		}
		for _, ov := range state.ObjectVersions {
			cur, seen := maxVersions[ov.ObjectNumber]
			if !seen {
				order = append(order, ov.ObjectNumber)
			}
			if !seen || ov.Version > cur {
				maxVersions[ov.ObjectNumber] = ov.Version
			}
		}
	}

	for _, objNo := range order {
		winning := maxVersions[objNo]
		mapping := types.ObjectVersionMapping{ObjectNumber: objNo, Version: winning}
		for i, state := range states {
			if state == nil {
				continue
			}
			for _, ov := range state.ObjectVersions {
				if ov.ObjectNumber == objNo && ov.Version == winning {
					mapping.OSDs = append(mapping.OSDs, osds[i])
					break
				}
			}
		}
		auth.ObjectVersions = append(auth.ObjectVersions, mapping)
	}

	return auth
}

// CalculateMinimalMajority returns the smallest number of replicas
// holding the winning version of any object. A file without objects
// (empty or sparse) counts every replica slot as current.
func CalculateMinimalMajority(states []*types.ReplicaStatus, auth *types.AuthoritativeReplicaState) int {
	maxVersions := make(map[int64]int64, len(auth.ObjectVersions))
	for _, ovm := range auth.ObjectVersions {
		maxVersions[ovm.ObjectNumber] = ovm.Version
	}

	objectCount := make(map[int64]int, len(maxVersions))
	for _, state := range states {
		if state == nil {
			continue
		}
		for _, ov := range state.ObjectVersions {
			if winning, ok := maxVersions[ov.ObjectNumber]; ok && winning == ov.Version {
				objectCount[ov.ObjectNumber]++
			}
		}
	}

	minimal := len(states)
	for _, count := range objectCount {
		if count < minimal {
			minimal = count
		}
	}
	return minimal
}
