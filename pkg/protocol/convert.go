package protocol

import (
	"quorumfs/pkg/types"
)

// XLocSetToProto converts the metadata representation of a replica
// location set to its wire form.
func XLocSetToProto(set *types.XLocSet) *XLocSet {
	if set == nil {
		return nil
	}
	msg := &XLocSet{
		ReplicaUpdatePolicy: set.UpdatePolicy,
		Version:             uint64(set.Version),
		ReadOnlyFileSize:    uint64(set.ReadOnlyFileSize),
		Replicas:            make([]*Replica, 0, len(set.Replicas)),
	}
	for _, r := range set.Replicas {
		msg.Replicas = append(msg.Replicas, ReplicaToProto(&r))
	}
	return msg
}

func ReplicaToProto(r *types.XLoc) *Replica {
	osds := make([]string, 0, len(r.OSDs))
	for _, osd := range r.OSDs {
		osds = append(osds, string(osd))
	}
	return &Replica{OsdUuids: osds, ReplicationFlags: r.ReplicationFlags}
}

// XLocSetFromProto converts a wire-form replica location set back to the
// metadata representation.
func XLocSetFromProto(msg *XLocSet) *types.XLocSet {
	if msg == nil {
		return nil
	}
	set := &types.XLocSet{
		UpdatePolicy:     msg.GetReplicaUpdatePolicy(),
		Version:          int64(msg.GetVersion()),
		ReadOnlyFileSize: int64(msg.GetReadOnlyFileSize()),
		Replicas:         make([]types.XLoc, 0, len(msg.GetReplicas())),
	}
	for _, r := range msg.GetReplicas() {
		set.Replicas = append(set.Replicas, ReplicaFromProto(r))
	}
	return set
}

func ReplicaFromProto(msg *Replica) types.XLoc {
	osds := make([]types.OSDID, 0, len(msg.GetOsdUuids()))
	for _, osd := range msg.GetOsdUuids() {
		osds = append(osds, types.OSDID(osd))
	}
	return types.XLoc{OSDs: osds, ReplicationFlags: msg.GetReplicationFlags()}
}

// ReplicaStatusFromProto converts an OSD's reported replica state.
func ReplicaStatusFromProto(msg *ReplicaStatus) *types.ReplicaStatus {
	if msg == nil {
		return nil
	}
	st := &types.ReplicaStatus{
		TruncateEpoch: int64(msg.GetTruncateEpoch()),
		FileSize:      int64(msg.GetFileSize()),
		MaxObjVersion: int64(msg.GetMaxObjVersion()),
		PrimaryEpoch:  int32(msg.GetPrimaryEpoch()),
	}
	for _, ov := range msg.GetObjectVersions() {
		st.ObjectVersions = append(st.ObjectVersions, types.ObjectVersion{
			ObjectNumber: int64(ov.GetObjectNumber()),
			Version:      int64(ov.GetObjectVersion()),
		})
	}
	return st
}

func ReplicaStatusToProto(st *types.ReplicaStatus) *ReplicaStatus {
	if st == nil {
		return nil
	}
	msg := &ReplicaStatus{
		TruncateEpoch: uint64(st.TruncateEpoch),
		FileSize:      uint64(st.FileSize),
		MaxObjVersion: uint64(st.MaxObjVersion),
		PrimaryEpoch:  uint32(st.PrimaryEpoch),
	}
	for _, ov := range st.ObjectVersions {
		msg.ObjectVersions = append(msg.ObjectVersions, &ObjectVersion{
			ObjectNumber:  uint64(ov.ObjectNumber),
			ObjectVersion: uint64(ov.Version),
		})
	}
	return msg
}

// AuthStateToProto converts an authoritative replica state to its wire
// form.
func AuthStateToProto(auth *types.AuthoritativeReplicaState) *AuthoritativeReplicaState {
	if auth == nil {
		return nil
	}
	msg := &AuthoritativeReplicaState{
		TruncateEpoch: uint64(auth.TruncateEpoch),
		MaxObjVersion: uint64(auth.MaxObjVersion),
	}
	for _, ovm := range auth.ObjectVersions {
		osds := make([]string, 0, len(ovm.OSDs))
		for _, osd := range ovm.OSDs {
			osds = append(osds, string(osd))
		}
		msg.ObjectVersions = append(msg.ObjectVersions, &ObjectVersionMapping{
			ObjectNumber:  uint64(ovm.ObjectNumber),
			ObjectVersion: uint64(ovm.Version),
			OsdUuids:      osds,
		})
	}
	return msg
}
