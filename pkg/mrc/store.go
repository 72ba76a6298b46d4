package mrc

import (
	"fmt"
	"sort"
	"sync"

	"quorumfs/pkg/coordinator"
	"quorumfs/pkg/striping"
	"quorumfs/pkg/types"
)

// FileMeta is the metadata record of one file. The store owns the
// canonical XLocSet; protocol code only ever sees snapshots.
type FileMeta struct {
	FileID         types.FileID
	Epoch          uint32
	XLocSet        *types.XLocSet
	StripingPolicy []byte // encoded striping policy record
}

// Store is the metadata database stand-in: an in-memory map with the
// same transactional surface the coordinator depends on.
type Store struct {
	mu    sync.RWMutex
	files map[types.FileID]*FileMeta

	// replMaster, if set, marks another MRC replica as the volume
	// master; installs are redirected there.
	replMaster string
	readOnly   bool
}

func NewStore(replMaster string) *Store {
	return &Store{
		files:      make(map[types.FileID]*FileMeta),
		replMaster: replMaster,
	}
}

// SetReadOnly marks the volume read-only; subsequent installs are
// rejected as not allowed.
func (s *Store) SetReadOnly(readOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readOnly = readOnly
}

func (s *Store) CreateFile(fileID types.FileID, set *types.XLocSet, sp striping.Policy) error {
	if err := sp.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.files[fileID]; exists {
		return fmt.Errorf("file %s already exists", fileID)
	}
	s.files[fileID] = &FileMeta{
		FileID:         fileID,
		XLocSet:        set.Clone(),
		StripingPolicy: sp.Encode(),
	}
	return nil
}

// GetFile returns a snapshot of the file's metadata.
func (s *Store) GetFile(fileID types.FileID) (*FileMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, exists := s.files[fileID]
	if !exists {
		return nil, fmt.Errorf("file %s not found", fileID)
	}
	return &FileMeta{
		FileID:         meta.FileID,
		Epoch:          meta.Epoch,
		XLocSet:        meta.XLocSet.Clone(),
		StripingPolicy: append([]byte(nil), meta.StripingPolicy...),
	}, nil
}

// InstallXLocSet atomically replaces the file's XLocSet with the
// extended one, bumping the version. The extended set must carry the
// version of the set it was derived from; a concurrent change since
// then rejects the install.
func (s *Store) InstallXLocSet(fileID types.FileID, ext *types.XLocSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.replMaster != "" {
		return &coordinator.RedirectError{MasterUUID: s.replMaster}
	}
	if s.readOnly {
		return fmt.Errorf("%w: volume is read-only", coordinator.ErrNotAllowed)
	}

	meta, exists := s.files[fileID]
	if !exists {
		return fmt.Errorf("file %s not found", fileID)
	}
	if ext.Version != meta.XLocSet.Version {
		return fmt.Errorf("XLocSet of file %s changed concurrently (version %d, expected %d)",
			fileID, meta.XLocSet.Version, ext.Version)
	}

	installed := ext.Clone()
	installed.Version = meta.XLocSet.Version + 1
	meta.XLocSet = installed
	return nil
}

// ListFiles returns metadata snapshots sorted by file ID.
func (s *Store) ListFiles() []*FileMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]*FileMeta, 0, len(s.files))
	for _, meta := range s.files {
		files = append(files, &FileMeta{
			FileID:         meta.FileID,
			Epoch:          meta.Epoch,
			XLocSet:        meta.XLocSet.Clone(),
			StripingPolicy: append([]byte(nil), meta.StripingPolicy...),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].FileID < files[j].FileID
	})
	return files
}
