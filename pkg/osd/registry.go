package osd

import (
	"fmt"
	"sync"

	"quorumfs/pkg/types"
)

// Registry resolves OSD UUIDs to network addresses. In a full
// deployment this is fed by the directory service; here it is seeded
// from configuration and updated as OSDs register.
type Registry struct {
	mu    sync.RWMutex
	addrs map[types.OSDID]string
}

func NewRegistry(seed map[string]string) *Registry {
	addrs := make(map[types.OSDID]string, len(seed))
	for uuid, addr := range seed {
		addrs[types.OSDID(uuid)] = addr
	}
	return &Registry{addrs: addrs}
}

func (r *Registry) Register(osd types.OSDID, addr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addrs[osd] = addr
}

func (r *Registry) Lookup(osd types.OSDID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.addrs[osd]
	if !ok {
		return "", fmt.Errorf("unknown OSD %q", osd)
	}
	return addr, nil
}
