package feed

import "sync"

// postLocks hands out one mutex per post id so a read-modify-write on a
// post serializes against other mutations of the same post while mutations
// of unrelated posts run in parallel.
type postLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPostLocks() *postLocks {
	return &postLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for id and returns it; the caller unlocks.
func (p *postLocks) acquire(id string) *sync.Mutex {
	p.mu.Lock()
	m, ok := p.locks[id]
	if !ok {
		m = &sync.Mutex{}
		p.locks[id] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m
}
