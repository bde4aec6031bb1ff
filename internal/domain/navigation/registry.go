package navigation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config controls session bookkeeping.
type Config struct {
	IdleTTL time.Duration
}

// Registry keeps one Shell per browser session and forgets idle ones.
type Registry struct {
	mu          sync.Mutex
	shells      map[string]*session
	controllers Controllers
	ttl         time.Duration
	now         func() time.Time
}

type session struct {
	shell    *Shell
	lastSeen time.Time
}

// NewRegistry builds an empty registry.
func NewRegistry(cfg Config, controllers Controllers) *Registry {
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Registry{
		shells:      make(map[string]*session),
		controllers: controllers,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Acquire returns the shell for id, starting a new session when id is unknown,
// malformed or expired. The returned id is the one the caller must keep.
func (r *Registry) Acquire(id string) (string, *Shell) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.cleanupLocked(now)

	if _, err := uuid.Parse(id); err == nil {
		if sess, ok := r.shells[id]; ok {
			sess.lastSeen = now
			return id, sess.shell
		}
	}

	id = uuid.NewString()
	sess := &session{shell: NewShell(r.controllers), lastSeen: now}
	r.shells[id] = sess
	return id, sess.shell
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shells)
}

func (r *Registry) cleanupLocked(now time.Time) {
	for id, sess := range r.shells {
		if now.Sub(sess.lastSeen) > r.ttl {
			delete(r.shells, id)
		}
	}
}
