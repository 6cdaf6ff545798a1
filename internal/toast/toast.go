// Package toast is the page-wide notification surface. Toasts are queued per
// browser session and drained by the next page render.
package toast

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Toast struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Store keeps pending toasts per session.
type Store interface {
	Push(ctx context.Context, session string, t Toast) error
	// Drain returns and forgets every pending toast of session, oldest first.
	Drain(ctx context.Context, session string) ([]Toast, error)
}

// MemoryStore is a process-local Store. Entries expire after ttl.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	toasts    []Toast
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]*memoryEntry{},
	}
}

func (s *MemoryStore) Push(_ context.Context, session string, t Toast) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)
	e, ok := s.entries[session]
	if !ok {
		e = &memoryEntry{}
		s.entries[session] = e
	}
	e.toasts = append(e.toasts, t)
	e.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *MemoryStore) Drain(_ context.Context, session string) ([]Toast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked(s.now())
	e, ok := s.entries[session]
	if !ok {
		return nil, nil
	}
	delete(s.entries, session)
	return e.toasts, nil
}

func (s *MemoryStore) evictLocked(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}

// Notifier queues toasts for one session. Store failures are logged and dropped.
type Notifier struct {
	ctx     context.Context
	store   Store
	session string
	logger  *zap.Logger
}

func NewNotifier(ctx context.Context, store Store, session string, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{ctx: ctx, store: store, session: session, logger: logger}
}

func (n *Notifier) NotifySuccess(msg string) { n.push(Toast{Kind: KindSuccess, Message: msg}) }

func (n *Notifier) NotifyError(msg string) { n.push(Toast{Kind: KindError, Message: msg}) }

func (n *Notifier) push(t Toast) {
	if err := n.store.Push(n.ctx, n.session, t); err != nil {
		n.logger.Warn("toast dropped",
			zap.String("kind", string(t.Kind)),
			zap.String("message", t.Message),
			zap.Error(err))
	}
}

// SessionCookie names the cookie carrying the toast session id.
const SessionCookie = "smt_flash"

// Session returns the toast session id of r, issuing a new cookie on w when absent.
func Session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
