package game

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lonng/muscore/pkg/async"
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/muscore/pkg/room"
)

const defaultSweepInterval = time.Minute

type options struct {
	strictAppend  bool
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// Option specifies an option for a Manager.
type Option func(*options)

// StrictAppend refuses new rounds while the last round has problems.
func StrictAppend(strict bool) Option {
	return func(opts *options) {
		opts.strictAppend = strict
	}
}

// SessionTTL specifies how long an untouched session lives, 0 keeps
// sessions forever.
func SessionTTL(d time.Duration) Option {
	return func(opts *options) {
		opts.ttl = d
	}
}

// SweepInterval specifies how often Run looks for expired sessions.
func SweepInterval(d time.Duration) Option {
	return func(opts *options) {
		opts.sweepInterval = d
	}
}

// Clock replaces time.Now.
func Clock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

// Manager owns every live session. Writes are serialized by one lock and
// readers only ever see copies.
type Manager struct {
	sync.RWMutex
	sessions map[string]*Session     // id => session
	numbers  map[room.Number]string // table number => id
	opts     options
}

func NewManager(opts ...Option) *Manager {
	settings := options{
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &Manager{
		sessions: map[string]*Session{},
		numbers:  map[room.Number]string{},
		opts:     settings,
	}
}

// Start opens a new session for the named players.
func (m *Manager) Start(names []string) (*Session, error) {
	s, err := NewSession(names)
	if err != nil {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()

	s.StrictAppend = m.opts.strictAppend
	s.CreatedAt = m.opts.now()
	s.UpdatedAt = s.CreatedAt
	s.Number = room.Next(func(no room.Number) bool {
		_, ok := m.numbers[no]
		return ok
	})
	m.sessions[s.ID] = s
	m.numbers[s.Number] = s.ID

	logger.Infof("session started, id=%s number=%s players=%v", s.ID, s.Number, s.Players)
	return s.Clone(), nil
}

// View returns a snapshot of session id.
func (m *Manager) View(id string) (*Session, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errutil.ErrSessionNotFound
	}
	return s.Clone(), nil
}

// ByNumber returns a snapshot of the session with table number no.
func (m *Manager) ByNumber(no room.Number) (*Session, error) {
	m.RLock()
	defer m.RUnlock()

	id, ok := m.numbers[no]
	if !ok {
		return nil, errutil.ErrSessionNotFound
	}
	return m.sessions[id].Clone(), nil
}

// Mutate runs fn on session id under the write lock and returns a snapshot
// taken after fn. Mutations must fail without side effects, a session is
// only touched when fn succeeds.
func (m *Manager) Mutate(id string, fn func(s *Session) error) (*Session, error) {
	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errutil.ErrSessionNotFound
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.UpdatedAt = m.opts.now()
	return s.Clone(), nil
}

func (m *Manager) AddRound(id string, kind constant.RoundKind) (*Session, error) {
	return m.Mutate(id, func(s *Session) error {
		_, err := s.AddRound(kind)
		return err
	})
}

func (m *Manager) UpdateNormal(id string, i int, p NormalPatch) (*Session, error) {
	return m.Mutate(id, func(s *Session) error {
		return s.UpdateNormal(i, p)
	})
}

func (m *Manager) UpdateStalemate(id string, i int, p StalematePatch) (*Session, error) {
	return m.Mutate(id, func(s *Session) error {
		return s.UpdateStalemate(i, p)
	})
}

func (m *Manager) RemoveRound(id string, i int) (*Session, error) {
	return m.Mutate(id, func(s *Session) error {
		return s.RemoveRound(i)
	})
}

// Reset destroys session id.
func (m *Manager) Reset(id string) error {
	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return errutil.ErrSessionNotFound
	}
	m.remove(s)
	logger.Infof("session reset, id=%s number=%s", s.ID, s.Number)
	return nil
}

func (m *Manager) remove(s *Session) {
	delete(m.sessions, s.ID)
	delete(m.numbers, s.Number)
}

// List returns snapshots of all live sessions, oldest first.
func (m *Manager) List() []*Session {
	m.RLock()
	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s.Clone())
	}
	m.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were dropped.
func (m *Manager) Sweep() int {
	if m.opts.ttl <= 0 {
		return 0
	}

	m.Lock()
	defer m.Unlock()

	deadline := m.opts.now().Add(-m.opts.ttl)
	count := 0
	for _, s := range m.sessions {
		if s.UpdatedAt.Before(deadline) {
			m.remove(s)
			count++
			logger.Debugf("session expired, id=%s number=%s", s.ID, s.Number)
		}
	}
	return count
}

// Run starts the janitor that sweeps expired sessions until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	if m.opts.ttl <= 0 {
		logger.Info("session ttl disabled, janitor not started")
		return
	}

	async.Run(func() {
		ticker := time.NewTicker(m.opts.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := m.Sweep(); n > 0 {
					logger.Infof("%d idle sessions swept", n)
				}
			case <-ctx.Done():
				return
			}
		}
	})
}
