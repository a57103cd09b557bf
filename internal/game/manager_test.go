package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	sync.Mutex
	t time.Time
}

func (c *fakeClock) now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.Lock()
	c.t = c.t.Add(d)
	c.Unlock()
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	s, err := m.Start([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Len(t, s.Number.String(), 6)

	byNo, err := m.ByNumber(s.Number)
	require.NoError(t, err)
	assert.Equal(t, s.ID, byNo.ID)

	s, err = m.AddRound(s.ID, constant.RoundNormal)
	require.NoError(t, err)
	assert.Len(t, s.Rounds, 1)

	s, err = m.UpdateNormal(s.ID, 0, NormalPatch{Vice: seat(scoring.NoVice)})
	require.NoError(t, err)
	assert.Equal(t, scoring.TrumpNone, s.Rounds[0].(*scoring.NormalRound).ViceTrump)

	// snapshots are detached from the live session
	s.Rounds[0].(*scoring.NormalRound).Vice = scoring.SeatAt(1)
	view, err := m.View(s.ID)
	require.NoError(t, err)
	assert.Equal(t, scoring.NoVice, view.Rounds[0].(*scoring.NormalRound).Vice)

	_, err = m.UpdateStalemate(s.ID, 0, StalematePatch{})
	assert.Equal(t, errutil.ErrWrongRoundKind, err)

	s, err = m.RemoveRound(s.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, s.Rounds)

	require.NoError(t, m.Reset(s.ID))
	assert.Equal(t, errutil.ErrSessionNotFound, m.Reset(s.ID))
	_, err = m.View(s.ID)
	assert.Equal(t, errutil.ErrSessionNotFound, err)
	_, err = m.ByNumber(s.Number)
	assert.Equal(t, errutil.ErrSessionNotFound, err)
	_, err = m.AddRound(s.ID, constant.RoundNormal)
	assert.Equal(t, errutil.ErrSessionNotFound, err)

	_, err = m.Start([]string{"a"})
	assert.Equal(t, errutil.ErrIllegalPlayerCount, err)
	assert.Equal(t, 0, m.Len())
}

func TestManagerStrictAppend(t *testing.T) {
	m := NewManager(StrictAppend(true))
	s, err := m.Start([]string{"a", "b", "c"})
	require.NoError(t, err)

	_, err = m.AddRound(s.ID, constant.RoundStalemate)
	require.NoError(t, err)
	_, err = m.AddRound(s.ID, constant.RoundNormal)
	assert.Equal(t, errutil.ErrRoundIncomplete, err)
}

func TestManagerSweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewManager(SessionTTL(time.Hour), Clock(clock.now))

	old, err := m.Start([]string{"a", "b", "c"})
	require.NoError(t, err)
	clock.advance(30 * time.Minute)
	fresh, err := m.Start([]string{"a", "b", "c"})
	require.NoError(t, err)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, old.ID, list[0].ID)
	assert.Equal(t, fresh.ID, list[1].ID)

	clock.advance(15 * time.Minute)
	assert.Equal(t, 0, m.Sweep())

	clock.advance(5 * time.Minute)
	// touching keeps a session alive
	_, err = m.AddRound(fresh.ID, constant.RoundNormal)
	require.NoError(t, err)

	clock.advance(15 * time.Minute)
	assert.Equal(t, 1, m.Sweep())
	_, err = m.View(old.ID)
	assert.Equal(t, errutil.ErrSessionNotFound, err)
	_, err = m.View(fresh.ID)
	assert.NoError(t, err)
}

func TestManagerRun(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	m := NewManager(SessionTTL(time.Minute), SweepInterval(5*time.Millisecond), Clock(clock.now))
	_, err := m.Start([]string{"a", "b", "c"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Run(ctx)

	clock.advance(2 * time.Minute)
	deadline := time.Now().Add(2 * time.Second)
	for m.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 0, m.Len())
}

func TestManagerConcurrent(t *testing.T) {
	m := NewManager()
	s, err := m.Start([]string{"a", "b", "c", "d", "e", "f"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.AddRound(s.ID, constant.RoundStalemate)
			m.View(s.ID)
		}()
	}
	wg.Wait()

	view, err := m.View(s.ID)
	require.NoError(t, err)
	assert.Len(t, view.Rounds, 20)
}
