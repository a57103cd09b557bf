package game

import (
	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/muscore/pkg/set"
)

// NormalPatch changes some fields of a normal round, nil fields are left
// alone. CardPoints is keyed by player index.
type NormalPatch struct {
	Chief      *scoring.Seat
	Partner    *scoring.Seat
	Vice       *scoring.Seat
	ChiefTrump *scoring.Trump
	ViceTrump  *scoring.Trump
	Bid        *scoring.Number
	CardPoints map[int]scoring.Number
}

// StalematePatch changes some fields of a stalemate round. A nil Tied keeps
// the tied players, an empty one clears them.
type StalematePatch struct {
	Tied        []int
	Provocateur *scoring.Seat
	CardsBid    *scoring.Number
}

func checkSeat(s scoring.Seat, n int, noVice bool) error {
	switch {
	case s == scoring.NoSeat:
	case s == scoring.NoVice && noVice:
	case !s.In(n):
		return errutil.ErrPlayerNotFound
	}
	return nil
}

func checkTrump(t scoring.Trump) error {
	if t != scoring.TrumpUnset && !t.IsSet() {
		return errutil.ErrInvalidParameter
	}
	return nil
}

func (p NormalPatch) check(n int) error {
	if n <= 3 && (p.Partner != nil || p.Vice != nil || p.ViceTrump != nil) {
		return errutil.ErrRoleNotInGame
	}
	for _, s := range []*scoring.Seat{p.Chief, p.Partner} {
		if s == nil {
			continue
		}
		if err := checkSeat(*s, n, false); err != nil {
			return err
		}
	}
	if p.Vice != nil {
		if err := checkSeat(*p.Vice, n, true); err != nil {
			return err
		}
	}
	for _, t := range []*scoring.Trump{p.ChiefTrump, p.ViceTrump} {
		if t == nil {
			continue
		}
		if err := checkTrump(*t); err != nil {
			return err
		}
	}
	for i := range p.CardPoints {
		if i < 0 || i >= n {
			return errutil.ErrPlayerNotFound
		}
	}
	return nil
}

// apply writes the patch into r and keeps vice and vice trump consistent:
// no vice goes with trump "none" and the other way round. When a patch
// sets both, the vice wins.
func (p NormalPatch) apply(r *scoring.NormalRound, n int) {
	if p.Chief != nil {
		r.Chief = *p.Chief
	}
	if p.Partner != nil {
		r.Partner = *p.Partner
	}
	if p.Vice != nil {
		r.Vice = *p.Vice
	}
	if p.ChiefTrump != nil {
		r.ChiefTrump = *p.ChiefTrump
	}
	if p.ViceTrump != nil {
		r.ViceTrump = *p.ViceTrump
	}
	if p.Bid != nil {
		r.Bid = *p.Bid
	}
	if len(p.CardPoints) > 0 {
		if len(r.CardPoints) != n {
			points := make([]scoring.Number, n)
			copy(points, r.CardPoints)
			r.CardPoints = points
		}
		for i, v := range p.CardPoints {
			r.CardPoints[i] = v
		}
	}

	switch {
	case p.Vice != nil:
		if r.Vice == scoring.NoVice {
			r.ViceTrump = scoring.TrumpNone
		} else if r.ViceTrump == scoring.TrumpNone {
			r.ViceTrump = scoring.TrumpUnset
		}
	case p.ViceTrump != nil:
		if r.ViceTrump == scoring.TrumpNone {
			r.Vice = scoring.NoVice
		} else if r.Vice == scoring.NoVice {
			r.Vice = scoring.NoSeat
		}
	}
}

func (p StalematePatch) check(n int) error {
	for _, t := range p.Tied {
		if t < 0 || t >= n {
			return errutil.ErrPlayerNotFound
		}
	}
	if p.Provocateur != nil {
		if err := checkSeat(*p.Provocateur, n, false); err != nil {
			return err
		}
	}
	if p.CardsBid != nil && p.CardsBid.Valid && p.CardsBid.Value < 0 {
		return errutil.ErrInvalidParameter
	}
	return nil
}

func (p StalematePatch) apply(r *scoring.StalemateRound) {
	if p.Tied != nil {
		r.Tied = set.New(p.Tied...).Sorted()
	}
	if p.Provocateur != nil {
		r.Provocateur = *p.Provocateur
	}
	if p.CardsBid != nil {
		r.CardsBid = *p.CardsBid
	}
}

// UpdateNormal patches normal round i. Nothing is changed when the patch is
// rejected.
func (s *Session) UpdateNormal(i int, p NormalPatch) error {
	r, err := s.Round(i)
	if err != nil {
		return err
	}
	nr, ok := r.(*scoring.NormalRound)
	if !ok {
		return errutil.ErrWrongRoundKind
	}
	if err := p.check(s.PlayerCount()); err != nil {
		return err
	}
	p.apply(nr, s.PlayerCount())
	return nil
}

// UpdateStalemate patches stalemate round i. Nothing is changed when the
// patch is rejected.
func (s *Session) UpdateStalemate(i int, p StalematePatch) error {
	r, err := s.Round(i)
	if err != nil {
		return err
	}
	sr, ok := r.(*scoring.StalemateRound)
	if !ok {
		return errutil.ErrWrongRoundKind
	}
	if err := p.check(s.PlayerCount()); err != nil {
		return err
	}
	p.apply(sr)
	return nil
}
