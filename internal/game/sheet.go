package game

import (
	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
)

// SheetRow is one round of the printed score sheet.
type SheetRow struct {
	Number   int // round number, starting at 1
	Kind     constant.RoundKind
	Round    scoring.Round
	Result   scoring.Result
	Valid    bool
	Subtotal []int
}

// Sheet is everything a printout of the session shows. Rendering labels and
// layout is left to the caller.
type Sheet struct {
	Players []string
	Rows    []SheetRow
	Total   []int
}

// Sheet builds the score sheet from a single replay of the rounds.
func (s *Session) Sheet() *Sheet {
	var (
		n       = s.PlayerCount()
		running = s.RunningTotals()
		sheet   = &Sheet{
			Players: append([]string(nil), s.Players...),
			Rows:    make([]SheetRow, len(s.Rounds)),
			Total:   make([]int, n),
		}
	)

	for i, r := range s.Rounds {
		res := scoring.Score(r, n)
		sheet.Rows[i] = SheetRow{
			Number:   i + 1,
			Kind:     r.Kind(),
			Round:    r.Clone(),
			Result:   res,
			Valid:    res.Valid(),
			Subtotal: running[i],
		}
	}
	if len(running) > 0 {
		copy(sheet.Total, running[len(running)-1])
	}
	return sheet
}
