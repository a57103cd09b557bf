package api

import (
	"github.com/lonng/muscore/internal/game"
	"github.com/lonng/muscore/internal/i18n"
	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/protocol"
)

func NewResultView(l *i18n.Localizer, res scoring.Result) protocol.ResultView {
	problems := make([]protocol.ProblemView, len(res.Problems))
	for i, p := range res.Problems {
		problems[i] = protocol.ProblemView{Problem: p, Message: l.Problem(p)}
	}
	return protocol.ResultView{
		Points:     res.Points,
		Bonus:      res.Bonus,
		Sum:        res.Sum,
		Target:     res.Target,
		TeamPoints: res.TeamPoints,
		Valid:      res.Valid(),
		Problems:   problems,
	}
}

func NewSessionView(l *i18n.Localizer, s *game.Session) *protocol.SessionView {
	var (
		running = s.RunningTotals()
		rounds  = make([]protocol.RoundView, len(s.Rounds))
	)
	for i, r := range s.Rounds {
		rounds[i] = protocol.RoundView{
			Index:    i,
			Title:    l.RoundTitle(i+1, r.Kind()),
			Round:    protocol.FromRound(r),
			Result:   NewResultView(l, scoring.Score(r, s.PlayerCount())),
			Subtotal: running[i],
		}
	}

	view := &protocol.SessionView{
		ID:          s.ID,
		Number:      s.Number.String(),
		Players:     s.Players,
		Rounds:      rounds,
		Totals:      s.Totals(),
		CanAddRound: !s.StrictAppend || s.LastRoundValid(),
		CreatedAt:   s.CreatedAt.Unix(),
		UpdatedAt:   s.UpdatedAt.Unix(),
	}
	if !view.CanAddRound {
		view.AddRoundHint = l.Sprintf(i18n.RoundIncompleteKey)
	}
	return view
}

func NewSessionSummary(s *game.Session) protocol.SessionSummary {
	return protocol.SessionSummary{
		ID:        s.ID,
		Number:    s.Number.String(),
		Players:   s.Players,
		Rounds:    len(s.Rounds),
		CreatedAt: s.CreatedAt.Unix(),
		UpdatedAt: s.UpdatedAt.Unix(),
	}
}

func sheetFields(l *i18n.Localizer, r scoring.Round, players []string) []protocol.SheetField {
	field := func(key, value string) protocol.SheetField {
		return protocol.SheetField{Label: l.Sprintf(key), Value: value}
	}
	teams := len(players) > 3

	switch r := r.(type) {
	case *scoring.NormalRound:
		fields := []protocol.SheetField{field(i18n.ChiefKey, l.Seat(r.Chief, players))}
		if teams {
			fields = append(fields,
				field(i18n.PartnerKey, l.Seat(r.Partner, players)),
				field(i18n.ViceKey, l.Seat(r.Vice, players)))
		}
		fields = append(fields, field(i18n.ChiefTrumpKey, l.Trump(r.ChiefTrump)))
		if teams {
			fields = append(fields, field(i18n.ViceTrumpKey, l.Trump(r.ViceTrump)))
		}
		return append(fields, field(i18n.BidKey, l.Number(r.Bid)))

	case *scoring.StalemateRound:
		return []protocol.SheetField{
			field(i18n.TiedKey, l.Players(r.Tied, players)),
			field(i18n.ProvocateurKey, l.Seat(r.Provocateur, players)),
			field(i18n.CardsBidKey, l.Number(r.CardsBid)),
		}
	}
	return nil
}

// NewSheetView renders a score sheet with labels in the localizer's
// language.
func NewSheetView(l *i18n.Localizer, sheet *game.Sheet) *protocol.SheetView {
	rows := make([]protocol.SheetRowView, len(sheet.Rows))
	for i, row := range sheet.Rows {
		rows[i] = protocol.SheetRowView{
			Number:   row.Number,
			Title:    l.RoundTitle(row.Number, row.Kind),
			Kind:     row.Kind.String(),
			Valid:    row.Valid,
			Fields:   sheetFields(l, row.Round, sheet.Players),
			Points:   row.Result.Points,
			Bonus:    row.Result.Bonus,
			Sum:      row.Result.Sum,
			Subtotal: row.Subtotal,
		}
		if !row.Valid {
			rows[i].Problems = l.Problems(row.Result.Problems)
		}
	}

	return &protocol.SheetView{
		Title:       l.Sprintf(i18n.SheetTitleKey),
		Language:    l.Tag().String(),
		Players:     sheet.Players,
		Rows:        rows,
		PointsLabel: l.Sprintf(i18n.PointsKey),
		BonusLabel:  l.Sprintf(i18n.BonusKey),
		SumLabel:    l.Sprintf(i18n.SumKey),
		TotalLabel:  l.Sprintf(i18n.TotalKey),
		Total:       sheet.Total,
	}
}
