package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/lonng/muscore/internal/i18n"
	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/muscore/protocol"
	"github.com/lonng/nex"
)

// MakeRulesService serves the rule tables and scores single rounds without
// keeping any state.
func MakeRulesService(limiter *Limiter) http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/rules/{players}", nex.Handler(rules)).Methods("GET")
	router.Handle("/v1/score", nex.Handler(score).Before(limiter.Before())).Methods("POST")
	router.NotFoundHandler = nex.Handler(badRoute)
	return router
}

func playerCount(n int) error {
	if n < constant.MinPlayers || n > constant.MaxPlayers {
		return errutil.ErrIllegalPlayerCount
	}
	return nil
}

// Rules describes the tables used for a game of n players.
func Rules(l *i18n.Localizer, n int) (*protocol.RulesResponse, error) {
	if err := playerCount(n); err != nil {
		return nil, err
	}

	trumps := make([]protocol.TrumpInfo, len(scoring.Trumps))
	for i, t := range scoring.Trumps {
		c := scoring.Classify(t)
		trumps[i] = protocol.TrumpInfo{
			Value:     t.String(),
			Name:      l.Trump(t),
			Category:  c.String(),
			StartRank: c.StartRank(),
		}
	}

	return &protocol.RulesResponse{
		Players:            n,
		MaxBid:             scoring.MaxBid(n),
		Targets:            scoring.Targets(n),
		ExpectedCardPoints: scoring.ExpectedCardPoints(n),
		HasTeams:           n > 3,
		Trumps:             trumps,
	}, nil
}

func rules(r *http.Request) (*protocol.RulesResponse, error) {
	n, err := strconv.Atoi(mux.Vars(r)["players"])
	if err != nil {
		return nil, errutil.ErrInvalidParameter
	}
	return Rules(i18n.ForRequest(r), n)
}

func score(r *http.Request, req *protocol.ScoreRequest) (*protocol.ResultView, error) {
	if err := playerCount(req.Players); err != nil {
		return nil, err
	}
	round, err := req.Round.ToRound(req.Players)
	if err != nil {
		return nil, err
	}
	view := NewResultView(i18n.ForRequest(r), scoring.Score(round, req.Players))
	return &view, nil
}
