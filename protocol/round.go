package protocol

import (
	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/errutil"
)

// Round is the wire form of a round: the kind plus the flattened fields of
// the matching round type.
//
//	{"kind":"normal","chief":0,"chiefTrump":"red","bid":3,"cardPoints":[16,10,10]}
//	{"kind":"stalemate","tied":[1,2,3],"provocateur":2,"cardsBid":4}
type Round struct {
	Kind string `json:"kind"`
	*scoring.NormalRound
	*scoring.StalemateRound
}

// ToRound converts the wire form for a game of n players.
func (r Round) ToRound(n int) (scoring.Round, error) {
	kind, ok := constant.ParseRoundKind(r.Kind)
	if !ok {
		return nil, errutil.ErrInvalidParameter
	}

	switch kind {
	case constant.RoundStalemate:
		if r.StalemateRound == nil {
			return &scoring.StalemateRound{}, nil
		}
		return r.StalemateRound.Clone(), nil
	default:
		if r.NormalRound == nil {
			return scoring.NewNormalRound(n), nil
		}
		return r.NormalRound.Clone(), nil
	}
}

func FromRound(r scoring.Round) Round {
	switch r := r.(type) {
	case *scoring.NormalRound:
		return Round{Kind: constant.RoundNormal.String(), NormalRound: r}
	case *scoring.StalemateRound:
		return Round{Kind: constant.RoundStalemate.String(), StalemateRound: r}
	}
	return Round{Kind: "unknown"}
}

// SessionDocument is a whole game as read by the score command.
type SessionDocument struct {
	Players []string `json:"players"`
	Rounds  []Round  `json:"rounds"`
}
