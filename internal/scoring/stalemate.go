package scoring

import (
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/set"
)

const (
	provocateurPerCard = -10
	tiedPerCard        = 5
)

// StalemateRound settles a tie: every tied player wagered CardsBid cards,
// the provocateur who forced the stalemate pays for it.
type StalemateRound struct {
	Tied        []int  `json:"tied"`
	Provocateur Seat   `json:"provocateur"`
	CardsBid    Number `json:"cardsBid"`
}

func (r *StalemateRound) Kind() constant.RoundKind { return constant.RoundStalemate }

func (r *StalemateRound) Clone() Round {
	c := *r
	c.Tied = append([]int(nil), r.Tied...)
	return &c
}

func (r *StalemateRound) round() {}

// tied returns the tied players that exist among n, duplicates dropped.
func (r *StalemateRound) tied(n int) *set.Set {
	s := set.New()
	for _, p := range r.Tied {
		if p >= 0 && p < n {
			s.Add(p)
		}
	}
	return s
}

func (r *StalemateRound) validate(n int, tied *set.Set) []Problem {
	problems := []Problem{}
	if tied.Len() < 2 {
		problems = append(problems, Problem{Kind: MissingTiedPlayers})
	}
	if p, ok := r.Provocateur.Index(); !ok || p >= n {
		problems = append(problems, Problem{Kind: MissingProvocateur})
	} else if !tied.Contains(p) {
		problems = append(problems, Problem{Kind: ProvocateurNotTied})
	}
	if !r.CardsBid.Valid || r.CardsBid.Value < 0 {
		problems = append(problems, Problem{Kind: MissingCardsBid})
	}
	return problems
}

func scoreStalemate(r *StalemateRound, n int) Result {
	res := blankResult(n)
	tied := r.tied(n)
	if res.Problems = r.validate(n, tied); !res.Valid() {
		return res
	}

	provocateur, _ := r.Provocateur.Index()
	cards := r.CardsBid.Value
	for p := range res.Bonus {
		switch {
		case !tied.Contains(p):
		case p == provocateur:
			res.Bonus[p] = provocateurPerCard * cards
		default:
			res.Bonus[p] = tiedPerCard * cards
		}
	}
	copy(res.Sum, res.Bonus)
	return res
}
