package scoring

import (
	"github.com/lonng/muscore/pkg/constant"
)

// Round is either a *NormalRound or a *StalemateRound.
type Round interface {
	Kind() constant.RoundKind
	// Clone returns a deep copy.
	Clone() Round

	round()
}

// NewRound returns a blank round of kind for n players.
func NewRound(kind constant.RoundKind, n int) Round {
	if kind == constant.RoundStalemate {
		return &StalemateRound{}
	}
	return NewNormalRound(n)
}

// Result is the outcome of scoring one round.
type Result struct {
	// Points is the raw card points, unset entries count as 0.
	Points []int `json:"points"`
	Bonus  []int `json:"bonus"`
	Sum    []int `json:"sum"`
	// Target is reported whenever the bid is in range, even if the round
	// has problems.
	Target     Number    `json:"target"`
	TeamPoints Number    `json:"teamPoints"`
	Problems   []Problem `json:"problems"`
}

// Valid reports whether the round passed validation and counts toward totals.
func (r Result) Valid() bool {
	return len(r.Problems) == 0
}

// Has reports whether a problem of kind was found.
func (r Result) Has(kind ProblemKind) bool {
	for _, p := range r.Problems {
		if p.Kind == kind {
			return true
		}
	}
	return false
}

func blankResult(n int) Result {
	if n < 0 {
		n = 0
	}
	return Result{
		Points:   make([]int, n),
		Bonus:    make([]int, n),
		Sum:      make([]int, n),
		Problems: []Problem{},
	}
}

// Score validates and scores one round for n players. It never fails: a
// broken round comes back with its problems listed, a zero bonus and sum
// degraded to the raw points.
func Score(r Round, n int) Result {
	switch r := r.(type) {
	case *NormalRound:
		if r != nil {
			return scoreNormal(r, n)
		}
	case *StalemateRound:
		if r != nil {
			return scoreStalemate(r, n)
		}
	}

	res := blankResult(n)
	res.Problems = append(res.Problems, Problem{Kind: UnknownRound})
	return res
}
