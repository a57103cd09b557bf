package scoring

import (
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/set"
)

// NormalRound is a bidding round. Partner and vice only exist with more
// than three players.
type NormalRound struct {
	Chief      Seat     `json:"chief"`
	Partner    Seat     `json:"partner"`
	Vice       Seat     `json:"vice"`
	ChiefTrump Trump    `json:"chiefTrump"`
	ViceTrump  Trump    `json:"viceTrump"`
	Bid        Number   `json:"bid"`
	CardPoints []Number `json:"cardPoints"`
}

// NewNormalRound returns a round with every field unset.
func NewNormalRound(n int) *NormalRound {
	if n < 0 {
		n = 0
	}
	return &NormalRound{CardPoints: make([]Number, n)}
}

func (r *NormalRound) Kind() constant.RoundKind { return constant.RoundNormal }

func (r *NormalRound) Clone() Round {
	c := *r
	c.CardPoints = append([]Number(nil), r.CardPoints...)
	return &c
}

func (r *NormalRound) round() {}

func (r *NormalRound) validate(n int) (problems []Problem, target Number) {
	problems = []Problem{}
	teams := n > 3

	if !r.Chief.In(n) {
		problems = append(problems, Problem{Kind: MissingRole, Role: RoleChief})
	}
	if teams {
		if !r.Vice.In(n) && r.Vice != NoVice {
			problems = append(problems, Problem{Kind: MissingRole, Role: RoleVice})
		}
		if !r.Partner.In(n) {
			problems = append(problems, Problem{Kind: MissingRole, Role: RolePartner})
		}
	}

	seats := []Seat{r.Chief}
	if teams {
		seats = append(seats, r.Vice, r.Partner)
	}
	taken := set.New()
	for _, s := range seats {
		if p, ok := s.Index(); ok && s.In(n) && !taken.Add(p) {
			problems = append(problems, Problem{Kind: DuplicateRole})
			break
		}
	}

	if !r.ChiefTrump.IsSet() {
		problems = append(problems, Problem{Kind: MissingTrump, Role: RoleChief})
	}

	maxBid := MaxBid(n)
	if !r.Bid.Valid {
		problems = append(problems, Problem{Kind: MissingBid})
	} else if t, ok := TeamTarget(n, r.Bid.Value); ok {
		target = Num(t)
	} else {
		problems = append(problems, Problem{Kind: BidOutOfRange, Args: []int{maxBid}})
	}

	complete, total := len(r.CardPoints) == n, 0
	for _, p := range r.CardPoints {
		if !p.Valid {
			complete = false
		}
		total += p.Int()
	}
	if !complete {
		problems = append(problems, Problem{Kind: CardPointsIncomplete})
	} else if expected := ExpectedCardPoints(n); total != expected {
		problems = append(problems, Problem{Kind: CardPointsSumMismatch, Args: []int{expected, total}})
	}

	if teams {
		problems = append(problems, r.validateViceTrump(n)...)
	}
	return problems, target
}

// validateViceTrump checks both directions of the vice/vice-trump coupling:
// no vice means trump "none", and "none" is reserved for no vice.
func (r *NormalRound) validateViceTrump(n int) []Problem {
	var problems []Problem
	switch {
	case r.Vice == NoVice:
		if r.ViceTrump != TrumpNone {
			problems = append(problems, Problem{Kind: InvalidTrumpPairing, Role: RoleVice, Pairing: PairingNoneRequired})
		}
	case r.ViceTrump == TrumpNone:
		problems = append(problems, Problem{Kind: InvalidTrumpPairing, Role: RoleVice, Pairing: PairingNoneForbidden})
	case r.Vice.In(n) && !r.ViceTrump.IsSet():
		problems = append(problems, Problem{Kind: MissingTrump, Role: RoleVice})
	case r.Vice.In(n) && r.ViceTrump == r.ChiefTrump:
		problems = append(problems, Problem{Kind: InvalidTrumpPairing, Role: RoleVice, Pairing: PairingSameAsChief})
	}
	return problems
}

func scoreNormal(r *NormalRound, n int) Result {
	res := blankResult(n)
	for i := 0; i < n && i < len(r.CardPoints); i++ {
		res.Points[i] = r.CardPoints[i].Int()
	}

	res.Problems, res.Target = r.validate(n)
	if !res.Valid() {
		copy(res.Sum, res.Points)
		return res
	}

	var (
		chief, _   = r.Chief.Index()
		partner    = -1
		teamPoints = res.Points[chief]
		bid        = r.Bid.Value
	)
	if n > 3 {
		partner, _ = r.Partner.Index()
		teamPoints += res.Points[partner]
	}
	res.TeamPoints = Num(teamPoints)

	if teamPoints >= res.Target.Value {
		bonus := FulfillmentBonus(r.ChiefTrump, bid, teamPoints, n)
		res.Bonus[chief] = bonus
		if partner >= 0 {
			res.Bonus[partner] = bonus
		}
	} else {
		penalty := LostGamePenalty(bid, teamPoints, n)
		for p := range res.Bonus {
			switch p {
			case chief:
				res.Bonus[p] = penalty.ChiefPenalty
			case partner:
				res.Bonus[p] = 0
			default:
				res.Bonus[p] = penalty.OpponentBonus
			}
		}
	}

	for p := range res.Sum {
		res.Sum[p] = res.Points[p] + res.Bonus[p]
	}
	return res
}
