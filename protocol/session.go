package protocol

import (
	"encoding/json"

	"github.com/lonng/muscore/internal/scoring"
)

type StartRequest struct {
	Players []string `json:"players"`
}

type AddRoundRequest struct {
	Kind string `json:"kind"` // normal, stalemate
}

// UpdateRoundRequest sets one field of a round. Field is one of chief,
// partner, vice, chiefTrump, viceTrump, bid, cardPoints.{player}, tied,
// provocateur, cardsBid. A null value clears the field.
type UpdateRoundRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// ScoreRequest scores a single round without a session.
type ScoreRequest struct {
	Players int   `json:"players"`
	Round   Round `json:"round"`
}

type ProblemView struct {
	scoring.Problem
	Message string `json:"message"`
}

type ResultView struct {
	Points     []int          `json:"points"`
	Bonus      []int          `json:"bonus"`
	Sum        []int          `json:"sum"`
	Target     scoring.Number `json:"target"`
	TeamPoints scoring.Number `json:"teamPoints"`
	Valid      bool           `json:"valid"`
	Problems   []ProblemView  `json:"problems"`
}

type RoundView struct {
	Index    int        `json:"index"`
	Title    string     `json:"title"`
	Round    Round      `json:"round"`
	Result   ResultView `json:"result"`
	Subtotal []int      `json:"subtotal"`
}

type SessionView struct {
	ID           string      `json:"id"`
	Number       string      `json:"number"`  //桌号
	Players      []string    `json:"players"` //按座位顺序
	Rounds       []RoundView `json:"rounds"`
	Totals       []int       `json:"totals"`
	CanAddRound  bool        `json:"canAddRound"`
	CreatedAt    int64       `json:"createdAt"`
	UpdatedAt    int64       `json:"updatedAt"`
	AddRoundHint string      `json:"addRoundHint,omitempty"`
}

type SessionSummary struct {
	ID        string   `json:"id"`
	Number    string   `json:"number"`
	Players   []string `json:"players"`
	Rounds    int      `json:"rounds"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

type SessionListResponse struct {
	Total    int              `json:"total"`
	Sessions []SessionSummary `json:"sessions"`
}

type SubtotalsResponse struct {
	Upto      int   `json:"upto"`
	Subtotals []int `json:"subtotals"`
}

type TrumpInfo struct {
	Value     string `json:"value"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	StartRank int    `json:"startRank"`
}

type RulesResponse struct {
	Players            int         `json:"players"`
	MaxBid             int         `json:"maxBid"`
	Targets            []int       `json:"targets"` // targets[bid-1]
	ExpectedCardPoints int         `json:"expectedCardPoints"`
	HasTeams           bool        `json:"hasTeams"` // partner and vice exist
	Trumps             []TrumpInfo `json:"trumps"`
}

type SweepResponse struct {
	Removed int `json:"removed"`
}
