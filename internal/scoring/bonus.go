package scoring

const (
	bonusPerRank    = 10
	maxBonus        = 100
	penaltyPerRank  = -10
	opponentPerRank = 5
)

// FulfillmentBonus is what the chief (and the partner) earn when the team
// reaches the target of bid. It is 0 when the target is missed or the bid
// is out of range; the lost game is settled by LostGamePenalty instead.
func FulfillmentBonus(trump Trump, bid, teamPoints, n int) int {
	target, ok := TeamTarget(n, bid)
	if !ok || teamPoints < target {
		return 0
	}

	rank := bid + startRank[Classify(trump)]
	if bonus := rank * bonusPerRank; bonus < maxBonus {
		return bonus
	}
	return maxBonus
}

// Penalty settles a lost game.
type Penalty struct {
	RanksShort    int `json:"ranksShort"`
	ChiefPenalty  int `json:"chiefPenalty"`
	OpponentBonus int `json:"opponentBonus"`
}

// LostGamePenalty charges the chief 10 points and pays every opponent 5
// points per rank the team fell short of bid. The zero Penalty is returned
// when the target was reached or bid is out of range.
func LostGamePenalty(bid, teamPoints, n int) Penalty {
	target, ok := TeamTarget(n, bid)
	if !ok || teamPoints >= target {
		return Penalty{}
	}

	short := bid - RankAchieved(n, teamPoints)
	return Penalty{
		RanksShort:    short,
		ChiefPenalty:  penaltyPerRank * short,
		OpponentBonus: opponentPerRank * short,
	}
}
