package scoring

// targets[n][bid-1] is the minimum number of card points the chief's team
// has to take to fulfill a bid in an n-player game.
var targets = map[int][]int{
	3: {12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34},
	4: {30, 32, 34, 36, 38, 40, 42, 44, 46, 48, 50, 52, 54, 56, 58},
	5: {24, 27, 30, 33, 36, 39, 42, 45, 48, 51, 54, 57},
	6: {20, 24, 28, 32, 36, 40, 44, 48, 52, 56},
}

// MaxBid returns the highest bid allowed with n players, 0 for an
// unsupported player count.
func MaxBid(n int) int {
	return len(targets[n])
}

// TeamTarget returns the points the chief's team needs for bid. The bool is
// false when bid is outside [1, MaxBid(n)].
func TeamTarget(n, bid int) (int, bool) {
	row := targets[n]
	if bid < 1 || bid > len(row) {
		return 0, false
	}
	return row[bid-1], true
}

// Targets returns a copy of the target row for n players.
func Targets(n int) []int {
	row := targets[n]
	if row == nil {
		return nil
	}
	out := make([]int, len(row))
	copy(out, row)
	return out
}

// RankAchieved returns the highest bid whose target points reaches, or 0
// when points is below the bid-1 target.
func RankAchieved(n, points int) int {
	rank := 0
	for i, target := range targets[n] {
		if points < target {
			break
		}
		rank = i + 1
	}
	return rank
}

// ExpectedCardPoints is the total of all card points dealt in one round.
func ExpectedCardPoints(n int) int {
	if n == 3 {
		return 36
	}
	return 60
}
