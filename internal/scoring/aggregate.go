package scoring

// Subtotals replays rounds[0..upto] and adds up the sums of the rounds
// that validate. Invalid rounds add nothing and do not stop the replay.
// Nothing is cached: any edit to an earlier round is picked up on the next
// call.
func Subtotals(rounds []Round, n, upto int) []int {
	if n < 0 {
		n = 0
	}
	totals := make([]int, n)
	for i := 0; i <= upto && i < len(rounds); i++ {
		accumulate(totals, Score(rounds[i], n))
	}
	return totals
}

// Totals is the subtotal through the last round.
func Totals(rounds []Round, n int) []int {
	return Subtotals(rounds, n, len(rounds)-1)
}

// RunningTotals returns the subtotal after each round in one replay;
// RunningTotals(rounds, n)[i] equals Subtotals(rounds, n, i).
func RunningTotals(rounds []Round, n int) [][]int {
	if n < 0 {
		n = 0
	}
	var (
		totals  = make([]int, n)
		running = make([][]int, len(rounds))
	)
	for i, r := range rounds {
		accumulate(totals, Score(r, n))
		running[i] = append([]int(nil), totals...)
	}
	return running
}

func accumulate(totals []int, res Result) {
	if !res.Valid() {
		return
	}
	for p := range totals {
		totals[p] += res.Sum[p]
	}
}
