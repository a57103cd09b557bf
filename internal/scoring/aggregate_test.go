package scoring

import (
	"reflect"
	"testing"
)

func rounds() []Round {
	return []Round{
		&NormalRound{Chief: SeatAt(0), ChiefTrump: TrumpRed, Bid: Num(3), CardPoints: Nums(16, 10, 10)},
		// missing bid, must be skipped
		&NormalRound{Chief: SeatAt(1), ChiefTrump: TrumpBlue, CardPoints: Nums(36, 0, 0)},
		&StalemateRound{Tied: []int{0, 1}, Provocateur: SeatAt(1), CardsBid: Num(2)},
	}
}

func TestSubtotals(t *testing.T) {
	rs := rounds()
	cases := []struct {
		upto int
		want []int
	}{
		{upto: -1, want: []int{0, 0, 0}},
		{upto: 0, want: []int{46, 10, 10}},
		{upto: 1, want: []int{46, 10, 10}},
		{upto: 2, want: []int{56, -10, 10}},
		{upto: 10, want: []int{56, -10, 10}},
	}
	for _, c := range cases {
		if got := Subtotals(rs, 3, c.upto); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("upto: %d, expect: %v, got: %v", c.upto, c.want, got)
		}
	}

	if got := Totals(rs, 3); !reflect.DeepEqual(got, []int{56, -10, 10}) {
		t.Fatalf("totals: %v", got)
	}
	if got := Totals(nil, 4); !reflect.DeepEqual(got, []int{0, 0, 0, 0}) {
		t.Fatalf("empty totals: %v", got)
	}
}

func TestSubtotalsSeesEdits(t *testing.T) {
	rs := rounds()
	before := Totals(rs, 3)
	rs[1].(*NormalRound).Bid = Num(1)
	rs[1].(*NormalRound).CardPoints = Nums(12, 12, 12)
	after := Totals(rs, 3)

	// round two now counts: chief 1 reaches 12, bid 1 blue pays 10
	want := []int{before[0] + 12, before[1] + 22, before[2] + 12}
	if !reflect.DeepEqual(after, want) {
		t.Fatalf("expect: %v, got: %v", want, after)
	}
}

func TestRunningTotals(t *testing.T) {
	rs := rounds()
	running := RunningTotals(rs, 3)
	if len(running) != len(rs) {
		t.Fatalf("expect %d rows, got: %d", len(rs), len(running))
	}
	for i := range rs {
		if want := Subtotals(rs, 3, i); !reflect.DeepEqual(running[i], want) {
			t.Fatalf("row %d, expect: %v, got: %v", i, want, running[i])
		}
	}
}
