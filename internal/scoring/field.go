package scoring

import (
	"encoding/json"
	"errors"
	"strconv"
)

var ErrBadSeat = errors.New("seat must be a player index, null or \"none\"")

// Seat is the player holding a role. The zero value is an unfilled role;
// NoVice declares that the round is played without a vice.
type Seat int

const (
	NoSeat Seat = 0
	NoVice Seat = -1
)

// SeatAt returns the seat of player index p.
func SeatAt(p int) Seat {
	if p < 0 {
		return NoSeat
	}
	return Seat(p + 1)
}

// Index returns the player index, false for NoSeat and NoVice.
func (s Seat) Index() (int, bool) {
	if s <= NoSeat {
		return 0, false
	}
	return int(s) - 1, true
}

// In reports whether s names one of n players.
func (s Seat) In(n int) bool {
	p, ok := s.Index()
	return ok && p < n
}

func (s Seat) String() string {
	switch {
	case s == NoVice:
		return "none"
	case s <= NoSeat:
		return "-"
	}
	return strconv.Itoa(int(s) - 1)
}

func (s Seat) MarshalJSON() ([]byte, error) {
	switch {
	case s == NoVice:
		return []byte(`"none"`), nil
	case s <= NoSeat:
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(s) - 1)), nil
}

func (s *Seat) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*s = NoSeat
		return nil
	case `"none"`:
		*s = NoVice
		return nil
	}
	var p int
	if err := json.Unmarshal(data, &p); err != nil || p < 0 {
		return ErrBadSeat
	}
	*s = SeatAt(p)
	return nil
}

// Number is an integer input that may not have been filled in yet, in the
// manner of sql.NullInt64.
type Number struct {
	Value int
	Valid bool
}

// Num returns a filled-in Number.
func Num(v int) Number {
	return Number{Value: v, Valid: true}
}

// Int returns the value, 0 when unset.
func (n Number) Int() int {
	if !n.Valid {
		return 0
	}
	return n.Value
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Value)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Num(v)
	return nil
}

// Nums is a shorthand for a fully filled-in list.
func Nums(vals ...int) []Number {
	out := make([]Number, len(vals))
	for i, v := range vals {
		out[i] = Num(v)
	}
	return out
}
