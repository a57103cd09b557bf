package scoring

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrUnknownTrump = errors.New("unknown trump")

// Trump is a trump declaration. The zero value means nothing was declared yet.
type Trump int

const (
	TrumpUnset Trump = iota
	TrumpRed
	TrumpBlue
	TrumpPurple
	TrumpYellow
	TrumpGreen
	TrumpRank0
	TrumpRank1
	TrumpRank2
	TrumpRank3
	TrumpRank4
	TrumpRank5
	TrumpRank6
	TrumpRank7
	TrumpRank8
	TrumpRank9
	TrumpNone
)

var trumpNames = [...]string{
	TrumpUnset:  "",
	TrumpRed:    "red",
	TrumpBlue:   "blue",
	TrumpPurple: "purple",
	TrumpYellow: "yellow",
	TrumpGreen:  "green",
	TrumpRank0:  "0",
	TrumpRank1:  "1",
	TrumpRank2:  "2",
	TrumpRank3:  "3",
	TrumpRank4:  "4",
	TrumpRank5:  "5",
	TrumpRank6:  "6",
	TrumpRank7:  "7",
	TrumpRank8:  "8",
	TrumpRank9:  "9",
	TrumpNone:   "none",
}

// Trumps lists every declarable trump in display order.
var Trumps = []Trump{
	TrumpRed, TrumpBlue, TrumpPurple, TrumpYellow, TrumpGreen,
	TrumpRank0, TrumpRank1, TrumpRank2, TrumpRank3, TrumpRank4,
	TrumpRank5, TrumpRank6, TrumpRank7, TrumpRank8, TrumpRank9,
	TrumpNone,
}

func (t Trump) String() string {
	if t < 0 || int(t) >= len(trumpNames) {
		return "invalid"
	}
	return trumpNames[t]
}

// IsSet reports whether a trump was declared, "none" included.
func (t Trump) IsSet() bool {
	return t > TrumpUnset && t <= TrumpNone
}

// ParseTrump accepts the raw values "red" ... "green", "0" ... "9" and
// "none". An empty string parses to TrumpUnset.
func ParseTrump(s string) (Trump, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range trumpNames {
		if name == s {
			return Trump(i), nil
		}
	}
	return TrumpUnset, ErrUnknownTrump
}

func (t Trump) MarshalJSON() ([]byte, error) {
	if !t.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *Trump) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TrumpUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseTrump(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Category groups trumps by how much bonus a fulfilled bid earns.
type Category int

const (
	CategoryColor Category = iota
	CategoryOneOrSeven
	CategoryOtherNumber
	CategoryNone
)

var categoryNames = [...]string{
	CategoryColor:       "color",
	CategoryOneOrSeven:  "1or7",
	CategoryOtherNumber: "otherNumber",
	CategoryNone:        "none",
}

func (c Category) String() string {
	return categoryNames[c]
}

// Classify maps a trump to its category. An undeclared trump falls into
// CategoryOtherNumber; such a round never validates, so it is never scored.
func Classify(t Trump) Category {
	switch t {
	case TrumpNone:
		return CategoryNone
	case TrumpRed, TrumpBlue, TrumpPurple, TrumpYellow, TrumpGreen:
		return CategoryColor
	case TrumpRank1, TrumpRank7:
		return CategoryOneOrSeven
	}
	return CategoryOtherNumber
}

// bonus ranks added on top of the bid per category
var startRank = [...]int{
	CategoryColor:       0,
	CategoryOneOrSeven:  1,
	CategoryOtherNumber: 2,
	CategoryNone:        3,
}

// StartRank is the number of ranks added to the bid when computing the
// fulfillment bonus.
func (c Category) StartRank() int {
	return startRank[c]
}
