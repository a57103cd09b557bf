package i18n

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
	"golang.org/x/text/language"
)

func allProblems() []scoring.Problem {
	return []scoring.Problem{
		{Kind: scoring.MissingRole, Role: scoring.RoleChief},
		{Kind: scoring.MissingRole, Role: scoring.RolePartner},
		{Kind: scoring.MissingRole, Role: scoring.RoleVice},
		{Kind: scoring.DuplicateRole},
		{Kind: scoring.MissingTrump, Role: scoring.RoleChief},
		{Kind: scoring.MissingTrump, Role: scoring.RoleVice},
		{Kind: scoring.InvalidTrumpPairing, Role: scoring.RoleVice, Pairing: scoring.PairingNoneRequired},
		{Kind: scoring.InvalidTrumpPairing, Role: scoring.RoleVice, Pairing: scoring.PairingNoneForbidden},
		{Kind: scoring.InvalidTrumpPairing, Role: scoring.RoleVice, Pairing: scoring.PairingSameAsChief},
		{Kind: scoring.MissingBid},
		{Kind: scoring.BidOutOfRange, Args: []int{15}},
		{Kind: scoring.CardPointsIncomplete},
		{Kind: scoring.CardPointsSumMismatch, Args: []int{60, 55}},
		{Kind: scoring.MissingTiedPlayers},
		{Kind: scoring.MissingProvocateur},
		{Kind: scoring.ProvocateurNotTied},
		{Kind: scoring.MissingCardsBid},
		{Kind: scoring.UnknownRound},
	}
}

func TestProblemCatalog(t *testing.T) {
	covered := map[scoring.ProblemKind]bool{}
	for _, tag := range Supported {
		l := New(tag)
		seen := map[string]bool{}
		for _, p := range allProblems() {
			msg := l.Problem(p)
			if msg == "" || msg == string(p.Kind) || strings.HasPrefix(msg, "err.") {
				t.Fatalf("%s: no message for %+v, got: %q", tag, p, msg)
			}
			if strings.Contains(msg, "%!") {
				t.Fatalf("%s: bad format for %+v: %q", tag, p, msg)
			}
			if seen[msg] {
				t.Fatalf("%s: message reused: %q", tag, msg)
			}
			seen[msg] = true
			covered[p.Kind] = true
		}
	}
	for _, kind := range scoring.ProblemKinds {
		if !covered[kind] {
			t.Fatalf("problem kind %s has no message", kind)
		}
	}
}

func TestProblemMessages(t *testing.T) {
	cases := []struct {
		tag     language.Tag
		problem scoring.Problem
		want    string
	}{
		{language.English, scoring.Problem{Kind: scoring.MissingRole, Role: scoring.RoleChief}, "Chief must be selected."},
		{language.German, scoring.Problem{Kind: scoring.MissingRole, Role: scoring.RoleChief}, "Chef muss ausgewählt werden."},
		{language.English, scoring.Problem{Kind: scoring.BidOutOfRange, Args: []int{12}}, "Chief's bid must be between 1 and 12."},
		{language.German, scoring.Problem{Kind: scoring.BidOutOfRange, Args: []int{12}}, "Das Gebot des Chefs muss zwischen 1 und 12 liegen."},
		{language.English, scoring.Problem{Kind: scoring.CardPointsSumMismatch, Args: []int{36, 30}}, "Card points must sum to 36 (currently 30)."},
		{language.German, scoring.Problem{Kind: scoring.CardPointsSumMismatch, Args: []int{36, 30}}, "Kartenpunkte müssen 36 ergeben (aktuell 30)."},
		{language.English, scoring.Problem{Kind: scoring.InvalidTrumpPairing, Pairing: scoring.PairingSameAsChief}, "Vice's trump must be different from Chief's trump."},
	}

	for _, c := range cases {
		if got := New(c.tag).Problem(c.problem); got != c.want {
			t.Fatalf("%s: expect: %q, got: %q", c.tag, c.want, got)
		}
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		values []string
		want   language.Tag
	}{
		{nil, language.English},
		{[]string{"de"}, language.German},
		{[]string{"de-CH"}, language.German},
		{[]string{"fr", "de-DE,de;q=0.9,en;q=0.5"}, language.German},
		{[]string{"", "en-US"}, language.English},
		{[]string{"%%%"}, language.English},
	}
	for _, c := range cases {
		if got := Match(c.values...); got != c.want {
			t.Fatalf("%v: expect: %s, got: %s", c.values, c.want, got)
		}
	}

	r := httptest.NewRequest("GET", "/v1/rules/4?lang=de", nil)
	r.Header.Set("Accept-Language", "en")
	if got := ResolveTag(r); got != language.German {
		t.Fatalf("query parameter should win, got: %s", got)
	}
	r = httptest.NewRequest("GET", "/v1/rules/4", nil)
	r.Header.Set("Accept-Language", "de")
	if got := ResolveTag(r); got != language.German {
		t.Fatalf("expect german from header, got: %s", got)
	}
}

func TestLabels(t *testing.T) {
	de := New(language.German)
	players := []string{"Anna", "Bert", "Carl"}

	if got := de.Trump(scoring.TrumpGreen); got != "Grün" {
		t.Fatalf("trump: %q", got)
	}
	if got := de.Trump(scoring.TrumpRank7); got != "7" {
		t.Fatalf("trump: %q", got)
	}
	if got := de.Trump(scoring.TrumpNone); got != "Kein Trumpf" {
		t.Fatalf("trump: %q", got)
	}
	if got := de.Seat(scoring.NoVice, players); got != "Keiner" {
		t.Fatalf("seat: %q", got)
	}
	if got := de.Seat(scoring.SeatAt(1), players); got != "Bert" {
		t.Fatalf("seat: %q", got)
	}
	if got := de.RoundTitle(3, constant.RoundStalemate); got != "Runde 3 (Eklat)" {
		t.Fatalf("round: %q", got)
	}
	if got := New(language.English).RoundTitle(2, constant.RoundNormal); got != "Round 2" {
		t.Fatalf("round: %q", got)
	}
	if got := de.Players([]int{0, 2}, players); got != "Anna, Carl" {
		t.Fatalf("players: %q", got)
	}
	if de.Number(scoring.Number{}) != placeholder || de.Trump(scoring.TrumpUnset) != placeholder {
		t.Fatalf("unset values should render as placeholder")
	}
}
