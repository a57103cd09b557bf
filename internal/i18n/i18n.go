// Package i18n renders validation problems and score sheet labels in the
// supported languages.
package i18n

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/constant"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

const placeholder = "—"

// Supported lists the languages with a full catalog, the first is the
// default.
var Supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(Supported)

// Default returns the default language tag.
func Default() language.Tag {
	return Supported[0]
}

// Match returns the supported language best matching the first value that
// names one. Values are language tags or Accept-Language lists.
func Match(values ...string) language.Tag {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(v)
		if err != nil || len(tags) == 0 {
			continue
		}
		if _, index, confidence := matcher.Match(tags...); confidence != language.No {
			return Supported[index]
		}
	}
	return Default()
}

// ResolveTag picks the language for a request: the lang query parameter
// first, then Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	return Match(r.URL.Query().Get(LangParam), r.Header.Get("Accept-Language"))
}

// Localizer renders messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) *Localizer {
	return &Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// ForRequest returns the localizer matching r.
func ForRequest(r *http.Request) *Localizer {
	return New(ResolveTag(r))
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Sprintf renders the message registered under key.
func (l *Localizer) Sprintf(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

var roleKeys = map[scoring.Role][2]string{
	scoring.RoleChief:   {ChiefRequiredKey, ChiefTrumpRequiredKey},
	scoring.RolePartner: {PartnerRequiredKey, ""},
	scoring.RoleVice:    {ViceRequiredKey, ViceTrumpRequiredKey},
}

var pairingKeys = map[scoring.Pairing]string{
	scoring.PairingNoneRequired:  ViceTrumpNoneRequiredKey,
	scoring.PairingNoneForbidden: ViceTrumpNoneForbiddenKey,
	scoring.PairingSameAsChief:   ViceTrumpSameKey,
}

var problemKeys = map[scoring.ProblemKind]string{
	scoring.DuplicateRole:        RolesDistinctKey,
	scoring.MissingBid:           BidRequiredKey,
	scoring.CardPointsIncomplete: CardPointsIncompleteKey,
	scoring.MissingTiedPlayers:   TiedMinKey,
	scoring.MissingProvocateur:   ProvocateurRequiredKey,
	scoring.ProvocateurNotTied:   ProvocateurNotTiedKey,
	scoring.MissingCardsBid:      CardsBidRequiredKey,
	scoring.UnknownRound:         UnknownRoundKey,
}

func arg(p scoring.Problem, i int) int {
	if i < len(p.Args) {
		return p.Args[i]
	}
	return 0
}

// Problem renders a validation problem as a sentence.
func (l *Localizer) Problem(p scoring.Problem) string {
	switch p.Kind {
	case scoring.MissingRole:
		if keys, ok := roleKeys[p.Role]; ok {
			return l.Sprintf(keys[0])
		}
	case scoring.MissingTrump:
		if keys, ok := roleKeys[p.Role]; ok && keys[1] != "" {
			return l.Sprintf(keys[1])
		}
	case scoring.InvalidTrumpPairing:
		if key, ok := pairingKeys[p.Pairing]; ok {
			return l.Sprintf(key)
		}
	case scoring.BidOutOfRange:
		return l.Sprintf(BidRangeKey, arg(p, 0))
	case scoring.CardPointsSumMismatch:
		return l.Sprintf(CardPointsSumKey, arg(p, 0), arg(p, 1))
	default:
		if key, ok := problemKeys[p.Kind]; ok {
			return l.Sprintf(key)
		}
	}
	return string(p.Kind)
}

// Problems renders every problem of a result.
func (l *Localizer) Problems(problems []scoring.Problem) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = l.Problem(p)
	}
	return out
}

var trumpKeys = map[scoring.Trump]string{
	scoring.TrumpRed:    TrumpRedKey,
	scoring.TrumpBlue:   TrumpBlueKey,
	scoring.TrumpPurple: TrumpPurpleKey,
	scoring.TrumpYellow: TrumpYellowKey,
	scoring.TrumpGreen:  TrumpGreenKey,
	scoring.TrumpNone:   TrumpNoneKey,
}

// Trump renders a trump: colors by name, ranks as their digit.
func (l *Localizer) Trump(t scoring.Trump) string {
	if key, ok := trumpKeys[t]; ok {
		return l.Sprintf(key)
	}
	if !t.IsSet() {
		return placeholder
	}
	return t.String()
}

// Seat renders the player holding a role.
func (l *Localizer) Seat(s scoring.Seat, players []string) string {
	if s == scoring.NoVice {
		return l.Sprintf(NoneKey)
	}
	if p, ok := s.Index(); ok && p < len(players) {
		return players[p]
	}
	return placeholder
}

// Number renders an optional number.
func (l *Localizer) Number(n scoring.Number) string {
	if !n.Valid {
		return placeholder
	}
	return strconv.Itoa(n.Value)
}

// RoundTitle renders the heading of round number no.
func (l *Localizer) RoundTitle(no int, kind constant.RoundKind) string {
	if kind == constant.RoundStalemate {
		return l.Sprintf(RoundStalemateKey, no)
	}
	return l.Sprintf(RoundKey, no)
}

// Players renders the names of the listed players.
func (l *Localizer) Players(indices []int, players []string) string {
	if len(indices) == 0 {
		return placeholder
	}
	names := make([]string, 0, len(indices))
	for _, p := range indices {
		if p >= 0 && p < len(players) {
			names = append(names, players[p])
		}
	}
	return strings.Join(names, ", ")
}
