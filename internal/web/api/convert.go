package api

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lonng/muscore/internal/game"
	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/pkg/errutil"
)

const cardPointsField = "cardPoints"

func decode(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errutil.ErrInvalidParameter
	}
	return nil
}

func decodeSeat(raw json.RawMessage) (*scoring.Seat, error) {
	var s scoring.Seat
	if err := decode(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeTrump(raw json.RawMessage) (*scoring.Trump, error) {
	var t scoring.Trump
	if err := decode(raw, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeNumber(raw json.RawMessage) (*scoring.Number, error) {
	var n scoring.Number
	if err := decode(raw, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// normalPatch turns a single field update into a patch. Card points are
// set one at a time as "cardPoints.{player}" or all at once as a list.
func normalPatch(field string, raw json.RawMessage) (game.NormalPatch, error) {
	var (
		p   game.NormalPatch
		err error
	)

	switch field {
	case "chief":
		p.Chief, err = decodeSeat(raw)
	case "partner":
		p.Partner, err = decodeSeat(raw)
	case "vice":
		p.Vice, err = decodeSeat(raw)
	case "chiefTrump":
		p.ChiefTrump, err = decodeTrump(raw)
	case "viceTrump":
		p.ViceTrump, err = decodeTrump(raw)
	case "bid":
		p.Bid, err = decodeNumber(raw)
	case cardPointsField:
		var points []scoring.Number
		if err = decode(raw, &points); err == nil {
			p.CardPoints = map[int]scoring.Number{}
			for i, v := range points {
				p.CardPoints[i] = v
			}
		}
	default:
		if !strings.HasPrefix(field, cardPointsField+".") {
			return p, errutil.ErrUnknownField
		}
		player, convErr := strconv.Atoi(strings.TrimPrefix(field, cardPointsField+"."))
		if convErr != nil {
			return p, errutil.ErrUnknownField
		}
		var v *scoring.Number
		if v, err = decodeNumber(raw); err == nil {
			p.CardPoints = map[int]scoring.Number{player: *v}
		}
	}
	return p, err
}

func stalematePatch(field string, raw json.RawMessage) (game.StalematePatch, error) {
	var (
		p   game.StalematePatch
		err error
	)

	switch field {
	case "tied":
		var tied []int
		if err = decode(raw, &tied); err == nil {
			if tied == nil {
				tied = []int{}
			}
			p.Tied = tied
		}
	case "provocateur":
		p.Provocateur, err = decodeSeat(raw)
	case "cardsBid":
		p.CardsBid, err = decodeNumber(raw)
	default:
		return p, errutil.ErrUnknownField
	}
	return p, err
}

// updateRound applies one field update to round i, choosing the patch type
// from the round's kind.
func updateRound(s *game.Session, i int, field string, raw json.RawMessage) error {
	r, err := s.Round(i)
	if err != nil {
		return err
	}

	switch r.(type) {
	case *scoring.NormalRound:
		p, err := normalPatch(field, raw)
		if err != nil {
			return err
		}
		return s.UpdateNormal(i, p)
	case *scoring.StalemateRound:
		p, err := stalematePatch(field, raw)
		if err != nil {
			return err
		}
		return s.UpdateStalemate(i, p)
	}
	return errutil.ErrWrongRoundKind
}
