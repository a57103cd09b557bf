package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lonng/muscore/internal/game"
	"github.com/lonng/muscore/internal/i18n"
	"github.com/lonng/muscore/internal/web/api"
	"github.com/lonng/muscore/protocol"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func rules(c *cli.Context) error {
	l := i18n.New(i18n.Match(c.String("lang")))
	r, err := api.Rules(l, c.Int("players"))
	if err != nil {
		return err
	}
	return printRules(os.Stdout, l, r)
}

func printRules(out io.Writer, l *i18n.Localizer, r *protocol.RulesResponse) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", l.Sprintf(i18n.BidKey), l.Sprintf(i18n.TargetKey))
	for i, target := range r.Targets {
		fmt.Fprintf(w, "%d\t%d\n", i+1, target)
	}
	return w.Flush()
}

func score(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: score FILE", 2)
	}
	s, err := loadSession(c.Args().First())
	if err != nil {
		return err
	}
	l := i18n.New(i18n.Match(c.String("lang")))
	return printSheet(os.Stdout, api.NewSheetView(l, s.Sheet()))
}

func loadSession(path string) (*game.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open session document")
	}
	defer f.Close()

	return decodeSession(f)
}

func decodeSession(r io.Reader) (*game.Session, error) {
	doc := protocol.SessionDocument{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode session document")
	}

	s, err := game.NewSession(doc.Players)
	if err != nil {
		return nil, err
	}
	for i, wire := range doc.Rounds {
		round, err := wire.ToRound(s.PlayerCount())
		if err != nil {
			return nil, errors.Wrapf(err, "round %d", i+1)
		}
		if err := s.AppendRound(round); err != nil {
			return nil, errors.Wrapf(err, "round %d", i+1)
		}
	}
	return s, nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "\t")
}

// printSheet writes one column per player: the sum of every round followed
// by the running subtotal, then the final totals.
func printSheet(out io.Writer, sheet *protocol.SheetView) error {
	fmt.Fprintln(out, sheet.Title)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\t%s\n", strings.Join(sheet.Players, "\t"))
	for _, row := range sheet.Rows {
		fields := make([]string, len(row.Fields))
		for i, f := range row.Fields {
			fields[i] = f.Label + ": " + f.Value
		}
		fmt.Fprintf(w, "%s\t%s\n", row.Title, strings.Join(fields, ", "))
		fmt.Fprintf(w, "  %s\t%s\n", sheet.SumLabel, joinInts(row.Sum))
		fmt.Fprintf(w, "  %s\t%s\n", sheet.TotalLabel, joinInts(row.Subtotal))
		for _, p := range row.Problems {
			fmt.Fprintf(w, "  ! %s\t\n", p)
		}
	}
	fmt.Fprintf(w, "%s\t%s\n", sheet.TotalLabel, joinInts(sheet.Total))
	return w.Flush()
}
