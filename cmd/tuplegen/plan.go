package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/syssam/typedtuple/compiler"
)

// runPlan prints every accessor the generator would emit, one arity per
// block, followed by the record accessors.
func runPlan(w io.Writer, f *flags, log *slog.Logger) error {
	plan, records, err := compiler.Plan(f.configPath(), f.options(log)...)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "max arity %d: %d markers, %d accessors\n", plan.MaxArity, len(plan.Markers), plan.Count())
	for s := 1; s <= plan.MaxArity; s++ {
		fmt.Fprintln(tw)
		for _, a := range plan.Arity(s) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.Name(), a.Elem(), a.Remainder, a.Left, a.Right)
		}
	}
	for _, r := range records {
		fmt.Fprintf(tw, "\nrecord %s (arity %d)\n", r.Name, r.Arity())
		for _, acc := range r.Accessors {
			fmt.Fprintf(tw, "%s\tposition %d\t%s\n", acc.Name, acc.Position, r.Fields[acc.Position].Type)
		}
		if len(r.Ambiguous) > 0 {
			fmt.Fprintf(tw, "no accessor\t%s\n", strings.Join(r.Ambiguous, ", "))
		}
	}
	return tw.Flush()
}
