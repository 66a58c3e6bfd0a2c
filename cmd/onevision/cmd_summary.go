package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryJSON bool

// summaryCmd prints resource counts
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Count resources by type, region and account",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print JSON instead of a table")
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := rt.Service(ctx)
	if err != nil {
		return err
	}
	sum, err := svc.Summary(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if summaryJSON {
		return writeJSON(out, sum)
	}

	tw := newTable(out)
	fmt.Fprintf(tw, "TOTAL\t%d\n", sum.Total)
	if sum.Partial {
		fmt.Fprintln(tw, "PARTIAL\ttrue")
	}
	fmt.Fprintln(tw, "\nTYPE\tCOUNT")
	for _, k := range sum.Kinds() {
		fmt.Fprintf(tw, "%s\t%d\n", k, sum.ByKind[k])
	}
	fmt.Fprintln(tw, "\nREGION\tCOUNT")
	for _, r := range sortedCounts(sum.ByRegion) {
		fmt.Fprintf(tw, "%s\t%d\n", r, sum.ByRegion[r])
	}
	fmt.Fprintln(tw, "\nACCOUNT\tCOUNT")
	for _, a := range sortedCounts(sum.ByAccount) {
		fmt.Fprintf(tw, "%s\t%d\n", a, sum.ByAccount[a])
	}
	return tw.Flush()
}
