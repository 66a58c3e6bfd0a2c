package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yairfalse/onevision/pkg/metric"
)

var (
	metricsDashboard bool
	metricsValues    bool
	metricsJSON      bool
)

// metricsCmd lists normalized statistics records
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List aggregate statistics written by the collector",
	Example: `  onevision metrics              # One line per statistics record
  onevision metrics --values     # Every value of every record
  onevision metrics --dashboard  # Dashboard view, refreshed every few minutes`,
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().BoolVar(&metricsDashboard, "dashboard", false, "Use the short-lived dashboard cache")
	metricsCmd.Flags().BoolVar(&metricsValues, "values", false, "Print every value")
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "Print JSON instead of a table")
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := rt.Service(ctx)
	if err != nil {
		return err
	}

	var ms []metric.Metric
	if metricsDashboard {
		ms, err = svc.DashboardMetrics(ctx)
	} else {
		e, lerr := svc.Metrics(ctx)
		ms, err = e.Metrics, lerr
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if metricsJSON {
		if ms == nil {
			ms = []metric.Metric{}
		}
		return writeJSON(out, ms)
	}

	tw := newTable(out)
	if metricsValues {
		fmt.Fprintln(tw, "ID\tTYPE\tNAME\tVALUE")
		for _, m := range ms {
			for _, name := range m.Names() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ID, m.Kind, name, formatCell(m.Value(name)))
			}
		}
		return tw.Flush()
	}

	fmt.Fprintln(tw, "ID\tTYPE\tACCOUNT\tREGION\tTOTAL")
	for _, m := range ms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Kind, dash(m.AccountID), dash(m.Region), formatCell(m.TotalResources))
	}
	return tw.Flush()
}
