package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yairfalse/onevision/internal/export"
	"github.com/yairfalse/onevision/pkg/resource"
)

var (
	exportColumns string
	exportMetrics bool
	exportType    string
	exportRegion  string
	exportAccount string
)

// exportCmd resolves export columns
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print resources or metrics as columns",
	Long: `Resolve a column specification against normalized records and print
the result as a tab separated table. Columns are read from a YAML file:

  columns:
    - key: id
      label: ID
    - key: tags.env
      label: Environment
    - key: storageBytes
      transform: bytes`,
	Example: `  onevision export --type S3Bucket --columns s3.yaml
  onevision export --metrics --columns metrics.yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addResourceFilterFlags(exportCmd, &exportType, &exportRegion, &exportAccount)
	exportCmd.Flags().StringVar(&exportColumns, "columns", "", "YAML column file (default: id, type, name, account, region, tags)")
	exportCmd.Flags().BoolVar(&exportMetrics, "metrics", false, "Export metrics instead of resources")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cols := export.DefaultColumns()
	if exportColumns != "" {
		var err error
		if cols, err = export.LoadColumns(exportColumns); err != nil {
			return err
		}
	}

	svc, err := rt.Service(ctx)
	if err != nil {
		return err
	}

	var rows [][]any
	if exportMetrics {
		e, err := svc.Metrics(ctx)
		if err != nil {
			return err
		}
		rows, err = export.Rows(e.Metrics, cols)
		if err != nil {
			return err
		}
	} else {
		e, err := svc.Find(ctx, resource.Filter{
			Kind:      resource.Kind(exportType),
			Region:    exportRegion,
			AccountID: exportAccount,
		})
		if err != nil {
			return err
		}
		rows, err = export.Rows(e.Resources, cols)
		if err != nil {
			return err
		}
	}

	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, strings.Join(export.Header(cols), "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
