package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yairfalse/onevision/internal/config"
	"github.com/yairfalse/onevision/internal/fetch"
	"github.com/yairfalse/onevision/internal/store"
)

var (
	snapshotOutput       string
	snapshotAllowPartial bool
)

// snapshotCmd copies the inventory into a local file
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Copy the inventory table into a local snapshot",
	Long: `Fetch every raw record from the configured store and save it into a
local snapshot file. Point [store] backend = "snapshot" at the file to
browse the inventory offline.`,
	Example: `  onevision snapshot --output inventory.db
  onevision snapshot --fixture records.json --output test.db`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "", "Snapshot file (default: [store] snapshot_path)")
	snapshotCmd.Flags().BoolVar(&snapshotAllowPartial, "allow-partial", false, "Save even when the listing stopped early")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if flagFixture == "" && rt.cfg.Store.Backend == config.BackendSnapshot {
		return errors.New("snapshot needs a dynamodb backend or --fixture as its source")
	}
	path := snapshotOutput
	if path == "" {
		path = rt.cfg.Store.SnapshotPath
	}

	resources, metrics, err := rt.Stores(ctx)
	if err != nil {
		return err
	}

	sources := []store.Store{resources}
	if metrics != nil {
		sources = append(sources, metrics)
	}

	var records []store.RawRecord
	for _, src := range sources {
		res := fetch.New(src,
			fetch.WithPageSize(rt.cfg.Store.PageSize),
			fetch.WithLogger(rt.log),
			fetch.WithRecorder(rt.tel),
		).FetchAll(ctx, store.Query{})
		if res.Partial && !snapshotAllowPartial {
			return fmt.Errorf("listing stopped after %d records: %w", len(res.Items), res.Err)
		}
		records = append(records, res.Items...)
	}

	snap, err := store.OpenSnapshot(path)
	if err != nil {
		return err
	}
	defer func() { _ = snap.Close() }()

	if err := snap.Save(records); err != nil {
		return err
	}

	rt.log.Info().Str("path", path).Int("records", len(records)).Msg("snapshot saved")
	fmt.Fprintf(cmd.OutOrStdout(), "saved %d records to %s\n", len(records), path)
	return nil
}
