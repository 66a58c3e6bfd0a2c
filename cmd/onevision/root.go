package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	flagConfig  string
	flagFixture string
	flagDebug   bool
	flagConsole bool

	rt *app

	rootCmd = &cobra.Command{
		Use:   "onevision",
		Short: "Cloud inventory viewer",
		Long: `onevision - Cloud inventory viewer

onevision reads the inventory table written by the collector, normalizes
every record into a typed resource or metric, and serves cached views
by type, region and account.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			rt = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if rt == nil {
				return nil
			}
			err := rt.Close(cmd.Context())
			rt = nil
			return err
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the root command
func init() {
	rootCmd.SetVersionTemplate(`onevision {{.Version}}
`)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "Path to TOML config file")
	pf.StringVar(&flagFixture, "fixture", "", "Read records from a JSON fixture instead of the store")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.BoolVar(&flagConsole, "console", false, "Human readable log output")
}
