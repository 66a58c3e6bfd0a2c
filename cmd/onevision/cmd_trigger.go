package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/spf13/cobra"

	"github.com/yairfalse/onevision/internal/identity"
	"github.com/yairfalse/onevision/internal/trigger"
)

var triggerFunction string

// triggerCmd starts a collection run
var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Start the inventory collector",
	Long: `Invoke the collector function asynchronously. The command returns as
soon as the invocation is queued; new records appear in the store once
the collector finishes.`,
	RunE: runTrigger,
}

func init() {
	rootCmd.AddCommand(triggerCmd)
	triggerCmd.Flags().StringVar(&triggerFunction, "function", "", "Collector function name (default: [trigger] function_name)")
}

func runTrigger(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	fn := triggerFunction
	if fn == "" {
		fn = rt.cfg.Trigger.FunctionName
	}

	awsCfg, err := rt.AWS(ctx)
	if err != nil {
		return err
	}
	t, err := trigger.New(lambda.NewFromConfig(awsCfg), fn, identity.EnvProvider{}, rt.log)
	if err != nil {
		return err
	}
	if err := t.Run(ctx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "collector %s triggered\n", fn)
	return nil
}
