package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yairfalse/onevision/pkg/resource"
)

var (
	resourcesType    string
	resourcesRegion  string
	resourcesAccount string
	resourcesJSON    bool
)

// resourcesCmd lists normalized resources
var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List normalized resources",
	Example: `  onevision resources                          # Every resource
  onevision resources --type EC2Instance       # One kind
  onevision resources --region eu-west-1 --json`,
	RunE: runResources,
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
	addResourceFilterFlags(resourcesCmd, &resourcesType, &resourcesRegion, &resourcesAccount)
	resourcesCmd.Flags().BoolVar(&resourcesJSON, "json", false, "Print JSON instead of a table")
}

func addResourceFilterFlags(cmd *cobra.Command, kind, region, account *string) {
	cmd.Flags().StringVarP(kind, "type", "t", "", "Resource type, e.g. EC2Instance")
	cmd.Flags().StringVarP(region, "region", "r", "", "Region")
	cmd.Flags().StringVarP(account, "account", "a", "", "Account ID")
}

func runResources(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := rt.Service(ctx)
	if err != nil {
		return err
	}

	e, err := svc.Find(ctx, resource.Filter{
		Kind:      resource.Kind(resourcesType),
		Region:    resourcesRegion,
		AccountID: resourcesAccount,
	})
	if err != nil {
		return err
	}
	if e.Partial {
		fmt.Fprintln(os.Stderr, "warning: the store listing stopped early, results may be incomplete")
	}

	out := cmd.OutOrStdout()
	if resourcesJSON {
		if e.Resources == nil {
			e.Resources = []resource.Resource{}
		}
		return writeJSON(out, e.Resources)
	}
	return printResources(out, e.Resources)
}
