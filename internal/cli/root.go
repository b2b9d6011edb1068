package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	jsonOutput bool
	eventFile  string
}

// NewRootCmd builds the schedulectl command tree. Each call returns fresh flag state.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:     "schedulectl",
		Version: version,
		Short:   "Offline meeting grid generator",
		Long: `schedulectl builds a supplier/buyer meeting schedule from an event file
without starting the API server.

The event file is YAML: event window, breaks, suppliers with their buyer
preferences, and buyers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	if version != "" {
		root.SetVersionTemplate("{{.Version}}\n")
	}

	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	root.PersistentFlags().StringVarP(&opts.eventFile, "file", "f", "event.yaml", "Event definition file")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newGridCmd(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the schedulectl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root.Version)
		},
	})
	return root
}

// Execute runs the root command.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}
