package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts extractOptions

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "wabbex <archive> <output>",
		Short: "Extract Nexus download URLs from a Wabbajack modlist archive",
		Long: "wabbex opens a Wabbajack modlist archive, parses the embedded manifest, and\n" +
			"writes one markdown block per Nexus-hosted entry to a new output file.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, ctx, args[0], args[1], opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&opts.modPages, "mods", "m", false, "Write mod page URLs instead of direct file URLs")
	rootCmd.Flags().StringVar(&opts.dumpManifest, "dump-manifest", "", "Also write the parsed manifest as indented JSON to this path")

	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
