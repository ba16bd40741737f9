package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "unopro",
		Short: "Uno Pro Services website",
		Long: `unopro serves the Uno Pro Services marketing site: service pages,
the project gallery, the blog read from a remote JSON store, and the contact
and careers forms forwarded to webhooks.

Configuration comes from config.yaml, a .env file and UNOPRO_* environment
variables, in increasing order of precedence.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	root.AddCommand(newServeCmd(&cfgFile))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "unopro %s\n", version)
		},
	})
	return root
}
