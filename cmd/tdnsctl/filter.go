package main

import (
	"technitium_sync/internal/resources"

	"github.com/spf13/cobra"
)

var allowedCmd = &cobra.Command{
	Use:   "allowed <domain>",
	Short: "Converge an allow list entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, &resources.FilterDomain{
			Domain: args[0],
			List:   resources.AllowedList,
		})
	},
}

var blockedCmd = &cobra.Command{
	Use:   "blocked <domain>",
	Short: "Converge a block list entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, &resources.FilterDomain{
			Domain: args[0],
			List:   resources.BlockedList,
		})
	},
}

func init() {
	addStateFlag(allowedCmd)
	addStateFlag(blockedCmd)
	rootCmd.AddCommand(allowedCmd)
	rootCmd.AddCommand(blockedCmd)
}
