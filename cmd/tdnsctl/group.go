package main

import (
	"technitium_sync/internal/resources"

	"github.com/spf13/cobra"
)

var groupDescription string

var groupCmd = &cobra.Command{
	Use:   "group <name>",
	Short: "Converge an administrative group",
	Long: `Converge one group. The built-in groups (Administrators, DHCP
Administrators, DNS Administrators) cannot be deleted; a --state absent
on one of them fails before any server call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, &resources.Group{
			Group:       args[0],
			Description: groupDescription,
		})
	},
}

func init() {
	addStateFlag(groupCmd)
	groupCmd.Flags().StringVar(&groupDescription, "description", "", "group description")
	rootCmd.AddCommand(groupCmd)
}
