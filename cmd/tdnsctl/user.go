package main

import (
	"technitium_sync/internal/resources"

	"github.com/spf13/cobra"
)

var (
	userPassword    string
	userDisplayName string
)

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Converge an administrative user",
	Long: `Converge one user account. The built-in 'admin' user cannot be
deleted; a --state absent on it fails before any server call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, &resources.User{
			Username:    args[0],
			Password:    userPassword,
			DisplayName: userDisplayName,
		})
	},
}

func init() {
	addStateFlag(userCmd)
	f := userCmd.Flags()
	f.StringVar(&userPassword, "password", "", "password for a newly created user")
	f.StringVar(&userDisplayName, "display-name", "", "display name")
	rootCmd.AddCommand(userCmd)
}
