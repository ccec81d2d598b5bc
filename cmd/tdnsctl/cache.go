package main

import (
	"fmt"

	"technitium_sync/internal/resources"
	"technitium_sync/internal/technitium"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Imperative cache operations",
	Long: `Cache operations are not reconciled: every invocation mutates (or
in check mode, would mutate) server state and always reports changed.`,
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Flush the entire DNS cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := connectionProfile()
		if err != nil {
			return err
		}
		client := technitium.NewClient(p)
		outcome, opErr := resources.FlushCache(cmd.Context(), client, flagCheck)
		if err := printJSON(cmd, outcome); err != nil {
			return err
		}
		if opErr != nil {
			return fmt.Errorf("cache flush: %w", opErr)
		}
		return nil
	},
}

var cacheDeleteCmd = &cobra.Command{
	Use:   "delete <domain>",
	Short: "Delete one cached zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := connectionProfile()
		if err != nil {
			return err
		}
		client := technitium.NewClient(p)
		outcome, opErr := resources.DeleteCachedZone(cmd.Context(), client, args[0], flagCheck)
		if err := printJSON(cmd, outcome); err != nil {
			return err
		}
		if opErr != nil {
			return fmt.Errorf("cache delete: %w", opErr)
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
	cacheCmd.AddCommand(cacheDeleteCmd)
	rootCmd.AddCommand(cacheCmd)
}
