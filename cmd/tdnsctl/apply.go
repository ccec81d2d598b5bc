package main

import (
	"fmt"

	"technitium_sync/internal/config"
	"technitium_sync/internal/inventory"
	"technitium_sync/internal/technitium"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <manifest>",
	Short: "Apply a declarative resource manifest",
	Long: `Apply every resource in a YAML manifest, strictly in order, against
one server. The run aborts on the first failure; entries after it are
not attempted. When the manifest names a profile it is looked up in the
profiles file, otherwise the usual connection flags apply.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := inventory.Load(args[0])
		if err != nil {
			return err
		}
		items, err := m.Build()
		if err != nil {
			return err
		}

		var p technitium.Profile
		if m.Profile != "" {
			p, err = config.LoadProfile(flagProfiles, m.Profile)
		} else {
			p, err = connectionProfile()
		}
		if err != nil {
			return err
		}

		client := technitium.NewClient(p)
		logger := logrus.WithField("component", "apply")
		result := inventory.Run(cmd.Context(), client, items, flagCheck, logger)

		if err := printJSON(cmd, result); err != nil {
			return err
		}
		if result.Failed {
			return fmt.Errorf("manifest run %s failed", result.RunID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
