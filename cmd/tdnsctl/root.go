package main

import (
	"encoding/json"
	"fmt"
	"time"

	"technitium_sync/internal/config"
	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"

	"github.com/spf13/cobra"
)

// Exit codes: 0 = success (changed or no-op), 1 = failure.
const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

var (
	flagURL      string
	flagPort     int
	flagToken    string
	flagInsecure bool
	flagTimeout  int

	flagProfiles string
	flagProfile  string

	flagCheck bool
	flagState string
)

var rootCmd = &cobra.Command{
	Use:   "tdnsctl",
	Short: "Converge Technitium DNS Server resources to a declared state",
	Long: `tdnsctl probes a Technitium DNS Server over its management API and
issues at most one mutating call per invocation to converge a resource
(zone, record, user, group, allow/block list entry, DHCP scope) to the
declared state. Re-running a converged command is a no-op.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagURL, "url", "", "Technitium API base URL (default from TECHNITIUM_API_URL)")
	pf.IntVar(&flagPort, "port", 0, "Technitium API port (default 5380)")
	pf.StringVar(&flagToken, "token", "", "Technitium API token (default from TECHNITIUM_API_TOKEN)")
	pf.BoolVar(&flagInsecure, "insecure", false, "skip TLS certificate validation")
	pf.IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds (default 10)")
	pf.StringVar(&flagProfiles, "profiles", "profiles.ini", "path to the connection profiles file")
	pf.StringVar(&flagProfile, "profile", "", "named connection profile to use")
	pf.BoolVar(&flagCheck, "check", false, "report what would change without mutating anything")
}

// addStateFlag registers --state on resource subcommands.
func addStateFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagState, "state", "present", "desired state: present or absent")
}

func parseState() (reconcile.Intent, error) {
	switch flagState {
	case "present":
		return reconcile.IntentPresent, nil
	case "absent":
		return reconcile.IntentAbsent, nil
	}
	return "", fmt.Errorf("invalid --state %q (want present or absent)", flagState)
}

// connectionProfile resolves the target server: a named profile when
// --profile is set, otherwise the environment overlaid by flags.
func connectionProfile() (technitium.Profile, error) {
	if flagProfile != "" {
		return config.LoadProfile(flagProfiles, flagProfile)
	}

	cfg, err := config.Load()
	if err != nil {
		return technitium.Profile{}, err
	}
	p := cfg.API.Profile()
	if flagURL != "" {
		p.BaseURL = flagURL
	}
	if flagPort != 0 {
		p.Port = flagPort
	}
	if flagToken != "" {
		p.Token = flagToken
	}
	if flagInsecure {
		p.ValidateCerts = false
	}
	if flagTimeout != 0 {
		p.Timeout = time.Duration(flagTimeout) * time.Second
	}
	if p.BaseURL == "" {
		return technitium.Profile{}, fmt.Errorf("no API URL configured (set --url or TECHNITIUM_API_URL)")
	}
	return p, nil
}

// runReconcile converges one resource and prints the outcome as JSON.
// A failed outcome maps to exit code 1 via the returned error.
func runReconcile(cmd *cobra.Command, res reconcile.Resource) error {
	intent, err := parseState()
	if err != nil {
		return err
	}
	p, err := connectionProfile()
	if err != nil {
		return err
	}

	client := technitium.NewClient(p)
	outcome, applyErr := reconcile.Apply(cmd.Context(), client, res, intent, flagCheck)
	if err := printJSON(cmd, outcome); err != nil {
		return err
	}
	if applyErr != nil {
		return fmt.Errorf("%s '%s': %w", res.Kind(), res.Name(), applyErr)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
