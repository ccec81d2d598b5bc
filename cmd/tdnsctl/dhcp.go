package main

import (
	"technitium_sync/internal/resources"

	"github.com/spf13/cobra"
)

var (
	dhcpStartingAddress string
	dhcpEndingAddress   string
	dhcpSubnetMask      string
	dhcpRouterAddress   string
	dhcpDomainName      string
	dhcpLeaseTimeDays   int
)

var dhcpCmd = &cobra.Command{
	Use:   "dhcp <scope>",
	Short: "Converge a DHCP scope",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, &resources.DhcpScope{
			Scope:           args[0],
			StartingAddress: dhcpStartingAddress,
			EndingAddress:   dhcpEndingAddress,
			SubnetMask:      dhcpSubnetMask,
			RouterAddress:   dhcpRouterAddress,
			DomainName:      dhcpDomainName,
			LeaseTimeDays:   dhcpLeaseTimeDays,
		})
	},
}

func init() {
	addStateFlag(dhcpCmd)
	f := dhcpCmd.Flags()
	f.StringVar(&dhcpStartingAddress, "starting-address", "", "first address of the scope range")
	f.StringVar(&dhcpEndingAddress, "ending-address", "", "last address of the scope range")
	f.StringVar(&dhcpSubnetMask, "subnet-mask", "", "subnet mask")
	f.StringVar(&dhcpRouterAddress, "router-address", "", "default gateway handed to clients")
	f.StringVar(&dhcpDomainName, "domain-name", "", "domain name handed to clients")
	f.IntVar(&dhcpLeaseTimeDays, "lease-time-days", 0, "lease time in days")
	rootCmd.AddCommand(dhcpCmd)
}
