package main

import (
	"technitium_sync/internal/resources"

	"github.com/spf13/cobra"
)

var (
	zoneType            string
	zoneCatalog         string
	zoneSoaDateScheme   bool
	zonePrimaryServers  []string
	zoneXferProtocol    string
	zoneTsigKeyName     string
	zoneValidate        bool
	zoneInitForwarder   bool
	zoneProtocol        string
	zoneForwarder       string
	zoneDnssecValidate  bool
	zoneDisabled        bool
)

var zoneCmd = &cobra.Command{
	Use:   "zone <name>",
	Short: "Converge an authoritative zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		z := &resources.Zone{
			Zone:                       args[0],
			Type:                       zoneType,
			Catalog:                    zoneCatalog,
			UseSoaSerialDateScheme:     zoneSoaDateScheme,
			PrimaryNameServerAddresses: zonePrimaryServers,
			ZoneTransferProtocol:       zoneXferProtocol,
			TsigKeyName:                zoneTsigKeyName,
			ValidateZone:               zoneValidate,
			InitializeForwarder:        zoneInitForwarder,
			Protocol:                   zoneProtocol,
			Forwarder:                  zoneForwarder,
			DnssecValidation:           zoneDnssecValidate,
		}
		// Only an explicit --disabled/--disabled=false declares the
		// enabled state; omitting the flag leaves it unmanaged.
		if cmd.Flags().Changed("disabled") {
			z.Disabled = &zoneDisabled
		}
		return runReconcile(cmd, z)
	},
}

func init() {
	addStateFlag(zoneCmd)
	f := zoneCmd.Flags()
	f.StringVar(&zoneType, "type", "Primary", "zone type (Primary, Secondary, Stub, Forwarder, ...)")
	f.StringVar(&zoneCatalog, "catalog", "", "catalog zone to register in")
	f.BoolVar(&zoneSoaDateScheme, "use-soa-serial-date-scheme", false, "use date scheme for the SOA serial")
	f.StringSliceVar(&zonePrimaryServers, "primary-name-server-addresses", nil, "primary name server addresses (Secondary/Stub)")
	f.StringVar(&zoneXferProtocol, "zone-transfer-protocol", "", "zone transfer protocol (Tcp, Tls, Quic)")
	f.StringVar(&zoneTsigKeyName, "tsig-key-name", "", "TSIG key name for zone transfer")
	f.BoolVar(&zoneValidate, "validate-zone", false, "validate the zone after transfer (Secondary)")
	f.BoolVar(&zoneInitForwarder, "init-forwarder", false, "initialize with a forwarder record (Forwarder)")
	f.StringVar(&zoneProtocol, "protocol", "", "forwarder protocol (Udp, Tcp, Tls, Https, Quic)")
	f.StringVar(&zoneForwarder, "forwarder", "", "forwarder address (Forwarder)")
	f.BoolVar(&zoneDnssecValidate, "dnssec-validation", false, "enable DNSSEC validation (Forwarder)")
	f.BoolVar(&zoneDisabled, "disabled", false, "declare the zone disabled")
	rootCmd.AddCommand(zoneCmd)
}
