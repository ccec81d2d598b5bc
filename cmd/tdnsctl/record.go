package main

import (
	"technitium_sync/internal/resources"

	"github.com/spf13/cobra"
)

var (
	recordZone       string
	recordType       string
	recordTTL        int
	recordIPAddress  string
	recordCName      string
	recordExchange   string
	recordPreference int
	recordText       string
	recordNameServer string
)

var recordCmd = &cobra.Command{
	Use:   "record <domain>",
	Short: "Converge a resource record",
	Long: `Converge one resource record identified by domain, type and record
data. Divergence is detected on the TTL; record data itself is part of
the identity, so changed data means a different record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, &resources.Record{
			Domain:     args[0],
			Zone:       recordZone,
			Type:       recordType,
			TTL:        recordTTL,
			IPAddress:  recordIPAddress,
			CName:      recordCName,
			Exchange:   recordExchange,
			Preference: recordPreference,
			Text:       recordText,
			NameServer: recordNameServer,
		})
	},
}

func init() {
	addStateFlag(recordCmd)
	f := recordCmd.Flags()
	f.StringVar(&recordZone, "zone", "", "authoritative zone (derived from domain when omitted)")
	f.StringVar(&recordType, "type", "", "record type (A, AAAA, CNAME, MX, TXT, NS)")
	f.IntVar(&recordTTL, "ttl", 3600, "record TTL in seconds")
	f.StringVar(&recordIPAddress, "ip-address", "", "address for A/AAAA records")
	f.StringVar(&recordCName, "cname", "", "target for CNAME records")
	f.StringVar(&recordExchange, "exchange", "", "mail server for MX records")
	f.IntVar(&recordPreference, "preference", 0, "preference for MX records")
	f.StringVar(&recordText, "text", "", "text for TXT records")
	f.StringVar(&recordNameServer, "name-server", "", "name server for NS records")
	recordCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(recordCmd)
}
