// Package inventory loads a declarative manifest of Technitium
// resources from YAML and applies it sequentially against one server.
package inventory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/resources"
)

// Entry is one declared resource in the manifest. Kind selects which
// of the field groups applies; State defaults to present.
type Entry struct {
	Kind  string `yaml:"kind" json:"kind"`
	State string `yaml:"state" json:"state"`

	// zone
	Zone                       string   `yaml:"zone,omitempty" json:"zone,omitempty"`
	Type                       string   `yaml:"type,omitempty" json:"type,omitempty"`
	Catalog                    string   `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	UseSoaSerialDateScheme     bool     `yaml:"useSoaSerialDateScheme,omitempty" json:"useSoaSerialDateScheme,omitempty"`
	PrimaryNameServerAddresses []string `yaml:"primaryNameServerAddresses,omitempty" json:"primaryNameServerAddresses,omitempty"`
	ZoneTransferProtocol       string   `yaml:"zoneTransferProtocol,omitempty" json:"zoneTransferProtocol,omitempty"`
	TsigKeyName                string   `yaml:"tsigKeyName,omitempty" json:"tsigKeyName,omitempty"`
	Forwarder                  string   `yaml:"forwarder,omitempty" json:"forwarder,omitempty"`
	Protocol                   string   `yaml:"protocol,omitempty" json:"protocol,omitempty"`
	Disabled                   *bool    `yaml:"disabled,omitempty" json:"disabled,omitempty"`

	// record
	Domain     string `yaml:"domain,omitempty" json:"domain,omitempty"`
	TTL        int    `yaml:"ttl,omitempty" json:"ttl,omitempty"`
	IPAddress  string `yaml:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	CName      string `yaml:"cname,omitempty" json:"cname,omitempty"`
	Exchange   string `yaml:"exchange,omitempty" json:"exchange,omitempty"`
	Preference int    `yaml:"preference,omitempty" json:"preference,omitempty"`
	Text       string `yaml:"text,omitempty" json:"text,omitempty"`
	NameServer string `yaml:"nameServer,omitempty" json:"nameServer,omitempty"`

	// user
	Username    string `yaml:"username,omitempty" json:"username,omitempty"`
	Password    string `yaml:"password,omitempty" json:"password,omitempty"`
	DisplayName string `yaml:"displayName,omitempty" json:"displayName,omitempty"`

	// group
	Group       string `yaml:"group,omitempty" json:"group,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// dhcp scope
	Scope           string `yaml:"scope,omitempty" json:"scope,omitempty"`
	StartingAddress string `yaml:"startingAddress,omitempty" json:"startingAddress,omitempty"`
	EndingAddress   string `yaml:"endingAddress,omitempty" json:"endingAddress,omitempty"`
	SubnetMask      string `yaml:"subnetMask,omitempty" json:"subnetMask,omitempty"`
	RouterAddress   string `yaml:"routerAddress,omitempty" json:"routerAddress,omitempty"`
	DomainName      string `yaml:"domainName,omitempty" json:"domainName,omitempty"`
	LeaseTimeDays   int    `yaml:"leaseTimeDays,omitempty" json:"leaseTimeDays,omitempty"`
}

// Manifest is the document a manifest file holds.
type Manifest struct {
	Profile   string  `yaml:"profile"`
	Resources []Entry `yaml:"resources"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// Item is one resolved manifest entry, ready to apply.
type Item struct {
	Resource reconcile.Resource
	Intent   reconcile.Intent
}

// Build resolves all entries into the closed resource union. It fails
// on the first entry with an unknown kind or missing identifier.
func (m *Manifest) Build() ([]Item, error) {
	items := make([]Item, 0, len(m.Resources))
	for i, e := range m.Resources {
		item, err := e.Item()
		if err != nil {
			return nil, fmt.Errorf("manifest entry %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Item resolves a single entry outside a manifest context.
func (e *Entry) Item() (Item, error) {
	res, err := e.resource()
	if err != nil {
		return Item{}, err
	}
	intent, err := e.intent()
	if err != nil {
		return Item{}, err
	}
	return Item{Resource: res, Intent: intent}, nil
}

func (e *Entry) intent() (reconcile.Intent, error) {
	switch e.State {
	case "", string(reconcile.IntentPresent):
		return reconcile.IntentPresent, nil
	case string(reconcile.IntentAbsent):
		return reconcile.IntentAbsent, nil
	}
	return "", fmt.Errorf("invalid state %q (want present or absent)", e.State)
}

func (e *Entry) resource() (reconcile.Resource, error) {
	switch strings.ToLower(e.Kind) {
	case "zone":
		if e.Zone == "" {
			return nil, fmt.Errorf("zone entry requires 'zone'")
		}
		return &resources.Zone{
			Zone:                       e.Zone,
			Type:                       e.Type,
			Catalog:                    e.Catalog,
			UseSoaSerialDateScheme:     e.UseSoaSerialDateScheme,
			PrimaryNameServerAddresses: e.PrimaryNameServerAddresses,
			ZoneTransferProtocol:       e.ZoneTransferProtocol,
			TsigKeyName:                e.TsigKeyName,
			Forwarder:                  e.Forwarder,
			Protocol:                   e.Protocol,
			Disabled:                   e.Disabled,
		}, nil
	case "record":
		if e.Domain == "" || e.Type == "" {
			return nil, fmt.Errorf("record entry requires 'domain' and 'type'")
		}
		return &resources.Record{
			Domain:     e.Domain,
			Zone:       e.Zone,
			Type:       e.Type,
			TTL:        e.TTL,
			IPAddress:  e.IPAddress,
			CName:      e.CName,
			Exchange:   e.Exchange,
			Preference: e.Preference,
			Text:       e.Text,
			NameServer: e.NameServer,
		}, nil
	case "user":
		if e.Username == "" {
			return nil, fmt.Errorf("user entry requires 'username'")
		}
		return &resources.User{
			Username:    e.Username,
			Password:    e.Password,
			DisplayName: e.DisplayName,
		}, nil
	case "group":
		if e.Group == "" {
			return nil, fmt.Errorf("group entry requires 'group'")
		}
		return &resources.Group{Group: e.Group, Description: e.Description}, nil
	case "allowed":
		if e.Domain == "" {
			return nil, fmt.Errorf("allowed entry requires 'domain'")
		}
		return &resources.FilterDomain{Domain: e.Domain, List: resources.AllowedList}, nil
	case "blocked":
		if e.Domain == "" {
			return nil, fmt.Errorf("blocked entry requires 'domain'")
		}
		return &resources.FilterDomain{Domain: e.Domain, List: resources.BlockedList}, nil
	case "dhcpscope", "dhcp_scope":
		if e.Scope == "" {
			return nil, fmt.Errorf("dhcp scope entry requires 'scope'")
		}
		return &resources.DhcpScope{
			Scope:           e.Scope,
			StartingAddress: e.StartingAddress,
			EndingAddress:   e.EndingAddress,
			SubnetMask:      e.SubnetMask,
			RouterAddress:   e.RouterAddress,
			DomainName:      e.DomainName,
			LeaseTimeDays:   e.LeaseTimeDays,
		}, nil
	}
	return nil, fmt.Errorf("unknown resource kind %q", e.Kind)
}
