// Package resources implements the closed set of Technitium resource
// kinds the reconcile engine can manage. Each kind holds its desired
// attributes and knows the API endpoints for probing and mutating it.
package resources

import (
	"context"
	"net/url"
	"strings"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// zoneMissingMarker is the error-message substring the API reports for
// a zone it does not have. There is no structured error code, so the
// wording is matched as-is; it is version-coupled to the server.
const zoneMissingMarker = "No such zone was found"

// Zone declares a DNS zone. Type is required when ensuring presence;
// the remaining fields apply to specific zone types and are passed
// through to the create call.
type Zone struct {
	Zone string
	Type string

	Catalog                    string
	UseSoaSerialDateScheme     bool
	PrimaryNameServerAddresses []string
	ZoneTransferProtocol       string
	TsigKeyName                string
	ValidateZone               bool
	InitializeForwarder        bool
	Protocol                   string
	Forwarder                  string
	DnssecValidation           bool

	// Disabled, when set, declares whether the zone should be
	// disabled; divergence is converged via the enable/disable calls.
	Disabled *bool
}

func (z *Zone) Kind() string { return "Zone" }
func (z *Zone) Name() string { return z.Zone }

func (z *Zone) Probe(ctx context.Context, c *technitium.Client) (reconcile.State, error) {
	params := url.Values{}
	params.Set("zone", z.Zone)

	env, err := c.Request(ctx, "/api/zones/options/get", params, "GET")
	if err != nil {
		return reconcile.Absent, err
	}
	if env.OK() {
		var attrs map[string]any
		if err := env.DecodeResponse(&attrs); err != nil {
			return reconcile.Absent, err
		}
		return reconcile.Present(attrs), nil
	}
	if strings.Contains(env.ErrMsg(), zoneMissingMarker) {
		return reconcile.Absent, nil
	}
	return reconcile.Absent, technitium.NewRemoteError("checking zone", env)
}

func (z *Zone) Diverged(current reconcile.State) bool {
	if z.Disabled == nil {
		return false
	}
	disabled, _ := current.Attrs["disabled"].(bool)
	return disabled != *z.Disabled
}

func (z *Zone) Create(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("zone", z.Zone)
	params.Set("type", z.Type)
	if z.Catalog != "" {
		params.Set("catalog", z.Catalog)
	}
	if z.UseSoaSerialDateScheme {
		params.Set("useSoaSerialDateScheme", "true")
	}
	if len(z.PrimaryNameServerAddresses) > 0 {
		params.Set("primaryNameServerAddresses", strings.Join(z.PrimaryNameServerAddresses, ","))
	}
	if z.ZoneTransferProtocol != "" {
		params.Set("zoneTransferProtocol", z.ZoneTransferProtocol)
	}
	if z.TsigKeyName != "" {
		params.Set("tsigKeyName", z.TsigKeyName)
	}
	if z.ValidateZone {
		params.Set("validateZone", "true")
	}
	if z.InitializeForwarder {
		params.Set("initializeForwarder", "true")
	}
	if z.Protocol != "" {
		params.Set("protocol", z.Protocol)
	}
	if z.Forwarder != "" {
		params.Set("forwarder", z.Forwarder)
	}
	if z.DnssecValidation {
		params.Set("dnssecValidation", "true")
	}

	return c.Call(ctx, "/api/zones/create", params, "POST", "creating zone '"+z.Zone+"'")
}

func (z *Zone) Update(ctx context.Context, c *technitium.Client, current reconcile.State) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("zone", z.Zone)

	path := "/api/zones/enable"
	verb := "enabling"
	if z.Disabled != nil && *z.Disabled {
		path = "/api/zones/disable"
		verb = "disabling"
	}
	return c.Call(ctx, path, params, "POST", verb+" zone '"+z.Zone+"'")
}

func (z *Zone) Delete(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("zone", z.Zone)
	return c.Call(ctx, "/api/zones/delete", params, "POST", "deleting zone '"+z.Zone+"'")
}

func (z *Zone) Protected() bool { return false }
