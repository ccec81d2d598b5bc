package resources

import (
	"context"
	"fmt"
	"net/url"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// FilterList selects which of the server's filtering lists a
// FilterDomain belongs to.
type FilterList string

const (
	AllowedList FilterList = "allowed"
	BlockedList FilterList = "blocked"
)

// FilterDomain declares a domain on the server's allowed or blocked
// list. Entries have no attributes beyond membership, so an existing
// entry never diverges.
type FilterDomain struct {
	Domain string
	List   FilterList
}

func (f *FilterDomain) Kind() string {
	if f.List == BlockedList {
		return "Blocked domain"
	}
	return "Allowed domain"
}

func (f *FilterDomain) Name() string { return f.Domain }

func (f *FilterDomain) Probe(ctx context.Context, c *technitium.Client) (reconcile.State, error) {
	params := url.Values{}
	params.Set("domain", f.Domain)

	env, err := c.Call(ctx, "/api/"+string(f.List)+"/list", params, "GET",
		fmt.Sprintf("checking %s list", f.List))
	if err != nil {
		return reconcile.Absent, err
	}

	var payload struct {
		Zones   []string         `json:"zones"`
		Records []map[string]any `json:"records"`
	}
	if err := env.DecodeResponse(&payload); err != nil {
		return reconcile.Absent, err
	}

	for _, zone := range payload.Zones {
		if zone == f.Domain {
			return reconcile.Present(map[string]any{"domain": f.Domain}), nil
		}
	}
	for _, record := range payload.Records {
		if record["name"] == f.Domain {
			return reconcile.Present(record), nil
		}
	}
	return reconcile.Absent, nil
}

func (f *FilterDomain) Diverged(current reconcile.State) bool { return false }

func (f *FilterDomain) Create(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("domain", f.Domain)
	return c.Call(ctx, "/api/"+string(f.List)+"/add", params, "POST",
		fmt.Sprintf("adding '%s' to %s list", f.Domain, f.List))
}

func (f *FilterDomain) Update(ctx context.Context, c *technitium.Client, current reconcile.State) (*technitium.Envelope, error) {
	// Membership has no updatable attributes.
	return nil, fmt.Errorf("%s list entries cannot be updated", f.List)
}

func (f *FilterDomain) Delete(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("domain", f.Domain)
	return c.Call(ctx, "/api/"+string(f.List)+"/delete", params, "POST",
		fmt.Sprintf("deleting '%s' from %s list", f.Domain, f.List))
}

func (f *FilterDomain) Protected() bool { return false }
