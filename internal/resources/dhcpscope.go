package resources

import (
	"context"
	"net/url"
	"strconv"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// DhcpScope declares a DHCP scope. StartingAddress, EndingAddress and
// SubnetMask are required when the scope has to be created; the set
// endpoint both creates and updates.
type DhcpScope struct {
	Scope string

	StartingAddress string
	EndingAddress   string
	SubnetMask      string
	RouterAddress   string
	DomainName      string
	LeaseTimeDays   int
}

func (s *DhcpScope) Kind() string { return "DHCP scope" }
func (s *DhcpScope) Name() string { return s.Scope }

func (s *DhcpScope) Probe(ctx context.Context, c *technitium.Client) (reconcile.State, error) {
	params := url.Values{}
	params.Set("name", s.Scope)

	env, err := c.Request(ctx, "/api/dhcp/scopes/get", params, "GET")
	if err != nil {
		return reconcile.Absent, err
	}
	if !env.OK() {
		// The get endpoint errors for unknown scopes; there is no
		// stable message to match, so any API-level error counts as
		// absent.
		return reconcile.Absent, nil
	}

	var attrs map[string]any
	if err := env.DecodeResponse(&attrs); err != nil {
		return reconcile.Absent, err
	}
	return reconcile.Present(attrs), nil
}

func (s *DhcpScope) Diverged(current reconcile.State) bool {
	for field, want := range s.desiredFields() {
		got, _ := current.Attrs[field].(string)
		if want != "" && got != want {
			return true
		}
	}
	if s.LeaseTimeDays > 0 {
		days, _ := current.Attrs["leaseTimeDays"].(float64)
		if int(days) != s.LeaseTimeDays {
			return true
		}
	}
	return false
}

func (s *DhcpScope) desiredFields() map[string]string {
	return map[string]string{
		"startingAddress": s.StartingAddress,
		"endingAddress":   s.EndingAddress,
		"subnetMask":      s.SubnetMask,
		"routerAddress":   s.RouterAddress,
		"domainName":      s.DomainName,
	}
}

// set issues the scope set call, which creates the scope when it does
// not exist and reconfigures it when it does.
func (s *DhcpScope) set(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("name", s.Scope)
	for field, value := range s.desiredFields() {
		if value != "" {
			params.Set(field, value)
		}
	}
	if s.LeaseTimeDays > 0 {
		params.Set("leaseTimeDays", strconv.Itoa(s.LeaseTimeDays))
	}
	return c.Call(ctx, "/api/dhcp/scopes/set", params, "POST", "configuring DHCP scope '"+s.Scope+"'")
}

func (s *DhcpScope) Create(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	return s.set(ctx, c)
}

func (s *DhcpScope) Update(ctx context.Context, c *technitium.Client, current reconcile.State) (*technitium.Envelope, error) {
	return s.set(ctx, c)
}

func (s *DhcpScope) Delete(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("name", s.Scope)
	return c.Call(ctx, "/api/dhcp/scopes/delete", params, "POST", "deleting DHCP scope '"+s.Scope+"'")
}

func (s *DhcpScope) Protected() bool { return false }
