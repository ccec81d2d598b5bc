package resources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// Record declares a single DNS record. The rdata fields form a closed
// union: exactly one group applies depending on Type.
type Record struct {
	// Domain is the record's fully qualified name.
	Domain string
	// Zone optionally names the authoritative zone when it differs
	// from what the server would derive from Domain.
	Zone string
	Type string
	TTL  int

	// A / AAAA
	IPAddress string
	// CNAME
	CName string
	// MX
	Exchange   string
	Preference int
	// TXT
	Text string
	// NS
	NameServer string
}

func (r *Record) Kind() string { return "Record" }

func (r *Record) Name() string {
	return fmt.Sprintf("%s %s", r.Domain, strings.ToUpper(r.Type))
}

// rdata returns the identifying rdata parameters for this record type.
func (r *Record) rdata() (url.Values, error) {
	params := url.Values{}
	switch strings.ToUpper(r.Type) {
	case "A", "AAAA":
		params.Set("ipAddress", r.IPAddress)
	case "CNAME":
		params.Set("cname", r.CName)
	case "MX":
		params.Set("exchange", r.Exchange)
		params.Set("preference", strconv.Itoa(r.Preference))
	case "TXT":
		params.Set("text", r.Text)
	case "NS":
		params.Set("nameServer", r.NameServer)
	default:
		return nil, fmt.Errorf("unsupported record type %q", r.Type)
	}
	return params, nil
}

// matches reports whether a server-side record entry is this record:
// same type and same identifying rdata.
func (r *Record) matches(entry map[string]any) bool {
	entryType, _ := entry["type"].(string)
	if !strings.EqualFold(entryType, r.Type) {
		return false
	}
	rdata, _ := entry["rData"].(map[string]any)
	if rdata == nil {
		return false
	}
	switch strings.ToUpper(r.Type) {
	case "A", "AAAA":
		return rdata["ipAddress"] == r.IPAddress
	case "CNAME":
		return rdata["cname"] == r.CName
	case "MX":
		pref, _ := rdata["preference"].(float64)
		return rdata["exchange"] == r.Exchange && int(pref) == r.Preference
	case "TXT":
		return rdata["text"] == r.Text
	case "NS":
		return rdata["nameServer"] == r.NameServer
	}
	return false
}

func (r *Record) Probe(ctx context.Context, c *technitium.Client) (reconcile.State, error) {
	params := url.Values{}
	params.Set("domain", r.Domain)
	if r.Zone != "" {
		params.Set("zone", r.Zone)
	}

	env, err := c.Request(ctx, "/api/zones/records/get", params, "GET")
	if err != nil {
		return reconcile.Absent, err
	}
	if !env.OK() {
		// A record in a zone the server does not have is absent.
		if strings.Contains(env.ErrMsg(), zoneMissingMarker) {
			return reconcile.Absent, nil
		}
		return reconcile.Absent, technitium.NewRemoteError("checking record", env)
	}

	var payload struct {
		Records []map[string]any `json:"records"`
	}
	if err := env.DecodeResponse(&payload); err != nil {
		return reconcile.Absent, err
	}

	for _, entry := range payload.Records {
		if r.matches(entry) {
			return reconcile.Present(entry), nil
		}
	}
	return reconcile.Absent, nil
}

func (r *Record) Diverged(current reconcile.State) bool {
	if r.TTL <= 0 {
		return false
	}
	ttl, ok := current.Attrs["ttl"].(float64)
	return ok && int(ttl) != r.TTL
}

func (r *Record) Create(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params, err := r.rdata()
	if err != nil {
		return nil, err
	}
	params.Set("domain", r.Domain)
	params.Set("type", strings.ToUpper(r.Type))
	if r.Zone != "" {
		params.Set("zone", r.Zone)
	}
	if r.TTL > 0 {
		params.Set("ttl", strconv.Itoa(r.TTL))
	}
	return c.Call(ctx, "/api/zones/records/add", params, "POST", "adding record '"+r.Name()+"'")
}

func (r *Record) Update(ctx context.Context, c *technitium.Client, current reconcile.State) (*technitium.Envelope, error) {
	params, err := r.rdata()
	if err != nil {
		return nil, err
	}
	params.Set("domain", r.Domain)
	params.Set("type", strings.ToUpper(r.Type))
	if r.Zone != "" {
		params.Set("zone", r.Zone)
	}
	if r.TTL > 0 {
		params.Set("ttl", strconv.Itoa(r.TTL))
	}
	return c.Call(ctx, "/api/zones/records/update", params, "POST", "updating record '"+r.Name()+"'")
}

func (r *Record) Delete(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params, err := r.rdata()
	if err != nil {
		return nil, err
	}
	params.Set("domain", r.Domain)
	params.Set("type", strings.ToUpper(r.Type))
	if r.Zone != "" {
		params.Set("zone", r.Zone)
	}
	return c.Call(ctx, "/api/zones/records/delete", params, "POST", "deleting record '"+r.Name()+"'")
}

func (r *Record) Protected() bool { return false }
