package resources

import (
	"context"
	"net/url"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// builtinGroups are the groups the server ships with; they cannot be
// deleted.
var builtinGroups = map[string]bool{
	"Administrators":      true,
	"DHCP Administrators": true,
	"DNS Administrators":  true,
}

// Group declares an administrative group.
type Group struct {
	Group       string
	Description string
}

func (g *Group) Kind() string { return "Group" }
func (g *Group) Name() string { return g.Group }

func (g *Group) Probe(ctx context.Context, c *technitium.Client) (reconcile.State, error) {
	env, err := c.Call(ctx, "/api/admin/groups/list", nil, "GET", "checking existing groups")
	if err != nil {
		return reconcile.Absent, err
	}

	var payload struct {
		Groups []map[string]any `json:"groups"`
	}
	if err := env.DecodeResponse(&payload); err != nil {
		return reconcile.Absent, err
	}

	for _, entry := range payload.Groups {
		if entry["name"] == g.Group {
			return reconcile.Present(entry), nil
		}
	}
	return reconcile.Absent, nil
}

func (g *Group) Diverged(current reconcile.State) bool {
	if g.Description == "" {
		return false
	}
	return current.Attrs["description"] != g.Description
}

func (g *Group) Create(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("group", g.Group)
	if g.Description != "" {
		params.Set("description", g.Description)
	}
	return c.Call(ctx, "/api/admin/groups/create", params, "POST", "creating group '"+g.Group+"'")
}

func (g *Group) Update(ctx context.Context, c *technitium.Client, current reconcile.State) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("group", g.Group)
	params.Set("newGroup", g.Group)
	params.Set("description", g.Description)
	return c.Call(ctx, "/api/admin/groups/set", params, "POST", "updating group '"+g.Group+"'")
}

func (g *Group) Delete(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("group", g.Group)
	return c.Call(ctx, "/api/admin/groups/delete", params, "POST", "deleting group '"+g.Group+"'")
}

func (g *Group) Protected() bool { return builtinGroups[g.Group] }
