package resources

import (
	"context"
	"net/url"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// builtinUser is the administrative account the server ships with; it
// cannot be deleted through this tool.
const builtinUser = "admin"

// User declares an administrative API user.
type User struct {
	Username    string
	Password    string
	DisplayName string
}

func (u *User) Kind() string { return "User" }
func (u *User) Name() string { return u.Username }

func (u *User) Probe(ctx context.Context, c *technitium.Client) (reconcile.State, error) {
	env, err := c.Call(ctx, "/api/admin/users/list", nil, "GET", "checking existing users")
	if err != nil {
		return reconcile.Absent, err
	}

	var payload struct {
		Users []map[string]any `json:"users"`
	}
	if err := env.DecodeResponse(&payload); err != nil {
		return reconcile.Absent, err
	}

	for _, entry := range payload.Users {
		if entry["username"] == u.Username {
			return reconcile.Present(entry), nil
		}
	}
	return reconcile.Absent, nil
}

func (u *User) Diverged(current reconcile.State) bool {
	if u.DisplayName == "" {
		return false
	}
	return current.Attrs["displayName"] != u.DisplayName
}

func (u *User) Create(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("user", u.Username)
	params.Set("pass", u.Password)
	if u.DisplayName != "" {
		params.Set("displayName", u.DisplayName)
	}
	return c.Call(ctx, "/api/admin/users/create", params, "POST", "creating user '"+u.Username+"'")
}

func (u *User) Update(ctx context.Context, c *technitium.Client, current reconcile.State) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("user", u.Username)
	params.Set("displayName", u.DisplayName)
	return c.Call(ctx, "/api/admin/users/set", params, "POST", "updating user '"+u.Username+"'")
}

func (u *User) Delete(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error) {
	params := url.Values{}
	params.Set("user", u.Username)
	return c.Call(ctx, "/api/admin/users/delete", params, "POST", "deleting user '"+u.Username+"'")
}

func (u *User) Protected() bool { return u.Username == builtinUser }
