package resources

import (
	"context"
	"net/url"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// Cache operations are imperative: flushing or evicting always counts
// as a change. Check mode reports the change without issuing the call.

// FlushCache clears the server's entire resolver cache.
func FlushCache(ctx context.Context, c *technitium.Client, checkMode bool) (reconcile.Outcome, error) {
	out := reconcile.Outcome{
		Changed:   true,
		Kind:      "Cache",
		Name:      "*",
		Action:    reconcile.ActionDelete,
		CheckMode: checkMode,
	}
	if checkMode {
		out.Msg = "DNS cache would be flushed (check mode)."
		return out, nil
	}

	env, err := c.Call(ctx, "/api/cache/flush", nil, "GET", "flushing cache")
	if err != nil {
		return reconcile.Outcome{Failed: true, Msg: err.Error(), Kind: "Cache", Name: "*"}, err
	}
	out.Msg = "DNS cache flushed."
	out.APIResponse = env.Sanitized()
	return out, nil
}

// DeleteCachedZone evicts one cached zone and its records.
func DeleteCachedZone(ctx context.Context, c *technitium.Client, domain string, checkMode bool) (reconcile.Outcome, error) {
	out := reconcile.Outcome{
		Changed:   true,
		Kind:      "Cached zone",
		Name:      domain,
		Action:    reconcile.ActionDelete,
		CheckMode: checkMode,
	}
	if checkMode {
		out.Msg = "Cached zone '" + domain + "' would be deleted (check mode)."
		return out, nil
	}

	params := url.Values{}
	params.Set("domain", domain)
	env, err := c.Call(ctx, "/api/cache/delete", params, "GET", "deleting cached zone '"+domain+"'")
	if err != nil {
		return reconcile.Outcome{Failed: true, Msg: err.Error(), Kind: "Cached zone", Name: domain}, err
	}
	out.Msg = "Cached zone '" + domain + "' deleted."
	out.APIResponse = env.Sanitized()
	return out, nil
}
