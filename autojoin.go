package vortex

import (
	"context"
	"fmt"
	"net/http"
)

// GetAutojoinDomains returns the autojoin configuration of a scope
// (for example scopeType "organization", scope "org-123").
func (c *Client) GetAutojoinDomains(ctx context.Context, scopeType, scope string) (*AutojoinDomains, error) {
	if scopeType == "" || scope == "" {
		return nil, fmt.Errorf("%w: scope type and scope", ErrMissingArgument)
	}

	path := invitationsPath + escapePath("by-scope", scopeType, scope, "autojoin")
	out, err := call[AutojoinDomains](ctx, c, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfigureAutojoin replaces the autojoin domains of a scope.
//
// The call has full-sync semantics enforced by the service: domains in
// req.Domains are added, domains missing from it are removed, and an empty
// list deactivates the scope's autojoin invitation. The client sends the list
// as given and does not diff it.
func (c *Client) ConfigureAutojoin(ctx context.Context, req ConfigureAutojoinRequest) (*AutojoinDomains, error) {
	if req.Scope == "" || req.ScopeType == "" {
		return nil, fmt.Errorf("%w: scope type and scope", ErrMissingArgument)
	}
	if req.WidgetID == "" {
		return nil, fmt.Errorf("%w: widget id", ErrMissingArgument)
	}
	if req.Domains == nil {
		req.Domains = []string{}
	}

	out, err := call[AutojoinDomains](ctx, c, http.MethodPost, invitationsPath+"/autojoin", nil, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
