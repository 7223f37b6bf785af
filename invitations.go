package vortex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/vortex/pkg/logger"
)

const invitationsPath = "/api/v1/invitations"

// GetInvitationsByTarget lists invitations delivered to a target,
// e.g. ("email", "jane@example.com").
func (c *Client) GetInvitationsByTarget(ctx context.Context, targetType TargetType, targetValue string) ([]Invitation, error) {
	if targetType == "" || targetValue == "" {
		return nil, fmt.Errorf("%w: target type and value", ErrMissingArgument)
	}

	query := url.Values{}
	query.Set("targetType", string(targetType))
	query.Set("targetValue", targetValue)

	list, err := call[invitationList](ctx, c, http.MethodGet, invitationsPath, query, nil)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetInvitation fetches a single invitation.
func (c *Client) GetInvitation(ctx context.Context, invitationID string) (*Invitation, error) {
	if invitationID == "" {
		return nil, fmt.Errorf("%w: invitation id", ErrMissingArgument)
	}

	inv, err := call[Invitation](ctx, c, http.MethodGet, invitationsPath+escapePath(invitationID), nil, nil)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// RevokeInvitation deletes an invitation. The service answers with no body.
func (c *Client) RevokeInvitation(ctx context.Context, invitationID string) error {
	if invitationID == "" {
		return fmt.Errorf("%w: invitation id", ErrMissingArgument)
	}

	if _, err := call[struct{}](ctx, c, http.MethodDelete, invitationsPath+escapePath(invitationID), nil, nil); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "invitation revoked", logger.InvitationID(invitationID))
	return nil
}

// Reinvite re-sends an invitation to its targets.
func (c *Client) Reinvite(ctx context.Context, invitationID string) (*Invitation, error) {
	if invitationID == "" {
		return nil, fmt.Errorf("%w: invitation id", ErrMissingArgument)
	}

	inv, err := call[Invitation](ctx, c, http.MethodPost, invitationsPath+escapePath(invitationID, "reinvite"), nil, nil)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetInvitationsByGroup lists invitations associated with a caller group.
func (c *Client) GetInvitationsByGroup(ctx context.Context, groupType, groupID string) ([]Invitation, error) {
	path, err := byGroupPath(groupType, groupID)
	if err != nil {
		return nil, err
	}

	list, err := call[invitationList](ctx, c, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteInvitationsByGroup removes every invitation associated with a caller
// group, e.g. when the group itself is deleted.
func (c *Client) DeleteInvitationsByGroup(ctx context.Context, groupType, groupID string) error {
	path, err := byGroupPath(groupType, groupID)
	if err != nil {
		return err
	}

	_, err = call[struct{}](ctx, c, http.MethodDelete, path, nil, nil)
	return err
}

// CreateInvitation creates and sends an invitation.
func (c *Client) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (*CreateInvitationResponse, error) {
	if err := validateCreateInvitation(req); err != nil {
		return nil, err
	}

	resp, err := call[CreateInvitationResponse](ctx, c, http.MethodPost, invitationsPath, nil, req)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "invitation created", logger.InvitationID(resp.ID))
	return &resp, nil
}

func validateCreateInvitation(req CreateInvitationRequest) error {
	if req.WidgetConfigurationID == "" {
		return fmt.Errorf("%w: widget configuration id", ErrMissingArgument)
	}
	switch req.Target.Type {
	case TargetTypeEmail, TargetTypePhone, TargetTypeInternal:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedTargetType, req.Target.Type)
	}
	if req.Target.Value == "" {
		return fmt.Errorf("%w: target value", ErrMissingArgument)
	}
	if req.Inviter.UserID == "" {
		return fmt.Errorf("%w: inviter user id", ErrMissingArgument)
	}
	for _, g := range req.Groups {
		if g.Type == "" || g.GroupID == "" {
			return fmt.Errorf("%w: group type and id are required", ErrInvalidRequest)
		}
	}
	return nil
}

func byGroupPath(groupType, groupID string) (string, error) {
	if groupType == "" || groupID == "" {
		return "", fmt.Errorf("%w: group type and id", ErrMissingArgument)
	}
	return invitationsPath + escapePath("by-group", groupType, groupID), nil
}
