package vortex

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Acceptor identifies who accepts invitations. It is implemented by
// AcceptUser and by the deprecated LegacyTarget and LegacyTargets shapes.
type Acceptor interface {
	acceptor()
}

// AcceptUser is the current accept shape. Email or Phone is required.
type AcceptUser struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Name  string `json:"name,omitempty"`
}

// LegacyTarget is the deprecated single-target accept shape.
//
// Deprecated: use AcceptUser.
type LegacyTarget struct {
	Type  TargetType
	Value string
}

// LegacyTargets is the deprecated multi-target accept shape. Each target is
// accepted with its own request, sequentially, and only the last result is
// returned.
//
// Deprecated: use AcceptUser.
type LegacyTargets []LegacyTarget

func (AcceptUser) acceptor()    {}
func (LegacyTarget) acceptor()  {}
func (LegacyTargets) acceptor() {}

type acceptRequest struct {
	InvitationIDs []string   `json:"invitationIds"`
	User          AcceptUser `json:"user"`
}

// AcceptInvitations marks invitations as accepted by a user.
//
// Deprecated shapes are normalized to AcceptUser before sending and each use
// is reported through the logger and the deprecation hook. A LegacyTargets
// value is checked as a whole before anything is sent, then issues one
// request per target in order, stops at the first failure, and returns the
// result of the last request.
func (c *Client) AcceptInvitations(ctx context.Context, invitationIDs []string, who Acceptor) (*Invitation, error) {
	switch v := who.(type) {
	case AcceptUser:
		return c.acceptInvitations(ctx, invitationIDs, v)

	case LegacyTarget:
		c.deprecated(DeprecationNotice{
			Operation: "accept_invitations",
			Shape:     "target",
			Message:   "accepting invitations with a target is deprecated, pass vortex.AcceptUser instead",
		})
		user, err := v.toUser()
		if err != nil {
			return nil, err
		}
		return c.acceptInvitations(ctx, invitationIDs, user)

	case LegacyTargets:
		c.deprecated(DeprecationNotice{
			Operation: "accept_invitations",
			Shape:     "targets",
			Message:   "accepting invitations with a list of targets is deprecated, pass vortex.AcceptUser instead",
		})
		if len(v) == 0 {
			return nil, ErrNoTargetsProvided
		}
		users := make([]AcceptUser, 0, len(v))
		for _, target := range v {
			user, err := target.toUser()
			if err != nil {
				return nil, err
			}
			users = append(users, user)
		}

		var last *Invitation
		for _, user := range users {
			var err error
			if last, err = c.acceptInvitations(ctx, invitationIDs, user); err != nil {
				return nil, err
			}
		}
		return last, nil

	case nil:
		return nil, ErrMissingIdentity

	default:
		return nil, fmt.Errorf("%w: unsupported acceptor %T", ErrInvalidRequest, who)
	}
}

// AcceptInvitation accepts a single invitation.
func (c *Client) AcceptInvitation(ctx context.Context, invitationID string, user AcceptUser) (*Invitation, error) {
	return c.AcceptInvitations(ctx, []string{invitationID}, user)
}

func (c *Client) acceptInvitations(ctx context.Context, invitationIDs []string, user AcceptUser) (*Invitation, error) {
	if len(invitationIDs) == 0 {
		return nil, fmt.Errorf("%w: invitation ids", ErrMissingArgument)
	}
	for _, id := range invitationIDs {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: empty invitation id", ErrMissingArgument)
		}
	}
	if user.Email == "" && user.Phone == "" {
		return nil, ErrMissingIdentity
	}

	inv, err := call[Invitation](ctx, c, http.MethodPost, invitationsPath+"/accept", nil, acceptRequest{
		InvitationIDs: invitationIDs,
		User:          user,
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (t LegacyTarget) toUser() (AcceptUser, error) {
	switch t.Type {
	case TargetTypeEmail:
		return AcceptUser{Email: t.Value}, nil
	case TargetTypePhone:
		return AcceptUser{Phone: t.Value}, nil
	default:
		return AcceptUser{}, fmt.Errorf("%w: %q", ErrUnsupportedTargetType, t.Type)
	}
}
