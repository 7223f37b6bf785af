package vortex

import (
	"bytes"
	"encoding/json"
	"time"
)

// TargetType is the delivery channel of an invitation target.
type TargetType string

const (
	TargetTypeEmail    TargetType = "email"
	TargetTypePhone    TargetType = "phone"
	TargetTypeShare    TargetType = "share"
	TargetTypeInternal TargetType = "internal"
)

// InvitationStatus is the lifecycle state reported by the service.
type InvitationStatus string

const (
	StatusQueued            InvitationStatus = "queued"
	StatusSending           InvitationStatus = "sending"
	StatusSent              InvitationStatus = "sent"
	StatusDelivered         InvitationStatus = "delivered"
	StatusAccepted          InvitationStatus = "accepted"
	StatusShared            InvitationStatus = "shared"
	StatusUnfurled          InvitationStatus = "unfurled"
	StatusAcceptedElsewhere InvitationStatus = "accepted_elsewhere"
)

// InvitationType distinguishes one-off, reusable and autojoin invitations.
type InvitationType string

const (
	InvitationTypeSingleUse InvitationType = "single_use"
	InvitationTypeMultiUse  InvitationType = "multi_use"
	InvitationTypeAutojoin  InvitationType = "autojoin"
)

// InvitationTarget is where an invitation is delivered.
type InvitationTarget struct {
	Type      TargetType `json:"type"`
	Value     string     `json:"value"`
	Name      string     `json:"name,omitempty"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
}

// InvitationGroup is a group embedded in an invitation read.
// ID is the service's record id; GroupID is the caller's own identifier.
type InvitationGroup struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	GroupID   string    `json:"groupId"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// InvitationAcceptance records one acceptance of an invitation.
type InvitationAcceptance struct {
	ID         string           `json:"id"`
	AccountID  string           `json:"accountId"`
	ProjectID  string           `json:"projectId"`
	AcceptedAt time.Time        `json:"acceptedAt"`
	Target     InvitationTarget `json:"target"`
}

// Invitation is a snapshot of a service-owned invitation record.
type Invitation struct {
	ID                      string                 `json:"id"`
	AccountID               string                 `json:"accountId"`
	ClickThroughs           int                    `json:"clickThroughs"`
	ConfigurationAttributes map[string]any         `json:"configurationAttributes,omitempty"`
	Attributes              map[string]any         `json:"attributes,omitempty"`
	CreatedAt               time.Time              `json:"createdAt"`
	Deactivated             bool                   `json:"deactivated"`
	DeliveryCount           int                    `json:"deliveryCount"`
	DeliveryTypes           []string               `json:"deliveryTypes,omitempty"`
	ForeignCreatorID        string                 `json:"foreignCreatorId"`
	InvitationType          InvitationType         `json:"invitationType"`
	ModifiedAt              *time.Time             `json:"modifiedAt,omitempty"`
	Status                  InvitationStatus       `json:"status"`
	Target                  InvitationTargets      `json:"target"`
	Views                   int                    `json:"views"`
	WidgetConfigurationID   string                 `json:"widgetConfigurationId"`
	ProjectID               string                 `json:"projectId"`
	Groups                  []InvitationGroup      `json:"groups"`
	Accepts                 []InvitationAcceptance `json:"accepts"`
	Expired                 bool                   `json:"expired"`
	Expires                 *time.Time             `json:"expires,omitempty"`
	Source                  string                 `json:"source,omitempty"`
	CreatorName             string                 `json:"creatorName,omitempty"`
	CreatorAvatarURL        string                 `json:"creatorAvatarUrl,omitempty"`
	Metadata                map[string]any         `json:"metadata,omitempty"`
}

// InvitationTargets decodes both the current array form and the legacy
// single-object form of "target".
type InvitationTargets []InvitationTarget

func (t *InvitationTargets) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*t = nil
		return nil
	case data[0] == '{':
		var single InvitationTarget
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*t = InvitationTargets{single}
		return nil
	}

	var many []InvitationTarget
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = many
	return nil
}

// invitationList decodes {"invitations":[...]} and a bare array alike.
type invitationList []Invitation

func (l *invitationList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []Invitation
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var wrapped struct {
		Invitations []Invitation `json:"invitations"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Invitations
	return nil
}

// AutojoinDomain is one email domain allowed to autojoin a scope.
type AutojoinDomain struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
}

// AutojoinDomains is the autojoin configuration of a scope. Invitation is
// nil when the scope has no active autojoin invitation.
type AutojoinDomains struct {
	AutojoinDomains []AutojoinDomain `json:"autojoinDomains"`
	Invitation      *Invitation      `json:"invitation"`
}

// ConfigureAutojoinRequest replaces the autojoin domain list of a scope.
type ConfigureAutojoinRequest struct {
	Scope     string         `json:"scope"`
	ScopeType string         `json:"scopeType"`
	ScopeName string         `json:"scopeName,omitempty"`
	Domains   []string       `json:"domains"`
	WidgetID  string         `json:"widgetId"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Inviter identifies the user sending an invitation.
type Inviter struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// CreateInvitationTarget is the recipient of a new invitation.
type CreateInvitationTarget struct {
	Type  TargetType `json:"type"`
	Value string     `json:"value"`
}

// CreateInvitationGroup associates a new invitation with a caller group.
type CreateInvitationGroup struct {
	Type    string `json:"type"`
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
}

// UnfurlConfig controls the social preview of the invitation link.
type UnfurlConfig struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Type        string `json:"type,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

// CreateInvitationRequest is the body of a create call.
type CreateInvitationRequest struct {
	WidgetConfigurationID string                  `json:"widgetConfigurationId"`
	Target                CreateInvitationTarget  `json:"target"`
	Inviter               Inviter                 `json:"inviter"`
	Groups                []CreateInvitationGroup `json:"groups,omitempty"`
	Source                string                  `json:"source,omitempty"`
	TemplateVariables     map[string]string       `json:"templateVariables,omitempty"`
	Metadata              map[string]any          `json:"metadata,omitempty"`
	UnfurlConfig          *UnfurlConfig           `json:"unfurlConfig,omitempty"`
}

// CreateInvitationResponse is returned by a create call.
type CreateInvitationResponse struct {
	ID        string           `json:"id"`
	ShortLink string           `json:"shortLink"`
	Status    InvitationStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}
