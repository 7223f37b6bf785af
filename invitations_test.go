package vortex_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vortex"
)

const invitationJSON = `{
	"id": "inv_1",
	"accountId": "acc_1",
	"status": "delivered",
	"invitationType": "single_use",
	"createdAt": "2024-05-01T10:00:00Z",
	"target": [{"type": "email", "value": "jane@example.com"}],
	"groups": [{"id": "g_rec", "groupId": "team-1", "type": "team", "name": "Team 1", "createdAt": "2024-05-01T10:00:00Z"}],
	"accepts": []
}`

func TestClient_GetInvitationsByTarget(t *testing.T) {
	t.Parallel()

	t.Run("wrapped list", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"invitations":[`+invitationJSON+`]}`)
		})

		list, err := client.GetInvitationsByTarget(context.Background(), vortex.TargetTypeEmail, "jane+1@example.com")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "inv_1", list[0].ID)
		assert.Equal(t, vortex.StatusDelivered, list[0].Status)
		require.Len(t, list[0].Target, 1)
		assert.Equal(t, "jane@example.com", list[0].Target[0].Value)
		require.Len(t, list[0].Groups, 1)
		assert.Equal(t, "team-1", list[0].Groups[0].GroupID)

		all := requests.All()
		require.Len(t, all, 1)
		assert.Equal(t, http.MethodGet, all[0].Method)
		assert.Equal(t, "/api/v1/invitations", all[0].Path)
		assert.Equal(t, []string{"email"}, all[0].Query["targetType"])
		assert.Equal(t, []string{"jane+1@example.com"}, all[0].Query["targetValue"])
	})

	t.Run("bare array", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `[`+invitationJSON+`,`+invitationJSON+`]`)
		})

		list, err := client.GetInvitationsByTarget(context.Background(), vortex.TargetTypePhone, "+15550001111")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("missing arguments", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.GetInvitationsByTarget(context.Background(), "", "x")
		require.ErrorIs(t, err, vortex.ErrMissingArgument)
		_, err = client.GetInvitationsByTarget(context.Background(), vortex.TargetTypeEmail, "")
		require.ErrorIs(t, err, vortex.ErrMissingArgument)
		assert.Empty(t, requests.All())
	})
}

func TestClient_GetInvitation(t *testing.T) {
	t.Parallel()

	t.Run("decodes invitation", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, invitationJSON)
		})

		inv, err := client.GetInvitation(context.Background(), "inv_1")
		require.NoError(t, err)
		require.NotNil(t, inv)
		assert.Equal(t, "inv_1", inv.ID)
		assert.Equal(t, vortex.InvitationTypeSingleUse, inv.InvitationType)
		assert.Equal(t, "/api/v1/invitations/inv_1", requests.All()[0].Path)
	})

	t.Run("legacy single target object", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"inv_2","target":{"type":"phone","value":"+1555"}}`)
		})

		inv, err := client.GetInvitation(context.Background(), "inv_2")
		require.NoError(t, err)
		require.Len(t, inv.Target, 1)
		assert.Equal(t, vortex.TargetTypePhone, inv.Target[0].Type)
	})

	t.Run("path segment is escaped", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"a/b"}`)
		})

		_, err := client.GetInvitation(context.Background(), "a/b c")
		require.NoError(t, err)

		req := requests.All()[0]
		assert.Equal(t, "/api/v1/invitations/a/b c", req.Path)
		assert.Equal(t, "/api/v1/invitations/a%2Fb%20c", req.RawPath)
	})

	t.Run("not found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, `{"error":"not found"}`)
		})

		inv, err := client.GetInvitation(context.Background(), "missing")
		require.Error(t, err)
		assert.Nil(t, inv)
		assert.True(t, vortex.IsNotFound(err))
		assert.ErrorIs(t, err, vortex.ErrAPIRequestFailed)
	})

	t.Run("server error keeps raw body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("oops"))
		})

		_, err := client.GetInvitation(context.Background(), "inv_1")
		require.Error(t, err)
		assert.False(t, vortex.IsNotFound(err))

		var apiErr *vortex.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Internal Server Error", apiErr.Status)
		assert.Equal(t, "oops", apiErr.Body)
		assert.Equal(t, http.MethodGet, apiErr.Method)
		assert.Equal(t, "/api/v1/invitations/inv_1", apiErr.Path)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "oops")
	})

	t.Run("empty body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusOK)
		})

		inv, err := client.GetInvitation(context.Background(), "inv_1")
		require.NoError(t, err)
		require.NotNil(t, inv)
		assert.Empty(t, inv.ID)
	})

	t.Run("chunked json media types", func(t *testing.T) {
		for _, contentType := range []string{
			"application/json; charset=utf-8",
			"application/problem+json",
			"application/vnd.api+json",
			"text/json",
		} {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", contentType)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"id":`))
				w.(http.Flusher).Flush()
				_, _ = w.Write([]byte(`"inv_1"}`))
			})

			inv, err := client.GetInvitation(context.Background(), "inv_1")
			require.NoError(t, err, contentType)
			assert.Equal(t, "inv_1", inv.ID, contentType)
		}
	})

	t.Run("chunked non-json body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":`))
			w.(http.Flusher).Flush()
			_, _ = w.Write([]byte(`"inv_1"}`))
		})

		inv, err := client.GetInvitation(context.Background(), "inv_1")
		require.NoError(t, err)
		assert.Empty(t, inv.ID)
	})

	t.Run("error body is capped", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write(bytes.Repeat([]byte("x"), 2<<20))
		})

		_, err := client.GetInvitation(context.Background(), "inv_1")
		var apiErr *vortex.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Len(t, apiErr.Body, 1<<20)
	})

	t.Run("unparseable body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{not json`)
		})

		inv, err := client.GetInvitation(context.Background(), "inv_1")
		require.NoError(t, err)
		require.NotNil(t, inv)
		assert.Empty(t, inv.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.GetInvitation(context.Background(), "")
		require.ErrorIs(t, err, vortex.ErrMissingArgument)
		assert.Empty(t, requests.All())
	})
}

func TestClient_RevokeInvitation(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.RevokeInvitation(context.Background(), "inv_1"))

	all := requests.All()
	require.Len(t, all, 1)
	assert.Equal(t, http.MethodDelete, all[0].Method)
	assert.Equal(t, "/api/v1/invitations/inv_1", all[0].Path)
	assert.Empty(t, all[0].Body)

	require.ErrorIs(t, client.RevokeInvitation(context.Background(), ""), vortex.ErrMissingArgument)
}

func TestClient_Reinvite(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, invitationJSON)
	})

	inv, err := client.Reinvite(context.Background(), "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "inv_1", inv.ID)

	all := requests.All()
	require.Len(t, all, 1)
	assert.Equal(t, http.MethodPost, all[0].Method)
	assert.Equal(t, "/api/v1/invitations/inv_1/reinvite", all[0].Path)
}

func TestClient_InvitationsByGroup(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"invitations":[`+invitationJSON+`]}`)
		})

		list, err := client.GetInvitationsByGroup(context.Background(), "team", "team 1")
		require.NoError(t, err)
		assert.Len(t, list, 1)

		req := requests.All()[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/api/v1/invitations/by-group/team/team%201", req.RawPath)
	})

	t.Run("large list is read in full", func(t *testing.T) {
		const count = 12000
		var body strings.Builder
		body.WriteString(`{"invitations":[`)
		for i := 0; i < count; i++ {
			if i > 0 {
				body.WriteByte(',')
			}
			fmt.Fprintf(&body, `{"id":"inv_%05d","status":"delivered","target":[{"type":"email","value":"user%05d@example.com"}]}`, i, i)
		}
		body.WriteString(`]}`)
		require.Greater(t, body.Len(), 1<<20)

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, body.String())
		})

		list, err := client.GetInvitationsByGroup(context.Background(), "team", "t1")
		require.NoError(t, err)
		require.Len(t, list, count)
		assert.Equal(t, "inv_11999", list[count-1].ID)
	})

	t.Run("empty list", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"invitations":[]}`)
		})

		list, err := client.GetInvitationsByGroup(context.Background(), "team", "t1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("delete", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, client.DeleteInvitationsByGroup(context.Background(), "workspace", "ws-1"))

		req := requests.All()[0]
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/api/v1/invitations/by-group/workspace/ws-1", req.Path)
	})

	t.Run("missing arguments", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.GetInvitationsByGroup(context.Background(), "", "t1")
		require.ErrorIs(t, err, vortex.ErrMissingArgument)
		require.ErrorIs(t, client.DeleteInvitationsByGroup(context.Background(), "team", ""), vortex.ErrMissingArgument)
		assert.Empty(t, requests.All())
	})
}

func TestClient_CreateInvitation(t *testing.T) {
	t.Parallel()

	valid := vortex.CreateInvitationRequest{
		WidgetConfigurationID: "widget_1",
		Target:                vortex.CreateInvitationTarget{Type: vortex.TargetTypeEmail, Value: "jane@example.com"},
		Inviter:               vortex.Inviter{UserID: "u1", UserEmail: "u1@x.com"},
		Groups:                []vortex.CreateInvitationGroup{{Type: "team", GroupID: "team-1", Name: "Team 1"}},
		TemplateVariables:     map[string]string{"company": "Acme"},
	}

	t.Run("sends request body", func(t *testing.T) {
		client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, `{"id":"inv_new","shortLink":"https://vrtx.link/abc","status":"queued","createdAt":"2024-05-01T10:00:00Z"}`)
		})

		resp, err := client.CreateInvitation(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, "inv_new", resp.ID)
		assert.Equal(t, "https://vrtx.link/abc", resp.ShortLink)
		assert.Equal(t, vortex.StatusQueued, resp.Status)

		req := requests.All()[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/v1/invitations", req.Path)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		body := req.JSON(t)
		assert.Equal(t, "widget_1", body["widgetConfigurationId"])
		assert.Equal(t, map[string]any{"type": "email", "value": "jane@example.com"}, body["target"])
		assert.Equal(t, "u1", body["inviter"].(map[string]any)["userId"])
		assert.Len(t, body["groups"], 1)
		assert.NotContains(t, body, "unfurlConfig")
	})

	tests := []struct {
		name   string
		mutate func(*vortex.CreateInvitationRequest)
		err    error
	}{
		{"missing widget", func(r *vortex.CreateInvitationRequest) { r.WidgetConfigurationID = "" }, vortex.ErrMissingArgument},
		{"share target", func(r *vortex.CreateInvitationRequest) { r.Target.Type = vortex.TargetTypeShare }, vortex.ErrUnsupportedTargetType},
		{"unknown target", func(r *vortex.CreateInvitationRequest) { r.Target.Type = "fax" }, vortex.ErrUnsupportedTargetType},
		{"missing target value", func(r *vortex.CreateInvitationRequest) { r.Target.Value = "" }, vortex.ErrMissingArgument},
		{"missing inviter", func(r *vortex.CreateInvitationRequest) { r.Inviter.UserID = "" }, vortex.ErrMissingArgument},
		{"incomplete group", func(r *vortex.CreateInvitationRequest) {
			r.Groups = []vortex.CreateInvitationGroup{{Type: "team"}}
		}, vortex.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

			req := valid
			tt.mutate(&req)
			resp, err := client.CreateInvitation(context.Background(), req)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, resp)
			assert.Empty(t, requests.All())
		})
	}
}
