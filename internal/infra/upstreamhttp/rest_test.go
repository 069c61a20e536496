package upstreamhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vpnConfigFor(baseURL string) VPNConfigParams {
	cfg := &config.Config{}
	cfg.Upstreams.VPN.BaseURL = baseURL

	return VPNConfigParams{Config: cfg}
}

func identityConfigFor(baseURL string) IdentityParams {
	cfg := &config.Config{}
	cfg.Upstreams.Identity.BaseURL = baseURL

	return IdentityParams{Config: cfg}
}

func TestVPNServerClient_List_PaginationQuery(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewVPNServerClient(vpnConfigFor(server.URL))

	env, err := client.List(context.Background(), &upstream.Page{Limit: 1, Offset: 0})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "/servers", gotPath)
	assert.Equal(t, "limit=1&offset=0", gotQuery)
}

func TestVPNServerClient_List_NilPageSendsNoParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewVPNServerClient(vpnConfigFor(server.URL))

	_, err := client.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestVPNServerClient_ListByType_PathShape(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewVPNServerClient(vpnConfigFor(server.URL))

	_, err := client.ListByType(context.Background(), entity.VPNTypeWireGuard, &upstream.Page{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, "/servers/type/2", gotPath)
}

func TestUserClient_GetByUUID_DecodesEnvelope(t *testing.T) {
	userUUID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/uuid/"+userUUID.String(), r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entity.User{UUID: userUUID, Email: "a@example.com"})
	}))
	defer server.Close()

	client := NewUserClient(identityConfigFor(server.URL))

	env, err := client.GetByUUID(context.Background(), userUUID)
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusOK, env.Code)
	assert.Equal(t, userUUID, env.Data.UUID)
	assert.Equal(t, "a@example.com", env.Data.Email)
}

func TestUserClient_Create_PostsBodyAndCapturesHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var user entity.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "new@example.com", user.Email)

		w.Header().Set("Location", "/users/uuid/"+uuid.NewString())
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(user)
	}))
	defer server.Close()

	client := NewUserClient(identityConfigFor(server.URL))

	env, err := client.Create(context.Background(), &entity.User{Email: "new@example.com"})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.NotEmpty(t, env.Header("Location"))
}

func TestCall_FailureStatusBecomesFailureEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"code":"USER_NOT_FOUND","message":"no such user"}]}`))
	}))
	defer server.Close()

	client := NewUserClient(identityConfigFor(server.URL))

	env, err := client.GetByEmail(context.Background(), "missing@example.com")
	require.NoError(t, err, "a failure status is not a transport error")
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusNotFound, env.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "USER_NOT_FOUND", env.Errors[0].Code)
	assert.Equal(t, "no such user", env.Errors[0].Message)
}

func TestCall_NonJSONFailureBodyIsWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	client := NewUserClient(identityConfigFor(server.URL))

	env, err := client.GetByEmail(context.Background(), "x@example.com")
	require.NoError(t, err)
	assert.False(t, env.Success)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "UPSTREAM_ERROR", env.Errors[0].Code)
	assert.Equal(t, "bad gateway", env.Errors[0].Message)
}

func TestCall_TransportErrorIsError(t *testing.T) {
	client := NewUserClient(identityConfigFor("http://127.0.0.1:1"))

	_, err := client.GetByEmail(context.Background(), "x@example.com")
	assert.Error(t, err)
}

func TestVPNServerConfigurationClient_OptionalUserUUID(t *testing.T) {
	serverUUID := uuid.New()
	userUUID := uuid.New()

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(entity.VPNServerConfiguration{ServerUUID: serverUUID})
	}))
	defer server.Close()

	client := NewVPNServerConfigurationClient(vpnConfigFor(server.URL))

	_, err := client.Get(context.Background(), serverUUID, &userUUID)
	require.NoError(t, err)
	assert.Equal(t, "user_uuid="+userUUID.String(), gotQuery)

	_, err = client.Get(context.Background(), serverUUID, nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}
