package panel_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/egg-import/internal/panel"
	"github.com/tacogips/egg-import/internal/panel/paneltest"
)

const testKey = "ptla_test"

func newFake(t *testing.T) (*paneltest.Server, *panel.Client) {
	t.Helper()
	srv := paneltest.NewServer(testKey)
	t.Cleanup(srv.Close)
	return srv, panel.NewClient(srv.URL+"/", testKey, 5*time.Second)
}

func TestNewClient(t *testing.T) {
	c := panel.NewClient("https://panel.example.com///", "key", 0)

	assert.Equal(t, "https://panel.example.com", c.BaseURL)
	assert.Equal(t, panel.DefaultTimeout, c.HTTPClient.Timeout)
	assert.True(t, strings.HasPrefix(c.UserAgent, "egg-import/"))
}

func TestNestIdentifier(t *testing.T) {
	tests := map[string]string{
		"Minecraft":          "minecraft",
		"Source Engine":      "source_engine",
		"Roleplay & Social":  "roleplay_and_social",
		"Survival & Sandbox": "survival_and_sandbox",
		"Mods/Plugins":       "mods_plugins",
	}
	for name, want := range tests {
		assert.Equal(t, want, panel.NestIdentifier(name), name)
	}
}

func TestListNestsPaginates(t *testing.T) {
	srv, c := newFake(t)
	for i := 0; i < panel.PerPage+5; i++ {
		srv.AddNest(fmt.Sprintf("Nest %03d", i))
	}

	nests, err := c.ListNests(context.Background())
	require.NoError(t, err)
	require.Len(t, nests, panel.PerPage+5)
	assert.Equal(t, "Nest 000", nests[0].Name)
	assert.Equal(t, "Nest 104", nests[len(nests)-1].Name)
	assert.NotEmpty(t, nests[0].UUID)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/application/nests", r.Path)
	}
}

func TestListNestsEmpty(t *testing.T) {
	_, c := newFake(t)

	nests, err := c.ListNests(context.Background())
	require.NoError(t, err)
	assert.Empty(t, nests)
}

func TestCreateNest(t *testing.T) {
	srv, c := newFake(t)

	nest, err := c.CreateNest(context.Background(), "Roleplay & Social", "auto-created")
	require.NoError(t, err)
	require.NotNil(t, nest)
	assert.NotZero(t, nest.ID)
	assert.Equal(t, "Roleplay & Social", nest.Name)

	stored, ok := srv.NestByName("Roleplay & Social")
	require.True(t, ok)
	assert.Equal(t, nest.ID, stored.ID)
	assert.Equal(t, "auto-created", stored.Description)
}

func TestCreateNestSendsIdentifier(t *testing.T) {
	var got panel.CreateNestRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/application/nests", r.URL.Path)
		assert.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"object":"nest","attributes":{"id":12,"name":"Steam Games"}}`))
	}))
	defer srv.Close()

	c := panel.NewClient(srv.URL, testKey, time.Second)
	nest, err := c.CreateNest(context.Background(), "Steam Games", "desc")
	require.NoError(t, err)
	assert.Equal(t, 12, nest.ID)
	assert.Equal(t, panel.CreateNestRequest{Name: "Steam Games", Identifier: "steam_games", Description: "desc"}, got)
}

func TestListAndImportEggs(t *testing.T) {
	srv, c := newFake(t)
	nest := srv.AddNest("Minecraft")
	srv.AddEgg(nest.ID, "Vanilla")

	raw := json.RawMessage(`{"meta":{"version":"PTDL_v2"},"name":"Paper","author":"dev@example.com"}`)
	egg, err := c.ImportEgg(context.Background(), nest.ID, raw)
	require.NoError(t, err)
	require.NotNil(t, egg)
	assert.Equal(t, "Paper", egg.Name)
	assert.Equal(t, nest.ID, egg.Nest)

	eggs, err := c.ListEggs(context.Background(), nest.ID)
	require.NoError(t, err)
	require.Len(t, eggs, 2)
	assert.Equal(t, "Vanilla", eggs[0].Name)
	assert.Equal(t, "Paper", eggs[1].Name)
	assert.Equal(t, "dev@example.com", eggs[1].Author)
}

func TestImportEggEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := panel.NewClient(srv.URL, testKey, time.Second)
	egg, err := c.ImportEgg(context.Background(), 3, json.RawMessage(`{"name":"Paper"}`))
	require.NoError(t, err)
	assert.Nil(t, egg)
}

func TestErrors(t *testing.T) {
	t.Run("auth", func(t *testing.T) {
		srv := paneltest.NewServer("other-key")
		defer srv.Close()
		c := panel.NewClient(srv.URL, testKey, time.Second)

		_, err := c.ListNests(context.Background())
		require.Error(t, err)
		assert.True(t, panel.IsType(err, panel.ErrAuth))
		assert.Equal(t, http.StatusUnauthorized, panel.StatusCode(err))
		assert.Contains(t, err.Error(), "Unauthenticated.")
	})

	t.Run("unknown nest", func(t *testing.T) {
		_, c := newFake(t)

		_, err := c.ListEggs(context.Background(), 99)
		assert.True(t, panel.IsType(err, panel.ErrNotFound))
	})

	t.Run("validation failure keeps JSON body", func(t *testing.T) {
		srv, c := newFake(t)
		nest := srv.AddNest("Minecraft")
		srv.FailImport("Paper", http.StatusUnprocessableEntity)

		_, err := c.ImportEgg(context.Background(), nest.ID, json.RawMessage(`{"name":"Paper"}`))
		var panelErr *panel.Error
		require.ErrorAs(t, err, &panelErr)
		assert.Equal(t, panel.ErrStatus, panelErr.Type)
		assert.Equal(t, http.MethodPost, panelErr.Method)
		assert.Equal(t, fmt.Sprintf("/nests/%d/eggs/import", nest.ID), panelErr.Path)
		assert.Equal(t, http.StatusUnprocessableEntity, panelErr.StatusCode)
		assert.JSONEq(t, `{"errors":[{"code":"HttpException","status":"422","detail":"egg import failed"}]}`, panelErr.Body)
	})

	t.Run("rate limited", func(t *testing.T) {
		srv, c := newFake(t)
		srv.FailListNests(http.StatusTooManyRequests)

		_, err := c.ListNests(context.Background())
		assert.True(t, panel.IsType(err, panel.ErrRateLimited))
	})

	t.Run("html body truncated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>" + strings.Repeat("x", 500) + "</html>"))
		}))
		defer srv.Close()
		c := panel.NewClient(srv.URL, testKey, time.Second)

		_, err := c.ListNests(context.Background())
		var panelErr *panel.Error
		require.ErrorAs(t, err, &panelErr)
		assert.Equal(t, panel.ErrStatus, panelErr.Type)
		assert.Len(t, panelErr.Body, 203)
		assert.True(t, strings.HasSuffix(panelErr.Body, "..."))
	})

	t.Run("undecodable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()
		c := panel.NewClient(srv.URL, testKey, time.Second)

		_, err := c.ListNests(context.Background())
		assert.True(t, panel.IsType(err, panel.ErrDecode))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		c := panel.NewClient(url, testKey, time.Second)

		_, err := c.ListNests(context.Background())
		assert.True(t, panel.IsType(err, panel.ErrRequest))
		assert.Zero(t, panel.StatusCode(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		_, c := newFake(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ListNests(ctx)
		assert.True(t, panel.IsType(err, panel.ErrRequest))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
