package bookla

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadLabelMaps_WrappedArrays(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "admin-key", r.Header.Get("X-Api-Key"))
		require.Equal(t, "200", r.URL.Query().Get("limit"))
		require.Equal(t, "0", r.URL.Query().Get("offset"))

		switch r.URL.Path {
		case "/companies/comp-1/resources":
			w.Write([]byte(`{"resources":[{"id":"r1","name":"Coach Ann"},{"id":"r2"},{"name":"orphan"}]}`))
		case "/companies/comp-1/services":
			w.Write([]byte(`{"services":[{"id":"s1","name":"Private Lesson"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer upstream.Close()

	maps := newTestClient(upstream, "admin-key").LoadLabelMaps(context.Background())
	assert.Equal(t, map[string]string{"r1": "Coach Ann"}, maps.Resources)
	assert.Equal(t, map[string]string{"s1": "Private Lesson"}, maps.Services)
}

func TestLoadLabelMaps_BareArrays(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"x1","name":"Bare"}]`))
	}))
	defer upstream.Close()

	maps := newTestClient(upstream, "admin-key").LoadLabelMaps(context.Background())
	assert.Equal(t, map[string]string{"x1": "Bare"}, maps.Resources)
	assert.Equal(t, map[string]string{"x1": "Bare"}, maps.Services)
}

func TestLoadLabelMaps_SkippedWithoutAdminKey(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without admin key")
	}))
	defer upstream.Close()

	maps := newTestClient(upstream, "").LoadLabelMaps(context.Background())
	assert.Empty(t, maps.Resources)
	assert.Empty(t, maps.Services)
	assert.NotNil(t, maps.Resources)
	assert.NotNil(t, maps.Services)
}

func TestLoadLabelMaps_CategoriesFailIndependently(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/companies/comp-1/resources":
			w.WriteHeader(http.StatusInternalServerError)
		case "/companies/comp-1/services":
			w.Write([]byte(`{"services":[{"id":"s1","name":"Private Lesson"}]}`))
		}
	}))
	defer upstream.Close()

	maps := newTestClient(upstream, "admin-key").LoadLabelMaps(context.Background())
	assert.Empty(t, maps.Resources)
	assert.Equal(t, map[string]string{"s1": "Private Lesson"}, maps.Services)
}

func TestLoadLabelMaps_NetworkFailureYieldsEmptyMaps(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connections now refused

	c := &Client{
		BaseURL:     upstream.URL,
		CompanyID:   "comp-1",
		APIKey:      "client-key",
		AdminAPIKey: "admin-key",
		HTTPClient:  http.DefaultClient,
		Logger:      zap.NewNop(),
	}
	maps := c.LoadLabelMaps(context.Background())
	assert.Empty(t, maps.Resources)
	assert.Empty(t, maps.Services)
}
