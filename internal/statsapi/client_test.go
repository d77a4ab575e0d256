package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playersEnvelope = `{
	"resource": "commonallplayers",
	"resultSets": [{
		"name": "CommonAllPlayers",
		"headers": ["PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_ABBREVIATION"],
		"rowSet": [
			[2544, "LeBron James", "LAL"],
			[201939, "Stephen Curry", "GSW"],
			[1629029, "Luka Doncic", "LAL"]
		]
	}]
}`

// TestGet tests envelope decoding and error surfacing.
func TestGet(t *testing.T) {
	t.Run("decodes first result set", func(t *testing.T) {
		var gotSeason string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSeason = r.URL.Query().Get("Season")
			_, _ = w.Write([]byte(playersEnvelope))
		}))
		defer srv.Close()

		rs, err := New(srv.URL, time.Second).AllPlayers(context.Background(), "2024-25")
		require.NoError(t, err)
		assert.Equal(t, "2024-25", gotSeason)
		assert.Equal(t, "CommonAllPlayers", rs.Name)
		assert.Equal(t, []string{"PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_ABBREVIATION"}, rs.Columns)
		require.Equal(t, 3, rs.Len())
		assert.Equal(t, "LeBron James", rs.Rows[0][1])
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := New(srv.URL, time.Second).GameFinder(context.Background(), "2024-25")
		require.Error(t, err)

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, http.StatusServiceUnavailable, provErr.Status)
		assert.Equal(t, "leaguegamefinder", provErr.Endpoint)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, err := New(srv.URL, time.Second).GameFinder(context.Background(), "2024-25")
		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Zero(t, provErr.Status)
	})

	t.Run("empty result sets", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"resource":"x","resultSets":[]}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, time.Second).GameFinder(context.Background(), "2024-25")
		assert.Error(t, err)
	})
}

// TestSearchPlayers tests the local name match over the player list.
func TestSearchPlayers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(playersEnvelope))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)

	t.Run("case-insensitive substring", func(t *testing.T) {
		rs, err := client.SearchPlayers(context.Background(), "2024-25", "CURRY")
		require.NoError(t, err)
		require.Equal(t, 1, rs.Len())
		assert.Equal(t, "Stephen Curry", rs.Rows[0][1])
	})

	t.Run("fragment with surrounding spaces", func(t *testing.T) {
		rs, err := client.SearchPlayers(context.Background(), "2024-25", "  james ")
		require.NoError(t, err)
		assert.Equal(t, 1, rs.Len())
	})

	t.Run("no matches", func(t *testing.T) {
		rs, err := client.SearchPlayers(context.Background(), "2024-25", "jordan")
		require.NoError(t, err)
		assert.Equal(t, 0, rs.Len())
		assert.Equal(t, []string{"PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_ABBREVIATION"}, rs.Columns)
	})
}

// TestNewDefaults tests base URL fallback.
func TestNewDefaults(t *testing.T) {
	c := New("", time.Second)
	assert.Equal(t, BaseURL, c.baseURL)
}
