package kitsu

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniplanner/simulcast/internal/config"
)

func testClient(baseURL string, pageLimit int) *Client {
	cfg := config.Default()
	cfg.API.BaseURL = baseURL
	cfg.API.PageLimit = pageLimit
	return NewClient(cfg, nil)
}

func pageBody(ids []string, next string) string {
	body := `{"data":[`
	for i, id := range ids {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"id":%q,"type":"anime","attributes":{}}`, id)
	}
	body += `],"links":{`
	if next != "" {
		body += fmt.Sprintf(`"next":%q`, next)
	}
	body += `}}`
	return body
}

func TestCurrentSeason(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/anime", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "current", q.Get("filter[status]"))
			assert.Equal(t, "spring", q.Get("filter[season]"))
			assert.Equal(t, "2024", q.Get("filter[seasonYear]"))
			assert.Equal(t, "20", q.Get("page[limit]"))
			assert.Equal(t, "-userCount", q.Get("sort"))

			_, _ = w.Write([]byte(pageBody([]string{"1", "2"}, "")))
		}))
		defer server.Close()

		client := testClient(server.URL, 20)
		resources, err := client.CurrentSeason(context.Background(), "spring", 2024)

		require.NoError(t, err)
		require.Len(t, resources, 2)
		assert.Equal(t, "1", resources[0].ID)
		assert.Equal(t, "2", resources[1].ID)
	})

	t.Run("follows next links until absent", func(t *testing.T) {
		type page struct {
			ids  []string
			next string
		}
		pages := map[string]page{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := pages[r.URL.Query().Get("page[offset]")]
			_, _ = w.Write([]byte(pageBody(p.ids, p.next)))
		}))
		defer server.Close()

		pages[""] = page{[]string{"1", "2"}, server.URL + "/anime?page[offset]=2"}
		pages["2"] = page{[]string{"3", "4"}, server.URL + "/anime?page[offset]=4"}
		pages["4"] = page{[]string{"5"}, ""}

		client := testClient(server.URL, 2)
		resources, err := client.CurrentSeason(context.Background(), "winter", 2025)

		require.NoError(t, err)
		require.Len(t, resources, 5)
		for i, res := range resources {
			assert.Equal(t, fmt.Sprintf("%d", i+1), res.ID)
		}
	})

	t.Run("follow-up requests do not repeat filter params", func(t *testing.T) {
		var secondRequest *http.Request
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/anime", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(pageBody([]string{"1"}, server.URL+"/page2")))
		})
		mux.HandleFunc("/page2", func(w http.ResponseWriter, r *http.Request) {
			clone := *r
			secondRequest = &clone
			_, _ = w.Write([]byte(pageBody([]string{"2"}, "")))
		})

		client := testClient(server.URL, 20)
		resources, err := client.CurrentSeason(context.Background(), "fall", 2023)

		require.NoError(t, err)
		assert.Len(t, resources, 2)
		require.NotNil(t, secondRequest)
		assert.Empty(t, secondRequest.URL.Query().Get("filter[season]"))
	})

	t.Run("empty season", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[],"links":{}}`))
		}))
		defer server.Close()

		client := testClient(server.URL, 20)
		resources, err := client.CurrentSeason(context.Background(), "summer", 2024)

		require.NoError(t, err)
		assert.Empty(t, resources)
	})

	t.Run("server error terminates the run", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := testClient(server.URL, 20)
		_, err := client.CurrentSeason(context.Background(), "spring", 2024)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed JSON terminates the run", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": [`))
		}))
		defer server.Close()

		client := testClient(server.URL, 20)
		_, err := client.CurrentSeason(context.Background(), "spring", 2024)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})
}
