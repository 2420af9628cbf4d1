package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const muGroups = `{
  "data": {
    "keywordSearch": {
      "edges": [
        {"node": {"id": "g1", "urlname": "go-devs", "name": "Go Devs", "membersCount": 1200}}
      ]
    }
  }
}`

// Tiga event dengan kombinasi end time berbeda: eksplisit, via duration,
// dan tanpa keduanya (default 2 jam).
const muGroupEvents = `{
  "data": {
    "groupByUrlname": {
      "unifiedEvents": {
        "edges": [
          {"node": {
            "id": "mu-1",
            "title": "Go Concurrency Workshop",
            "description": "Channels and goroutines",
            "dateTime": "2025-10-01T18:00:00Z",
            "endTime": "2025-10-01T21:30:00Z",
            "eventUrl": "https://meetup.com/go-devs/mu-1",
            "maxTickets": 40,
            "images": [{"baseUrl": "https://img.meetup.com/mu-1.jpg"}],
            "venue": {"name": "Tech Hub", "address": "1 Main St", "city": "San Francisco", "state": "CA", "country": "US", "lat": 37.77, "lng": -122.41},
            "group": {"name": "Go Devs", "urlname": "go-devs", "description": "Gophers", "link": "https://meetup.com/go-devs"},
            "topics": [{"name": "Software Development"}],
            "isFree": true
          }},
          {"node": {
            "id": "mu-2",
            "title": "Wine Tasting Social",
            "description": "",
            "dateTime": "2025-10-02T19:00:00Z",
            "duration": 5400000,
            "eventUrl": "https://meetup.com/go-devs/mu-2",
            "group": {"name": "Go Devs", "urlname": "go-devs", "link": "https://meetup.com/go-devs"},
            "topics": [{"name": "Wine Lovers"}],
            "isFree": false,
            "feeAmount": 12.5,
            "feeCurrency": "USD"
          }},
          {"node": {
            "id": "mu-3",
            "title": "Casual Hangout",
            "description": "Just hanging out",
            "dateTime": "2025-10-03T17:00:00Z",
            "eventUrl": "https://meetup.com/go-devs/mu-3",
            "group": {"name": "Go Devs", "urlname": "go-devs", "link": "https://meetup.com/go-devs"},
            "isFree": true
          }}
        ]
      }
    }
  }
}`

func newMeetupTestServer(t *testing.T, groupQueries, eventQueries *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(payload.Query, "keywordSearch"):
			*groupQueries++
			fmt.Fprint(w, muGroups)
		case strings.Contains(payload.Query, "groupByUrlname"):
			*eventQueries++
			assert.Equal(t, "go-devs", payload.Variables["urlname"])
			fmt.Fprint(w, muGroupEvents)
		default:
			t.Errorf("unexpected graphql query: %s", payload.Query)
		}
	}))
}

func TestMeetupAdapterRequiresAPIKey(t *testing.T) {
	_, err := NewMeetupAdapter("")
	require.Error(t, err)
	assert.Equal(t, "MEETUP_API_KEY environment variable is required", err.Error())
}

func TestMeetupFetchEvents(t *testing.T) {
	groupQueries, eventQueries := 0, 0
	srv := newMeetupTestServer(t, &groupQueries, &eventQueries)
	defer srv.Close()

	a, err := NewMeetupAdapter("test-key")
	require.NoError(t, err)
	a.baseURL = srv.URL

	events, err := a.FetchEvents(context.Background())
	require.NoError(t, err)

	// 3 kota → 3 group query; tiap kota nemu group yang sama → 3 event query.
	assert.Equal(t, 3, groupQueries)
	assert.Equal(t, 3, eventQueries)

	// Event sama ketemu lewat 3 kota → dedup by natural key, keep-first.
	require.Len(t, events, 3)

	byID := map[string]int{}
	for i, ev := range events {
		assert.Equal(t, SourceMeetup, ev.SourcePlatform)
		byID[ev.SourceEventID] = i
	}

	// mu-1: endTime eksplisit dari upstream.
	ev := events[byID["mu-1"]]
	assert.Equal(t, "Go Concurrency Workshop", ev.Title)
	assert.Equal(t, time.Date(2025, 10, 1, 21, 30, 0, 0, time.UTC), ev.EndTime)
	assert.Equal(t, "Tech Hub", ev.Location.Name)
	assert.Equal(t, "1 Main St, San Francisco, CA, US", ev.Location.Address)
	require.NotNil(t, ev.Location.Coordinates)
	assert.InDelta(t, -122.41, ev.Location.Coordinates.Lng, 1e-9)
	assert.Equal(t, "Go Devs", ev.OrganizerInfo.Name)
	assert.Equal(t, "Technology", ev.Category) // topic "Software Development"
	require.NotNil(t, ev.Capacity)
	assert.Equal(t, 40, *ev.Capacity)
	assert.Equal(t, []string{"https://img.meetup.com/mu-1.jpg"}, ev.Images)

	// mu-2: end time dari duration (ms), harga dari feeAmount.
	ev = events[byID["mu-2"]]
	assert.Equal(t, time.Date(2025, 10, 2, 20, 30, 0, 0, time.UTC), ev.EndTime)
	assert.Equal(t, "No description available", ev.Description)
	assert.Equal(t, "Food & Drink", ev.Category) // topic "Wine Lovers"
	assert.Equal(t, "Online", ev.Location.Name)
	require.NotNil(t, ev.TicketInfo.Price)
	assert.Equal(t, "12.5", *ev.TicketInfo.Price)
	assert.False(t, ev.TicketInfo.IsFree)

	// mu-3: tanpa endTime & duration → default +2 jam; tanpa topic → Other.
	ev = events[byID["mu-3"]]
	assert.Equal(t, time.Date(2025, 10, 3, 19, 0, 0, 0, time.UTC), ev.EndTime)
	assert.Equal(t, "Other", ev.Category)
	require.NotNil(t, ev.TicketInfo.Price)
	assert.Equal(t, "Free", *ev.TicketInfo.Price)
}

func TestMeetupCityFailureDoesNotAbortRun(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case calls == 1:
			// kota pertama gagal total
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		case strings.Contains(string(body), "keywordSearch"):
			fmt.Fprint(w, muGroups)
		default:
			fmt.Fprint(w, muGroupEvents)
		}
	}))
	defer srv.Close()

	a, err := NewMeetupAdapter("test-key")
	require.NoError(t, err)
	a.baseURL = srv.URL

	events, err := a.FetchEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestMeetupGraphQLErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"errors":[{"message":"token expired"}]}`)
	}))
	defer srv.Close()

	a, err := NewMeetupAdapter("test-key")
	require.NoError(t, err)
	a.baseURL = srv.URL

	// Semua kota gagal dengan graphql error → hasil kosong, bukan error fatal
	// (bulkhead per kota).
	events, err := a.FetchEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}
