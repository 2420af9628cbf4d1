package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventku_backend/internals/features/events/aggregator/dto"
)

// Event komunitas tanpa jam selesai dianggap 2 jam.
const meetupDefaultEventDuration = 2 * time.Hour

// ==========================================
// Skema payload Meetup (GraphQL)
// ==========================================

type meetupGroup struct {
	ID           string `json:"id"`
	Urlname      string `json:"urlname"`
	Name         string `json:"name"`
	MembersCount int    `json:"membersCount"`
}

type meetupEvent struct {
	ID          string `json:"id"`
	Name        string `json:"title"`
	Description string `json:"description"`
	DateTime    string `json:"dateTime"`
	EndTime     string `json:"endTime"`
	Duration    int64  `json:"duration"` // milidetik
	EventURL    string `json:"eventUrl"`
	Going       int    `json:"going"`
	MaxTickets  *int   `json:"maxTickets"`
	Images      []struct {
		BaseURL string `json:"baseUrl"`
	} `json:"images"`
	Venue *struct {
		Name    string  `json:"name"`
		Address string  `json:"address"`
		City    string  `json:"city"`
		State   string  `json:"state"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	} `json:"venue"`
	Group struct {
		Name        string  `json:"name"`
		Urlname     string  `json:"urlname"`
		Description *string `json:"description"`
		Link        string  `json:"link"`
	} `json:"group"`
	Topics []struct {
		Name string `json:"name"`
	} `json:"topics"`
	IsFree      bool     `json:"isFree"`
	FeeAmount   *float64 `json:"feeAmount"`
	FeeCurrency *string  `json:"feeCurrency"`
}

type meetupResponse struct {
	Data *struct {
		KeywordSearch *struct {
			Edges []struct {
				Node meetupGroup `json:"node"`
			} `json:"edges"`
		} `json:"keywordSearch"`
		GroupByUrlname *struct {
			UnifiedEvents *struct {
				Edges []struct {
					Node meetupEvent `json:"node"`
				} `json:"edges"`
			} `json:"unifiedEvents"`
		} `json:"groupByUrlname"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

const meetupGroupsQuery = `
query GetGroups($query: String!, $lat: Float!, $lon: Float!) {
  keywordSearch(first: 50, filter: {query: $query, source: GROUPS, lat: $lat, lon: $lon, radius: 25}) {
    edges {
      node {
        ... on Group { id urlname name membersCount }
      }
    }
  }
}`

const meetupGroupEventsQuery = `
query GetGroupEvents($urlname: String!, $first: Int!) {
  groupByUrlname(urlname: $urlname) {
    unifiedEvents(input: {first: $first}) {
      edges {
        node {
          id title description dateTime endTime duration eventUrl going maxTickets
          images { id baseUrl }
          venue { id name address city state country lat lng }
          group { id name urlname description link }
          topics { id name }
          isFree feeAmount feeCurrency
        }
      }
    }
  }
}`

// ==========================================
// Adapter
// ==========================================

type meetupCity struct {
	Query string
	Lat   float64
	Lon   float64
}

type MeetupAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client

	// Fan-out: per kota → max N group → max M event per group.
	// Event yang sama bisa ketemu lewat lebih dari satu kota/group,
	// makanya hasil akhir WAJIB di-dedup by natural key.
	targetCities   []meetupCity
	groupsPerCity  int
	eventsPerGroup int
}

func NewMeetupAdapter(apiKey string) (*MeetupAdapter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("MEETUP_API_KEY environment variable is required")
	}
	return &MeetupAdapter{
		apiKey:  apiKey,
		baseURL: "https://api.meetup.com/gql",
		client:  defaultHTTPClient(),
		targetCities: []meetupCity{
			{Query: "san-francisco", Lat: 37.7749, Lon: -122.4194},
			{Query: "new-york", Lat: 40.7128, Lon: -74.0060},
			{Query: "los-angeles", Lat: 34.0522, Lon: -118.2437},
		},
		groupsPerCity:  10,
		eventsPerGroup: 20,
	}, nil
}

func (a *MeetupAdapter) SourceName() string { return SourceMeetup }

func (a *MeetupAdapter) FetchEvents(ctx context.Context) ([]dto.CanonicalEvent, error) {
	log.Println("[INFO] Fetching events from Meetup API...")

	var events []dto.CanonicalEvent
	for _, city := range a.targetCities {
		cityEvents, err := a.fetchCityEvents(ctx, city)
		if err != nil {
			// satu kota gagal bukan alasan menjatuhkan kota lain
			log.Printf("[WARN] Meetup: gagal fetch kota %s: %v", city.Query, err)
			continue
		}
		events = append(events, cityEvents...)
	}

	// Jalur discovery bisa tumpang tindih → keep-first by natural key.
	unique := dedupByNaturalKey(events)

	log.Printf("[INFO] Meetup: %d unique events berhasil di-fetch", len(unique))
	return unique, nil
}

func (a *MeetupAdapter) fetchCityEvents(ctx context.Context, city meetupCity) ([]dto.CanonicalEvent, error) {
	resp, err := a.executeQuery(ctx, meetupGroupsQuery, map[string]any{
		"query": city.Query,
		"lat":   city.Lat,
		"lon":   city.Lon,
	})
	if err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.KeywordSearch == nil {
		return nil, nil
	}

	edges := resp.Data.KeywordSearch.Edges
	if len(edges) > a.groupsPerCity {
		edges = edges[:a.groupsPerCity]
	}

	var events []dto.CanonicalEvent
	for _, edge := range edges {
		groupEvents, err := a.fetchGroupEvents(ctx, edge.Node.Urlname)
		if err != nil {
			log.Printf("[WARN] Meetup: gagal fetch group %s: %v", edge.Node.Urlname, err)
			continue
		}
		events = append(events, groupEvents...)
	}
	return events, nil
}

func (a *MeetupAdapter) fetchGroupEvents(ctx context.Context, urlname string) ([]dto.CanonicalEvent, error) {
	resp, err := a.executeQuery(ctx, meetupGroupEventsQuery, map[string]any{
		"urlname": urlname,
		"first":   a.eventsPerGroup,
	})
	if err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.GroupByUrlname == nil || resp.Data.GroupByUrlname.UnifiedEvents == nil {
		return nil, nil
	}

	var events []dto.CanonicalEvent
	for _, edge := range resp.Data.GroupByUrlname.UnifiedEvents.Edges {
		ev, err := a.transformEvent(edge.Node)
		if err != nil {
			log.Printf("[WARN] Meetup: skip record %s: %v", edge.Node.ID, err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (a *MeetupAdapter) executeQuery(ctx context.Context, query string, variables map[string]any) (*meetupResponse, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("status %d - %s", resp.StatusCode, string(body))
	}

	var out meetupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", out.Errors[0].Message)
	}
	return &out, nil
}

func (a *MeetupAdapter) transformEvent(ev meetupEvent) (dto.CanonicalEvent, error) {
	startTime, err := time.Parse(time.RFC3339, ev.DateTime)
	if err != nil {
		return dto.CanonicalEvent{}, fmt.Errorf("invalid start time %q: %w", ev.DateTime, err)
	}
	startTime = startTime.UTC()

	// End time: upstream → duration → default 2 jam.
	var endTime time.Time
	switch {
	case ev.EndTime != "":
		endTime, err = time.Parse(time.RFC3339, ev.EndTime)
		if err != nil {
			return dto.CanonicalEvent{}, fmt.Errorf("invalid end time %q: %w", ev.EndTime, err)
		}
		endTime = endTime.UTC()
	case ev.Duration > 0:
		endTime = startTime.Add(time.Duration(ev.Duration) * time.Millisecond)
	default:
		endTime = startTime.Add(meetupDefaultEventDuration)
	}

	locationAddress := "Online Event"
	locationName := "Online"
	var coordinates *dto.Coordinates
	if v := ev.Venue; v != nil {
		locationName = v.Name
		locationAddress = fmt.Sprintf("%s, %s, %s, %s", v.Address, v.City, v.State, v.Country)
		coordinates = &dto.Coordinates{Lat: v.Lat, Lng: v.Lng}
	}

	organizerInfo := dto.OrganizerInfo{
		Name:        ev.Group.Name,
		Website:     strPtr(ev.Group.Link),
		Description: ev.Group.Description,
	}

	ticketInfo := dto.TicketInfo{
		PurchaseURL: ev.EventURL,
		Currency:    strPtr("USD"),
		IsFree:      ev.IsFree,
	}
	if ev.FeeCurrency != nil && *ev.FeeCurrency != "" {
		ticketInfo.Currency = ev.FeeCurrency
	}
	if ev.IsFree {
		ticketInfo.Price = strPtr("Free")
	} else if ev.FeeAmount != nil {
		ticketInfo.Price = strPtr(strconv.FormatFloat(*ev.FeeAmount, 'f', -1, 64))
	}

	var images []string
	for _, img := range ev.Images {
		if img.BaseURL != "" {
			images = append(images, img.BaseURL)
		}
	}

	category := defaultCategory
	if len(ev.Topics) > 0 {
		category = inferCategoryFromTopic(ev.Topics[0].Name)
	}

	description := ev.Description
	if description == "" {
		description = "No description available"
	}

	out := dto.CanonicalEvent{
		Title:       ev.Name,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Images:      images,
		Location: dto.CanonicalLocation{
			Address:     locationAddress,
			Name:        locationName,
			Coordinates: coordinates,
		},
		OrganizerInfo:  organizerInfo,
		TicketInfo:     ticketInfo,
		SourcePlatform: SourceMeetup,
		SourceEventID:  ev.ID,
		Category:       category,
		Capacity:       ev.MaxTickets,
		ExternalURL:    strPtr(ev.EventURL),
	}
	if err := validate.Struct(&out); err != nil {
		return dto.CanonicalEvent{}, err
	}
	return out, nil
}
