package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventku_backend/internals/features/events/aggregator/dto"
)

// ==========================================
// Skema payload Eventbrite (REST /v3)
// ==========================================

type eventbriteEvent struct {
	ID          string `json:"id"`
	Name        struct{ Text string `json:"text"` } `json:"name"`
	Description struct{ Text string `json:"text"` } `json:"description"`
	Start       struct {
		Timezone string `json:"timezone"`
		Local    string `json:"local"`
		UTC      string `json:"utc"`
	} `json:"start"`
	End struct {
		Timezone string `json:"timezone"`
		Local    string `json:"local"`
		UTC      string `json:"utc"`
	} `json:"end"`
	URL  string `json:"url"`
	Logo *struct {
		URL string `json:"url"`
	} `json:"logo"`
	Venue *struct {
		Name    string `json:"name"`
		Address *struct {
			Address1   string `json:"address_1"`
			Address2   string `json:"address_2"`
			City       string `json:"city"`
			Region     string `json:"region"`
			PostalCode string `json:"postal_code"`
			Country    string `json:"country"`
			Latitude   string `json:"latitude"`
			Longitude  string `json:"longitude"`
		} `json:"address"`
	} `json:"venue"`
	Organizer *struct {
		Name        string `json:"name"`
		Description *struct {
			Text string `json:"text"`
		} `json:"description"`
		URL string `json:"url"`
	} `json:"organizer"`
	Category *struct {
		Name string `json:"name"`
	} `json:"category"`
	Capacity           *int `json:"capacity"`
	IsFree             bool `json:"is_free"`
	TicketAvailability *struct {
		MinimumTicketPrice *struct {
			Currency string  `json:"currency"`
			Display  string  `json:"display"`
			Value    float64 `json:"value"`
		} `json:"minimum_ticket_price"`
	} `json:"ticket_availability"`
}

type eventbriteResponse struct {
	Events     []eventbriteEvent `json:"events"`
	Pagination struct {
		PageNumber   int  `json:"page_number"`
		PageCount    int  `json:"page_count"`
		HasMoreItems bool `json:"has_more_items"`
	} `json:"pagination"`
}

// ==========================================
// Adapter
// ==========================================

type EventbriteAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client

	// Area target pencarian — sesuaikan dengan kota deployment.
	location string
	radius   string

	// Batas halaman per run supaya worst-case latency satu run terprediksi.
	maxPages int
}

func NewEventbriteAdapter(apiKey string) (*EventbriteAdapter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("EVENTBRITE_API_KEY environment variable is required")
	}
	return &EventbriteAdapter{
		apiKey:   apiKey,
		baseURL:  "https://www.eventbriteapi.com/v3",
		client:   defaultHTTPClient(),
		location: "San Francisco, CA",
		radius:   "25mi",
		maxPages: 5,
	}, nil
}

func (a *EventbriteAdapter) SourceName() string { return SourceEventbrite }

func (a *EventbriteAdapter) FetchEvents(ctx context.Context) ([]dto.CanonicalEvent, error) {
	log.Println("[INFO] Fetching events from Eventbrite API...")

	var events []dto.CanonicalEvent
	for page := 1; page <= a.maxPages; page++ {
		resp, err := a.fetchPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("Eventbrite API error: %w", err)
		}

		for _, raw := range resp.Events {
			ev, err := a.transformEvent(raw)
			if err != nil {
				// record jelek dilewati satuan, fetch jalan terus
				log.Printf("[WARN] Eventbrite: skip record %s: %v", raw.ID, err)
				continue
			}
			events = append(events, ev)
		}

		if !resp.Pagination.HasMoreItems {
			break
		}
	}

	log.Printf("[INFO] Eventbrite: %d events berhasil di-fetch", len(events))
	return events, nil
}

func (a *EventbriteAdapter) fetchPage(ctx context.Context, page int) (*eventbriteResponse, error) {
	params := url.Values{}
	params.Set("location.address", a.location)
	params.Set("location.within", a.radius)
	params.Set("sort_by", "date")
	params.Set("page", strconv.Itoa(page))
	params.Set("expand", "venue,organizer,category,ticket_availability")
	params.Set("status", "live")
	params.Set("time_filter", "current_future")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.baseURL+"/events/search/?"+params.Encode(), nil)
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

	var out eventbriteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *EventbriteAdapter) transformEvent(ev eventbriteEvent) (dto.CanonicalEvent, error) {
	startTime, err := time.Parse(time.RFC3339, ev.Start.UTC)
	if err != nil {
		return dto.CanonicalEvent{}, fmt.Errorf("invalid start time %q: %w", ev.Start.UTC, err)
	}
	endTime, err := time.Parse(time.RFC3339, ev.End.UTC)
	if err != nil {
		return dto.CanonicalEvent{}, fmt.Errorf("invalid end time %q: %w", ev.End.UTC, err)
	}

	// Lokasi: default online kalau venue kosong
	locationAddress := "Online Event"
	locationName := "Online"
	var coordinates *dto.Coordinates

	if ev.Venue != nil {
		locationName = ev.Venue.Name
		if addr := ev.Venue.Address; addr != nil {
			parts := []string{}
			for _, p := range []string{addr.Address1, addr.Address2, addr.City, addr.Region, addr.PostalCode, addr.Country} {
				if p != "" {
					parts = append(parts, p)
				}
			}
			locationAddress = strings.Join(parts, ", ")

			if addr.Latitude != "" && addr.Longitude != "" {
				lat, errLat := strconv.ParseFloat(addr.Latitude, 64)
				lng, errLng := strconv.ParseFloat(addr.Longitude, 64)
				if errLat == nil && errLng == nil {
					coordinates = &dto.Coordinates{Lat: lat, Lng: lng}
				}
			}
		}
	}

	organizerInfo := dto.OrganizerInfo{Name: "Unknown Organizer"}
	if ev.Organizer != nil {
		if ev.Organizer.Name != "" {
			organizerInfo.Name = ev.Organizer.Name
		}
		if ev.Organizer.URL != "" {
			organizerInfo.Website = strPtr(ev.Organizer.URL)
		}
		if ev.Organizer.Description != nil && ev.Organizer.Description.Text != "" {
			organizerInfo.Description = strPtr(ev.Organizer.Description.Text)
		}
	}

	ticketInfo := dto.TicketInfo{
		PurchaseURL: ev.URL,
		Currency:    strPtr("USD"),
		IsFree:      ev.IsFree,
	}
	if ev.IsFree {
		ticketInfo.Price = strPtr("Free")
	} else if ta := ev.TicketAvailability; ta != nil && ta.MinimumTicketPrice != nil {
		ticketInfo.Price = strPtr(ta.MinimumTicketPrice.Display)
		if ta.MinimumTicketPrice.Currency != "" {
			ticketInfo.Currency = strPtr(ta.MinimumTicketPrice.Currency)
		}
	}

	var images []string
	if ev.Logo != nil && ev.Logo.URL != "" {
		images = append(images, ev.Logo.URL)
	}

	category := "Other"
	if ev.Category != nil && ev.Category.Name != "" {
		category = ev.Category.Name
	}

	description := ev.Description.Text
	if description == "" {
		description = "No description available"
	}

	out := dto.CanonicalEvent{
		Title:       ev.Name.Text,
		Description: description,
		StartTime:   startTime.UTC(),
		EndTime:     endTime.UTC(),
		Images:      images,
		Location: dto.CanonicalLocation{
			Address:     locationAddress,
			Name:        locationName,
			Coordinates: coordinates,
		},
		OrganizerInfo:  organizerInfo,
		TicketInfo:     ticketInfo,
		SourcePlatform: SourceEventbrite,
		SourceEventID:  ev.ID,
		Category:       category,
		Capacity:       ev.Capacity,
		ExternalURL:    strPtr(ev.URL),
	}
	if err := validate.Struct(&out); err != nil {
		return dto.CanonicalEvent{}, err
	}
	return out, nil
}
