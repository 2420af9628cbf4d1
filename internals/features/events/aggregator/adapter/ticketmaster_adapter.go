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
	"sort"
	"strconv"
	"strings"
	"time"

	"eventku_backend/internals/features/events/aggregator/dto"
)

const (
	// Event bertiket tanpa jam selesai dianggap 3 jam.
	ticketmasterDefaultEventDuration = 3 * time.Hour
	// Record yang cuma punya tanggal lokal (tanpa jam) di-default ke 19:00.
	ticketmasterDefaultStartHour = 19
)

// ==========================================
// Skema payload Ticketmaster (Discovery v2)
// ==========================================

type ticketmasterDate struct {
	DateTime  string `json:"dateTime"`
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
}

type ticketmasterEvent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Info       string `json:"info"`
	PleaseNote string `json:"pleaseNote"`
	Dates      struct {
		Start ticketmasterDate  `json:"start"`
		End   *ticketmasterDate `json:"end"`
	} `json:"dates"`
	URL    string `json:"url"`
	Images []struct {
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"images"`
	Embedded *struct {
		Venues []struct {
			Name    string `json:"name"`
			Address *struct {
				Line1 string `json:"line1"`
				Line2 string `json:"line2"`
			} `json:"address"`
			City       *struct{ Name string `json:"name"` } `json:"city"`
			State      *struct{ Name string `json:"name"` } `json:"state"`
			Country    *struct{ Name string `json:"name"` } `json:"country"`
			PostalCode string `json:"postalCode"`
			Location   *struct {
				Latitude  string `json:"latitude"`
				Longitude string `json:"longitude"`
			} `json:"location"`
		} `json:"venues"`
		Attractions []struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"attractions"`
	} `json:"_embedded"`
	Classifications []struct {
		Primary  bool                                  `json:"primary"`
		Segment  *struct{ Name string `json:"name"` } `json:"segment"`
		Genre    *struct{ Name string `json:"name"` } `json:"genre"`
	} `json:"classifications"`
	PriceRanges []struct {
		Currency string  `json:"currency"`
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
	} `json:"priceRanges"`
}

type ticketmasterResponse struct {
	Embedded *struct {
		Events []ticketmasterEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size       int `json:"size"`
		TotalPages int `json:"totalPages"`
		Number     int `json:"number"`
	} `json:"page"`
}

// ==========================================
// Adapter
// ==========================================

type TicketmasterAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client

	city        string
	stateCode   string
	countryCode string
	radius      string

	maxPages int
}

func NewTicketmasterAdapter(apiKey string) (*TicketmasterAdapter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("TICKETMASTER_API_KEY environment variable is required")
	}
	return &TicketmasterAdapter{
		apiKey:      apiKey,
		baseURL:     "https://app.ticketmaster.com/discovery/v2",
		client:      defaultHTTPClient(),
		city:        "San Francisco",
		stateCode:   "CA",
		countryCode: "US",
		radius:      "25",
		maxPages:    5,
	}, nil
}

func (a *TicketmasterAdapter) SourceName() string { return SourceTicketmaster }

func (a *TicketmasterAdapter) FetchEvents(ctx context.Context) ([]dto.CanonicalEvent, error) {
	log.Println("[INFO] Fetching events from Ticketmaster API...")

	var events []dto.CanonicalEvent
	for page := 0; page < a.maxPages; page++ {
		resp, err := a.fetchPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("Ticketmaster API error: %w", err)
		}

		if resp.Embedded != nil {
			for _, raw := range resp.Embedded.Events {
				ev, err := a.transformEvent(raw)
				if err != nil {
					log.Printf("[WARN] Ticketmaster: skip record %s: %v", raw.ID, err)
					continue
				}
				events = append(events, ev)
			}
		}

		if resp.Page.Number >= resp.Page.TotalPages-1 {
			break
		}
	}

	log.Printf("[INFO] Ticketmaster: %d events berhasil di-fetch", len(events))
	return events, nil
}

func (a *TicketmasterAdapter) fetchPage(ctx context.Context, page int) (*ticketmasterResponse, error) {
	params := url.Values{}
	params.Set("apikey", a.apiKey)
	params.Set("city", a.city)
	params.Set("stateCode", a.stateCode)
	params.Set("countryCode", a.countryCode)
	params.Set("radius", a.radius)
	params.Set("unit", "miles")
	params.Set("sort", "date,asc")
	params.Set("page", strconv.Itoa(page))
	params.Set("size", "200")
	params.Set("source", "ticketmaster")
	params.Set("includeTest", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.baseURL+"/events.json?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("status %d - %s", resp.StatusCode, string(body))
	}

	var out ticketmasterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// parseStart: precedence dateTime → localDate+localTime → localDate@19:00.
// Tanggal/jam lokal tanpa zona diinterpretasi sebagai UTC (referensi waktu
// tunggal untuk seluruh pipeline — lihat sync service).
func (a *TicketmasterAdapter) parseStart(d ticketmasterDate) (time.Time, error) {
	switch {
	case d.DateTime != "":
		t, err := time.Parse(time.RFC3339, d.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid dateTime %q: %w", d.DateTime, err)
		}
		return t.UTC(), nil
	case d.LocalDate != "" && d.LocalTime != "":
		t, err := time.Parse("2006-01-02T15:04:05", d.LocalDate+"T"+d.LocalTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid local date/time %q %q: %w", d.LocalDate, d.LocalTime, err)
		}
		return t.UTC(), nil
	case d.LocalDate != "":
		day, err := time.Parse("2006-01-02", d.LocalDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid localDate %q: %w", d.LocalDate, err)
		}
		return day.Add(ticketmasterDefaultStartHour * time.Hour), nil
	default:
		return time.Time{}, errors.New("invalid event date format")
	}
}

func (a *TicketmasterAdapter) transformEvent(ev ticketmasterEvent) (dto.CanonicalEvent, error) {
	startTime, err := a.parseStart(ev.Dates.Start)
	if err != nil {
		return dto.CanonicalEvent{}, err
	}

	var endTime time.Time
	if ev.Dates.End != nil {
		endTime, err = a.parseStart(*ev.Dates.End)
		if err != nil {
			endTime = time.Time{}
		}
	}
	if endTime.IsZero() {
		endTime = startTime.Add(ticketmasterDefaultEventDuration)
	}

	locationAddress := "Venue TBD"
	locationName := "TBD"
	var coordinates *dto.Coordinates

	if ev.Embedded != nil && len(ev.Embedded.Venues) > 0 {
		venue := ev.Embedded.Venues[0]
		locationName = venue.Name

		parts := []string{}
		if venue.Address != nil {
			for _, p := range []string{venue.Address.Line1, venue.Address.Line2} {
				if p != "" {
					parts = append(parts, p)
				}
			}
		}
		if venue.City != nil && venue.City.Name != "" {
			parts = append(parts, venue.City.Name)
		}
		if venue.State != nil && venue.State.Name != "" {
			parts = append(parts, venue.State.Name)
		}
		if venue.PostalCode != "" {
			parts = append(parts, venue.PostalCode)
		}
		if venue.Country != nil && venue.Country.Name != "" {
			parts = append(parts, venue.Country.Name)
		}
		if len(parts) > 0 {
			locationAddress = strings.Join(parts, ", ")
		}

		if loc := venue.Location; loc != nil && loc.Latitude != "" && loc.Longitude != "" {
			lat, errLat := strconv.ParseFloat(loc.Latitude, 64)
			lng, errLng := strconv.ParseFloat(loc.Longitude, 64)
			if errLat == nil && errLng == nil {
				coordinates = &dto.Coordinates{Lat: lat, Lng: lng}
			}
		}
	}

	// Attraction utama dipakai sebagai "organizer" (Ticketmaster tidak punya
	// konsep organizer terpisah).
	organizerInfo := dto.OrganizerInfo{
		Name:        "Ticketmaster Event",
		Description: strPtr("Event organized through Ticketmaster"),
	}
	if ev.Embedded != nil && len(ev.Embedded.Attractions) > 0 {
		organizerInfo.Name = ev.Embedded.Attractions[0].Name
		if ev.Embedded.Attractions[0].URL != "" {
			organizerInfo.Website = strPtr(ev.Embedded.Attractions[0].URL)
		}
	}

	var price *string
	currency := "USD"
	if len(ev.PriceRanges) > 0 {
		pr := ev.PriceRanges[0]
		if pr.Currency != "" {
			currency = pr.Currency
		}
		if pr.Min == pr.Max {
			price = strPtr(fmt.Sprintf("%g %s", pr.Min, currency))
		} else {
			price = strPtr(fmt.Sprintf("%g - %g %s", pr.Min, pr.Max, currency))
		}
	}
	ticketInfo := dto.TicketInfo{
		PurchaseURL: ev.URL,
		Price:       price,
		Currency:    strPtr(currency),
		IsFree:      price == nil || strings.HasPrefix(*price, "0 "),
	}

	// Ambil max 3 gambar terbaik (resolusi tertinggi dulu).
	imgs := make([]struct {
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}, 0, len(ev.Images))
	for _, img := range ev.Images {
		if img.URL != "" && img.Width > 0 && img.Height > 0 {
			imgs = append(imgs, img)
		}
	}
	sort.SliceStable(imgs, func(i, j int) bool {
		return imgs[i].Width*imgs[i].Height > imgs[j].Width*imgs[j].Height
	})
	if len(imgs) > 3 {
		imgs = imgs[:3]
	}
	var images []string
	for _, img := range imgs {
		images = append(images, img.URL)
	}

	category := a.classifyCategory(ev)

	description := ev.Info
	if description == "" {
		description = "No description available"
	}
	if ev.PleaseNote != "" {
		description += "\n\nPlease Note: " + ev.PleaseNote
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
		SourcePlatform: SourceTicketmaster,
		SourceEventID:  ev.ID,
		Category:       category,
		// Ticketmaster tidak mengekspos kapasitas venue
		Capacity:    nil,
		ExternalURL: strPtr(ev.URL),
	}
	if err := validate.Struct(&out); err != nil {
		return dto.CanonicalEvent{}, err
	}
	return out, nil
}

func (a *TicketmasterAdapter) classifyCategory(ev ticketmasterEvent) string {
	category := "Entertainment"
	if len(ev.Classifications) == 0 {
		return category
	}

	cls := ev.Classifications[0]
	for _, c := range ev.Classifications {
		if c.Primary {
			cls = c
			break
		}
	}

	if cls.Segment != nil {
		switch seg := strings.ToLower(cls.Segment.Name); {
		case strings.Contains(seg, "music"):
			category = "Music"
		case strings.Contains(seg, "sports"):
			category = "Sports"
		case strings.Contains(seg, "arts"), strings.Contains(seg, "theatre"):
			category = "Arts & Culture"
		case strings.Contains(seg, "film"):
			category = "Entertainment"
		}
	}

	// Genre mempertajam hasil segment kalau ada
	if cls.Genre != nil {
		genre := strings.ToLower(cls.Genre.Name)
		switch {
		case strings.Contains(genre, "rock"), strings.Contains(genre, "pop"),
			strings.Contains(genre, "jazz"), strings.Contains(genre, "classical"):
			category = "Music"
		case strings.Contains(genre, "comedy"):
			category = "Entertainment"
		}
	}
	return category
}
