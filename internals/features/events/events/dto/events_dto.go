package dto

import (
	"eventku_backend/internals/features/events/events/model"

	"github.com/google/uuid"
)

// 🔹 Response untuk menampilkan event hasil agregasi
type EventResponse struct {
	EventID              uuid.UUID `json:"event_id"`
	EventTitle           string    `json:"event_title"`
	EventSlug            string    `json:"event_slug"`
	EventDescription     string    `json:"event_description"`
	EventStartDate       string    `json:"event_start_date"`
	EventEndDate         string    `json:"event_end_date"`
	EventStartTime       string    `json:"event_start_time"`
	EventEndTime         string    `json:"event_end_time"`
	EventLocationName    string    `json:"event_location_name"`
	EventLocationAddress string    `json:"event_location_address"`
	EventCategoryID      uuid.UUID `json:"event_category_id"`
	EventOrganizerID     uuid.UUID `json:"event_organizer_id"`
	EventStatus          string    `json:"event_status"`
	EventCapacity        *int      `json:"event_capacity,omitempty"`
	EventSourcePlatform  string    `json:"event_source_platform"`
	EventExternalURL     *string   `json:"event_external_url,omitempty"`
	EventTicketURL       string    `json:"event_ticket_url"`
	EventCreatedAt       string    `json:"event_created_at"`
}

// 🔄 Konversi dari model → response
func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:              m.EventID,
		EventTitle:           m.EventTitle,
		EventSlug:            m.EventSlug,
		EventDescription:     m.EventDescription,
		EventStartDate:       m.EventStartDate.String(),
		EventEndDate:         m.EventEndDate.String(),
		EventStartTime:       m.EventStartTime.String(),
		EventEndTime:         m.EventEndTime.String(),
		EventLocationName:    m.EventLocationName,
		EventLocationAddress: m.EventLocationAddress,
		EventCategoryID:      m.EventCategoryID,
		EventOrganizerID:     m.EventOrganizerID,
		EventStatus:          m.EventStatus,
		EventCapacity:        m.EventCapacity,
		EventSourcePlatform:  m.EventSourcePlatform,
		EventExternalURL:     m.EventExternalURL,
		EventTicketURL:       m.EventExternalTicketURL,
		EventCreatedAt:       m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToEventResponse(&models[i]))
	}
	return result
}
