package dto

import "time"

// 🔹 CanonicalEvent: bentuk ternormalisasi yang WAJIB dihasilkan semua adapter.
// StartTime/EndTime selalu sudah dinormalisasi ke UTC oleh adapter;
// seluruh dekomposisi tanggal/jam di service juga pakai UTC.
type CanonicalEvent struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	StartTime   time.Time `json:"startTime"   validate:"required"`
	EndTime     time.Time `json:"endTime"     validate:"required"`

	// Urutan gambar signifikan: index 0 = primary.
	Images []string `json:"images"`

	Location      CanonicalLocation `json:"location"`
	OrganizerInfo OrganizerInfo     `json:"organizerInfo"`
	TicketInfo    TicketInfo        `json:"ticketInfo"`

	// Natural key lintas run: pasangan (sourcePlatform, sourceEventId)
	// harus stabil untuk record upstream yang sama.
	SourcePlatform string `json:"sourcePlatform" validate:"required"`
	SourceEventID  string `json:"sourceEventId"  validate:"required"`

	// Label bebas; dinormalisasi belakangan oleh category resolver.
	Category string `json:"category"`

	Capacity    *int    `json:"capacity,omitempty"`
	ExternalURL *string `json:"externalUrl,omitempty"`
}

type CanonicalLocation struct {
	Address     string       `json:"address"`
	Name        string       `json:"name,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OrganizerInfo struct {
	Name        string  `json:"name" validate:"required"`
	Contact     *string `json:"contact"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
}

type TicketInfo struct {
	PurchaseURL string  `json:"purchaseUrl"`
	Price       *string `json:"price"`
	Currency    *string `json:"currency"`
	IsFree      bool    `json:"isFree"`
}
