package adapter

import (
	"context"
	"net/http"
	"time"

	"eventku_backend/internals/configs"
	"eventku_backend/internals/features/events/aggregator/dto"

	"github.com/go-playground/validator/v10"
)

// Nama sumber = namespace natural key di kolom event_source_platform.
// Sekali dipakai tidak boleh berubah.
const (
	SourceEventbrite   = "Eventbrite"
	SourceMeetup       = "Meetup"
	SourceTicketmaster = "Ticketmaster"
)

// EventAdapter: kontrak semua sumber upstream.
// FetchEvents selalu fetch ulang dari awal (tidak restartable) dan
// mengembalikan record yang SUDAH dinormalisasi + lolos validasi.
type EventAdapter interface {
	SourceName() string
	FetchEvents(ctx context.Context) ([]dto.CanonicalEvent, error)
}

// Factory menunda konstruksi adapter sampai run berjalan, supaya API key yang
// hilang tercatat per-sumber oleh orchestrator (bukan crash saat startup).
type Factory struct {
	Name string
	New  func() (EventAdapter, error)
}

// DefaultFactories: daftar sumber dalam urutan run yang tetap.
func DefaultFactories() []Factory {
	return []Factory{
		{Name: SourceEventbrite, New: func() (EventAdapter, error) {
			a, err := NewEventbriteAdapter(configs.EventbriteAPIKey)
			if err != nil {
				return nil, err
			}
			return a, nil
		}},
		{Name: SourceMeetup, New: func() (EventAdapter, error) {
			a, err := NewMeetupAdapter(configs.MeetupAPIKey)
			if err != nil {
				return nil, err
			}
			return a, nil
		}},
		{Name: SourceTicketmaster, New: func() (EventAdapter, error) {
			a, err := NewTicketmasterAdapter(configs.TicketmasterAPIKey)
			if err != nil {
				return nil, err
			}
			return a, nil
		}},
	}
}

// validate dipakai semua adapter: record hasil transform yang tidak lolos
// (judul kosong, tanggal zero, dst) dibuang satuan — bulkhead level record.
var validate = validator.New()

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 20 * time.Second}
}

// dedupByNaturalKey membuang duplikat (sourcePlatform, sourceEventId),
// occurrence pertama yang menang. Dipakai adapter yang fan-out
// (satu event bisa ketemu lewat lebih dari satu jalur query).
func dedupByNaturalKey(events []dto.CanonicalEvent) []dto.CanonicalEvent {
	seen := make(map[string]struct{}, len(events))
	out := events[:0]
	for _, ev := range events {
		key := ev.SourcePlatform + "\x00" + ev.SourceEventID
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ev)
	}
	return out
}

func strPtr(s string) *string { return &s }
