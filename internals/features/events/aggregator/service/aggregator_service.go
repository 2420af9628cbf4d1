package service

import (
	"context"
	"fmt"
	"log"

	"eventku_backend/internals/features/events/aggregator/adapter"
	"eventku_backend/internals/features/events/aggregator/dto"

	"gorm.io/gorm"
)

// AggregatorService = orchestrator satu run: jalankan semua sumber berurutan
// (sengaja TIDAK paralel — find-or-create di resolver belum aman untuk
// eksekusi concurrent, dan rate ceiling per sumber harus dihormati).
type AggregatorService struct {
	sync      *SyncService
	factories []adapter.Factory
}

func NewAggregatorService(db *gorm.DB, factories []adapter.Factory) *AggregatorService {
	return &AggregatorService{
		sync:      NewSyncService(db),
		factories: factories,
	}
}

// Run memproses setiap sumber dalam urutan deklarasi.
// Bulkhead level sumber: satu sumber gagal (fetch error / credential hilang)
// dicatat sebagai satu error, counter nol, sumber berikutnya tetap jalan.
// Error dikembalikan HANYA untuk kegagalan konfigurasi sebelum sumber
// pertama diproses — itu satu-satunya kasus run dianggap gagal total.
func (s *AggregatorService) Run(ctx context.Context) (dto.AggregatorRunResult, error) {
	log.Println("[INFO] Starting Event Aggregator run...")

	result := dto.NewAggregatorRunResult()

	for i, factory := range s.factories {
		sourceName := factory.Name
		log.Printf("[INFO] Processing %s...", sourceName)

		ad, err := factory.New()
		if err != nil {
			if i == 0 {
				// belum ada sumber yang diproses → fatal config error
				return dto.AggregatorRunResult{}, err
			}
			s.recordSourceFailure(&result, sourceName, err)
			continue
		}

		events, err := ad.FetchEvents(ctx)
		if err != nil {
			s.recordSourceFailure(&result, sourceName, err)
			continue
		}
		log.Printf("[INFO] Fetched %d events from %s", len(events), sourceName)

		syncRes := s.sync.SyncEvents(ctx, events, sourceName)

		result.Stats.TotalFetched += len(events)
		result.Stats.TotalCreated += syncRes.Created
		result.Stats.TotalUpdated += syncRes.Updated
		result.Stats.SourceBreakdown[sourceName] = dto.SourceStats{
			Fetched: len(events),
			Created: syncRes.Created,
			Updated: syncRes.Updated,
			Errors:  len(syncRes.Errors),
		}
		// error per-event masuk daftar flat, tapi TIDAK membalik success
		result.Errors = append(result.Errors, syncRes.Errors...)

		log.Printf("[INFO] %s: %d created, %d updated", sourceName, syncRes.Created, syncRes.Updated)
	}

	log.Printf("[INFO] Event Aggregator run completed: %d fetched, %d created, %d updated",
		result.Stats.TotalFetched, result.Stats.TotalCreated, result.Stats.TotalUpdated)
	return result, nil
}

func (s *AggregatorService) recordSourceFailure(result *dto.AggregatorRunResult, sourceName string, err error) {
	msg := fmt.Sprintf("Error processing %s: %v", sourceName, err)
	log.Printf("[ERROR] %s", msg)
	result.Errors = append(result.Errors, msg)
	result.Stats.SourceBreakdown[sourceName] = dto.SourceStats{Errors: 1}
	result.Success = false
}
