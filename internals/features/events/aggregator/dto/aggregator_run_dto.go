package dto

// 🔹 Laporan satu run aggregator. Bentuk JSON ini kontrak untuk scheduler/cron
// yang memanggil endpoint trigger — jangan diubah tanpa koordinasi.
type AggregatorRunResult struct {
	Success bool               `json:"success"`
	Stats   AggregatorRunStats `json:"stats"`
	Errors  []string           `json:"errors"`
}

type AggregatorRunStats struct {
	TotalFetched    int                    `json:"totalFetched"`
	TotalCreated    int                    `json:"totalCreated"`
	TotalUpdated    int                    `json:"totalUpdated"`
	SourceBreakdown map[string]SourceStats `json:"sourceBreakdown"`
}

type SourceStats struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
}

// NewAggregatorRunResult menyiapkan laporan kosong dengan koleksi non-nil
// supaya JSON-nya selalu {} / [] dan bukan null.
func NewAggregatorRunResult() AggregatorRunResult {
	return AggregatorRunResult{
		Success: true,
		Stats: AggregatorRunStats{
			SourceBreakdown: map[string]SourceStats{},
		},
		Errors: []string{},
	}
}
