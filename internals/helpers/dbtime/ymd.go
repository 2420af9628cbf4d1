// file: internals/helpers/dbtime/ymd.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Ymd = tanggal saja (YYYY-MM-DD), dipetakan ke kolom DATE di Postgres.
// Jam & zona dibuang; pasangan dari Tod untuk kolom DATE + TIME terpisah.
type Ymd struct{ time.Time }

// DateOf: ambil komponen tanggal dari time.Time, buang jam & zona.
func DateOf(t time.Time) Ymd {
	return Ymd{
		Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// ParseYmd: bikin Ymd dari string "YYYY-MM-DD"
func ParseYmd(s string) (Ymd, error) {
	var d Ymd
	return d, d.parse(s)
}

// Scan: terima time.Time (driver DATE) atau string "YYYY-MM-DD"
func (d *Ymd) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		d.Time = time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("ymd: unsupported Scan type %T", v)
	}
}

func (d *Ymd) parse(s string) error {
	s = strings.TrimSpace(s)
	// driver bisa mengirim "2006-01-02T00:00:00Z"; ambil bagian tanggalnya
	if len(s) > 10 {
		s = s[:10]
	}
	tt, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = tt
	return nil
}

// Value: kirim "YYYY-MM-DD" agar Postgres DATE paham
func (d Ymd) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d Ymd) String() string {
	return d.Time.Format("2006-01-02")
}

func (d Ymd) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Ymd) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}
