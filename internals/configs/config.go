package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// API key per sumber eksternal. Dibaca sekali di LoadEnv,
	// lalu dioper eksplisit ke konstruktor adapter (bukan lookup global diam-diam).
	EventbriteAPIKey   string
	MeetupAPIKey       string
	TicketmasterAPIKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	EventbriteAPIKey = GetEnv("EVENTBRITE_API_KEY")
	MeetupAPIKey = GetEnv("MEETUP_API_KEY")
	TicketmasterAPIKey = GetEnv("TICKETMASTER_API_KEY")

	for _, it := range []struct{ key, val string }{
		{"EVENTBRITE_API_KEY", EventbriteAPIKey},
		{"MEETUP_API_KEY", MeetupAPIKey},
		{"TICKETMASTER_API_KEY", TicketmasterAPIKey},
	} {
		if it.val == "" {
			log.Printf("❌ %s belum diset! Sumber terkait akan gagal saat run.", it.key)
		} else {
			log.Printf("✅ %s berhasil dimuat.", it.key)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
