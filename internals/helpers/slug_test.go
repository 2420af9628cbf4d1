package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"basic", "Live Music & Arts Festival!!", 100, "live-music-arts-festival"},
		{"diakritik dibuang", "Café Ñoño Señorita", 100, "cafe-nono-senorita"},
		{"spasi & simbol collapse", "  hello   world -- again  ", 100, "hello-world-again"},
		{"kosong fallback", "", 100, "item"},
		{"hanya simbol fallback", "!!! ???", 100, "item"},
		{"maxLen dipotong", "abcdefghij", 5, "abcde"},
		{"trim hyphen setelah potong", "abcd-fghij", 5, "abcd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in, tc.maxLen))
		})
	}
}

func TestEventSlug(t *testing.T) {
	assert.Equal(t, "live-music-arts-festival-12345",
		EventSlug("Live Music & Arts Festival!!", "12345"))

	// Judul panjang dipotong ke 50 dulu, baru ditempel id.
	longTitle := strings.Repeat("konser-", 20) // 140 char
	got := EventSlug(longTitle, "ev99")
	assert.True(t, strings.HasSuffix(got, "-ev99"))
	assert.LessOrEqual(t, len(got), EventSlugMaxLen)

	// Hasil akhir tidak pernah melebihi varchar(100).
	longID := strings.Repeat("9", 120)
	got = EventSlug("Tech Meetup", longID)
	assert.LessOrEqual(t, len(got), EventSlugMaxLen)
}

func TestEventSlugStableForSameInput(t *testing.T) {
	a := EventSlug("Jazz Night", "abc-123")
	b := EventSlug("Jazz Night", "abc-123")
	assert.Equal(t, a, b)
}
