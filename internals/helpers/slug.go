package helper

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

const (
	// Batas panjang slug event mengikuti skema DB (varchar(100)).
	EventSlugMaxLen = 100
	// Bagian judul dipotong dulu sebelum ditempel source event id.
	eventSlugTitleLen = 50
)

// Slugify mengubah teks bebas jadi slug [a-z0-9-], hilangkan diakritik,
// kompres "-", trim ujung, enforce maxLen (default 100 jika <=0), fallback "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diakritik (é → e, dll)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) { // mark nonspacing
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	// Keep [a-z0-9-]
	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	// Hard-limit panjang
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = string(rs[:maxLen])
		s = strings.Trim(s, "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// EventSlug membentuk slug event dari judul + source event id.
// Source event id ditempel supaya slug tetap unik walau judulnya kembar
// (dua konser dengan nama sama di platform berbeda, dst).
// Slug hanya dihitung sekali saat insert; update tidak boleh mengubah slug.
func EventSlug(title, sourceEventID string) string {
	base := Slugify(title, eventSlugTitleLen)
	s := base + "-" + sourceEventID
	if utf8.RuneCountInString(s) > EventSlugMaxLen {
		rs := []rune(s)
		s = string(rs[:EventSlugMaxLen])
		s = strings.Trim(s, "-")
	}
	return s
}
