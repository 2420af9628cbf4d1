package adapter

import "strings"

// Inferensi kategori untuk sumber yang tidak punya field kategori eksplisit
// (Meetup hanya punya topics). Daftar dicek berurutan supaya hasil
// deterministik; di dalam satu set, urutan keyword tidak berpengaruh
// (cukup salah satu cocok).
var topicCategoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{"Technology", []string{"tech", "programming", "software"}},
	{"Business", []string{"business", "networking", "entrepreneur"}},
	{"Arts & Culture", []string{"art", "creative", "design"}},
	{"Sports", []string{"fitness", "sport", "health"}},
	{"Food & Drink", []string{"food", "cooking", "wine"}},
	{"Music", []string{"music", "concert", "dance"}},
}

const defaultCategory = "Other"

// inferCategoryFromTopic memetakan nama topic bebas ke kategori.
// Tidak ketemu → "Other".
func inferCategoryFromTopic(topicName string) string {
	name := strings.ToLower(topicName)
	for _, set := range topicCategoryKeywords {
		for _, kw := range set.Keywords {
			if strings.Contains(name, kw) {
				return set.Category
			}
		}
	}
	return defaultCategory
}
