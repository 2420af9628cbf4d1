package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategoryFromTopic(t *testing.T) {
	cases := []struct {
		topic string
		want  string
	}{
		{"Software Development", "Technology"},
		{"Tech Startups", "Technology"},
		{"Entrepreneur Network", "Business"},
		{"Creative Writing", "Arts & Culture"},
		{"Health & Fitness", "Sports"},
		{"Wine Lovers", "Food & Drink"},
		{"Live Music", "Music"},
		{"Board Games", "Other"},
		{"", "Other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inferCategoryFromTopic(tc.topic), "topic %q", tc.topic)
	}
}

func TestInferCategoryOrderIsDeterministic(t *testing.T) {
	// "tech" (Technology) dicek sebelum "business": topic yang match keduanya
	// selalu jatuh ke set pertama.
	assert.Equal(t, "Technology", inferCategoryFromTopic("Tech Business Mixer"))
}
