package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "punctuation and spaces become hyphens",
			title: "Hello, World! 2024",
			want:  "hello--world--2024",
		},
		{
			name:  "leading and trailing whitespace trimmed",
			title: "  Plain Title  ",
			want:  "plain-title",
		},
		{
			name:  "uppercase lowered",
			title: "GOLANG",
			want:  "golang",
		},
		{
			name:  "run of symbols collapses to one hyphen",
			title: "a&&&b",
			want:  "a-b",
		},
		{
			name:  "truncated to 32 bytes",
			title: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			want:  "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_OutputAlphabet(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)

	titles := []string{
		"Hello, World! 2024",
		"¿Qué tal?",
		"tabs\tand\nnewlines",
		"--already-slug-shaped--",
		"#####",
	}
	for _, title := range titles {
		got := Slugify(title)
		require.True(t, valid.MatchString(got), "slug %q for title %q", got, title)
		require.LessOrEqual(t, len(got), 32)
	}
}

func TestSlugify_IdempotentOnSlugShapedInput(t *testing.T) {
	for _, title := range []string{"plain-title", "a-b", "golang", "x2-y3-z4"} {
		require.Equal(t, title, Slugify(title))
	}

	// Runs of hyphens collapse, so a second application stabilizes.
	for _, title := range []string{"Hello, World! 2024", "a&&&b", "  Mixed -- Input  "} {
		once := Slugify(title)
		require.Equal(t, Slugify(once), Slugify(Slugify(once)))
	}
}
