package silesiaai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szmeku/silesiaai"
)

func TestParseListingMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want silesiaai.ListingMode
	}{
		{"past", silesiaai.ListingPast},
		{"PAST", silesiaai.ListingPast},
		{" upcoming ", silesiaai.ListingUpcoming},
	}
	for _, tt := range tests {
		got, err := silesiaai.ParseListingMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := silesiaai.ParseListingMode("soon")
	assert.Equal(t, silesiaai.EINVALID, silesiaai.ErrorCode(err))
}

func TestVenue_Location(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hub, Katowice", (&silesiaai.Venue{Name: "Hub", City: "Katowice"}).Location())
	assert.Equal(t, "Hub", (&silesiaai.Venue{Name: "Hub"}).Location())

	var v *silesiaai.Venue
	assert.Empty(t, v.Location())
}

func TestSourceCandidate(t *testing.T) {
	t.Parallel()

	direct := silesiaai.SourceCandidate{Name: "direct", URL: "https://example.com/a"}
	assert.Equal(t, "https://example.com/a", direct.RequestURL())
	body, err := direct.Content("<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", body)

	proxied := silesiaai.SourceCandidate{
		Name:     "proxy",
		URL:      "https://example.com/a",
		Endpoint: func(target string) string { return "https://proxy.test/" + target },
		Decode:   func(body string) (string, error) { return "decoded:" + body, nil },
	}
	assert.Equal(t, "https://proxy.test/https://example.com/a", proxied.RequestURL())
	body, err = proxied.Content("raw")
	require.NoError(t, err)
	assert.Equal(t, "decoded:raw", body)
}
