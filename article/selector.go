// Package article retrieves an article through an ordered chain of source
// candidates, extracts its readable content and renders it for delivery.
package article

import (
	"encoding/json"
	"net/url"

	"github.com/szmeku/silesiaai"
)

// Strategy turns a target URL into one source candidate.
type Strategy func(target string) silesiaai.SourceCandidate

// Direct requests the target itself.
func Direct() Strategy {
	return func(target string) silesiaai.SourceCandidate {
		return silesiaai.SourceCandidate{Name: "direct", URL: target}
	}
}

// Prefix requests the target through a proxy that takes the full target URL
// appended to its base, as CORS proxies do.
func Prefix(name, base string) Strategy {
	return func(target string) silesiaai.SourceCandidate {
		return silesiaai.SourceCandidate{
			Name: name,
			URL:  target,
			Endpoint: func(target string) string {
				return base + target
			},
		}
	}
}

// AllOrigins requests the target through an allorigins-style endpoint that
// answers with {"contents": "<markup>"}. endpoint is the API root, e.g.
// https://api.allorigins.win/get.
func AllOrigins(endpoint string) Strategy {
	return func(target string) silesiaai.SourceCandidate {
		return silesiaai.SourceCandidate{
			Name: "allorigins",
			URL:  target,
			Endpoint: func(target string) string {
				return endpoint + "?url=" + url.QueryEscape(target)
			},
			Decode: decodeContents,
		}
	}
}

// WaybackBaseURL serves the most recent Internet Archive snapshot of the
// URL appended to it.
const WaybackBaseURL = "https://web.archive.org/web/2/"

// Wayback requests the latest Wayback Machine snapshot of the target.
func Wayback() Strategy {
	return func(target string) silesiaai.SourceCandidate {
		return silesiaai.SourceCandidate{
			Name: "wayback",
			URL:  target,
			Endpoint: func(target string) string {
				return WaybackBaseURL + target
			},
		}
	}
}

func decodeContents(body string) (string, error) {
	var envelope struct {
		Contents *string `json:"contents"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "decoding proxy response")
	}
	if envelope.Contents == nil {
		return "", silesiaai.Errorf(silesiaai.EFETCH, "proxy response has no contents")
	}
	return *envelope.Contents, nil
}

// Selector builds the ordered candidate list for a target URL.
type Selector struct {
	strategies []Strategy
}

// NewSelector returns a Selector applying strategies in order. With no
// strategies it uses DefaultStrategies.
func NewSelector(strategies ...Strategy) *Selector {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Selector{strategies: strategies}
}

// DefaultStrategies tries the page itself, then its archived copy.
func DefaultStrategies() []Strategy {
	return []Strategy{Direct(), Wayback()}
}

// Candidates validates target and returns one candidate per strategy.
// Returns EINVALID unless target is an absolute http or https URL.
func (s *Selector) Candidates(target string) ([]silesiaai.SourceCandidate, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, silesiaai.WrapErrorf(silesiaai.EINVALID, err, "invalid URL %q", target)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, silesiaai.Errorf(silesiaai.EINVALID, "URL %q must be absolute http(s)", target)
	}

	candidates := make([]silesiaai.SourceCandidate, 0, len(s.strategies))
	for _, strategy := range s.strategies {
		candidates = append(candidates, strategy(target))
	}
	return candidates, nil
}
