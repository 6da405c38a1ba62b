package article

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/szmeku/silesiaai"
)

// DefaultMinLength is the shortest content, in characters, accepted from a
// candidate. Error pages and consent walls are usually shorter.
const DefaultMinLength = 1000

// Source is the content produced by the first viable candidate.
type Source struct {
	Candidate silesiaai.SourceCandidate
	Content   string

	// Attempts counts the candidates tried, including the winner.
	Attempts int
}

// FirstViable tries candidates strictly one after another and returns the
// first whose content holds at least minLength characters. A candidate is
// only started once the previous one has resolved.
//
// When every candidate fails it returns ENOSOURCE wrapping the error of each
// attempt, tagged with the candidate name, in attempt order. The last one is
// the most recent cause. A cancelled context ends the loop with the context
// error.
func FirstViable(ctx context.Context, fetcher silesiaai.Fetcher, candidates []silesiaai.SourceCandidate, minLength int) (*Source, error) {
	var errs []error
	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := fetchCandidate(ctx, fetcher, c)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
			continue
		}

		if n := utf8.RuneCountInString(content); n < minLength {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name,
				silesiaai.Errorf(silesiaai.ESHORT, "content too short (%d < %d characters)", n, minLength)))
			continue
		}

		return &Source{Candidate: c, Content: content, Attempts: i + 1}, nil
	}

	target := ""
	if len(candidates) > 0 {
		target = candidates[0].URL
	}
	return nil, silesiaai.WrapErrorf(silesiaai.ENOSOURCE, errors.Join(errs...), "no viable source for %s after %d attempts", target, len(candidates))
}

func fetchCandidate(ctx context.Context, fetcher silesiaai.Fetcher, c silesiaai.SourceCandidate) (string, error) {
	body, err := fetcher.Fetch(ctx, c.RequestURL())
	if err != nil {
		return "", err
	}
	return c.Content(body)
}
