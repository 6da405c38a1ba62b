// Package meetup reads group event listings out of the Apollo state that
// meetup.com embeds in its server-rendered event pages.
package meetup

import (
	"encoding/json"
	"strings"

	"github.com/szmeku/silesiaai"
)

const (
	groupKeyPrefix      = "Group:"
	groupTypename       = "Group"
	collectionKeyPrefix = "events("
)

// The listing does not expose "past events of group X" directly. The Apollo
// cache instead encodes the query variables (filter, sort) into the field
// key, e.g. events({"filter":{"beforeDateTime":"..."},"sort":"DESC"}).
// A rule is a list of marker sets; a key satisfies the rule when it contains
// at least one marker of every set.
type keyRule [][]string

func (r keyRule) match(key string) bool {
	for _, anyOf := range r {
		found := false
		for _, marker := range anyOf {
			if strings.Contains(key, marker) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var collectionRules = map[silesiaai.ListingMode]keyRule{
	silesiaai.ListingPast: {
		{`"beforeDateTime"`, `PAST`},
	},
	silesiaai.ListingUpcoming: {
		{`"status":["ACTIVE"`, `"status":["UPCOMING"]`},
		{`"sort":"ASC"`},
	},
}

// groupHeader holds the fields used to identify a group record.
type groupHeader struct {
	Typename string `json:"__typename"`
	URLName  string `json:"urlname"`
}

// collection is a paginated edge list stored under an events(...) key.
type collection struct {
	Edges []silesiaai.Edge `json:"edges"`
}

// FindGroup returns the key and record of the group whose urlname equals
// slug, compared case-insensitively.
//
// Slugs are expected to be unique. When two records fold to the same slug
// the first in state order wins; this is a best-effort tie-break.
// Returns ENOENTITY when no group matches.
func FindGroup(state *silesiaai.EmbeddedState, slug string) (string, *silesiaai.Object, error) {
	for _, key := range state.Keys() {
		if !strings.HasPrefix(key, groupKeyPrefix) {
			continue
		}
		raw, _ := state.Raw(key)

		var hdr groupHeader
		if err := json.Unmarshal(raw, &hdr); err != nil {
			continue
		}
		if hdr.Typename != groupTypename || !strings.EqualFold(hdr.URLName, slug) {
			continue
		}

		var record silesiaai.Object
		if err := json.Unmarshal(raw, &record); err != nil {
			return "", nil, silesiaai.WrapErrorf(silesiaai.ESHAPE, err, "group %q is not an object", key)
		}
		return key, &record, nil
	}
	return "", nil, silesiaai.Errorf(silesiaai.ENOENTITY, "could not find group data for %s", slug)
}

// CollectionKey returns the first key of group, in state order, naming an
// events collection that satisfies mode's rule.
// Returns ENOCOLLECTION when no key qualifies and EINVALID for an unknown mode.
func CollectionKey(group *silesiaai.Object, mode silesiaai.ListingMode) (string, error) {
	rule, ok := collectionRules[mode]
	if !ok {
		return "", silesiaai.Errorf(silesiaai.EINVALID, "unknown listing mode %q", mode)
	}
	for _, key := range group.Keys() {
		if strings.HasPrefix(key, collectionKeyPrefix) && rule.match(key) {
			return key, nil
		}
	}
	return "", silesiaai.Errorf(silesiaai.ENOCOLLECTION, "could not find %s events key in response", mode)
}

// FindEdges locates the group identified by slug and returns the edges of
// its events collection for mode.
func FindEdges(state *silesiaai.EmbeddedState, slug string, mode silesiaai.ListingMode) ([]silesiaai.Edge, error) {
	_, group, err := FindGroup(state, slug)
	if err != nil {
		return nil, err
	}

	key, err := CollectionKey(group, mode)
	if err != nil {
		return nil, err
	}

	var coll collection
	if err := group.Decode(key, &coll); err != nil {
		return nil, err
	}
	return coll.Edges, nil
}
