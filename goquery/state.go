// Package goquery locates data embedded in server-rendered pages using
// goquery and walks the embedded JSON with gjson.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/szmeku/silesiaai"
	"github.com/tidwall/gjson"
)

// NextDataSelector matches the script block Next.js serializes page props into.
const NextDataSelector = `script#__NEXT_DATA__[type="application/json"]`

// ApolloStatePath is the gjson path from the payload root to the Apollo cache.
const ApolloStatePath = "props.pageProps.__APOLLO_STATE__"

// LocateState finds the __NEXT_DATA__ block in html and returns the Apollo
// state found at props.pageProps.__APOLLO_STATE__.
//
// Returns ENOSTATE when the block is missing, EMALFORMED when its payload is
// not JSON, and ESHAPE when the state is not at the expected path.
func LocateState(html string) (*silesiaai.EmbeddedState, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, silesiaai.WrapErrorf(silesiaai.EINVALID, err, "failed to parse HTML")
	}

	script := doc.Find(NextDataSelector).First()
	if script.Length() == 0 {
		return nil, silesiaai.Errorf(silesiaai.ENOSTATE, "could not find __NEXT_DATA__ script tag")
	}

	payload := script.Text()
	if !gjson.Valid(payload) {
		return nil, silesiaai.Errorf(silesiaai.EMALFORMED, "__NEXT_DATA__ is not valid JSON")
	}

	apollo := gjson.Get(payload, ApolloStatePath)
	if !apollo.Exists() || apollo.Type == gjson.Null {
		return nil, silesiaai.Errorf(silesiaai.ESHAPE, "%s not found", ApolloStatePath)
	}
	if !apollo.IsObject() {
		return nil, silesiaai.Errorf(silesiaai.ESHAPE, "__APOLLO_STATE__ is not an object")
	}

	var state silesiaai.EmbeddedState
	if err := state.UnmarshalJSON([]byte(apollo.Raw)); err != nil {
		return nil, silesiaai.WrapErrorf(silesiaai.ESHAPE, err, "decoding __APOLLO_STATE__")
	}
	return &state, nil
}
