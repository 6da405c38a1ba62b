// Package silesiaai holds the domain of two small extraction pipelines:
// a Meetup listing extractor that reads events out of the state a Next.js
// page embeds for hydration, and a read-it-later article extractor that
// fetches an article through a chain of fallback sources and renders a
// self-contained document for an e-reader.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, bluemonday/).
package silesiaai
