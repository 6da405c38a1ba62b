package main

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/alecthomas/kong"
	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/article"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Events     silesiaai.EventLister
	ListingURL func(group string, mode silesiaai.ListingMode) string

	Articles  silesiaai.ArticleSource
	Converter silesiaai.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      kong.ConfigFlag `help:"Load flag defaults from this YAML file"`
	Timeout     time.Duration   `default:"10s" env:"SILESIAAI_TIMEOUT" help:"Timeout for each page fetch"`
	UserAgent   string          `name:"user-agent" env:"SILESIAAI_USER_AGENT" help:"Override the User-Agent header"`
	Verbose     bool            `short:"v" env:"SILESIAAI_VERBOSE" help:"Log every fetch"`
	MetricsFile string          `name:"metrics-file" env:"SILESIAAI_METRICS_FILE" help:"Write Prometheus textfile metrics to this path"`

	Events  EventsCmd  `cmd:"" help:"List the events of a Meetup group"`
	Article ArticleCmd `cmd:"" help:"Extract an article into a readable document"`
}

// EventsCmd is the "events" subcommand.
type EventsCmd struct {
	Group  string `arg:"" help:"Meetup group slug, e.g. silesia-ai"`
	Mode   string `short:"m" default:"past" enum:"past,upcoming,all" help:"Which listing to read (past, upcoming, all)"`
	Format string `short:"f" default:"text" enum:"text,json,ics,atom" help:"Output format (text, json, ics, atom)"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL           string   `arg:"" help:"Article URL"`
	Title         string   `short:"t" help:"Use this title instead of the extracted one"`
	Format        string   `short:"f" default:"html" enum:"html,markdown" help:"Output format (html, markdown)"`
	Out           string   `short:"o" type:"path" help:"Write the document into this directory instead of stdout"`
	Extractor     string   `default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
	Browser       bool     `help:"Fetch with headless Chrome"`
	Stealth       bool     `help:"Hide browser automation from bot checks (with --browser)"`
	Proxy         []string `help:"Prefix proxy tried after the direct fetch (repeatable)"`
	AllOrigins    string   `name:"allorigins" help:"allorigins-compatible JSON proxy endpoint"`
	Archive       bool     `default:"true" negatable:"" help:"Fall back to the Wayback Machine copy"`
	MinLength     int      `name:"min-length" default:"1000" help:"Minimum characters for a fetched page to be accepted"`
	CharThreshold int      `name:"char-threshold" default:"500" help:"Minimum characters of an extracted article"`
	PreserveClass []string `name:"preserve-class" help:"CSS class kept on extracted elements (repeatable)"`
}

// Strategies returns the candidate strategies in fallback order: direct,
// prefix proxies, the JSON proxy, then the web archive.
func (c *ArticleCmd) Strategies() []article.Strategy {
	strategies := []article.Strategy{article.Direct()}
	for _, p := range c.Proxy {
		name := "proxy"
		if u, err := url.Parse(p); err == nil && u.Host != "" {
			name = "proxy:" + u.Host
		}
		strategies = append(strategies, article.Prefix(name, p))
	}
	if c.AllOrigins != "" {
		strategies = append(strategies, article.AllOrigins(c.AllOrigins))
	}
	if c.Archive {
		strategies = append(strategies, article.Wayback())
	}
	return strategies
}
