package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/article"
	"github.com/szmeku/silesiaai/bluemonday"
	"github.com/szmeku/silesiaai/htmltomarkdown"
	silhttp "github.com/szmeku/silesiaai/http"
	"github.com/szmeku/silesiaai/meetup"
	"github.com/szmeku/silesiaai/prometheus"
	"github.com/szmeku/silesiaai/readability"
	"github.com/szmeku/silesiaai/rod"
	silslog "github.com/szmeku/silesiaai/slog"
	"github.com/szmeku/silesiaai/trafilatura"
	"github.com/szmeku/silesiaai/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files whose values preset flags. Missing files
	// are ignored.
	ConfigPaths []string

	// Fetcher replaces the network fetchers. Set for end-to-end testing.
	Fetcher silesiaai.Fetcher

	// MeetupBaseURL replaces meetup.DefaultBaseURL when set.
	MeetupBaseURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{"~/.config/silesiaai/config.yaml"},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("silesiaai"),
		kong.Description("Scrape Meetup group events and turn articles into e-reader documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(yaml.Loader, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'silesiaai --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var metrics *prometheus.Metrics
	if cli.MetricsFile != "" {
		metrics = prometheus.NewMetrics()
	}

	switch command := strings.Fields(kongCtx.Command())[0]; command {
	case "events":
		fetcher := m.fetcher(cli, silhttp.DefaultAccept, metrics, deps.Logger)
		defer fetcher.Close()

		opts := []meetup.Option{meetup.WithLogger(deps.Logger)}
		if m.MeetupBaseURL != "" {
			opts = append(opts, meetup.WithBaseURL(m.MeetupBaseURL))
		}
		client := meetup.NewClient(fetcher, opts...)
		deps.Events = meetup.NewLister(silslog.NewLoggingEventSource(client, deps.Logger), deps.Logger)
		deps.ListingURL = client.ListingURL

	case "article":
		fetcher, err := m.articleFetcher(cli, metrics, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		sanitizer := bluemonday.NewSanitizer()
		pipeline := article.NewPipeline(fetcher, newExtractor(&cli.Article), sanitizer, bluemonday.NewRenderer(sanitizer),
			article.WithSelector(article.NewSelector(cli.Article.Strategies()...)),
			article.WithMinLength(cli.Article.MinLength),
		)

		deps.Articles = silslog.NewLoggingArticleSource(pipeline, deps.Logger)
		deps.Converter = htmltomarkdown.NewConverter()
	}

	runErr := kongCtx.Run(deps)

	if metrics != nil {
		if err := metrics.WriteTextfile(cli.MetricsFile); err != nil {
			deps.Logger.Error("writing metrics", "path", cli.MetricsFile, "err", err)
		}
	}
	return runErr
}

// fetcher returns the plain HTTP fetcher wrapped with metrics and logging.
func (m *Main) fetcher(cli *CLI, accept string, metrics *prometheus.Metrics, logger *slog.Logger) silesiaai.Fetcher {
	var f silesiaai.Fetcher = m.Fetcher
	if f == nil {
		opts := []silhttp.Option{silhttp.WithTimeout(cli.Timeout), silhttp.WithAccept(accept)}
		if cli.UserAgent != "" {
			opts = append(opts, silhttp.WithUserAgent(cli.UserAgent))
		}
		f = silhttp.NewFetcher(opts...)
	}
	return decorate(f, metrics, logger)
}

// articleFetcher returns a browser-backed fetcher when --browser is set.
func (m *Main) articleFetcher(cli *CLI, metrics *prometheus.Metrics, logger *slog.Logger) (silesiaai.Fetcher, error) {
	if !cli.Article.Browser || m.Fetcher != nil {
		return m.fetcher(cli, articleAccept, metrics, logger), nil
	}

	opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout), rod.WithStealth(cli.Article.Stealth)}
	if cli.UserAgent != "" {
		opts = append(opts, rod.WithUserAgent(cli.UserAgent))
	}
	f, err := rod.NewFetcher(opts...)
	if err != nil {
		return nil, err
	}
	return decorate(f, metrics, logger), nil
}

func decorate(f silesiaai.Fetcher, metrics *prometheus.Metrics, logger *slog.Logger) silesiaai.Fetcher {
	if metrics != nil {
		f = prometheus.NewFetcher(f, metrics)
	}
	return silslog.NewLoggingFetcher(f, logger)
}

// articleAccept also admits the JSON envelopes some proxies answer with.
const articleAccept = "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8"

func newExtractor(c *ArticleCmd) silesiaai.Extractor {
	if c.Extractor == "trafilatura" {
		return trafilatura.NewExtractor(trafilatura.WithImages())
	}
	return readability.NewExtractor(
		readability.WithCharThreshold(c.CharThreshold),
		readability.WithClassesToPreserve(c.PreserveClass...),
	)
}
