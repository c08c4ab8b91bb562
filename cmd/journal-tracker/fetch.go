package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-tracker/internal/export"
	"github.com/pdiddy/journal-tracker/internal/fetch"
	"github.com/pdiddy/journal-tracker/internal/journals"
	"github.com/pdiddy/journal-tracker/internal/output"
	"github.com/pdiddy/journal-tracker/internal/secrets"
	"github.com/pdiddy/journal-tracker/internal/tracker"
	"github.com/pdiddy/journal-tracker/pkg/types"
)

// Accepted ranges for the fetch parameters.
const (
	minYears      = 1
	maxYears      = 20
	minMaxResults = 10
	maxMaxResults = 200
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch recent articles for the selected journals",
	Long: `Fetch queries the metadata API once per selected journal for articles
published within the lookback window, keeps those whose title, abstract or
concepts contain the keyword, and writes them in the chosen format.

A journal that fails is reported as a warning; the remaining journals are
still fetched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := fetchOptionsFromConfig(cmd)
		if err != nil {
			return err
		}
		dir, err := loadDirectory(opts.cfg.JournalsFile)
		if err != nil {
			return err
		}
		if !opts.journalsSet {
			opts.journals = dir.Names()
		}

		baseUA := opts.cfg.UserAgent
		if baseUA == "" {
			baseUA = "journal-tracker/" + version
		}
		src, err := fetch.NewSource(opts.cfg.Provider,
			fetch.NewHTTPClient(opts.cfg.Timeout),
			fetch.UserAgent(baseUA, opts.cfg.Mailto),
			logger)
		if err != nil {
			return err
		}
		return runFetch(cmd.Context(), opts, dir, src, printer)
	},
}

// fetchOptions is the resolved configuration of one fetch invocation.
type fetchOptions struct {
	cfg         types.FetchConfig
	journals    []string
	journalsSet bool
	format      export.Format
	output      string
}

func fetchOptionsFromConfig(cmd *cobra.Command) (fetchOptions, error) {
	format, err := export.ParseFormat(viper.GetString("format"))
	if err != nil {
		return fetchOptions{}, err
	}

	opts := fetchOptions{
		cfg: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("timeout"),
				UserAgent: viper.GetString("user_agent"),
			},
			Provider:      viper.GetString("provider"),
			Keyword:       viper.GetString("keyword"),
			LookbackYears: viper.GetInt("years"),
			MaxResults:    viper.GetInt("max_results"),
			Mailto:        loadedSecrets.Or(secrets.ContactEmail, strings.TrimSpace(viper.GetString("mailto"))),
			JournalsFile:  viper.GetString("journals_file"),
		},
		format: format,
		output: viper.GetString("output"),
	}

	if cmd.Flags().Changed("journal") || viper.IsSet("journals") {
		opts.journalsSet = true
		for _, j := range viper.GetStringSlice("journals") {
			if j = strings.TrimSpace(j); j != "" {
				opts.journals = append(opts.journals, j)
			}
		}
	}

	if err := validateRanges(opts.cfg); err != nil {
		return fetchOptions{}, err
	}
	return opts, nil
}

func validateRanges(cfg types.FetchConfig) error {
	if cfg.LookbackYears < minYears || cfg.LookbackYears > maxYears {
		return fmt.Errorf("--years must be between %d and %d, got %d", minYears, maxYears, cfg.LookbackYears)
	}
	if cfg.MaxResults < minMaxResults || cfg.MaxResults > maxMaxResults {
		return fmt.Errorf("--max-results must be between %d and %d, got %d", minMaxResults, maxMaxResults, cfg.MaxResults)
	}
	return nil
}

// runFetch executes the batch and writes the result. Only precondition
// and output errors are returned; per-journal failures become warnings.
func runFetch(ctx context.Context, opts fetchOptions, dir journals.Directory, src fetch.Source, p *output.Printer) error {
	tr := tracker.New(dir, src,
		tracker.WithLogger(logger),
		tracker.WithProgress(func(done, total int, journal string, err error) {
			if err != nil {
				p.Warning("%s fetch failed: %v", journal, err)
			}
			p.Progress(done, total, journal, err != nil)
		}),
	)

	req := tracker.Request{
		Journals:      opts.journals,
		Keyword:       opts.cfg.Keyword,
		LookbackYears: opts.cfg.LookbackYears,
		MaxResults:    opts.cfg.MaxResults,
		Mailto:        opts.cfg.Mailto,
	}
	if err := tr.Validate(req); err != nil {
		return err
	}

	p.Info("Fetching %d journal(s) from %s; this may take a while.", len(req.Journals), src.Name())
	batch, err := tr.Fetch(ctx, req)
	if err != nil {
		return err
	}

	articles := batch.Articles()
	if len(articles) == 0 {
		p.Info("No articles found. Try another keyword or a longer lookback window.")
		return nil
	}
	p.Success("Fetched %d articles", len(articles))

	return writeArticles(opts, articles, p)
}

func writeArticles(opts fetchOptions, articles []types.Article, p *output.Printer) error {
	path := opts.output
	if path == "" && opts.format == export.FormatCSV {
		path = export.DefaultCSVFile
	}

	var w io.Writer = p.Out()
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, opts.format, articles); err != nil {
		return fmt.Errorf("writing %s output: %w", opts.format, err)
	}
	if path != "" && path != "-" {
		p.Success("Wrote %s", path)
	}
	return nil
}

func init() {
	f := fetchCmd.Flags()
	f.StringSlice("journal", nil, "journal name to fetch (repeatable; default: all journals)")
	f.String("keyword", "behavioral economics", "keyword matched against title, abstract and concepts (empty disables filtering)")
	f.Int("years", 10, "lookback window in years (1-20)")
	f.Int("max-results", 50, "maximum results per journal (10-200)")
	f.String("mailto", "", "contact email sent to the API (optional)")
	f.String("provider", fetch.ProviderOpenAlex, "metadata API: openalex or crossref")
	f.String("format", string(export.FormatTable), "output format: table, csv, json, or csl")
	f.StringP("output", "o", "", "output file (csv defaults to "+export.DefaultCSVFile+"; - for stdout)")
	f.Duration("timeout", types.DefaultTimeout, "per-request HTTP timeout")
	f.String("user-agent", "", "User-Agent header (default journal-tracker/<version>)")

	for key, flag := range map[string]string{
		"journals":    "journal",
		"keyword":     "keyword",
		"years":       "years",
		"max_results": "max-results",
		"mailto":      "mailto",
		"provider":    "provider",
		"format":      "format",
		"output":      "output",
		"timeout":     "timeout",
		"user_agent":  "user-agent",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(fetchCmd)
}
