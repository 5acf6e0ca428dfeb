package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qepting91/reddit-viewer/internal/collector"
	"github.com/qepting91/reddit-viewer/internal/config"
	"github.com/qepting91/reddit-viewer/internal/ingest"
	"github.com/qepting91/reddit-viewer/internal/present"
	"github.com/qepting91/reddit-viewer/internal/render"
	"github.com/qepting91/reddit-viewer/internal/summarize"
	"github.com/qepting91/reddit-viewer/internal/viewer"
	"github.com/spf13/cobra"
)

var (
	flagTextOnly  bool
	flagSummarize bool
	flagJSON      bool
	flagForums    string
	flagMode      string
)

var rootCmd = &cobra.Command{
	Use:   "reddit-viewer",
	Short: "Show one random hot post from a rotating set of subreddits",
	Long: `reddit-viewer shuffles a catalogue of subreddits, fetches the hot listing
of each in turn and prints one random eligible post: never pinned, never NSFW.
Image posts are drawn with chafa when it is installed.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	rootCmd.Flags().BoolVar(&flagTextOnly, "textonly", false, "Only posts with text bodies")
	rootCmd.Flags().BoolVar(&flagSummarize, "summarize", false, "Show an extractive summary instead of the full body")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the post as a JSON object")
	rootCmd.Flags().StringVar(&flagForums, "forums", "", "CSV or YAML file with the subreddit catalogue (overrides FORUMS_FILE)")
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "Collector mode: public, api or mock (overrides COLLECTOR_MODE)")
}

func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagMode != "" {
		cfg.Mode = flagMode
	}
	if flagForums != "" {
		cfg.ForumsFile = flagForums
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	setupLogging(cfg)

	forums, err := ingest.LoadForums(cfg.ForumsFile)
	if err != nil {
		return fmt.Errorf("load forums: %w", err)
	}

	source, err := collector.NewCollector(cfg)
	if err != nil {
		return fmt.Errorf("initialize collector: %w", err)
	}
	slog.Debug("collector initialized", "mode", cfg.Mode, "forums", len(forums))

	pres := present.New(present.Config{
		Out:              cmd.OutOrStdout(),
		Summarizer:       summarize.NewTextRank(),
		Images:           collector.NewImageFetcher(cfg),
		Renderer:         render.NewChafa(cfg.ChafaPath),
		LinkBaseURL:      cfg.LinkBaseURL,
		SummarySentences: cfg.SummarySentences,
		Logger:           slog.Default(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	v := viewer.New(source, pres, rng, cfg.FetchLimit, slog.Default())

	_, err = v.Run(ctx, forums, present.Options{
		TextOnly:  flagTextOnly,
		Summarize: flagSummarize,
		JSON:      flagJSON,
	})
	return err
}
