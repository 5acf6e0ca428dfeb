// Package present prints the chosen post to the terminal.
package present

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qepting91/reddit-viewer/internal/domain"
	"github.com/qepting91/reddit-viewer/internal/selector"
	"github.com/qepting91/reddit-viewer/internal/storage"
)

// NoneFoundMessage is printed when every forum was tried without a result.
const NoneFoundMessage = "No suitable post found in any subreddit."

// Options are the per-run display switches.
type Options struct {
	TextOnly  bool
	Summarize bool
	JSON      bool
}

// Config wires a Presenter to its collaborators.
type Config struct {
	Out              io.Writer
	Summarizer       domain.TextSummarizer
	Images           domain.ImageFetcher
	Renderer         domain.ImageRenderer
	LinkBaseURL      string
	SummarySentences int
	TempDir          string // empty means os.TempDir()
	Logger           *slog.Logger
}

// Presenter formats a post as styled text or as a JSON record.
type Presenter struct {
	cfg    Config
	json   *storage.WriterService
	forum  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	link   lipgloss.Style
	subtle lipgloss.Style
}

func New(cfg Config) *Presenter {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	r := lipgloss.NewRenderer(cfg.Out)
	return &Presenter{
		cfg:    cfg,
		json:   storage.NewWriterService(cfg.Out),
		forum:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		title:  r.NewStyle().Bold(true),
		label:  r.NewStyle().Foreground(lipgloss.Color("99")),
		link:   r.NewStyle().Foreground(lipgloss.Color("39")),
		subtle: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Link builds the absolute URL of a post from its permalink.
func (p *Presenter) Link(post domain.Post) string {
	if strings.HasPrefix(post.Permalink, "http://") || strings.HasPrefix(post.Permalink, "https://") {
		return post.Permalink
	}
	return p.cfg.LinkBaseURL + post.Permalink
}

// Present writes post, found in forum, to the output.
func (p *Presenter) Present(ctx context.Context, forum string, post domain.Post, opts Options) error {
	body := strings.TrimSpace(post.Selftext)

	var summary string
	if opts.Summarize && body != "" {
		summary = p.cfg.Summarizer.Summarize(body, p.cfg.SummarySentences)
	}

	if opts.JSON {
		return p.json.Write(storage.Record{
			Forum:   forum,
			Link:    p.Link(post),
			Summary: summary,
			Post:    post,
		})
	}

	out := p.cfg.Out
	title := post.Title
	if title == "" {
		title = "[no title]"
	}

	fmt.Fprintf(out, "\n %s\n", p.forum.Render("r/"+forum))
	fmt.Fprintf(out, "Title: %s\n\n", p.title.Render(title))

	switch {
	case body == "":
		fmt.Fprintf(out, "%s\n\n", p.subtle.Render("(no text body)"))
	case opts.Summarize:
		fmt.Fprintf(out, "%s\n%s\n\n", p.label.Render("Summary:"), summary)
	default:
		fmt.Fprintf(out, "%s\n\n", body)
	}

	if !opts.TextOnly && selector.IsImageURL(post.URL) {
		p.showImage(ctx, post.URL)
	}

	_, err := fmt.Fprintf(out, "LINK: %s\n", p.link.Render(p.Link(post)))
	return err
}

// NoneFound reports that no forum yielded a post.
func (p *Presenter) NoneFound() error {
	_, err := fmt.Fprintln(p.cfg.Out, NoneFoundMessage)
	return err
}

// showImage downloads url into a scratch file and renders it. Any failure,
// including a missing renderer, falls back to a placeholder line.
func (p *Presenter) showImage(ctx context.Context, url string) {
	if p.cfg.Renderer == nil || !p.cfg.Renderer.Available() {
		p.placeholder(url)
		return
	}
	if err := p.renderImage(ctx, url); err != nil {
		p.cfg.Logger.Debug("image render failed", "url", url, "error", err)
		p.placeholder(url)
	}
}

func (p *Presenter) renderImage(ctx context.Context, url string) error {
	tmp, err := os.CreateTemp(p.cfg.TempDir, "reddit-viewer-*.img")
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := p.cfg.Images.FetchImage(ctx, url, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write scratch file: %w", err)
	}

	fmt.Fprintf(p.cfg.Out, "%s\n\n", p.subtle.Render("🖼 Rendering image..."))
	return p.cfg.Renderer.Render(ctx, p.cfg.Out, tmp.Name())
}

func (p *Presenter) placeholder(url string) {
	fmt.Fprintf(p.cfg.Out, "[Image] %s\n\n", url)
}
