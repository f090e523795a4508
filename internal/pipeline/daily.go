package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"dailypost/internal/config"
	"dailypost/internal/generator"
	"dailypost/internal/git"
	"dailypost/internal/llm"
	"dailypost/internal/memory"
)

const previewLength = 500

// Daily drafts the post for one calendar day.
type Daily struct {
	Config     *config.Config
	Collector  *git.Collector
	Summarizer llm.Summarizer // optional
	Out        io.Writer
	Log        *slog.Logger
	Now        func() time.Time
}

// Draft is a rendered post that has not been written yet.
type Draft struct {
	Date     time.Time
	Memory   *memory.Document // nil when the day has no memory file
	Activity []git.Activity
	Document string
}

func NewDaily(cfg *config.Config, out io.Writer, log *slog.Logger) *Daily {
	d := &Daily{
		Config:    cfg,
		Collector: git.NewCollector(),
		Out:       out,
		Log:       log,
		Now:       time.Now,
	}
	d.Collector.Skipped = func(path string, reason error) {
		d.logger().Debug("activity.skipped", "repo", path, "reason", reason)
	}
	return d
}

// ResolveDate parses date, or returns today when it is empty.
func (d *Daily) ResolveDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now
		if d.Now != nil {
			now = d.Now
		}
		return generator.Today(now()), nil
	}
	return generator.ParseDate(date)
}

// Run drafts the post for date, writes it and prints its path as FILE_PATH=<path>.
func (d *Daily) Run(ctx context.Context, date string) (string, error) {
	draft, err := d.Build(ctx, date)
	if err != nil {
		return "", err
	}

	cfg := d.Config
	filename := generator.PostFilename(draft.Date, cfg.Posts.Slug, cfg.Posts.Ext)
	path, err := generator.WritePost(cfg.Posts.Dir, filename, draft.Document)
	if err != nil {
		return "", err
	}

	d.printf("✅ Generated draft post: %s\n", path)
	d.printf("\n📄 Preview:\n%s...\n\n", preview(draft.Document, previewLength))
	d.printf("\nFILE_PATH=%s\n", path)
	return path, nil
}

// Build runs every stage except writing.
func (d *Daily) Build(ctx context.Context, date string) (*Draft, error) {
	day, err := d.ResolveDate(date)
	if err != nil {
		return nil, err
	}
	dateStr := day.Format(generator.DateLayout)
	cfg := d.Config

	d.printf("📝 Generating blog post for %s...\n", dateStr)

	// 1. Memory file
	doc, err := memory.Load(cfg.Memory.Dir, dateStr)
	switch {
	case err == nil:
		d.printf("✅ Found memory file: %s\n", doc.Path)
	case errors.Is(err, memory.ErrNotFound):
		d.printf("⚠️  No memory file found for %s\n", dateStr)
	default:
		return nil, err
	}
	memoryText := ""
	if doc != nil {
		memoryText = doc.Text
	}

	// 2. Code activity
	activity := d.CollectActivity(ctx, day)
	if len(activity) > 0 {
		d.printf("✅ Found %d repos with activity\n", len(activity))
	}

	// 3. Body
	body := generator.Compose(memoryText)

	// 4. Optional TL;DR
	summary := d.summarize(ctx, dateStr, memoryText, activity)

	blocks := make([]string, 0, len(activity))
	for _, a := range activity {
		blocks = append(blocks, a.Markdown())
	}

	title := fmt.Sprintf("%s - %s", cfg.Post.Title, dateStr)
	post := generator.Post{
		FrontMatter: generator.FrontMatter{
			Title:       title,
			Description: cfg.Post.Description,
			PubDate:     day,
			Author:      cfg.Post.Author,
			Tags:        mergeTags(cfg.Post.Tags, doc),
			Draft:       true,
		},
		Heading:  fmt.Sprintf("%s - %s", cfg.Post.Title, generator.LongDate(day)),
		Summary:  summary,
		Body:     body,
		Activity: blocks,
		Footer:   cfg.Post.Footer,
	}

	rendered, err := generator.RenderPost(post)
	if err != nil {
		return nil, err
	}

	return &Draft{
		Date:     day,
		Memory:   doc,
		Activity: activity,
		Document: rendered,
	}, nil
}

// CollectActivity returns the day's commits of every configured repository that has any.
func (d *Daily) CollectActivity(ctx context.Context, day time.Time) []git.Activity {
	c := d.Collector
	if c == nil {
		c = git.NewCollector()
	}
	return c.Collect(ctx, d.Config.Repos, day)
}

func (d *Daily) summarize(ctx context.Context, date, memoryText string, activity []git.Activity) string {
	if d.Summarizer == nil {
		return ""
	}

	digest := llm.DayDigest{Date: date}
	for _, s := range generator.ExtractSections(memoryText, generator.MaxSections, generator.MaxBullets) {
		digest.Sections = append(digest.Sections, llm.DigestSection{Title: s.Title, Bullets: s.Bullets})
	}
	for _, a := range activity {
		repo := llm.DigestRepo{Repo: a.Repo}
		for _, c := range a.Commits {
			repo.Subjects = append(repo.Subjects, c.Subject)
		}
		digest.Commits = append(digest.Commits, repo)
	}

	summary, err := d.Summarizer.Summarize(ctx, digest)
	if err != nil {
		d.logger().Warn("summary.failed", "date", date, "error", err)
		d.printf("⚠️  Skipping TL;DR: %v\n", err)
		return ""
	}
	return summary
}

func (d *Daily) printf(format string, args ...any) {
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

func (d *Daily) logger() *slog.Logger {
	if d.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Log
}

func mergeTags(base []string, doc *memory.Document) []string {
	seen := make(map[string]bool, len(base))
	tags := make([]string, 0, len(base))
	add := func(t string) {
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		tags = append(tags, t)
	}
	for _, t := range base {
		add(t)
	}
	if doc != nil {
		for _, t := range doc.Meta.Tags {
			add(t)
		}
	}
	return tags
}

// preview cuts s to at most n runes.
func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
