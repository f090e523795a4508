package generator

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the calendar-day format used on the command line, in file names and in front matter.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a YYYY-MM-DD calendar day in the local time zone.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (want YYYY-MM-DD): %v", ErrInvalidDate, s, err)
	}
	return d, nil
}

// Today returns the current calendar day at local midnight.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// LongDate formats a day the way post headings show it, e.g. "Tuesday, January 2, 2024".
func LongDate(day time.Time) string {
	return day.Format("Monday, January 2, 2006")
}

// RenderPost returns the complete document: front matter followed by the body.
func RenderPost(p Post) (string, error) {
	fm, err := renderFrontMatter(p.FrontMatter)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString(fm)
	sb.WriteString("---\n\n")

	fmt.Fprintf(&sb, "# %s\n\n", p.Heading)

	if summary := strings.TrimSpace(p.Summary); summary != "" {
		fmt.Fprintf(&sb, "## 📌 TL;DR\n\n%s\n\n", summary)
	}

	sb.WriteString(p.Body)
	sb.WriteString("\n\n")

	if len(p.Activity) > 0 {
		fmt.Fprintf(&sb, "## 🚀 Code Activity\n\n%s\n\n", strings.Join(p.Activity, "\n\n"))
	}

	sb.WriteString("---\n\n")
	if footer := strings.TrimSpace(p.Footer); footer != "" {
		sb.WriteString(footer)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// renderFrontMatter encodes the metadata block without the --- delimiters.
// Node styles keep the title quoted, the date plain and the tags inline.
func renderFrontMatter(fm FrontMatter) (string, error) {
	tags := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, t := range fm.Tags {
		tags.Content = append(tags.Content, scalar(t, 0))
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		scalar("title", 0), scalar(fm.Title, yaml.DoubleQuotedStyle),
		scalar("description", 0), scalar(fm.Description, yaml.DoubleQuotedStyle),
		scalar("pubDate", 0), &yaml.Node{Kind: yaml.ScalarNode, Value: fm.PubDate.Format(DateLayout)},
		scalar("author", 0), scalar(fm.Author, yaml.DoubleQuotedStyle),
		scalar("tags", 0), tags,
		scalar("draft", 0), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%t", fm.Draft)},
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	return buf.String(), nil
}

func scalar(value string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: style}
}
