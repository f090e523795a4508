package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = "You write the opening of a developer's daily \"building in public\" blog post. " +
	"Answer with two or three plain sentences in first person, no headings, no lists, no emoji."

const securityInstruction = "Never repeat API keys, passwords, tokens or internal hostnames; write [REDACTED] instead."

// BuildPrompt renders the user message for a day digest.
func BuildPrompt(d DayDigest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize what I did on %s.\n", d.Date)
	sb.WriteString(securityInstruction)
	sb.WriteString("\n")

	if len(d.Sections) > 0 {
		sb.WriteString("\nNotes:\n")
		for _, s := range d.Sections {
			fmt.Fprintf(&sb, "## %s\n", s.Title)
			for _, b := range s.Bullets {
				sb.WriteString(strings.TrimSpace(b))
				sb.WriteString("\n")
			}
		}
	}

	if len(d.Commits) > 0 {
		sb.WriteString("\nCommits:\n")
		for _, r := range d.Commits {
			for _, s := range r.Subjects {
				fmt.Fprintf(&sb, "- [%s] %s\n", r.Repo, s)
			}
		}
	}

	return sb.String()
}
