package generator

import (
	"strings"
)

const (
	MaxSections = 3
	MaxBullets  = 5
)

// ExtractSections walks the memory text once and returns its "## " sections in
// document order. At most maxSections are returned, each carrying at most
// maxBullets bullet lines. A non-positive limit means no limit.
func ExtractSections(text string, maxSections, maxBullets int) []Section {
	var sections []Section
	var current *Section

	flush := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
	}

	for _, line := range splitLines(text) {
		if title, ok := headerTitle(line); ok {
			flush()
			if maxSections > 0 && len(sections) >= maxSections {
				return sections
			}
			current = &Section{Title: title, Bullets: []string{}}
			continue
		}

		// Lines before the first header belong to no section.
		if current == nil {
			continue
		}
		if maxBullets > 0 && len(current.Bullets) >= maxBullets {
			continue
		}
		if isBullet(line) {
			current.Bullets = append(current.Bullets, line)
		}
	}
	flush()

	return sections
}

// headerTitle reports whether line is a level-two header with a non-empty title.
func headerTitle(line string) (string, bool) {
	if !strings.HasPrefix(line, "## ") {
		return "", false
	}
	title := strings.TrimSpace(line[len("## "):])
	if title == "" {
		return "", false
	}
	return title, true
}

func isBullet(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*")
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
