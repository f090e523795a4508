package generator

import (
	"strings"
)

const emptyMemoryBody = `## 🔧 What I'm Working On

*Working on various projects across the stack...*

<!-- TODO: Add project updates -->

## 💡 Lessons Learned

*Documenting learnings from today's work...*

<!-- TODO: Add insights -->`

const noSectionsBody = "## 🔧 Projects\n\n*Details coming soon...*"

const workedOnHeading = "## 🔧 What I Worked On Today"

// Compose turns a memory document into the markdown body of a daily post.
// It is a pure function of its input and never fails.
func Compose(memoryText string) string {
	if strings.TrimSpace(memoryText) == "" {
		return emptyMemoryBody
	}

	sections := ExtractSections(memoryText, MaxSections, MaxBullets)
	if len(sections) == 0 {
		return noSectionsBody
	}

	parts := make([]string, 0, 1+2*len(sections))
	parts = append(parts, workedOnHeading+"\n")
	for _, sec := range sections {
		parts = append(parts, "### "+sec.Title+"\n")
		parts = append(parts, strings.Join(sec.Bullets, "\n")+"\n")
	}
	return strings.Join(parts, "\n")
}
