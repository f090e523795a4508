package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSections_RepeatedTitlesKeepTheirOwnBody(t *testing.T) {
	memory := "## Daily\n- morning\n## Other\n- x\n## Daily\n- evening\n"

	sections := ExtractSections(memory, 0, 0)
	require.Len(t, sections, 3)
	assert.Equal(t, Section{Title: "Daily", Bullets: []string{"- morning"}}, sections[0])
	assert.Equal(t, Section{Title: "Daily", Bullets: []string{"- evening"}}, sections[2])
}

func TestExtractSections_IgnoresTextBeforeFirstHeader(t *testing.T) {
	sections := ExtractSections("- stray\n* also stray\n## Real\n- kept\n", 0, 0)
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"- kept"}, sections[0].Bullets)
}

func TestExtractSections_DeeperHeadersStayInBody(t *testing.T) {
	sections := ExtractSections("## Project\n### Detail\n- bullet under detail\n", 0, 0)
	require.Len(t, sections, 1)
	assert.Equal(t, "Project", sections[0].Title)
	assert.Equal(t, []string{"- bullet under detail"}, sections[0].Bullets)
}

func TestExtractSections_TrimsTitle(t *testing.T) {
	sections := ExtractSections("##   Spaced out   \n", 0, 0)
	require.Len(t, sections, 1)
	assert.Equal(t, "Spaced out", sections[0].Title)
	assert.Empty(t, sections[0].Bullets)
}

func TestExtractSections_Limits(t *testing.T) {
	memory := "## A\n- 1\n- 2\n- 3\n## B\n- 1\n## C\n"

	sections := ExtractSections(memory, 2, 2)
	require.Len(t, sections, 2)
	assert.Equal(t, []string{"- 1", "- 2"}, sections[0].Bullets)
	assert.Equal(t, "B", sections[1].Title)
}
