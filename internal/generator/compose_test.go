package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_EmptyMemoryUsesPlaceholder(t *testing.T) {
	for _, in := range []string{"", "   \n\n\t"} {
		out := Compose(in)
		assert.Equal(t, emptyMemoryBody, out)
		assert.Equal(t, 1, strings.Count(out, "## 🔧 What I'm Working On"))
		assert.Equal(t, 1, strings.Count(out, "## 💡 Lessons Learned"))
		assert.Equal(t, 2, strings.Count(out, "<!-- TODO:"))
		assert.NotContains(t, out, "What I Worked On Today")
		assert.NotContains(t, out, "###")
	}
}

func TestCompose_SingleSectionKeepsOnlyBullets(t *testing.T) {
	memory := "## Foo\n- one\nplain text\n* two\n  - three\nmore plain\n"

	want := "## 🔧 What I Worked On Today\n\n### Foo\n\n- one\n* two\n  - three\n"
	assert.Equal(t, want, Compose(memory))
}

func TestCompose_OnlyFirstThreeSections(t *testing.T) {
	var sb strings.Builder
	for _, title := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
		sb.WriteString("## " + title + "\n- did " + title + "\n\n")
	}

	out := Compose(sb.String())
	assert.Contains(t, out, "### Alpha")
	assert.Contains(t, out, "### Bravo")
	assert.Contains(t, out, "### Charlie")
	assert.NotContains(t, out, "Delta")
	assert.NotContains(t, out, "Echo")
	assert.Less(t, strings.Index(out, "### Alpha"), strings.Index(out, "### Bravo"))
	assert.Less(t, strings.Index(out, "### Bravo"), strings.Index(out, "### Charlie"))
}

func TestCompose_CapsBulletsAtFive(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("## Busy\n")
	for i := 1; i <= 8; i++ {
		sb.WriteString("- item " + string(rune('0'+i)) + "\n")
	}

	out := Compose(sb.String())
	for i := 1; i <= 5; i++ {
		assert.Contains(t, out, "- item "+string(rune('0'+i)))
	}
	for i := 6; i <= 8; i++ {
		assert.NotContains(t, out, "- item "+string(rune('0'+i)))
	}
}

func TestCompose_SectionWithoutBullets(t *testing.T) {
	out := Compose("## Quiet\njust prose today\n")
	assert.Equal(t, "## 🔧 What I Worked On Today\n\n### Quiet\n\n\n", out)
	assert.NotContains(t, out, "coming soon")
}

func TestCompose_NoHeadersFallsBack(t *testing.T) {
	inputs := []string{
		"just a line",
		"##\n- bullet",
		"##   \n- bullet",
		"##NoSpace\n- bullet",
		"# Top level\n### Deep\ntext ## inline",
	}
	for _, in := range inputs {
		assert.Equal(t, noSectionsBody, Compose(in), "input %q", in)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	memory := "## A\n- a1\n## B\n* b1\n"
	assert.Equal(t, Compose(memory), Compose(memory))
}

func TestCompose_NeverPanics(t *testing.T) {
	inputs := []string{"\n", "## ", "## \n## x", "\r\n## a\r\n- b\r\n", "## (.+?)[\n- [", strings.Repeat("## x\n", 100)}
	for _, in := range inputs {
		require.NotPanics(t, func() { _ = Compose(in) }, "input %q", in)
	}
}

func TestCompose_CRLFInput(t *testing.T) {
	out := Compose("## Foo\r\n- one\r\n- two\r\n")
	assert.Equal(t, "## 🔧 What I Worked On Today\n\n### Foo\n\n- one\n- two\n", out)
}
