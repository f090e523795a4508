package git

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// LogFormat renders one commit per line as "<short hash> - <subject>".
const LogFormat = "%h - %s"

type Commit struct {
	Hash    string
	Subject string
}

func (c Commit) String() string {
	if c.Subject == "" {
		return c.Hash
	}
	return c.Hash + " - " + c.Subject
}

// Activity is one repository's commits for a single day.
type Activity struct {
	Repo    string
	Path    string
	Commits []Commit
}

// Markdown renders the bold repository label followed by one commit per line.
func (a Activity) Markdown() string {
	lines := make([]string, 0, len(a.Commits)+1)
	lines = append(lines, fmt.Sprintf("**%s:**", a.Repo))
	for _, c := range a.Commits {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

// Runner executes git with args inside dir and returns its stdout.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// ExecRunner runs the git binary found on PATH.
func ExecRunner(ctx context.Context, dir string, args ...string) ([]byte, error) {
	full := append([]string{"-C", dir}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("git %s failed: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return out, nil
}

// DayLogArgs are the "git log" arguments selecting non-merge commits authored on day.
func DayLogArgs(day time.Time) []string {
	date := day.Format("2006-01-02")
	return []string{
		"log",
		fmt.Sprintf("--since=%s 00:00", date),
		fmt.Sprintf("--until=%s 23:59:59", date),
		"--pretty=format:" + LogFormat,
		"--no-merges",
	}
}

// DayLog returns the commits of the repository at dir for day.
func DayLog(ctx context.Context, run Runner, dir string, day time.Time) ([]Commit, error) {
	out, err := run(ctx, dir, DayLogArgs(day)...)
	if err != nil {
		return nil, err
	}
	return parseLog(out), nil
}

func parseLog(output []byte) []Commit {
	var commits []Commit
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		hash, subject, _ := strings.Cut(line, " - ")
		commits = append(commits, Commit{Hash: hash, Subject: subject})
	}
	return commits
}

// RepoName labels a repository by the last element of its path.
func RepoName(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// Collector gathers a day's activity across several repositories.
type Collector struct {
	Run Runner
	// Skipped, if set, is told about every repository that contributed nothing and why.
	Skipped func(path string, reason error)
}

func NewCollector() *Collector {
	return &Collector{Run: ExecRunner}
}

// Collect queries each repository in order. Missing paths, failing queries and
// days without commits leave that repository out; Collect itself never fails.
func (c *Collector) Collect(ctx context.Context, repos []string, day time.Time) []Activity {
	run := c.Run
	if run == nil {
		run = ExecRunner
	}

	var activity []Activity
	for _, repo := range repos {
		if _, err := os.Stat(repo); err != nil {
			c.skip(repo, err)
			continue
		}

		commits, err := DayLog(ctx, run, repo, day)
		if err != nil {
			c.skip(repo, err)
			continue
		}
		if len(commits) == 0 {
			c.skip(repo, nil)
			continue
		}

		activity = append(activity, Activity{
			Repo:    RepoName(repo),
			Path:    repo,
			Commits: commits,
		})
	}
	return activity
}

func (c *Collector) skip(path string, reason error) {
	if c.Skipped != nil {
		c.Skipped(path, reason)
	}
}
