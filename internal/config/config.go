package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "dailypost.yaml"

type Config struct {
	Memory struct {
		Dir string `yaml:"dir"`
	} `yaml:"memory"`
	Repos []string `yaml:"repos"`
	Posts struct {
		Dir  string `yaml:"dir"`
		Ext  string `yaml:"ext"`
		Slug string `yaml:"slug"`
	} `yaml:"posts"`
	Post struct {
		Title       string   `yaml:"title"` // heading prefix, "<title> - <date>"
		Description string   `yaml:"description"`
		Author      string   `yaml:"author"`
		Tags        []string `yaml:"tags"`
		Footer      string   `yaml:"footer"`
	} `yaml:"post"`
	Summary struct {
		Enabled  bool   `yaml:"enabled"`
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"summary"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Memory.Dir = "memory"
	cfg.Posts.Dir = filepath.Join("src", "content", "posts")
	cfg.Posts.Ext = "mdx"
	cfg.Posts.Slug = "building-in-public"
	cfg.Post.Title = "Building in Public"
	cfg.Post.Description = "Daily update on projects, experiments, and learnings"
	cfg.Post.Tags = []string{"building-in-public", "daily", "updates"}
	cfg.Post.Footer = "*This post is part of my daily building in public series. Follow along via [RSS](/rss.xml).*"
	cfg.Summary.Provider = "openai"
	cfg.Summary.Model = "gpt-4o-mini"
	return &cfg
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if dir := os.Getenv("DAILYPOST_MEMORY_DIR"); dir != "" {
		cfg.Memory.Dir = dir
	}
	if dir := os.Getenv("DAILYPOST_POSTS_DIR"); dir != "" {
		cfg.Posts.Dir = dir
	}
	if repos := os.Getenv("DAILYPOST_REPOS"); repos != "" {
		cfg.Repos = filepath.SplitList(repos)
	}
	if author := os.Getenv("DAILYPOST_AUTHOR"); author != "" {
		cfg.Post.Author = author
	}
	if apiKey := os.Getenv("DAILYPOST_API_KEY"); apiKey != "" {
		cfg.Summary.APIKey = apiKey
	} else if cfg.Summary.APIKey == "" {
		cfg.Summary.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Memory.Dir = ExpandHome(c.Memory.Dir)
	c.Posts.Dir = ExpandHome(c.Posts.Dir)
	repos := c.Repos[:0]
	for _, r := range c.Repos {
		if r = strings.TrimSpace(r); r != "" {
			repos = append(repos, ExpandHome(r))
		}
	}
	c.Repos = repos

	c.Posts.Ext = strings.TrimPrefix(c.Posts.Ext, ".")
	if c.Posts.Ext == "" {
		c.Posts.Ext = "mdx"
	}
	if c.Posts.Slug == "" {
		c.Posts.Slug = "building-in-public"
	}
	if c.Post.Author == "" {
		c.Post.Author = os.Getenv("USER")
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
