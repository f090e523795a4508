package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"dailypost/internal/config"
	"dailypost/internal/generator"
	"dailypost/internal/llm"
	"dailypost/internal/logger"
	"dailypost/internal/pipeline"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	debug      bool
	memoryDir  string
	postsDir   string
	repos      []string
	date       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "dailypost",
		Short:         "Draft a daily building-in-public post from memory notes and git activity",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.memoryDir, "memory-dir", "", "Directory holding <date>.md memory files")
	cmd.PersistentFlags().StringVar(&opts.postsDir, "posts-dir", "", "Directory the draft is written to")
	cmd.PersistentFlags().StringVar(&opts.date, "date", "", "Day to draft, YYYY-MM-DD (default today)")
	cmd.PersistentFlags().StringArrayVar(&opts.repos, "repo", nil, "Repository to read commits from (repeatable, replaces configured repos)")

	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newPreviewCmd(opts))
	cmd.AddCommand(newActivityCmd(opts))
	return cmd
}

// setup loads the configuration, applies flag overrides and builds the pipeline.
func (o *rootOptions) setup(cmd *cobra.Command) (*pipeline.Daily, error) {
	log := logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Debug: o.debug})

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.memoryDir != "" {
		cfg.Memory.Dir = config.ExpandHome(o.memoryDir)
	}
	if o.postsDir != "" {
		cfg.Posts.Dir = config.ExpandHome(o.postsDir)
	}
	if len(o.repos) > 0 {
		cfg.Repos = cfg.Repos[:0]
		for _, r := range o.repos {
			cfg.Repos = append(cfg.Repos, config.ExpandHome(r))
		}
	}

	daily := pipeline.NewDaily(cfg, cmd.OutOrStdout(), log)
	daily.Summarizer = initSummarizer(cfg, cmd.ErrOrStderr(), log)
	return daily, nil
}

// initSummarizer returns nil when the TL;DR is disabled or cannot be configured.
func initSummarizer(cfg *config.Config, out io.Writer, log *slog.Logger) llm.Summarizer {
	if !cfg.Summary.Enabled {
		return nil
	}
	s, err := llm.NewSummarizer(llm.SummarizerOptions{
		Provider: cfg.Summary.Provider,
		APIKey:   cfg.Summary.APIKey,
		Model:    cfg.Summary.Model,
		BaseURL:  cfg.Summary.BaseURL,
	})
	if err != nil {
		log.Warn("summary.disabled", "error", err)
		fmt.Fprintf(out, "⚠️  Skipping TL;DR: %v\n", err)
		return nil
	}
	return s
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the draft post for a day (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	daily, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	_, err = daily.Run(cmdContext(cmd), opts.date)
	return err
}

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the draft post without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			daily, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			// Progress lines would pollute the printed document.
			daily.Out = io.Discard

			draft, err := daily.Build(cmdContext(cmd), opts.date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !asHTML {
				_, err = fmt.Fprint(out, draft.Document)
				return err
			}

			_, body, err := generator.ParsePost(draft.Document)
			if err != nil {
				return err
			}
			html, err := generator.RenderHTML(body)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, html)
			return err
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "Render the body to HTML")
	return cmd
}

func newActivityCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Print the day's commits across configured repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			daily, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			day, err := daily.ResolveDate(opts.date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			activity := daily.CollectActivity(cmdContext(cmd), day)
			if len(activity) == 0 {
				fmt.Fprintf(out, "✅ No commits on %s.\n", day.Format(generator.DateLayout))
				return nil
			}

			blocks := make([]string, 0, len(activity))
			for _, a := range activity {
				blocks = append(blocks, a.Markdown())
			}
			fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
			return nil
		},
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
