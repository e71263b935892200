package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/valuelens/internal/analyze"
	"github.com/dshills/valuelens/internal/catalog"
	"github.com/dshills/valuelens/internal/config"
	"github.com/dshills/valuelens/internal/llm"
	"github.com/dshills/valuelens/internal/render"
	"github.com/dshills/valuelens/internal/schema"
	"github.com/dshills/valuelens/internal/store"
	"github.com/dshills/valuelens/internal/topic"
)

// Exit codes. 1 is reserved for cobra usage errors.
const (
	exitCodeBadInput  = 3
	exitCodeAPIError  = 4
	exitCodeBadOutput = 5
)

// exitError pairs an error with the process exit code it should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	root := &cobra.Command{
		Use:   "valuelens",
		Short: "Value-orientation profiling from free-form social text",
	}

	root.AddCommand(newAnalyzeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

// analyzeFlags carries everything the analyze subcommand needs. Empty string
// fields defer to the config file / defaults.
type analyzeFlags struct {
	file       string
	configPath string
	mode       string
	provider   string
	model      string
	localeCode string
	category   string
	format     string
	out        string
	saveKey    string
	align      bool
	llmTopic   bool
	quiet      bool
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Generate a value-orientation profile for a piece of text",
		Long: `Generate a value-orientation profile for free-form text about one person.
Text comes from the argument, --file, or stdin, in that order of preference.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = args[0]
			}
			return runAnalyze(cmd.Context(), f, text, store.NewMemory(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.file, "file", "", "read the input text from a file")
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&f.mode, "mode", "", "analysis mode: fast, balanced, or deep")
	cmd.Flags().StringVar(&f.provider, "provider", "", "LLM provider: anthropic, openai, or google")
	cmd.Flags().StringVar(&f.model, "model", "", "model name override")
	cmd.Flags().StringVar(&f.localeCode, "locale", "", "output locale, e.g. en or zh")
	cmd.Flags().StringVar(&f.category, "category", "", "force a topic category instead of classifying")
	cmd.Flags().StringVar(&f.format, "format", "json", "output format: json or markdown")
	cmd.Flags().StringVar(&f.out, "out", "", "write output to a file instead of stdout")
	cmd.Flags().StringVar(&f.saveKey, "save", "", "store the finished profile under this key")
	cmd.Flags().BoolVar(&f.align, "align", false, "run summary alignment and conflict resolution")
	cmd.Flags().BoolVar(&f.llmTopic, "llm-topic", false, "classify the topic with the LLM instead of keywords")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "suppress progress logging")

	return cmd
}

func runAnalyze(ctx context.Context, f analyzeFlags, text string, st store.Store, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return &exitError{code: exitCodeBadInput, err: err}
	}
	applyFlagOverrides(cfg, f)

	if text == "" {
		text, err = readInput(f.file, stdin)
		if err != nil {
			return &exitError{code: exitCodeBadInput, err: err}
		}
	}
	if strings.TrimSpace(text) == "" {
		return &exitError{code: exitCodeBadInput, err: fmt.Errorf("no input text: pass an argument, --file, or stdin")}
	}
	if f.format != "json" && f.format != "markdown" {
		return &exitError{code: exitCodeBadInput, err: fmt.Errorf("unknown format %q", f.format)}
	}
	if f.category != "" && !catalog.IsCategory(f.category) {
		return &exitError{code: exitCodeBadInput, err: fmt.Errorf("unknown category %q", f.category)}
	}

	log := newLogger(f.quiet)
	defer func() { _ = log.Sync() }()

	analyzer, err := analyze.New(analyze.Options{
		ProviderName: cfg.Provider.Name,
		Model:        cfg.Provider.Model,
		Mode:         schema.Mode(cfg.Analysis.Mode),
		Locale:       cfg.Analysis.Locale,
		MaxTokens:    cfg.Provider.MaxTokens,
		Temperature:  cfg.Provider.Temperature,
		Timeout:      cfg.Analysis.RequestTimeout,
		Logger:       log,
	})
	if err != nil {
		return &exitError{code: exitCodeBadInput, err: err}
	}

	category := f.category
	if category == "" && f.llmTopic {
		category = classifyWithLLM(ctx, cfg, text, log)
	}

	profile, err := analyzer.GenerateProfile(ctx, text, category)
	if err != nil {
		if llm.IsTimeout(err) || llm.IsContentFilter(err) {
			return &exitError{code: exitCodeAPIError, err: err}
		}
		if llm.IsRetryable(err) {
			return &exitError{code: exitCodeBadOutput, err: err}
		}
		return &exitError{code: exitCodeAPIError, err: err}
	}

	if f.align {
		analyze.AlignSummary(profile, analyzer.Mode(), analyzer.Locale())
	}

	if f.saveKey != "" {
		if err := st.Set(f.saveKey, profile); err != nil {
			return &exitError{code: exitCodeBadOutput, err: fmt.Errorf("save profile: %w", err)}
		}
		log.Info("profile saved", zap.String("key", f.saveKey))
	}

	return writeOutput(profile, f.format, f.out, stdout)
}

// applyFlagOverrides lets command-line flags win over config file values.
func applyFlagOverrides(cfg *config.Config, f analyzeFlags) {
	if f.provider != "" {
		cfg.Provider.Name = f.provider
	}
	if f.model != "" {
		cfg.Provider.Model = f.model
	}
	if f.mode != "" {
		cfg.Analysis.Mode = f.mode
	}
	if f.localeCode != "" {
		cfg.Analysis.Locale = f.localeCode
	}
}

func readInput(file string, stdin io.Reader) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func newLogger(quiet bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// classifyWithLLM asks the configured provider for the topic category.
// Classification problems degrade to the general category, so errors here
// only cost accuracy, never the run.
func classifyWithLLM(ctx context.Context, cfg *config.Config, text string, log *zap.Logger) string {
	provider, err := llm.NewProvider(cfg.Provider.Name, cfg.Provider.Model)
	if err != nil {
		log.Warn("llm topic classification unavailable", zap.Error(err))
		return ""
	}
	category := topic.ClassifyWithLLM(ctx, provider, text)
	log.Info("topic classified", zap.String("category", category))
	return category
}

func writeOutput(profile *schema.Profile, format, out string, stdout io.Writer) error {
	var body []byte
	switch format {
	case "markdown":
		body = []byte(render.RenderMarkdown(profile))
	default:
		b, err := render.RenderJSON(profile)
		if err != nil {
			return &exitError{code: exitCodeBadOutput, err: err}
		}
		body = append(b, '\n')
	}

	if out != "" {
		if err := os.WriteFile(out, body, 0o644); err != nil {
			return &exitError{code: exitCodeBadOutput, err: fmt.Errorf("write output: %w", err)}
		}
		return nil
	}
	_, err := stdout.Write(body)
	return err
}
