package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"quizsheet/internal/bootstrap"
	"quizsheet/internal/config"
	"quizsheet/internal/domain"
	"quizsheet/internal/emitter"
	"quizsheet/internal/logger"
	"quizsheet/internal/service"
)

func main() {
	flags := pflag.NewFlagSet("generate", pflag.ExitOnError)
	source := flags.String("source", "text", "source type: text|pdf|youtube|website")
	input := flags.String("input", "", "text, text file path or - for stdin (text); file path (pdf); URL (youtube, website)")
	count := flags.Int("count", 0, "number of questions (default from config)")
	timeLimit := flags.Int("time-limit", 0, "seconds per question (default from config)")
	difficulty := flags.String("difficulty", "", "easy|medium|hard")
	grade := flags.String("grade", "", "grade level, e.g. middle-2")
	out := flags.String("out", ".", "output directory")
	flags.String("llm.provider", "", "override llm.provider")
	flags.String("llm.model", "", "override llm.model")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	// Only flags set on the command line override file and environment values.
	flags.Visit(func(f *pflag.Flag) {
		if strings.HasPrefix(f.Name, "llm.") {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Get().Fatal("Invalid configuration", zap.Error(err))
	}

	opts, err := options(bootstrap.Defaults(cfg.Defaults), *count, *timeLimit, *difficulty, *grade)
	if err != nil {
		logger.Get().Fatal("Invalid options", zap.Error(err))
	}
	src, closeSrc, err := readSource(*source, *input)
	if err != nil {
		logger.Get().Fatal("Invalid source", zap.Error(err))
	}
	defer closeSrc()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := bootstrap.NewPipeline(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("Failed to initialize quiz generator", zap.Error(err))
	}

	result, err := pipeline.Generate(ctx, service.GenerateRequest{Source: src, Options: opts})
	if err != nil {
		logger.Get().Fatal("Quiz generation failed", zap.Error(err))
	}
	for _, w := range result.Warnings {
		logger.Get().Warn("Skipped question block", zap.String("reason", w.Reason), zap.String("block", w.Block))
	}
	if result.Empty() {
		fmt.Fprintln(os.Stderr, "No questions could be parsed from the model reply:")
		fmt.Fprintln(os.Stderr, result.RawResponse)
		os.Exit(2)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Get().Fatal("Failed to create output directory", zap.Error(err))
	}
	for _, f := range []emitter.Format{emitter.FormatCSV, emitter.FormatXLSX} {
		path := filepath.Join(*out, result.FileBase+f.Extension())
		if err := os.WriteFile(path, result.File(f), 0o644); err != nil {
			logger.Get().Fatal("Failed to write quiz file", zap.String("path", path), zap.Error(err))
		}
		fmt.Println(path)
	}

	logger.Get().Info("Quiz generated",
		zap.String("id", result.ID),
		zap.Int("questions", len(result.Rows)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Duration("duration", result.Duration))

	fmt.Println()
	for i, step := range emitter.ImportInstructions() {
		fmt.Printf("%d. %s\n", i+1, step)
	}
}

func options(base domain.GenerationOptions, count, timeLimit int, difficulty, grade string) (domain.GenerationOptions, error) {
	opts := base
	if count > 0 {
		opts.QuestionCount = count
	}
	if timeLimit > 0 {
		opts.TimeLimit = timeLimit
	}
	if difficulty != "" {
		d, ok := domain.ParseDifficulty(difficulty)
		if !ok {
			return opts, fmt.Errorf("unknown difficulty %q", difficulty)
		}
		opts.Difficulty = d
	}
	if grade != "" {
		g, ok := domain.ParseGradeLevel(grade)
		if !ok {
			return opts, fmt.Errorf("unknown grade level %q", grade)
		}
		opts.GradeLevel = g
	}
	if errs := opts.Validate(); len(errs) > 0 {
		return opts, errs
	}
	return opts, nil
}

func readSource(kind, input string) (domain.Source, func(), error) {
	noop := func() {}
	k, ok := domain.ParseSourceKind(kind)
	if !ok {
		return domain.Source{}, noop, fmt.Errorf("unknown source type %q", kind)
	}
	src := domain.Source{Kind: k}

	switch k {
	case domain.SourceText:
		text, err := readText(input)
		if err != nil {
			return src, noop, err
		}
		src.Text = text
	case domain.SourcePDF:
		f, err := os.Open(input)
		if err != nil {
			return src, noop, fmt.Errorf("open pdf: %w", err)
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return src, noop, fmt.Errorf("stat pdf: %w", err)
		}
		src.PDF, src.PDFSize, src.FileName = f, info.Size(), filepath.Base(input)
		return src, func() { f.Close() }, validate(src)
	default:
		src.URL = strings.TrimSpace(input)
	}
	return src, noop, validate(src)
}

// readText treats input as a file path when one exists, "-" as stdin and
// anything else as the text itself.
func readText(input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(data), nil
	}
	return input, nil
}

func validate(src domain.Source) error {
	if errs := src.Validate(); len(errs) > 0 {
		return errs
	}
	return nil
}
