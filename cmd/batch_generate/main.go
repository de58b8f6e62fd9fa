package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"quizsheet/internal/batch"
	"quizsheet/internal/bootstrap"
	"quizsheet/internal/config"
	"quizsheet/internal/logger"
)

func main() {
	flags := pflag.NewFlagSet("batch_generate", pflag.ExitOnError)
	manifestPath := flags.String("manifest", "quizzes.yaml", "YAML manifest listing the quizzes to generate")
	flags.String("batch.output_dir", "", "override batch.output_dir")
	flags.Int("batch.concurrency", 0, "override batch.concurrency")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	flags.Visit(func(f *pflag.Flag) {
		if f.Name != "manifest" {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	// Load configuration
	cfg, err := config.Load(v)
	if err != nil {
		// Logger might not be initialized yet
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Get().Info("Batch process starting up...")

	if err := cfg.Validate(); err != nil {
		logger.Get().Fatal("Invalid configuration", zap.Error(err))
	}

	manifest, err := batch.LoadManifest(*manifestPath)
	if err != nil {
		logger.Get().Fatal("Failed to load manifest", zap.String("path", *manifestPath), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := bootstrap.NewPipeline(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("Failed to initialize quiz generator", zap.Error(err))
	}

	runner := batch.NewRunner(pipeline, bootstrap.Defaults(cfg.Defaults), cfg.Batch.OutputDir, cfg.Batch.Concurrency, logger.Get())
	report, err := runner.Run(ctx, manifest)
	if err != nil {
		logger.Get().Fatal("Batch process failed", zap.Error(err))
	}

	for _, job := range report.Jobs {
		if job.Failed() {
			logger.Get().Warn("Job failed", zap.String("job", job.Name), zap.String("error", job.Error))
		}
	}
	logger.Get().Info("Batch process completed",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed))

	if report.Failed > 0 {
		os.Exit(1)
	}
}
