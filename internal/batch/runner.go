package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"quizsheet/internal/domain"
	"quizsheet/internal/emitter"
	"quizsheet/internal/service"
)

// ReportFile is written next to the generated tables.
const ReportFile = "report.yaml"

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// fileLabel is the job's display name made safe for file names. Labels are
// unique within a manifest, so jobs never share an output path.
func fileLabel(displayName string) string {
	return unsafeName.ReplaceAllString(displayName, "_")
}

// JobResult is the outcome of one job.
type JobResult struct {
	Name     string   `yaml:"name"`
	Source   string   `yaml:"source"`
	Rows     int      `yaml:"rows"`
	Warnings []string `yaml:"warnings,omitempty"`
	Files    []string `yaml:"files,omitempty"`
	Error    string   `yaml:"error,omitempty"`
	Duration string   `yaml:"duration"`
}

func (r JobResult) Failed() bool { return r.Error != "" }

// Report summarizes a batch run.
type Report struct {
	Succeeded int         `yaml:"succeeded"`
	Failed    int         `yaml:"failed"`
	Jobs      []JobResult `yaml:"jobs"`
}

// Runner executes manifest jobs through the pipeline with bounded parallelism.
type Runner struct {
	pipeline    service.QuizPipelineService
	defaults    domain.GenerationOptions
	outputDir   string
	concurrency int
	logger      *zap.Logger
}

func NewRunner(pipeline service.QuizPipelineService, defaults domain.GenerationOptions, outputDir string, concurrency int, logger *zap.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		pipeline:    pipeline,
		defaults:    defaults,
		outputDir:   outputDir,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run processes every job. A failing job is recorded in the report and does
// not stop the others; only setup failures and cancellation return an error.
func (r *Runner) Run(ctx context.Context, m *Manifest) (*Report, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	r.logger.Info("Starting batch quiz generation",
		zap.Int("jobs", len(m.Jobs)),
		zap.Int("concurrency", r.concurrency),
		zap.String("output_dir", r.outputDir))

	results := make([]JobResult, len(m.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range m.Jobs {
		i, job := i, m.Jobs[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.runJob(gctx, m, i, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Jobs: results}
	for _, res := range results {
		if res.Failed() {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}

	if err := r.writeReport(report); err != nil {
		return report, err
	}
	r.logger.Info("Batch quiz generation finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (r *Runner) runJob(ctx context.Context, m *Manifest, index int, job Job) (res JobResult) {
	started := time.Now()
	res = JobResult{Name: job.DisplayName(index), Source: job.Source}
	log := r.logger.With(zap.String("job", res.Name))

	defer func() {
		if p := recover(); p != nil {
			res.Error = fmt.Sprintf("job panicked: %v", p)
			log.Error("Batch job panicked", zap.Any("panic", p))
		}
		res.Duration = time.Since(started).Round(time.Millisecond).String()
	}()

	req, closeSource, err := m.request(job, r.defaults)
	defer closeSource()
	if err != nil {
		res.Error = err.Error()
		log.Warn("Invalid batch job", zap.Error(err))
		return res
	}

	result, err := r.pipeline.Generate(ctx, req)
	if err != nil {
		res.Error = err.Error()
		log.Warn("Batch job failed", zap.Error(err))
		return res
	}
	for _, w := range result.Warnings {
		res.Warnings = append(res.Warnings, w.String())
	}
	if result.Empty() {
		res.Error = domain.NewNoRowsError().Error()
		return res
	}
	res.Rows = len(result.Rows)

	base := fileLabel(job.DisplayName(index)) + "_" + result.FileBase
	for _, f := range []emitter.Format{emitter.FormatCSV, emitter.FormatXLSX} {
		path := filepath.Join(r.outputDir, base+f.Extension())
		if err := writeVerified(path, f, result.File(f), len(result.Rows)); err != nil {
			res.Error = err.Error()
			log.Error("Failed to write quiz file", zap.String("path", path), zap.Error(err))
			return res
		}
		res.Files = append(res.Files, path)
	}

	log.Info("Batch job done", zap.Int("rows", res.Rows), zap.Strings("files", res.Files))
	return res
}

// writeVerified re-reads the rendered table before writing it to disk.
func writeVerified(path string, f emitter.Format, data []byte, wantRows int) error {
	var rows []domain.QuizRow
	var err error
	switch f {
	case emitter.FormatCSV:
		rows, err = emitter.ReadCSV(data)
	case emitter.FormatXLSX:
		rows, err = emitter.ReadXLSX(data)
	}
	if err != nil {
		return fmt.Errorf("verify %s: %w", f, err)
	}
	if len(rows) != wantRows {
		return fmt.Errorf("verify %s: got %d rows, want %d", f, len(rows), wantRows)
	}
	return os.WriteFile(path, data, 0o644)
}

func (r *Runner) writeReport(report *Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(filepath.Join(r.outputDir, ReportFile), data, 0o644)
}
