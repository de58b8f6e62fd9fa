// Package batch generates many quizzes from a YAML manifest.
package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quizsheet/internal/domain"
	"quizsheet/internal/service"
)

// Manifest lists the jobs of one batch run.
//
//	defaults:
//	  question_count: 10
//	  difficulty: medium
//	jobs:
//	  - name: cells
//	    source: website
//	    url: https://en.wikipedia.org/wiki/Cell_(biology)
//	  - source: pdf
//	    path: notes/chapter3.pdf
type Manifest struct {
	Defaults JobOptions `yaml:"defaults"`
	Jobs     []Job      `yaml:"jobs"`

	// dir resolves relative job paths.
	dir string
}

// JobOptions are per-job overrides; zero values inherit.
type JobOptions struct {
	QuestionCount int    `yaml:"question_count"`
	TimeLimit     int    `yaml:"time_limit"`
	Difficulty    string `yaml:"difficulty"`
	GradeLevel    string `yaml:"grade_level"`
}

// Job is one quiz to generate. Text may be given inline or via TextFile.
type Job struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Text     string `yaml:"text"`
	TextFile string `yaml:"text_file"`
	URL      string `yaml:"url"`
	Path     string `yaml:"path"`

	JobOptions `yaml:",inline"`
}

// LoadManifest reads and decodes path. Unknown keys are rejected.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// ParseManifest decodes a manifest; relative paths resolve against the working directory.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Jobs) == 0 {
		return nil, fmt.Errorf("manifest has no jobs")
	}
	if err := m.checkNames(); err != nil {
		return nil, err
	}
	m.dir = "."
	return &m, nil
}

// checkNames rejects jobs whose output files would collide.
func (m *Manifest) checkNames() error {
	seen := make(map[string]int, len(m.Jobs))
	for i, j := range m.Jobs {
		label := fileLabel(j.DisplayName(i))
		if prev, ok := seen[label]; ok {
			return fmt.Errorf("jobs %d and %d both write files named %q", prev+1, i+1, label)
		}
		seen[label] = i
	}
	return nil
}

// DisplayName returns the job name or a positional fallback.
func (j Job) DisplayName(index int) string {
	if strings.TrimSpace(j.Name) != "" {
		return j.Name
	}
	return fmt.Sprintf("job-%d", index+1)
}

// options merges job, manifest and process defaults, in that order of precedence.
func (m *Manifest) options(j Job, base domain.GenerationOptions) (domain.GenerationOptions, error) {
	opts := base
	for _, o := range []JobOptions{m.Defaults, j.JobOptions} {
		if o.QuestionCount != 0 {
			opts.QuestionCount = o.QuestionCount
		}
		if o.TimeLimit != 0 {
			opts.TimeLimit = o.TimeLimit
		}
		if o.Difficulty != "" {
			d, ok := domain.ParseDifficulty(o.Difficulty)
			if !ok {
				return opts, domain.ValidationErrors{domain.NewInvalidFormatError("difficulty", o.Difficulty)}
			}
			opts.Difficulty = d
		}
		if o.GradeLevel != "" {
			g, ok := domain.ParseGradeLevel(o.GradeLevel)
			if !ok {
				return opts, domain.ValidationErrors{domain.NewInvalidFormatError("grade_level", o.GradeLevel)}
			}
			opts.GradeLevel = g
		}
	}
	return opts, nil
}

func (m *Manifest) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.dir, p)
}

// request builds the pipeline request of job j. The returned closer releases
// an opened PDF and is never nil.
func (m *Manifest) request(j Job, base domain.GenerationOptions) (service.GenerateRequest, func(), error) {
	noop := func() {}

	kind, ok := domain.ParseSourceKind(j.Source)
	if !ok {
		return service.GenerateRequest{}, noop, domain.ValidationErrors{domain.NewInvalidFormatError("source", j.Source)}
	}
	opts, err := m.options(j, base)
	if err != nil {
		return service.GenerateRequest{}, noop, err
	}

	src := domain.Source{Kind: kind, Text: j.Text, URL: j.URL}
	switch kind {
	case domain.SourceText:
		if j.TextFile != "" {
			data, err := os.ReadFile(m.resolve(j.TextFile))
			if err != nil {
				return service.GenerateRequest{}, noop, fmt.Errorf("read text_file: %w", err)
			}
			src.Text = string(data)
		}
	case domain.SourcePDF:
		f, err := os.Open(m.resolve(j.Path))
		if err != nil {
			return service.GenerateRequest{}, noop, fmt.Errorf("open pdf: %w", err)
		}
		info, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return service.GenerateRequest{}, noop, fmt.Errorf("stat pdf: %w", err)
		}
		src.PDF = f
		src.PDFSize = info.Size()
		src.FileName = filepath.Base(j.Path)
		return service.GenerateRequest{Source: src, Options: opts}, func() { _ = f.Close() }, nil
	}
	return service.GenerateRequest{Source: src, Options: opts}, noop, nil
}
