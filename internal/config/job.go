package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Job is everything the forms collect for one run.
type Job struct {
	Files     []string `toml:"files"`
	Separator string   `toml:"separator"`
	Decimal   string   `toml:"decimal"`
	Save      bool     `toml:"save"`
	// Fields is the flat form value list: 6 header values then 9 per file.
	Fields []string `toml:"fields"`
}

// NewJob starts a job for files with the input and output defaults of cfg.
func NewJob(cfg Config, files []string) Job {
	return Job{
		Files:     files,
		Separator: cfg.Input.Separator,
		Decimal:   cfg.Input.Decimal,
		Save:      cfg.Output.Save,
	}
}

// LoadJob reads a job file. Missing separator and decimal come from cfg.
func LoadJob(path string, cfg Config) (Job, error) {
	job := NewJob(cfg, nil)
	if _, err := toml.DecodeFile(path, &job); err != nil {
		return job, fmt.Errorf("load job %s: %w", path, err)
	}
	if len(job.Files) == 0 {
		return job, fmt.Errorf("job %s lists no files", path)
	}
	return job, nil
}

// SplitFiles splits a semicolon separated file list, dropping blank entries.
func SplitFiles(s string) []string {
	var files []string
	for _, f := range strings.Split(s, ";") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}
