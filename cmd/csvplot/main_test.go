package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"berkotech.co/csvplot/internal/config"
)

func TestCollectJobFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.toml")
	body := `files = ["a.csv"]
separator = ","
fields = ["x", "y", "", "", "", "", "0", "1", "", "0", "false", "line", "red", "solid", "A"]
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	jobPath = path
	t.Cleanup(func() { jobPath, save = "", false })

	cmd := &cobra.Command{}
	cmd.Flags().BoolVar(&save, "save", false, "")
	if err := cmd.Flags().Set("save", "true"); err != nil {
		t.Fatal(err)
	}

	job, err := collectJob(cmd, config.Default(), nil)
	if err != nil {
		t.Fatalf("collectJob: %v", err)
	}
	if job.Separator != "," || job.Decimal != "," {
		t.Errorf("separator/decimal = %q %q", job.Separator, job.Decimal)
	}
	if !job.Save {
		t.Error("--save not applied")
	}
	if len(job.Fields) != 15 {
		t.Errorf("fields = %d", len(job.Fields))
	}
}
