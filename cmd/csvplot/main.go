// Package main provides the csvplot command.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"berkotech.co/csvplot/internal/config"
	"berkotech.co/csvplot/internal/form"
	"berkotech.co/csvplot/internal/logging"
	"berkotech.co/csvplot/internal/output"
	"berkotech.co/csvplot/internal/pipeline"
	"berkotech.co/csvplot/internal/viewer"
)

var (
	configPath string
	jobPath    string
	save       bool
	noShow     bool
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csvplot [file1;file2;...]",
		Short: "Plot headerless delimited data files",
		Long: `csvplot reads one or more headerless delimited files, asks for the plot
settings of each file and draws point, bar, heatmap, map or line plots.

A semicolon separated file list skips the file selection form.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.Flags().StringVar(&jobPath, "job", "", "TOML job file with files and form values (no forms shown)")
	rootCmd.Flags().BoolVar(&save, "save", false, "save figures under <input dir>/out")
	rootCmd.Flags().BoolVar(&noShow, "no-show", false, "do not open the figure window")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "csvplot:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	cleanup, err := logging.Setup(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer cleanup()

	job, err := collectJob(cmd, cfg, args)
	if errors.Is(err, form.ErrCancelled) {
		// cancelled forms end the program without output
		return nil
	}
	if err != nil {
		return err
	}

	var presenter output.Presenter = viewer.None{}
	if cfg.Output.Show && !noShow {
		presenter = viewer.Fyne{Title: "csvplot"}
	}
	if _, err := pipeline.Run(job, cfg, presenter); err != nil {
		logging.Errorf("run failed: %v", err)
		return err
	}
	return nil
}

// collectJob builds the job from the job file, the argument or the forms.
func collectJob(cmd *cobra.Command, cfg config.Config, args []string) (config.Job, error) {
	var (
		job config.Job
		err error
	)
	switch {
	case jobPath != "":
		job, err = config.LoadJob(jobPath, cfg)
	case len(args) == 1:
		job = config.NewJob(cfg, config.SplitFiles(args[0]))
		if len(job.Files) == 0 {
			err = form.ErrNoFiles
		}
	default:
		job, err = form.SelectFiles(config.NewJob(cfg, nil))
	}
	if err != nil {
		return job, err
	}
	if cmd.Flags().Changed("save") {
		job.Save = save
	}
	if len(job.Fields) == 0 {
		job.Fields, err = form.PlotFields(job.Files)
	}
	return job, err
}
