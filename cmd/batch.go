package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/wgetter/internal/output"
	"github.com/tanq16/wgetter/internal/utils"
	"gopkg.in/yaml.v3"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [YAML_FILE] [OPTIONS]",
		Short: "Download every link listed in a YAML file, one after another",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			jobs, err := loadBatch(args[0], outputDir)
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			if len(jobs) == 0 {
				output.PrintError("No valid entries found in the batch file")
				os.Exit(1)
			}
			os.Exit(runJobs(cmd.Context(), jobs))
		},
	}
	return cmd
}

// loadBatch reads a YAML list of {link, op} entries. Entries without an op
// save into defaultDir; entries without a link are skipped.
func loadBatch(path, defaultDir string) ([]utils.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}
	var entries []utils.DownloadEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing YAML file: %w", err)
	}
	var jobs []utils.Job
	for i, entry := range entries {
		if entry.URL == "" {
			output.PrintWarning(fmt.Sprintf("Warning: entry %d has an empty link, skipping...", i+1))
			continue
		}
		dir := entry.OutputDir
		if dir == "" {
			dir = defaultDir
		}
		jobs = append(jobs, utils.Job{URL: entry.URL, OutputDir: dir})
	}
	return jobs, nil
}
