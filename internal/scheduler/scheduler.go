package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/wgetter/internal/output"
	"github.com/tanq16/wgetter/internal/utils"
)

type Downloader interface {
	Download(ctx context.Context, rawURL, outputDir string) (string, error)
}

// NewJobs builds one job per URL, all saving into outputDir.
func NewJobs(urls []string, outputDir string) []utils.Job {
	jobs := make([]utils.Job, 0, len(urls))
	for _, u := range urls {
		jobs = append(jobs, utils.Job{ID: uuid.NewString(), URL: u, OutputDir: outputDir})
	}
	return jobs
}

// Run downloads jobs one after another and stops at the first failure.
// It returns the saved paths in job order.
func Run(ctx context.Context, jobs []utils.Job, d Downloader, p *output.Printer) ([]string, error) {
	var saved []string
	for _, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		logger := log.With().Str("op", "scheduler").Str("job", job.ID).Logger()
		p.Plain("Downloading " + job.URL)
		logger.Debug().Msgf("Starting download of %s into %q", job.URL, job.OutputDir)

		path, err := d.Download(ctx, job.URL, job.OutputDir)
		if err != nil {
			logger.Debug().Err(err).Msg("Download failed")
			return saved, fmt.Errorf("downloading %s: %w", job.URL, err)
		}
		p.Blank(1)
		p.Plain("Saved under " + path)
		saved = append(saved, path)
	}
	return saved, nil
}
