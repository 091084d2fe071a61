package utils

// Job is one URL handed to the scheduler.
type Job struct {
	ID        string
	URL       string
	OutputDir string
}

type DownloadEntry struct {
	URL       string `yaml:"link"`
	OutputDir string `yaml:"op,omitempty"`
}
