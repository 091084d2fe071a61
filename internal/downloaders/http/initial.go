package wgethttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/wgetter/internal/naming"
	"github.com/tanq16/wgetter/internal/output"
	"github.com/tanq16/wgetter/internal/utils"
)

var ErrInterrupted = errors.New("download aborted by user")

// InterruptedError is returned when the context is cancelled. Partial is the
// absolute path of the temp file left on disk, empty when the download was
// cancelled before the response arrived.
type InterruptedError struct {
	Partial string
	Err     error
}

func (e *InterruptedError) Error() string {
	if e.Partial == "" {
		return ErrInterrupted.Error()
	}
	return fmt.Sprintf("%v: partial file %s", ErrInterrupted, e.Partial)
}

func (e *InterruptedError) Unwrap() []error {
	return []error{ErrInterrupted, e.Err}
}

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.StatusCode, e.URL)
}

type Config struct {
	ChunkSize    int
	ConsoleWidth int
	Client       utils.HTTPDoer
	Progress     io.Writer // progress lines
	Printer      *output.Printer
}

// HTTPDownloader fetches one URL per Download call with a single GET.
type HTTPDownloader struct {
	cfg Config
}

func NewHTTPDownloader(cfg Config) *HTTPDownloader {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = utils.DefaultChunkSize
	}
	if cfg.ConsoleWidth <= 0 {
		cfg.ConsoleWidth = output.DefaultConsoleWidth
	}
	if cfg.Client == nil {
		cfg.Client = utils.NewWgetHTTPClient(utils.HTTPClientConfig{})
	}
	if cfg.Progress == nil {
		cfg.Progress = os.Stdout
	}
	if cfg.Printer == nil {
		cfg.Printer = output.NewPrinter(os.Stdout)
	}
	return &HTTPDownloader{cfg: cfg}
}

// Download saves rawURL into outputDir and returns the absolute path of the
// saved file. Size and checksum mismatches are printed, not returned.
func (d *HTTPDownloader) Download(ctx context.Context, rawURL, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = "."
	}
	if err := validateURL(rawURL); err != nil {
		return "", err
	}

	filename, ok := naming.FilenameFromURL(rawURL)
	if !ok {
		filename = "."
	}
	tempPath, err := reserveTemp(outputDir, filename)
	if err != nil {
		return "", err
	}
	log.Debug().Str("op", "http/initial").Msgf("Reserved temp file %s for %s", tempPath, rawURL)

	sess := newSession(rawURL, outputDir, tempPath)
	header, err := d.fetch(ctx, sess)
	if err != nil {
		return "", err
	}

	if name, ok := naming.FilenameFromHeaders(header); ok {
		filename = name
	}
	return d.commit(sess, filename, header.Get("Content-MD5"))
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme: %q", parsed.Scheme)
	}
	return nil
}

// reserveTemp picks a unique temp path in dir and removes the file again, so
// only the name is held until the body is written.
func reserveTemp(dir, filename string) (string, error) {
	f, err := os.CreateTemp(dir, utils.TempPattern(filename))
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error closing temp file: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("error removing temp file: %w", err)
	}
	return path, nil
}

// parseContentLength returns the advertised body size, if it is a valid
// unsigned integer.
func parseContentLength(h http.Header) (uint64, bool) {
	size, err := strconv.ParseUint(strings.TrimSpace(h.Get("Content-Length")), 10, 64)
	if err != nil {
		return 0, false
	}
	return size, true
}
