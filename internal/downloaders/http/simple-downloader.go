package wgethttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/wgetter/internal/checksum"
	"github.com/tanq16/wgetter/internal/naming"
	"github.com/tanq16/wgetter/internal/progress"
)

// fetch issues the GET and streams the body into the session's temp file.
// It returns the response headers once the body is exhausted.
func (d *HTTPDownloader) fetch(ctx context.Context, sess *session) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sess.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GET request: %w", err)
	}
	resp, err := d.cfg.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, sess.interrupted(ctx.Err())
		}
		return nil, fmt.Errorf("error executing GET request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: sess.url, StatusCode: resp.StatusCode}
	}

	outFile, err := os.Create(sess.tempPath)
	if err != nil {
		return nil, fmt.Errorf("error creating output file: %w", err)
	}
	defer outFile.Close()

	sess.total, sess.totalKnown = parseContentLength(resp.Header)
	reporter := progress.Select(d.cfg.Progress, d.cfg.ConsoleWidth, sess.totalKnown)
	log.Debug().Str("op", "http/simple-downloader").Msgf("Streaming %s (size known: %v, %d bytes)", sess.url, sess.totalKnown, sess.total)

	if err := d.stream(ctx, sess, resp.Body, outFile, reporter); err != nil {
		if ctx.Err() != nil {
			return nil, sess.interrupted(ctx.Err())
		}
		return nil, err
	}
	if err := outFile.Close(); err != nil {
		return nil, fmt.Errorf("error closing output file: %w", err)
	}
	return resp.Header, nil
}

// stream copies body to out chunk by chunk, sampling speed and reporting
// progress after every written chunk.
func (d *HTTPDownloader) stream(ctx context.Context, sess *session, body io.Reader, out io.Writer, reporter progress.Reporter) error {
	buffer := make([]byte, d.cfg.ChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, readErr := readChunk(body, buffer)
		sess.observe(time.Now())
		// counted before the end check, so the empty final read never reports
		sess.bytes += uint64(n)
		if n == 0 && errors.Is(readErr, io.EOF) {
			return nil
		}
		if n > 0 {
			if _, err := out.Write(buffer[:n]); err != nil {
				return fmt.Errorf("error writing to output file: %w", err)
			}
			reporter.Report(sess.snapshot())
		}
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("error reading response body: %w", readErr)
		}
	}
}

// readChunk fills buf unless the stream ends or fails first. A short chunk
// comes back with a nil error; the following call reports io.EOF.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			if err == io.EOF && n > 0 {
				return n, nil
			}
			return n, err
		}
	}
	return n, nil
}

// commit moves the temp file to its final name and runs the integrity checks.
func (d *HTTPDownloader) commit(sess *session, filename, md5Header string) (string, error) {
	finalPath := filepath.Join(sess.dir, filename)
	if _, err := os.Stat(finalPath); err == nil {
		fixed, err := naming.FixExisting(filename, sess.dir)
		if err != nil {
			return "", err
		}
		log.Debug().Str("op", "http/simple-downloader").Msgf("%s exists, saving as %s", filename, fixed)
		finalPath = filepath.Join(sess.dir, fixed)
	}
	if err := os.Rename(sess.tempPath, finalPath); err != nil {
		return "", fmt.Errorf("error renaming (finalizing) output file: %w", err)
	}
	finalPath = absPath(finalPath)
	log.Debug().Str("op", "http/simple-downloader").Msgf("Saved %d bytes to %s in %s", sess.bytes, finalPath, time.Since(sess.start).Round(time.Millisecond))

	if sess.totalKnown && sess.total != sess.bytes {
		d.cfg.Printer.Blank(2)
		d.cfg.Printer.Warning("WARNING!! Downloaded file size mismatches... Probably corrupted...")
	}

	if md5Header != "" {
		d.cfg.Printer.Blank(1)
		d.cfg.Printer.Info("Validating MD5 checksum...")
		digest, err := checksum.MD5Sum(finalPath, checksum.DefaultBlockSize)
		if err != nil {
			return finalPath, err
		}
		if checksum.Matches(md5Header, digest) {
			d.cfg.Printer.Success("MD5 checksum passed!")
		} else {
			d.cfg.Printer.Error("MD5 checksum do NOT passed!!!")
		}
	}
	return finalPath, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
