package wgethttp

import (
	"os"
	"time"

	"github.com/tanq16/wgetter/internal/progress"
)

const (
	sampleInterval = time.Second
	sampleWindow   = 3
)

// session holds the running counters of one Download call.
type session struct {
	url      string
	dir      string
	tempPath string

	bytes      uint64
	total      uint64
	totalKnown bool

	start           time.Time
	lastSample      time.Time
	lastSampleBytes uint64
	samples         []float64
	speed           float64
	eta             time.Duration
	etaKnown        bool
}

func newSession(url, dir, tempPath string) *session {
	now := time.Now()
	return &session{
		url:        url,
		dir:        dir,
		tempPath:   tempPath,
		start:      now,
		lastSample: now,
		samples:    make([]float64, 0, sampleWindow),
	}
}

// observe takes a speed sample when more than a second has passed since the
// previous one. Every third sample refreshes the ETA from their mean and
// starts a new window.
func (s *session) observe(now time.Time) {
	elapsed := now.Sub(s.lastSample)
	if elapsed <= sampleInterval {
		return
	}
	s.speed = float64(s.bytes-s.lastSampleBytes) / elapsed.Seconds()
	s.lastSample = now
	s.lastSampleBytes = s.bytes

	if len(s.samples) == sampleWindow {
		s.samples = s.samples[1:]
	}
	s.samples = append(s.samples, s.speed)
	if !s.totalKnown || len(s.samples) < sampleWindow {
		return
	}

	var sum float64
	for _, v := range s.samples {
		sum += v
	}
	if mean := sum / sampleWindow; mean > 0 {
		remaining := float64(s.total) - float64(s.bytes)
		s.eta = time.Duration(max(int64(remaining/mean), 0)) * time.Second
		s.etaKnown = true
	}
	s.samples = s.samples[:0]
}

func (s *session) snapshot() progress.Snapshot {
	return progress.Snapshot{
		Bytes:      s.bytes,
		Total:      s.total,
		TotalKnown: s.totalKnown,
		Speed:      s.speed,
		ETA:        s.eta,
		ETAKnown:   s.etaKnown,
	}
}

// interrupted wraps err for a cancelled download. Partial is only set once
// the temp file has been created.
func (s *session) interrupted(err error) *InterruptedError {
	ierr := &InterruptedError{Err: err}
	if _, statErr := os.Stat(s.tempPath); statErr == nil {
		ierr.Partial = absPath(s.tempPath)
	}
	return ierr
}
