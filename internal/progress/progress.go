// Package progress renders single-line download progress. A Reporter is
// chosen once per download and then fed a Snapshot after every chunk.
package progress

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/tanq16/wgetter/internal/utils"
)

// MinBarWidth is the console width the bar layout needs besides the bar.
const MinBarWidth = 57

// UnknownETA is shown until enough speed samples exist to estimate one.
const UnknownETA = "unknown "

type Snapshot struct {
	Bytes      uint64
	Total      uint64
	TotalKnown bool
	Speed      float64 // bytes per second, 0 before the first sample
	ETA        time.Duration
	ETAKnown   bool
}

func (s Snapshot) done() bool {
	return s.TotalKnown && s.Bytes >= s.Total
}

func (s Snapshot) fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Bytes) / float64(s.Total)
}

func (s Snapshot) percent() int {
	if s.Total == 0 {
		return 100
	}
	return int(float64(s.Bytes) * 100 / float64(s.Total))
}

func (s Snapshot) eta() string {
	if !s.ETAKnown {
		return UnknownETA
	}
	return FormatETA(s.ETA)
}

type Reporter interface {
	Report(s Snapshot)
}

// Select picks the reporter for a download: Unknown when the total size is
// not known, otherwise Bar or Narrow depending on the console width.
func Select(w io.Writer, width int, totalKnown bool) Reporter {
	switch {
	case !totalKnown:
		return &Unknown{w: w}
	case width > MinBarWidth:
		return &Bar{w: w, avail: AvailWidth(width)}
	default:
		return &Narrow{w: w}
	}
}

// AvailWidth is the number of columns left for the bar itself. Windows
// consoles need two spare columns to avoid wrapping.
func AvailWidth(width int) int {
	if runtime.GOOS == "windows" {
		return width - MinBarWidth - 2
	}
	return width - MinBarWidth
}

type Bar struct {
	w     io.Writer
	avail int
}

func (b *Bar) Report(s Snapshot) {
	shaded := int(s.fraction() * float64(b.avail))
	fmt.Fprintf(b.w, " %s%% [%s>%s] %s/%s %s eta%s\r",
		center(fmt.Sprint(s.percent()), 4),
		repeat("=", shaded-1),
		repeat(" ", b.avail-shaded),
		center(utils.HumanSize(float64(s.Bytes)), 9),
		center(utils.HumanSize(float64(s.Total)), 9),
		center(utils.HumanSize(s.Speed)+"/s", 11),
		center(s.eta(), 10))
	finish(b.w, s)
}

type Unknown struct {
	w io.Writer
}

func (u *Unknown) Report(s Snapshot) {
	fmt.Fprintf(u.w, "Downloading: %s / Unknown - %s/s\r\r",
		utils.HumanSize(float64(s.Bytes)), utils.HumanSize(s.Speed))
	// TotalKnown is false here, so the line is never terminated by finish.
	finish(u.w, s)
}

type Narrow struct {
	w io.Writer
}

func (n *Narrow) Report(s Snapshot) {
	fmt.Fprintf(n.w, "D: %d%% -%s/%seta %s\r",
		s.percent(),
		center(utils.HumanSize(float64(s.Bytes)), 10),
		center(utils.HumanSize(float64(s.Total)), 10),
		s.eta())
	finish(n.w, s)
}

func finish(w io.Writer, s Snapshot) {
	if s.done() {
		fmt.Fprint(w, "\n")
	}
}

// FormatETA renders a duration as H:MM:SS, prefixed by a day count when
// longer than a day.
func FormatETA(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	days := secs / 86400
	secs %= 86400
	hms := fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
	switch days {
	case 0:
		return hms
	case 1:
		return "1 day, " + hms
	default:
		return fmt.Sprintf("%d days, %s", days, hms)
	}
}

// center pads s on both sides to width, putting the odd column on the left
// when width is odd and on the right otherwise.
func center(s string, width int) string {
	marg := width - len(s)
	if marg <= 0 {
		return s
	}
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
