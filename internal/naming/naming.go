// Package naming derives destination filenames for downloads from URLs and
// Content-Disposition headers, and picks a free name when one is taken.
package naming

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// FilenameFromURL returns the last element of the URL path, if it has one
// that is not just whitespace and dots.
func FilenameFromURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	name := baseName(parsed.Path)
	if strings.Trim(name, " \n\t.") == "" {
		return "", false
	}
	return name, true
}

// FilenameFromHeaders extracts the filename parameter of an inline or
// attachment Content-Disposition header. Several filename parameters make the
// header ambiguous and yield no name.
func FilenameFromHeaders(h http.Header) (string, bool) {
	cdisp := h.Get("Content-Disposition")
	if cdisp == "" {
		return "", false
	}
	parts := strings.Split(cdisp, ";")
	if len(parts) == 1 {
		return "", false
	}
	switch strings.ToLower(strings.TrimSpace(parts[0])) {
	case "inline", "attachment":
	default:
		return "", false
	}
	var fnames []string
	for _, p := range parts[1:] {
		if strings.HasPrefix(strings.TrimSpace(p), "filename=") {
			fnames = append(fnames, p)
		}
	}
	if len(fnames) != 1 {
		return "", false
	}
	value := strings.SplitN(fnames[0], "=", 3)[1]
	name := baseName(strings.Trim(value, " \t\""))
	if name == "" {
		return "", false
	}
	return name, true
}

// HeaderFromLines builds a header from "Key: Value" lines. Lines without a
// colon are skipped and later values replace earlier ones.
func HeaderFromLines(lines []string) http.Header {
	h := make(http.Header)
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		h.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return h
}

// HeaderFromString is HeaderFromLines over a raw header block.
func HeaderFromString(raw string) http.Header {
	return HeaderFromLines(strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r'
	}))
}

// FixExisting returns a variant of filename, stem(N).ext, that does not clash
// with the numbered copies already present in dir. N is one more than the
// highest index found among entries named stem(N).ext or "stem (N).ext".
func FixExisting(filename, dir string) (string, error) {
	stem, ext, hasExt := cutLast(filename, ".")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("error listing %s: %w", dir, err)
	}
	highest := 0
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, stem) {
			continue
		}
		withoutExt, _, _ := cutLast(name, ".")
		if idx, ok := copyIndex(strings.TrimPrefix(withoutExt, stem)); ok && idx > highest {
			highest = idx
		}
	}
	if !hasExt {
		return fmt.Sprintf("%s(%d)", stem, highest+1), nil
	}
	return fmt.Sprintf("%s(%d).%s", stem, highest+1, ext), nil
}

// copyIndex parses "(N)" or " (N)".
func copyIndex(suffix string) (int, bool) {
	suffix = strings.TrimPrefix(suffix, " ")
	if len(suffix) < 3 || suffix[0] != '(' || suffix[len(suffix)-1] != ')' {
		return 0, false
	}
	digits := suffix[1 : len(suffix)-1]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return idx, true
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// baseName keeps what follows the last slash or backslash.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}
