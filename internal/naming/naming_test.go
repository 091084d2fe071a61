package naming

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestFilenameFromURL(t *testing.T) {
	tests := map[string]struct {
		url    string
		want   string
		wantOK bool
	}{
		"file":            {url: "http://x/a/b/report.pdf", want: "report.pdf", wantOK: true},
		"query ignored":   {url: "https://x/dl/archive.tar.gz?token=abc", want: "archive.tar.gz", wantOK: true},
		"trailing slash":  {url: "http://x/a/b/"},
		"dots only":       {url: "http://x/a/b/..."},
		"no path":         {url: "http://x"},
		"escaped name":    {url: "http://x/my%20file.txt", want: "my file.txt", wantOK: true},
		"unparsable":      {url: "http://[::1"},
		"whitespace name": {url: "http://x/a/%20%09"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := FilenameFromURL(tc.url)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("expected (%q, %v), got (%q, %v)", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}

func TestFilenameFromHeaders(t *testing.T) {
	tests := map[string]struct {
		disposition string
		want        string
		wantOK      bool
	}{
		"quoted attachment":   {disposition: `attachment; filename="data.csv"`, want: "data.csv", wantOK: true},
		"bare inline":         {disposition: `inline; filename=page.html`, want: "page.html", wantOK: true},
		"case folded type":    {disposition: ` Attachment ; filename="a.bin"`, want: "a.bin", wantOK: true},
		"missing header":      {},
		"type only":           {disposition: "attachment"},
		"two filenames":       {disposition: `attachment; filename="a.txt"; filename="b.txt"`},
		"form data":           {disposition: `form-data; name="f"; filename="x.txt"`},
		"no filename param":   {disposition: `attachment; size=42`},
		"path stripped":       {disposition: `attachment; filename="../../etc/passwd"`, want: "passwd", wantOK: true},
		"windows path":        {disposition: `attachment; filename="C:\temp\x.exe"`, want: "x.exe", wantOK: true},
		"empty value":         {disposition: `attachment; filename=""`},
		"other params before": {disposition: `attachment; size=3; filename="z.zip"`, want: "z.zip", wantOK: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			h := make(http.Header)
			if tc.disposition != "" {
				h.Set("Content-Disposition", tc.disposition)
			}
			got, ok := FilenameFromHeaders(h)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("expected (%q, %v), got (%q, %v)", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}

func TestFilenameFromHeaders_AlternateShapes(t *testing.T) {
	lines := []string{
		"Content-Type: text/csv",
		"not a header line",
		`Content-Disposition: attachment; filename="lines.csv"`,
	}
	if got, ok := FilenameFromHeaders(HeaderFromLines(lines)); !ok || got != "lines.csv" {
		t.Errorf("lines: expected lines.csv, got (%q, %v)", got, ok)
	}

	raw := "Content-Length: 3\r\nContent-Disposition: attachment; filename=\"old.csv\"\r\ncontent-disposition: inline; filename=raw.csv\r\n"
	if got, ok := FilenameFromHeaders(HeaderFromString(raw)); !ok || got != "raw.csv" {
		t.Errorf("raw: expected raw.csv (last value wins), got (%q, %v)", got, ok)
	}
}

func TestFixExisting(t *testing.T) {
	tests := map[string]struct {
		existing []string
		filename string
		want     string
	}{
		"first copy":        {existing: []string{"report.txt"}, filename: "report.txt", want: "report(1).txt"},
		"after copy":        {existing: []string{"report.txt", "report(1).txt"}, filename: "report.txt", want: "report(2).txt"},
		"spaced copies":     {existing: []string{"report.txt", "report (4).txt"}, filename: "report.txt", want: "report(5).txt"},
		"highest wins":      {existing: []string{"a.tar.gz", "a.tar(2).gz", "a.tar(7).gz", "a.tar(3).gz"}, filename: "a.tar.gz", want: "a.tar(8).gz"},
		"non numeric":       {existing: []string{"x.bin", "x(abc).bin", "x().bin"}, filename: "x.bin", want: "x(1).bin"},
		"unrelated entries": {existing: []string{"report.txt", "reports(9).txt"}, filename: "report.txt", want: "report(1).txt"},
		"no extension":      {existing: []string{"README", "README(1)"}, filename: "README", want: "README(2)"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tc.existing {
				if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := FixExisting(tc.filename, dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFixExisting_MissingDir(t *testing.T) {
	if _, err := FixExisting("a.txt", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
