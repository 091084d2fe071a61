// Package checksum computes file digests and compares them with the
// Content-MD5 value a server advertised.
package checksum

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

const DefaultBlockSize = 8192

// MD5Sum returns the hex MD5 digest of the file at path, read blockSize
// bytes at a time.
func MD5Sum(path string, blockSize int) (string, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.CopyBuffer(h, onlyReader{f}, make([]byte, blockSize)); err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Matches reports whether a Content-MD5 header value names the same digest as
// hexDigest. Both the hex form and the base64 form of RFC 1864 are accepted.
func Matches(header, hexDigest string) bool {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, hexDigest) {
		return true
	}
	want, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}
	got, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return false
	}
	return bytes.Equal(got, want)
}

// onlyReader hides WriterTo so CopyBuffer reads through the given buffer.
type onlyReader struct {
	io.Reader
}
