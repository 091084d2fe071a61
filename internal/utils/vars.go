package utils

import (
	"errors"
	"regexp"
)

const DefaultChunkSize = 4096
const TempSuffix = ".tmp"
const ToolUserAgent = "wgetter/1.0"
const socketBufferSize = 1024 * 1024

var (
	ErrNegativeSize = errors.New("number must be non-negative")
	ErrSizeTooLarge = errors.New("number too large")
)

// os.CreateTemp replaces the '*' with a run of decimal digits
var TempFileRegex = regexp.MustCompile(`^.*\.\d+\.tmp$`)
