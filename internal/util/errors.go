package util

import "errors"

var (
	ErrNotWritable   = errors.New("directory is not writable")
	ErrNoQueryRecord = errors.New("no query record found")
)
