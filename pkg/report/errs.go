package report

import "errors"

// ErrUnknownFormat indicates an output format that has no writer.
var ErrUnknownFormat = errors.New("report: unknown format")
