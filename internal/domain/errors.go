package domain

import "errors"

var (
	// ErrFileNotFound is returned when no weather file matches a selector.
	ErrFileNotFound = errors.New("weather file not found")

	// ErrUnreadableFile wraps I/O failures while reading a located file.
	ErrUnreadableFile = errors.New("unreadable weather file")

	// ErrEmptyDataSet is returned by reducers that cannot summarize zero rows.
	ErrEmptyDataSet = errors.New("empty data set")

	// ErrInvalidSelector is returned for malformed YYYY or YYYY/MM date strings.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrInvalidMode is returned when a mode outside the known set is dispatched.
	ErrInvalidMode = errors.New("invalid report mode")

	// ErrOutOfRange is returned by renderers handed values they cannot draw.
	ErrOutOfRange = errors.New("value out of range")
)
