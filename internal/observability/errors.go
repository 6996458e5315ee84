package observability

import (
	"errors"

	"github.com/couchcryptid/weatherman/internal/domain"
)

// ErrorKind maps a report error to a low-cardinality metric label.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrFileNotFound):
		return "file_not_found"
	case errors.Is(err, domain.ErrUnreadableFile):
		return "unreadable_file"
	case errors.Is(err, domain.ErrEmptyDataSet):
		return "empty_data_set"
	case errors.Is(err, domain.ErrInvalidSelector), errors.Is(err, domain.ErrInvalidMode):
		return "invalid_selector"
	case errors.Is(err, domain.ErrOutOfRange):
		return "out_of_range"
	default:
		return "internal"
	}
}
