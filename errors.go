package wpressarc

import (
	"errors"

	"github.com/kugland/wpressarc/internal/field"
)

// Sentinel errors for archive operations.
var (
	// ErrTruncatedHeader is returned when a stream ends before a full
	// 4377-byte header record could be read.
	ErrTruncatedHeader = errors.New("wpressarc: truncated header")

	// ErrFieldOverflow is returned when a header field does not fit its
	// fixed width at encode time. Values are never silently truncated.
	ErrFieldOverflow = field.ErrOverflow

	// ErrMalformedNumber is returned when a numeric header field contains
	// bytes other than ASCII digits and trailing NUL padding.
	ErrMalformedNumber = field.ErrMalformedNumber
)
