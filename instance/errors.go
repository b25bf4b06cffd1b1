package instance

import (
	"errors"
	"strconv"
)

// Sentinel errors for instance construction and parsing.
var (
	// ErrNegativeCount indicates a negative order/item/aisle count in the header record.
	ErrNegativeCount = errors.New("instance: negative count in header")

	// ErrBadBounds indicates waveSizeLB > waveSizeUB.
	ErrBadBounds = errors.New("instance: waveSizeLB exceeds waveSizeUB")

	// ErrItemIDOutOfRange indicates an (itemId, units) pair referenced an id outside [0, numItems).
	ErrItemIDOutOfRange = errors.New("instance: item id out of range")

	// ErrNonPositiveUnits indicates a demanded/stocked units value was <= 0.
	ErrNonPositiveUnits = errors.New("instance: units must be positive")

	// ErrTruncated indicates the input ended before all declared records were read.
	ErrTruncated = errors.New("instance: truncated input")

	// ErrNotInteger indicates a token expected to be an integer could not be parsed as one.
	ErrNotInteger = errors.New("instance: token is not an integer")
)

// ParseError wraps a sentinel with the token offset (0-based, counting
// whitespace-separated tokens from the start of the file) at which it
// occurred, so the caller can report a useful diagnostic.
type ParseError struct {
	Offset int   // token index where the failure was detected
	Err    error // sentinel from the list above
}

func (e *ParseError) Error() string {
	return e.Err.Error() + ": at token " + strconv.Itoa(e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }
