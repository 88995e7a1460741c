package fixedbytes

import "github.com/cockroachdb/errors"

var (
	ErrLengthMismatch    = errors.New("length mismatch")
	ErrInvalidHexLength  = errors.New("invalid hex length")
	ErrInvalidHexDigit   = errors.New("invalid hex digit")
	ErrNullValue         = errors.New("null identifier value")
	ErrUnsupportedSource = errors.New("unsupported source value")
)

func lengthMismatch(got int, want int) error {
	return errors.Wrapf(ErrLengthMismatch, "got %d bytes, want %d", got, want)
}
