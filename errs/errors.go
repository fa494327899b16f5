// Package errs defines the sentinel errors returned by the rover module.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is regardless of the context added at the call site:
//
//	if err := rov.Index(key, value); err != nil {
//	    if errors.Is(err, errs.ErrDecodeFailed) {
//	        // skip the record, keep ingesting
//	    }
//	}
package errs

import "errors"

var (
	// ErrNilDecoder is returned when an indexer is constructed without a
	// value decoder.
	ErrNilDecoder = errors.New("value decoder is nil")

	// ErrDecodeFailed is returned by Index when the injected decoder could
	// not interpret the raw value. The underlying decoder error is attached
	// via error wrapping.
	ErrDecodeFailed = errors.New("value decode failed")

	// ErrTooManyColumns is returned by Index when a decoded record contains
	// more columns than the positional index range (0-255) can address.
	ErrTooManyColumns = errors.New("decoded record exceeds column limit")

	// ErrShortValue is returned by the binary decoder when the raw value
	// ends in the middle of a column.
	ErrShortValue = errors.New("truncated column data")

	// ErrUnknownColumnKind is returned by the binary decoder when a column
	// carries an unrecognized kind tag.
	ErrUnknownColumnKind = errors.New("unknown column kind")

	// ErrTextTooLong is returned by the binary encoder when a text column
	// exceeds the maximum encodable length.
	ErrTextTooLong = errors.New("text column too long")

	// ErrUnknownCompression is returned by the codec factory for an
	// unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
)
