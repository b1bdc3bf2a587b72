package errorz

import "errors"

var (
	InvalidParameter = errors.New("invalid parameter")
	EncodingFailure  = errors.New("encoding failure")
	InvalidImage     = errors.New("invalid image")
	IOFailure        = errors.New("io failure")
	Unreadable       = errors.New("qr code is not readable")
	Aborted          = errors.New("aborted")
)

var kinds = []error{InvalidParameter, EncodingFailure, InvalidImage, IOFailure, Unreadable, Aborted}

// KindOf returns the sentinel err wraps, or nil if it wraps none of them.
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
