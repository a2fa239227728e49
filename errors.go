package escposgo

import "errors"

var (
	// ErrUnsupportedEncoding is returned when a text encoding name has no
	// transcoding table.
	ErrUnsupportedEncoding = errors.New("unsupported text encoding")

	// ErrInvalidArgument is returned when an argument lies outside the range
	// the printer protocol can carry.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBuilt is returned by operations issued after Build without Reset.
	ErrBuilt = errors.New("encoder already built")
)
