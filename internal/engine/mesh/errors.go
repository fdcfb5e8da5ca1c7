package mesh

import "errors"

// Mesh conversion errors.
var (
	ErrUnsupportedPrimitive     = errors.New("unsupported primitive: only triangles can be converted")
	ErrMissingRequiredAttribute = errors.New("missing required attribute")
	ErrCornerOutOfRange         = errors.New("corner index out of range")
	ErrIndexOverflow            = errors.New("index does not fit the requested width")
	ErrShortRecord              = errors.New("vertex record shorter than layout stride")
)
