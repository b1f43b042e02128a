package paramtable

import "errors"

// ErrIndexOutOfRange indicates a row or column index outside the table's
// current shape.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidSnapshot indicates a snapshot whose sequences are not
// length-consistent with each other.
var ErrInvalidSnapshot = errors.New("snapshot shape is inconsistent")
