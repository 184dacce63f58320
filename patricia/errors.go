package patricia

import "errors"

// ErrOutOfRange is returned by Tree.At for a key the tree does not hold.
var ErrOutOfRange = errors.New("key out of range")
