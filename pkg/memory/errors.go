package memory

import "errors"

// ErrUnhashableValue is returned when Exists is asked about a value that cannot be a map key.
var ErrUnhashableValue = errors.New("value type is not comparable")
