package lookup

import "errors"

// ErrUnsupportedMode is returned by BulkLookup for any mode other than
// ModeSimplified. Other modes are not implemented.
var ErrUnsupportedMode = errors.New("lookup mode not implemented")
