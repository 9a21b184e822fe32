package domain

import "errors"

// ErrJobDocumentExists is returned when a job document for the requested date
// is already present. Creation is idempotent, so callers treat this as an
// informational outcome rather than a failure.
var ErrJobDocumentExists = errors.New("job document already exists for this date")
