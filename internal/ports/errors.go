package ports

import "errors"

// ErrUniqueViolation is returned when a create hits an existing natural
// key (e.g. a second entity with the same name). The write is rolled
// back before the error is surfaced.
var ErrUniqueViolation = errors.New("unique constraint violation")
