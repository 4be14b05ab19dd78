package query

import "errors"

// ErrInvalidArgument is returned when a query cannot be built from the
// given inputs. Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
