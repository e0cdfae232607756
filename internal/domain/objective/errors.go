package objective

import "errors"

var ErrObjectiveNotFound = errors.New("objective not found")
