package erosion

import (
	"errors"
	"fmt"
)

// ErrResource matches any ResourceError.
var ErrResource = errors.New("unable to allocate simulation resources")

// ResourceError reports a simulation resource that could not be created.
type ResourceError struct {
	Resource string
	Err      error
}

func (err *ResourceError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrResource, err.Resource, err.Err)
}

func (err *ResourceError) Unwrap() []error {
	return []error{ErrResource, err.Err}
}
