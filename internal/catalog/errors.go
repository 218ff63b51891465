package catalog

import (
	"errors"
	"fmt"

	"github.com/agenthands/cinegraph/internal/core/model"
)

var ErrLoad = errors.New("failed to load catalog")

// LoadError reports which catalog could not be read.
type LoadError struct {
	Source model.Source
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrLoad, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
