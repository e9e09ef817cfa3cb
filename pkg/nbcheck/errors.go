package nbcheck

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the notebook file does not exist.
var ErrNotFound = errors.New("notebook not found")

// ErrRead indicates the notebook file exists but could not be read.
var ErrRead = errors.New("cannot read notebook")

// ErrParse indicates the notebook content is not valid JSON.
var ErrParse = errors.New("invalid notebook JSON")

// ErrSchema indicates the notebook JSON lacks the expected structure.
var ErrSchema = errors.New("invalid notebook structure")

// LoadError represents a fatal error while loading a notebook.
type LoadError struct {
	Path string
	Kind error // ErrNotFound, ErrRead, ErrParse or ErrSchema
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Is matches the sentinel kind so errors.Is(err, ErrSchema) works.
func (e *LoadError) Is(target error) bool {
	return target == e.Kind
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(path string, kind, err error) *LoadError {
	return &LoadError{Path: path, Kind: kind, Err: err}
}
