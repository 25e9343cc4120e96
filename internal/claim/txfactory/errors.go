package txfactory

import (
	"fmt"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

// BuildError reports why a candidate transaction could not be produced.
type BuildError struct {
	ResourceID string
	Reason     string
	Err        error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("build %s: %s: %v", e.ResourceID, e.Reason, e.Err)
	}
	return fmt.Sprintf("build %s: %s", e.ResourceID, e.Reason)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorCategory classifies every build failure as model.CategoryBuild.
func (e *BuildError) ErrorCategory() model.ErrorCategory {
	return model.CategoryBuild
}

func buildErr(resourceID, reason string, err error) *BuildError {
	return &BuildError{ResourceID: resourceID, Reason: reason, Err: err}
}
