package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Blainegunn/generator-aem-component/internal/config"
	"github.com/Masterminds/semver/v3"
)

// PreconditionError means the generator was started somewhere it cannot run.
// It is raised before any prompt is shown.
type PreconditionError struct {
	Path   string
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Reason, e.Path)
}

// VerifyRoots checks that every path is configured and that the scripts
// entry and the aggregate style file exist.
func VerifyRoots(cfg config.Config) error {
	if missing := cfg.Missing(); len(missing) > 0 {
		return &PreconditionError{
			Reason: fmt.Sprintf("missing paths configuration (%s); set them in package.json \"paths\" or %s",
				strings.Join(missing, ", "), config.FileName),
		}
	}

	for _, p := range []string{cfg.Paths.Scripts, cfg.Paths.Styles} {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &PreconditionError{Path: p, Reason: "Are you sure you're in the right location? Could not find"}
			}
			return fmt.Errorf("checking %s: %w", p, err)
		}
	}
	return nil
}

// CheckVersion fails when current is older than the project's minimum.
// Non-semver builds (e.g. "dev") and an empty minimum skip the check.
func CheckVersion(minimum, current string) error {
	if minimum == "" {
		return nil
	}
	minV, err := semver.NewVersion(strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return fmt.Errorf("invalid minVersion %q: %w", minimum, err)
	}
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return nil
	}
	if cv.LessThan(minV) {
		return &PreconditionError{
			Reason: fmt.Sprintf("this project requires aemgen %s or newer, running %s", minimum, current),
		}
	}
	return nil
}
