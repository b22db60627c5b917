package filesystem

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

// TemplateLoaderAdapter implements TemplateLoader by reading UTF-8 files
type TemplateLoaderAdapter struct{}

// NewTemplateLoaderAdapter creates a new template loader
func NewTemplateLoaderAdapter() ports.TemplateLoader {
	return &TemplateLoaderAdapter{}
}

// Load returns the whole file content
func (l *TemplateLoaderAdapter) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.NewLoadError("template load cancelled", err)
	}
	if path == "" {
		return "", errors.NewConfigurationError("template path is required", nil)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fileError("template file", path, err)
	}
	return string(content), nil
}

// fileError classifies an open/read failure
func fileError(what, path string, err error) error {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.NewNotFoundError(fmt.Sprintf("%s not found: %s", what, path), err)
	case stderrors.Is(err, fs.ErrPermission):
		return errors.NewPermissionDeniedError(fmt.Sprintf("permission denied reading %s: %s", what, path), err)
	default:
		return errors.NewLoadError(fmt.Sprintf("failed to read %s: %s", what, path), err)
	}
}
