package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/interviewprep/internal/common"
)

var (
	ErrImageTooLarge = fmt.Errorf("%w: image is too large", common.ErrorValidation)
	ErrNotAnImage    = fmt.Errorf("%w: file is not an image", common.ErrorValidation)
	ErrEmptyImage    = fmt.Errorf("%w: image is empty", common.ErrorValidation)
)

// internalErr hides storage and database details from callers while keeping the
// cause for logs.
func internalErr(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", common.ErrorInternal, op, err)
}
