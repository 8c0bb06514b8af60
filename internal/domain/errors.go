package domain

import "errors"

// Business-rule rejections shared by every service. Handlers map them to
// HTTP statuses with errors.Is; services wrap them with context via fmt.Errorf.
var (
	ErrForbidden          = errors.New("operation not permitted for caller")
	ErrInvalidState       = errors.New("transition not allowed from current state")
	ErrConflict           = errors.New("lost update race")
	ErrValidation         = errors.New("invalid input")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNotFound           = errors.New("entity not found")
	ErrDuplicateSignature = errors.New("document already signed by user")
	ErrDuplicateReview    = errors.New("review already exists for task")

	// ErrUnavailable covers storage-level transient failures that survived a retry.
	ErrUnavailable = errors.New("storage temporarily unavailable")
)
