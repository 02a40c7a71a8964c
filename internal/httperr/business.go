package httperr

import "errors"

// Kind é a taxonomia de erro de negócio do painel.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindMissingInput      Kind = "missing_input"
	KindValidation        Kind = "validation_error"
	KindInvalidTransition Kind = "invalid_transition"
	KindInvalidState      Kind = "invalid_state"
	KindPersistence       Kind = "persistence_error"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

func ErrNotFound(code string) error          { return ErrBusiness(KindNotFound, code) }
func ErrMissingInput(code string) error      { return ErrBusiness(KindMissingInput, code) }
func ErrValidation(code string) error        { return ErrBusiness(KindValidation, code) }
func ErrInvalidTransition(code string) error { return ErrBusiness(KindInvalidTransition, code) }
func ErrInvalidState(code string) error      { return ErrBusiness(KindInvalidState, code) }
func ErrPersistence(code string) error       { return ErrBusiness(KindPersistence, code) }

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}
