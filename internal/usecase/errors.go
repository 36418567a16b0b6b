package usecase

import (
	"errors"
	"fmt"

	"github.com/xavierca1/agency-site/internal/entity"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeConflict     = "CONFLICT"
	CodeDatabase     = "DATABASE_ERROR"
)

// DomainError é um erro que o cliente pode corrigir (400/401/404).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError é falha nossa (banco, fila...). Vira 500.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func validationError(message string) error {
	return &DomainError{Code: CodeValidation, Message: message}
}

func notFoundError(message string) error {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func databaseError(message string, err error) error {
	return &TechnicalError{Code: CodeDatabase, Message: message, Err: err}
}

// mapRepoError traduz os erros comuns dos repositórios.
func mapRepoError(err error, what string) error {
	switch {
	case errors.Is(err, entity.ErrNoFields):
		return validationError(entity.ErrNoFields.Error())
	case errors.Is(err, entity.ErrNotFound):
		return notFoundError(what + " not found")
	case errors.Is(err, entity.ErrDuplicate):
		return &DomainError{Code: CodeConflict, Message: what + " already exists"}
	}
	return databaseError("failed to access "+what, err)
}
