package usecases

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indica que o recurso solicitado não existe
	ErrNotFound = errors.New("resource not found")
	// ErrLinkExpired indica que o link de pesquisa expirou
	ErrLinkExpired = errors.New("survey link expired")
	// ErrLinkCompleted indica que o link de pesquisa já foi respondido
	ErrLinkCompleted = errors.New("survey link already completed")
)

// notFound traduz gorm.ErrRecordNotFound para ErrNotFound, mantendo os demais erros
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
