package entity

import "errors"

// Erros de persistência que atravessam camadas. Os repositórios devolvem
// estes valores e os casos de uso decidem o que mostrar.
var (
	ErrNotFound  = errors.New("registro não encontrado")
	ErrDuplicate = errors.New("registro duplicado")
	ErrNoFields  = errors.New("no fields to update")
)
