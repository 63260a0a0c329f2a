package repositories

import "errors"

// ErrLinkAlreadyUsed indica que o link já foi usado para enviar uma resposta
var ErrLinkAlreadyUsed = errors.New("survey link already used")
