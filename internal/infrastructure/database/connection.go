package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Chave para o contexto que indica se o timezone já foi configurado
type timezoneKey struct{}

// SetTimezoneCallback cria um callback GORM que define o timezone da sessão antes das consultas
func SetTimezoneCallback(timezone string) func(db *gorm.DB) {
	stmt := fmt.Sprintf("SET timezone = '%s'", timezone)
	return func(db *gorm.DB) {
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return // evita recursão
		}

		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)
		db.Session(&gorm.Session{NewDB: true, Context: ctx}).Exec(stmt)
	}
}

// RegisterCallbacks registra os callbacks necessários no GORM.
// O timezone precisa ser um nome IANA válido, pois é interpolado no comando SET.
func RegisterCallbacks(db *gorm.DB, timezone string) error {
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneCallback(timezone))
}
