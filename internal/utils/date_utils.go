package utils

import "time"

// LoadLocation retorna o fuso horário configurado.
// Se o nome não puder ser carregado (ex.: tzdata ausente), usa UTC-3 como fallback.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}
