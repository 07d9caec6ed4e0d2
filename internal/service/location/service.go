// Package location serves the reference data used by registration and
// search: the fixed table of Brazilian states and the city registry.
package location

import (
	"context"
	"errors"
)

// ErrNotFound is returned for unknown cities and states.
var ErrNotFound = errors.New("location not found")

// State is one federative unit.
type State struct {
	UF   string
	Name string
}

// City is one municipality, keyed by its IBGE code.
type City struct {
	ID      int64
	Name    string
	StateUF string
}

// states is the fixed table of the 27 federative units, ordered by UF.
var states = []State{
	{UF: "AC", Name: "Acre"},
	{UF: "AL", Name: "Alagoas"},
	{UF: "AM", Name: "Amazonas"},
	{UF: "AP", Name: "Amapá"},
	{UF: "BA", Name: "Bahia"},
	{UF: "CE", Name: "Ceará"},
	{UF: "DF", Name: "Distrito Federal"},
	{UF: "ES", Name: "Espírito Santo"},
	{UF: "GO", Name: "Goiás"},
	{UF: "MA", Name: "Maranhão"},
	{UF: "MG", Name: "Minas Gerais"},
	{UF: "MS", Name: "Mato Grosso do Sul"},
	{UF: "MT", Name: "Mato Grosso"},
	{UF: "PA", Name: "Pará"},
	{UF: "PB", Name: "Paraíba"},
	{UF: "PE", Name: "Pernambuco"},
	{UF: "PI", Name: "Piauí"},
	{UF: "PR", Name: "Paraná"},
	{UF: "RJ", Name: "Rio de Janeiro"},
	{UF: "RN", Name: "Rio Grande do Norte"},
	{UF: "RO", Name: "Rondônia"},
	{UF: "RR", Name: "Roraima"},
	{UF: "RS", Name: "Rio Grande do Sul"},
	{UF: "SC", Name: "Santa Catarina"},
	{UF: "SE", Name: "Sergipe"},
	{UF: "SP", Name: "São Paulo"},
	{UF: "TO", Name: "Tocantins"},
}

// States returns the full state table in UF order.
func States() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// ValidUF reports whether uf names a known state.
func ValidUF(uf string) bool {
	for _, s := range states {
		if s.UF == uf {
			return true
		}
	}
	return false
}

// Service defines city registry operations. The state table is static and
// served without storage access.
type Service interface {
	// GetCity returns the city or ErrNotFound.
	GetCity(ctx context.Context, id int64) (*City, error)
	// CitiesForState returns the state's cities ordered by name, or
	// ErrNotFound for an unknown UF.
	CitiesForState(ctx context.Context, uf string) ([]City, error)
}
