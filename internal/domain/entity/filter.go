package entity

import "time"

// MovimientoFilter is a domain-level filter for listing stock movements.
// Used by repository layer to avoid coupling with delivery DTOs.
type MovimientoFilter struct {
	CodProducto       *int
	CodTipoMovimiento *int
	Desde             *time.Time
	Hasta             *time.Time
	Limit             int
	Offset            int
}

// PecosaFilter narrows the voucher list
type PecosaFilter struct {
	CodAsociacion *int
	CodEstado     *int
	Numero        string // prefix match on numeroPecosa
	Limit         int
	Offset        int
}

// PersonaFilter matches DNI prefix or any name part (case-insensitive)
type PersonaFilter struct {
	Search string
	Limit  int
	Offset int
}

// AsociacionFilter matches code or name substrings, optionally restricted to one Estado
type AsociacionFilter struct {
	Search    string
	CodEstado *int
	Limit     int
	Offset    int
}
