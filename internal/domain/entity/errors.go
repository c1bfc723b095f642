package entity

import (
	"errors"
	"time"
)

// Precondition violations raised by the derived computations. Callers must not default these away.
var (
	ErrFechaNacimientoRequerida = errors.New("persona has no birth date")
	ErrTipoMovimientoNoCargado  = errors.New("movimiento has no loaded tipo de movimiento")
	ErrRangoFechasInvalido      = errors.New("end date precedes start date")
	ErrPeriodoCerrado           = errors.New("benefit period is already closed")
)

func validarRango(inicio, fin *time.Time) error {
	if inicio == nil || fin == nil {
		return nil
	}
	if fin.Before(*inicio) {
		return ErrRangoFechasInvalido
	}
	return nil
}

func truncarDia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
