package entity

import "time"

// Edad is an age expressed as whole years, months and days since a date
type Edad struct {
	Anios int `json:"anios"`
	Meses int `json:"meses"`
	Dias  int `json:"dias"`
}

// CalcularEdad derives years, months-within-year and days-within-month elapsed
// between nacimiento and hoy. Only the calendar date of each argument is used.
//
// Days borrow from the month before hoy using that month's real length, so a
// birth on the 31st evaluated after a 30-day month does not assume 30.
func CalcularEdad(nacimiento, hoy time.Time) Edad {
	by, bm, bd := nacimiento.Date()
	ty, tm, td := hoy.Date()

	anios := ty - by
	if tm < bm || (tm == bm && td < bd) {
		anios--
	}

	meses := (ty-by)*12 + int(tm-bm)
	if td < bd {
		meses--
	}
	meses = ((meses % 12) + 12) % 12

	var dias int
	if td >= bd {
		dias = td - bd
	} else {
		dias = diasMesAnterior(ty, tm) - bd + td
	}

	return Edad{Anios: anios, Meses: meses, Dias: dias}
}

// diasMesAnterior returns the length of the month before (year, month).
// Day 0 of a month normalizes to the last day of the previous one.
func diasMesAnterior(year int, month time.Month) int {
	return time.Date(year, month, 0, 0, 0, 0, 0, time.UTC).Day()
}
