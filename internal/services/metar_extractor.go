package services

import (
	"strings"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/models/entities"
)

// ExtractMetarFields pulls wind, temperature/dew point and pressure tokens out
// of a raw METAR line. Each slot keeps the first token that matches it; a
// token may fill more than one slot. Anything unmatched is "N/A", so sentinel
// strings and empty input come back all "N/A".
func ExtractMetarFields(raw string) entities.MetarFields {
	fields := entities.MetarFields{
		Wind:        constants.NotAvailable,
		Temperature: constants.NotAvailable,
		Pressure:    constants.NotAvailable,
	}
	var wind, temp, press bool

	for _, tok := range strings.Fields(raw) {
		if !wind && isWindToken(tok) {
			fields.Wind, wind = tok, true
		}
		if !temp && isTemperatureToken(tok) {
			fields.Temperature, temp = tok, true
		}
		if !press && isPressureToken(tok) {
			fields.Pressure, press = tok, true
		}
	}
	return fields
}

func isWindToken(tok string) bool {
	return strings.HasSuffix(tok, "KT")
}

// 25/22 or 05/M02; M12/M18 is too long
func isTemperatureToken(tok string) bool {
	return strings.Contains(tok, "/") && len(tok) < 7
}

// Q1013 or A2992
func isPressureToken(tok string) bool {
	if len(tok) != 5 {
		return false
	}
	switch tok[0] {
	case 'Q':
		return true
	case 'A':
		return isDigits(tok[1:])
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
