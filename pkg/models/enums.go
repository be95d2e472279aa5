package models

import (
	"strings"
)

// MaritalStatus is the filing status used for tax calculations.
type MaritalStatus string

const (
	Single  MaritalStatus = "Single"
	Married MaritalStatus = "Married"
)

// ParseMaritalStatus parses a marital status, ignoring case and surrounding whitespace.
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "married":
		return Married, nil
	}

	return "", ErrInvalidMaritalStatus
}

// TaxType distinguishes federal from state tax brackets.
type TaxType string

const (
	Federal TaxType = "Federal"
	State   TaxType = "State"
)

// ParseTaxType parses a tax type, ignoring case and surrounding whitespace.
func ParseTaxType(s string) (TaxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "federal":
		return Federal, nil
	case "state":
		return State, nil
	}

	return "", ErrInvalidTaxType
}

// MilitaryService is the participant's military service choice.
type MilitaryService string

const (
	ServiceNone     MilitaryService = "No"
	ServicePartTime MilitaryService = "PartTime"
	ServiceFullTime MilitaryService = "FullTime"
)

// ParseMilitaryService parses a military service choice.
//
// Both the spaced form used in forms ("Part Time") and the
// compact form ("PartTime") are accepted.
func ParseMilitaryService(s string) (MilitaryService, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(s), ""))

	switch normalized {
	case "no", "none":
		return ServiceNone, nil
	case "parttime":
		return ServicePartTime, nil
	case "fulltime":
		return ServiceFullTime, nil
	}

	return "", ErrInvalidMilitaryService
}

// Track returns the reference track used to project a participant with this choice.
func (s MilitaryService) Track() Track {
	if s == ServiceNone {
		return Civilian
	}
	return Military
}

// Track identifies which reference table a profession profile belongs to.
type Track string

const (
	Civilian Track = "civilian"
	Military Track = "military"
)

// ParseTrack parses a reference track name.
func ParseTrack(s string) (Track, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "civilian":
		return Civilian, nil
	case "military", "gi-bill", "gibill":
		return Military, nil
	}

	return "", ErrInvalidTrack
}
