package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrParticipantNameNotUnique    = errors.New("the participant name must be unique")
	ErrProfessionNotUnique         = errors.New("the profession name must be unique per reference table")
	ErrLifestyleOptionNotUnique    = errors.New("the option name must be unique per lifestyle category")
	ErrChoicePositionNotUnique     = errors.New("a participant can only have one choice per position")
	ErrInvalidMaritalStatus        = errors.New("the marital status must be one of 'Single' or 'Married'")
	ErrInvalidTaxType              = errors.New("the tax type must be one of 'Federal' or 'State'")
	ErrInvalidMilitaryService      = errors.New("the military service choice must be one of 'No', 'Part Time' or 'Full Time'")
	ErrInvalidTrack                = errors.New("the reference track must be one of 'civilian' or 'military'")
	ErrLoanScheduleLength          = errors.New("the loan schedule must contain exactly one value per projected month")
	ErrMonthsOfSchoolNegative      = errors.New("the months of school must not be negative")
	ErrParticipantRecordsImmutable = errors.New("participant records cannot be changed after submission")
)
