// Package projection simulates the long-horizon net worth of participants.
//
// Every projection covers models.ProjectionMonths months. Savings grow
// linearly while in school and compound monthly afterwards, the loan
// balance is taken from the reference table as is.
package projection

import (
	"math"

	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/shopspring/decimal"
)

// AnnualRate is the nominal yearly return on savings.
const AnnualRate = 0.05

// precision is the number of decimal places kept for running balances.
const precision = 10

// MonthlyRate is the monthly rate equivalent to AnnualRate.
var MonthlyRate = decimal.NewFromFloat(math.Pow(1+AnnualRate, 1.0/12) - 1)

var growth = decimal.NewFromInt(1).Add(MonthlyRate)

// Sample is the financial state of a participant at the end of a month.
type Sample struct {
	Month    int             `json:"month" example:"120"` // 1-based
	Savings  decimal.Decimal `json:"savings" example:"35012.17"`
	Loan     decimal.Decimal `json:"loan" example:"-12000"`
	NetWorth decimal.Decimal `json:"netWorth" example:"23012.17"`
}

// Projection is the simulated trajectory of one participant.
type Projection struct {
	Name        string                   `json:"name" example:"Alex"`
	Profession  string                   `json:"profession" example:"Registered Nurse"`
	Track       models.Track             `json:"track" example:"civilian"`
	Samples     []Sample                 `json:"samples"` // Always models.ProjectionMonths samples, index 0 is month 1
	Diagnostics []diagnostics.Diagnostic `json:"diagnostics"`
}

// Sample returns the sample for a 1-based month.
func (p Projection) Sample(month int) (Sample, bool) {
	if month < 1 || month > len(p.Samples) {
		return Sample{}, false
	}
	return p.Samples[month-1], true
}

// Simulate projects a participant against the civilian and the
// military reference tables.
//
// Missing or malformed reference data never fails the simulation, the
// projection is zero-filled and carries a diagnostic instead.
func Simulate(p models.Participant, civilian, military []models.Profession) Projection {
	return simulate(p, NewTables(civilian, military))
}

func simulate(p models.Participant, tables Tables) Projection {
	track := p.MilitaryService.Track()

	projection := Projection{
		Name:        p.Name,
		Profession:  p.Profession,
		Track:       track,
		Diagnostics: []diagnostics.Diagnostic{},
	}

	profile, ok := tables.track(track).Lookup(p.Profession)
	if !ok {
		projection.Samples = zeroSeries()
		projection.Diagnostics = append(projection.Diagnostics, diagnostics.New(diagnostics.ProfessionNotFound, p.Name, "no %s profile for profession '%s'", track, p.Profession))
		return projection
	}

	if !profile.Valid() {
		projection.Samples = zeroSeries()
		projection.Diagnostics = append(projection.Diagnostics, diagnostics.New(diagnostics.MalformedProfile, p.Name, "the %s profile for '%s' is malformed: %d loan values, issues %v", track, profile.Name, len(profile.LoanBalances), profile.Issues))
		return projection
	}

	postSchool := profile.MonthlySavingsPostSchool
	if track == models.Military {
		postSchool = p.Savings
	}

	projection.Samples = Series(profile.MonthsOfSchool, profile.MonthlySavingsInSchool, postSchool, profile.LoanBalances)
	return projection
}

// Series computes the monthly samples.
//
// For months up to monthsOfSchool, inSchool is added without interest.
// Afterwards the balance compounds at MonthlyRate and postSchool is
// added every month. loans must have models.ProjectionMonths values.
func Series(monthsOfSchool int, inSchool, postSchool decimal.Decimal, loans []decimal.Decimal) []Sample {
	samples := make([]Sample, models.ProjectionMonths)
	savings := decimal.Zero

	for m := 1; m <= models.ProjectionMonths; m++ {
		if m <= monthsOfSchool {
			savings = savings.Add(inSchool)
		} else {
			savings = savings.Mul(growth).Add(postSchool).Round(precision)
		}

		loan := loans[m-1]
		samples[m-1] = Sample{
			Month:    m,
			Savings:  savings,
			Loan:     loan,
			NetWorth: savings.Add(loan),
		}
	}

	return samples
}

func zeroSeries() []Sample {
	samples := make([]Sample, models.ProjectionMonths)
	for i := range samples {
		samples[i] = Sample{
			Month:    i + 1,
			Savings:  decimal.Zero,
			Loan:     decimal.Zero,
			NetWorth: decimal.Zero,
		}
	}
	return samples
}
