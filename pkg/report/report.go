// Package report pairs participants with their military twin and
// extracts the net worth samples that reports are drawn from.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/projection"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrInvalidSampleMonth = errors.New("sample months must be between 1 and 300")

// DefaultMonths are sampled unless configured otherwise: the first month,
// 10 and 20 years.
var DefaultMonths = []int{1, 120, 240}

// Options configure the pairing.
type Options struct {
	Suffix string // Name suffix of the military twin
	Months []int  // 1-based months to sample
}

// DefaultOptions returns the default pairing options.
func DefaultOptions() Options {
	return Options{
		Suffix: budget.DefaultTwinConfig.Suffix,
		Months: append([]int{}, DefaultMonths...),
	}
}

// Validate checks that all sample months are inside the projection.
func (o Options) Validate() error {
	for _, m := range o.Months {
		if m < 1 || m > models.ProjectionMonths {
			return fmt.Errorf("%w, got %d", ErrInvalidSampleMonth, m)
		}
	}
	return nil
}

// ParseMonths parses a comma separated list of sample months.
//
// An empty list returns nil, the months are not validated.
func ParseMonths(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var months []int
	for _, field := range strings.Split(s, ",") {
		m, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%w, got '%s'", ErrInvalidSampleMonth, field)
		}
		months = append(months, m)
	}

	return months, nil
}

// Point is the net worth of a participant in one month.
type Point struct {
	Month    int             `json:"month" example:"120"`
	NetWorth decimal.Decimal `json:"netWorth" example:"23012.17"`
	Label    string          `json:"label" example:"$23,012.17"` // Accounting style label
}

// Member is one side of a comparison pair.
type Member struct {
	Name       string       `json:"name" example:"Alex"`
	Profession string       `json:"profession" example:"Registered Nurse"`
	Track      models.Track `json:"track" example:"civilian"`
	Samples    []Point      `json:"samples"` // At the configured months
	Yearly     []Point      `json:"yearly"`  // At the end of every year
}

// Pair is a participant and their military twin.
type Pair struct {
	Civilian Member `json:"civilian"`
	Military Member `json:"military"`
}

// Comparison is the payload that comparison reports are rendered from.
type Comparison struct {
	Months []int  `json:"months" example:"1,120,240"`
	Pairs  []Pair `json:"pairs"`
}

func point(p projection.Projection, month int) (Point, bool) {
	s, ok := p.Sample(month)
	if !ok {
		return Point{}, false
	}

	return Point{
		Month:    s.Month,
		NetWorth: s.NetWorth,
		Label:    projection.AccountingLabel(s.NetWorth),
	}, true
}

func points(p projection.Projection, months []int) []Point {
	pts := make([]Point, 0, len(months))
	for _, m := range months {
		if pt, ok := point(p, m); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// YearlyMonths returns the last month of every projected year.
func YearlyMonths() []int {
	months := make([]int, 0, models.ProjectionMonths/12)
	for y := 1; y*12 <= models.ProjectionMonths; y++ {
		months = append(months, y*12)
	}
	return months
}

func member(p projection.Projection, months []int) Member {
	return Member{
		Name:       p.Name,
		Profession: p.Profession,
		Track:      p.Track,
		Samples:    points(p, months),
		Yearly:     points(p, YearlyMonths()),
	}
}

// PairAndSample pairs every participant with the projection named like
// them plus the twin suffix.
//
// Participants without a twin are skipped and reported as a MissingTwin
// diagnostic. Pairs keep the order of the participants in projections.
func PairAndSample(projections []projection.Projection, o Options) (Comparison, []diagnostics.Diagnostic) {
	if len(o.Months) == 0 {
		o.Months = DefaultMonths
	}

	byName := make(map[string]projection.Projection, len(projections))
	for _, p := range projections {
		if _, ok := byName[p.Name]; !ok {
			byName[p.Name] = p
		}
	}

	twins := budget.TwinConfig{Suffix: o.Suffix}
	comparison := Comparison{
		Months: o.Months,
		Pairs:  []Pair{},
	}
	diags := []diagnostics.Diagnostic{}
	seen := make(map[string]bool, len(projections))

	for _, p := range projections {
		if twins.IsTwinName(p.Name) || seen[p.Name] {
			continue
		}
		seen[p.Name] = true

		twin, ok := byName[twins.TwinName(p.Name)]
		if !ok {
			diags = append(diags, diagnostics.New(diagnostics.MissingTwin, p.Name, "no record named '%s', skipping the comparison", twins.TwinName(p.Name)))
			continue
		}

		comparison.Pairs = append(comparison.Pairs, Pair{
			Civilian: member(p, o.Months),
			Military: member(twin, o.Months),
		})
	}

	diagnostics.Log(log.Logger, diags)
	return comparison, diags
}
