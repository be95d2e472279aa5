package v1

import (
	"fmt"

	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/importer"
	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/projection"
	"github.com/career-compass/projector/pkg/tax"
	"github.com/shopspring/decimal"
)

// source returns the reference tables stored in the database.
func source() importer.Database {
	return importer.Database{DB: models.DB}
}

// profile parses the marital status and military service of a request.
func profile(maritalStatus, militaryService string) (models.MaritalStatus, models.MilitaryService, error) {
	status, err := models.ParseMaritalStatus(maritalStatus)
	if err != nil {
		return "", "", err
	}

	service, err := models.ParseMilitaryService(militaryService)
	if err != nil {
		return "", "", err
	}

	return status, service, nil
}

// profession finds the reference profile of a profession in the track
// used for the military service.
func profession(name string, service models.MilitaryService) (models.Profession, error) {
	professions, err := source().Professions(service.Track())
	if err != nil {
		return models.Profession{}, err
	}

	p, ok := projection.NewIndex(professions).Lookup(name)
	if !ok {
		return models.Profession{}, fmt.Errorf("%w profession named '%s' in the %s table", models.ErrResourceNotFound, name, service.Track())
	}

	return p, nil
}

// computeTax computes the tax for an annual income with the stored brackets.
func computeTax(income decimal.Decimal, status models.MaritalStatus) (tax.Result, error) {
	brackets, err := source().TaxBrackets()
	if err != nil {
		return tax.Result{}, err
	}

	return tax.ComputeByStatus(income, status, brackets)
}

// catalog loads the lifestyle decision table.
func catalog() (budget.Catalog, error) {
	options, err := source().Lifestyle()
	if err != nil {
		return budget.Catalog{}, err
	}

	return budget.NewCatalog(options), nil
}
