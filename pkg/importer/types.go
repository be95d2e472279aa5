package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/career-compass/projector/pkg/models"
)

var ErrUnknownTable = errors.New("unknown reference table")

// Table identifies one of the reference tables.
type Table string

const (
	TaxTable       Table = "tax"
	CivilianTable  Table = "civilian"
	MilitaryTable  Table = "military"
	LifestyleTable Table = "lifestyle"
)

// AllTables lists the reference tables in import order.
var AllTables = []Table{TaxTable, CivilianTable, MilitaryTable, LifestyleTable}

// ParseTable parses a reference table name.
func ParseTable(s string) (Table, error) {
	for _, t := range AllTables {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w '%s', must be one of %v", ErrUnknownTable, s, AllTables)
}

// Source provides the reference tables.
//
// The projection engine only ever works on loaded tables, a Source
// decouples it from where the tables are stored.
type Source interface {
	TaxBrackets() ([]models.TaxBracket, error)
	Professions(track models.Track) ([]models.Profession, error)
	Lifestyle() ([]models.LifestyleOption, error)
}

// Tables are all reference tables, loaded from a Source.
type Tables struct {
	TaxBrackets []models.TaxBracket
	Civilian    []models.Profession
	Military    []models.Profession
	Lifestyle   []models.LifestyleOption
}

// Load reads all reference tables from a source.
func Load(s Source) (Tables, error) {
	var (
		t   Tables
		err error
	)

	if t.TaxBrackets, err = s.TaxBrackets(); err != nil {
		return Tables{}, fmt.Errorf("error loading the tax brackets: %w", err)
	}

	if t.Civilian, err = s.Professions(models.Civilian); err != nil {
		return Tables{}, fmt.Errorf("error loading the civilian professions: %w", err)
	}

	if t.Military, err = s.Professions(models.Military); err != nil {
		return Tables{}, fmt.Errorf("error loading the military professions: %w", err)
	}

	if t.Lifestyle, err = s.Lifestyle(); err != nil {
		return Tables{}, fmt.Errorf("error loading the lifestyle options: %w", err)
	}

	return t, nil
}
