package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/career-compass/projector/pkg/importer/parser/worksheet"
	"github.com/career-compass/projector/pkg/models"
)

// DefaultFiles are the worksheet file names in a data directory.
var DefaultFiles = map[Table]string{
	TaxTable:       "2024_Tax_worksheet_CSV.csv",
	CivilianTable:  "Skillset_cost_worksheet_CSV.csv",
	MilitaryTable:  "Military_skillset_cost_worksheet_CSV.csv",
	LifestyleTable: "Lifestyle_decisions_CSV.csv",
}

// CSVDir reads the reference tables from CSV files in a directory.
type CSVDir struct {
	Dir   string
	Files map[Table]string // File names relative to Dir. DefaultFiles are used for missing entries
}

// NewCSVDir creates a source for a directory with the default file names.
func NewCSVDir(dir string) CSVDir {
	return CSVDir{Dir: dir, Files: DefaultFiles}
}

// Path returns the path of the file for a table.
func (d CSVDir) Path(t Table) string {
	name, ok := d.Files[t]
	if !ok {
		name = DefaultFiles[t]
	}
	return filepath.Join(d.Dir, name)
}

func (d CSVDir) open(t Table, parse func(io.Reader) error) error {
	f, err := os.Open(d.Path(t))
	if err != nil {
		return fmt.Errorf("could not open the %s table: %w", t, err)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return fmt.Errorf("%s: %w", d.Path(t), err)
	}
	return nil
}

func (d CSVDir) TaxBrackets() (brackets []models.TaxBracket, err error) {
	err = d.open(TaxTable, func(r io.Reader) (err error) {
		brackets, err = worksheet.ParseTaxBrackets(r)
		return
	})
	return
}

func (d CSVDir) Professions(track models.Track) (professions []models.Profession, err error) {
	table := CivilianTable
	if track == models.Military {
		table = MilitaryTable
	}

	err = d.open(table, func(r io.Reader) (err error) {
		professions, err = worksheet.ParseProfessions(r, track)
		return
	})
	return
}

func (d CSVDir) Lifestyle() (options []models.LifestyleOption, err error) {
	err = d.open(LifestyleTable, func(r io.Reader) (err error) {
		options, err = worksheet.ParseLifestyle(r)
		return
	})
	return
}
