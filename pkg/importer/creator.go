package importer

import (
	"fmt"
	"io"

	"github.com/career-compass/projector/pkg/importer/parser/worksheet"
	"github.com/career-compass/projector/pkg/models"
	"gorm.io/gorm"
)

// batchSize keeps inserts below the SQLite variable limit.
const batchSize = 50

// replace deletes all rows matching the query and creates the records
// in one transaction. If anything fails, the table is left unchanged.
func replace[T any](db *gorm.DB, query any, records []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var model T
		if err := tx.Where(query).Delete(&model).Error; err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		return tx.CreateInBatches(&records, batchSize).Error
	})
}

// ReplaceTaxBrackets replaces the tax table.
func ReplaceTaxBrackets(db *gorm.DB, brackets []models.TaxBracket) error {
	return replace(db, "true", brackets)
}

// ReplaceProfessions replaces the profession table of one track.
func ReplaceProfessions(db *gorm.DB, track models.Track, professions []models.Profession) error {
	for i := range professions {
		professions[i].Track = track
	}
	return replace(db, &models.Profession{Track: track}, professions)
}

// ReplaceLifestyle replaces the lifestyle options.
func ReplaceLifestyle(db *gorm.DB, options []models.LifestyleOption) error {
	return replace(db, "true", options)
}

// Import parses a worksheet and replaces the table with its content.
// It returns the number of imported rows.
func Import(db *gorm.DB, table Table, f io.Reader) (int, error) {
	switch table {
	case TaxTable:
		brackets, err := worksheet.ParseTaxBrackets(f)
		if err != nil {
			return 0, err
		}
		return len(brackets), ReplaceTaxBrackets(db, brackets)

	case CivilianTable, MilitaryTable:
		track := models.Civilian
		if table == MilitaryTable {
			track = models.Military
		}

		professions, err := worksheet.ParseProfessions(f, track)
		if err != nil {
			return 0, err
		}
		return len(professions), ReplaceProfessions(db, track, professions)

	case LifestyleTable:
		options, err := worksheet.ParseLifestyle(f)
		if err != nil {
			return 0, err
		}
		return len(options), ReplaceLifestyle(db, options)
	}

	return 0, fmt.Errorf("%w '%s'", ErrUnknownTable, table)
}

// ImportDir imports all tables of a CSV directory, in the order of AllTables.
func ImportDir(db *gorm.DB, dir CSVDir) (map[Table]int, error) {
	counts := make(map[Table]int, len(AllTables))

	tables, err := Load(dir)
	if err != nil {
		return counts, err
	}

	steps := []struct {
		table Table
		count int
		store func() error
	}{
		{TaxTable, len(tables.TaxBrackets), func() error { return ReplaceTaxBrackets(db, tables.TaxBrackets) }},
		{CivilianTable, len(tables.Civilian), func() error { return ReplaceProfessions(db, models.Civilian, tables.Civilian) }},
		{MilitaryTable, len(tables.Military), func() error { return ReplaceProfessions(db, models.Military, tables.Military) }},
		{LifestyleTable, len(tables.Lifestyle), func() error { return ReplaceLifestyle(db, tables.Lifestyle) }},
	}

	for _, s := range steps {
		if err := s.store(); err != nil {
			return counts, fmt.Errorf("error storing the %s table: %w", s.table, err)
		}
		counts[s.table] = s.count
	}

	return counts, nil
}
