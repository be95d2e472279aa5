package importer

import (
	"github.com/career-compass/projector/pkg/models"
	"gorm.io/gorm"
)

// Database reads the reference tables from the database.
type Database struct {
	DB *gorm.DB
}

func (d Database) TaxBrackets() ([]models.TaxBracket, error) {
	var brackets []models.TaxBracket
	err := d.DB.Order("status, type, lower_bound").Find(&brackets).Error
	return brackets, err
}

func (d Database) Professions(track models.Track) ([]models.Profession, error) {
	var professions []models.Profession
	err := d.DB.Where(&models.Profession{Track: track}).Order("name").Find(&professions).Error
	return professions, err
}

func (d Database) Lifestyle() ([]models.LifestyleOption, error) {
	var options []models.LifestyleOption
	err := d.DB.Order("position").Find(&options).Error
	return options, err
}

// Participants returns all participant records with their choices,
// in the order they were submitted.
func (d Database) Participants() ([]models.Participant, error) {
	var participants []models.Participant
	err := d.DB.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Order("created_at, name").Find(&participants).Error
	return participants, err
}
