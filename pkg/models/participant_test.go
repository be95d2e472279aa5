package models_test

import (
	"github.com/career-compass/projector/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createParticipant(name string) models.Participant {
	p := models.Participant{
		Name:            name,
		Profession:      "Electrician",
		MaritalStatus:   models.Single,
		MilitaryService: models.ServiceNone,
		Choices: []models.Choice{
			{Position: 0, Category: "Housing", Option: "Apartment", Cost: decimal.NewFromInt(900)},
			{Position: 1, Category: "Savings", Option: "Whatever is left", Cost: decimal.NewFromInt(100)},
		},
		MonthlyIncomeAfterTax: decimal.NewFromInt(1000),
		Savings:               decimal.NewFromInt(100),
		Expenses:              decimal.NewFromInt(900),
	}

	err := models.DB.Create(&p).Error
	suite.Require().Nil(err)

	return p
}

func (suite *TestSuiteStandard) TestParticipantCreateWithChoices() {
	p := suite.createParticipant("  Alex ")
	suite.Assert().Equal("Alex", p.Name, "Name was not trimmed")

	var loaded models.Participant
	err := models.DB.Preload("Choices").First(&loaded, "id = ?", p.ID).Error
	suite.Require().Nil(err)

	suite.Assert().Len(loaded.Choices, 2)
	suite.Assert().False(loaded.IsTwin())

	savings, ok := loaded.Choice("savings")
	suite.Require().True(ok)
	suite.Assert().True(savings.Cost.Equal(decimal.NewFromInt(100)))

	_, ok = loaded.Choice("Transportation")
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestParticipantNameUnique() {
	_ = suite.createParticipant("Sam")

	duplicate := models.Participant{Name: "Sam"}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrParticipantNameNotUnique)
}

func (suite *TestSuiteStandard) TestParticipantImmutable() {
	p := suite.createParticipant("Robin")

	err := models.DB.Model(&p).Update("profession", "Pilot").Error
	suite.Assert().ErrorIs(err, models.ErrParticipantRecordsImmutable)
}

func (suite *TestSuiteStandard) TestParticipantTwinReference() {
	p := suite.createParticipant("Jo")

	twin := models.Participant{
		Name:            "Jo-mil",
		Profession:      p.Profession,
		MilitaryService: models.ServicePartTime,
		TwinOfID:        &p.ID,
	}
	suite.Require().Nil(models.DB.Create(&twin).Error)

	var loaded models.Participant
	suite.Require().Nil(models.DB.First(&loaded, "name = ?", "Jo-mil").Error)
	suite.Assert().True(loaded.IsTwin())
	suite.Assert().Equal(p.ID, *loaded.TwinOfID)
}

func (suite *TestSuiteStandard) TestParticipantCreateWithTwin() {
	original := models.Participant{Name: "Kim", Profession: "Electrician", MilitaryService: models.ServiceNone}

	twin, err := models.CreateWithTwin(models.DB, &original, func(p models.Participant) models.Participant {
		return models.Participant{Name: p.Name + "-mil", Profession: p.Profession, MilitaryService: models.ServicePartTime, TwinOfID: &p.ID}
	})
	suite.Require().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, original.ID)
	suite.Assert().Equal(original.ID, *twin.TwinOfID)

	var participants []models.Participant
	suite.Require().Nil(models.DB.Order("created_at").Find(&participants).Error)
	suite.Assert().Len(participants, 2)
}

func (suite *TestSuiteStandard) TestParticipantCreateWithTwinRollback() {
	_ = suite.createParticipant("Lee-mil")

	original := models.Participant{Name: "Lee", Profession: "Electrician"}
	_, err := models.CreateWithTwin(models.DB, &original, func(p models.Participant) models.Participant {
		return models.Participant{Name: p.Name + "-mil", TwinOfID: &p.ID}
	})
	suite.Assert().ErrorIs(err, models.ErrParticipantNameNotUnique)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Participant{}).Where("name = ?", "Lee").Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "the original must not be stored without its twin")
}
