package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the API handlers and the CLI.
var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "projector-backend-url"
)

// Connect opens the SQLite database, migrates the schema and
// configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	if !strings.Contains(dsn, "_pragma=foreign_keys") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn = fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator)
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors. It also keeps
	// in-memory databases alive as there is only ever one connection.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = Migrate(db)
	if err != nil {
		return err
	}

	callbacks := []struct {
		register func(name string, fn func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{db.Callback().Query().After("*").Register, "projector:after_query", queryCallback},
		{db.Callback().Query().After("*").Register, "projector:after_query_general", generalCallback},
		{db.Callback().Create().After("*").Register, "projector:after_create", createUpdateCallback},
		{db.Callback().Create().After("*").Register, "projector:after_create_general", generalCallback},
		{db.Callback().Update().After("*").Register, "projector:after_update", createUpdateCallback},
		{db.Callback().Update().After("*").Register, "projector:after_update_general", generalCallback},
		{db.Callback().Delete().After("*").Register, "projector:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		err = c.register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	// Set the exported variable
	DB = db

	return nil
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(TaxBracket{}, Profession{}, LifestyleOption{}, Participant{}, Choice{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// constraintErrors maps SQLite constraint violations to user friendly errors.
var constraintErrors = map[string]error{
	"UNIQUE constraint failed: participants.name":                                    ErrParticipantNameNotUnique,
	"UNIQUE constraint failed: professions.track, professions.name":                  ErrProfessionNotUnique,
	"UNIQUE constraint failed: lifestyle_options.category, lifestyle_options.option": ErrLifestyleOptionNotUnique,
	"UNIQUE constraint failed: choices.participant_id, choices.position":             ErrChoicePositionNotUnique,
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for constraint, err := range constraintErrors {
		if strings.Contains(db.Error.Error(), constraint) {
			db.Error = err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if IsGeneral(db.Error) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// IsGeneral reports if an error is caused by the database itself and not
// by the request.
//
// Errors returned when a transaction cannot be started do not pass the
// callbacks, callers check them with IsGeneral.
func IsGeneral(err error) bool {
	if err == nil {
		return false
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	return err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{})
}
