// Package v1 implements the v1 API.
package v1

import (
	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/report"
	"github.com/gin-gonic/gin"
)

// Settings configures the behaviour of the v1 handlers.
type Settings struct {
	Policy  budget.Policy     // Military eligibility policy for lifestyle options
	Twin    budget.TwinConfig // Derivation of the military twin on submission
	Workers int               // Parallel simulations, 0 uses GOMAXPROCS
	Report  report.Options    // Pairing of original and twin records
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Policy: budget.Policies[budget.DefaultPolicy],
		Twin:   budget.DefaultTwinConfig,
		Report: report.DefaultOptions(),
	}
}

// Controller serves the v1 API with a fixed set of settings.
type Controller struct {
	Settings Settings
}

// RegisterRoutes registers all v1 routes on the router group.
func RegisterRoutes(r *gin.RouterGroup, s Settings) {
	co := Controller{Settings: s}

	r.GET("", co.Get)
	r.OPTIONS("", co.Options)
	r.DELETE("", co.Cleanup)

	co.RegisterTaxRoutes(r.Group("/tax"))
	co.RegisterLifestyleRoutes(r.Group("/lifestyle-options"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterParticipantRoutes(r.Group("/participants"))
	co.RegisterProjectionRoutes(r.Group("/projections"))
	co.RegisterReportRoutes(r.Group("/reports"))
	co.RegisterImportRoutes(r.Group("/import"))
}
