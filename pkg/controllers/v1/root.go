package v1

import (
	"net/http"

	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/models"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Tax              string `json:"tax" example:"https://example.com/api/v1/tax"`
	LifestyleOptions string `json:"lifestyleOptions" example:"https://example.com/api/v1/lifestyle-options"`
	Budgets          string `json:"budgets" example:"https://example.com/api/v1/budgets"`
	Participants     string `json:"participants" example:"https://example.com/api/v1/participants"`
	Projections      string `json:"projections" example:"https://example.com/api/v1/projections"`
	Export           string `json:"export" example:"https://example.com/api/v1/projections/export"`
	Comparison       string `json:"comparison" example:"https://example.com/api/v1/reports/comparison"`
	Import           string `json:"import" example:"https://example.com/api/v1/import"`
}

// Get returns the link list for v1.
//
// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Tax:              url + "/tax",
			LifestyleOptions: url + "/lifestyle-options",
			Budgets:          url + "/budgets",
			Participants:     url + "/participants",
			Projections:      url + "/projections",
			Export:           url + "/projections/export",
			Comparison:       url + "/reports/comparison",
			Import:           url + "/import",
		},
	})
}

// Options returns the allowed HTTP methods.
//
// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// Cleanup permanently deletes all resources, including the reference tables.
//
// @Summary		Delete everything
// @Description	Permanently deletes all resources, including the reference tables
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httperrors.New(httperrors.ErrCleanupConfirmation))
		return
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range models.Registry {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(httperrors.Status(err), httperrors.New(err))
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
