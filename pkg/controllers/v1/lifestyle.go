package v1

import (
	"net/http"

	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/models"
	"github.com/gin-gonic/gin"
)

type LifestyleQueryFilter struct {
	MilitaryService string `form:"militaryService"` // Only options eligible for this military service are listed
}

// LifestyleCategory is a lifestyle category with its selectable options.
type LifestyleCategory struct {
	Name    string                   `json:"name" example:"Housing"`
	Options []models.LifestyleOption `json:"options"`
}

type LifestyleListResponse struct {
	Data []LifestyleCategory `json:"data"` // Categories in processing order, Savings last
}

func (co Controller) RegisterLifestyleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsLifestyle)
	r.GET("", co.GetLifestyle)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Lifestyle
// @Success		204
// @Router			/v1/lifestyle-options [options]
func (co Controller) OptionsLifestyle(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetLifestyle lists all lifestyle categories with the options that
// are eligible for the military service.
//
// @Summary		Get lifestyle options
// @Description	Returns all lifestyle categories with the options eligible for the military service
// @Tags			Lifestyle
// @Produce		json
// @Success		200				{object}	LifestyleListResponse
// @Failure		400				{object}	httperrors.HTTPError
// @Failure		500				{object}	httperrors.HTTPError
// @Param			militaryService	query	string	false	"Military service, defaults to 'No'"
// @Router			/v1/lifestyle-options [get]
func (co Controller) GetLifestyle(c *gin.Context) {
	var filter LifestyleQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperrors.New(err))
		return
	}

	if filter.MilitaryService == "" {
		filter.MilitaryService = string(models.ServiceNone)
	}

	service, err := models.ParseMilitaryService(filter.MilitaryService)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	cat, err := catalog()
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	categories := cat.Categories()
	if cat.HasSavings() {
		categories = append(categories, models.SavingsCategory)
	}

	data := make([]LifestyleCategory, 0, len(categories))
	for _, category := range categories {
		options := co.Settings.Policy.Filter(service, category, cat.Options(category))
		if options == nil {
			options = []models.LifestyleOption{}
		}

		data = append(data, LifestyleCategory{
			Name:    category,
			Options: options,
		})
	}

	c.JSON(http.StatusOK, LifestyleListResponse{Data: data})
}
