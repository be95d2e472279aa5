package v1

import (
	"net/http"

	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/report"
	"github.com/gin-gonic/gin"
)

type ComparisonQueryFilter struct {
	Months string `form:"months" example:"1,120,240"` // Comma separated months to sample, overrides the configured ones
}

type ComparisonResponse struct {
	Data        report.Comparison        `json:"data"`
	Diagnostics []diagnostics.Diagnostic `json:"diagnostics"` // Participants that could not be paired
}

func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/comparison", co.OptionsComparison)
	r.GET("/comparison", co.GetComparison)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/comparison [options]
func (co Controller) OptionsComparison(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetComparison pairs every participant with their military twin and
// samples both net worth trajectories.
//
// @Summary		Compare with twins
// @Description	Pairs every participant with their military twin and samples both net worth trajectories
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ComparisonResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			months	query		string	false	"Comma separated months to sample"
// @Router			/v1/reports/comparison [get]
func (co Controller) GetComparison(c *gin.Context) {
	var filter ComparisonQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperrors.New(err))
		return
	}

	options := co.Settings.Report
	months, err := report.ParseMonths(filter.Months)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperrors.New(err))
		return
	}

	if months != nil {
		options.Months = months
	}

	if err := options.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, httperrors.New(err))
		return
	}

	projections, err := co.simulate(c)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	comparison, diags := report.PairAndSample(projections, options)

	c.JSON(http.StatusOK, ComparisonResponse{
		Data:        comparison,
		Diagnostics: diags,
	})
}
