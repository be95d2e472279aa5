package v1

import (
	"net/http"
	"strings"

	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/tax"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TaxRequest asks for the tax on an income.
//
// If no income is given, the annual income of the profession is used.
type TaxRequest struct {
	Income          *decimal.Decimal `json:"income" example:"50000"`
	Profession      string           `json:"profession" example:"Registered Nurse"`
	MaritalStatus   string           `json:"maritalStatus" example:"Single"`
	MilitaryService string           `json:"militaryService" example:"No"`
}

type TaxResponse struct {
	Data tax.Result `json:"data"`
}

func (co Controller) RegisterTaxRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsTax)
	r.POST("", co.CreateTax)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tax
// @Success		204
// @Router			/v1/tax [options]
func (co Controller) OptionsTax(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Compute tax
// @Description	Computes federal and state tax for an income or the annual income of a profession
// @Tags			Tax
// @Produce		json
// @Success		200		{object}	TaxResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			request	body		TaxRequest	true	"Income or profession with the filing profile"
// @Router			/v1/tax [post]
func (co Controller) CreateTax(c *gin.Context) {
	var request TaxRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	if request.MilitaryService == "" {
		request.MilitaryService = string(models.ServiceNone)
	}

	status, service, err := profile(request.MaritalStatus, request.MilitaryService)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	var income decimal.Decimal
	if request.Income != nil {
		income = *request.Income
	} else {
		if strings.TrimSpace(request.Profession) == "" {
			c.JSON(http.StatusBadRequest, httperrors.New(budget.ErrProfessionMissing))
			return
		}

		p, err := profession(request.Profession, service)
		if err != nil {
			c.JSON(httperrors.Status(err), httperrors.New(err))
			return
		}
		income = p.AnnualIncome()
	}

	result, err := computeTax(income, status)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	c.JSON(http.StatusOK, TaxResponse{Data: result})
}
