package v1

import (
	"net/http"

	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/tax"
	"github.com/gin-gonic/gin"
)

// BudgetRequest contains all answers of a budget session.
type BudgetRequest struct {
	Name            string            `json:"name" example:"Alex"` // Only needed for submission
	Profession      string            `json:"profession" example:"Registered Nurse"`
	MaritalStatus   string            `json:"maritalStatus" example:"Single"`
	MilitaryService string            `json:"militaryService" example:"Part Time"`
	Choices         map[string]string `json:"choices"` // Category name to option name, including Savings
}

// BudgetPreview is the outcome of a budget session.
type BudgetPreview struct {
	Tax     tax.Result     `json:"tax"`
	Ledger  budget.Ledger  `json:"ledger"`
	Balance budget.Balance `json:"balance" example:"balanced"`
	Message string         `json:"message" example:"You have balanced your budget!"`
}

type BudgetPreviewResponse struct {
	Data BudgetPreview `json:"data"`
}

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudget)
	r.POST("", co.CreateBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudget(c *gin.Context) {
	httputil.OptionsPost(c)
}

// allocate runs a complete budget session for a request.
//
// The submission is returned even when the budget is not balanced,
// the caller decides whether it may be persisted.
func (co Controller) allocate(r BudgetRequest) (budget.Submission, budget.Catalog, error) {
	status, service, err := profile(r.MaritalStatus, r.MilitaryService)
	if err != nil {
		return budget.Submission{}, budget.Catalog{}, err
	}

	p, err := profession(r.Profession, service)
	if err != nil {
		return budget.Submission{}, budget.Catalog{}, err
	}

	result, err := computeTax(p.AnnualIncome(), status)
	if err != nil {
		return budget.Submission{}, budget.Catalog{}, err
	}

	cat, err := catalog()
	if err != nil {
		return budget.Submission{}, budget.Catalog{}, err
	}

	ledger, err := budget.Allocate(budget.Request{
		Income:          result.MonthlyIncomeAfterTax,
		MilitaryService: service,
		Choices:         r.Choices,
	}, cat, co.Settings.Policy)
	if err != nil {
		return budget.Submission{}, budget.Catalog{}, err
	}

	return budget.Submission{
		Name:            r.Name,
		Profession:      p.Name,
		MaritalStatus:   status,
		MilitaryService: service,
		Tax:             result,
		Ledger:          ledger,
	}, cat, nil
}

// CreateBudget previews the budget for a set of choices without persisting it.
//
// @Summary		Preview budget
// @Description	Allocates the monthly income after tax to the chosen lifestyle options without persisting anything
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetPreviewResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			request	body		BudgetRequest	true	"Budget session"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var request BudgetRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	submission, _, err := co.allocate(request)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	c.JSON(http.StatusOK, BudgetPreviewResponse{
		Data: BudgetPreview{
			Tax:     submission.Tax,
			Ledger:  submission.Ledger,
			Balance: submission.Ledger.Balance(),
			Message: submission.Ledger.Message(),
		},
	})
}
