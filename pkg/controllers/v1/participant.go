package v1

import (
	"net/http"
	"strings"

	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ParticipantQueryFilter struct {
	Name            string `form:"name"`
	Profession      string `form:"profession"`
	MilitaryService string `form:"militaryService"`
}

// model converts the filter to a participant usable in a query.
func (f ParticipantQueryFilter) model() (models.Participant, error) {
	p := models.Participant{
		Name:       strings.TrimSpace(f.Name),
		Profession: strings.TrimSpace(f.Profession),
	}

	if f.MilitaryService != "" {
		service, err := models.ParseMilitaryService(f.MilitaryService)
		if err != nil {
			return models.Participant{}, err
		}
		p.MilitaryService = service
	}

	return p, nil
}

type ParticipantListResponse struct {
	Data []models.Participant `json:"data"`
}

type ParticipantResponse struct {
	Data models.Participant `json:"data"`
}

// ParticipantPair is an original record and its military twin.
type ParticipantPair struct {
	Original models.Participant `json:"original"`
	Twin     models.Participant `json:"twin"`
}

type ParticipantCreateResponse struct {
	Data        ParticipantPair          `json:"data"`
	Diagnostics []diagnostics.Diagnostic `json:"diagnostics"` // Choices of the original that the twin could not keep
}

func (co Controller) RegisterParticipantRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsParticipantList)
		r.GET("", co.GetParticipants)
		r.POST("", co.CreateParticipant)
	}

	// Participant with ID
	{
		r.OPTIONS("/:id", co.OptionsParticipantDetail)
		r.GET("/:id", co.GetParticipant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Participants
// @Success		204
// @Router			/v1/participants [options]
func (co Controller) OptionsParticipantList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Participants
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/participants/{id} [options]
func (co Controller) OptionsParticipantDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

func choicesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// @Summary		Get participants
// @Description	Returns the participant records in submission order
// @Tags			Participants
// @Produce		json
// @Success		200				{object}	ParticipantListResponse
// @Failure		400				{object}	httperrors.HTTPError
// @Failure		500				{object}	httperrors.HTTPError
// @Param			name			query	string	false	"Filter by name"
// @Param			profession		query	string	false	"Filter by profession"
// @Param			militaryService	query	string	false	"Filter by military service"
// @Router			/v1/participants [get]
func (co Controller) GetParticipants(c *gin.Context) {
	var filter ParticipantQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperrors.New(err))
		return
	}

	// Get the parameters set in the query string
	queryFields := httputil.QueryFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	participants := []models.Participant{}
	err = models.DB.
		Preload("Choices", choicesInOrder).
		Order("created_at, name").
		Where(&model, queryFields...).
		Find(&participants).Error
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	c.JSON(http.StatusOK, ParticipantListResponse{Data: participants})
}

// @Summary		Get participant
// @Description	Returns a single participant record with its choices
// @Tags			Participants
// @Produce		json
// @Success		200	{object}	ParticipantResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/participants/{id} [get]
func (co Controller) GetParticipant(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	var participant models.Participant
	err = models.DB.Preload("Choices", choicesInOrder).First(&participant, "id = ?", id).Error
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	c.JSON(http.StatusOK, ParticipantResponse{Data: participant})
}

// CreateParticipant submits a balanced budget.
//
// The original record and its military twin are persisted together.
//
// @Summary		Submit budget
// @Description	Persists a balanced budget together with its military twin
// @Tags			Participants
// @Produce		json
// @Success		201		{object}	ParticipantCreateResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			request	body		BudgetRequest	true	"Budget session"
// @Router			/v1/participants [post]
func (co Controller) CreateParticipant(c *gin.Context) {
	var request BudgetRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	if co.Settings.Twin.IsTwinName(strings.TrimSpace(request.Name)) {
		c.JSON(http.StatusBadRequest, httperrors.New(budget.ErrTwinName))
		return
	}

	submission, cat, err := co.allocate(request)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	original, err := submission.Participant()
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	diags := []diagnostics.Diagnostic{}
	twin, err := models.CreateWithTwin(models.DB, &original, func(p models.Participant) models.Participant {
		derived, twinDiags := budget.Twin(p, cat, co.Settings.Twin)
		diags = append(diags, twinDiags...)
		return derived
	})
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	diagnostics.Log(log.Logger, diags)

	c.JSON(http.StatusCreated, ParticipantCreateResponse{
		Data: ParticipantPair{
			Original: original,
			Twin:     twin,
		},
		Diagnostics: diags,
	})
}
