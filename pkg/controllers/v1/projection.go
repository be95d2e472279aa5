package v1

import (
	"bytes"
	"net/http"

	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/projection"
	"github.com/gin-gonic/gin"
)

type ProjectionListResponse struct {
	Data []projection.Projection `json:"data"` // One projection per participant record, in submission order
}

func (co Controller) RegisterProjectionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsProjections)
	r.GET("", co.GetProjections)

	r.OPTIONS("/export", co.OptionsProjectionExport)
	r.GET("/export", co.GetProjectionExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projections
// @Success		204
// @Router			/v1/projections [options]
func (co Controller) OptionsProjections(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projections
// @Success		204
// @Router			/v1/projections/export [options]
func (co Controller) OptionsProjectionExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// simulate projects all persisted participants.
func (co Controller) simulate(c *gin.Context) ([]projection.Projection, error) {
	db := source()

	participants, err := db.Participants()
	if err != nil {
		return nil, err
	}

	civilian, err := db.Professions(models.Civilian)
	if err != nil {
		return nil, err
	}

	military, err := db.Professions(models.Military)
	if err != nil {
		return nil, err
	}

	return projection.SimulateAll(c.Request.Context(), participants, projection.NewTables(civilian, military), co.Settings.Workers)
}

// GetProjections simulates the net worth of all participants over the
// full projection horizon.
//
// @Summary		Get projections
// @Description	Simulates the net worth of all participants over the full projection horizon
// @Tags			Projections
// @Produce		json
// @Success		200	{object}	ProjectionListResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/projections [get]
func (co Controller) GetProjections(c *gin.Context) {
	projections, err := co.simulate(c)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	c.JSON(http.StatusOK, ProjectionListResponse{Data: projections})
}

// GetProjectionExport returns all projections as CSV in long format,
// one row per participant and month.
//
// @Summary		Export projections
// @Description	Returns all projections as CSV with one row per participant and month
// @Tags			Projections
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/projections/export [get]
func (co Controller) GetProjectionExport(c *gin.Context) {
	projections, err := co.simulate(c)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	var buf bytes.Buffer
	if err := projection.WriteCSV(&buf, projections); err != nil {
		c.JSON(http.StatusInternalServerError, httperrors.New(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="projections.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
