package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/career-compass/projector/pkg/httputil"
	"github.com/career-compass/projector/pkg/importer"
	"github.com/career-compass/projector/pkg/models"
	"github.com/gin-gonic/gin"
)

var errWrongFileSuffix = errors.New("the file you uploaded does not have the correct suffix")

// ImportResult reports how many rows of a reference table were imported.
type ImportResult struct {
	Table importer.Table `json:"table" example:"civilian"`
	Rows  int            `json:"rows" example:"58"`
}

type ImportResponse struct {
	Data ImportResult `json:"data"`
}

func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:table", co.OptionsImport)
	r.POST("/:table", co.ImportTable)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Failure		404	{object}	httperrors.HTTPError
// @Param			table	path		string	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/{table} [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, httperrors.ErrNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile.Open()
}

// ImportTable replaces a reference table with an uploaded CSV worksheet.
//
// The table is replaced atomically, a worksheet that fails to parse or
// store leaves the current content untouched.
//
// @Summary		Import reference table
// @Description	Replaces a reference table with an uploaded CSV worksheet
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			table	path		string	true	"One of tax, civilian, military, lifestyle"
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/{table} [post]
func (co Controller) ImportTable(c *gin.Context) {
	table, err := importer.ParseTable(c.Param("table"))
	if err != nil {
		c.JSON(http.StatusNotFound, httperrors.New(err))
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		c.JSON(http.StatusBadRequest, httperrors.New(err))
		return
	}
	defer f.Close()

	rows, err := importer.Import(models.DB, table, f)
	if err != nil {
		c.JSON(httperrors.Status(err), httperrors.New(err))
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Data: ImportResult{
			Table: table,
			Rows:  rows,
		},
	})
}
