package version

import (
	"net/http"
	"runtime/debug"

	"github.com/career-compass/projector/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"`
}

type Object struct {
	Version  string `json:"version" example:"1.1.0"`                                               // Version of the backend
	Revision string `json:"revision,omitempty" example:"5c1e0f9f2c8e2b0b7d0f1e6c4e4b2a8c4d1a7f3e"` // VCS revision the binary was built from
}

// RegisterRoutes registers the version routes, the CLI passes the
// version it was built with.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.GET("", Get(version))
	r.OPTIONS("", Options)
}

// revision returns the VCS revision from the build info, if any.
func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Data: Object{
				Version:  version,
				Revision: revision(),
			},
		})
	}
}
