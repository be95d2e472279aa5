package router

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/career-compass/projector/pkg/config"
	"github.com/career-compass/projector/pkg/controllers/healthz"
	"github.com/career-compass/projector/pkg/controllers/root"
	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/controllers/version"
	"github.com/career-compass/projector/pkg/httperrors"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var Version = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config sets up the router and its middlewares.
//
// The returned teardown function unregisters the Prometheus metrics
// and must be called when the router is not used anymore.
func Config(url *url.URL, c config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperrors.New(errMethodNotAllowed))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, _ zerolog.Logger) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(c.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", c.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     c.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, teardown, err
	}
	r.Use(MetricsMiddleware())

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", Version).Msg("Router")

	return r, teardown, nil
}

// Settings derives the settings of the v1 API from the configuration.
func Settings(c config.Config) (v1.Settings, error) {
	policy, err := c.Policy()
	if err != nil {
		return v1.Settings{}, err
	}

	twin := c.Twin()
	twin.Policy = policy

	return v1.Settings{
		Policy:  policy,
		Twin:    twin,
		Workers: c.SimulationWorkers,
		Report:  c.Report(),
	}, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup, c config.Config) error {
	settings, err := Settings(c)
	if err != nil {
		return err
	}

	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), Version)
	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	if c.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1.RegisterRoutes(group.Group("/v1"), settings)
	return nil
}
