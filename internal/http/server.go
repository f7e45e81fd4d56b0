package transport

import (
	"errors"
	nethttp "net/http"

	"github.com/GolovachevS/db-config-reader/internal/domain"
	"github.com/GolovachevS/db-config-reader/internal/loader"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errEnvNotAllowed = domain.NewBadRequestError("use_env is only supported for the configured file", nil)

// FileSource describes the configuration file served by GET /connection-string.
// It is the only input resolved through the server environment.
type FileSource struct {
	Path   string
	UseEnv bool
}

// NewServer wires routes and returns a configured gin.Engine.
func NewServer(ld *loader.Loader, source FileSource) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	h := handler{loader: ld, source: source}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/connection-string", h.renderFile)
	engine.POST("/connection-string", h.renderObject)

	return engine
}

type handler struct {
	loader *loader.Loader
	source FileSource
}

type renderRequest struct {
	Config domain.DBConfig `json:"config" binding:"required"`
	UseEnv bool            `json:"use_env"`
}

func (h handler) renderObject(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.UseEnv {
		respondError(c, errEnvNotAllowed)
		return
	}

	connString, err := h.loader.LoadFromObject(req.Config, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(nethttp.StatusOK, gin.H{"connection_string": connString})
}

func (h handler) renderFile(c *gin.Context) {
	if h.source.Path == "" {
		writeError(c, nethttp.StatusNotFound, domain.ErrCodeNotFound, "no configuration file configured")
		return
	}

	cfg, err := loader.LoadFile(h.source.Path)
	if err != nil {
		respondError(c, err)
		return
	}

	connString, err := h.loader.LoadFromObject(cfg, h.source.UseEnv)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(nethttp.StatusOK, gin.H{"connection_string": connString})
}

func respondBindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeError(c, nethttp.StatusBadRequest, domain.ErrCodeBadRequest, validationErrs.Error())
		return
	}
	writeError(c, nethttp.StatusBadRequest, domain.ErrCodeParseFailure, err.Error())
}

func respondError(c *gin.Context, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		writeError(c, appErr.Status, appErr.Code, appErr.Message)
		return
	}
	writeError(c, nethttp.StatusInternalServerError, domain.ErrCodeInternal, "internal error")
}

func writeError(c *gin.Context, status int, code domain.ErrorCode, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
