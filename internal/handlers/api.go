package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blobflow/api"
	"github.com/thirdweb-dev/blobflow/internal/adapters"
	"github.com/thirdweb-dev/blobflow/internal/client"
	"github.com/thirdweb-dev/blobflow/internal/common"
	"github.com/thirdweb-dev/blobflow/internal/middleware"
	"github.com/thirdweb-dev/blobflow/internal/network"
	"github.com/thirdweb-dev/blobflow/internal/pager"
)

// Handler serves the dashboard contract for the currently selected network.
type Handler struct {
	service  *adapters.Service
	selector *network.Selector
}

func New(service *adapters.Service, selector *network.Selector) *Handler {
	return &Handler{service: service, selector: selector}
}

// current binds the adapters to the network selected at request time.
func (h *Handler) current() (*adapters.Service, network.Config) {
	selected := h.selector.Current()
	return h.service.WithNetwork(selected.APIParam), selected
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	v1 := r.Group("/v1")
	{
		v1.Use(middleware.Cors)

		v1.GET("/blocks", h.GetBlocks)
		v1.GET("/blocks/:number", h.GetBlock)
		v1.GET("/blobs/:hash", h.GetBlob)

		v1.GET("/mempool", h.GetMempool)

		v1.GET("/users", h.GetUsers)
		v1.GET("/users/:id", h.GetUser)

		v1.GET("/stats", h.GetStats)

		v1.GET("/network", h.GetNetwork)
		v1.PUT("/network", middleware.Authorization, h.PutNetwork)

		// Preflight requests need a matching route for the group middleware to run.
		v1.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}
}

// handleError maps adapter and transport failures onto HTTP status codes.
func handleError(c *gin.Context, err error) {
	var statusErr *client.StatusError
	switch {
	case errors.Is(err, adapters.ErrNotFound):
		api.NotFoundErrorHandler(c, err)
	case errors.Is(err, network.ErrUnknownNetwork), errors.Is(err, pager.ErrInvalidLimit):
		api.BadRequestErrorHandler(c, err)
	case client.IsTimeout(err):
		api.GatewayTimeoutErrorHandler(c, err)
	case errors.As(err, &statusErr), client.IsNetworkError(err):
		api.BadGatewayErrorHandler(c, err)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		api.InternalErrorHandler(c)
	}
}

func respond(c *gin.Context, selected network.Config, data interface{}, pagination *common.Pagination) {
	c.JSON(http.StatusOK, api.QueryResponse{
		Meta:       api.Meta{Network: selected.Name},
		Data:       data,
		Pagination: pagination,
	})
}
