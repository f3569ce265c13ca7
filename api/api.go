package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blobflow/internal/common"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type QueryParams struct {
	Page      int    `schema:"page"`
	Limit     int    `schema:"limit"`
	Timeframe string `schema:"timeframe"`
}

type Meta struct {
	Network string `json:"network"`
}

type QueryResponse struct {
	Meta       Meta               `json:"meta"`
	Data       interface{}        `json:"data"`
	Pagination *common.Pagination `json:"pagination,omitempty"`
}

func writeError(c *gin.Context, message string, code int) {
	c.AbortWithStatusJSON(code, Error{
		Code:    code,
		Message: message,
	})
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	NotFoundErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusNotFound)
	}
	GatewayTimeoutErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusGatewayTimeout)
	}
	BadGatewayErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadGateway)
	}
	UnauthorizedErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusUnauthorized)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// ParseQueryParams decodes page, limit and timeframe, applies defaultLimit and
// validates the result.
func ParseQueryParams(r *http.Request, defaultLimit int) (QueryParams, error) {
	var params QueryParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		log.Debug().Err(err).Msg("Error parsing query params")
		return QueryParams{}, err
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = defaultLimit
	}
	if err := ValidateQueryParams(&params); err != nil {
		return QueryParams{}, err
	}
	return params, nil
}
