package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/blobflow/api"
	"github.com/thirdweb-dev/blobflow/internal/common"
)

// @Summary Get network stats
// @Description Retrieve blob fee and usage counters
// @Tags stats
// @Produce json
// @Param timeframe query string false "Time window" Enums(24h, 7d, 30d, all)
// @Success 200 {object} api.QueryResponse{data=common.NetworkStats}
// @Failure 400 {object} api.Error
// @Failure 502 {object} api.Error
// @Failure 504 {object} api.Error
// @Router /v1/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request, 1)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	service, selected := h.current()
	resp, err := service.Stats(c.Request.Context(), common.TimeFrame(queryParams.Timeframe))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, selected, resp.Data, nil)
}
