package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/blobflow/api"
	"github.com/thirdweb-dev/blobflow/internal/adapters"
)

// @Summary Get mempool
// @Description Retrieve pending blob transactions
// @Tags mempool
// @Produce json
// @Param page query int false "Page number for pagination" default(1)
// @Param limit query int false "Number of items per page" default(5)
// @Success 200 {object} api.QueryResponse{data=[]common.MempoolTransaction}
// @Failure 400 {object} api.Error
// @Failure 502 {object} api.Error
// @Failure 504 {object} api.Error
// @Router /v1/mempool [get]
func (h *Handler) GetMempool(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request, adapters.DefaultMempoolLimit)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	service, selected := h.current()
	resp, err := service.Mempool(c.Request.Context(), queryParams.Page, queryParams.Limit)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, selected, resp.Data, &resp.Pagination)
}
