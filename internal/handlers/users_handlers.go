package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/blobflow/api"
	"github.com/thirdweb-dev/blobflow/internal/adapters"
)

// @Summary Get top users
// @Description Retrieve blob submitters ranked by blob count with their share of all blobs
// @Tags users
// @Produce json
// @Param page query int false "Page number for pagination" default(1)
// @Param limit query int false "Number of items per page" default(5)
// @Success 200 {object} api.QueryResponse{data=[]common.User}
// @Failure 400 {object} api.Error
// @Failure 502 {object} api.Error
// @Failure 504 {object} api.Error
// @Router /v1/users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request, adapters.DefaultUsersLimit)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	service, selected := h.current()
	resp, err := service.TopUsers(c.Request.Context(), queryParams.Page, queryParams.Limit)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, selected, resp.Data, &resp.Pagination)
}

// @Summary Get user
// @Description Retrieve a user's detail by rank id
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} api.QueryResponse{data=common.UserDetail}
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 502 {object} api.Error
// @Router /v1/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		api.BadRequestErrorHandler(c, fmt.Errorf("invalid user id %q", c.Param("id")))
		return
	}

	service, selected := h.current()
	detail, err := service.UserByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, selected, detail, nil)
}
