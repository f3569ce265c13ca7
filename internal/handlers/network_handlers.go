package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/blobflow/api"
	"github.com/thirdweb-dev/blobflow/internal/network"
)

type SelectNetworkRequest struct {
	Name string `json:"name" binding:"required"`
}

type NetworkResponse struct {
	Selected  network.Config   `json:"selected"`
	Available []network.Config `json:"available"`
}

// @Summary Get network
// @Description Retrieve the selected network and the available ones
// @Tags network
// @Produce json
// @Success 200 {object} NetworkResponse
// @Router /v1/network [get]
func (h *Handler) GetNetwork(c *gin.Context) {
	c.JSON(http.StatusOK, NetworkResponse{
		Selected:  h.selector.Current(),
		Available: network.Registry,
	})
}

// @Summary Select network
// @Description Persist the selected network; subsequent requests use it
// @Tags network
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body SelectNetworkRequest true "Network name"
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /v1/network [put]
func (h *Handler) PutNetwork(c *gin.Context) {
	var req SelectNetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	selected, err := h.selector.Select(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NetworkResponse{
		Selected:  selected,
		Available: network.Registry,
	})
}
