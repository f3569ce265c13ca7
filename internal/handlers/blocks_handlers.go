package handlers

import (
	"fmt"
	"strconv"
	"strings"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/blobflow/api"
	"github.com/thirdweb-dev/blobflow/internal/adapters"
)

// @Summary Get latest blocks
// @Description Retrieve recent blocks carrying blobs, grouped from blob records
// @Tags blocks
// @Accept json
// @Produce json
// @Param page query int false "Page number for pagination" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} api.QueryResponse{data=[]common.Block}
// @Failure 400 {object} api.Error
// @Failure 502 {object} api.Error
// @Failure 504 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /v1/blocks [get]
func (h *Handler) GetBlocks(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request, adapters.DefaultBlocksLimit)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	service, selected := h.current()
	resp, err := service.LatestBlocks(c.Request.Context(), queryParams.Page, queryParams.Limit)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, selected, resp.Data, &resp.Pagination)
}

// @Summary Get block
// @Description Look up a block among the most recent blob records
// @Tags blocks
// @Produce json
// @Param number path string true "Block number, decimal or 0x-prefixed hex"
// @Success 200 {object} api.QueryResponse{data=common.Block}
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 502 {object} api.Error
// @Router /v1/blocks/{number} [get]
func (h *Handler) GetBlock(c *gin.Context) {
	number, err := parseBlockNumber(c.Param("number"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	service, selected := h.current()
	block, err := service.BlockByNumber(c.Request.Context(), number)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, selected, block, nil)
}

// @Summary Get blob
// @Description Retrieve the blob record of a transaction
// @Tags blocks
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} api.QueryResponse{data=common.RawBlobRecord}
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 502 {object} api.Error
// @Router /v1/blobs/{hash} [get]
func (h *Handler) GetBlob(c *gin.Context) {
	hash := c.Param("hash")
	if err := validateTxHash(hash); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	service, selected := h.current()
	record, err := service.BlobByTxHash(c.Request.Context(), strings.ToLower(hash))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, selected, record, nil)
}

func parseBlockNumber(raw string) (uint64, error) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		n, err := hexutil.DecodeUint64(strings.ToLower(raw))
		if err != nil {
			return 0, fmt.Errorf("invalid block number %q: %w", raw, err)
		}
		return n, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q", raw)
	}
	return n, nil
}

func validateTxHash(hash string) error {
	b, err := hexutil.Decode(hash)
	if err != nil {
		return fmt.Errorf("invalid transaction hash %q: %w", hash, err)
	}
	if len(b) != gethcommon.HashLength {
		return fmt.Errorf("invalid transaction hash %q: expected %d bytes, got %d", hash, gethcommon.HashLength, len(b))
	}
	return nil
}
