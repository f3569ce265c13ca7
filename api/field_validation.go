package api

import (
	"fmt"

	"github.com/thirdweb-dev/blobflow/internal/common"
)

const MaxLimit = 100

// ValidateQueryParams rejects negative paging values and unknown timeframes.
// Limits above MaxLimit are clamped rather than rejected.
func ValidateQueryParams(params *QueryParams) error {
	if params.Page < 1 {
		return fmt.Errorf("invalid page %d: must be at least 1", params.Page)
	}
	if params.Limit < 1 {
		return fmt.Errorf("invalid limit %d: must be at least 1", params.Limit)
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	if params.Timeframe != "" && !common.TimeFrame(params.Timeframe).Valid() {
		return fmt.Errorf("invalid timeframe %q: must be one of %v", params.Timeframe, common.TimeFrames)
	}
	return nil
}
