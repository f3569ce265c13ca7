package adapters

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/thirdweb-dev/blobflow/internal/common"
)

const (
	defaultCalldataRatio    = 0.5
	defaultConfirmedBlobs   = 100
	defaultBaseFeeFormatted = "0 gwei"
)

// Stats maps the network-wide counters into the dashboard shape. An empty
// timeframe asks the upstream for its default window.
func (s *Service) Stats(ctx context.Context, timeframe common.TimeFrame) (common.StatsResponse, error) {
	params := url.Values{}
	if timeframe != "" {
		if !timeframe.Valid() {
			return common.StatsResponse{}, fmt.Errorf("invalid timeframe %q", timeframe)
		}
		params.Set("timeframe", string(timeframe))
	}
	endpoint := s.endpoint("/stats", params)

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return common.StatsResponse{}, err
	}
	raw := decodeData[common.RawStats](endpoint, resp.Data)

	return common.StatsResponse{Data: MapStats(raw)}, nil
}

func MapStats(raw common.RawStats) common.NetworkStats {
	ratio := defaultCalldataRatio
	if raw.BlobVsCalldataCost != nil && *raw.BlobVsCalldataCost != 0 {
		ratio = *raw.BlobVsCalldataCost
	}

	pending := raw.TotalPendingBlobs
	if pending == 0 {
		pending = raw.PendingBlobsCount
	}

	confirmed := raw.TotalConfirmedBlobs
	if confirmed == 0 {
		confirmed = defaultConfirmedBlobs
	}

	timeFrames := make(map[common.TimeFrame]common.TimeSeriesData, len(common.TimeFrames))
	for _, tf := range common.TimeFrames {
		timeFrames[tf] = common.EmptyTimeSeries()
	}

	return common.NetworkStats{
		CurrentBlobBaseFee:    common.FormatFee(raw.CurrentBaseFee, defaultBaseFeeFormatted),
		BlobBaseFeeChange:     raw.HourlyBaseFeeChange,
		PendingBlobsCount:     pending,
		AvgBlobsPerBlock:      math.Round(float64(confirmed)/100*10) / 10,
		BlobVsCalldataSavings: common.FormatSavings(ratio),
		AverageBaseFee:        common.FormatFee(raw.AverageBaseFee, defaultBaseFeeFormatted),
		AverageTip:            common.FormatFee(raw.AverageTip, defaultBaseFeeFormatted),
		AverageTotalCost:      common.FormatFee(raw.AverageTotalCost, "0 ETH"),
		TotalBlobs:            raw.TotalBlobs,
		LastIndexedBlock:      raw.LastIndexedBlock,
		NetworkName:           raw.NetworkName,
		TimeFrames:            timeFrames,
	}
}
