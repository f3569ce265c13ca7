package common

type RawStats struct {
	CurrentBaseFee      FlexString `json:"current_base_fee"`
	HourlyBaseFeeChange float64    `json:"hourly_base_fee_change"`
	PendingBlobsCount   int        `json:"pending_blobs_count"`
	TotalPendingBlobs   int        `json:"total_pending_blobs"`
	AverageBaseFee      FlexString `json:"average_base_fee"`
	AverageTip          FlexString `json:"average_tip"`
	AverageTotalCost    FlexString `json:"average_total_cost"`
	BlobVsCalldataCost  *float64   `json:"blob_vs_calldata_cost"`
	TotalBlobs          int        `json:"total_blobs"`
	TotalConfirmedBlobs int        `json:"total_confirmed_blobs"`
	LastIndexedBlock    uint64     `json:"last_indexed_block"`
	LastIndexedTime     string     `json:"last_indexed_time"`
	NetworkID           int        `json:"network_id"`
	NetworkName         string     `json:"network_name"`
}

type TimeFrame string

const (
	TimeFrame24h TimeFrame = "24h"
	TimeFrame7d  TimeFrame = "7d"
	TimeFrame30d TimeFrame = "30d"
	TimeFrameAll TimeFrame = "all"
)

var TimeFrames = []TimeFrame{TimeFrame24h, TimeFrame7d, TimeFrame30d, TimeFrameAll}

func (tf TimeFrame) Valid() bool {
	for _, known := range TimeFrames {
		if tf == known {
			return true
		}
	}
	return false
}

type TimeSeriesDataPoint struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

type TimeSeriesData struct {
	BlobBaseFees   []TimeSeriesDataPoint `json:"blobBaseFees"`
	BlobsPerBlock  []TimeSeriesDataPoint `json:"blobsPerBlock"`
	CostComparison []TimeSeriesDataPoint `json:"costComparison"`
	Attribution    map[string]float64    `json:"attribution"`
}

func EmptyTimeSeries() TimeSeriesData {
	return TimeSeriesData{
		BlobBaseFees:   []TimeSeriesDataPoint{},
		BlobsPerBlock:  []TimeSeriesDataPoint{},
		CostComparison: []TimeSeriesDataPoint{},
		Attribution:    map[string]float64{},
	}
}

type NetworkStats struct {
	CurrentBlobBaseFee    string                       `json:"currentBlobBaseFee"`
	BlobBaseFeeChange     float64                      `json:"blobBaseFeeChange"`
	PendingBlobsCount     int                          `json:"pendingBlobsCount"`
	AvgBlobsPerBlock      float64                      `json:"avgBlobsPerBlock"`
	BlobVsCalldataSavings string                       `json:"blobVsCalldataSavings"`
	AverageBaseFee        string                       `json:"averageBaseFee"`
	AverageTip            string                       `json:"averageTip"`
	AverageTotalCost      string                       `json:"averageTotalCost"`
	TotalBlobs            int                          `json:"totalBlobs"`
	LastIndexedBlock      uint64                       `json:"lastIndexedBlock"`
	NetworkName           string                       `json:"networkName"`
	TimeFrames            map[TimeFrame]TimeSeriesData `json:"timeFrames"`
}

type StatsResponse struct {
	Data NetworkStats `json:"data"`
}
