package common

const Unknown = "Unknown"

// UnknownAttribution is used when no record of a block carries a label.
const UnknownAttribution = Unknown

// RawBlobRecord is one ledger entry per blob as served by the blob API.
type RawBlobRecord struct {
	TxHash          string     `json:"tx_hash"`
	BlockNumber     uint64     `json:"block_number"`
	FromAddress     string     `json:"from_address"`
	BlobIndex       int        `json:"blob_index"`
	BlobSizeBytes   uint64     `json:"blob_size_bytes"`
	Timestamp       string     `json:"timestamp"`
	UserAttribution *string    `json:"user_attribution"`
	Confirmed       bool       `json:"confirmed"`
	TotalCostEth    FlexString `json:"total_cost_eth"`
}

// Attribution returns the label or "" when the record is unattributed.
func (r RawBlobRecord) Attribution() string {
	if r.UserAttribution == nil {
		return ""
	}
	return *r.UserAttribution
}

type Block struct {
	ID          int      `json:"id"`
	Number      string   `json:"number"`
	BlobCount   int      `json:"blobCount"`
	Timestamp   string   `json:"timestamp"`
	Attribution []string `json:"attribution"`
}

type MempoolTransaction struct {
	ID            int     `json:"id"`
	TxHash        string  `json:"txHash"`
	FromAddress   string  `json:"fromAddress"`
	User          *string `json:"user"`
	BlobCount     int     `json:"blobCount"`
	EstimatedCost string  `json:"estimatedCost"`
	TimeInMempool string  `json:"timeInMempool"`
}

type LatestBlocksResponse = PaginatedResponse[Block]

type MempoolResponse = PaginatedResponse[MempoolTransaction]
