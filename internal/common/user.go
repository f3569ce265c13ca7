package common

type RawUserTransaction struct {
	TxHash       string     `json:"tx_hash"`
	Confirmed    bool       `json:"confirmed"`
	TotalCostEth FlexString `json:"total_cost_eth"`
	BlockNumber  *uint64    `json:"block_number"`
	Timestamp    string     `json:"timestamp"`
}

// RawUser is a per-address blob aggregate.
type RawUser struct {
	Address        string               `json:"address"`
	Name           *string              `json:"name"`
	BlobCount      int                  `json:"blob_count"`
	FirstTimestamp string               `json:"first_timestamp"`
	LastTimestamp  string               `json:"last_timestamp"`
	NetworkID      int                  `json:"network_id"`
	NetworkName    string               `json:"network_name"`
	TotalCostEth   FlexString           `json:"total_cost_eth"`
	Transactions   []RawUserTransaction `json:"transactions"`
}

type User struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address,omitempty"`
	DataCount  int     `json:"dataCount"`
	Percentage float64 `json:"percentage"`
}

type TransactionStatus string

const (
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusPending   TransactionStatus = "pending"
)

type UserTransaction struct {
	ID          string            `json:"id"`
	Status      TransactionStatus `json:"status"`
	Cost        string            `json:"cost"`
	BlockNumber *uint64           `json:"blockNumber,omitempty"`
	Timestamp   string            `json:"timestamp"`
}

type UserDetail struct {
	User
	Transactions   []UserTransaction `json:"transactions"`
	TotalCost      string            `json:"totalCost"`
	AvgCostPerBlob string            `json:"avgCostPerBlob"`
	FirstSeen      string            `json:"firstSeen"`
	LatestActivity string            `json:"latestActivity"`
}

type TopUsersResponse = PaginatedResponse[User]
