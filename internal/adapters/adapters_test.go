package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/blobflow/internal/client"
	"github.com/thirdweb-dev/blobflow/internal/common"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Get(ctx context.Context, endpoint string, out interface{}) error {
	args := m.Called(endpoint)
	return decodeArgs(args, out)
}

func (m *mockClient) Do(ctx context.Context, endpoint string, opts *client.RequestOptions, out interface{}) error {
	args := m.Called(endpoint, opts)
	return decodeArgs(args, out)
}

func decodeArgs(args mock.Arguments, out interface{}) error {
	if err := args.Error(1); err != nil {
		return err
	}
	if args.String(0) == "" {
		return nil
	}
	return json.Unmarshal([]byte(args.String(0)), out)
}

func newTestService(c client.IClient, opts Options) *Service {
	opts.Now = func() time.Time { return testNow }
	return NewService(c, opts)
}

func ago(d time.Duration) string {
	return testNow.Add(-d).Format(time.RFC3339)
}

func blobRecord(tx string, block uint64, attribution string, age time.Duration) map[string]interface{} {
	record := map[string]interface{}{
		"tx_hash":          tx,
		"block_number":     block,
		"from_address":     "0x1234567890abcdef1234567890abcdef12345678",
		"blob_index":       0,
		"blob_size_bytes":  131072,
		"timestamp":        ago(age),
		"user_attribution": nil,
		"confirmed":        true,
		"total_cost_eth":   "0.00123",
	}
	if attribution != "" {
		record["user_attribution"] = attribution
	}
	return record
}

func rawEnvelope(t *testing.T, data interface{}, totalItems int) string {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"data": data,
		"pagination": map[string]interface{}{
			"has_next":        false,
			"has_previous":    false,
			"items_per_page":  10,
			"next_cursor":     nil,
			"previous_cursor": nil,
			"total_items":     totalItems,
		},
		"success": true,
	})
	require.NoError(t, err)
	return string(body)
}

func TestLatestBlocks_GroupsBlobsByBlock(t *testing.T) {
	mc := &mockClient{}
	records := []map[string]interface{}{
		blobRecord("0xa", 100, "Arbitrum", 30*time.Second),
		blobRecord("0xb", 100, "Optimism", 31*time.Second),
		blobRecord("0xc", 99, "", 2*time.Minute),
		blobRecord("0xd", 100, "Arbitrum", 32*time.Second),
		blobRecord("0xe", 99, "", 2*time.Minute),
	}
	mc.On("Get", "/blob/latest?limit=10").Return(rawEnvelope(t, records, 95), nil)

	resp, err := newTestService(mc, Options{}).LatestBlocks(context.Background(), 1, 10)
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, common.Block{
		ID:          1,
		Number:      "100",
		BlobCount:   3,
		Timestamp:   "30 sec ago",
		Attribution: []string{"Arbitrum", "Optimism"},
	}, resp.Data[0])
	assert.Equal(t, "99", resp.Data[1].Number)
	assert.Equal(t, 2, resp.Data[1].BlobCount)
	assert.Equal(t, []string{"Unknown"}, resp.Data[1].Attribution)
	assert.Equal(t, common.Pagination{CurrentPage: 1, TotalPages: 10, TotalItems: 95, ItemsPerPage: 10}, resp.Pagination)
	mc.AssertExpectations(t)
}

func TestLatestBlocks_SendsPageCursorAndNetwork(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/blob/latest?cursor=page_3&limit=5&network=sepolia").Return(rawEnvelope(t, []interface{}{}, 0), nil)

	resp, err := newTestService(mc, Options{Network: "sepolia"}).LatestBlocks(context.Background(), 3, 5)
	require.NoError(t, err)

	assert.Empty(t, resp.Data)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, 3, resp.Pagination.CurrentPage)
	mc.AssertExpectations(t)
}

func TestLatestBlocks_CustomCursorEncoder(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/blob/latest?cursor=offset-20&limit=10").Return(rawEnvelope(t, []interface{}{}, 0), nil)

	svc := newTestService(mc, Options{Cursor: CursorFunc(func(page int) string {
		return fmt.Sprintf("offset-%d", (page-1)*10)
	})})
	_, err := svc.LatestBlocks(context.Background(), 3, 10)
	require.NoError(t, err)
	mc.AssertExpectations(t)
}

func TestLatestBlocks_MalformedPayloadYieldsEmpty(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/blob/latest?limit=10").Return(`{"data":{"unexpected":true},"success":true}`, nil)

	resp, err := newTestService(mc, Options{}).LatestBlocks(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Pagination.TotalItems)
}

func TestAdapters_MalformedEnvelopeYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "array body", body: `[]`},
		{name: "string total_items", body: `{"data":[],"pagination":{"total_items":"100"},"success":true}`},
		{name: "string success", body: `{"data":null,"success":"yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := &mockClient{}
			mc.On("Get", "/blob/latest?limit=10").Return(tt.body, nil)
			mc.On("Get", "/blob/mempool?limit=5").Return(tt.body, nil)
			mc.On("Get", "/users?limit=5").Return(tt.body, nil)
			mc.On("Get", "/stats").Return(tt.body, nil)
			svc := newTestService(mc, Options{})

			blocks, err := svc.LatestBlocks(context.Background(), 1, 10)
			require.NoError(t, err)
			assert.Empty(t, blocks.Data)
			assert.Equal(t, 0, blocks.Pagination.TotalItems)

			mempool, err := svc.Mempool(context.Background(), 1, 5)
			require.NoError(t, err)
			assert.Empty(t, mempool.Data)

			users, err := svc.TopUsers(context.Background(), 1, 5)
			require.NoError(t, err)
			assert.Empty(t, users.Data)
			assert.Equal(t, 0, users.Pagination.TotalPages)

			stats, err := svc.Stats(context.Background(), "")
			require.NoError(t, err)
			assert.Equal(t, 0, stats.Data.TotalBlobs)
		})
	}
}

func TestLatestBlocks_MalformedPaginationKeepsData(t *testing.T) {
	mc := &mockClient{}
	body := `{"data":[{"tx_hash":"0xa","block_number":7}],"pagination":{"total_items":"100"},"success":true}`
	mc.On("Get", "/blob/latest?limit=10").Return(body, nil)

	resp, err := newTestService(mc, Options{}).LatestBlocks(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "7", resp.Data[0].Number)
	assert.Equal(t, 0, resp.Pagination.TotalItems)
}

func TestLatestBlocks_PropagatesTransportError(t *testing.T) {
	mc := &mockClient{}
	upstream := &client.StatusError{Code: 503}
	mc.On("Get", "/blob/latest?limit=10").Return("", upstream)

	_, err := newTestService(mc, Options{}).LatestBlocks(context.Background(), 1, 10)
	assert.ErrorIs(t, err, upstream)
}

func TestBlockByNumber(t *testing.T) {
	mc := &mockClient{}
	records := []map[string]interface{}{
		blobRecord("0xa", 100, "Base", time.Minute),
		blobRecord("0xb", 101, "Base", time.Minute),
		blobRecord("0xc", 100, "", time.Minute),
	}
	mc.On("Get", "/blob/latest?limit=100").Return(rawEnvelope(t, records, 3), nil)
	svc := newTestService(mc, Options{})

	block, err := svc.BlockByNumber(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, block.BlobCount)
	assert.Equal(t, []string{"Base"}, block.Attribution)

	_, err = svc.BlockByNumber(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlobByTxHash_NotFound(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/blob/0xdead").Return("", &client.StatusError{Code: 404})

	_, err := newTestService(mc, Options{}).BlobByTxHash(context.Background(), "0xdead")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMempool_NullAttributionMapsToNilUser(t *testing.T) {
	mc := &mockClient{}
	first := blobRecord("0xa", 0, "", 45*time.Second)
	first["confirmed"] = false
	second := blobRecord("0xb", 0, "", 2*time.Minute)
	second["confirmed"] = false
	mc.On("Get", "/blob/mempool?limit=5").Return(rawEnvelope(t, []interface{}{first, second}, 2), nil)

	resp, err := newTestService(mc, Options{}).Mempool(context.Background(), 1, 5)
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	for _, tx := range resp.Data {
		assert.Nil(t, tx.User)
		assert.Equal(t, 1, tx.BlobCount)
		assert.Equal(t, "0x1234...", tx.FromAddress)
		assert.Equal(t, "0.00123 ETH", tx.EstimatedCost)
	}
	assert.Equal(t, "45 sec ago", resp.Data[0].TimeInMempool)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestMapMempool_Aggregation(t *testing.T) {
	label := "Arbitrum"
	records := []common.RawBlobRecord{
		{TxHash: "0xa", BlobIndex: 0, UserAttribution: &label, Timestamp: ago(time.Minute)},
		{TxHash: "0xa", BlobIndex: 1, UserAttribution: &label, Timestamp: ago(time.Minute)},
		{TxHash: "0xb", BlobIndex: 0, Timestamp: ago(time.Minute)},
		{TxHash: "0xc", BlobIndex: 0, Confirmed: true, Timestamp: ago(time.Minute)},
	}

	flat := MapMempool(records, false, testNow)
	require.Len(t, flat, 3)
	assert.Equal(t, 1, flat[0].BlobCount)
	assert.Equal(t, 1, flat[1].BlobCount)

	grouped := MapMempool(records, true, testNow)
	require.Len(t, grouped, 2)
	assert.Equal(t, "0xa", grouped[0].TxHash)
	assert.Equal(t, 2, grouped[0].BlobCount)
	assert.Equal(t, "Arbitrum", *grouped[0].User)
	assert.Equal(t, 2, grouped[1].ID)
}

func usersFixture() []map[string]interface{} {
	return []map[string]interface{}{
		{"address": "0x1234567890abcdef1234567890abcdef12345678", "name": "Arbitrum", "blob_count": 423, "total_cost_eth": "0.01", "last_timestamp": ago(30 * time.Minute)},
		{"address": "0xabcdef1234567890abcdef1234567890abcdef12", "name": "Optimism", "blob_count": 287, "total_cost_eth": "0.0075"},
		{"address": "0x9999997890abcdef1234567890abcdef12345678", "name": nil, "blob_count": 150},
		{"address": "", "name": nil, "blob_count": 90},
		{"address": "0x7777777890abcdef1234567890abcdef12345678", "name": "Base", "blob_count": 50},
	}
}

func TestTopUsers_ComputesPercentages(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/users?limit=5").Return(rawEnvelope(t, usersFixture(), 12), nil)
	mc.On("Get", "/stats").Return(`{"data":{"total_blobs":1000},"success":true}`, nil)

	resp, err := newTestService(mc, Options{}).TopUsers(context.Background(), 1, 5)
	require.NoError(t, err)

	require.Len(t, resp.Data, 5)
	assert.Equal(t, common.User{
		ID:         1,
		Name:       "Arbitrum",
		Address:    "0x1234567890abcdef1234567890abcdef12345678",
		DataCount:  423,
		Percentage: 42.3,
	}, resp.Data[0])
	assert.Equal(t, "0x9999...", resp.Data[2].Name)
	assert.Equal(t, "Unknown", resp.Data[3].Name)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	mc.AssertExpectations(t)
}

func TestTopUsers_IDsContinueAcrossPages(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/users?cursor=page_2&limit=5").Return(rawEnvelope(t, usersFixture()[:2], 7), nil)
	mc.On("Get", "/stats").Return(`{"data":{},"success":true}`, nil)

	resp, err := newTestService(mc, Options{}).TopUsers(context.Background(), 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Data[0].ID)
	assert.Equal(t, 7, resp.Data[1].ID)
	// total_blobs missing falls back to 1000
	assert.Equal(t, 42.3, resp.Data[0].Percentage)
}

func TestTopUsers_StatsFailurePropagates(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/users?limit=5").Return(rawEnvelope(t, usersFixture(), 5), nil).Maybe()
	mc.On("Get", "/stats").Return("", client.ErrTimeout)

	_, err := newTestService(mc, Options{}).TopUsers(context.Background(), 1, 5)
	assert.ErrorIs(t, err, client.ErrTimeout)
}

func TestUserByID_Listing(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/users?limit=10").Return(rawEnvelope(t, usersFixture(), 5), nil)
	mc.On("Get", "/stats").Return(`{"data":{"total_blobs":1000},"success":true}`, nil)
	svc := newTestService(mc, Options{})

	detail, err := svc.UserByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Arbitrum", detail.Name)
	assert.Equal(t, 42.3, detail.Percentage)
	assert.Equal(t, "0.01 ETH", detail.TotalCost)
	assert.Equal(t, "0.00002364 ETH", detail.AvgCostPerBlob)
	assert.Equal(t, "30 min ago", detail.LatestActivity)
	assert.Equal(t, "Unknown", detail.FirstSeen)
	assert.NotNil(t, detail.Transactions)

	_, err = svc.UserByID(context.Background(), 11)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserByID_Direct(t *testing.T) {
	mc := &mockClient{}
	user := map[string]interface{}{
		"address":         "0xabcdef1234567890abcdef1234567890abcdef12",
		"name":            "Optimism",
		"blob_count":      2,
		"total_cost_eth":  "0.002",
		"first_timestamp": ago(72 * time.Hour),
		"last_timestamp":  ago(10 * time.Second),
		"transactions": []map[string]interface{}{
			{"tx_hash": "0xa", "confirmed": true, "total_cost_eth": "0.001", "block_number": 100, "timestamp": ago(time.Hour)},
			{"tx_hash": "0xb", "confirmed": false, "total_cost_eth": "0.001", "timestamp": ago(10 * time.Second)},
		},
	}
	body, err := json.Marshal(map[string]interface{}{"data": user, "success": true})
	require.NoError(t, err)
	mc.On("Get", "/users/42").Return(string(body), nil)
	mc.On("Get", "/users/43").Return("", &client.StatusError{Code: 404})
	mc.On("Get", "/stats").Return(`{"data":{"total_blobs":200},"success":true}`, nil)
	svc := newTestService(mc, Options{UserLookup: UserLookupDirect})

	detail, err := svc.UserByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, detail.ID)
	assert.Equal(t, 1.0, detail.Percentage)
	assert.Equal(t, "0.001 ETH", detail.AvgCostPerBlob)
	assert.Equal(t, "3 days ago", detail.FirstSeen)
	require.Len(t, detail.Transactions, 2)
	assert.Equal(t, common.TransactionStatusConfirmed, detail.Transactions[0].Status)
	assert.Equal(t, uint64(100), *detail.Transactions[0].BlockNumber)
	assert.Equal(t, common.TransactionStatusPending, detail.Transactions[1].Status)
	assert.Nil(t, detail.Transactions[1].BlockNumber)

	_, err = svc.UserByID(context.Background(), 43)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStats(t *testing.T) {
	mc := &mockClient{}
	mc.On("Get", "/stats?network=mainnet&timeframe=7d").Return(`{"data":{
		"current_base_fee": 12450000000,
		"hourly_base_fee_change": 0.8,
		"pending_blobs_count": 237,
		"average_base_fee": "10.2 gwei",
		"average_tip": "1500000000",
		"average_total_cost": "1230000000000000000",
		"blob_vs_calldata_cost": 0.28,
		"total_blobs": 1250,
		"total_confirmed_blobs": 1640,
		"last_indexed_block": 19342751,
		"network_name": "Ethereum"
	},"success":true}`, nil)

	resp, err := newTestService(mc, Options{Network: "mainnet"}).Stats(context.Background(), common.TimeFrame7d)
	require.NoError(t, err)

	stats := resp.Data
	assert.Equal(t, "12.45 Gwei", stats.CurrentBlobBaseFee)
	assert.Equal(t, 0.8, stats.BlobBaseFeeChange)
	assert.Equal(t, 237, stats.PendingBlobsCount)
	assert.Equal(t, 16.4, stats.AvgBlobsPerBlock)
	assert.Equal(t, "72% cheaper", stats.BlobVsCalldataSavings)
	assert.Equal(t, "10.2 gwei", stats.AverageBaseFee)
	assert.Equal(t, "1.5 Gwei", stats.AverageTip)
	assert.Equal(t, "1.23 ETH", stats.AverageTotalCost)
	assert.Equal(t, uint64(19342751), stats.LastIndexedBlock)
	assert.Len(t, stats.TimeFrames, 4)
}

func TestStats_Defaults(t *testing.T) {
	stats := MapStats(common.RawStats{})
	assert.Equal(t, "0 gwei", stats.CurrentBlobBaseFee)
	assert.Equal(t, "50% cheaper", stats.BlobVsCalldataSavings)
	assert.Equal(t, 1.0, stats.AvgBlobsPerBlock)
}

func TestStats_InvalidTimeframe(t *testing.T) {
	mc := &mockClient{}
	_, err := newTestService(mc, Options{}).Stats(context.Background(), "1y")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid timeframe"))
	mc.AssertNotCalled(t, "Get", mock.Anything)
}

func TestFormatCursor(t *testing.T) {
	assert.Equal(t, "", DefaultCursorFormat.Cursor(1))
	assert.Equal(t, "page_2", DefaultCursorFormat.Cursor(2))
	assert.Equal(t, "p4", FormatCursor("p%d").Cursor(4))
	assert.Equal(t, "page_4", FormatCursor("broken").Cursor(4))
}
