package client

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var userByIDPattern = regexp.MustCompile(`^/users/[^/?]+`)

func strPtr(s string) *string { return &s }

// MockData returns a canned upstream payload for endpoint, used when the
// mock fallback is enabled and the real request failed.
func MockData(endpoint string, now time.Time) interface{} {
	ts := func(ago time.Duration) string { return now.Add(-ago).UTC().Format(time.RFC3339) }

	switch {
	case strings.Contains(endpoint, "/blob/latest"):
		return map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"tx_hash":          "0xabcd1234efgh5678ijkl9012mnop3456qrst7890",
					"block_number":     19342751,
					"from_address":     "0xDEF456...",
					"blob_index":       0,
					"blob_size_bytes":  128000,
					"timestamp":        ts(30 * time.Second),
					"user_attribution": "Arbitrum",
					"confirmed":        true,
				},
				{
					"tx_hash":          "0xuvwx5678yz901234abcd5678efgh9012ijkl3456",
					"block_number":     19342750,
					"from_address":     "0xABC123...",
					"blob_index":       1,
					"blob_size_bytes":  96000,
					"timestamp":        ts(time.Minute),
					"user_attribution": "Optimism",
					"confirmed":        true,
				},
			},
			"pagination": map[string]interface{}{
				"has_next":        true,
				"has_previous":    false,
				"items_per_page":  10,
				"next_cursor":     "next_page_cursor",
				"previous_cursor": nil,
				"total_items":     100,
			},
			"success": true,
		}

	case strings.Contains(endpoint, "/stats"):
		return map[string]interface{}{
			"data": map[string]interface{}{
				"current_base_fee":       "12.45 gwei",
				"hourly_base_fee_change": 0.8,
				"pending_blobs_count":    237,
				"average_base_fee":       "10.2 gwei",
				"average_tip":            "1.5 gwei",
				"average_total_cost":     "0.00123 ETH",
				"blob_vs_calldata_cost":  0.28,
				"total_blobs":            1250,
				"total_confirmed_blobs":  1000,
				"last_indexed_block":     19342751,
				"last_indexed_time":      ts(0),
				"network_id":             1,
				"network_name":           "Ethereum",
			},
			"success": true,
		}

	case strings.Contains(endpoint, "/blob/mempool"):
		return map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"tx_hash":          "0xabcd1234efgh5678ijkl9012mnop3456qrst7890",
					"from_address":     "0xDEF456...",
					"blob_index":       0,
					"blob_size_bytes":  128000,
					"timestamp":        ts(45 * time.Second),
					"user_attribution": "Arbitrum",
					"confirmed":        false,
					"total_cost_eth":   "0.00123",
				},
				{
					"tx_hash":          "0xuvwx5678yz901234abcd5678efgh9012ijkl3456",
					"from_address":     "0xABC123...",
					"blob_index":       0,
					"blob_size_bytes":  96000,
					"timestamp":        ts(2 * time.Minute),
					"user_attribution": "Optimism",
					"confirmed":        false,
					"total_cost_eth":   "0.00089",
				},
			},
			"pagination": map[string]interface{}{
				"has_next":        false,
				"has_previous":    false,
				"items_per_page":  10,
				"next_cursor":     nil,
				"previous_cursor": nil,
				"total_items":     2,
			},
			"success": true,
		}

	case userByIDPattern.MatchString(endpoint):
		return map[string]interface{}{
			"data":    mockUsers(ts)[0],
			"success": true,
		}

	case strings.Contains(endpoint, "/users"):
		return map[string]interface{}{
			"data": mockUsers(ts),
			"pagination": map[string]interface{}{
				"has_next":        false,
				"has_previous":    false,
				"items_per_page":  10,
				"next_cursor":     nil,
				"previous_cursor": nil,
				"total_items":     2,
			},
			"success": true,
		}
	}

	return map[string]interface{}{"data": []interface{}{}, "success": true}
}

func mockUsers(ts func(time.Duration) string) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"address":        "0x1234567890abcdef1234567890abcdef12345678",
			"name":           strPtr("Arbitrum"),
			"blob_count":     423,
			"last_timestamp": ts(30 * time.Minute),
			"network_id":     1,
			"network_name":   "Ethereum",
			"total_cost_eth": "0.01",
		},
		{
			"address":        "0xabcdef1234567890abcdef1234567890abcdef12",
			"name":           strPtr("Optimism"),
			"blob_count":     287,
			"last_timestamp": ts(time.Hour),
			"network_id":     1,
			"network_name":   "Ethereum",
			"total_cost_eth": "0.0075",
		},
	}
}

func decodeMock(endpoint string, now time.Time, out interface{}) error {
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(MockData(endpoint, now))
	if err != nil {
		return fmt.Errorf("encode mock data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode mock data for %s: %w", endpoint, err)
	}
	return nil
}
