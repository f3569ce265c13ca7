package adapters

import (
	"context"
	"time"

	"github.com/thirdweb-dev/blobflow/internal/common"
)

// Mempool returns a page of pending blob transactions.
func (s *Service) Mempool(ctx context.Context, page, limit int) (common.MempoolResponse, error) {
	page, limit = normalizePage(page, limit, DefaultMempoolLimit)
	endpoint := s.listEndpoint("/blob/mempool", page, limit)

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return common.MempoolResponse{}, err
	}
	records := decodeData[[]common.RawBlobRecord](endpoint, resp.Data)

	return common.MempoolResponse{
		Data:       MapMempool(records, s.opts.AggregateMempoolByTx, s.opts.Now()),
		Pagination: common.NewPagination(page, limit, resp.TotalItems()),
	}, nil
}

// MapMempool turns unconfirmed records into mempool rows. Without aggregation
// every blob record is its own row with blobCount 1. With aggregation, records
// sharing a tx hash collapse into one row whose blobCount is the record count;
// cost and time come from the first record of the transaction.
func MapMempool(records []common.RawBlobRecord, aggregate bool, now time.Time) []common.MempoolTransaction {
	txs := make([]common.MempoolTransaction, 0, len(records))
	byHash := make(map[string]int)

	for _, record := range records {
		if record.Confirmed {
			continue
		}
		if aggregate && record.TxHash != "" {
			if idx, ok := byHash[record.TxHash]; ok {
				txs[idx].BlobCount++
				continue
			}
			byHash[record.TxHash] = len(txs)
		}

		var user *string
		if label := record.Attribution(); label != "" {
			user = &label
		}
		txs = append(txs, common.MempoolTransaction{
			ID:            len(txs) + 1,
			TxHash:        record.TxHash,
			FromAddress:   common.TruncateAddress(record.FromAddress),
			User:          user,
			BlobCount:     1,
			EstimatedCost: formatEth(record.TotalCostEth),
			TimeInMempool: common.FormatRelativeTime(record.Timestamp, now),
		})
	}
	return txs
}

func formatEth(cost common.FlexString) string {
	if cost == "" {
		return "0 ETH"
	}
	return cost.String() + " ETH"
}
