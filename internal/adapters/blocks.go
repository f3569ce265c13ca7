package adapters

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/thirdweb-dev/blobflow/internal/client"
	"github.com/thirdweb-dev/blobflow/internal/common"
)

// LatestBlocks returns a page of blocks built from blob-level records.
func (s *Service) LatestBlocks(ctx context.Context, page, limit int) (common.LatestBlocksResponse, error) {
	page, limit = normalizePage(page, limit, DefaultBlocksLimit)
	endpoint := s.listEndpoint("/blob/latest", page, limit)

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return common.LatestBlocksResponse{}, err
	}
	records := decodeData[[]common.RawBlobRecord](endpoint, resp.Data)

	return common.LatestBlocksResponse{
		Data:       GroupBlocks(records, s.opts.Now()),
		Pagination: common.NewPagination(page, limit, resp.TotalItems()),
	}, nil
}

// BlockByNumber looks a block up in the most recent blob window.
func (s *Service) BlockByNumber(ctx context.Context, number uint64) (common.Block, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(blockLookupWindow))
	endpoint := s.endpoint("/blob/latest", params)

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return common.Block{}, err
	}
	records := decodeData[[]common.RawBlobRecord](endpoint, resp.Data)

	matching := make([]common.RawBlobRecord, 0)
	for _, record := range records {
		if record.BlockNumber == number {
			matching = append(matching, record)
		}
	}
	if len(matching) == 0 {
		return common.Block{}, fmt.Errorf("block %d: %w", number, ErrNotFound)
	}
	return GroupBlocks(matching, s.opts.Now())[0], nil
}

// BlobByTxHash returns the raw blob record of a transaction.
func (s *Service) BlobByTxHash(ctx context.Context, txHash string) (common.RawBlobRecord, error) {
	endpoint := s.endpoint("/blob/"+url.PathEscape(txHash), nil)

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		if client.IsNotFound(err) {
			return common.RawBlobRecord{}, fmt.Errorf("blob %s: %w", txHash, ErrNotFound)
		}
		return common.RawBlobRecord{}, err
	}
	record := decodeData[common.RawBlobRecord](endpoint, resp.Data)
	if record.TxHash == "" {
		return common.RawBlobRecord{}, fmt.Errorf("blob %s: %w", txHash, ErrNotFound)
	}
	return record, nil
}

type blockAggregate struct {
	number      uint64
	count       int
	timestamp   string
	attribution *common.OrderedSet[string]
}

// GroupBlocks collapses blob records into one block per block number, in
// first-seen order. Attribution labels are deduplicated and fall back to
// ["Unknown"]; the block timestamp is the first record's.
func GroupBlocks(records []common.RawBlobRecord, now time.Time) []common.Block {
	order := make([]*blockAggregate, 0)
	byNumber := make(map[uint64]*blockAggregate)

	for _, record := range records {
		agg, ok := byNumber[record.BlockNumber]
		if !ok {
			agg = &blockAggregate{
				number:      record.BlockNumber,
				timestamp:   record.Timestamp,
				attribution: common.NewOrderedSet[string](),
			}
			byNumber[record.BlockNumber] = agg
			order = append(order, agg)
		}
		agg.count++
		if label := record.Attribution(); label != "" {
			agg.attribution.Add(label)
		}
	}

	blocks := make([]common.Block, 0, len(order))
	for i, agg := range order {
		attribution := agg.attribution.List()
		if len(attribution) == 0 {
			attribution = []string{common.UnknownAttribution}
		}
		blocks = append(blocks, common.Block{
			ID:          i + 1,
			Number:      strconv.FormatUint(agg.number, 10),
			BlobCount:   agg.count,
			Timestamp:   common.FormatRelativeTime(agg.timestamp, now),
			Attribution: attribution,
		})
	}
	return blocks
}
