package adapters

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thirdweb-dev/blobflow/internal/client"
	"github.com/thirdweb-dev/blobflow/internal/common"
	"golang.org/x/sync/errgroup"
)

// TopUsers returns a page of users with their share of all blobs. The users
// page and the global stats are fetched concurrently.
func (s *Service) TopUsers(ctx context.Context, page, limit int) (common.TopUsersResponse, error) {
	resp, _, err := s.topUsers(ctx, page, limit)
	return resp, err
}

func (s *Service) topUsers(ctx context.Context, page, limit int) (common.TopUsersResponse, []common.RawUser, error) {
	page, limit = normalizePage(page, limit, DefaultUsersLimit)
	endpoint := s.listEndpoint("/users", page, limit)

	var (
		resp       envelope
		totalBlobs int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp, err = s.get(gctx, endpoint)
		return err
	})
	g.Go(func() error {
		total, err := s.totalBlobs(gctx)
		totalBlobs = total
		return err
	})
	if err := g.Wait(); err != nil {
		return common.TopUsersResponse{}, nil, err
	}

	raws := decodeData[[]common.RawUser](endpoint, resp.Data)
	offset := (page - 1) * limit
	users := make([]common.User, 0, len(raws))
	for i, raw := range raws {
		users = append(users, mapUser(raw, offset+i+1, totalBlobs))
	}

	return common.TopUsersResponse{
		Data:       users,
		Pagination: common.NewPagination(page, limit, resp.TotalItems()),
	}, raws, nil
}

// UserByID resolves a single user's detail. With the listing strategy the id
// must be within the first page of top users.
func (s *Service) UserByID(ctx context.Context, id int) (common.UserDetail, error) {
	if s.opts.UserLookup == UserLookupDirect {
		return s.userByIDDirect(ctx, id)
	}

	resp, raws, err := s.topUsers(ctx, 1, userLookupWindow)
	if err != nil {
		return common.UserDetail{}, err
	}
	for i, user := range resp.Data {
		if user.ID == id {
			return buildUserDetail(user, raws[i], s.opts.Now()), nil
		}
	}
	return common.UserDetail{}, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
}

func (s *Service) userByIDDirect(ctx context.Context, id int) (common.UserDetail, error) {
	endpoint := s.endpoint("/users/"+strconv.Itoa(id), nil)

	var (
		resp       envelope
		totalBlobs int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp, err = s.get(gctx, endpoint)
		return err
	})
	g.Go(func() error {
		total, err := s.totalBlobs(gctx)
		totalBlobs = total
		return err
	})
	if err := g.Wait(); err != nil {
		if client.IsNotFound(err) {
			return common.UserDetail{}, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return common.UserDetail{}, err
	}

	raw := decodeData[common.RawUser](endpoint, resp.Data)
	if raw.Address == "" && raw.Name == nil {
		return common.UserDetail{}, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return buildUserDetail(mapUser(raw, id, totalBlobs), raw, s.opts.Now()), nil
}

// totalBlobs reads the global blob count, falling back when the stats omit it.
func (s *Service) totalBlobs(ctx context.Context) (int, error) {
	endpoint := s.endpoint("/stats", nil)
	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return 0, err
	}
	stats := decodeData[common.RawStats](endpoint, resp.Data)
	if stats.TotalBlobs <= 0 {
		return fallbackTotalBlobs, nil
	}
	return stats.TotalBlobs, nil
}

func mapUser(raw common.RawUser, id int, totalBlobs int) common.User {
	return common.User{
		ID:         id,
		Name:       displayName(raw),
		Address:    raw.Address,
		DataCount:  raw.BlobCount,
		Percentage: common.Percentage(raw.BlobCount, totalBlobs),
	}
}

func displayName(raw common.RawUser) string {
	if raw.Name != nil && *raw.Name != "" {
		return *raw.Name
	}
	if raw.Address != "" {
		return common.TruncateAddress(raw.Address)
	}
	return common.Unknown
}

func buildUserDetail(user common.User, raw common.RawUser, now time.Time) common.UserDetail {
	txs := make([]common.UserTransaction, 0, len(raw.Transactions))
	for _, tx := range raw.Transactions {
		status := common.TransactionStatusPending
		if tx.Confirmed {
			status = common.TransactionStatusConfirmed
		}
		txs = append(txs, common.UserTransaction{
			ID:          tx.TxHash,
			Status:      status,
			Cost:        formatEth(tx.TotalCostEth),
			BlockNumber: tx.BlockNumber,
			Timestamp:   common.FormatRelativeTime(tx.Timestamp, now),
		})
	}

	total := parseEth(raw.TotalCostEth)
	avg := decimal.Zero
	if raw.BlobCount > 0 {
		avg = total.Div(decimal.NewFromInt(int64(raw.BlobCount))).Round(8)
	}

	return common.UserDetail{
		User:           user,
		Transactions:   txs,
		TotalCost:      total.String() + " ETH",
		AvgCostPerBlob: avg.String() + " ETH",
		FirstSeen:      relativeOrUnknown(raw.FirstTimestamp, now),
		LatestActivity: relativeOrUnknown(raw.LastTimestamp, now),
	}
}

func parseEth(cost common.FlexString) decimal.Decimal {
	if cost == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cost.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func relativeOrUnknown(timestamp string, now time.Time) string {
	if timestamp == "" {
		return common.Unknown
	}
	return common.FormatRelativeTime(timestamp, now)
}
