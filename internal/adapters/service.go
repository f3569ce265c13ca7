package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blobflow/configs"
	"github.com/thirdweb-dev/blobflow/internal/client"
	"github.com/thirdweb-dev/blobflow/internal/common"
)

var (
	// ErrNotFound is returned when a requested entity is absent from the searched data.
	ErrNotFound = errors.New("not found")
)

type UserLookup string

const (
	// UserLookupListing searches the first page of top users.
	UserLookupListing UserLookup = "listing"
	// UserLookupDirect asks the upstream for /users/{id}.
	UserLookupDirect UserLookup = "direct"
)

const (
	DefaultBlocksLimit  = 10
	DefaultMempoolLimit = 5
	DefaultUsersLimit   = 5

	blockLookupWindow  = 100
	userLookupWindow   = 10
	fallbackTotalBlobs = 1000
)

type Options struct {
	Cursor               CursorEncoder
	UserLookup           UserLookup
	AggregateMempoolByTx bool
	// Network is the apiParam of the selected network, sent as network=
	Network string
	Now     func() time.Time
}

// Service adapts the upstream blob API into the page-based dashboard contract.
type Service struct {
	client client.IClient
	opts   Options
}

func NewService(c client.IClient, opts Options) *Service {
	if opts.Cursor == nil {
		opts.Cursor = DefaultCursorFormat
	}
	if opts.UserLookup == "" {
		opts.UserLookup = UserLookupListing
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{client: c, opts: opts}
}

// NewServiceFromConfig wires the service from the api section of the global config.
func NewServiceFromConfig(c client.IClient, network string) *Service {
	return NewService(c, Options{
		Cursor:               FormatCursor(config.Cfg.API.CursorFormat),
		UserLookup:           UserLookup(config.Cfg.API.UserLookup),
		AggregateMempoolByTx: config.Cfg.API.AggregateMempool,
		Network:              network,
	})
}

// WithNetwork returns a copy of the service bound to another network.
func (s *Service) WithNetwork(network string) *Service {
	opts := s.opts
	opts.Network = network
	return &Service{client: s.client, opts: opts}
}

func (s *Service) Network() string {
	return s.opts.Network
}

func (s *Service) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	if s.opts.Network != "" {
		params.Set("network", s.opts.Network)
	}
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func (s *Service) listEndpoint(path string, page, limit int) string {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if cursor := s.opts.Cursor.Cursor(page); cursor != "" {
		params.Set("cursor", cursor)
	}
	return s.endpoint(path, params)
}

// decodeData unmarshals the data field leniently: a missing or malformed
// payload yields the zero value instead of an error.
func decodeData[T any](endpoint string, raw json.RawMessage) T {
	var out T
	if len(raw) == 0 || string(raw) == "null" {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("Ignoring malformed API payload")
		var zero T
		return zero
	}
	return out
}

// envelope holds the data and pagination fields of an upstream response,
// each still undecoded so a bad field only blanks itself.
type envelope struct {
	endpoint   string
	Data       json.RawMessage
	Pagination json.RawMessage
}

// get fetches endpoint and splits the response envelope. An empty body or a
// body that is not a JSON object yields an empty envelope.
func (s *Service) get(ctx context.Context, endpoint string) (envelope, error) {
	var body json.RawMessage
	if err := s.client.Get(ctx, endpoint, &body); err != nil {
		return envelope{}, err
	}
	fields := decodeData[map[string]json.RawMessage](endpoint, body)
	return envelope{
		endpoint:   endpoint,
		Data:       fields["data"],
		Pagination: fields["pagination"],
	}, nil
}

// TotalItems returns 0 when the pagination field is missing or malformed.
func (e envelope) TotalItems() int {
	return decodeData[common.RawPagination](e.endpoint, e.Pagination).TotalItems
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}
