package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/blobflow/configs"
	"github.com/thirdweb-dev/blobflow/internal/adapters"
	"github.com/thirdweb-dev/blobflow/internal/client"
	"github.com/thirdweb-dev/blobflow/internal/common"
	"github.com/thirdweb-dev/blobflow/internal/network"
	"github.com/thirdweb-dev/blobflow/internal/pager"
	"github.com/thirdweb-dev/blobflow/internal/storage"
)

func newTestApp(t *testing.T, handler http.Handler) *app {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	selector := network.NewSelector(context.Background(), store, "Mainnet")
	c := client.New(client.Config{BaseURL: srv.URL, Timeout: time.Second})

	return &app{
		store:    store,
		selector: selector,
		service:  adapters.NewService(c, adapters.Options{Network: selector.Current().APIParam}),
	}
}

func TestRunView_Blocks(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []string
	)
	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.URL.RawQuery)
		mu.Unlock()
		fmt.Fprint(w, `{"data":[{"tx_hash":"0xa","block_number":19000000,"user_attribution":"Base"}],"pagination":{"total_items":40},"success":true}`)
	}))

	input := strings.NewReader("n\np\np\nl 20\ng x\nnet sepolia\nq\n")
	var out bytes.Buffer
	err := runView(context.Background(), a, input, &out, adapters.DefaultBlocksLimit,
		func(s *adapters.Service) pager.FetchFunc[common.Block] { return s.LatestBlocks }, renderBlocks)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "[Mainnet] page 1/4, 40 items, 10 per page")
	assert.Contains(t, output, "[Mainnet] page 2/4")
	assert.Contains(t, output, "[Mainnet] page 1/2, 40 items, 20 per page")
	assert.Contains(t, output, "not a number: x")
	assert.Contains(t, output, "[Sepolia] page 1/2")
	assert.Contains(t, output, "19000000")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "limit=10&network=mainnet", requests[0])
	assert.Equal(t, "cursor=page_2&limit=10&network=mainnet", requests[1])
	assert.Equal(t, "limit=20&network=sepolia", requests[len(requests)-1])
}

func TestRunView_ShowsErrorsAndKeepsData(t *testing.T) {
	var calls int
	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `{"data":[{"tx_hash":"0xc","from_address":"0x1234567890abcdef"}],"pagination":{"total_items":1},"success":true}`)
	}))

	input := strings.NewReader("r\nq\n")
	var out bytes.Buffer
	err := runView(context.Background(), a, input, &out, adapters.DefaultMempoolLimit,
		func(s *adapters.Service) pager.FetchFunc[common.MempoolTransaction] { return s.Mempool }, renderMempool)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "error: API error: 400 Bad Request")
	assert.Equal(t, 2, strings.Count(output, "0x1234..."))
}
