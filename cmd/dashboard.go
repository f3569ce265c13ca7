package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/blobflow/internal/adapters"
	"github.com/thirdweb-dev/blobflow/internal/common"
	"github.com/thirdweb-dev/blobflow/internal/network"
	"github.com/thirdweb-dev/blobflow/internal/pager"
)

var (
	dashboardCmd = &cobra.Command{
		Use:       "dashboard [blocks|mempool|users]",
		Short:     "Browse blob activity page by page",
		Long:      "Prints a page and reads commands: n (next), p (previous), g N (go to page), l N (page size), r (refetch), net NAME (switch network), q (quit)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"blocks", "mempool", "users"},
		Run: func(cmd *cobra.Command, args []string) {
			RunDashboard(cmd, args)
		},
	}
)

func RunDashboard(cmd *cobra.Command, args []string) {
	view := "blocks"
	if len(args) > 0 {
		view = args[0]
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start dashboard")
	}
	defer a.Close()

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	switch view {
	case "blocks":
		err = runView(cmd.Context(), a, in, out, adapters.DefaultBlocksLimit,
			func(s *adapters.Service) pager.FetchFunc[common.Block] { return s.LatestBlocks }, renderBlocks)
	case "mempool":
		err = runView(cmd.Context(), a, in, out, adapters.DefaultMempoolLimit,
			func(s *adapters.Service) pager.FetchFunc[common.MempoolTransaction] { return s.Mempool }, renderMempool)
	case "users":
		err = runView(cmd.Context(), a, in, out, adapters.DefaultUsersLimit,
			func(s *adapters.Service) pager.FetchFunc[common.User] { return s.TopUsers }, renderUsers)
	default:
		err = fmt.Errorf("unknown view %q", view)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Dashboard failed")
	}
}

// runView drives one pager from line commands until q or EOF. A network
// switch resets the pager against a service bound to the new network.
func runView[T any](
	ctx context.Context,
	a *app,
	in io.Reader,
	out io.Writer,
	limit int,
	bind func(*adapters.Service) pager.FetchFunc[T],
	render func(io.Writer, []T),
) error {
	p := pager.New("dashboard", bind(a.service), pager.WithLimit[T](limit))
	a.selector.OnChange(func(ctx context.Context, selected network.Config) error {
		return p.Reset(ctx, bind(a.service.WithNetwork(selected.APIParam)))
	})

	show := func(err error) {
		state := p.State()
		fmt.Fprintf(out, "\n[%s] page %d/%d, %d items, %d per page\n",
			a.selector.Current().Name, state.Page, state.Pagination.TotalPages, state.Pagination.TotalItems, state.Limit)
		render(out, state.Data)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	show(p.Refetch(ctx))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "q", "quit":
			return nil
		case "n":
			err = p.NextPage(ctx)
		case "p":
			err = p.PrevPage(ctx)
		case "r":
			err = p.Refetch(ctx)
		case "g", "l":
			if len(fields) < 2 {
				fmt.Fprintf(out, "usage: %s N\n", fields[0])
				continue
			}
			n, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				fmt.Fprintf(out, "not a number: %s\n", fields[1])
				continue
			}
			if fields[0] == "g" {
				err = p.GoToPage(ctx, n)
			} else {
				err = p.ChangeLimit(ctx, n)
			}
		case "net":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: net NAME")
				continue
			}
			_, err = a.selector.Select(ctx, fields[1])
		default:
			fmt.Fprintln(out, "commands: n, p, g N, l N, r, net NAME, q")
			continue
		}
		show(err)
	}
}

func renderBlocks(out io.Writer, blocks []common.Block) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tBLOCK\tBLOBS\tAGE\tATTRIBUTION")
	for _, b := range blocks {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", b.ID, b.Number, b.BlobCount, b.Timestamp, strings.Join(b.Attribution, ", "))
	}
	w.Flush()
}

func renderMempool(out io.Writer, txs []common.MempoolTransaction) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTX\tFROM\tUSER\tBLOBS\tCOST\tWAITING")
	for _, tx := range txs {
		user := "-"
		if tx.User != nil {
			user = *tx.User
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n", tx.ID, tx.TxHash, tx.FromAddress, user, tx.BlobCount, tx.EstimatedCost, tx.TimeInMempool)
	}
	w.Flush()
}

func renderUsers(out io.Writer, users []common.User) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tBLOBS\tSHARE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.1f%%\n", u.ID, u.Name, u.DataCount, u.Percentage)
	}
	w.Flush()
}
