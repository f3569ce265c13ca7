package common

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var relTimeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "%d sec %s", DivBy: time.Second},
	{D: time.Hour, Format: "%d min %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d days %s", DivBy: humanize.Day},
}

// FormatRelativeTime renders an RFC3339 timestamp relative to now, e.g. "30 sec ago".
// Unparseable timestamps render as "Unknown".
func FormatRelativeTime(timestamp string, now time.Time) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return Unknown
	}
	return humanize.CustomRelTime(t, now, "ago", "from now", relTimeMagnitudes)
}

// TruncateAddress shortens an address to its first six characters.
func TruncateAddress(address string) string {
	runes := []rune(address)
	if len(runes) < 10 {
		return address
	}
	return string(runes[:6]) + "..."
}

var (
	etherThreshold = uint256.NewInt(params.Ether)
	gweiThreshold  = uint256.NewInt(params.GWei)
)

// FormatWeiToReadable picks the largest unit whose threshold the value meets
// (ETH, Gwei, Wei) and prints the value with full precision in that unit.
func FormatWeiToReadable(wei *uint256.Int) string {
	if wei == nil {
		return "0 Wei"
	}
	switch {
	case !wei.Lt(etherThreshold):
		return decimal.NewFromBigInt(wei.ToBig(), -18).String() + " ETH"
	case !wei.Lt(gweiThreshold):
		return decimal.NewFromBigInt(wei.ToBig(), -9).String() + " Gwei"
	default:
		return wei.Dec() + " Wei"
	}
}

// FormatFee formats a raw fee field. Integer wei values, including float
// literals such as 1.5e+18, are unit-converted. Anything else (e.g.
// "12.45 gwei") is passed through, empty yields fallback.
func FormatFee(raw FlexString, fallback string) string {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return fallback
	}
	if wei, err := uint256.FromDecimal(s); err == nil {
		return FormatWeiToReadable(wei)
	}
	if wei, ok := parseIntegralWei(s); ok {
		return FormatWeiToReadable(wei)
	}
	return s
}

func parseIntegralWei(s string) (*uint256.Int, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || !d.IsInteger() {
		return nil, false
	}
	wei, overflow := uint256.FromBig(d.BigInt())
	if overflow {
		return nil, false
	}
	return wei, true
}

// Percentage is count/total rounded to one decimal place.
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

// FormatSavings renders the blob vs calldata cost ratio as "72% cheaper".
func FormatSavings(ratio float64) string {
	return fmt.Sprintf("%d%% cheaper", int64(math.Round((1-ratio)*100)))
}
