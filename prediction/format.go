package prediction

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatPrice formats a price with thousands separators and two decimals,
// e.g. 245000 -> "245,000.00". Values beyond the int64 range keep every digit.
func FormatPrice(price float64) string {
	fixed := strconv.FormatFloat(price, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(fixed, ".")

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return fixed
	}
	grouped := humanize.BigComma(whole)
	if whole.Sign() == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	return grouped + "." + frac
}
