package job

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TareLookup resolves a physical-box identifier to its tare weight. The
// second return reports whether the box is known.
type TareLookup func(physicalBoxID string) (decimal.Decimal, bool)

// NetWeight applies the tare rule shared by every inbound and output line:
//
//	usePhysicalBox && physicalBoxID != "" -> max(gross - tare, 0)
//	otherwise                             -> gross
//
// An unknown physicalBoxID counts as tare 0, so net == gross. The result is
// clamped and never negative.
func NetWeight(gross decimal.Decimal, usePhysicalBox bool, physicalBoxID string, tares TareLookup) decimal.Decimal {
	net := gross
	if usePhysicalBox && physicalBoxID != "" && tares != nil {
		if tare, ok := tares(physicalBoxID); ok {
			net = gross.Sub(tare)
		}
	}
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// ParseWeight parses a raw scale/form input into a decimal weight.
// Non-numeric input yields zero; thousands separators are tolerated.
func ParseWeight(raw string) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
