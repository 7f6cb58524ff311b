package job

import (
	"strings"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Totals are the derived numbers of a draft. They are recomputed from the
// lines on every use and never persisted separately.
type Totals struct {
	InputTotal  decimal.Decimal
	Subtotals   map[string]decimal.Decimal // category key -> net sum
	OutputTotal decimal.Decimal
	Balance     decimal.Decimal // input - output
	LotNumbers  string          // combined across sources and inbound lines
	Products    string
}

// ComputeTotals derives the totals of a draft: input total over inbound nets,
// per-category output subtotals, output total, balance, and the combined
// lot-number and product strings.
func ComputeTotals(d *entity.JobDraft) Totals {
	t := Totals{
		InputTotal:  decimal.Zero,
		Subtotals:   map[string]decimal.Decimal{},
		OutputTotal: decimal.Zero,
	}
	for _, line := range d.InboundLines {
		t.InputTotal = t.InputTotal.Add(line.NetWeight)
	}
	for key, lines := range d.OutputLines {
		sub := decimal.Zero
		for _, line := range lines {
			sub = sub.Add(line.NetWeight)
		}
		t.Subtotals[key] = sub
		t.OutputTotal = t.OutputTotal.Add(sub)
	}
	t.Balance = t.InputTotal.Sub(t.OutputTotal)

	var lotGroups, productGroups [][]string
	for _, bin := range d.SourceBins {
		lotGroups = append(lotGroups, bin.LotNumbers)
		productGroups = append(productGroups, bin.Products)
	}
	for _, line := range d.InboundLines {
		if line.LotNumber != "" {
			lotGroups = append(lotGroups, []string{line.LotNumber})
		}
		if line.Product != "" {
			productGroups = append(productGroups, []string{line.Product})
		}
	}
	t.LotNumbers = CombineUnique(lotGroups...)
	t.Products = CombineUnique(productGroups...)
	return t
}

// CombineUnique joins string groups into one comma-separated list, dropping
// duplicates and empties while keeping first-appearance order.
func CombineUnique(groups ...[]string) string {
	seen := map[string]bool{}
	var out []string
	for _, group := range groups {
		for _, s := range group {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return strings.Join(out, ", ")
}
