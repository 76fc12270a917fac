package extract

import "github.com/shopspring/decimal"

// pairTolerance is the maximum difference between net+tax and gross for a
// pair of amounts to be accepted as the (net, tax) split of the receipt.
var pairTolerance = decimal.RequireFromString("0.05")

// Resolution is the outcome of resolving a set of candidate amounts into a
// (net, tax, gross) triple. Nil fields mean the value could not be determined;
// ambiguity never produces an error.
type Resolution struct {
	Net     *decimal.Decimal
	Tax     *decimal.Decimal
	Gross   *decimal.Decimal
	VATRate *int
}

// Resolve picks the most plausible (net, tax, gross) triple from the unique
// candidate amounts of a receipt. amounts must be unique and sorted ascending,
// as produced by ParseReceiptText.
//
// The gross amount is the maximum candidate. The (net, tax) pair is the first
// pair of distinct candidates, enumerated with ascending outer index i and
// inner index j > i over the sorted slice, whose sum is within pairTolerance
// of the gross amount. This first-match tie-break is deterministic but not
// globally optimal; keep the enumeration order stable.
func Resolve(amounts []decimal.Decimal) Resolution {
	var res Resolution

	if len(amounts) == 0 {
		return res
	}

	gross := amounts[len(amounts)-1]
	res.Gross = &gross

	for i := 0; i < len(amounts) && res.Net == nil; i++ {
		for j := i + 1; j < len(amounts); j++ {
			sum := amounts[i].Add(amounts[j])
			if sum.Sub(gross).Abs().LessThan(pairTolerance) {
				// Net revenue exceeds its VAT portion for any rate
				// below 100%, so the larger value is taken as net.
				net, tax := amounts[j], amounts[i]
				res.Net = &net
				res.Tax = &tax

				break
			}
		}
	}

	if rate, ok := classifyVATRate(res.Net, res.Tax); ok {
		res.VATRate = &rate
	}

	return res
}

// classifyVATRate derives the VAT rate in percent from a (net, tax) pair.
// The raw ratio is rounded to the nearest integer and snapped to the two
// statutory German rates when it falls near them; other values pass through
// unchanged. Returns false when net or tax is missing or net is zero.
func classifyVATRate(net, tax *decimal.Decimal) (int, bool) {
	if net == nil || tax == nil || net.IsZero() {
		return 0, false
	}

	rate := int(tax.Div(*net).Mul(decimal.NewFromInt(100)).Round(0).IntPart())

	switch {
	case rate >= 18 && rate <= 20:
		return 19, true
	case rate >= 6 && rate <= 8:
		return 7, true
	default:
		return rate, true
	}
}
