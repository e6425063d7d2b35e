package pantry

// lots is a bucket: every lot stored under one grocery name, in insertion order.
type lots []Grocery

// merge adds g to the bucket. If a lot with the same expiry exists, g is merged
// into it in place (quantities and totals summed) and merged is true.
func (l lots) merge(g Grocery) (_ lots, merged bool) {
	for i := range l {
		if l[i].sameLot(g) {
			l[i].quantity = l[i].quantity.Add(g.quantity)
			l[i].total = l[i].total.Add(g.total)
			return l, true
		}
	}
	return append(l, g), false
}

// available returns the summed quantity of all lots.
func (l lots) available() Quantity {
	var total Quantity
	for _, current := range l {
		total = total.Add(current.quantity)
	}
	return total
}

// consume removes q from the lots, in list order (not expiry order), and
// returns the remaining lots. The caller checks that q is available.
//
// A lot entirely consumed is dropped. A lot partially consumed keeps its unit
// price, rounded half-up to the currency precision, and its total is
// recomputed from it.
func (l lots) consume(q Quantity) lots {
	remaining := q
	kept := make(lots, 0, len(l))

	for _, current := range l {
		if !remaining.IsPositive() {
			kept = append(kept, current)
			continue
		}

		if current.quantity.LessThanOrEqual(remaining) {
			remaining = remaining.Sub(current.quantity)
			continue
		}

		unitPrice := current.total.unitPrice(current.quantity)
		current.quantity = current.quantity.Sub(remaining)
		current.total = unitPrice.Mul(current.quantity)
		remaining = Quantity{}
		kept = append(kept, current)
	}
	return kept
}
