package pantry

import (
	"testing"

	"github.com/etnz/pantry/date"
)

func TestLots_Consume(t *testing.T) {
	jan := date.MustParse("2025-01-01")
	feb := date.MustParse("2025-02-01")
	lot := func(q, total float64, on date.Date) Grocery {
		return Grocery{name: "Cheese", quantity: Q(q), total: EUR(total), unit: Kilogram, expiry: on}
	}

	testCases := []struct {
		name      string
		lots      lots
		consume   float64
		wantQ     []float64
		wantTotal []float64
	}{
		{
			name:      "partial consumption keeps the unit price",
			lots:      lots{lot(2, 40, jan)},
			consume:   1,
			wantQ:     []float64{1},
			wantTotal: []float64{20},
		},
		{
			name:      "unit price is rounded half-up to cents",
			lots:      lots{lot(3, 10, jan)}, // 3.333.. -> 3.33
			consume:   1,
			wantQ:     []float64{2},
			wantTotal: []float64{6.66},
		},
		{
			name:      "half cent rounds up",
			lots:      lots{lot(8, 1, jan)}, // 0.125 -> 0.13
			consume:   4,
			wantQ:     []float64{4},
			wantTotal: []float64{0.52},
		},
		{
			name:      "exact consumption drops the lot",
			lots:      lots{lot(2, 40, jan), lot(1, 5, feb)},
			consume:   2,
			wantQ:     []float64{1},
			wantTotal: []float64{5},
		},
		{
			name:      "consumption spans lots in list order",
			lots:      lots{lot(1, 10, feb), lot(4, 8, jan)},
			consume:   2,
			wantQ:     []float64{3},
			wantTotal: []float64{6},
		},
		{
			name:      "fractional quantities",
			lots:      lots{lot(1.5, 3, jan)},
			consume:   0.5,
			wantQ:     []float64{1},
			wantTotal: []float64{2},
		},
		{
			name:      "everything",
			lots:      lots{lot(1, 10, feb), lot(4, 8, jan)},
			consume:   5,
			wantQ:     nil,
			wantTotal: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.lots.consume(Q(tc.consume))
			if len(got) != len(tc.wantQ) {
				t.Fatalf("consume(%v) left %d lots, want %d", tc.consume, len(got), len(tc.wantQ))
			}
			for i, g := range got {
				if !g.quantity.Equal(Q(tc.wantQ[i])) {
					t.Errorf("lot %d quantity = %v, want %v", i, g.quantity, tc.wantQ[i])
				}
				if !g.total.Equal(EUR(tc.wantTotal[i])) {
					t.Errorf("lot %d total = %v, want %v", i, g.total, tc.wantTotal[i])
				}
				if g.total.IsNegative() {
					t.Errorf("lot %d total is negative: %v", i, g.total)
				}
			}
		})
	}
}

func TestLots_Merge(t *testing.T) {
	jan := date.MustParse("2025-01-01")
	feb := date.MustParse("2025-02-01")
	a := Grocery{name: "Milk", quantity: Q(1), total: EUR(1), unit: Liter, expiry: jan}
	b := Grocery{name: "Milk", quantity: Q(2), total: EUR(3), unit: Liter, expiry: feb}

	var l lots
	l, merged := l.merge(a)
	if merged {
		t.Errorf("first lot cannot be merged")
	}
	l, _ = l.merge(b)
	l, merged = l.merge(a)
	if !merged {
		t.Errorf("same expiry must merge")
	}
	if len(l) != 2 {
		t.Fatalf("len = %d, want 2", len(l))
	}
	if !l[0].quantity.Equal(Q(2)) || !l[0].total.Equal(EUR(2)) {
		t.Errorf("merged lot = %v, want 2 for 2", l[0])
	}
	if !l.available().Equal(Q(4)) {
		t.Errorf("available() = %v, want 4", l.available())
	}
}
