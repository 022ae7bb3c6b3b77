package domain

import "github.com/shopspring/decimal"

type LineItem struct {
	ID        string
	Name      string
	Volume    string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal is the item's contribution to the cart subtotal.
func (it LineItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Ledger holds the items a user intends to purchase. Insertion order is
// preserved for display. A ledger is owned by a single session and is
// never persisted.
type Ledger struct {
	items       []LineItem
	deliveryFee decimal.Decimal
}

func NewLedger(deliveryFee decimal.Decimal, seed ...LineItem) *Ledger {
	l := &Ledger{deliveryFee: deliveryFee}
	for _, it := range seed {
		l.AddItem(it)
	}
	return l
}

// AddItem merges the quantity into the first existing row with the same
// id, otherwise appends. Quantities below 1 are lifted to 1.
func (l *Ledger) AddItem(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range l.items {
		if l.items[i].ID == item.ID {
			l.items[i].Quantity += item.Quantity
			return
		}
	}

	l.items = append(l.items, item)
}

// AdjustQuantity applies a signed delta to the first item matching id.
// Unknown ids are ignored. A delta that would drop the quantity below 1
// leaves it unchanged.
func (l *Ledger) AdjustQuantity(id string, delta int) {
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}

		if candidate := l.items[i].Quantity + delta; candidate >= 1 {
			l.items[i].Quantity = candidate
		}
		return
	}
}

// RemoveItem drops the first item matching id. Unknown ids are ignored.
func (l *Ledger) RemoveItem(id string) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *Ledger) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range l.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func (l *Ledger) Total() decimal.Decimal {
	return l.Subtotal().Add(l.deliveryFee)
}

func (l *Ledger) DeliveryFee() decimal.Decimal {
	return l.deliveryFee
}

// Items returns a copy so callers cannot bypass the quantity rules.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}
