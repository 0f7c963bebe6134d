package booking

// CalculateTotal sums price x nights over every line item. A sum that does
// not fit in int64 minor units is ErrInvalidAmount.
func CalculateTotal(items []LineItem) (Money, error) {
	total := NewMoney(0)
	for _, item := range items {
		var err error
		total, err = total.Add(item.Subtotal())
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
