package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountPolicy параметры начисления скидки лояльности (в процентах)
type DiscountPolicy struct {
	Increment decimal.Decimal
	Cap       decimal.Decimal
}

// DefaultDiscountPolicy +0.50% за завершённую фотосессию, не больше 10%
func DefaultDiscountPolicy() DiscountPolicy {
	return DiscountPolicy{Increment: DefaultDiscountIncrement, Cap: DefaultDiscountCap}
}

// Accrue min(current + increment, cap)
func (p DiscountPolicy) Accrue(current decimal.Decimal) decimal.Decimal {
	return decimal.Min(current.Add(p.Increment), p.Cap)
}

// AccrueDiscount начисление с параметрами по умолчанию
func AccrueDiscount(current decimal.Decimal) decimal.Decimal {
	return DefaultDiscountPolicy().Accrue(current)
}

// ComputePrice (base + Σitems) * (1 - discount/100), округление до копеек половиной вверх.
// Скидка ограничивается диапазоном [0, 100].
func ComputePrice(base decimal.Decimal, items []decimal.Decimal, discountPercent decimal.Decimal) decimal.Decimal {
	total := base
	for _, item := range items {
		total = total.Add(item)
	}

	discount := decimal.Max(decimal.Zero, decimal.Min(discountPercent, hundred))
	price := total.Mul(hundred.Sub(discount)).Div(hundred).Round(2)

	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// PriceFor цена бронирования для владельца; гости платят без скидки
func PriceFor(service *Service, items []*AdditionalService, owner *User) decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		prices = append(prices, item.Price)
	}

	discount := decimal.Zero
	if owner != nil {
		discount = owner.Discount
	}
	return ComputePrice(service.Price, prices, discount)
}
