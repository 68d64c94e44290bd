package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccrueDiscount(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{current: "0", want: "0.5"},
		{current: "4.5", want: "5"},
		{current: "9.80", want: "10"},
		{current: "10.00", want: "10"},
	}
	for _, tt := range tests {
		got := AccrueDiscount(dec(tt.current))
		assert.True(t, dec(tt.want).Equal(got), "accrue(%s) = %s", tt.current, got)
	}
}

func TestAccrueDiscount_NeverExceedsCap(t *testing.T) {
	d := dec("9.80")
	d = AccrueDiscount(d)
	d = AccrueDiscount(d)
	assert.True(t, dec("10.00").Equal(d))

	d = decimal.Zero
	for i := 0; i < 100; i++ {
		d = AccrueDiscount(d)
		assert.True(t, d.LessThanOrEqual(DefaultDiscountCap))
	}
	assert.True(t, DefaultDiscountCap.Equal(d))
}

func TestAccrueDiscount_NoDrift(t *testing.T) {
	d := decimal.Zero
	for i := 0; i < 19; i++ {
		d = AccrueDiscount(d)
	}
	assert.Equal(t, "9.5", d.String())
}

func TestDiscountPolicy_Custom(t *testing.T) {
	p := DiscountPolicy{Increment: dec("1.25"), Cap: dec("5")}
	assert.Equal(t, "5", p.Accrue(dec("4")).String())
	assert.Equal(t, "2.5", p.Accrue(dec("1.25")).String())
}

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		items    []string
		discount string
		want     string
	}{
		{name: "discount applies to total", base: "1000.00", items: []string{"500.00"}, discount: "5", want: "1425.00"},
		{name: "no items no discount", base: "750", discount: "0", want: "750.00"},
		{name: "half up rounding", base: "10.01", discount: "0.5", want: "9.96"},
		{name: "several items", base: "100", items: []string{"0.10", "0.20"}, discount: "10", want: "90.27"},
		{name: "discount clamped", base: "100", discount: "150", want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]decimal.Decimal, 0, len(tt.items))
			for _, it := range tt.items {
				items = append(items, dec(it))
			}
			got := ComputePrice(dec(tt.base), items, dec(tt.discount))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestPriceFor_GuestPaysFullPrice(t *testing.T) {
	service := &Service{Price: dec("1000")}
	items := []*AdditionalService{{Price: dec("500")}}

	assert.Equal(t, "1500.00", PriceFor(service, items, nil).StringFixed(2))
	assert.Equal(t, "1425.00", PriceFor(service, items, &User{Discount: dec("5")}).StringFixed(2))
}
