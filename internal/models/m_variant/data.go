package m_variant

import (
	"math/big"

	"cloud.google.com/go/spanner"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// Data mirrors a variants row. When selected as a correlated STRUCT inside
// the catalog listing the product_id and timestamps are omitted, so only
// the priced columns are populated.
type Data struct {
	VariantID                string            `spanner:"variant_id"`
	Label                    string            `spanner:"label"`
	PriceNumerator           spanner.NullInt64 `spanner:"price_numerator"`
	PriceDenominator         spanner.NullInt64 `spanner:"price_denominator"`
	PriceOriginalNumerator   spanner.NullInt64 `spanner:"price_original_numerator"`
	PriceOriginalDenominator spanner.NullInt64 `spanner:"price_original_denominator"`
	SortOrder                int64             `spanner:"sort_order"`
}

// Price returns the variant override price, or nil when the row carries none.
func (d *Data) Price() *domain.Money {
	return moneyFromColumns(d.PriceNumerator, d.PriceDenominator)
}

// PriceOriginal returns the variant's own list price, or nil when absent.
func (d *Data) PriceOriginal() *domain.Money {
	return moneyFromColumns(d.PriceOriginalNumerator, d.PriceOriginalDenominator)
}

func moneyFromColumns(num, den spanner.NullInt64) *domain.Money {
	if !num.Valid || !den.Valid || den.Int64 == 0 {
		return nil
	}
	return domain.MoneyFromRat(new(big.Rat).SetFrac64(num.Int64, den.Int64))
}
