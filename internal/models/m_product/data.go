package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/models/m_variant"
)

// Data is one catalog row as selected by the read side. Tag ids and
// active variants come back from correlated ARRAY subqueries in the
// same select, so a catalog page costs a single query.
type Data struct {
	ProductID            string             `spanner:"product_id"`
	Name                 string             `spanner:"name"`
	Slug                 string             `spanner:"slug"`
	Description          spanner.NullString `spanner:"description"`
	SKU                  spanner.NullString `spanner:"sku"`
	CoverURL             spanner.NullString `spanner:"cover_url"`
	CategoryID           spanner.NullString `spanner:"category_id"`
	SubcategoryID        spanner.NullString `spanner:"subcategory_id"`
	BasePriceNumerator   spanner.NullInt64  `spanner:"base_price_numerator"`
	BasePriceDenominator spanner.NullInt64  `spanner:"base_price_denominator"`
	Status               string             `spanner:"status"`
	CreatedAt            time.Time          `spanner:"created_at"`
	UpdatedAt            time.Time          `spanner:"updated_at"`
	TagIDs               []string           `spanner:"tag_ids"`
	Variants             []*m_variant.Data  `spanner:"variants"`
}

// BasePrice returns the stored list price, or nil when the product has none.
func (d *Data) BasePrice() *domain.Money {
	if !d.BasePriceNumerator.Valid || !d.BasePriceDenominator.Valid || d.BasePriceDenominator.Int64 == 0 {
		return nil
	}
	return domain.MoneyFromRat(new(big.Rat).SetFrac64(d.BasePriceNumerator.Int64, d.BasePriceDenominator.Int64))
}
