package m_offer

import (
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// Data mirrors an offers row. The discount value is stored as a decimal
// string so no precision is lost between the admin API and pricing.
type Data struct {
	OfferID       string             `spanner:"offer_id"`
	Title         string             `spanner:"title"`
	DiscountType  string             `spanner:"discount_type"`
	DiscountValue string             `spanner:"discount_value"`
	ProductID     spanner.NullString `spanner:"product_id"`
	CategoryID    spanner.NullString `spanner:"category_id"`
	TagID         spanner.NullString `spanner:"tag_id"`
	StartAt       spanner.NullTime   `spanner:"start_at"`
	EndAt         spanner.NullTime   `spanner:"end_at"`
	CreatedAt     time.Time          `spanner:"created_at"`
	UpdatedAt     time.Time          `spanner:"updated_at"`
}

// FromOffer flattens a domain offer into a row. Timestamps are left to the
// mutation facade, which writes commit timestamps.
func FromOffer(o *domain.Offer) *Data {
	return &Data{
		OfferID:       o.ID(),
		Title:         o.Title(),
		DiscountType:  string(o.Type()),
		DiscountValue: o.Value().FloatString(4),
		ProductID:     nullString(o.ProductID()),
		CategoryID:    nullString(o.CategoryID()),
		TagID:         nullString(o.TagID()),
		StartAt:       nullTime(o.StartAt()),
		EndAt:         nullTime(o.EndAt()),
	}
}

// ToOffer rebuilds the domain offer from a stored row. A row that no
// longer passes domain validation is reported as corrupt rather than
// silently skipped.
func (d *Data) ToOffer() (*domain.Offer, error) {
	val, ok := new(big.Rat).SetString(d.DiscountValue)
	if !ok {
		return nil, fmt.Errorf("offer %s: malformed discount value %q", d.OfferID, d.DiscountValue)
	}
	o, err := domain.NewOffer(domain.OfferParams{
		ID:         d.OfferID,
		Title:      d.Title,
		Type:       domain.DiscountType(d.DiscountType),
		Value:      val,
		ProductID:  strPtr(d.ProductID),
		CategoryID: strPtr(d.CategoryID),
		TagID:      strPtr(d.TagID),
		StartAt:    timePtr(d.StartAt),
		EndAt:      timePtr(d.EndAt),
	})
	if err != nil {
		return nil, fmt.Errorf("offer %s: %w", d.OfferID, err)
	}
	return o, nil
}

func nullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

func nullTime(t *time.Time) spanner.NullTime {
	if t == nil {
		return spanner.NullTime{}
	}
	return spanner.NullTime{Time: *t, Valid: true}
}

func strPtr(s spanner.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.StringVal
	return &v
}

func timePtr(t spanner.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
