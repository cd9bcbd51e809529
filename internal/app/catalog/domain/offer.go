package domain

import (
	"math/big"
	"strings"
	"time"
)

// DiscountType enumerates the supported discount shapes.
type DiscountType string

const (
	// DiscountPercent takes a percentage off the price, value in (0, 100].
	DiscountPercent DiscountType = "PERCENT"
	// DiscountAmount takes a fixed amount off the price, clamped at zero.
	DiscountAmount DiscountType = "AMOUNT"
)

var hundred = big.NewRat(100, 1)

// Offer is a scoped, time-windowed discount rule. At most one scope
// dimension (product, category, tag) is set; an offer with no scope never
// matches a product automatically and only exists for manual use.
type Offer struct {
	id         string
	title      string
	kind       DiscountType
	value      *big.Rat
	productID  *string
	categoryID *string
	tagID      *string
	startAt    *time.Time
	endAt      *time.Time
}

// OfferParams carries the raw admin input for constructing an Offer.
type OfferParams struct {
	ID         string
	Title      string
	Type       DiscountType
	Value      *big.Rat
	ProductID  *string
	CategoryID *string
	TagID      *string
	StartAt    *time.Time
	EndAt      *time.Time
}

// NewOffer validates params and constructs an Offer. Violations are
// reported per field through a ValidationError; the offer is never
// partially constructed.
func NewOffer(p OfferParams) (*Offer, error) {
	v := NewValidationError()

	if strings.TrimSpace(p.Title) == "" {
		v.Add("title", "title must not be empty")
	}

	switch p.Type {
	case DiscountPercent, DiscountAmount:
	default:
		v.Add("discountType", "discountType must be PERCENT or AMOUNT")
	}

	if p.Value == nil || p.Value.Sign() <= 0 {
		v.Add("discountVal", "discountVal must be positive")
	} else if p.Type == DiscountPercent && p.Value.Cmp(hundred) > 0 {
		v.Add("discountVal", "PERCENT discountVal must not exceed 100")
	}

	scopes := 0
	if p.ProductID != nil {
		scopes++
	}
	if p.CategoryID != nil {
		scopes++
	}
	if p.TagID != nil {
		scopes++
	}
	if scopes > 1 {
		v.Add("scope", "at most one of productId, categoryId, tagId may be set")
	}

	if p.StartAt != nil && p.EndAt != nil && p.EndAt.Before(*p.StartAt) {
		v.Add("endAt", "endAt must not be before startAt")
	}

	if v.HasErrors() {
		return nil, v
	}

	o := &Offer{
		id:         p.ID,
		title:      strings.TrimSpace(p.Title),
		kind:       p.Type,
		productID:  p.ProductID,
		categoryID: p.CategoryID,
		tagID:      p.TagID,
	}
	o.value = new(big.Rat).Set(p.Value)
	if p.StartAt != nil {
		t := p.StartAt.UTC()
		o.startAt = &t
	}
	if p.EndAt != nil {
		t := p.EndAt.UTC()
		o.endAt = &t
	}
	return o, nil
}

// ID returns the offer id.
func (o *Offer) ID() string { return o.id }

// Title returns the admin-facing title.
func (o *Offer) Title() string { return o.title }

// Type returns the discount shape.
func (o *Offer) Type() DiscountType { return o.kind }

// Value returns a copy of the discount value.
func (o *Offer) Value() *big.Rat { return new(big.Rat).Set(o.value) }

// ProductID returns the product scope, nil when unscoped by product.
func (o *Offer) ProductID() *string { return o.productID }

// CategoryID returns the category scope.
func (o *Offer) CategoryID() *string { return o.categoryID }

// TagID returns the tag scope.
func (o *Offer) TagID() *string { return o.tagID }

// StartAt returns the window start, nil meaning open-ended.
func (o *Offer) StartAt() *time.Time { return o.startAt }

// EndAt returns the window end, nil meaning open-ended.
func (o *Offer) EndAt() *time.Time { return o.endAt }

// ActiveAt reports whether t falls inside the offer window. Both bounds
// are inclusive; a nil bound is open-ended.
func (o *Offer) ActiveAt(t time.Time) bool {
	if o.startAt != nil && t.Before(*o.startAt) {
		return false
	}
	if o.endAt != nil && t.After(*o.endAt) {
		return false
	}
	return true
}

// Scoped reports whether the offer targets any dimension at all.
// Unscoped offers never participate in catalog price resolution.
func (o *Offer) Scoped() bool {
	return o.productID != nil || o.categoryID != nil || o.tagID != nil
}
