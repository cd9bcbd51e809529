package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() OfferParams {
	return OfferParams{
		ID:    "offer-1",
		Title: "Spring sale",
		Type:  DiscountPercent,
		Value: big.NewRat(20, 1),
	}
}

func TestNewOffer(t *testing.T) {
	t.Run("valid offer", func(t *testing.T) {
		o, err := NewOffer(validParams())
		require.NoError(t, err)
		assert.Equal(t, "offer-1", o.ID())
		assert.Equal(t, DiscountPercent, o.Type())
		assert.False(t, o.Scoped())
	})

	t.Run("empty title", func(t *testing.T) {
		p := validParams()
		p.Title = "   "
		_, err := NewOffer(p)
		v, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields(), "title")
	})

	t.Run("unknown discount type", func(t *testing.T) {
		p := validParams()
		p.Type = "BOGOF"
		_, err := NewOffer(p)
		v, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields(), "discountType")
	})

	t.Run("non-positive value", func(t *testing.T) {
		p := validParams()
		p.Value = big.NewRat(0, 1)
		_, err := NewOffer(p)
		v, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields(), "discountVal")
	})

	t.Run("percent above 100", func(t *testing.T) {
		p := validParams()
		p.Value = big.NewRat(101, 1)
		_, err := NewOffer(p)
		v, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields(), "discountVal")
	})

	t.Run("amount above 100 is fine", func(t *testing.T) {
		p := validParams()
		p.Type = DiscountAmount
		p.Value = big.NewRat(500, 1)
		_, err := NewOffer(p)
		assert.NoError(t, err)
	})

	t.Run("two scopes rejected", func(t *testing.T) {
		p := validParams()
		pid, cid := "p1", "c1"
		p.ProductID = &pid
		p.CategoryID = &cid
		_, err := NewOffer(p)
		v, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields(), "scope")
	})

	t.Run("end before start rejected", func(t *testing.T) {
		p := validParams()
		start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		p.StartAt = &start
		p.EndAt = &end
		_, err := NewOffer(p)
		v, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields(), "endAt")
	})

	t.Run("multiple violations reported together", func(t *testing.T) {
		p := validParams()
		p.Title = ""
		p.Value = nil
		_, err := NewOffer(p)
		v, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, v.Fields(), 2)
	})
}

func TestOffer_ActiveAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

	t.Run("bounded window, inclusive ends", func(t *testing.T) {
		p := validParams()
		p.StartAt = &start
		p.EndAt = &end
		o, err := NewOffer(p)
		require.NoError(t, err)

		assert.True(t, o.ActiveAt(start))
		assert.True(t, o.ActiveAt(end))
		assert.True(t, o.ActiveAt(start.AddDate(0, 6, 0)))
		assert.False(t, o.ActiveAt(start.Add(-time.Second)))
		assert.False(t, o.ActiveAt(end.Add(time.Second)))
	})

	t.Run("open start", func(t *testing.T) {
		p := validParams()
		p.EndAt = &end
		o, err := NewOffer(p)
		require.NoError(t, err)

		assert.True(t, o.ActiveAt(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, o.ActiveAt(end.Add(time.Second)))
	})

	t.Run("open end", func(t *testing.T) {
		p := validParams()
		p.StartAt = &start
		o, err := NewOffer(p)
		require.NoError(t, err)

		assert.True(t, o.ActiveAt(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, o.ActiveAt(start.Add(-time.Second)))
	})

	t.Run("no window is always active", func(t *testing.T) {
		o, err := NewOffer(validParams())
		require.NoError(t, err)
		assert.True(t, o.ActiveAt(time.Now().UTC()))
	})
}

func TestOffer_Scoped(t *testing.T) {
	tag := "tag-1"
	p := validParams()
	p.TagID = &tag

	o, err := NewOffer(p)
	require.NoError(t, err)
	assert.True(t, o.Scoped())
}
