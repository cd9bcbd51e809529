// Package list_catalog implements the public catalog listing: database
// filtering and pagination, batched offer resolution for the fetched
// page, and the price-dependent post-filters that can only run after
// resolution.
package list_catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/pricing"
)

const (
	defaultPerPage = 24
	maxPerPage     = 60
)

// Request is a parsed catalog query.
type Request struct {
	Search        string
	CategoryID    *string
	SubcategoryID *string
	TagIDs        []string
	MatchAll      bool
	// MinPrice/MaxPrice bound the stored base price, pre-discount.
	MinPrice *domain.Money
	MaxPrice *domain.Money
	// MinFinal/MaxFinal and OnSale depend on resolved prices and are
	// applied to the fetched page only.
	MinFinal *domain.Money
	MaxFinal *domain.Money
	OnSale   bool
	Sort     contracts.CatalogSort
	Page     int64
	PerPage  int64
}

// Item is one priced catalog entry.
type Item struct {
	ID              string
	Name            string
	Slug            string
	Cover           string
	PriceOriginal   *domain.Money
	PriceFinal      *domain.Money
	Offer           *domain.Offer
	HasDiscount     bool
	DiscountPercent int64
}

// Result carries two deliberately separate totals. Total/PageCount come
// from the database count and ignore price-dependent filters;
// FilteredTotal/FilteredPageCount reflect the current page after those
// filters. Callers must not conflate them.
type Result struct {
	Page              int64
	PerPage           int64
	Total             int64
	PageCount         int64
	FilteredTotal     int64
	FilteredPageCount int64
	Items             []Item
}

// Query executes catalog listings.
type Query struct {
	reader   contracts.CatalogReader
	resolver *pricing.Resolver
}

// NewQuery creates a catalog listing query.
func NewQuery(reader contracts.CatalogReader, resolver *pricing.Resolver) *Query {
	return &Query{reader: reader, resolver: resolver}
}

// Execute runs one catalog request: count, paged select, batch pricing,
// post-filter, assemble. Any storage error aborts the request; only
// per-product pricing failures are downgraded (inside the resolver).
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	req = clamp(req)

	filter := &contracts.CatalogFilter{
		Search:        strings.TrimSpace(req.Search),
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		TagIDs:        req.TagIDs,
		MatchAll:      req.MatchAll,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
	}

	total, err := q.reader.CountProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	offset := (req.Page - 1) * req.PerPage
	rows, err := q.reader.ListProducts(ctx, filter, req.Sort, req.PerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	priced, err := q.resolver.ResolvePage(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("resolve prices: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		pp := priced[row.ID]
		item := Item{
			ID:              row.ID,
			Name:            row.Name,
			Slug:            row.Slug,
			Cover:           row.Cover,
			PriceOriginal:   pp.PriceOriginal,
			PriceFinal:      pp.PriceFinal,
			Offer:           pp.Offer,
			HasDiscount:     pp.HasDiscount(),
			DiscountPercent: pp.DiscountPercent(),
		}
		if keep(req, item) {
			items = append(items, item)
		}
	}

	// Final-price sorts run after resolution, within the fetched page
	// only. Ordering across page boundaries is not globally monotonic;
	// the database fallback order decides which rows land on the page.
	if req.Sort.ByFinalPrice() {
		sortByFinal(items, req.Sort == contracts.SortFinalDesc)
	}

	filteredTotal := int64(len(items))
	return &Result{
		Page:              req.Page,
		PerPage:           req.PerPage,
		Total:             total,
		PageCount:         pageCount(total, req.PerPage),
		FilteredTotal:     filteredTotal,
		FilteredPageCount: pageCount(filteredTotal, req.PerPage),
		Items:             items,
	}, nil
}

func clamp(req *Request) *Request {
	out := *req
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PerPage <= 0 {
		out.PerPage = defaultPerPage
	}
	if out.PerPage > maxPerPage {
		out.PerPage = maxPerPage
	}
	switch out.Sort {
	case contracts.SortIDAsc, contracts.SortIDDesc,
		contracts.SortNameAsc, contracts.SortNameDesc,
		contracts.SortPriceAsc, contracts.SortPriceDesc,
		contracts.SortFinalAsc, contracts.SortFinalDesc:
	default:
		out.Sort = contracts.SortIDAsc
	}
	return &out
}

// keep applies the price-dependent post-filters. These only shrink the
// current page and are never pushed into the count query.
func keep(req *Request, item Item) bool {
	if req.OnSale && !item.HasDiscount {
		return false
	}
	if req.MinFinal != nil {
		if item.PriceFinal == nil || item.PriceFinal.LessThan(req.MinFinal) {
			return false
		}
	}
	if req.MaxFinal != nil {
		if item.PriceFinal == nil || req.MaxFinal.LessThan(item.PriceFinal) {
			return false
		}
	}
	return true
}

func sortByFinal(items []Item, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].PriceFinal, items[j].PriceFinal
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if desc {
			return b.LessThan(a)
		}
		return a.LessThan(b)
	})
}

func pageCount(total, perPage int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
