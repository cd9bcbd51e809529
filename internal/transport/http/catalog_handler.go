package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/pricing"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/list_catalog"
)

// CatalogHandler serves the public catalog endpoints.
type CatalogHandler struct {
	list   *list_catalog.Query
	detail *get_product.Query
}

// NewCatalogHandler creates the public catalog handler.
func NewCatalogHandler(list *list_catalog.Query, detail *get_product.Query) *CatalogHandler {
	return &CatalogHandler{list: list, detail: detail}
}

// offerJSON is the offer attribution rendered on priced entries.
type offerJSON struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	DiscountType  string `json:"discountType"`
	DiscountValue string `json:"discountValue"`
}

type catalogItemJSON struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Cover           string     `json:"cover"`
	PriceOriginal   *string    `json:"priceOriginal"`
	PriceFinal      *string    `json:"priceFinal"`
	Offer           *offerJSON `json:"offer"`
	HasDiscount     bool       `json:"hasDiscount"`
	DiscountPercent int64      `json:"discountPercent"`
}

type catalogListJSON struct {
	OK                bool              `json:"ok"`
	Page              int64             `json:"page"`
	PerPage           int64             `json:"perPage"`
	Total             int64             `json:"total"`
	PageCount         int64             `json:"pageCount"`
	FilteredTotal     int64             `json:"filteredTotal"`
	FilteredPageCount int64             `json:"filteredPageCount"`
	Items             []catalogItemJSON `json:"items"`
}

type variantJSON struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	SortOrder     int64   `json:"sortOrder"`
	PriceOriginal *string `json:"priceOriginal"`
	PriceFinal    *string `json:"priceFinal"`
}

type productDetailJSON struct {
	OK              bool          `json:"ok"`
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Slug            string        `json:"slug"`
	Description     string        `json:"description"`
	SKU             string        `json:"sku"`
	Cover           string        `json:"cover"`
	CategoryID      *string       `json:"categoryId"`
	SubcategoryID   *string       `json:"subcategoryId"`
	TagIDs          []string      `json:"tagIds"`
	PriceOriginal   *string       `json:"priceOriginal"`
	PriceFinal      *string       `json:"priceFinal"`
	Offer           *offerJSON    `json:"offer"`
	HasDiscount     bool          `json:"hasDiscount"`
	DiscountPercent int64         `json:"discountPercent"`
	Variants        []variantJSON `json:"variants"`
}

// ListProducts handles GET /api/v1/catalog/products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	req, ok := parseListRequest(w, r)
	if !ok {
		return
	}

	result, err := h.list.Execute(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := catalogListJSON{
		OK:                true,
		Page:              result.Page,
		PerPage:           result.PerPage,
		Total:             result.Total,
		PageCount:         result.PageCount,
		FilteredTotal:     result.FilteredTotal,
		FilteredPageCount: result.FilteredPageCount,
		Items:             make([]catalogItemJSON, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, catalogItemJSON{
			ID:              item.ID,
			Name:            item.Name,
			Slug:            item.Slug,
			Cover:           item.Cover,
			PriceOriginal:   moneyString(item.PriceOriginal),
			PriceFinal:      moneyString(item.PriceFinal),
			Offer:           offerToJSON(item.Offer),
			HasDiscount:     item.HasDiscount,
			DiscountPercent: item.DiscountPercent,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProduct handles GET /api/v1/catalog/products/{slug}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := h.detail.Execute(r.Context(), slug)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := productDetailJSON{
		OK:              true,
		ID:              detail.ID,
		Name:            detail.Name,
		Slug:            detail.Slug,
		Description:     detail.Description,
		SKU:             detail.SKU,
		Cover:           detail.Cover,
		CategoryID:      detail.CategoryID,
		SubcategoryID:   detail.SubcategoryID,
		TagIDs:          detail.TagIDs,
		PriceOriginal:   moneyString(detail.PriceOriginal),
		PriceFinal:      moneyString(detail.PriceFinal),
		Offer:           offerToJSON(detail.Offer),
		HasDiscount:     detail.HasDiscount,
		DiscountPercent: detail.DiscountPercent,
		Variants:        variantsToJSON(detail.Variants),
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseListRequest turns query parameters into a catalog request.
// Malformed numeric parameters are rejected; unknown sorts and
// out-of-range paging are clamped downstream instead.
func parseListRequest(w http.ResponseWriter, r *http.Request) (*list_catalog.Request, bool) {
	q := r.URL.Query()

	req := &list_catalog.Request{
		Search:   q.Get("q"),
		MatchAll: q.Get("match") == "all",
		OnSale:   q.Get("onSale") == "1" || q.Get("onSale") == "true",
		Sort:     contracts.CatalogSort(q.Get("sort")),
	}

	req.CategoryID = optionalString(q.Get("categoryId"))
	req.SubcategoryID = optionalString(q.Get("subcategoryId"))
	req.TagIDs = parseTagIDs(q.Get("tagId"), q.Get("tagIds"))

	var ok bool
	if req.Page, ok = parseIntParam(w, q.Get("page"), "page"); !ok {
		return nil, false
	}
	if req.PerPage, ok = parseIntParam(w, q.Get("perPage"), "perPage"); !ok {
		return nil, false
	}
	if req.MinPrice, ok = parseMoneyParam(w, q.Get("minPrice"), "minPrice"); !ok {
		return nil, false
	}
	if req.MaxPrice, ok = parseMoneyParam(w, q.Get("maxPrice"), "maxPrice"); !ok {
		return nil, false
	}
	if req.MinFinal, ok = parseMoneyParam(w, q.Get("minFinal"), "minFinal"); !ok {
		return nil, false
	}
	if req.MaxFinal, ok = parseMoneyParam(w, q.Get("maxFinal"), "maxFinal"); !ok {
		return nil, false
	}
	return req, true
}

// parseTagIDs merges the single and csv forms, dropping duplicates so
// match=all never runs the same membership check twice.
func parseTagIDs(single, csv string) []string {
	var tags []string
	seen := make(map[string]bool)
	add := func(t string) {
		if t = strings.TrimSpace(t); t != "" && !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	add(single)
	for _, t := range strings.Split(csv, ",") {
		add(t)
	}
	return tags
}

func parseIntParam(w http.ResponseWriter, raw, field string) (int64, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(w, field, field+" must be an integer")
		return 0, false
	}
	return v, true
}

func parseMoneyParam(w http.ResponseWriter, raw, field string) (*domain.Money, bool) {
	if raw == "" {
		return nil, true
	}
	m, err := domain.MoneyFromString(raw)
	if err != nil {
		badRequest(w, field, field+" must be a decimal number")
		return nil, false
	}
	return m, true
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func moneyString(m *domain.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

func offerToJSON(o *domain.Offer) *offerJSON {
	if o == nil {
		return nil
	}
	return &offerJSON{
		ID:            o.ID(),
		Title:         o.Title(),
		DiscountType:  string(o.Type()),
		DiscountValue: o.Value().FloatString(2),
	}
}

func variantsToJSON(variants []pricing.VariantPrice) []variantJSON {
	out := make([]variantJSON, 0, len(variants))
	for _, v := range variants {
		out = append(out, variantJSON{
			ID:            v.ID,
			Label:         v.Label,
			SortOrder:     v.SortOrder,
			PriceOriginal: moneyString(v.PriceOriginal),
			PriceFinal:    moneyString(v.PriceFinal),
		})
	}
	return out
}
