package http

import (
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/list_offers"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/create_offer"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/delete_offer"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/update_offer"
)

const maxOfferBodyBytes = 64 * 1024

// OffersHandler serves the admin offer endpoints.
type OffersHandler struct {
	create *create_offer.Interactor
	update *update_offer.Interactor
	delete *delete_offer.Interactor
	list   *list_offers.Query
	repo   contracts.OfferRepository
}

// NewOffersHandler creates the admin offers handler.
func NewOffersHandler(
	create *create_offer.Interactor,
	update *update_offer.Interactor,
	del *delete_offer.Interactor,
	list *list_offers.Query,
	repo contracts.OfferRepository,
) *OffersHandler {
	return &OffersHandler{create: create, update: update, delete: del, list: list, repo: repo}
}

// offerBody is the admin write payload. Discount value and times arrive
// as strings so precision and timezone survive the wire.
type offerBody struct {
	Title         string  `json:"title"`
	DiscountType  string  `json:"discountType"`
	DiscountValue string  `json:"discountVal"`
	ProductID     *string `json:"productId"`
	CategoryID    *string `json:"categoryId"`
	TagID         *string `json:"tagId"`
	StartAt       *string `json:"startAt"`
	EndAt         *string `json:"endAt"`
}

type offerAdminJSON struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	DiscountType  string  `json:"discountType"`
	DiscountValue string  `json:"discountVal"`
	ProductID     *string `json:"productId"`
	CategoryID    *string `json:"categoryId"`
	TagID         *string `json:"tagId"`
	StartAt       *string `json:"startAt"`
	EndAt         *string `json:"endAt"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// CreateOffer handles POST /api/v1/admin/offers.
func (h *OffersHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	body, parsed, ok := decodeOfferBody(w, r)
	if !ok {
		return
	}

	id, err := h.create.Execute(r.Context(), &create_offer.Request{
		Title:      body.Title,
		Type:       domain.DiscountType(body.DiscountType),
		Value:      parsed.value,
		ProductID:  body.ProductID,
		CategoryID: body.CategoryID,
		TagID:      body.TagID,
		StartAt:    parsed.startAt,
		EndAt:      parsed.endAt,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "id": id})
}

// UpdateOffer handles PUT /api/v1/admin/offers/{id}.
func (h *OffersHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	body, parsed, ok := decodeOfferBody(w, r)
	if !ok {
		return
	}

	err := h.update.Execute(r.Context(), &update_offer.Request{
		OfferID:    chi.URLParam(r, "id"),
		Title:      body.Title,
		Type:       domain.DiscountType(body.DiscountType),
		Value:      parsed.value,
		ProductID:  body.ProductID,
		CategoryID: body.CategoryID,
		TagID:      body.TagID,
		StartAt:    parsed.startAt,
		EndAt:      parsed.endAt,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

// DeleteOffer handles DELETE /api/v1/admin/offers/{id}.
func (h *OffersHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.delete.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

// GetOffer handles GET /api/v1/admin/offers/{id}.
func (h *OffersHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	dto, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "offer": offerAdminToJSON(dto)})
}

// ListOffers handles GET /api/v1/admin/offers.
func (h *OffersHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, ok := parseIntParam(w, q.Get("limit"), "limit")
	if !ok {
		return
	}
	offset, ok := parseIntParam(w, q.Get("offset"), "offset")
	if !ok {
		return
	}

	result, err := h.list.Execute(r.Context(), limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	offers := make([]offerAdminJSON, 0, len(result.Offers))
	for _, dto := range result.Offers {
		offers = append(offers, offerAdminToJSON(dto))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"total":  result.Total,
		"offers": offers,
	})
}

// parsedOfferBody carries the fields that needed conversion from their
// wire representation.
type parsedOfferBody struct {
	value   *big.Rat
	startAt *time.Time
	endAt   *time.Time
}

func decodeOfferBody(w http.ResponseWriter, r *http.Request) (*offerBody, *parsedOfferBody, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxOfferBodyBytes)

	var body offerBody
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			badRequest(w, "body", "request body is required")
		} else {
			badRequest(w, "body", "request body must be valid JSON")
		}
		return nil, nil, false
	}

	parsed := &parsedOfferBody{}
	if body.DiscountValue != "" {
		val, ok := new(big.Rat).SetString(body.DiscountValue)
		if !ok {
			badRequest(w, "discountVal", "discountVal must be a decimal number")
			return nil, nil, false
		}
		parsed.value = val
	}

	var ok bool
	if parsed.startAt, ok = parseTimeParam(w, body.StartAt, "startAt"); !ok {
		return nil, nil, false
	}
	if parsed.endAt, ok = parseTimeParam(w, body.EndAt, "endAt"); !ok {
		return nil, nil, false
	}
	return &body, parsed, true
}

func parseTimeParam(w http.ResponseWriter, raw *string, field string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		badRequest(w, field, field+" must be an RFC 3339 timestamp")
		return nil, false
	}
	return &t, true
}

func offerAdminToJSON(dto *contracts.OfferAdminDTO) offerAdminJSON {
	o := dto.Offer
	return offerAdminJSON{
		ID:            o.ID(),
		Title:         o.Title(),
		DiscountType:  string(o.Type()),
		DiscountValue: o.Value().FloatString(2),
		ProductID:     o.ProductID(),
		CategoryID:    o.CategoryID(),
		TagID:         o.TagID(),
		StartAt:       timeString(o.StartAt()),
		EndAt:         timeString(o.EndAt()),
		CreatedAt:     dto.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     dto.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
