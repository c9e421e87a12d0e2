package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) indexProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.ProductFilter{
		Category: r.URL.Query().Get("category"),
	}
	if popularParam := r.URL.Query().Get("popular"); popularParam != "" {
		popular, parseErr := strconv.ParseBool(popularParam)
		if parseErr != nil {
			log.Err(parseErr).Str("func", "*Handler.indexProducts").Str("popular", popularParam).Msg("invalid popular query parameter")
			writeError(w, r, ErrInvalidURLParameter)
			return
		}
		filter.Popular = popular
	}

	products, err := h.services.ProductService.Index(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, writeErr := utils.WriteJSON(w, products, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.indexProducts").Msg("failed to write response")
	}
}

func (h *Handler) showProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, parseErr := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if parseErr != nil {
		log.Err(parseErr).Str("func", "*Handler.showProduct").Msg("invalid product id url parameter")
		writeError(w, r, ErrInvalidURLParameter)
		return
	}

	foundProduct, err := h.services.ProductService.Show(ctx, productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, writeErr := utils.WriteJSON(w, foundProduct, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.showProduct").Msg("failed to write response")
	}
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Str("func", "*Handler.createProduct").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	createdProduct, err := h.services.ProductService.Create(ctx, product)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("product_id", createdProduct.ID).Msg("product successfully created")

	if _, writeErr := utils.WriteJSON(w, createdProduct, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.createProduct").Msg("failed to write response")
	}
}
