package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuslife/CampusLife_Go/internal/wishlist"
)

// WishlistItemRequest carries the wishlist item fields for create and edit
type WishlistItemRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// ownerToken reads the client-generated token proving item ownership. It
// never identifies an account.
func ownerToken(r *http.Request) string {
	return r.Header.Get(HeaderOwnerToken)
}

// HandleCreateWishlistItem adds an anonymous wishlist item
// @Summary Add a wishlist item
// @Description Creates an anonymous item. The X-Owner-Token header value is
// @Description required later to edit or delete the item.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-Owner-Token header string true "Client-generated owner token"
// @Param request body WishlistItemRequest true "Item"
// @Success 201 {object} domain.WishlistItem
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wishlist [post]
func HandleCreateWishlistItem(wishlistService wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ownerToken(r)
		if token == "" {
			respondError(w, http.StatusBadRequest, ErrMsgOwnerTokenError)
			return
		}

		var req WishlistItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create wishlist item"); err != nil {
			return
		}

		item, err := wishlistService.Create(r.Context(), req.Title, req.Description, token)
		if err != nil {
			respondServiceError(w, r, "Create wishlist item", err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleListWishlist returns all items, owner tokens omitted
func HandleListWishlist(wishlistService wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := wishlistService.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "List wishlist", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleUpdateWishlistItem edits an item when the presented token matches
func HandleUpdateWishlistItem(wishlistService wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WishlistItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update wishlist item"); err != nil {
			return
		}

		item, err := wishlistService.Update(r.Context(), chi.URLParam(r, "itemID"), req.Title, req.Description, ownerToken(r))
		if err != nil {
			respondServiceError(w, r, "Update wishlist item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleDeleteWishlistItem removes an item when the presented token matches
func HandleDeleteWishlistItem(wishlistService wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := wishlistService.Delete(r.Context(), chi.URLParam(r, "itemID"), ownerToken(r))
		if err != nil {
			respondServiceError(w, r, "Delete wishlist item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWishlistItemDeleted})
	}
}
