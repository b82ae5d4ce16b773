package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/shoppinglist"
)

type ShoppingListHandler struct {
	service shoppinglist.Service
}

func NewShoppingListHandler(service shoppinglist.Service) *ShoppingListHandler {
	return &ShoppingListHandler{service: service}
}

// HandleDownload renders the caller's shopping cart as an attachment
// @Summary Download the shopping list
// @Tags shopping list
// @Produce plain
// @Produce text/csv
// @Security TokenAuth
// @Param format query string false "txt (default) or csv"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /api/recipes/download_shopping_cart [get]
// @Router /api/recipes/shopping_cart/download [get]
func (h *ShoppingListHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	format, err := shoppinglist.ParseFormat(GetOptionalQueryParam(r, QueryFormat, string(shoppinglist.FormatText)))
	if err != nil {
		respondServiceError(w, r, OpDownloadCart, err)
		return
	}

	doc, err := h.service.Download(r.Context(), currentUserID(r), format)
	if err != nil {
		respondServiceError(w, r, OpDownloadCart, err)
		return
	}

	w.Header().Set(HeaderContentType, doc.ContentType)
	w.Header().Set(HeaderContentDisposition, fmt.Sprintf(AttachmentFormat, doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Body); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write shopping list", "error", err)
	}
}
