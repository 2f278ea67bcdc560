package main

import (
	"io"
	"net/http"

	"github.com/AdamBeresnev/tournament-app/internal/httputil"
	"github.com/AdamBeresnev/tournament-app/internal/service"
)

const maxWebhookBytes = 65536

func (app *application) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := app.payments.ListProducts(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to list products", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, products)
}

func (app *application) checkout(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httputil.BadRequest(w, "Invalid product ID", err)
		return
	}

	var input service.CheckoutInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	session, err := app.payments.Checkout(r.Context(), id, input)
	if err != nil {
		serviceError(w, "Failed to start checkout", err)
		return
	}
	if session == nil {
		httputil.NotFound(w, "Product not found", nil)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, session)
}

func (app *application) paymentWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		httputil.BadRequest(w, "Failed to read webhook body", err)
		return
	}

	if err := app.payments.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		serviceError(w, "Failed to handle payment webhook", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
