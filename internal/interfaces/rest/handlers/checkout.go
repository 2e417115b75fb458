package handlers

import (
	"net/http"

	"github.com/DanielPopoola/mollie-acquirer/internal/application/services"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest"
)

type CheckoutRequest struct {
	Reference string `json:"reference" validate:"required" example:"S00042-1"`
	Lang      string `json:"lang" example:"nl_NL"`
}

type CheckoutResponse struct {
	Reference    string `json:"reference" example:"S00042-1"`
	BaseURL      string `json:"base_url" example:"https://shop.example.com/"`
	CheckoutURL  string `json:"checkout_url,omitempty" example:"https://www.mollie.com/checkout/order/pbjz8x"`
	Status       string `json:"status,omitempty" example:"created"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// HandleCheckout creates the Mollie order or payment for a transaction
// @Summary      Start a Mollie checkout
// @Description  Creates a Mollie order for the transaction's sale order or invoice, falling back to the payments API when the order is rejected. A rejection is returned in error_message with status 200.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Transaction reference and payer language"
// @Success      200      {object}  rest.APIResponse{data=CheckoutResponse}
// @Failure      400      {object}  rest.APIResponse  "Missing reference or ambiguous payment details"
// @Failure      404      {object}  rest.APIResponse  "Unknown transaction"
// @Failure      502      {object}  rest.APIResponse  "Gateway unavailable"
// @Router       /payment/mollie/checkout [post]
func (h *Handlers) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	values, err := h.checkout.GenerateCheckoutValues(r.Context(), services.CheckoutCommand{
		Reference: req.Reference,
		Lang:      req.Lang,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CheckoutResponse{
		Reference:    values.Reference,
		BaseURL:      values.BaseURL,
		CheckoutURL:  values.CheckoutURL,
		Status:       values.Status,
		ErrorMessage: values.ErrorMessage,
	})
}
