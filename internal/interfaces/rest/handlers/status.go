package handlers

import (
	"net/http"

	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest"
)

type PaymentStatusResponse struct {
	ID     string `json:"id" example:"tr_WDqYK6vllg"`
	Status string `json:"status" example:"paid"`
	Method string `json:"method,omitempty" example:"ideal"`
}

type StatusResponse struct {
	Reference         string                  `json:"reference"`
	AcquirerReference string                  `json:"acquirer_reference" example:"ord_pbjz8x"`
	Resource          string                  `json:"resource" example:"order"`
	Status            string                  `json:"status" example:"created"`
	CheckoutURL       string                  `json:"checkout_url,omitempty"`
	Payments          []PaymentStatusResponse `json:"payments,omitempty"`
}

// HandleTransactionStatus asks Mollie for the state of a transaction
// @Summary      Gateway status of a transaction
// @Description  Looks up the stored Mollie order (ord_) or payment (tr_) id.
// @Tags         checkout
// @Produce      json
// @Param        reference  path      string  true  "Transaction reference"
// @Success      200        {object}  rest.APIResponse{data=StatusResponse}
// @Failure      404        {object}  rest.APIResponse
// @Failure      409        {object}  rest.APIResponse  "Transaction has no usable Mollie id"
// @Failure      502        {object}  rest.APIResponse
// @Router       /payment/mollie/transactions/{reference}/status [get]
func (h *Handlers) HandleTransactionStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.status.GatewayStatus(r.Context(), r.PathValue("reference"))
	if err != nil {
		h.fail(w, err)
		return
	}

	resp := StatusResponse{
		Reference:         status.Reference,
		AcquirerReference: status.AcquirerReference,
		Resource:          status.Resource,
		Status:            status.Status,
		CheckoutURL:       status.CheckoutURL,
	}
	for _, p := range status.Payments {
		resp.Payments = append(resp.Payments, PaymentStatusResponse(p))
	}

	rest.WriteJSON(w, http.StatusOK, resp)
}
