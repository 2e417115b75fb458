package handlers

import (
	"fmt"
	"net/http"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

type MethodResponse struct {
	Code               string `json:"code" example:"ideal"`
	Name               string `json:"name" example:"iDEAL"`
	MinAmount          string `json:"min_amount" example:"0.01"`
	MaxAmount          string `json:"max_amount" example:"50000.00"`
	Active             bool   `json:"active"`
	ActiveOnShop       bool   `json:"active_on_shop"`
	SupportsOrderAPI   bool   `json:"supports_order_api"`
	SupportsPaymentAPI bool   `json:"supports_payment_api"`
	IssuerCount        int    `json:"issuer_count"`
}

type SyncResponse struct {
	Created     int  `json:"created"`
	Updated     int  `json:"updated"`
	Deactivated int  `json:"deactivated"`
	Skipped     bool `json:"skipped"`
}

type ShopVisibilityRequest struct {
	ActiveOnShop *bool `json:"active_on_shop" validate:"required"`
}

// HandleSyncMethods mirrors the Mollie method catalog locally
// @Summary      Synchronize payment methods
// @Description  Fetches the active methods from both Mollie listings and updates, deactivates or creates local methods. A failed or empty listing changes nothing and reports skipped.
// @Tags         methods
// @Produce      json
// @Success      200  {object}  rest.APIResponse{data=SyncResponse}
// @Failure      500  {object}  rest.APIResponse
// @Router       /mollie/methods/sync [post]
func (h *Handlers) HandleSyncMethods(w http.ResponseWriter, r *http.Request) {
	report, err := h.syncer.Sync(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, SyncResponse{
		Created:     report.Created,
		Updated:     report.Updated,
		Deactivated: report.Deactivated,
		Skipped:     report.Skipped,
	})
}

// HandleListMethods lists methods offered at checkout
// @Summary      List available methods
// @Description  Active methods visible on the shop. With amount, only methods whose limits accept it.
// @Tags         methods
// @Produce      json
// @Param        amount  query     string  false  "Amount to check against method limits"  example:"139.15"
// @Success      200     {object}  rest.APIResponse{data=[]MethodResponse}
// @Failure      400     {object}  rest.APIResponse
// @Router       /mollie/methods [get]
func (h *Handlers) HandleListMethods(w http.ResponseWriter, r *http.Request) {
	var rawAmount *string
	if err := runtime.BindQueryParameter("form", true, false, "amount", r.URL.Query(), &rawAmount); err != nil {
		h.fail(w, application.NewInvalidInputError(err))
		return
	}

	var amount *decimal.Decimal
	if rawAmount != nil {
		parsed, err := decimal.NewFromString(*rawAmount)
		if err != nil || parsed.IsNegative() {
			h.fail(w, application.NewInvalidInputError(fmt.Errorf("amount %q is not a valid amount", *rawAmount)))
			return
		}
		amount = &parsed
	}

	methods, err := h.methods.AvailableMethods(r.Context(), amount)
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toMethodResponses(methods))
}

// HandleTransactionMethods lists methods that can pay a transaction
// @Summary      Methods for a transaction
// @Description  Available methods filtered by the payable amount of the transaction's document.
// @Tags         methods
// @Produce      json
// @Param        reference  path      string  true  "Transaction reference"
// @Success      200        {object}  rest.APIResponse{data=[]MethodResponse}
// @Failure      404        {object}  rest.APIResponse
// @Router       /payment/mollie/transactions/{reference}/methods [get]
func (h *Handlers) HandleTransactionMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.methods.AvailableForTransaction(r.Context(), r.PathValue("reference"))
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toMethodResponses(methods))
}

// HandleShopVisibility toggles whether a method is offered on the shop
// @Summary      Set shop visibility
// @Tags         methods
// @Accept       json
// @Produce      json
// @Param        code     path      string                 true  "Method code"  example:"ideal"
// @Param        request  body      ShopVisibilityRequest  true  "Visibility"
// @Success      200      {object}  rest.APIResponse{data=MethodResponse}
// @Failure      400      {object}  rest.APIResponse
// @Failure      404      {object}  rest.APIResponse
// @Router       /mollie/methods/{code}/shop-visibility [put]
func (h *Handlers) HandleShopVisibility(w http.ResponseWriter, r *http.Request) {
	var req ShopVisibilityRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	method, err := h.methods.SetShopVisibility(r.Context(), r.PathValue("code"), *req.ActiveOnShop)
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toMethodResponse(method))
}

func toMethodResponses(methods []*domain.PaymentMethod) []MethodResponse {
	out := make([]MethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, toMethodResponse(m))
	}
	return out
}

func toMethodResponse(m *domain.PaymentMethod) MethodResponse {
	return MethodResponse{
		Code:               m.Code,
		Name:               m.Name,
		MinAmount:          m.MinAmount.StringFixed(2),
		MaxAmount:          m.MaxAmount.StringFixed(2),
		Active:             m.Active,
		ActiveOnShop:       m.ActiveOnShop,
		SupportsOrderAPI:   m.SupportsOrderAPI,
		SupportsPaymentAPI: m.SupportsPaymentAPI,
		IssuerCount:        len(m.IssuerIDs),
	}
}
