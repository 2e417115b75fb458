package mollie

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
)

const maxErrorBody = 64 << 10

// problemResponse is Mollie's application/hal+json error body.
type problemResponse struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Field  string `json:"field"`
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	gwErr := &application.GatewayError{
		StatusCode: resp.StatusCode,
		Title:      http.StatusText(resp.StatusCode),
	}

	var problem problemResponse
	if err := json.Unmarshal(body, &problem); err != nil {
		gwErr.Detail = strings.TrimSpace(string(body))
		return gwErr
	}

	if problem.Title != "" {
		gwErr.Title = problem.Title
	}
	gwErr.Detail = problem.Detail
	gwErr.Field = problem.Field
	return gwErr
}
