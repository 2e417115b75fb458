package services

type CheckoutCommand struct {
	Reference string
	Lang      string
}

// CheckoutValues is what the checkout page renders: a redirect, an
// immediate confirmation (Status "paid") or an error message.
type CheckoutValues struct {
	Reference    string
	BaseURL      string
	CheckoutURL  string
	Status       string
	ErrorMessage string
}

// SyncReport counts what a catalog synchronization changed. Skipped is set
// when the gateway listing could not be used and nothing was written.
type SyncReport struct {
	Created     int
	Updated     int
	Deactivated int
	Skipped     bool
}
