package domain_test

import (
	"testing"

	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Fixed(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"12.5", "12.50"},
		{"0", "0.00"},
		{"139.155", "139.16"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			m := domain.Money{Value: decimal.RequireFromString(tt.value), Currency: "EUR"}
			assert.Equal(t, tt.want, m.Fixed())
		})
	}
}

func TestParseAmount(t *testing.T) {
	d, err := domain.ParseAmount("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = domain.ParseAmount("0.01")
	require.NoError(t, err)
	assert.Equal(t, "0.01", domain.FormatAmount(d))
}

func TestTransaction_StateTransitions(t *testing.T) {
	newTx := func() *domain.Transaction {
		return &domain.Transaction{
			ID:        uuid.New(),
			Reference: "S00042-1",
			Amount:    decimal.RequireFromString("121.00"),
			Currency:  "EUR",
			State:     domain.StateDraft,
		}
	}

	t.Run("draft -> done", func(t *testing.T) {
		tx := newTx()

		require.NoError(t, tx.MarkDone())
		assert.Equal(t, domain.StateDone, tx.State)
		assert.True(t, tx.IsTerminal())
	})

	t.Run("pending -> done", func(t *testing.T) {
		tx := newTx()
		tx.State = domain.StatePending

		require.NoError(t, tx.MarkDone())
		assert.Equal(t, domain.StateDone, tx.State)
	})

	t.Run("done is idempotent", func(t *testing.T) {
		tx := newTx()
		require.NoError(t, tx.MarkDone())

		assert.NoError(t, tx.MarkDone())
	})

	t.Run("cancelled cannot become done", func(t *testing.T) {
		tx := newTx()
		tx.State = domain.StateCancel
		assert.True(t, tx.IsTerminal())

		err := tx.MarkDone()

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, domain.StateCancel, tx.State)
	})

	t.Run("records acquirer reference", func(t *testing.T) {
		tx := newTx()

		tx.SetAcquirerReference("ord_kEn1PlbGa")

		assert.Equal(t, "ord_kEn1PlbGa", tx.AcquirerReference)
		assert.Equal(t, "121.00", tx.Money().Fixed())
	})
}
