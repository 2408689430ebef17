// Package stripe implements the payment gateway on Stripe Checkout
// Sessions.
package stripe

import (
	"context"
	"fmt"
	"strings"

	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"

	"github.com/velora-shop/velora/internal/config"
	"github.com/velora-shop/velora/internal/service"
)

// Gateway implements service.PaymentGateway.
type Gateway struct {
	successURL string
	cancelURL  string
	currency   string
}

// NewGateway builds a gateway from config. Returns (nil, nil) when the
// secret key is empty, leaving checkout disabled.
func NewGateway(cfg config.StripeConfig) (*Gateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, nil
	}
	stripego.Key = cfg.SecretKey

	currency := strings.ToLower(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = "usd"
	}
	return &Gateway{
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		currency:   currency,
	}, nil
}

// CreateCheckoutSession opens a hosted checkout page for the order lines.
// The success URL carries the session id back so payment confirmation can
// re-query Stripe instead of trusting the redirect.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, orderNo string, lines []service.CheckoutLine) (*service.CheckoutSession, error) {
	lineItems := make([]*stripego.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		productData := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripego.String(line.Name),
		}
		if line.Image != "" {
			productData.Images = stripego.StringSlice([]string{line.Image})
		}
		lineItems = append(lineItems, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripego.String(g.currency),
				ProductData: productData,
				// Stripe expects the smallest currency unit.
				UnitAmount: stripego.Int64(line.UnitPrice.Decimal.Shift(2).Round(0).IntPart()),
			},
			Quantity: stripego.Int64(int64(line.Quantity)),
		})
	}

	params := &stripego.CheckoutSessionParams{
		Mode:              stripego.String(string(stripego.CheckoutSessionModePayment)),
		LineItems:         lineItems,
		SuccessURL:        stripego.String(g.successURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripego.String(g.cancelURL),
		ClientReferenceID: stripego.String(orderNo),
	}
	params.Context = ctx

	created, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe session create: %w", err)
	}
	return &service.CheckoutSession{ID: created.ID, URL: created.URL}, nil
}

// RetrieveSession queries Stripe for the session's payment state.
func (g *Gateway) RetrieveSession(ctx context.Context, sessionID string) (*service.SessionStatus, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx

	got, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe session get: %w", err)
	}
	return &service.SessionStatus{
		ID:   got.ID,
		Paid: got.PaymentStatus == stripego.CheckoutSessionPaymentStatusPaid,
	}, nil
}
