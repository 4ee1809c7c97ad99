package billing

import (
	"context"
	"fmt"
	"log"

	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	PriceStarter  string
	PricePro      string
	PriceBusiness string
	SuccessURL    string
	CancelURL     string
}

// Service handles Stripe billing operations. Subscription state lives
// in Stripe; the app only starts checkout sessions and serves the
// public pricing table.
type Service struct {
	config *StripeConfig
}

// NewService creates a new billing service
func NewService(config *StripeConfig) *Service {
	stripe.Key = config.SecretKey
	return &Service{config: config}
}

// Tiers returns the public pricing table.
func (s *Service) Tiers() []models.PricingTier {
	return []models.PricingTier{
		{
			Tier:         "starter",
			Name:         "Starter",
			PriceMonthly: 19,
			Features: []string{
				"Up to 1,000 leads",
				"Pipeline board",
				"CSV import and export",
			},
		},
		{
			Tier:         "pro",
			Name:         "Pro",
			PriceMonthly: 49,
			Features: []string{
				"Unlimited leads",
				"Dashboard analytics",
				"Realtime sync across devices",
				"Priority support",
			},
		},
		{
			Tier:         "business",
			Name:         "Business",
			PriceMonthly: 99,
			Features: []string{
				"Everything in Pro",
				"Excel exports with S3 delivery",
				"Dedicated onboarding",
			},
		},
	}
}

// CreateCheckoutSession starts a hosted Stripe checkout for the given
// tier. The checkout is keyed by the caller's email since users are
// not modeled as local entities.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID, email, tier string) (*models.CheckoutResponse, error) {
	priceID, err := s.priceIDForTier(tier)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(email),
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"user_id": userID,
			"tier":    tier,
		},
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, domain.NewInternalError("failed to create checkout session", err)
	}

	log.Printf("✅ Checkout session created for %s (%s tier)", email, tier)
	return &models.CheckoutResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

func (s *Service) priceIDForTier(tier string) (string, error) {
	switch tier {
	case "starter":
		return s.config.PriceStarter, nil
	case "pro":
		return s.config.PricePro, nil
	case "business":
		return s.config.PriceBusiness, nil
	}
	return "", domain.NewValidationError(fmt.Sprintf("unknown pricing tier: %s", tier), nil)
}
