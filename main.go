// File: courtside/main.go
package main

import (
	"context"
	"os"

	"courtside/api"
	"courtside/config"
	"courtside/services/checkout"
	"courtside/services/gateway"
	"courtside/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	utils.InitAuthCache()
	utils.InitSessionCache()

	tokens := &utils.TokenSource{
		Client:    utils.GetAuthCacheClient(),
		SessionID: os.Getenv("AUTH_SESSION_ID"),
	}

	client := api.NewClient(
		config.AppConfig.BackendBaseURL,
		tokens,
		config.APITimeout(),
		config.AppConfig.MaxRequestsPerMin,
	)

	var gw gateway.CheckoutGateway
	switch config.AppConfig.PaymentProvider {
	case "cashfree":
		gw = gateway.NewCashfreeGateway(
			config.AppConfig.CashfreeBaseURL,
			config.AppConfig.CashfreeClientID,
			config.AppConfig.CashfreeClientSecret,
		)
	case "stripe":
		gw = gateway.NewStripeGateway(config.AppConfig.StripeKey)
	default:
		gw = gateway.NewRazorpayGateway(
			config.AppConfig.RazorpayKeyID,
			config.AppConfig.RazorpayKeySecret,
		)
	}

	svc := &checkout.DefaultCheckoutService{
		API:           client,
		Gateway:       gw,
		SessionCache:  utils.GetSessionCacheClient(),
		PaymentMethod: "inApp",
		PollInterval:  config.PollInterval(),
	}

	slotKeys := os.Args[1:]
	if len(slotKeys) == 0 {
		logger.Fatal("usage: courtside <slotKey> [slotKey...]")
	}

	sel := checkout.NewSlotSelection()
	for _, key := range slotKeys {
		sel.Add(key)
	}

	ctx := context.Background()

	outcome, err := svc.Submit(ctx, sel, false)
	if err != nil {
		logger.Fatal("booking submission failed", zap.Error(err))
	}

	// A split offer is accepted automatically here; an interactive host
	// would put the choice to the user instead.
	if outcome.Kind == checkout.OutcomeSplitRequired {
		logger.Info("slots need splitting across resources, resubmitting", zap.String("message", outcome.Message))
		outcome, err = svc.Submit(ctx, sel, true)
		if err != nil {
			logger.Fatal("split booking submission failed", zap.Error(err))
		}
	}
	if outcome.Kind == checkout.OutcomeUnavailable {
		logger.Fatal("selected slots are no longer available", zap.String("message", outcome.Message))
	}

	att, err := svc.BeginPayment(ctx, outcome.Intent)
	if err != nil {
		logger.Fatal("payment launch failed", zap.Error(err))
	}

	view := svc.AwaitConfirmation(ctx, att)
	logger.Info("checkout finished",
		zap.String("outcome", string(view.Outcome)),
		zap.String("bookingRef", view.BookingRef),
		zap.String("message", view.Message))
}
