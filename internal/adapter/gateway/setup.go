package gateway

import (
	"net/http"

	"settlement-ledger/config"
	"settlement-ledger/internal/adapter/gateway/deferred"
	"settlement-ledger/internal/adapter/gateway/mpesa"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// FromConfig registers a provider for every gateway method. M-Pesa uses the
// Daraja API when credentials are configured and the simulated provider
// otherwise. The returned func stops pending simulated confirmations.
func FromConfig(cfg config.GatewayConfig, processor ports.ConfirmationProcessor, httpClient *http.Client, log zerolog.Logger) (*Registry, func(), error) {
	reg := NewRegistry()
	var simulated []*deferred.Gateway

	simulate := func(name string) *deferred.Gateway {
		gw := deferred.New(name, cfg.SimulateDelay, processor, log)
		simulated = append(simulated, gw)
		return gw
	}
	closeAll := func() {
		for _, gw := range simulated {
			gw.Close()
		}
	}

	var mpesaGateway ports.PaymentGateway
	if cfg.Mpesa.Enabled() {
		mpesaGateway = mpesa.NewClient(mpesa.Config{
			BaseURL:        cfg.Mpesa.BaseURL(),
			ConsumerKey:    cfg.Mpesa.ConsumerKey,
			ConsumerSecret: cfg.Mpesa.ConsumerSecret,
			Shortcode:      cfg.Mpesa.Shortcode,
			Passkey:        cfg.Mpesa.Passkey,
			CallbackURL:    cfg.Mpesa.CallbackURL,
		}, httpClient, log)
	} else {
		log.Warn().Msg("M-Pesa credentials not configured; simulating mpesa payments")
		mpesaGateway = simulate(mpesa.ProviderName)
	}

	bindings := []struct {
		method domain.PaymentMethod
		gw     ports.PaymentGateway
	}{
		{domain.PaymentMethodMpesa, mpesaGateway},
		{domain.PaymentMethodCard, simulate(string(domain.PaymentMethodCard))},
		{domain.PaymentMethodCrypto, simulate(string(domain.PaymentMethodCrypto))},
	}
	for _, b := range bindings {
		if err := reg.Register(b.method, b.gw); err != nil {
			closeAll()
			return nil, nil, err
		}
	}
	return reg, closeAll, nil
}
