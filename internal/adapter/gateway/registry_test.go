package gateway

import (
	"testing"
	"time"

	"settlement-ledger/config"
	"settlement-ledger/internal/adapter/gateway/deferred"
	"settlement-ledger/internal/adapter/gateway/mpesa"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	card := mocks.NewMockPaymentGateway(ctrl)

	reg := NewRegistry()
	require.NoError(t, reg.Register(domain.PaymentMethodCard, card))

	got, err := reg.Resolve(domain.PaymentMethodCard)
	require.NoError(t, err)
	assert.Same(t, card, got)

	_, err = reg.Resolve(domain.PaymentMethodCrypto)
	assert.Error(t, err)
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentMethodCard}, reg.Methods())
}

func TestRegistry_RejectsNonGatewayMethods(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockPaymentGateway(ctrl)
	reg := NewRegistry()

	assert.Error(t, reg.Register(domain.PaymentMethodWallet, gw))
	assert.Error(t, reg.Register(domain.PaymentMethod("cheque"), gw))
	assert.Error(t, reg.Register(domain.PaymentMethodCard, nil))
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		mpesa     config.MpesaConfig
		wantMpesa any
	}{
		{
			name:      "simulated without credentials",
			mpesa:     config.MpesaConfig{Environment: "sandbox"},
			wantMpesa: &deferred.Gateway{},
		},
		{
			name: "daraja with credentials",
			mpesa: config.MpesaConfig{
				Environment:    "sandbox",
				ConsumerKey:    "ck",
				ConsumerSecret: "cs",
				Shortcode:      "174379",
			},
			wantMpesa: &mpesa.Client{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			processor := mocks.NewMockConfirmationProcessor(ctrl)

			reg, closeFn, err := FromConfig(config.GatewayConfig{
				SimulateDelay: time.Second,
				Mpesa:         tt.mpesa,
			}, processor, nil, zerolog.Nop())
			require.NoError(t, err)
			defer closeFn()

			gw, err := reg.Resolve(domain.PaymentMethodMpesa)
			require.NoError(t, err)
			assert.IsType(t, tt.wantMpesa, gw)
			assert.Equal(t, "mpesa", gw.Name())

			for _, m := range []domain.PaymentMethod{domain.PaymentMethodCard, domain.PaymentMethodCrypto} {
				gw, err := reg.Resolve(m)
				require.NoError(t, err)
				assert.Equal(t, string(m), gw.Name())
			}
		})
	}
}
