// Package gateway routes payment methods to the providers that collect them.
package gateway

import (
	"fmt"
	"sync"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
)

// Registry implements ports.GatewayResolver.
type Registry struct {
	mu       sync.RWMutex
	gateways map[domain.PaymentMethod]ports.PaymentGateway
}

var _ ports.GatewayResolver = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{gateways: make(map[domain.PaymentMethod]ports.PaymentGateway)}
}

// Register binds a gateway method to its provider, replacing any earlier binding.
func (r *Registry) Register(method domain.PaymentMethod, gw ports.PaymentGateway) error {
	if !method.UsesGateway() {
		return fmt.Errorf("payment method %q does not use a gateway", method)
	}
	if gw == nil {
		return fmt.Errorf("nil gateway for method %q", method)
	}
	r.mu.Lock()
	r.gateways[method] = gw
	r.mu.Unlock()
	return nil
}

// Resolve returns the provider for method.
func (r *Registry) Resolve(method domain.PaymentMethod) (ports.PaymentGateway, error) {
	r.mu.RLock()
	gw, ok := r.gateways[method]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no gateway registered for payment method %q", method)
	}
	return gw, nil
}

// Methods lists the registered methods, for startup logging.
func (r *Registry) Methods() []domain.PaymentMethod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentMethod, 0, len(r.gateways))
	for _, m := range []domain.PaymentMethod{domain.PaymentMethodMpesa, domain.PaymentMethodCard, domain.PaymentMethodCrypto} {
		if _, ok := r.gateways[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
