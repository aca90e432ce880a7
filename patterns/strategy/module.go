// Package strategy demonstrates selecting one of a closed set of payment
// strategies at run time behind a single capability interface.
package strategy

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/patternlab/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the strategy demonstration.
type Input struct {
	// Method selects the payment strategy: card, paypal, or crypto.
	Method string  `pl:"method"`
	Amount float64 `pl:"amount"`
}

// PaymentStrategy is the capability a checkout needs from any payment
// method. The implementers form a closed, known set.
type PaymentStrategy interface {
	Pay(amount float64) string
}

type CardPayment struct{}

func (CardPayment) Pay(amount float64) string {
	return fmt.Sprintf("charged %.2f to card ending in 4242", amount)
}

type PaypalPayment struct{}

func (PaypalPayment) Pay(amount float64) string {
	return fmt.Sprintf("sent %.2f via paypal invoice", amount)
}

type CryptoPayment struct{}

func (CryptoPayment) Pay(amount float64) string {
	return fmt.Sprintf("transferred %.2f as an on-chain payment", amount)
}

// newStrategy maps a method name to its strategy.
func newStrategy(method string) (PaymentStrategy, error) {
	switch method {
	case "card":
		return CardPayment{}, nil
	case "paypal":
		return PaypalPayment{}, nil
	case "crypto":
		return CryptoPayment{}, nil
	default:
		return nil, fmt.Errorf("unknown payment method %q", method)
	}
}

// Checkout runs a payment through whichever strategy it was given.
type Checkout struct {
	strategy PaymentStrategy
}

func (c *Checkout) Process(amount float64) string {
	return c.strategy.Pay(amount)
}

// OnRunStrategy is the handler for the 'strategy' demonstration.
func OnRunStrategy(ctx context.Context, input any) ([]string, error) {
	in := input.(*Input)

	method := in.Method
	if method == "" {
		method = "card"
	}
	amount := in.Amount
	if amount == 0 {
		amount = 19.99
	}

	strat, err := newStrategy(method)
	if err != nil {
		return nil, err
	}

	checkout := &Checkout{strategy: strat}
	return []string{
		fmt.Sprintf("checkout using the %s strategy", method),
		checkout.Process(amount),
	}, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("strategy", &registry.Example{
		Description: "payment method chosen from a closed strategy set",
		NewInput:    func() any { return new(Input) },
		InputType:   reflect.TypeOf(Input{}),
		Fn:          OnRunStrategy,
	})
}
