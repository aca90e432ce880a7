// Package observer demonstrates a subject notifying a fixed, known set of
// subscribers in registration order. Nothing subscribes or unsubscribes
// after construction.
package observer

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/patternlab/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input is empty because this demonstration takes no arguments.
type Input struct{}

// Subscriber receives headlines from the agency. The implementers are fixed
// at construction time.
type Subscriber interface {
	Receive(headline string) string
}

type EmailSubscriber struct {
	Address string
}

func (s EmailSubscriber) Receive(headline string) string {
	return fmt.Sprintf("emailed %s: %s", s.Address, headline)
}

type FeedSubscriber struct {
	Slug string
}

func (s FeedSubscriber) Receive(headline string) string {
	return fmt.Sprintf("appended to feed /%s: %s", s.Slug, headline)
}

// Agency is the subject. Its subscriber list is set once and notified in
// order on every publish.
type Agency struct {
	subscribers []Subscriber
}

// NewAgency builds an agency with the given subscribers.
func NewAgency(subscribers ...Subscriber) *Agency {
	return &Agency{subscribers: subscribers}
}

// Publish delivers the headline to every subscriber and reports each
// delivery.
func (a *Agency) Publish(headline string) []string {
	deliveries := make([]string, 0, len(a.subscribers))
	for _, s := range a.subscribers {
		deliveries = append(deliveries, s.Receive(headline))
	}
	return deliveries
}

// OnRunObserver is the handler for the 'observer' demonstration.
func OnRunObserver(ctx context.Context, input any) ([]string, error) {
	agency := NewAgency(
		EmailSubscriber{Address: "ada@example.com"},
		EmailSubscriber{Address: "linus@example.com"},
		FeedSubscriber{Slug: "frontpage"},
	)

	lines := []string{"agency publishes: release 1.0 shipped"}
	lines = append(lines, agency.Publish("release 1.0 shipped")...)
	lines = append(lines, "agency publishes: hotfix 1.0.1 shipped")
	lines = append(lines, agency.Publish("hotfix 1.0.1 shipped")...)
	return lines, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("observer", &registry.Example{
		Description: "subject notifying a fixed subscriber set in order",
		NewInput:    func() any { return new(Input) },
		InputType:   reflect.TypeOf(Input{}),
		Fn:          OnRunObserver,
	})
}
