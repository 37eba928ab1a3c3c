package core

import (
	"context"
	"errors"

	"github.com/jask/orderdeck/internal/database/repository"
)

// fakeInvoker records remote calls and can fail selected procedures/orders.
type fakeInvoker struct {
	calls   []invocation
	failIDs map[string]bool // order ids whose mutation should fail
}

type invocation struct {
	procedure string
	args      []any
}

func (f *fakeInvoker) Invoke(_ context.Context, procedure string, args ...any) error {
	f.calls = append(f.calls, invocation{procedure: procedure, args: args})
	if len(args) > 0 {
		if o, ok := args[0].(repository.Order); ok && f.failIDs[o.ID] {
			return errors.New("remote failure")
		}
	}
	return nil
}

func (f *fakeInvoker) callsFor(procedure string) []invocation {
	var out []invocation
	for _, c := range f.calls {
		if c.procedure == procedure {
			out = append(out, c)
		}
	}
	return out
}

// fakeNotifier records toasts and alerts. Alerts with a confirm callback are
// answered according to confirmAnswer when autoConfirm is set.
type fakeNotifier struct {
	toasts []toast
	alerts []AlertOptions

	autoConfirm   bool
	confirmAnswer bool
}

type toast struct {
	message  string
	severity string
}

func (f *fakeNotifier) Toast(message, severity string) {
	f.toasts = append(f.toasts, toast{message, severity})
}

func (f *fakeNotifier) Alert(opts AlertOptions, confirm func(bool)) {
	f.alerts = append(f.alerts, opts)
	if confirm != nil && f.autoConfirm {
		confirm(f.confirmAnswer)
	}
}

// fakePrefs records preference writes in order.
type fakePrefs struct {
	writes []prefWrite
}

type prefWrite struct {
	namespace, key, value string
}

func (f *fakePrefs) SetPreference(namespace, key, value string) {
	f.writes = append(f.writes, prefWrite{namespace, key, value})
}

// fakeDetail records detail-view activations.
type fakeDetail struct {
	activated []ViewDescriptor
}

func (f *fakeDetail) Activate(desc ViewDescriptor) {
	f.activated = append(f.activated, desc)
}

// fakeFinder serves canned media records keyed by query shape.
type fakeFinder struct {
	records []repository.MediaRecord
	err     error
}

func (f *fakeFinder) FindOne(_ context.Context, q repository.MediaQuery) (*repository.MediaRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.records {
		r := f.records[i]
		if r.ProductID != q.ProductID {
			continue
		}
		if q.VariantID != nil {
			if r.VariantID == nil || *r.VariantID != *q.VariantID {
				continue
			}
		}
		if q.Priority != nil && r.Priority != *q.Priority {
			continue
		}
		return &r, nil
	}
	return nil, nil
}

func orderWithShipment(id string, packed, shipped bool) repository.Order {
	return repository.Order{
		ID:        id,
		Reference: "REF-" + id,
		Shipping: []repository.Shipment{
			{ID: "ship-" + id, OrderID: id, Packed: packed, Shipped: shipped},
		},
	}
}
