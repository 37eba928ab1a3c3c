package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/jask/orderdeck/internal/database/repository"
)

// ShipmentStatus is a target state for a batch transition.
type ShipmentStatus string

const (
	StatusPacked  ShipmentStatus = "packed"
	StatusShipped ShipmentStatus = "shipped"
)

// ShipmentWorkflow validates and applies packed/shipped transitions for
// batches of selected orders. Remote failures become error toasts and never
// stop the sweep over the rest of the batch.
type ShipmentWorkflow struct {
	invoker  Invoker
	notifier Notifier

	// batch flags: true once at least one transition of that kind succeeded
	// since the last snapshot reset. Not per-order status. Batches run off
	// the update loop, so reads and writes are locked.
	mu      sync.Mutex
	packed  bool
	shipped bool
}

func NewShipmentWorkflow(invoker Invoker, notifier Notifier) *ShipmentWorkflow {
	return &ShipmentWorkflow{invoker: invoker, notifier: notifier}
}

// Packed reports whether any order in the current batch window was
// successfully marked packed.
func (w *ShipmentWorkflow) Packed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.packed
}

// Shipped reports whether any order in the current batch window was
// successfully marked shipped.
func (w *ShipmentWorkflow) Shipped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shipped
}

// ResetFlags clears the batch flags. Called when a fresh order snapshot
// replaces the old one.
func (w *ShipmentWorkflow) ResetFlags() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.packed = false
	w.shipped = false
}

func (w *ShipmentWorkflow) setFlag(status ShipmentStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch status {
	case StatusPacked:
		w.packed = true
	case StatusShipped:
		w.shipped = true
	}
}

// SetShippingStatus applies the target status to every selected order found
// in the snapshot. Selected ids with no matching order are dropped silently.
// Only the first shipment record of each order is considered; orders without
// shipment records are skipped. Each order is handled independently.
func (w *ShipmentWorkflow) SetShippingStatus(ctx context.Context, status ShipmentStatus, orders []repository.Order, selectedIDs []string) {
	selected := filterByID(orders, selectedIDs)

	for _, order := range selected {
		if len(order.Shipping) == 0 {
			continue
		}
		shipment := order.Shipping[0]

		switch status {
		case StatusPacked:
			w.markPacked(ctx, order, shipment)
		case StatusShipped:
			w.markShipped(ctx, order, shipment)
		}
	}
}

func (w *ShipmentWorkflow) markPacked(ctx context.Context, order repository.Order, shipment repository.Shipment) {
	if shipment.Packed {
		w.notifier.Alert(AlertOptions{
			Text: "Order is already in the packed state",
		}, nil)
		return
	}
	if err := w.invoker.Invoke(ctx, ProcShipmentPacked, order, shipment, true); err != nil {
		w.notifier.Toast("Error", SeverityError)
		return
	}
	w.notifier.Toast(fmt.Sprintf("Order with id %s shipping status set to packed", order.ID), SeveritySuccess)
	w.setFlag(StatusPacked)
}

func (w *ShipmentWorkflow) markShipped(ctx context.Context, order repository.Order, shipment repository.Shipment) {
	switch {
	case shipment.Packed && !shipment.Shipped:
		if err := w.invoker.Invoke(ctx, ProcShipmentShipped, order, shipment); err != nil {
			w.notifier.Toast("Error", SeverityError)
			return
		}
		w.notifier.Toast(fmt.Sprintf("Order with id %s shipping status set to shipped", order.ID), SeveritySuccess)
		w.setFlag(StatusShipped)

	case !shipment.Packed:
		// Shipping before packing skips every intermediate step, so ask
		// first. Confirming only acknowledges; it performs no transition.
		w.notifier.Alert(AlertOptions{
			Text: fmt.Sprintf("You've requested that order %s be set to the \"Shipped\" status, "+
				"but it is not in the \"Packed\" state and would skip all steps leading up to "+
				"the \"Shipped\" state. Are you sure you want to do this?", order.ID),
			Type:        "warning",
			ShowCancel:  true,
			ConfirmText: "Yes, Set All Selected Orders",
		}, func(confirmed bool) {
			if confirmed {
				w.notifier.Alert(AlertOptions{Title: "Set", Type: "success"}, nil)
			}
		})

	default:
		w.notifier.Alert(AlertOptions{
			Text: "Order is already in the shipped state",
		}, nil)
	}
}

func filterByID(orders []repository.Order, ids []string) []repository.Order {
	var out []repository.Order
	for _, o := range orders {
		for _, id := range ids {
			if o.ID == id {
				out = append(out, o)
				break
			}
		}
	}
	return out
}
