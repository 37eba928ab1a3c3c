package core

import (
	"context"

	"github.com/jask/orderdeck/internal/database/repository"
)

// Invoker calls a named remote procedure. Calls report error-or-success with
// no partial results; failures are surfaced to the user, never escalated.
type Invoker interface {
	Invoke(ctx context.Context, procedure string, args ...any) error
}

// AlertOptions describes a blocking alert or confirmation dialog.
type AlertOptions struct {
	Title       string
	Text        string
	Type        string // "", "warning", "success"
	ShowCancel  bool
	ConfirmText string
}

// Notifier surfaces user-facing messages. Toast is transient and
// non-blocking. Alert blocks until dismissed; when confirm is non-nil the
// dialog offers a confirm/cancel choice and reports it through the callback.
type Notifier interface {
	Toast(message, severity string)
	Alert(opts AlertOptions, confirm func(confirmed bool))
}

// PreferenceStore persists namespaced user preferences, fire-and-forget.
type PreferenceStore interface {
	SetPreference(namespace, key, value string)
}

// ViewDescriptor carries an order into the detail view.
type ViewDescriptor struct {
	Label string
	Order repository.Order
	Size  string
}

// DetailViewer activates the order detail view.
type DetailViewer interface {
	Activate(desc ViewDescriptor)
}

// MediaFinder looks up a single media record by metadata, nil when absent.
type MediaFinder interface {
	FindOne(ctx context.Context, q repository.MediaQuery) (*repository.MediaRecord, error)
}

// Toast severities.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Remote procedure names served by the fulfillment backend.
const (
	ProcShipmentPacked    = "orders/shipmentPacked"
	ProcShipmentShipped   = "orders/shipmentShipped"
	ProcPushOrderWorkflow = "workflow/pushOrderWorkflow"
)

// Preference keys for the orders package namespace.
const (
	PrefNamespace     = "orders"
	PrefFilters       = "orderListFiltersPreference"
	PrefSelectedOrder = "orderListSelectedOrderPreference"
)

// Order fulfillment workflow identifiers.
const (
	OrderWorkflow   = "coreOrderWorkflow"
	StageProcessing = "processing"
)
