// Package core contains the order-list state machines and their collaborator
// contracts.
//
// Allowed here:
// - selection state, pane policy, shipment-status transition rules
// - collaborator interfaces (remote invocation, notification, preferences,
//   detail-view activation, media lookup)
//
// Not allowed here:
// - terminal rendering, storage access, process wiring
package core
