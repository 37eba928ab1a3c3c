// Package service holds the fulfillment backend serving the order console's
// remote procedures.
package service

import (
	"context"
	"fmt"

	"github.com/jask/orderdeck/internal/core"
	"github.com/jask/orderdeck/internal/database/repository"
)

// FulfillmentService dispatches remote procedure calls onto the order store.
// It implements core.Invoker with the error-or-success contract: a call
// either fully applies or reports an error, no partial results.
type FulfillmentService struct {
	Orders *repository.OrderRepo
}

func NewFulfillmentService(orders *repository.OrderRepo) *FulfillmentService {
	return &FulfillmentService{Orders: orders}
}

// Invoke runs the named procedure.
//
// Supported procedures and their argument shapes:
//   - orders/shipmentPacked   (order, shipment, packed bool)
//   - orders/shipmentShipped  (order, shipment)
//   - workflow/pushOrderWorkflow (workflow string, stage string, order)
func (s *FulfillmentService) Invoke(ctx context.Context, procedure string, args ...any) error {
	switch procedure {
	case core.ProcShipmentPacked:
		if len(args) != 3 {
			return fmt.Errorf("%s: want 3 args, got %d", procedure, len(args))
		}
		shipment, ok := args[1].(repository.Shipment)
		if !ok {
			return fmt.Errorf("%s: arg 1 is not a shipment", procedure)
		}
		packed, ok := args[2].(bool)
		if !ok {
			return fmt.Errorf("%s: arg 2 is not a bool", procedure)
		}
		return s.Orders.SetShipmentPacked(ctx, shipment.ID, packed)

	case core.ProcShipmentShipped:
		if len(args) != 2 {
			return fmt.Errorf("%s: want 2 args, got %d", procedure, len(args))
		}
		shipment, ok := args[1].(repository.Shipment)
		if !ok {
			return fmt.Errorf("%s: arg 1 is not a shipment", procedure)
		}
		return s.Orders.SetShipmentShipped(ctx, shipment.ID)

	case core.ProcPushOrderWorkflow:
		if len(args) != 3 {
			return fmt.Errorf("%s: want 3 args, got %d", procedure, len(args))
		}
		stage, ok := args[1].(string)
		if !ok {
			return fmt.Errorf("%s: arg 1 is not a stage name", procedure)
		}
		order, ok := args[2].(repository.Order)
		if !ok {
			return fmt.Errorf("%s: arg 2 is not an order", procedure)
		}
		return s.Orders.SetWorkflowStage(ctx, order.ID, stage)

	default:
		return fmt.Errorf("unknown procedure %q", procedure)
	}
}
