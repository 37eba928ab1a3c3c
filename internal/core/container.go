package core

import "github.com/jask/orderdeck/internal/database/repository"

// OrdersContainer is the composition root for the order list: it owns the
// selection, the shipment workflow, the pane controller and the media
// resolver, plus the current order snapshot delivered by the data provider.
type OrdersContainer struct {
	selection SelectionModel
	workflow  *ShipmentWorkflow
	panes     *ListPaneController
	media     *MediaResolver

	orders  []repository.Order
	hasMore bool
}

func NewOrdersContainer(workflow *ShipmentWorkflow, panes *ListPaneController, media *MediaResolver) *OrdersContainer {
	return &OrdersContainer{workflow: workflow, panes: panes, media: media}
}

// SetOrders replaces the order snapshot wholesale and records the data
// provider's has-more probe result. Snapshots are never merged in place;
// in-flight operations keep acting on the snapshot they captured. Batch
// flags from the previous snapshot are dropped.
func (c *OrdersContainer) SetOrders(orders []repository.Order, hasMore bool) {
	c.orders = orders
	c.hasMore = hasMore
	c.workflow.ResetFlags()
}

// Orders returns the current snapshot.
func (c *OrdersContainer) Orders() []repository.Order { return c.orders }

// HasMore reports whether the data provider has more orders beyond the
// current snapshot.
func (c *OrdersContainer) HasMore() bool { return c.hasMore }

// Selection exposes the selection model.
func (c *OrdersContainer) Selection() *SelectionModel { return &c.selection }

// Workflow exposes the shipment workflow.
func (c *OrdersContainer) Workflow() *ShipmentWorkflow { return c.workflow }

// Panes exposes the pane controller.
func (c *OrdersContainer) Panes() *ListPaneController { return c.panes }

// Media exposes the media resolver.
func (c *OrdersContainer) Media() *MediaResolver { return c.media }

// OrderByID returns a copy of the snapshot order with the given id.
func (c *OrdersContainer) OrderByID(id string) (repository.Order, bool) {
	for _, o := range c.orders {
		if o.ID == id {
			return o, true
		}
	}
	return repository.Order{}, false
}
