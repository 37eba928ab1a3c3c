package core

import (
	"context"

	"github.com/jask/orderdeck/internal/database/repository"
)

// Pane identifies one of the two mutually exclusive view regions.
type Pane string

const (
	PaneList   Pane = "list"
	PaneDetail Pane = "detail"
)

// activeToggleHint marks the pane whose toggle affordance is highlighted.
const activeToggleHint = "order-icon-toggle"

// ListPaneController tracks which pane is open and forwards the active order
// to the detail view, the preference store and, optionally, the fulfillment
// workflow.
type ListPaneController struct {
	pane       Pane
	listHint   string
	detailHint string

	detail  DetailViewer
	prefs   PreferenceStore
	invoker Invoker
}

func NewListPaneController(detail DetailViewer, prefs PreferenceStore, invoker Invoker) *ListPaneController {
	return &ListPaneController{
		pane:     PaneList,
		listHint: activeToggleHint,
		detail:   detail,
		prefs:    prefs,
		invoker:  invoker,
	}
}

// ShowList opens the list pane and closes the detail pane.
func (c *ListPaneController) ShowList() {
	c.pane = PaneList
	c.listHint = activeToggleHint
	c.detailHint = ""
}

// ShowDetail opens the detail pane and closes the list pane.
func (c *ListPaneController) ShowDetail() {
	c.pane = PaneDetail
	c.detailHint = activeToggleHint
	c.listHint = ""
}

// Pane returns the currently open pane.
func (c *ListPaneController) Pane() Pane { return c.pane }

// ListHint returns the list pane styling hint.
func (c *ListPaneController) ListHint() string { return c.listHint }

// DetailHint returns the detail pane styling hint.
func (c *ListPaneController) DetailHint() string { return c.detailHint }

// ActivateOrder makes order the active one: it opens the detail view and
// persists the order id under the selected-order preference. When
// startWorkflow is set it additionally pushes the order into the
// "processing" stage of the core order workflow and persists that stage
// under the filters preference. The two extra effects are independent;
// neither is rolled back if the other fails.
func (c *ListPaneController) ActivateOrder(ctx context.Context, order repository.Order, startWorkflow bool) {
	c.detail.Activate(ViewDescriptor{
		Label: "Order Details",
		Order: order,
		Size:  "large",
	})

	if startWorkflow {
		_ = c.invoker.Invoke(ctx, ProcPushOrderWorkflow, OrderWorkflow, StageProcessing, order)
		c.prefs.SetPreference(PrefNamespace, PrefFilters, StageProcessing)
	}

	c.prefs.SetPreference(PrefNamespace, PrefSelectedOrder, order.ID)
}
