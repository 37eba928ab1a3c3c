package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/orderdeck/internal/config"
	"github.com/jask/orderdeck/internal/core"
	"github.com/jask/orderdeck/internal/database/repository"
	"github.com/jask/orderdeck/internal/prefs"
)

type stubInvoker struct {
	calls []string
	err   error
}

func (s *stubInvoker) Invoke(_ context.Context, procedure string, _ ...any) error {
	s.calls = append(s.calls, procedure)
	return s.err
}

func newTestApp(t *testing.T, invoker core.Invoker) *App {
	t.Helper()

	store, err := prefs.NewStore(t.TempDir())
	require.NoError(t, err)

	cfg := config.Config{UI: config.UIConfig{PageSize: 25, DateFormat: "02/01", CurrencySymbol: "$"}}
	return New(context.Background(), cfg, Repos{}, invoker, store)
}

func testOrder(id string, packed, shipped bool) repository.Order {
	return repository.Order{
		ID:           id,
		Reference:    "ORD-" + id,
		CustomerName: "Ada Byron",
		Shipping: []repository.Shipment{
			{ID: "ship-" + id, OrderID: id, Packed: packed, Shipped: shipped},
		},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestOrdersMsgReplacesSnapshot(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &stubInvoker{})
	_, _ = a.Update(ordersMsg{orders: []repository.Order{testOrder("a", false, false)}, hasMore: true})

	require.Len(t, a.container.Orders(), 1)
	require.True(t, a.container.HasMore())

	_, _ = a.Update(ordersMsg{orders: nil, hasMore: false})
	require.Empty(t, a.container.Orders())
	require.Zero(t, a.cursor)
}

func TestToggleSelectionWithSpace(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &stubInvoker{})
	_, _ = a.Update(ordersMsg{orders: []repository.Order{
		testOrder("a", false, false),
		testOrder("b", false, false),
	}})

	_, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, a.container.Selection().Selected("a"))

	_, _ = a.Update(keyRune('j'))
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, a.container.Selection().Selected("b"))
	require.Equal(t, 2, a.container.Selection().Count())

	// toggling again removes
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.False(t, a.container.Selection().Selected("b"))
}

func TestSelectAllKeyTogglesBulkMode(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &stubInvoker{})
	_, _ = a.Update(ordersMsg{orders: []repository.Order{
		testOrder("a", false, false),
		testOrder("b", false, false),
	}})

	_, _ = a.Update(keyRune('a'))
	require.Equal(t, 2, a.container.Selection().Count())
	require.True(t, a.container.Selection().AllSelected())

	_, _ = a.Update(keyRune('a'))
	require.Zero(t, a.container.Selection().Count())
}

func TestPackedBatchEndToEnd(t *testing.T) {
	t.Parallel()

	inv := &stubInvoker{}
	a := newTestApp(t, inv)
	_, _ = a.Update(ordersMsg{orders: []repository.Order{testOrder("a", false, false)}})
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})

	_, cmd := a.Update(keyRune('p'))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, workflowDoneMsg{}, msg)
	require.Equal(t, []string{core.ProcShipmentPacked}, inv.calls)

	_, _ = a.Update(msg)
	require.Len(t, a.toasts, 1)
	require.Equal(t, core.SeveritySuccess, a.toasts[0].Severity)
	require.True(t, a.container.Workflow().Packed())
}

func TestPackedBatchWithoutSelection(t *testing.T) {
	t.Parallel()

	inv := &stubInvoker{}
	a := newTestApp(t, inv)
	_, _ = a.Update(ordersMsg{orders: []repository.Order{testOrder("a", false, false)}})

	_, cmd := a.Update(keyRune('p'))
	require.Nil(t, cmd)
	require.Equal(t, "no orders selected", a.status)
	require.Empty(t, inv.calls)
}

func TestMutationFailureBecomesErrorToast(t *testing.T) {
	t.Parallel()

	inv := &stubInvoker{err: errors.New("backend down")}
	a := newTestApp(t, inv)
	_, _ = a.Update(ordersMsg{orders: []repository.Order{testOrder("a", false, false)}})
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})

	_, cmd := a.Update(keyRune('p'))
	msg := cmd()
	_, _ = a.Update(msg)

	require.Len(t, a.toasts, 1)
	require.Equal(t, core.SeverityError, a.toasts[0].Severity)
	require.False(t, a.container.Workflow().Packed())
}

func TestSkipStepConfirmFlow(t *testing.T) {
	t.Parallel()

	inv := &stubInvoker{}
	a := newTestApp(t, inv)
	_, _ = a.Update(ordersMsg{orders: []repository.Order{testOrder("a", false, false)}})
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})

	// shipping an unpacked order queues a confirmation alert
	_, cmd := a.Update(keyRune('s'))
	msg := cmd()
	_, _ = a.Update(msg)
	require.Len(t, a.alertQueue, 1)
	require.NotNil(t, a.alertQueue[0].confirm)
	require.Empty(t, inv.calls)

	// confirming acknowledges with a follow-up alert but never mutates
	_, _ = a.Update(keyRune('y'))
	require.Len(t, a.alertQueue, 1)
	require.Equal(t, "Set", a.alertQueue[0].opts.Title)
	require.Nil(t, a.alertQueue[0].confirm)
	require.Empty(t, inv.calls)

	// dismiss the acknowledgement
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Empty(t, a.alertQueue)
}

func TestSkipStepCancelFlow(t *testing.T) {
	t.Parallel()

	inv := &stubInvoker{}
	a := newTestApp(t, inv)
	_, _ = a.Update(ordersMsg{orders: []repository.Order{testOrder("a", false, false)}})
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})

	_, cmd := a.Update(keyRune('s'))
	_, _ = a.Update(cmd())
	require.Len(t, a.alertQueue, 1)

	_, _ = a.Update(keyRune('n'))
	require.Empty(t, a.alertQueue)
	require.Empty(t, inv.calls)
}

func TestActivateOrderOpensDetailPane(t *testing.T) {
	t.Parallel()

	inv := &stubInvoker{}
	a := newTestApp(t, inv)
	_, _ = a.Update(ordersMsg{orders: []repository.Order{testOrder("a", false, false)}})

	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, core.PaneDetail, a.container.Panes().Pane())
	require.NotNil(t, a.detail)
	require.Equal(t, "a", a.detail.Order.ID)
	require.Empty(t, inv.calls) // no workflow push without startWorkflow

	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, core.PaneList, a.container.Panes().Pane())
}

func TestSearchFiltersVisibleOrders(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &stubInvoker{})
	orders := []repository.Order{
		testOrder("a", false, false),
		testOrder("b", false, false),
	}
	orders[1].CustomerName = "Grace Hopper"
	_, _ = a.Update(ordersMsg{orders: orders})

	_, _ = a.Update(keyRune('/'))
	require.True(t, a.searching)
	for _, r := range "grace" {
		_, _ = a.Update(keyRune(r))
	}
	require.Len(t, a.visibleOrders(), 1)
	require.Equal(t, "b", a.visibleOrders()[0].ID)

	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, a.searching)
	require.Len(t, a.visibleOrders(), 2)
}

func TestNoticeSinkDrain(t *testing.T) {
	t.Parallel()

	s := NewNoticeSink()
	s.Toast("one", core.SeveritySuccess)
	s.Alert(core.AlertOptions{Text: "hello"}, nil)

	toasts, alerts := s.Drain()
	require.Len(t, toasts, 1)
	require.Len(t, alerts, 1)

	toasts, alerts = s.Drain()
	require.Empty(t, toasts)
	require.Empty(t, alerts)
}
