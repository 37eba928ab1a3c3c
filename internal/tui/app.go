// Package tui is the terminal shell around the order-list core: it renders
// the two panes, feeds key events into the selection and workflow state, and
// surfaces toasts and blocking alerts.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/orderdeck/internal/config"
	"github.com/jask/orderdeck/internal/core"
	"github.com/jask/orderdeck/internal/database/repository"
	"github.com/jask/orderdeck/internal/prefs"
)

// Repos groups the storage collaborators the shell reads from.
type Repos struct {
	Orders *repository.OrderRepo
	Media  *repository.MediaRepo
}

// App ties the order-list core to the terminal.
type App struct {
	ctx       context.Context
	cfg       config.Config
	repos     Repos
	prefs     *prefs.Store
	sink      *NoticeSink
	container *core.OrdersContainer

	cursor      int
	pages       int
	searching   bool
	searchQuery string
	restored    bool

	detail     *core.ViewDescriptor
	toasts     []Toast
	alertQueue []pendingAlert
	status     string
	width      int
	height     int
}

func New(ctx context.Context, cfg config.Config, repos Repos, invoker core.Invoker, store *prefs.Store) *App {
	a := &App{
		ctx:   ctx,
		cfg:   cfg,
		repos: repos,
		prefs: store,
		sink:  NewNoticeSink(),
		pages: 1,
	}
	workflow := core.NewShipmentWorkflow(invoker, a.sink)
	panes := core.NewListPaneController(a, store, invoker)
	media := core.NewMediaResolver(repos.Media)
	a.container = core.NewOrdersContainer(workflow, panes, media)
	return a
}

// Activate implements core.DetailViewer: it receives the active order and
// opens the detail pane.
func (a *App) Activate(desc core.ViewDescriptor) {
	a.detail = &desc
	a.container.Panes().ShowDetail()
}

func (a *App) Init() tea.Cmd {
	return a.loadOrders()
}

// messages
type ordersMsg struct {
	orders  []repository.Order
	hasMore bool
}

type workflowDoneMsg struct{}

type errMsg struct{ error }

func (a *App) loadOrders() tea.Cmd {
	limit := a.cfg.UI.PageSize * a.pages
	return func() tea.Msg {
		list, err := a.repos.Orders.List(a.ctx, repository.OrderFilters{Limit: limit + 1})
		if err != nil {
			return errMsg{err}
		}
		hasMore := len(list) > limit
		if hasMore {
			list = list[:limit]
		}
		return ordersMsg{orders: list, hasMore: hasMore}
	}
}

func (a *App) setShippingStatusCmd(status core.ShipmentStatus) tea.Cmd {
	// Capture the snapshot and selection now; further UI events must not
	// change what this batch acts on.
	snapshot := a.container.Orders()
	ids := a.container.Selection().IDs()
	workflow := a.container.Workflow()
	return func() tea.Msg {
		workflow.SetShippingStatus(a.ctx, status, snapshot, ids)
		return workflowDoneMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height

	case tea.KeyMsg:
		if len(a.alertQueue) > 0 {
			a.handleAlertKey(m)
			return a, nil
		}
		if a.searching {
			a.handleSearchKey(m)
			return a, nil
		}
		return a.handleKey(m)

	case ordersMsg:
		a.container.SetOrders(m.orders, m.hasMore)
		a.restoreSelectedOrder()
		a.clampCursor()

	case workflowDoneMsg:
		a.drainNotices()
		return a, a.loadOrders()

	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, keys.Quit):
		return a, tea.Quit

	case key.Matches(m, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(m, keys.Down):
		if a.cursor < len(a.visibleOrders())-1 {
			a.cursor++
		}

	case key.Matches(m, keys.Toggle):
		if o, ok := a.orderUnderCursor(); ok {
			a.container.Selection().Toggle(o.ID)
		}

	case key.Matches(m, keys.SelectAll):
		sel := a.container.Selection()
		sel.SelectAll(a.visibleOrders(), sel.AllSelected())

	case key.Matches(m, keys.Packed):
		return a.startBatch(core.StatusPacked)

	case key.Matches(m, keys.Shipped):
		return a.startBatch(core.StatusShipped)

	case key.Matches(m, keys.Open):
		if o, ok := a.orderUnderCursor(); ok {
			a.container.Panes().ActivateOrder(a.ctx, o, false)
		}

	case key.Matches(m, keys.StartWork):
		if o, ok := a.orderUnderCursor(); ok {
			a.container.Panes().ActivateOrder(a.ctx, o, true)
			// The workflow push changed the order's stage; refresh.
			return a, a.loadOrders()
		}

	case key.Matches(m, keys.SwitchPane):
		panes := a.container.Panes()
		if panes.Pane() == core.PaneList && a.detail != nil {
			panes.ShowDetail()
		} else {
			panes.ShowList()
		}

	case key.Matches(m, keys.ShowMore):
		if a.container.HasMore() {
			a.pages++
			return a, a.loadOrders()
		}

	case key.Matches(m, keys.Search):
		a.searching = true
		a.searchQuery = ""

	case key.Matches(m, keys.Back):
		if a.container.Panes().Pane() == core.PaneDetail {
			a.container.Panes().ShowList()
		} else if a.searchQuery != "" {
			a.searchQuery = ""
			a.clampCursor()
		}
	}
	return a, nil
}

func (a *App) startBatch(status core.ShipmentStatus) (tea.Model, tea.Cmd) {
	if a.container.Selection().Count() == 0 {
		a.status = "no orders selected"
		return a, nil
	}
	a.status = ""
	return a, a.setShippingStatusCmd(status)
}

func (a *App) handleSearchKey(m tea.KeyMsg) {
	switch m.Type {
	case tea.KeyEsc:
		a.searching = false
		a.searchQuery = ""
		a.clampCursor()
	case tea.KeyEnter:
		a.searching = false
		a.clampCursor()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.searchQuery) > 0 {
			a.searchQuery = a.searchQuery[:len(a.searchQuery)-1]
		}
	case tea.KeySpace:
		a.searchQuery += " "
	case tea.KeyRunes:
		a.searchQuery += string(m.Runes)
	}
}

func (a *App) handleAlertKey(m tea.KeyMsg) {
	active := a.alertQueue[0]

	if active.confirm == nil {
		switch m.String() {
		case "enter", "esc", " ":
			a.alertQueue = a.alertQueue[1:]
		}
		return
	}

	switch m.String() {
	case "y", "Y", "enter":
		a.alertQueue = a.alertQueue[1:]
		active.confirm(true)
		a.drainNotices()
	case "n", "N", "esc":
		a.alertQueue = a.alertQueue[1:]
		active.confirm(false)
		a.drainNotices()
	}
}

// drainNotices adopts everything the workflow pushed into the sink since the
// last drain. Confirm callbacks can push follow-up alerts, so callers drain
// again after invoking one.
func (a *App) drainNotices() {
	toasts, alerts := a.sink.Drain()
	a.toasts = append(a.toasts, toasts...)
	if n := len(a.toasts); n > 5 {
		a.toasts = a.toasts[n-5:]
	}
	a.alertQueue = append(a.alertQueue, alerts...)
}

// visibleOrders applies the search filter to the current snapshot.
func (a *App) visibleOrders() []repository.Order {
	return core.RankOrders(a.container.Orders(), a.searchQuery)
}

func (a *App) orderUnderCursor() (repository.Order, bool) {
	visible := a.visibleOrders()
	if len(visible) == 0 || a.cursor >= len(visible) {
		return repository.Order{}, false
	}
	return visible[a.cursor], true
}

func (a *App) clampCursor() {
	if n := len(a.visibleOrders()); a.cursor >= n {
		a.cursor = 0
	}
}

// restoreSelectedOrder moves the cursor to the order persisted under the
// selected-order preference, once, on first load.
func (a *App) restoreSelectedOrder() {
	if a.restored {
		return
	}
	a.restored = true
	id, err := a.prefs.Get(core.PrefNamespace, core.PrefSelectedOrder)
	if err != nil || id == "" {
		return
	}
	for i, o := range a.container.Orders() {
		if o.ID == id {
			a.cursor = i
			return
		}
	}
}
