package tui

import (
	"fmt"
	"strings"

	"github.com/jask/orderdeck/internal/core"
	"github.com/jask/orderdeck/internal/database/repository"
)

func (a *App) View() string {
	var body string
	switch a.container.Panes().Pane() {
	case core.PaneDetail:
		body = a.renderDetail()
	default:
		body = a.renderList()
	}

	if len(a.alertQueue) > 0 {
		body += "\n\n" + a.renderAlert(a.alertQueue[0])
	}
	return body
}

func (a *App) renderHeader() string {
	panes := a.container.Panes()
	list, detail := " List ", " Detail "
	if panes.ListHint() != "" {
		list = paneToggleStyle.Render(list)
	}
	if panes.DetailHint() != "" {
		detail = paneToggleStyle.Render(detail)
	}
	return titleStyle.Render("Orderdeck") + "  " + list + detail
}

func (a *App) renderList() string {
	out := a.renderHeader() + "\n"

	if a.searching || a.searchQuery != "" {
		out += fmt.Sprintf("search: %s█\n", a.searchQuery)
	}

	visible := a.visibleOrders()
	if len(visible) == 0 {
		out += dimStyle.Render("(no orders)") + "\n"
	}
	sel := a.container.Selection()
	for i, o := range visible {
		marker := " "
		if i == a.cursor {
			marker = cursorStyle.Render("▶")
		}
		check := "[ ]"
		if sel.Selected(o.ID) {
			check = selectedStyle.Render("[x]")
		}
		row := fmt.Sprintf("%s %s %-10s %-22s %8s  %s",
			marker, check, o.Reference, o.CustomerName,
			a.money(o.TotalCents), a.shipmentLabel(o))
		out += row + "\n"
	}

	counts := fmt.Sprintf("%d selected", sel.Count())
	if sel.AllSelected() {
		counts += " (all)"
	}
	out += dimStyle.Render(counts) + "\n"

	if a.container.HasMore() {
		out += dimStyle.Render("[m] show more orders") + "\n"
	}
	if w := a.container.Workflow(); w.Packed() || w.Shipped() {
		done := []string{}
		if w.Packed() {
			done = append(done, "packed")
		}
		if w.Shipped() {
			done = append(done, "shipped")
		}
		out += successStyle.Render("batch applied: "+strings.Join(done, ", ")) + "\n"
	}

	out += a.renderToasts()
	out += dimStyle.Render("[space] select  [a] all  [p] packed  [s] shipped  [enter] details  [w] process  [/] search  [q] quit")
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderDetail() string {
	out := a.renderHeader() + "\n"
	if a.detail == nil {
		return out + dimStyle.Render("(no active order)") + "\n"
	}

	o := a.detail.Order
	out += titleStyle.Render(a.detail.Label) + "\n"
	out += fmt.Sprintf("%s  %s <%s>\n", o.Reference, o.CustomerName, o.Email)
	out += fmt.Sprintf("stage: %s  total: %s  placed: %s\n",
		o.Stage, a.money(o.TotalCents), o.CreatedAt.Format(a.cfg.UI.DateFormat))

	for _, s := range o.Shipping {
		line := fmt.Sprintf("shipment %s via %s: %s", s.ID, s.Carrier, shipmentStateLabel(s))
		if s.TrackingNumber != nil {
			line += "  #" + *s.TrackingNumber
		}
		out += line + "\n"
	}

	out += "\nitems:\n"
	for _, it := range o.Items {
		media := a.container.Media().Resolve(a.ctx, core.LineItem{ProductID: it.ProductID, VariantID: it.VariantID})
		mediaNote := dimStyle.Render("(no image)")
		if media != nil {
			mediaNote = media.URL
		}
		out += fmt.Sprintf("  %d× %-28s %8s  %s\n", it.Quantity, it.Title, a.money(it.PriceCents), mediaNote)
	}

	out += "\n" + a.renderToasts()
	out += dimStyle.Render("[tab/esc] back to list  [q] quit")
	return out
}

func (a *App) renderToasts() string {
	var out string
	for _, t := range a.toasts {
		out += severityStyle(t.Severity).Render(t.Message) + "\n"
	}
	return out
}

func (a *App) renderAlert(alert pendingAlert) string {
	var b strings.Builder
	title := alert.opts.Title
	if title == "" {
		switch alert.opts.Type {
		case "warning":
			title = "Warning"
		default:
			title = "Notice"
		}
	}
	switch alert.opts.Type {
	case "warning":
		b.WriteString(warningStyle.Render(title))
	case "success":
		b.WriteString(successStyle.Render(title))
	default:
		b.WriteString(titleStyle.Render(title))
	}
	if alert.opts.Text != "" {
		b.WriteString("\n" + alert.opts.Text)
	}
	if alert.confirm != nil {
		confirmText := alert.opts.ConfirmText
		if confirmText == "" {
			confirmText = "Yes"
		}
		b.WriteString(fmt.Sprintf("\n[y] %s  [n] Cancel", confirmText))
	} else {
		b.WriteString("\n[enter] Dismiss")
	}
	return alertStyle.Render(b.String())
}

func (a *App) money(cents int64) string {
	return fmt.Sprintf("%s%.2f", a.cfg.UI.CurrencySymbol, float64(cents)/100)
}

func (a *App) shipmentLabel(o repository.Order) string {
	if len(o.Shipping) == 0 {
		return dimStyle.Render("no shipment")
	}
	return shipmentStateLabel(o.Shipping[0])
}

func shipmentStateLabel(s repository.Shipment) string {
	switch {
	case s.Shipped:
		return "shipped"
	case s.Packed:
		return "packed"
	default:
		return "pending"
	}
}
