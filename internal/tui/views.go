package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adiaz/rustico/internal/api"
	"github.com/adiaz/rustico/internal/investments"
	"github.com/adiaz/rustico/internal/store"
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewLogin:
		body = a.renderLogin()
	case viewMovements:
		body = a.renderMovements()
	case viewInvestments:
		body = a.renderInvestments()
	default:
		body = a.renderGeneral()
	}

	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}

	if stack := a.renderAlerts(); stack != "" {
		body = stack + "\n" + body
	}
	return body
}

// renderAlerts stacks live notifications in insertion order.
func (a *App) renderAlerts() string {
	alerts := a.alerts.List()
	if len(alerts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(alerts))
	for _, al := range alerts {
		style := alertMessageStyle
		if al.Kind == store.AlertError {
			style = alertErrorStyle
		}
		lines = append(lines, style.Render("• "+al.Content))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderLogin() string {
	title := titleStyle.Render("Rustico")
	return fmt.Sprintf("%s\n\nUsername: %s▌\n\n%s", title, a.username,
		helpStyle.Render("[enter] Log in  [ctrl+r] Register  [ctrl+c] Quit"))
}

func (a *App) renderGeneral() string {
	title := titleStyle.Render("Summary")
	body := "loading summary..."
	if a.info != nil {
		body = fmt.Sprintf("Income:   %s\nExpenses: %s\nBalance:  %s",
			a.money(a.info.Income), a.money(a.info.Expenses), a.money(a.info.Total))
	}
	help := helpStyle.Render("[m] Movements  [v] Investments  [r] Reload  [q] Quit")
	return fmt.Sprintf("%s\n%s\n\n%s", title, body, help)
}

func (a *App) renderMovements() string {
	title := titleStyle.Render("Movements")
	out := title + "\n"

	list := a.movs.Movements()
	switch {
	case !a.movs.Loaded():
		out += "loading movements...\n"
	case len(list) == 0:
		out += mutedStyle.Render("(no movements yet)") + "\n"
	default:
		out += a.movementTable(list).Render() + "\n"
	}

	if a.formOpen {
		out += "\n" + a.renderMovementForm() + "\n"
	}

	out += "\n" + a.renderAccounts() + "\n"

	help := "[n] New  [d] Delete  [a] New account  [r] Reload  [g] Summary  [v] Investments  [q] Quit"
	if a.formOpen {
		help = "[tab] Next field  [←/→] Cycle type  [enter] Save  [esc] Cancel"
	}
	return out + "\n" + helpStyle.Render(help)
}

func (a *App) movementTable(list []api.Movement) Table {
	return Table{
		Cursor: a.movCursor,
		Rows:   len(list),
		Columns: []Column{
			{Title: "Date", Width: 10, Cell: func(r int) string { return a.date(list[r].Date) }},
			{Title: "Type", Width: 14, Cell: func(r int) string { return string(list[r].Type) }},
			{Title: "Amount", Width: 12, Cell: func(r int) string { return a.money(list[r].Amount) }},
			{Title: "Description", Width: 28, Cell: func(r int) string { return list[r].Description }},
			{Title: "Origin", Width: 12, Cell: func(r int) string { return list[r].Origin }},
			{Title: "Destination", Width: 12, Cell: func(r int) string { return list[r].Destination }},
			{Title: "Tags", Width: 18, Cell: func(r int) string { return tagsLabel(list[r].Tags) }},
		},
	}
}

func (a *App) renderMovementForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("New movement") + "\n")
	for f := formField(0); f < fieldCount; f++ {
		label := fieldLabelStyle
		if f == a.form.field {
			label = fieldActiveStyle
		}
		value := a.form.inputs[f]
		if f == fieldType {
			value = "< " + string(a.form.movementType()) + " >"
		} else if f == a.form.field {
			value += "▌"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label.Render(pad(fieldLabels[f]+":", 13)), value))
	}
	return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (a *App) renderAccounts() string {
	out := headerStyle.Render("Accounts") + "\n"
	accts := a.accts.Accounts()
	switch {
	case !a.accts.Loaded():
		return out + "loading accounts..."
	case len(accts) == 0:
		return out + mutedStyle.Render("(no accounts yet)")
	}
	t := Table{
		Cursor: -1,
		Rows:   len(accts),
		Columns: []Column{
			{Title: "Name", Width: 20, Cell: func(r int) string { return accts[r].Name }},
			{Title: "Balance", Width: 12, Cell: func(r int) string { return a.money(accts[r].Amount) }},
		},
	}
	return out + t.Render()
}

func (a *App) renderInvestments() string {
	title := titleStyle.Render("Investments")
	note := mutedStyle.Render("(example data, live positions not wired yet)")
	out := title + "  " + note + "\n"

	t := Table{
		Cursor: a.invCursor,
		Rows:   len(a.invs),
		Columns: []Column{
			{Title: "Ticker", Width: 8, Cell: func(r int) string { return a.invs[r].Ticker }},
			{Title: "Entity", Width: 18, Cell: func(r int) string { return a.invs[r].EntityName }},
			{Title: "Invested", Width: 12, Cell: func(r int) string { return a.money(a.invs[r].Amount) }},
			{Title: "Rentability", Width: 12, Cell: func(r int) string { return percent(a.invs[r].Rentability) }},
			{Title: "Profit", Width: 12, Cell: func(r int) string { return a.money(a.invs[r].Profit) }},
			{Title: "Value", Width: 12, Cell: func(r int) string { return a.money(a.invs[r].TotalValue) }},
		},
	}
	out += t.Render() + "\n"

	if a.expanded[a.invCursor] && a.invCursor < len(a.invs) {
		out += "\n" + a.renderEntries(a.invs[a.invCursor]) + "\n"
	}

	help := helpStyle.Render("[enter] Toggle entries  [g] Summary  [m] Movements  [q] Quit")
	return out + "\n" + help
}

func (a *App) renderEntries(pos investments.Position) string {
	entries := pos.Entries
	t := Table{
		Cursor: -1,
		Rows:   len(entries),
		Columns: []Column{
			{Title: "Date", Width: 10, Cell: func(r int) string { return a.date(entries[r].Date) }},
			{Title: "Amount", Width: 12, Cell: func(r int) string { return a.money(entries[r].LocalAmount) }},
			{Title: "Rentability", Width: 12, Cell: func(r int) string { return percent(entries[r].Rentability) }},
			{Title: "Profit", Width: 12, Cell: func(r int) string { return a.money(entries[r].LocalProfit) }},
			{Title: "Value", Width: 12, Cell: func(r int) string { return a.money(entries[r].PartialValue) }},
		},
	}
	return headerStyle.Render(pos.Ticker+" entries") + "\n" + t.Render()
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirmDelete:
		list := a.movs.Movements()
		desc := ""
		if a.deleteIndex >= 0 && a.deleteIndex < len(list) {
			desc = list[a.deleteIndex].Description
		}
		body := fmt.Sprintf("%s\nDelete %q?\n[y] Yes  [n] No", headerStyle.Render("Delete movement"), desc)
		return modalStyle.Render(body)
	case modalNewAccount:
		nameLabel, amountLabel := fieldActiveStyle, fieldLabelStyle
		if a.acctForm.field == 1 {
			nameLabel, amountLabel = fieldLabelStyle, fieldActiveStyle
		}
		name, amount := a.acctForm.name, a.acctForm.amount
		if a.acctForm.field == 0 {
			name += "▌"
		} else {
			amount += "▌"
		}
		body := fmt.Sprintf("%s\n%s %s\n%s %s\n%s",
			headerStyle.Render("New account"),
			nameLabel.Render(pad("Name:", 9)), name,
			amountLabel.Render(pad("Balance:", 9)), amount,
			helpStyle.Render("[tab] Switch  [enter] Save  [esc] Cancel"))
		return modalStyle.Render(body)
	default:
		return ""
	}
}

// money formats an amount with the configured currency symbol.
func (a *App) money(d decimal.Decimal) string {
	return d.StringFixed(2) + a.cfg.UI.CurrencySymbol
}

// date reformats a backend YYYY-MM-DD date for display; unparseable values
// pass through untouched.
func (a *App) date(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format(a.cfg.UI.DateFormat)
}

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func tagsLabel(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
