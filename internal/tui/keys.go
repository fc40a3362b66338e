package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adiaz/rustico/internal/store"
)

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "g":
		a.state = viewGeneral
		return a, a.loadGeneralCmd()
	case "m":
		a.state = viewMovements
	case "v":
		a.state = viewInvestments
	case "r":
		switch a.state {
		case viewGeneral:
			return a, a.loadGeneralCmd()
		case viewMovements:
			return a, tea.Batch(a.refetchMovementsCmd(), a.refreshAccountsCmd())
		}
	case "up", "k":
		if a.state == viewMovements && a.movCursor > 0 {
			a.movCursor--
		}
		if a.state == viewInvestments && a.invCursor > 0 {
			a.invCursor--
		}
	case "down", "j":
		if a.state == viewMovements && a.movCursor < len(a.movs.Movements())-1 {
			a.movCursor++
		}
		if a.state == viewInvestments && a.invCursor < len(a.invs)-1 {
			a.invCursor++
		}
	case "n":
		if a.state == viewMovements {
			a.formOpen = true
			a.form = newMovementForm()
		}
	case "a":
		if a.state == viewMovements {
			a.modal = modalNewAccount
			a.acctForm = accountForm{}
		}
	case "d", "backspace", "delete":
		if a.state == viewMovements && len(a.movs.Movements()) > 0 {
			a.deleteIndex = a.movCursor
			a.modal = modalConfirmDelete
		}
	case "enter":
		if a.state == viewInvestments && len(a.invs) > 0 {
			a.expanded[a.invCursor] = !a.expanded[a.invCursor]
		}
	case "x":
		a.alerts.Clear()
	}
	return a, nil
}

func (a *App) handleLoginKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+r":
		if name := strings.TrimSpace(a.username); name != "" {
			return a, a.registerCmd(name)
		}
		return a, a.pushAlert(store.AlertError, "Enter a username")
	}
	switch m.Type {
	case tea.KeyEnter:
		if name := strings.TrimSpace(a.username); name != "" {
			return a, a.loginCmd(name)
		}
		return a, a.pushAlert(store.AlertError, "Enter a username")
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.username) > 0 {
			runes := []rune(a.username)
			a.username = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		a.username += " "
	case tea.KeyRunes:
		a.username += string(m.Runes)
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "left":
		if a.form.field == fieldType {
			a.form.cycleType(-1)
		}
		return a, nil
	case "right":
		if a.form.field == fieldType {
			a.form.cycleType(1)
		}
		return a, nil
	}
	switch m.Type {
	case tea.KeyEsc:
		a.formOpen = false
		a.form = newMovementForm()
	case tea.KeyTab, tea.KeyDown:
		a.form.next()
	case tea.KeyShiftTab, tea.KeyUp:
		a.form.prev()
	case tea.KeyEnter:
		draft, err := a.form.build()
		if err != nil {
			return a, a.pushAlert(store.AlertError, err.Error())
		}
		return a, a.createMovementCmd(draft)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		a.form.backspace()
	case tea.KeySpace:
		a.form.append(" ")
	case tea.KeyRunes:
		a.form.append(string(m.Runes))
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalConfirmDelete:
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			return a, a.deleteMovementCmd(a.deleteIndex)
		case "n", "N", "esc":
			a.modal = modalNone
		}
	case modalNewAccount:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.acctForm = accountForm{}
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
			a.acctForm.next()
		case tea.KeyEnter:
			account, err := a.acctForm.build()
			if err != nil {
				return a, a.pushAlert(store.AlertError, err.Error())
			}
			return a, a.createAccountCmd(account)
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			a.acctForm.backspace()
		case tea.KeySpace:
			a.acctForm.append(" ")
		case tea.KeyRunes:
			a.acctForm.append(string(m.Runes))
		}
	}
	return a, nil
}
