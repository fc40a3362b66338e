package api

import "github.com/shopspring/decimal"

// MovementType identifies the direction of a movement. The wire values are
// fixed by the backend.
type MovementType string

const (
	MovementIncome     MovementType = "Ingreso"
	MovementExpense    MovementType = "Gasto"
	MovementTransfer   MovementType = "Transferencia"
	MovementInvestment MovementType = "Inversión"
)

// MovementTypes lists every value the backend accepts, in display order.
var MovementTypes = []MovementType{MovementIncome, MovementExpense, MovementTransfer, MovementInvestment}

// Valid reports whether t is one of the backend's accepted types.
func (t MovementType) Valid() bool {
	for _, v := range MovementTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DraftID marks a movement that has not been persisted yet. The backend
// assigns real ids; the client never sends one.
const DraftID = -1

// Movement is a single financial record. Origin is meaningless for incomes
// and Destination is meaningless for expenses; the backend enforces the
// combination on create.
type Movement struct {
	ID          int
	Type        MovementType
	Amount      decimal.Decimal
	Date        string // YYYY-MM-DD
	Description string
	Origin      string
	Destination string
	Tags        []string
}

// Account is a named balance. Accounts have no client-visible id; the
// backend enumerates them by position.
type Account struct {
	Name   string
	Amount decimal.Decimal
}

// GeneralInfo is the aggregate summary served by /auth/me.
type GeneralInfo struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Total    decimal.Decimal
}
