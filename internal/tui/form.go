package tui

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adiaz/rustico/internal/api"
)

type formField int

const (
	fieldDate formField = iota
	fieldType
	fieldAmount
	fieldDescription
	fieldOrigin
	fieldDestination
	fieldTags
	fieldCount
)

var fieldLabels = [fieldCount]string{"Date", "Type", "Amount", "Description", "Origin", "Destination", "Tags"}

// movementForm is the inline new-movement draft: one text buffer per field,
// except the type, which cycles through the backend's accepted values.
type movementForm struct {
	field  formField
	typeIx int
	inputs [fieldCount]string
}

func newMovementForm() movementForm {
	return movementForm{}
}

func (f *movementForm) next() { f.field = (f.field + 1) % fieldCount }

func (f *movementForm) prev() {
	f.field = (f.field + fieldCount - 1) % fieldCount
}

func (f *movementForm) cycleType(delta int) {
	n := len(api.MovementTypes)
	f.typeIx = (f.typeIx + delta + n) % n
}

func (f *movementForm) movementType() api.MovementType {
	return api.MovementTypes[f.typeIx]
}

func (f *movementForm) append(s string) {
	if f.field == fieldType {
		return
	}
	f.inputs[f.field] += s
}

func (f *movementForm) backspace() {
	if f.field == fieldType {
		return
	}
	if cur := f.inputs[f.field]; len(cur) > 0 {
		runes := []rune(cur)
		f.inputs[f.field] = string(runes[:len(runes)-1])
	}
}

// build validates the draft and produces the movement to send. The checks
// mirror what the backend rejects anyway, so obviously bad drafts never
// leave the client.
func (f *movementForm) build() (api.Movement, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldAmount]))
	if err != nil {
		return api.Movement{}, errors.New("Amount must be a number")
	}

	m := api.Movement{
		ID:          api.DraftID,
		Type:        f.movementType(),
		Amount:      amount,
		Date:        strings.TrimSpace(f.inputs[fieldDate]),
		Description: strings.TrimSpace(f.inputs[fieldDescription]),
		Origin:      strings.TrimSpace(f.inputs[fieldOrigin]),
		Destination: strings.TrimSpace(f.inputs[fieldDestination]),
		Tags:        normalizeTags(f.inputs[fieldTags]),
	}

	switch m.Type {
	case api.MovementIncome:
		if m.Destination == "" {
			return api.Movement{}, errors.New("Incomes require a destination account")
		}
	case api.MovementExpense:
		if m.Origin == "" {
			return api.Movement{}, errors.New("Expenses require an origin account")
		}
	default:
		if m.Origin == "" || m.Destination == "" {
			return api.Movement{}, errors.New(string(m.Type) + "s require origin and destination accounts")
		}
	}
	return m, nil
}

// normalizeTags splits a comma-separated tag list, trimming and dropping
// duplicates while keeping first-seen order.
func normalizeTags(input string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, part := range strings.Split(input, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// accountForm is the new-account modal draft.
type accountForm struct {
	field  int // 0 = name, 1 = amount
	name   string
	amount string
}

func (f *accountForm) next() { f.field = (f.field + 1) % 2 }

func (f *accountForm) append(s string) {
	if f.field == 0 {
		f.name += s
	} else {
		f.amount += s
	}
}

func (f *accountForm) backspace() {
	buf := &f.name
	if f.field == 1 {
		buf = &f.amount
	}
	if len(*buf) > 0 {
		runes := []rune(*buf)
		*buf = string(runes[:len(runes)-1])
	}
}

func (f *accountForm) build() (api.Account, error) {
	name := strings.TrimSpace(f.name)
	if name == "" {
		return api.Account{}, errors.New("Account name must not be empty")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(f.amount))
	if err != nil {
		return api.Account{}, errors.New("Opening balance must be a number")
	}
	return api.Account{Name: name, Amount: amount}, nil
}
