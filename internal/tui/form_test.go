package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiaz/rustico/internal/api"
)

func filledForm(t api.MovementType) movementForm {
	f := newMovementForm()
	for f.movementType() != t {
		f.cycleType(1)
	}
	f.inputs[fieldDate] = "2024-03-15"
	f.inputs[fieldAmount] = "12.50"
	f.inputs[fieldDescription] = "groceries"
	f.inputs[fieldOrigin] = "Checking"
	f.inputs[fieldDestination] = "Savings"
	return f
}

func TestFormBuildDraft(t *testing.T) {
	t.Parallel()

	f := filledForm(api.MovementExpense)
	f.inputs[fieldTags] = "food, weekly"

	m, err := f.build()
	require.NoError(t, err)
	assert.Equal(t, api.DraftID, m.ID)
	assert.Equal(t, api.MovementExpense, m.Type)
	assert.Equal(t, "12.50", m.Amount.StringFixed(2))
	assert.Equal(t, []string{"food", "weekly"}, m.Tags)
}

func TestFormBuildBadAmount(t *testing.T) {
	t.Parallel()

	f := filledForm(api.MovementExpense)
	f.inputs[fieldAmount] = "twelve"
	_, err := f.build()
	require.EqualError(t, err, "Amount must be a number")
}

func TestFormBuildDirectionRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		typ   api.MovementType
		wipe  formField
		valid bool
	}{
		{"income needs destination", api.MovementIncome, fieldDestination, false},
		{"income without origin is fine", api.MovementIncome, fieldOrigin, true},
		{"expense needs origin", api.MovementExpense, fieldOrigin, false},
		{"expense without destination is fine", api.MovementExpense, fieldDestination, true},
		{"transfer needs origin", api.MovementTransfer, fieldOrigin, false},
		{"transfer needs destination", api.MovementTransfer, fieldDestination, false},
		{"investment needs origin", api.MovementInvestment, fieldOrigin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := filledForm(tc.typ)
			f.inputs[tc.wipe] = ""
			_, err := f.build()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormFieldNavigationWraps(t *testing.T) {
	t.Parallel()

	f := newMovementForm()
	require.Equal(t, fieldDate, f.field)
	f.prev()
	require.Equal(t, fieldTags, f.field)
	f.next()
	require.Equal(t, fieldDate, f.field)
}

func TestFormTypeCycling(t *testing.T) {
	t.Parallel()

	f := newMovementForm()
	start := f.movementType()
	for range api.MovementTypes {
		f.cycleType(1)
	}
	require.Equal(t, start, f.movementType())

	f.cycleType(-1)
	require.Equal(t, api.MovementTypes[len(api.MovementTypes)-1], f.movementType())
}

func TestFormTypeFieldIgnoresTyping(t *testing.T) {
	t.Parallel()

	f := newMovementForm()
	f.field = fieldType
	f.append("x")
	f.backspace()
	require.Empty(t, f.inputs[fieldType])
}

func TestNormalizeTags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"food", []string{"food"}},
		{"food, food , travel", []string{"food", "travel"}},
		{" b ,a, b", []string{"b", "a"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeTags(tc.in), "input %q", tc.in)
	}
}

func TestAccountFormBuild(t *testing.T) {
	t.Parallel()

	var f accountForm
	f.append("Savings")
	f.next()
	f.append("250.75")

	a, err := f.build()
	require.NoError(t, err)
	assert.Equal(t, "Savings", a.Name)
	assert.Equal(t, "250.75", a.Amount.StringFixed(2))
}

func TestAccountFormBuildRejectsBlankName(t *testing.T) {
	t.Parallel()

	f := accountForm{name: "  ", amount: "10"}
	_, err := f.build()
	require.EqualError(t, err, "Account name must not be empty")
}

func TestAccountFormBuildRejectsBadAmount(t *testing.T) {
	t.Parallel()

	f := accountForm{name: "Savings", amount: "lots"}
	_, err := f.build()
	require.EqualError(t, err, "Opening balance must be a number")
}
