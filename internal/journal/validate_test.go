package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forzencookie/scope-ai-sub007/internal/id"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts map[string]bool

func (m mockAccounts) Exists(code string) bool { return m[code] }

func newMockAccounts(codes ...string) mockAccounts {
	m := make(mockAccounts)
	for _, c := range codes {
		m[c] = true
	}
	return m
}

var defaultAccounts = newMockAccounts("1510", "1930", "2611", "2640", "3001", "5010", "6110")

func transfer(seq int, debit, credit, amount string) model.Verification {
	return model.Verification{
		ID:   id.Verification(2025, 1, seq),
		Date: date(2025, 1, 15),
		Rows: []model.Posting{
			{Account: debit, Debit: dec(amount)},
			{Account: credit, Credit: dec(amount)},
		},
	}
}

func invariants(errs []ValidationError) []int {
	out := make([]int, len(errs))
	for i, e := range errs {
		out[i] = e.Invariant
	}
	return out
}

func TestValidate_Balanced(t *testing.T) {
	errs := ValidateMonth([]model.Verification{transfer(1, "5010", "1930", "100.00")}, defaultAccounts, 2025, 1)
	assert.Empty(t, errs)
}

func TestValidate_Invariant1_Unbalanced(t *testing.T) {
	v := transfer(1, "5010", "1930", "100.00")
	v.Rows[1].Credit = dec("99.00")

	errs := ValidateMonth([]model.Verification{v}, defaultAccounts, 2025, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Equal(t, "2025-01-001", errs[0].EntryID)
	assert.Contains(t, errs[0].Description, "100.00")
	assert.Contains(t, errs[0].Description, "99.00")
}

func TestValidate_Invariant2_BothSides(t *testing.T) {
	v := transfer(1, "5010", "1930", "100.00")
	v.Rows[0].Credit = dec("100.00")
	v.Rows[1].Debit = dec("100.00")

	errs := ValidateMonth([]model.Verification{v}, defaultAccounts, 2025, 1)
	assert.Equal(t, []int{2, 2}, invariants(errs))
	assert.Equal(t, "2025-01-001a", errs[0].EntryID)
	assert.Equal(t, "2025-01-001b", errs[1].EntryID)
}

func TestValidate_Invariant2_Negative(t *testing.T) {
	v := transfer(1, "5010", "1930", "-100.00")
	errs := ValidateMonth([]model.Verification{v}, defaultAccounts, 2025, 1)
	assert.Equal(t, []int{2, 2}, invariants(errs))
}

func TestValidate_Invariant3_UnknownAccount(t *testing.T) {
	errs := ValidateMonth([]model.Verification{transfer(1, "9999", "1930", "10")}, defaultAccounts, 2025, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "9999")
}

func TestValidate_Invariant4_WrongMonth(t *testing.T) {
	v := transfer(1, "5010", "1930", "10")
	v.Date = date(2025, 2, 1)
	errs := ValidateMonth([]model.Verification{v}, defaultAccounts, 2025, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, 4, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "2025-01")
}

func TestValidate_Invariant5_NonContiguousSeq(t *testing.T) {
	vers := []model.Verification{
		transfer(1, "5010", "1930", "10"),
		transfer(3, "5010", "1930", "10"),
	}
	errs := ValidateMonth(vers, defaultAccounts, 2025, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "missing sequence 2")
}

func TestValidate_Invariant5_Duplicate(t *testing.T) {
	vers := []model.Verification{
		transfer(1, "5010", "1930", "10"),
		transfer(1, "6110", "1930", "5"),
	}
	errs := ValidateMonth(vers, defaultAccounts, 2025, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "duplicate")
}

func TestValidate_Invariant6_TooManyDecimals(t *testing.T) {
	errs := ValidateMonth([]model.Verification{transfer(1, "5010", "1930", "10.005")}, defaultAccounts, 2025, 1)
	assert.Equal(t, []int{6, 6}, invariants(errs))
	assert.Contains(t, errs[0].Description, "debit")
	assert.Contains(t, errs[1].Description, "credit")
}

func TestValidate_MultiError(t *testing.T) {
	v := transfer(1, "9999", "1930", "10.001")
	v.Rows[1].Credit = dec("5")
	errs := ValidateMonth([]model.Verification{v}, defaultAccounts, 2025, 1)
	assert.ElementsMatch(t, []int{1, 3, 6}, invariants(errs))
}

func TestValidate_Empty(t *testing.T) {
	assert.Empty(t, ValidateMonth(nil, defaultAccounts, 2025, 1))
}

func TestValidate_MultiRowBalanced(t *testing.T) {
	v := invoice("2025-01-001", date(2025, 1, 3))
	assert.Empty(t, ValidateMonth([]model.Verification{v}, defaultAccounts, 2025, 1))
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Invariant: 3, EntryID: "2025-01-001a", Description: "unknown account 9999"}
	assert.Equal(t, "invariant 3 [2025-01-001a]: unknown account 9999", e.Error())
}
