package coa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrel/books/internal/errs"
	"github.com/fyrel/books/internal/ledger"
)

func TestAdd_ComputesFamily(t *testing.T) {
	r := New()
	cases := map[string]ledger.Family{
		"1101": ledger.FamilyAsset,
		"2101": ledger.FamilyLiability,
		"3101": ledger.FamilyEquity,
		"4101": ledger.FamilyRevenue,
		"5101": ledger.FamilyExpense,
		"9999": ledger.FamilyUnknown,
	}
	for code, want := range cases {
		a, err := r.Add(ledger.Account{Code: code, Name: "Cuenta " + code, Type: ledger.AccountDetail})
		require.NoError(t, err)
		assert.Equal(t, want, a.Family, "code %s", code)
	}
}

func TestAdd_DuplicateCode(t *testing.T) {
	r := New()
	_, err := r.Add(ledger.Account{Code: "1101", Name: "Caja", Type: ledger.AccountDetail})
	require.NoError(t, err)
	_, err = r.Add(ledger.Account{Code: "1101", Name: "Caja Chica", Type: ledger.AccountDetail})
	require.ErrorIs(t, err, errs.ErrDuplicateCode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		acc  ledger.Account
	}{
		{"missing code", ledger.Account{Name: "Caja", Type: ledger.AccountDetail}},
		{"missing name", ledger.Account{Code: "1101", Type: ledger.AccountDetail}},
		{"bad type", ledger.Account{Code: "1101", Name: "Caja", Type: "group"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, Validate(tt.acc), errs.ErrInvalid)
		})
	}
}

func TestUpdate(t *testing.T) {
	r := New()
	_, err := r.Add(ledger.Account{Code: "1101", Name: "Caja", Type: ledger.AccountDetail})
	require.NoError(t, err)

	updated, err := r.Update(ledger.Account{Code: "1101", Name: "Caja General", Type: ledger.AccountDetail})
	require.NoError(t, err)
	assert.Equal(t, "Caja General", updated.Name)
	assert.Equal(t, ledger.FamilyAsset, updated.Family)

	_, err = r.Update(ledger.Account{Code: "7777", Name: "Nada", Type: ledger.AccountDetail})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDelete_NoReferentialCheck(t *testing.T) {
	r := New()
	for _, a := range DefaultChart() {
		_, err := r.Add(a)
		require.NoError(t, err)
	}
	// Deleting an account the posting rules use is allowed; the ledger
	// aggregator drops orphaned lines instead.
	require.NoError(t, r.Delete(ledger.CodeSales))
	_, ok := r.Lookup(ledger.CodeSales)
	assert.False(t, ok)
	require.ErrorIs(t, r.Delete(ledger.CodeSales), errs.ErrNotFound)
}

func TestAll_InsertionOrder(t *testing.T) {
	r := New()
	codes := []string{"3101", "1101", "2101"}
	for _, c := range codes {
		_, err := r.Add(ledger.Account{Code: c, Name: "Cuenta " + c, Type: ledger.AccountDetail})
		require.NoError(t, err)
	}
	all := r.All()
	require.Len(t, all, 3)
	for i, c := range codes {
		assert.Equal(t, c, all[i].Code)
	}
}

func TestReplace(t *testing.T) {
	r := New()
	_, err := r.Add(ledger.Account{Code: "1101", Name: "Caja", Type: ledger.AccountDetail})
	require.NoError(t, err)

	r.Replace([]ledger.Account{
		{Code: "2101", Name: "Proveedores", Type: ledger.AccountDetail},
		{Code: "2101", Name: "Duplicada", Type: ledger.AccountDetail},
		{Code: "4101", Name: "Ventas", Type: ledger.AccountDetail, Family: "bogus"},
	})
	all := r.All()
	require.Len(t, all, 2, "duplicates in the snapshot are skipped")
	assert.Equal(t, "Proveedores", all[0].Name)
	assert.Equal(t, ledger.FamilyRevenue, all[1].Family, "families are recomputed on restore")
}

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart()
	require.Len(t, chart, 19)
	byCode := make(map[string]ledger.Account, len(chart))
	for _, a := range chart {
		byCode[a.Code] = a
	}
	for _, code := range []string{
		ledger.CodeCash, ledger.CodeBank, ledger.CodeReceivable, ledger.CodeInventory,
		ledger.CodePayable, ledger.CodeCapital, ledger.CodeSales, ledger.CodeOtherIncome,
		ledger.CodeCostOfSales, ledger.CodeAdminExp,
	} {
		a, ok := byCode[code]
		require.True(t, ok, "posting code %s must be in the default chart", code)
		assert.Equal(t, ledger.AccountDetail, a.Type, "posting code %s must be postable", code)
	}
}
