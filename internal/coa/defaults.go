package coa

import "github.com/fyrel/books/internal/ledger"

// DefaultChart returns the chart of accounts seeded on first run. Header
// accounts are structural; the posting rules only ever touch detail codes.
func DefaultChart() []ledger.Account {
	defs := []struct {
		code string
		name string
		typ  ledger.AccountType
	}{
		{"1000", "Activos", ledger.AccountHeader},
		{"1100", "Activos Corrientes", ledger.AccountHeader},
		{"1101", "Caja", ledger.AccountDetail},
		{"1102", "Bancos", ledger.AccountDetail},
		{"1103", "Cuentas por Cobrar Clientes", ledger.AccountDetail},
		{"1200", "Inventario", ledger.AccountHeader},
		{"1201", "Inventario de Mercancías", ledger.AccountDetail},
		{"2000", "Pasivos", ledger.AccountHeader},
		{"2100", "Pasivos Corrientes", ledger.AccountHeader},
		{"2101", "Cuentas por Pagar Proveedores", ledger.AccountDetail},
		{"3000", "Patrimonio", ledger.AccountHeader},
		{"3101", "Capital Social", ledger.AccountDetail},
		{"4000", "Ingresos", ledger.AccountHeader},
		{"4101", "Ventas", ledger.AccountDetail},
		{"4102", "Ingresos por Servicios", ledger.AccountDetail},
		{"5000", "Gastos", ledger.AccountHeader},
		{"5101", "Costo de Ventas", ledger.AccountDetail},
		{"5102", "Gastos Operativos", ledger.AccountDetail},
		{"5103", "Gastos de Administración", ledger.AccountDetail},
	}
	out := make([]ledger.Account, 0, len(defs))
	for _, d := range defs {
		out = append(out, ledger.Account{
			Code:   d.code,
			Name:   d.name,
			Type:   d.typ,
			Family: ledger.FamilyOf(d.code),
		})
	}
	return out
}
