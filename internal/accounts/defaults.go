package accounts

import "github.com/dealerbooks/dealerbooks/internal/model"

// DefaultChart returns the starting chart of accounts for a dealership.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: 1010, Code: "1.1.01", Name: "Caja", Type: model.AccountTypeAsset},
		{ID: 1020, Code: "1.1.02", Name: "Bancos", Type: model.AccountTypeAsset},
		{ID: 1030, Code: "1.1.03", Name: "Cuentas por Cobrar", Type: model.AccountTypeAsset},
		{ID: 1040, Code: "1.1.04", Name: "Inventario de Vehículos", Type: model.AccountTypeAsset},
		{ID: 2010, Code: "2.1.01", Name: "Proveedores", Type: model.AccountTypeLiability},
		{ID: 2020, Code: "2.1.02", Name: "Cuentas por Pagar", Type: model.AccountTypeLiability},
		{ID: 2030, Code: "2.2.01", Name: "Préstamos Bancarios", Type: model.AccountTypeLiability},
		{ID: 3010, Code: "3.1.01", Name: "Capital Social", Type: model.AccountTypeEquity},
		{ID: 3020, Code: "3.1.02", Name: "Utilidades Retenidas", Type: model.AccountTypeEquity},
		{ID: 4010, Code: "4.1.01", Name: "Ventas de Vehículos", Type: model.AccountTypeRevenue},
		{ID: 4020, Code: "4.1.02", Name: "Servicios de Taller", Type: model.AccountTypeRevenue},
		{ID: 5010, Code: "5.1.01", Name: "Costo de Ventas", Type: model.AccountTypeExpense},
		{ID: 5020, Code: "5.2.01", Name: "Gastos Operativos", Type: model.AccountTypeExpense},
		{ID: 5030, Code: "5.2.02", Name: "Gastos Administrativos", Type: model.AccountTypeExpense},
		{ID: 5040, Code: "5.3.01", Name: "Gastos Financieros", Type: model.AccountTypeExpense},
	}
}
