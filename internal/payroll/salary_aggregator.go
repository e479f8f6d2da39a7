package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-payroll/internal/salarycomponent"
)

// ComponentAmount adalah satu assignment beserta tipe komponennya,
// bahan mentah agregasi.
type ComponentAmount struct {
	SalaryComponentID uuid.UUID
	ComponentName     string
	ComponentType     string
	Amount            decimal.Decimal
}

// SalaryBreakdown adalah hasil agregasi assignment per tipe.
// base_salary dijumlahkan, bukan diambil satu: karyawan boleh punya
// lebih dari satu komponen base_salary.
type SalaryBreakdown struct {
	BaseSalary      decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	Components      []ComponentAmount
}

// AggregateComponents menjumlahkan assignment per tipe komponen.
// Karyawan tanpa assignment menghasilkan breakdown nol, bukan error.
func AggregateComponents(components []ComponentAmount) SalaryBreakdown {
	breakdown := SalaryBreakdown{
		BaseSalary:      decimal.Zero,
		TotalAllowances: decimal.Zero,
		TotalDeductions: decimal.Zero,
		Components:      components,
	}

	for _, c := range components {
		switch c.ComponentType {
		case salarycomponent.TypeBaseSalary:
			breakdown.BaseSalary = breakdown.BaseSalary.Add(c.Amount)
		case salarycomponent.TypeAllowance:
			breakdown.TotalAllowances = breakdown.TotalAllowances.Add(c.Amount)
		case salarycomponent.TypeDeduction:
			breakdown.TotalDeductions = breakdown.TotalDeductions.Add(c.Amount)
		}
	}

	return breakdown
}

// computeTotals menghitung ulang gross/net dari snapshot plus
// penyesuaian yang sedang berlaku pada record.
//
//	gross = base + allowances + overtime + bonus
//	net   = gross - deductions
//
// Penyesuaian null dihitung nol.
func computeTotals(record *PayrollRecord) {
	gross := record.BaseSalary.Add(record.TotalAllowances)
	if record.OvertimeAmount.Valid {
		gross = gross.Add(record.OvertimeAmount.Decimal)
	}
	if record.BonusAmount.Valid {
		gross = gross.Add(record.BonusAmount.Decimal)
	}

	record.GrossSalary = gross
	record.NetSalary = gross.Sub(record.TotalDeductions)
}
