package leave

import "time"

// Entitlement constants. The business treats these as policy configuration;
// changing an entitlement means editing this block.
const (
	// AnnualEntitlement is the full-year annual leave quota for confirmed
	// employees from their second calendar year.
	AnnualEntitlement = 14

	// MedicalEntitlement and CasualEntitlement apply per year regardless of
	// employment phase.
	MedicalEntitlement = 7
	CasualEntitlement  = 7

	// Probation employees get monthly quotas instead of the annual pool.
	ProbationMonthlyLeaveQuota = 2

	// MonthlyHalfDayQuota is the per-calendar-month half-day allowance. It
	// never rolls over.
	MonthlyHalfDayQuota = 2

	// Maternity leave runs 42 days, extended to 84 on medical grounds.
	MaternityDays         = 42
	MaternityExtendedDays = 84
)

// FirstYearAnnualEntitlement pro-rates the annual quota by join quarter.
func FirstYearAnnualEntitlement(joinMonth time.Month) int {
	switch {
	case joinMonth <= time.March:
		return 14
	case joinMonth <= time.June:
		return 10
	case joinMonth <= time.September:
		return 7
	default:
		return 4
	}
}

// AnnualEntitlementFor returns the annual quota for the given calendar year,
// pro-rated when the employee joined within it.
func AnnualEntitlementFor(joinDate time.Time, year int) int {
	if joinDate.Year() == year {
		return FirstYearAnnualEntitlement(joinDate.Month())
	}
	return AnnualEntitlement
}
