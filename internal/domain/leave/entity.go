package leave

import "github.com/hrsvr/hr-backend-go/internal/domain/application"

// Kind is a leave balance bucket.
type Kind string

const (
	KindAnnual      Kind = "연차휴가"
	KindBereavement Kind = "경조사휴가"
	KindSick        Kind = "병가휴가"
	KindPublic      Kind = "공가 휴가"
)

// Kinds lists the buckets in display order.
var Kinds = []Kind{KindAnnual, KindBereavement, KindSick, KindPublic}

const halfDay = 0.5

// Consumption returns the bucket an application draws from and how many
// days it consumes. Full-day types consume (end-start).days+1, at least one
// day; AM/PM half days consume 0.5 of annual leave. Other types consume
// nothing and report ok=false.
func Consumption(app application.Application) (kind Kind, days float64, ok bool) {
	switch app.Type {
	case application.TypeAnnualLeave:
		return KindAnnual, fullDays(app), true
	case application.TypeHalfDayAM, application.TypeHalfDayPM:
		return KindAnnual, halfDay, true
	case application.TypeSickLeave:
		return KindSick, fullDays(app), true
	case application.TypeBereavement:
		return KindBereavement, fullDays(app), true
	}
	return "", 0, false
}

func fullDays(app application.Application) float64 {
	days := app.CalendarDays()
	if days < 1 {
		days = 1
	}
	return float64(days)
}

// Usage is the consumed days per bucket.
type Usage map[Kind]float64

// Tally sums the consumption of apps. Callers pass approved applications only.
func Tally(apps []application.Application) Usage {
	usage := Usage{}
	for _, app := range apps {
		if kind, days, ok := Consumption(app); ok {
			usage[kind] += days
		}
	}
	return usage
}

// Balance is the annual entitlement minus annual usage. Sick and
// bereavement leave never reduce it.
func Balance(entitlement float64, usage Usage) float64 {
	return entitlement - usage[KindAnnual]
}
