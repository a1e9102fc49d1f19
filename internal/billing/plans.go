package billing

// Plan identifiers stored on the hotels table.
const (
	PlanFree       = "free"
	PlanStarter    = "starter"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Limits caps what a hotel on a given plan may provision.
// -1 means unlimited.
type Limits struct {
	MaxRooms            int
	MaxBookingsPerCycle int
	MaxStaff            int
}

// Plan is a subscription tier offered to hotels.
type Plan struct {
	ID           string
	Name         string
	MonthlyPrice float64
	Limits       Limits
}

// plans is the catalog, ordered cheapest first.
var plans = []Plan{
	{
		ID:           PlanFree,
		Name:         "Free",
		MonthlyPrice: 0,
		Limits:       Limits{MaxRooms: 5, MaxBookingsPerCycle: 50, MaxStaff: 1},
	},
	{
		ID:           PlanStarter,
		Name:         "Starter",
		MonthlyPrice: 29,
		Limits:       Limits{MaxRooms: 25, MaxBookingsPerCycle: 500, MaxStaff: 3},
	},
	{
		ID:           PlanPro,
		Name:         "Pro",
		MonthlyPrice: 99,
		Limits:       Limits{MaxRooms: 100, MaxBookingsPerCycle: 2000, MaxStaff: 10},
	},
	{
		ID:           PlanEnterprise,
		Name:         "Enterprise",
		MonthlyPrice: 299,
		Limits:       Limits{MaxRooms: -1, MaxBookingsPerCycle: -1, MaxStaff: -1},
	},
}

// Plans returns the full plan catalog.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks up a plan by its identifier.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func withinLimit(limit, usage int) bool {
	if limit == -1 {
		return true
	}
	return usage <= limit
}

// AllowsRooms reports whether the plan permits the given total room count.
func (p Plan) AllowsRooms(count int) bool {
	return withinLimit(p.Limits.MaxRooms, count)
}

// AllowsBookings reports whether the plan permits the given number of
// bookings within a billing cycle.
func (p Plan) AllowsBookings(count int) bool {
	return withinLimit(p.Limits.MaxBookingsPerCycle, count)
}

// AllowsStaff reports whether the plan permits the given total staff count
// (owner included).
func (p Plan) AllowsStaff(count int) bool {
	return withinLimit(p.Limits.MaxStaff, count)
}
