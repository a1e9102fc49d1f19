package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCatalog(t *testing.T) {
	plans := Plans()
	require.Len(t, plans, 4)

	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{PlanFree, PlanStarter, PlanPro, PlanEnterprise}, ids)
}

func TestPlanByID(t *testing.T) {
	p, ok := PlanByID(PlanPro)
	require.True(t, ok)
	assert.Equal(t, "Pro", p.Name)
	assert.InDelta(t, 99.0, p.MonthlyPrice, 0.0001)

	_, ok = PlanByID("platinum")
	assert.False(t, ok)
}

func TestPlanLimits(t *testing.T) {
	free, _ := PlanByID(PlanFree)
	assert.True(t, free.AllowsRooms(5))
	assert.False(t, free.AllowsRooms(6))
	assert.True(t, free.AllowsBookings(50))
	assert.False(t, free.AllowsBookings(51))
	assert.True(t, free.AllowsStaff(1))
	assert.False(t, free.AllowsStaff(2))

	starter, _ := PlanByID(PlanStarter)
	assert.True(t, starter.AllowsRooms(25))
	assert.False(t, starter.AllowsRooms(26))

	enterprise, _ := PlanByID(PlanEnterprise)
	assert.True(t, enterprise.AllowsRooms(10000))
	assert.True(t, enterprise.AllowsBookings(1000000))
	assert.True(t, enterprise.AllowsStaff(500))
}
