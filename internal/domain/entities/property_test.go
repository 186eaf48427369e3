package entities

import "testing"

func TestFloorPlanUsableArea(t *testing.T) {
	areas := map[FloorPlan]float64{
		FloorPlanStudio:       32,
		FloorPlanOneBedroom:   45,
		FloorPlanTwoBedroom:   62,
		FloorPlanThreeBedroom: 85,
		FloorPlanPenthouse:    120,
	}
	for plan, want := range areas {
		if got := plan.UsableArea(); got != want {
			t.Fatalf("%s: expected %v, got %v", plan, want, got)
		}
		if !plan.Valid() {
			t.Fatalf("%s: expected valid", plan)
		}
	}

	if FloorPlan("Loft").Valid() {
		t.Fatalf("expected invalid plan")
	}
	if got := FloorPlan("Loft").UsableArea(); got != 0 {
		t.Fatalf("expected 0 for unknown plan, got %v", got)
	}
}

func TestPropertyStatusValid(t *testing.T) {
	for _, s := range []PropertyStatus{
		PropertyStatusAvailableForSale,
		PropertyStatusAvailableForRent,
		PropertyStatusReserved,
		PropertyStatusRentedActive,
		PropertyStatusSold,
	} {
		if !s.Valid() {
			t.Fatalf("%s: expected valid", s)
		}
	}
	if PropertyStatus("Hidden").Valid() {
		t.Fatalf("expected invalid status")
	}
}
