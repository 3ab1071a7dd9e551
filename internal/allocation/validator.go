// Package allocation enforces the capacity invariant on allocation rows.
package allocation

import (
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/pricing"
)

// ValidateCapacity compares a row's allocated units with its harvest total.
// Inactive rows are always within capacity.
func ValidateCapacity(row domain.AllocationRow, crop *domain.CropDefinition) domain.CapacityResult {
	allocated := row.Total()
	if !row.IsActive() || crop == nil {
		return domain.CapacityResult{OK: true, Allocated: allocated}
	}

	harvest := pricing.HarvestTotal(crop, row.SeedCount)
	result := domain.CapacityResult{OK: true, Harvest: harvest, Allocated: allocated}
	if allocated > harvest {
		result.OK = false
		result.Excess = allocated - harvest
	}
	return result
}

// Reconcile applies the last-writer-wins correction after an edit to changed.
// Only the edited channel is reduced, never below zero, so a row can stay over
// capacity when the excess comes from the other channels.
func Reconcile(row domain.AllocationRow, crop *domain.CropDefinition, changed domain.Channel) domain.AllocationRow {
	row, _ = reconcile(row, crop, changed)
	return row
}

// ReconcileWithCorrection is Reconcile that also reports what was changed.
// The bool is false when the row was already within capacity.
func ReconcileWithCorrection(row domain.AllocationRow, crop *domain.CropDefinition, changed domain.Channel) (domain.AllocationRow, domain.Correction, bool) {
	requested := row.Quantity(changed)
	excess := ValidateCapacity(row, crop).Excess

	out, applied := reconcile(row, crop, changed)
	if !applied {
		return out, domain.Correction{}, false
	}

	return out, domain.Correction{
		RowID:     row.ID,
		Channel:   changed,
		Requested: requested,
		Applied:   out.Quantity(changed),
		Excess:    excess,
		Remaining: ValidateCapacity(out, crop).Excess,
	}, true
}

func reconcile(row domain.AllocationRow, crop *domain.CropDefinition, changed domain.Channel) (domain.AllocationRow, bool) {
	check := ValidateCapacity(row, crop)
	if check.OK {
		return row, false
	}

	current := row.Quantity(changed)
	reduced := current - check.Excess
	if reduced < 0 {
		reduced = 0
	}
	row.Allocation = row.Allocation.With(changed, reduced)
	return row, true
}

// ClearAllocation zeroes every channel and leaves the crop and seed count alone
func ClearAllocation(row domain.AllocationRow) domain.AllocationRow {
	row.Allocation = domain.Allocation{}
	return row
}

// ClearSelection drops the crop choice, which also resets the seed count and channels
func ClearSelection(row domain.AllocationRow) domain.AllocationRow {
	row = ClearAllocation(row)
	row.CropName = ""
	row.SeedCount = 0
	return row
}

// ClampAllocation strips negative quantities and zeroes channels the crop cannot use
func ClampAllocation(alloc domain.Allocation, crop *domain.CropDefinition) domain.Allocation {
	for _, ch := range domain.Channels {
		qty := alloc.Quantity(ch)
		if qty < 0 || (crop != nil && !crop.ChannelAvailable(ch)) {
			alloc = alloc.With(ch, 0)
		}
	}
	return alloc
}
