package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

func multiCrop() *domain.CropDefinition {
	return &domain.CropDefinition{
		Name:            "Blueberry",
		Season:          domain.SeasonSummer,
		HarvestKind:     domain.HarvestMulti,
		HarvestsPerSeed: 3,
		SeedCost:        80,
		Prices:          domain.TierPrices{Base: 50, Silver: 62, Gold: 75},
		Jar:             domain.ProductPrice{Base: 150, Artisan: 210},
		Keg:             domain.ProductPrice{Base: 100, Artisan: 150},
	}
}

func row(seeds int, alloc domain.Allocation) domain.AllocationRow {
	return domain.AllocationRow{ID: "row-1", CropName: "Blueberry", SeedCount: seeds, Allocation: alloc}
}

func TestValidateCapacity(t *testing.T) {
	crop := multiCrop()

	tests := []struct {
		name     string
		row      domain.AllocationRow
		expected domain.CapacityResult
	}{
		{
			name:     "exactly at capacity",
			row:      row(4, domain.Allocation{Sold: 12}),
			expected: domain.CapacityResult{OK: true, Harvest: 12, Allocated: 12},
		},
		{
			name:     "under capacity",
			row:      row(4, domain.Allocation{Sold: 5, Jarred: 2}),
			expected: domain.CapacityResult{OK: true, Harvest: 12, Allocated: 7},
		},
		{
			name:     "over capacity",
			row:      row(4, domain.Allocation{Sold: 13}),
			expected: domain.CapacityResult{OK: false, Excess: 1, Harvest: 12, Allocated: 13},
		},
		{
			name:     "spread across channels",
			row:      row(2, domain.Allocation{Sold: 2, Jarred: 2, Kegged: 4}),
			expected: domain.CapacityResult{OK: false, Excess: 2, Harvest: 6, Allocated: 8},
		},
		{
			name:     "inactive row is exempt",
			row:      row(0, domain.Allocation{Sold: 50}),
			expected: domain.CapacityResult{OK: true, Allocated: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateCapacity(tt.row, crop))
		})
	}
}

func TestReconcile(t *testing.T) {
	crop := multiCrop()

	t.Run("reduces the edited channel by the excess", func(t *testing.T) {
		got := Reconcile(row(4, domain.Allocation{Sold: 13}), crop, domain.ChannelSold)
		assert.Equal(t, 12, got.Sold)
		assert.True(t, ValidateCapacity(got, crop).OK)
	})

	t.Run("leaves other channels untouched", func(t *testing.T) {
		got := Reconcile(row(4, domain.Allocation{Sold: 6, Kegged: 10}), crop, domain.ChannelKegged)
		assert.Equal(t, 6, got.Sold)
		assert.Equal(t, 6, got.Kegged)
	})

	t.Run("within capacity is unchanged", func(t *testing.T) {
		in := row(4, domain.Allocation{Sold: 3, Jarred: 3})
		assert.Equal(t, in, Reconcile(in, crop, domain.ChannelJarred))
	})

	t.Run("edited channel floors at zero and row stays over capacity", func(t *testing.T) {
		in := row(2, domain.Allocation{Sold: 6, Jarred: 3})
		got := Reconcile(in, crop, domain.ChannelJarred)
		assert.Equal(t, 0, got.Jarred)
		assert.Equal(t, 6, got.Sold)
		assert.True(t, ValidateCapacity(got, crop).OK)

		in = row(2, domain.Allocation{Sold: 9, Jarred: 0})
		got = Reconcile(in, crop, domain.ChannelJarred)
		assert.Equal(t, in, got)
		assert.Equal(t, 3, ValidateCapacity(got, crop).Excess)
	})

	t.Run("increasing edit from a valid row restores capacity", func(t *testing.T) {
		base := domain.Allocation{Sold: 4, Jarred: 3, Kegged: 2}
		for _, ch := range domain.Channels {
			for bump := 1; bump <= 20; bump++ {
				edited := base.With(ch, base.Quantity(ch)+bump)
				got := Reconcile(row(4, edited), crop, ch)
				assert.True(t, ValidateCapacity(got, crop).OK, "channel=%s bump=%d", ch, bump)
			}
		}
	})
}

func TestReconcileWithCorrection(t *testing.T) {
	crop := multiCrop()

	t.Run("reports the correction", func(t *testing.T) {
		got, correction, changed := ReconcileWithCorrection(row(4, domain.Allocation{Sold: 13}), crop, domain.ChannelSold)
		assert.True(t, changed)
		assert.Equal(t, 12, got.Sold)
		assert.Equal(t, domain.Correction{
			RowID:     "row-1",
			Channel:   domain.ChannelSold,
			Requested: 13,
			Applied:   12,
			Excess:    1,
		}, correction)
	})

	t.Run("reports leftover excess", func(t *testing.T) {
		_, correction, changed := ReconcileWithCorrection(row(1, domain.Allocation{Sold: 3, Kegged: 2}), crop, domain.ChannelKegged)
		assert.True(t, changed)
		assert.Equal(t, 0, correction.Applied)
		assert.Equal(t, 2, correction.Excess)
		assert.Equal(t, 0, correction.Remaining)

		_, correction, changed = ReconcileWithCorrection(row(1, domain.Allocation{Sold: 5, Kegged: 1}), crop, domain.ChannelKegged)
		assert.True(t, changed)
		assert.Equal(t, 3, correction.Excess)
		assert.Equal(t, 2, correction.Remaining)
	})

	t.Run("no correction needed", func(t *testing.T) {
		_, correction, changed := ReconcileWithCorrection(row(4, domain.Allocation{Sold: 1}), crop, domain.ChannelSold)
		assert.False(t, changed)
		assert.Equal(t, domain.Correction{}, correction)
	})
}

func TestClear(t *testing.T) {
	in := row(4, domain.Allocation{Sold: 1, Jarred: 2, Kegged: 3, Aged: 4})

	cleared := ClearAllocation(in)
	assert.Equal(t, domain.Allocation{}, cleared.Allocation)
	assert.Equal(t, "Blueberry", cleared.CropName)
	assert.Equal(t, 4, cleared.SeedCount)

	deselected := ClearSelection(in)
	assert.Equal(t, domain.AllocationRow{ID: "row-1"}, deselected)
}

func TestClampAllocation(t *testing.T) {
	got := ClampAllocation(domain.Allocation{Sold: -2, Jarred: 3, Kegged: 4, Aged: 5}, multiCrop())
	assert.Equal(t, domain.Allocation{Jarred: 3, Kegged: 4}, got)

	got = ClampAllocation(domain.Allocation{Sold: 1, Aged: -1}, nil)
	assert.Equal(t, domain.Allocation{Sold: 1}, got)
}
