package availability

import (
	"testing"
	"time"

	"mazza/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestIsOpen_SameDayWindow(t *testing.T) {
	// 09:00-22:00
	assert.True(t, IsOpen(540, 1320, 600))   // 10:00
	assert.True(t, IsOpen(540, 1320, 540))   // boundary open
	assert.True(t, IsOpen(540, 1320, 1320))  // boundary close
	assert.False(t, IsOpen(540, 1320, 60))   // 01:00
	assert.False(t, IsOpen(540, 1320, 1321)) // one past close
}

func TestIsOpen_WraparoundWindow(t *testing.T) {
	// 22:00-06:00 wraps past midnight
	assert.True(t, IsOpen(1320, 360, 1380)) // 23:00
	assert.True(t, IsOpen(1320, 360, 300))  // 05:00
	assert.True(t, IsOpen(1320, 360, 0))    // midnight
	assert.False(t, IsOpen(1320, 360, 720)) // noon
}

func TestProductVisible(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	soon := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)
	later := now.Add(2 * time.Hour)

	tests := []struct {
		name    string
		product *entity.Product
		want    bool
	}{
		{
			name:    "active inside window",
			product: &entity.Product{IsActive: true, AvailableUntil: soon},
			want:    true,
		},
		{
			name:    "inactive",
			product: &entity.Product{IsActive: false, AvailableUntil: soon},
			want:    false,
		},
		{
			name:    "past deadline",
			product: &entity.Product{IsActive: true, AvailableUntil: earlier},
			want:    false,
		},
		{
			name:    "deadline is exclusive",
			product: &entity.Product{IsActive: true, AvailableUntil: now},
			want:    false,
		},
		{
			name:    "before start",
			product: &entity.Product{IsActive: true, AvailableFrom: &soon, AvailableUntil: later},
			want:    false,
		},
		{
			name:    "after start",
			product: &entity.Product{IsActive: true, AvailableFrom: &earlier, AvailableUntil: soon},
			want:    true,
		},
		{
			name:    "nil product",
			product: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductVisible(tt.product, now))
		})
	}
}

func TestClock_AppliesUTCOffset(t *testing.T) {
	// 20:30 UTC with a +5h offset is 01:30 local
	fixed := time.Date(2026, 8, 31, 20, 30, 0, 0, time.UTC)
	clock := NewClockAt(300, func() time.Time { return fixed })

	assert.Equal(t, 90, clock.NowMinute())

	store := &entity.Store{OpensAtMinute: 1320, ClosesAtMinute: 360} // 22:00-06:00
	assert.True(t, clock.StoreOpen(store))

	dayStore := &entity.Store{OpensAtMinute: 540, ClosesAtMinute: 1320} // 09:00-22:00
	assert.False(t, clock.StoreOpen(dayStore))
}

func TestClock_ZeroOffsetUsesUTCMinute(t *testing.T) {
	fixed := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	clock := NewClockAt(0, func() time.Time { return fixed })

	assert.Equal(t, 600, clock.NowMinute())
}
