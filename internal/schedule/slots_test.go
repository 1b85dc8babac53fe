package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowbook/internal/common/errors"
	"glowbook/internal/models"
)

type fakeSlotSource struct {
	slots []models.Slot
	calls int
}

func (f *fakeSlotSource) AvailableSlots(ctx context.Context, businessID, serviceID string, staffID *string, date time.Time) ([]models.Slot, error) {
	f.calls++
	return f.slots, nil
}

func fixedResolver(source SlotSource, at time.Time) *Resolver {
	r := NewResolver(source)
	r.now = func() time.Time { return at }
	return r
}

func TestResolveRejectsPastDate(t *testing.T) {
	source := &fakeSlotSource{}
	resolver := fixedResolver(source, now)

	_, err := resolver.Resolve(context.Background(), "biz-1", "svc-1", nil, now.Add(-48*time.Hour))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Zero(t, source.calls)
}

func TestResolveTodayIsAllowed(t *testing.T) {
	source := &fakeSlotSource{}
	resolver := fixedResolver(source, now)

	// Earlier on the same calendar day still counts as today.
	_, err := resolver.Resolve(context.Background(), "biz-1", "svc-1", nil, now.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestResolveClassifiesDays(t *testing.T) {
	tests := []struct {
		name            string
		slots           []models.Slot
		wantEmpty       bool
		wantFullyBooked bool
		wantAvailable   int
	}{
		{
			name:      "no slots at all",
			slots:     nil,
			wantEmpty: true,
		},
		{
			name: "every slot taken",
			slots: []models.Slot{
				{Time: now.Add(24 * time.Hour), Available: false},
				{Time: now.Add(25 * time.Hour), Available: false},
			},
			wantFullyBooked: true,
		},
		{
			name: "mixed",
			slots: []models.Slot{
				{Time: now.Add(24 * time.Hour), Available: true},
				{Time: now.Add(25 * time.Hour), Available: false},
			},
			wantAvailable: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := fixedResolver(&fakeSlotSource{slots: tt.slots}, now)
			list, err := resolver.Resolve(context.Background(), "biz-1", "svc-1", nil, now.Add(24*time.Hour))
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmpty, list.Empty())
			assert.Equal(t, tt.wantFullyBooked, list.FullyBooked())
			assert.Len(t, list.Available, tt.wantAvailable)
		})
	}
}

func TestSlotListContains(t *testing.T) {
	at := now.Add(24 * time.Hour)
	list := SlotList{
		All:       []models.Slot{{Time: at, Available: true}},
		Available: []models.Slot{{Time: at, Available: true}},
	}
	assert.True(t, list.Contains(at))
	assert.False(t, list.Contains(at.Add(time.Hour)))
}
