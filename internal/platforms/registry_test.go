package platforms

import (
	"context"
	"testing"

	"github.com/getmentor/mentor-aggregator/internal/models"
	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listOnlyAdapter struct{ platform models.Platform }

func (a listOnlyAdapter) Platform() models.Platform { return a.platform }

func (a listOnlyAdapter) FetchMentors(context.Context, models.MentorFilters) []*models.Mentor {
	return nil
}

func TestRegistry_OrderAndLookup(t *testing.T) {
	opts := Options{Now: fixedClock}
	adp := NewADPListAdapter(nil, NewCalendlyBackend(nil, opts), opts)
	mc := NewMentorCruiseAdapter(nil, NewCalComBackend(nil, opts), opts)

	registry := NewRegistry(mc, adp)

	adapters := registry.Adapters()
	require.Len(t, adapters, 2)
	assert.Equal(t, models.PlatformMentorCruise, adapters[0].Platform())
	assert.Equal(t, models.PlatformADPList, adapters[1].Platform())

	got, ok := registry.Get(models.PlatformADPList)
	assert.True(t, ok)
	assert.Same(t, adp, got)

	_, ok = registry.Get(models.PlatformIndependent)
	assert.False(t, ok)
}

func TestRegistry_Capabilities(t *testing.T) {
	opts := Options{Now: fixedClock}
	registry := NewRegistry(
		NewADPListAdapter(nil, NewCalendlyBackend(nil, opts), opts),
		listOnlyAdapter{platform: models.PlatformIndependent},
	)

	scheduler, err := registry.Scheduler(models.PlatformADPList)
	require.NoError(t, err)
	assert.NotNil(t, scheduler)

	_, err = registry.Scheduler(models.PlatformIndependent)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation)

	_, err = registry.Messenger(models.PlatformIndependent)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation)

	_, err = registry.Messenger("unknown")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(
			listOnlyAdapter{platform: models.PlatformADPList},
			listOnlyAdapter{platform: models.PlatformADPList},
		)
	})
}
