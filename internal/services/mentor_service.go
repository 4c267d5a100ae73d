package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/internal/platforms"
	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
	"github.com/getmentor/mentor-aggregator/pkg/logger"
	"github.com/getmentor/mentor-aggregator/pkg/metrics"
	"github.com/getmentor/mentor-aggregator/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MentorService aggregates mentors from every registered platform
type MentorService struct {
	registry *platforms.Registry
	opts     Options
}

// NewMentorService creates a new mentor service instance
func NewMentorService(registry *platforms.Registry, opts Options) *MentorService {
	return &MentorService{
		registry: registry,
		opts:     opts,
	}
}

// GetAllMentors fetches every platform concurrently, merges, filters and sorts.
// It never fails: if the aggregation itself breaks, the whole fallback dataset
// is returned as is.
func (s *MentorService) GetAllMentors(ctx context.Context, filters models.MentorFilters) []*models.Mentor {
	ctx, span := tracing.StartSpan(ctx, "mentors.aggregate",
		attribute.String("filters.expertise", filters.Expertise),
		attribute.String("filters.sort_by", string(filters.SortBy)),
	)

	collected, err := s.fetchAll(ctx, filters)
	if err != nil {
		tracing.EndSpan(span, err)
		logger.Error("Mentor aggregation failed, serving fallback dataset", zap.Error(err))
		metrics.FallbackResponses.WithLabelValues("all", "aggregate", "aggregation_failed").Inc()
		return platforms.FallbackMentors(s.opts.now())
	}

	if !s.opts.Production || len(collected) == 0 {
		collected = append(collected, platforms.FallbackMentors(s.opts.now())...)
	}

	mentors := FilterMentors(collected, filters)
	SortMentors(mentors, filters.SortBy)

	metrics.MentorsReturned.Observe(float64(len(mentors)))
	span.SetAttributes(attribute.Int("mentors.count", len(mentors)))
	tracing.EndSpan(span, nil)
	return mentors
}

// fetchAll waits for every adapter and concatenates results in registry order
func (s *MentorService) fetchAll(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
	adapters := s.registry.Adapters()
	results := make([][]*models.Mentor, len(adapters))

	var g errgroup.Group
	for i, adapter := range adapters {
		i, adapter := i, adapter
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s adapter panicked: %v", adapter.Platform(), r)
				}
			}()
			results[i] = adapter.FetchMentors(ctx, filters)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []*models.Mentor
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// GetMentorByID finds a mentor in the unfiltered aggregate
func (s *MentorService) GetMentorByID(ctx context.Context, id string) (*models.Mentor, error) {
	for _, m := range s.GetAllMentors(ctx, models.MentorFilters{}) {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, apperrors.NotFoundError("mentor " + id)
}

// FilterMentors returns the mentors matching all set filters, in input order.
// Location is left to the platforms.
func FilterMentors(mentors []*models.Mentor, filters models.MentorFilters) []*models.Mentor {
	expertise := strings.TrimSpace(filters.Expertise)

	out := make([]*models.Mentor, 0, len(mentors))
	for _, m := range mentors {
		if expertise != "" && !m.HasExpertise(expertise) {
			continue
		}
		if filters.Availability != "" && m.Availability != filters.Availability {
			continue
		}
		if filters.MaxRate != nil && m.HourlyRate > *filters.MaxRate {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SortMentors orders mentors in place. Ties keep their input order.
func SortMentors(mentors []*models.Mentor, by models.SortField) {
	var less func(a, b *models.Mentor) bool
	switch by {
	case models.SortByPrice:
		less = func(a, b *models.Mentor) bool { return a.HourlyRate < b.HourlyRate }
	case models.SortByReviews:
		less = func(a, b *models.Mentor) bool { return a.ReviewCount > b.ReviewCount }
	case models.SortByExperience:
		less = func(a, b *models.Mentor) bool { return a.ExperienceYears > b.ExperienceYears }
	default:
		less = func(a, b *models.Mentor) bool { return a.Rating > b.Rating }
	}

	sort.SliceStable(mentors, func(i, j int) bool { return less(mentors[i], mentors[j]) })
}
