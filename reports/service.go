package reports

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tidepool-org/clinic-reports/analytics"
	"github.com/tidepool-org/clinic-reports/config"
	"github.com/tidepool-org/clinic-reports/errors"
	"github.com/tidepool-org/clinic-reports/pointer"
	"github.com/tidepool-org/clinic-reports/records"
)

//go:generate mockgen --build_flags=--mod=mod -source=./service.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	PracticeReport(ctx context.Context, organizationId string, dateRange analytics.DateRange) (*analytics.PracticeReport, error)
	SubscriptionReport(ctx context.Context, dateRange analytics.DateRange) (*analytics.SubscriptionReport, error)
	ParseDateRange(start string, end string) (analytics.DateRange, error)
	Format() analytics.FormattingConfig
}

type service struct {
	source    records.Source
	assembler *analytics.Assembler
	clock     analytics.Clock
	cfg       *config.Config
	logger    *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(source records.Source, assembler *analytics.Assembler, clock analytics.Clock, cfg *config.Config, logger *zap.SugaredLogger) Service {
	return &service{
		source:    source,
		assembler: assembler,
		clock:     clock,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *service) Format() analytics.FormattingConfig {
	return s.assembler.Format()
}

func (s *service) ParseDateRange(start string, end string) (analytics.DateRange, error) {
	dateRange, err := analytics.ParseDateRange(start, end, s.clock.Now(), s.Format().Location, s.cfg.DefaultRangeDays)
	if err != nil {
		return analytics.DateRange{}, fmt.Errorf("%w: %s", errors.BadRequest, err)
	}
	return dateRange, nil
}

func (s *service) PracticeReport(ctx context.Context, organizationId string, dateRange analytics.DateRange) (*analytics.PracticeReport, error) {
	if organizationId == "" {
		return nil, fmt.Errorf("%w: organization id is required", errors.BadRequest)
	}

	snapshot := s.fetch(ctx, records.PracticeCollections, &records.Filter{OrganizationId: pointer.FromAny(organizationId)})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := s.assembler.PracticeReport(organizationId, analytics.PracticeInput{
		Patients:        snapshot.records[records.Patients],
		Appointments:    snapshot.records[records.Appointments],
		Prescriptions:   snapshot.records[records.Prescriptions],
		Payments:        snapshot.records[records.Payments],
		DegradedSources: snapshot.degraded,
	}, dateRange)

	s.logger.Debugw("generated practice report",
		"reportId", report.Id,
		"organizationId", organizationId,
		"degradedSources", report.DegradedSources,
	)
	return &report, nil
}

func (s *service) SubscriptionReport(ctx context.Context, dateRange analytics.DateRange) (*analytics.SubscriptionReport, error) {
	snapshot := s.fetch(ctx, records.SubscriptionCollections, nil)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := s.assembler.SubscriptionReport(analytics.SubscriptionInput{
		Organizations:   snapshot.records[records.Organizations],
		Subscriptions:   snapshot.records[records.Subscriptions],
		DegradedSources: snapshot.degraded,
	}, dateRange)

	s.logger.Debugw("generated subscription report",
		"reportId", report.Id,
		"degradedSources", report.DegradedSources,
	)
	return &report, nil
}

type snapshot struct {
	records  map[records.Collection][]records.Record
	degraded []records.Collection
}

// fetch reads each collection. A collection that can't be read is replaced with an
// empty one and reported as degraded.
func (s *service) fetch(ctx context.Context, collections []records.Collection, filter *records.Filter) snapshot {
	res := snapshot{records: make(map[records.Collection][]records.Record, len(collections))}
	for _, collection := range collections {
		list, err := s.source.List(ctx, collection, filter)
		if err != nil {
			s.logger.Warnw("unable to fetch records, continuing without them",
				"collection", collection,
				"organizationId", organizationIdOf(filter),
				"error", err,
			)
			res.degraded = append(res.degraded, collection)
			list = []records.Record{}
		}
		res.records[collection] = list
	}
	return res
}

func organizationIdOf(filter *records.Filter) string {
	if filter == nil {
		return ""
	}
	return pointer.ToString(filter.OrganizationId)
}
