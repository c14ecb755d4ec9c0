package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/clinic-reports/records"
	"github.com/tidepool-org/clinic-reports/store"
)

var organizationScoped = []records.Collection{
	records.Patients,
	records.Appointments,
	records.Prescriptions,
	records.Payments,
	records.Subscriptions,
}

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (records.Source, error) {
	repo := &repository{
		db:     db,
		logger: logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	db     *mongo.Database
	logger *zap.SugaredLogger
}

func (r *repository) Initialize(ctx context.Context) error {
	for _, collection := range organizationScoped {
		_, err := r.db.Collection(string(collection)).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "organizationId", Value: 1},
				},
				Options: options.Index().
					SetName("OrganizationId"),
			},
		})
		if err != nil {
			return fmt.Errorf("error creating %s indexes: %w", collection, err)
		}
	}
	return nil
}

func (r *repository) List(ctx context.Context, collection records.Collection, filter *records.Filter) ([]records.Record, error) {
	selector := bson.M{}
	if filter != nil && filter.OrganizationId != nil {
		selector["organizationId"] = bson.M{
			"$in": store.ObjectIDOrString(*filter.OrganizationId),
		}
	}

	cursor, err := r.db.Collection(string(collection)).Find(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", collection, err)
	}

	list := make([]records.Record, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding %s list: %w", collection, err)
	}

	r.logger.Debugw("listed records", "collection", collection, "count", len(list))
	return list, nil
}
