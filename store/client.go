package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewClient(cfg *Config) (*mongo.Client, error) {
	cs, err := cfg.GetConnectionString()
	if err != nil {
		return nil, err
	}
	return NewClientFromConnectionString(cs)
}

func NewClientFromConnectionString(connectionString string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ContextTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongo: %w", err)
	}

	return client, nil
}
