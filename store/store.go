package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

// ObjectIDOrString returns the values a reference field may be stored as.
// Older documents keep foreign keys as hex strings, newer ones as ObjectIDs.
func ObjectIDOrString(id string) []interface{} {
	values := []interface{}{id}
	if objectId, err := primitive.ObjectIDFromHex(id); err == nil {
		values = append(values, objectId)
	}
	return values
}
