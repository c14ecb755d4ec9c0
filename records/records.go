// Package records describes the loosely structured documents the reports are computed from.
// Upstream writers are inconsistent about field names, so accessors take candidate lists
// and return the first usable value.
package records

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Collection string

const (
	Patients      Collection = "patients"
	Appointments  Collection = "appointments"
	Prescriptions Collection = "prescriptions"
	Payments      Collection = "payments"
	Organizations Collection = "organizations"
	Subscriptions Collection = "subscriptions"
)

// PracticeCollections are the collections a practice report reads, in fetch order.
var PracticeCollections = []Collection{Patients, Appointments, Prescriptions, Payments}

// SubscriptionCollections are the collections a subscription report reads, in fetch order.
var SubscriptionCollections = []Collection{Organizations, Subscriptions}

//go:generate mockgen --build_flags=--mod=mod -source=./records.go -destination=./test/mock_source.go -package test MockSource

// Source is the fetch boundary. Implementations return full snapshots of a collection.
type Source interface {
	List(ctx context.Context, collection Collection, filter *Filter) ([]Record, error)
}

type Filter struct {
	OrganizationId *string
}

// Record is a single document as read from storage.
type Record map[string]interface{}

// Get returns the value of the first field that is present and not nil.
func (r Record) Get(fields ...string) (interface{}, bool) {
	for _, field := range fields {
		if v, ok := r[field]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the first present field rendered as a non-empty string, or def.
func (r Record) String(def string, fields ...string) string {
	for _, field := range fields {
		v, ok := r[field]
		if !ok || v == nil {
			continue
		}
		if s := toString(v); s != "" {
			return s
		}
	}
	return def
}

// Coalesce returns the first field that is present and not nil, as written, or def.
// Unlike String, an empty string stops the chain.
func (r Record) Coalesce(def string, fields ...string) string {
	v, ok := r.Get(fields...)
	if !ok {
		return def
	}
	if s := toString(v); s != "" {
		return s
	}
	if _, isString := v.(string); isString {
		return ""
	}
	return fmt.Sprint(v)
}

// Bool returns the first boolean-like field and whether one was found.
func (r Record) Bool(fields ...string) (bool, bool) {
	for _, field := range fields {
		switch v := r[field].(type) {
		case bool:
			return v, true
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b, true
			}
		}
	}
	return false, false
}

// Float returns the first field that can be read as a number.
func (r Record) Float(fields ...string) (float64, bool) {
	for _, field := range fields {
		v, ok := r[field]
		if !ok || v == nil {
			continue
		}
		if f, ok := ToFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

// Id returns the document identifier as a string.
func (r Record) Id() string {
	return r.String("", "_id", "id")
}

// Document returns the nested document stored under field.
func (r Record) Document(field string) (Record, bool) {
	v, ok := r.Get(field)
	if !ok {
		return nil, false
	}
	return AsRecord(v)
}

// AsRecord converts the document shapes produced by the bson decoder into a Record.
func AsRecord(v interface{}) (Record, bool) {
	switch d := v.(type) {
	case Record:
		return d, true
	case map[string]interface{}:
		return d, true
	case bson.M:
		return Record(d), true
	case bson.D:
		rec := make(Record, len(d))
		for _, e := range d {
			rec[e.Key] = e.Value
		}
		return rec, true
	}
	return nil, false
}

// AsSlice converts the array shapes produced by the bson decoder into a slice.
func AsSlice(v interface{}) ([]interface{}, bool) {
	switch a := v.(type) {
	case []interface{}:
		return a, true
	case bson.A:
		return a, true
	case []string:
		res := make([]interface{}, len(a))
		for i, s := range a {
			res[i] = s
		}
		return res, true
	case []Record:
		res := make([]interface{}, len(a))
		for i, d := range a {
			res[i] = d
		}
		return res, true
	case []map[string]interface{}:
		res := make([]interface{}, len(a))
		for i, d := range a {
			res[i] = d
		}
		return res, true
	}
	return nil, false
}

// ToFloat reads numeric values, including numeric strings.
func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case primitive.ObjectID:
		return s.Hex()
	case fmt.Stringer:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case int, int32, int64, float32, float64:
		return fmt.Sprint(s)
	}
	return ""
}
