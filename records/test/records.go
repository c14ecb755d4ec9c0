package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tidepool-org/clinic-reports/records"
	"github.com/tidepool-org/clinic-reports/test"
)

var (
	genders          = []string{"Male", "Female", "Other"}
	appointmentTypes = []string{"Consultation", "Follow-up", "Check-up", "Procedure"}
	appointmentState = []string{"Scheduled", "Completed", "Cancelled", "No-show"}
	paymentMethods   = []string{"Card", "Cash", "Insurance", "Bank Transfer"}
	medications      = []string{"Aspirin", "Metformin", "Lisinopril", "Atorvastatin", "Amoxicillin"}
	plans            = []string{"Basic", "Professional", "Enterprise"}
)

func RandomPatient(organizationId primitive.ObjectID, createdAt time.Time) records.Record {
	return records.Record{
		"_id":            primitive.NewObjectID(),
		"organizationId": organizationId,
		"name":           test.Faker.Person().Name(),
		"email":          test.Faker.Internet().Email(),
		"age":            test.Faker.IntBetween(0, 95),
		"gender":         test.Faker.RandomStringElement(genders),
		"createdAt":      primitive.NewDateTimeFromTime(createdAt),
	}
}

func RandomAppointment(organizationId primitive.ObjectID, date time.Time) records.Record {
	return records.Record{
		"_id":            primitive.NewObjectID(),
		"organizationId": organizationId,
		"patientName":    test.Faker.Person().Name(),
		"type":           test.Faker.RandomStringElement(appointmentTypes),
		"status":         test.Faker.RandomStringElement(appointmentState),
		"date":           primitive.NewDateTimeFromTime(date),
	}
}

func RandomPayment(organizationId primitive.ObjectID, date time.Time, status string) records.Record {
	return records.Record{
		"_id":            primitive.NewObjectID(),
		"organizationId": organizationId,
		"amount":         test.RandomAmount(10, 500),
		"status":         status,
		"paymentMethod":  test.Faker.RandomStringElement(paymentMethods),
		"date":           primitive.NewDateTimeFromTime(date),
	}
}

func RandomPrescription(organizationId primitive.ObjectID, date time.Time) records.Record {
	return records.Record{
		"_id":            primitive.NewObjectID(),
		"organizationId": organizationId,
		"patientName":    test.Faker.Person().Name(),
		"medications": []interface{}{
			map[string]interface{}{"name": test.Faker.RandomStringElement(medications), "dosage": "10mg"},
		},
		"date": primitive.NewDateTimeFromTime(date),
	}
}

func RandomOrganization(createdAt time.Time) records.Record {
	return records.Record{
		"_id":              primitive.NewObjectID(),
		"name":             test.Faker.Company().Name(),
		"isActive":         true,
		"subscriptionType": "standard",
		"createdAt":        primitive.NewDateTimeFromTime(createdAt),
	}
}

func RandomSubscription(organizationId primitive.ObjectID, status string, endDate time.Time) records.Record {
	return records.Record{
		"_id":            primitive.NewObjectID(),
		"organizationId": organizationId,
		"status":         status,
		"amount":         test.RandomAmount(49, 299),
		"endDate":        primitive.NewDateTimeFromTime(endDate),
		"plan":           map[string]interface{}{"name": test.Faker.RandomStringElement(plans)},
		"createdAt":      primitive.NewDateTimeFromTime(endDate.AddDate(0, -1, 0)),
	}
}
