package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is a diagnostic result tied to a patient's email and the
// reservation it fulfils. Inserted once, read-only thereafter.
type Report struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientEmail  string             `bson:"patient_email" json:"patient_email"`
	ReservationID string             `bson:"reservation_id" json:"reservation_id"`
	Title         string             `bson:"title" json:"title"`
	Details       string             `bson:"details" json:"details"`
	ReportURL     string             `bson:"report_url" json:"report_url"`
	Date          string             `bson:"date" json:"date"`
}
