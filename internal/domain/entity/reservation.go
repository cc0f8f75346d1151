package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStatus represents the delivery state of a reservation's report.
// The only legal transition is pending -> delivered.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportDelivered ReportStatus = "delivered"
)

// Reservation links a user (by email) to a test offering (by id hex).
type Reservation struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TestID string             `bson:"test_id" json:"test_id"`
	Email  string             `bson:"email" json:"email"`
	Title  string             `bson:"title" json:"title"`
	Price  float64            `bson:"price" json:"price"`
	Date   string             `bson:"date" json:"date"`
	Report ReportStatus       `bson:"report" json:"report"`
}

func (r *Reservation) IsPending() bool {
	return r.Report == ReportPending
}

func (r *Reservation) IsDelivered() bool {
	return r.Report == ReportDelivered
}
