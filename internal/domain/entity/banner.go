package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a promotional record. At most one banner is active at a time;
// activation deactivates every other banner in the same operation.
type Banner struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Title      string             `bson:"title" json:"title"`
	Text       string             `bson:"text" json:"text"`
	CouponCode string             `bson:"coupon_code_name" json:"coupon_code_name"`
	Rate       float64            `bson:"rate" json:"rate"`
	IsActive   bool               `bson:"isActive" json:"isActive"`
}
