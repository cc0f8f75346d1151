package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// District and Upazila are static reference data, read-only from the API.

type District struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	BnName string             `bson:"bn_name" json:"bn_name"`
}

type Upazila struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DistrictID string             `bson:"district_id" json:"district_id"`
	Name       string             `bson:"name" json:"name"`
	BnName     string             `bson:"bn_name" json:"bn_name"`
}
