package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Read-mostly catalog/content records. No invariants beyond id uniqueness.

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Details   string             `bson:"details" json:"details"`
}

type Blog struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title" json:"title"`
	Image   string             `bson:"image" json:"image"`
	Author  string             `bson:"author" json:"author"`
	Date    string             `bson:"date" json:"date"`
	Content string             `bson:"content" json:"content"`
}

type Recommendation struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title" json:"title"`
	Details string             `bson:"details" json:"details"`
	Image   string             `bson:"image" json:"image"`
}
