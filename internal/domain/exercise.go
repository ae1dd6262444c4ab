package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one entry in the exercise catalog. The catalog is pre-seeded
// and read-only from the service's perspective; workout plans reference
// entries by id but also denormalize the name and muscle group at
// plan-creation time.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	MainMuscleGroup       string   `bson:"mainMuscleGroup" json:"mainMuscleGroup"`
	SecondaryMuscleGroups []string `bson:"secondaryMuscleGroups" json:"secondaryMuscleGroups"`
	Muscles               []string `bson:"muscles" json:"muscles"` // exact muscles, e.g. "pectoralis major"

	Equipment    []string `bson:"equipment" json:"equipment"`
	Instructions []string `bson:"instructions" json:"instructions"` // step order is significant
	ImageURL     string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL     string   `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
