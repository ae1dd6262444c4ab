package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender is the closed set of values accepted for profile.gender.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

// FitnessLevel doubles as the difficulty scale for workout plans.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// User represents an account in the system. Identity comes from an
// externally issued UserID (e.g. a Firebase uid) plus the internal ObjectID.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email  string             `bson:"email" json:"email"` // Unique
	Phone  string             `bson:"phone,omitempty" json:"phone,omitempty"` // Unique if present
	UserID string             `bson:"userid" json:"userid"`

	Profile     *Profile    `bson:"profile,omitempty" json:"profile,omitempty"`
	Preferences Preferences `bson:"preferences" json:"preferences"`

	// Account status
	IsActive        bool `bson:"isActive" json:"isActive"`
	IsEmailVerified bool `bson:"isEmailVerified" json:"isEmailVerified"`

	// Friend system. Declared in the data model but has no service
	// behavior yet; endpoints come later.
	Friends        []Friend       `bson:"friends" json:"friends"`
	FriendRequests FriendRequests `bson:"friendRequests" json:"friendRequests"`

	Stats UserStats `bson:"stats" json:"stats"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Profile holds the user-editable sub-document. It is attached after
// registration via its own call and always replaced wholesale.
type Profile struct {
	FirstName      string       `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName       string       `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Age            *int         `bson:"age,omitempty" json:"age,omitempty"`
	Gender         Gender       `bson:"gender,omitempty" json:"gender,omitempty"`
	Height         *Measurement `bson:"height,omitempty" json:"height,omitempty"`
	Weight         *Measurement `bson:"weight,omitempty" json:"weight,omitempty"`
	FitnessLevel   FitnessLevel `bson:"fitnessLevel,omitempty" json:"fitnessLevel,omitempty"`
	Bio            string       `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string       `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"` // URL
}

// Measurement pairs a value with its unit ("cm"/"ft" for height,
// "kg"/"lbs" for weight).
type Measurement struct {
	Value float64 `bson:"value" json:"value"`
	Unit  string  `bson:"unit" json:"unit"`
}

// Preferences carries display and notification settings.
type Preferences struct {
	WeightUnit    string                  `bson:"weightUnit" json:"weightUnit"` // "kg" or "lbs"
	TimeFormat    string                  `bson:"timeFormat" json:"timeFormat"` // "12h" or "24h"
	Theme         string                  `bson:"theme" json:"theme"`           // "light", "dark" or "auto"
	Notifications NotificationPreferences `bson:"notifications" json:"notifications"`
}

type NotificationPreferences struct {
	WorkoutReminders bool `bson:"workoutReminders" json:"workoutReminders"`
	FriendRequests   bool `bson:"friendRequests" json:"friendRequests"`
	Achievements     bool `bson:"achievements" json:"achievements"`
}

// DefaultPreferences returns the preferences assigned at registration when
// the caller does not supply their own.
func DefaultPreferences() Preferences {
	return Preferences{
		WeightUnit: "kg",
		TimeFormat: "24h",
		Theme:      "auto",
		Notifications: NotificationPreferences{
			WorkoutReminders: true,
			FriendRequests:   true,
			Achievements:     true,
		},
	}
}

type Friend struct {
	User    primitive.ObjectID `bson:"user" json:"user"`
	AddedAt time.Time          `bson:"addedAt" json:"addedAt"`
}

type FriendRequests struct {
	Sent     []SentFriendRequest     `bson:"sent" json:"sent"`
	Received []ReceivedFriendRequest `bson:"received" json:"received"`
}

type SentFriendRequest struct {
	To     primitive.ObjectID `bson:"to" json:"to"`
	SentAt time.Time          `bson:"sentAt" json:"sentAt"`
}

type ReceivedFriendRequest struct {
	From       primitive.ObjectID `bson:"from" json:"from"`
	ReceivedAt time.Time          `bson:"receivedAt" json:"receivedAt"`
}

// UserStats tracks lifetime workout counters. All counters start at zero;
// JoinedAt is set once at registration.
type UserStats struct {
	TotalWorkouts   int        `bson:"totalWorkouts" json:"totalWorkouts"`
	CurrentStreak   int        `bson:"currentStreak" json:"currentStreak"`
	LongestStreak   int        `bson:"longestStreak" json:"longestStreak"`
	LastWorkoutDate *time.Time `bson:"lastWorkoutDate,omitempty" json:"lastWorkoutDate,omitempty"`
	JoinedAt        time.Time  `bson:"joinedAt" json:"joinedAt"`
}
