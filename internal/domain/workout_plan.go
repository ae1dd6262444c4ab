package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayOfWeek names one of the seven fixed weekly schedule keys.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Weekdays returns the seven schedule keys in calendar order.
func Weekdays() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// SetType classifies a planned set.
type SetType string

const (
	SetNormal  SetType = "normal"
	SetWarmup  SetType = "warmup"
	SetDropset SetType = "dropset"
	SetFailure SetType = "failure"
	SetAMRAP   SetType = "amrap"
)

// Common muscle group names used across day plans and the exercise catalog.
// Informational only; DayPlan.MuscleGroups accepts free-form names.
const (
	MuscleChest      = "chest"
	MuscleBack       = "back"
	MuscleShoulders  = "shoulders"
	MuscleBiceps     = "biceps"
	MuscleTriceps    = "triceps"
	MuscleLegs       = "legs"
	MuscleQuads      = "quads"
	MuscleHamstrings = "hamstrings"
	MuscleGlutes     = "glutes"
	MuscleCalves     = "calves"
	MuscleAbs        = "abs"
	MuscleCardio     = "cardio"
	MuscleFullBody   = "full_body"
)

// WorkoutPlan is a user's weekly workout schedule. The userId reference is
// advisory: no operation verifies it points at an existing User.
type WorkoutPlan struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`

	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	WeeklySchedule WeeklySchedule `bson:"weeklySchedule" json:"weeklySchedule"`

	IsActive          bool         `bson:"isActive" json:"isActive"`
	IsTemplate        bool         `bson:"isTemplate" json:"isTemplate"` // reusable by other users
	Difficulty        FitnessLevel `bson:"difficulty" json:"difficulty"`
	EstimatedDuration int          `bson:"estimatedDuration" json:"estimatedDuration"` // minutes per session

	Stats PlanStats `bson:"stats" json:"stats"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WeeklySchedule maps each weekday to an optional day plan. Absent days are
// simply not scheduled (distinct from an explicit rest day).
type WeeklySchedule struct {
	Monday    *DayPlan `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   *DayPlan `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday *DayPlan `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  *DayPlan `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    *DayPlan `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  *DayPlan `bson:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    *DayPlan `bson:"sunday,omitempty" json:"sunday,omitempty"`
}

// Day returns the plan scheduled for the given weekday, or nil.
func (ws *WeeklySchedule) Day(day DayOfWeek) *DayPlan {
	switch day {
	case Monday:
		return ws.Monday
	case Tuesday:
		return ws.Tuesday
	case Wednesday:
		return ws.Wednesday
	case Thursday:
		return ws.Thursday
	case Friday:
		return ws.Friday
	case Saturday:
		return ws.Saturday
	case Sunday:
		return ws.Sunday
	}
	return nil
}

// DayPlan is one weekday's exercise slate or rest designation.
type DayPlan struct {
	Name              string             `bson:"name" json:"name"` // e.g. "Push Day", "Leg Day"
	MuscleGroups      []MuscleGroupFocus `bson:"muscleGroups" json:"muscleGroups"`
	Exercises         []PlannedExercise  `bson:"exercises" json:"exercises"`
	EstimatedDuration int                `bson:"estimatedDuration" json:"estimatedDuration"` // minutes
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	IsRestDay         bool               `bson:"isRestDay" json:"isRestDay"`
}

// MuscleGroupFocus marks a muscle group worked on a given day.
type MuscleGroupFocus struct {
	Name    string `bson:"name" json:"name"`
	Primary bool   `bson:"primary" json:"primary"`
	Color   string `bson:"color,omitempty" json:"color,omitempty"` // for UI display
}

// PlannedExercise is one exercise instance scheduled within a day. Order
// defines the execution sequence; values should be distinct within a day but
// this is not enforced. Exercises sharing a SupersetGroup are performed
// back-to-back.
type PlannedExercise struct {
	ExerciseID   primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"` // denormalized at plan creation
	MuscleGroup  string             `bson:"muscleGroup" json:"muscleGroup"`

	Sets []PlannedSet `bson:"sets" json:"sets"`

	Order int `bson:"order" json:"order"`

	RestTime      *int   `bson:"restTime,omitempty" json:"restTime,omitempty"` // seconds between sets
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
	IsSuperset    bool   `bson:"isSuperset,omitempty" json:"isSuperset,omitempty"`
	SupersetGroup *int   `bson:"supersetGroup,omitempty" json:"supersetGroup,omitempty"`
}

// PlannedSet prescribes one work unit. Every target is optional; a set may
// specify any subset, and absent targets stay absent rather than zero.
type PlannedSet struct {
	Type         SetType   `bson:"type" json:"type"`
	TargetReps   *int      `bson:"targetReps,omitempty" json:"targetReps,omitempty"`
	RepRange     *RepRange `bson:"repRange,omitempty" json:"repRange,omitempty"`
	TargetWeight *float64  `bson:"targetWeight,omitempty" json:"targetWeight,omitempty"`
	TargetRPE    *int      `bson:"targetRPE,omitempty" json:"targetRPE,omitempty"` // 1-10
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

type RepRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// PlanStats tracks usage of a plan.
type PlanStats struct {
	TotalSessions     int                 `bson:"totalSessions" json:"totalSessions"`
	CompletedSessions int                 `bson:"completedSessions" json:"completedSessions"`
	LastUsed          *time.Time          `bson:"lastUsed,omitempty" json:"lastUsed,omitempty"`
	CreatedFrom       *primitive.ObjectID `bson:"createdFrom,omitempty" json:"createdFrom,omitempty"` // template origin
}
