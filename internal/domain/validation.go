package domain

import (
	"fmt"
	"strings"
)

// ValidationError collects field-level problems found before a write. The
// store itself never rejects a document; everything it would have enforced
// is checked here instead.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// orNil returns the error only when problems were recorded, so callers can
// do a plain nil check.
func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

const maxBioLength = 500

func validGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// ValidFitnessLevel reports whether l is a member of the closed
// beginner/intermediate/advanced enumeration.
func ValidFitnessLevel(l FitnessLevel) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func validSetType(t SetType) bool {
	switch t {
	case SetNormal, SetWarmup, SetDropset, SetFailure, SetAMRAP:
		return true
	}
	return false
}

// ValidateProfile checks the profile sub-document against the schema rules:
// closed enums, non-negative measurements, bio length and picture URL shape.
func ValidateProfile(p *Profile) error {
	verr := &ValidationError{}
	if p == nil {
		return nil
	}
	if p.Age != nil && *p.Age < 0 {
		verr.add("profile.age must not be negative")
	}
	if p.Gender != "" && !validGender(p.Gender) {
		verr.add("profile.gender %q is not one of male, female, other, prefer-not-to-say", p.Gender)
	}
	if p.Height != nil {
		if p.Height.Value < 0 {
			verr.add("profile.height.value must not be negative")
		}
		if p.Height.Unit != "cm" && p.Height.Unit != "ft" {
			verr.add("profile.height.unit %q is not one of cm, ft", p.Height.Unit)
		}
	}
	if p.Weight != nil {
		if p.Weight.Value < 0 {
			verr.add("profile.weight.value must not be negative")
		}
		if p.Weight.Unit != "kg" && p.Weight.Unit != "lbs" {
			verr.add("profile.weight.unit %q is not one of kg, lbs", p.Weight.Unit)
		}
	}
	if p.FitnessLevel != "" && !ValidFitnessLevel(p.FitnessLevel) {
		verr.add("profile.fitnessLevel %q is not one of beginner, intermediate, advanced", p.FitnessLevel)
	}
	if len(p.Bio) > maxBioLength {
		verr.add("profile.bio exceeds %d characters", maxBioLength)
	}
	if p.ProfilePicture != "" &&
		!strings.HasPrefix(p.ProfilePicture, "http://") &&
		!strings.HasPrefix(p.ProfilePicture, "https://") {
		verr.add("profile.profilePicture must be an http(s) URL")
	}
	return verr.orNil()
}

// ValidatePreferences checks the display/notification settings enums.
func ValidatePreferences(p Preferences) error {
	verr := &ValidationError{}
	if p.WeightUnit != "kg" && p.WeightUnit != "lbs" {
		verr.add("preferences.weightUnit %q is not one of kg, lbs", p.WeightUnit)
	}
	if p.TimeFormat != "12h" && p.TimeFormat != "24h" {
		verr.add("preferences.timeFormat %q is not one of 12h, 24h", p.TimeFormat)
	}
	if p.Theme != "light" && p.Theme != "dark" && p.Theme != "auto" {
		verr.add("preferences.theme %q is not one of light, dark, auto", p.Theme)
	}
	return verr.orNil()
}

// ValidateWorkoutPlan checks a full plan document before it is written.
// Ordering uniqueness within a day and referential existence of userId and
// exerciseId values are deliberately NOT checked.
func ValidateWorkoutPlan(plan *WorkoutPlan) error {
	verr := &ValidationError{}
	if plan.Name == "" {
		verr.add("name is required")
	}
	if plan.Difficulty == "" {
		verr.add("difficulty is required")
	} else if !ValidFitnessLevel(plan.Difficulty) {
		verr.add("difficulty %q is not one of beginner, intermediate, advanced", plan.Difficulty)
	}
	if plan.EstimatedDuration <= 0 {
		verr.add("estimatedDuration is required and must be positive")
	}
	validateWeeklySchedule(verr, &plan.WeeklySchedule)
	return verr.orNil()
}

// ValidateWeeklySchedule checks the nested schedule on its own, for update
// paths that replace only the schedule.
func ValidateWeeklySchedule(ws *WeeklySchedule) error {
	verr := &ValidationError{}
	validateWeeklySchedule(verr, ws)
	return verr.orNil()
}

func validateWeeklySchedule(verr *ValidationError, ws *WeeklySchedule) {
	for _, day := range Weekdays() {
		dp := ws.Day(day)
		if dp == nil {
			continue
		}
		validateDayPlan(verr, day, dp)
	}
}

func validateDayPlan(verr *ValidationError, day DayOfWeek, dp *DayPlan) {
	for i, ex := range dp.Exercises {
		if ex.ExerciseName == "" {
			verr.add("%s.exercises[%d].exerciseName is required", day, i)
		}
		for j, set := range ex.Sets {
			if set.Type == "" {
				verr.add("%s.exercises[%d].sets[%d].type is required", day, i, j)
			} else if !validSetType(set.Type) {
				verr.add("%s.exercises[%d].sets[%d].type %q is not one of normal, warmup, dropset, failure, amrap", day, i, j, set.Type)
			}
			if set.TargetRPE != nil && (*set.TargetRPE < 1 || *set.TargetRPE > 10) {
				verr.add("%s.exercises[%d].sets[%d].targetRPE must be between 1 and 10", day, i, j)
			}
			if set.RepRange != nil && set.RepRange.Min > set.RepRange.Max {
				verr.add("%s.exercises[%d].sets[%d].repRange.min exceeds max", day, i, j)
			}
		}
	}
}
