package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateProfile_AcceptsValidProfile(t *testing.T) {
	age := 30
	profile := &Profile{
		FirstName:      "Ada",
		Age:            &age,
		Gender:         GenderFemale,
		Height:         &Measurement{Value: 170, Unit: "cm"},
		Weight:         &Measurement{Value: 65, Unit: "kg"},
		FitnessLevel:   LevelIntermediate,
		ProfilePicture: "https://example.com/a.png",
	}
	if err := ValidateProfile(profile); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}
}

func TestValidateProfile_NilIsValid(t *testing.T) {
	if err := ValidateProfile(nil); err != nil {
		t.Fatalf("expected nil profile to pass, got %v", err)
	}
}

func TestValidateProfile_RejectsBadValues(t *testing.T) {
	age := -1
	profile := &Profile{
		Age:            &age,
		Gender:         "robot",
		Height:         &Measurement{Value: -2, Unit: "m"},
		Weight:         &Measurement{Value: 60, Unit: "stone"},
		FitnessLevel:   "elite",
		Bio:            strings.Repeat("x", 501),
		ProfilePicture: "ftp://example.com/a.png",
	}
	err := ValidateProfile(profile)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Problems) != 8 {
		t.Fatalf("expected 8 problems, got %d: %v", len(verr.Problems), verr.Problems)
	}
}

func TestValidatePreferences_Defaults(t *testing.T) {
	prefs := DefaultPreferences()
	if err := ValidatePreferences(prefs); err != nil {
		t.Fatalf("default preferences must validate, got %v", err)
	}
	if prefs.WeightUnit != "kg" || prefs.TimeFormat != "24h" || prefs.Theme != "auto" {
		t.Fatalf("unexpected defaults: %+v", prefs)
	}
	if !prefs.Notifications.WorkoutReminders || !prefs.Notifications.FriendRequests || !prefs.Notifications.Achievements {
		t.Fatalf("notification toggles must default to true: %+v", prefs.Notifications)
	}
}

func TestValidateWorkoutPlan_RequiresDifficultyAndDuration(t *testing.T) {
	plan := &WorkoutPlan{Name: "PPL"}
	err := ValidateWorkoutPlan(plan)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	joined := strings.Join(verr.Problems, "\n")
	if !strings.Contains(joined, "difficulty is required") {
		t.Errorf("missing difficulty problem in %q", joined)
	}
	if !strings.Contains(joined, "estimatedDuration") {
		t.Errorf("missing estimatedDuration problem in %q", joined)
	}
}

func TestValidateWorkoutPlan_ClosedEnums(t *testing.T) {
	plan := &WorkoutPlan{
		Name:              "Custom",
		Difficulty:        "extreme",
		EstimatedDuration: 45,
		WeeklySchedule: WeeklySchedule{
			Monday: &DayPlan{
				Name: "Push",
				Exercises: []PlannedExercise{
					{
						ExerciseName: "Bench Press",
						Order:        1,
						Sets:         []PlannedSet{{Type: "superdrop"}},
					},
				},
			},
		},
	}
	err := ValidateWorkoutPlan(plan)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `difficulty "extreme"`) {
		t.Errorf("difficulty enum not reported: %v", msg)
	}
	if !strings.Contains(msg, `type "superdrop"`) {
		t.Errorf("set type enum not reported: %v", msg)
	}
}

func TestValidateWorkoutPlan_SetTargets(t *testing.T) {
	rpe := 11
	plan := &WorkoutPlan{
		Name:              "Heavy",
		Difficulty:        LevelAdvanced,
		EstimatedDuration: 60,
		WeeklySchedule: WeeklySchedule{
			Friday: &DayPlan{
				Name: "Legs",
				Exercises: []PlannedExercise{
					{
						ExerciseName: "Squat",
						Order:        1,
						Sets: []PlannedSet{
							{Type: SetNormal, TargetRPE: &rpe},
							{Type: SetNormal, RepRange: &RepRange{Min: 12, Max: 8}},
						},
					},
				},
			},
		},
	}
	err := ValidateWorkoutPlan(plan)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "targetRPE") {
		t.Errorf("RPE range not reported: %v", msg)
	}
	if !strings.Contains(msg, "repRange.min exceeds max") {
		t.Errorf("rep range not reported: %v", msg)
	}
}

func TestValidateWorkoutPlan_RestDayOnlyIsValid(t *testing.T) {
	plan := &WorkoutPlan{
		Name:              "Deload",
		Difficulty:        LevelBeginner,
		EstimatedDuration: 10,
		WeeklySchedule: WeeklySchedule{
			Monday: &DayPlan{IsRestDay: true},
		},
	}
	if err := ValidateWorkoutPlan(plan); err != nil {
		t.Fatalf("rest-day-only schedule must validate, got %v", err)
	}
}

func TestWeekdays_OrderAndCount(t *testing.T) {
	days := Weekdays()
	want := []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	if len(days) != len(want) {
		t.Fatalf("expected %d weekdays, got %d", len(want), len(days))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("weekday %d: expected %s, got %s", i, want[i], days[i])
		}
	}
}

func TestWeeklySchedule_Day(t *testing.T) {
	dp := &DayPlan{Name: "Pull"}
	ws := WeeklySchedule{Tuesday: dp}
	if got := ws.Day(Tuesday); got != dp {
		t.Fatal("expected tuesday plan back")
	}
	if got := ws.Day(Sunday); got != nil {
		t.Fatal("expected nil for unscheduled day")
	}
	if got := ws.Day("someday"); got != nil {
		t.Fatal("expected nil for unknown day key")
	}
}
