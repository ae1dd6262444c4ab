package domain

// SplitTemplate outlines a popular weekly split that clients can use as a
// starting point when building a plan. Templates are static data, not store
// documents; the day outlines carry muscle group names only, not full
// exercise slates.
type SplitTemplate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Schedule    map[DayOfWeek]SplitDay `json:"schedule"`
}

// SplitDay is one weekday's outline within a split template.
type SplitDay struct {
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	IsRestDay    bool     `json:"isRestDay,omitempty"`
}

// SplitTemplates returns the built-in workout split templates in a stable
// order.
func SplitTemplates() []SplitTemplate {
	push := SplitDay{Name: "Push", MuscleGroups: []string{MuscleChest, MuscleShoulders, MuscleTriceps}}
	pull := SplitDay{Name: "Pull", MuscleGroups: []string{MuscleBack, MuscleBiceps}}
	legs := SplitDay{Name: "Legs", MuscleGroups: []string{MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves}}
	upper := SplitDay{Name: "Upper Body", MuscleGroups: []string{MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps}}
	lower := SplitDay{Name: "Lower Body", MuscleGroups: []string{MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves}}
	rest := SplitDay{Name: "Rest", IsRestDay: true}

	return []SplitTemplate{
		{
			ID:          "push_pull_legs",
			Name:        "Push/Pull/Legs",
			Description: "6-day split focusing on movement patterns",
			Schedule: map[DayOfWeek]SplitDay{
				Monday:    push,
				Tuesday:   pull,
				Wednesday: legs,
				Thursday:  push,
				Friday:    pull,
				Saturday:  legs,
				Sunday:    rest,
			},
		},
		{
			ID:          "upper_lower",
			Name:        "Upper/Lower",
			Description: "4-day split alternating upper and lower body",
			Schedule: map[DayOfWeek]SplitDay{
				Monday:    upper,
				Tuesday:   lower,
				Wednesday: rest,
				Thursday:  upper,
				Friday:    lower,
				Saturday:  rest,
				Sunday:    rest,
			},
		},
		{
			ID:          "full_body",
			Name:        "Full Body",
			Description: "3-day full body workout",
			Schedule: map[DayOfWeek]SplitDay{
				Monday:    {Name: "Full Body A", MuscleGroups: []string{MuscleFullBody}},
				Tuesday:   rest,
				Wednesday: {Name: "Full Body B", MuscleGroups: []string{MuscleFullBody}},
				Thursday:  rest,
				Friday:    {Name: "Full Body C", MuscleGroups: []string{MuscleFullBody}},
				Saturday:  rest,
				Sunday:    rest,
			},
		},
	}
}
