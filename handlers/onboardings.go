package handlers

import (
	"fmt"
	"time"

	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/services"
)

// Onboardings serves the community onboarding session log.
var Onboardings Resource = resource[models.OnboardingSession]{
	collection:   models.CollectionOnboardings,
	displayName:  "onboarding session",
	exportBase:   "onboarding_sessions",
	categoryKeys: []string{"region"},
	decode:       models.OnboardingFromDoc,
	setID:        func(o *models.OnboardingSession, id string) { o.ID = id },
	encode: func(o models.OnboardingSession) map[string]interface{} {
		data := map[string]interface{}{
			"region":       o.Region,
			"venue":        o.Venue,
			"facilitator":  o.Facilitator,
			"participants": o.Participants,
			"notes":        o.Notes,
		}
		if !o.Date.IsZero() {
			data["date"] = o.Date
		}
		return data
	},
	validate: func(o models.OnboardingSession) error {
		if o.Region == "" {
			return fmt.Errorf("region is required")
		}
		if o.Participants < 0 {
			return fmt.Errorf("participants cannot be negative")
		}
		return nil
	},
	acc: pipeline.Accessors[models.OnboardingSession]{
		SearchFields: []func(models.OnboardingSession) string{
			func(o models.OnboardingSession) string { return o.Venue },
			func(o models.OnboardingSession) string { return o.Facilitator },
			func(o models.OnboardingSession) string { return o.Notes },
		},
		Date: func(o models.OnboardingSession) time.Time { return o.Date },
		Category: map[string]func(models.OnboardingSession) string{
			"region": func(o models.OnboardingSession) string { return o.Region },
		},
	},
	agg: pipeline.Aggregator[models.OnboardingSession]{Stats: []pipeline.Stat[models.OnboardingSession]{
		pipeline.Count[models.OnboardingSession]("totalSessions"),
		pipeline.Sum("totalParticipants", func(o models.OnboardingSession) float64 { return o.Participants }),
		pipeline.CountDistinct("regions", func(o models.OnboardingSession) string { return o.Region }),
	}},
	columns: []services.Column[models.OnboardingSession]{
		{Label: "Date", Value: func(o models.OnboardingSession) string { return formatDay(o.Date) }},
		{Label: "Region", Value: func(o models.OnboardingSession) string { return o.Region }},
		{Label: "Venue", Value: func(o models.OnboardingSession) string { return o.Venue }},
		{Label: "Facilitator", Value: func(o models.OnboardingSession) string { return o.Facilitator }},
		{Label: "Participants", Value: func(o models.OnboardingSession) string { return formatFloat(o.Participants) }},
		{Label: "Notes", Value: func(o models.OnboardingSession) string { return o.Notes }},
	},
}
