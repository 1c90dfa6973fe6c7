package handlers

import (
	"fmt"
	"time"

	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/services"
)

// Trainings serves the capacity-building session log.
var Trainings Resource = resource[models.TrainingSession]{
	collection:   models.CollectionTrainings,
	displayName:  "training session",
	exportBase:   "training_sessions",
	categoryKeys: []string{"region", "topic"},
	decode:       models.TrainingFromDoc,
	setID:        func(t *models.TrainingSession, id string) { t.ID = id },
	encode: func(t models.TrainingSession) map[string]interface{} {
		data := map[string]interface{}{
			"topic":              t.Topic,
			"region":             t.Region,
			"venue":              t.Venue,
			"trainer":            t.Trainer,
			"maleParticipants":   t.MaleCount,
			"femaleParticipants": t.FemaleCount,
		}
		if !t.Date.IsZero() {
			data["date"] = t.Date
		}
		return data
	},
	validate: func(t models.TrainingSession) error {
		if t.Topic == "" {
			return fmt.Errorf("topic is required")
		}
		if t.Region == "" {
			return fmt.Errorf("region is required")
		}
		return nil
	},
	acc: pipeline.Accessors[models.TrainingSession]{
		SearchFields: []func(models.TrainingSession) string{
			func(t models.TrainingSession) string { return t.Topic },
			func(t models.TrainingSession) string { return t.Venue },
			func(t models.TrainingSession) string { return t.Trainer },
		},
		Date: func(t models.TrainingSession) time.Time { return t.Date },
		Category: map[string]func(models.TrainingSession) string{
			"region": func(t models.TrainingSession) string { return t.Region },
			"topic":  func(t models.TrainingSession) string { return t.Topic },
		},
	},
	agg: pipeline.Aggregator[models.TrainingSession]{Stats: []pipeline.Stat[models.TrainingSession]{
		pipeline.Count[models.TrainingSession]("totalSessions"),
		pipeline.Sum("totalParticipants", func(t models.TrainingSession) float64 { return t.MaleCount + t.FemaleCount }),
		pipeline.Sum("maleParticipants", func(t models.TrainingSession) float64 { return t.MaleCount }),
		pipeline.Sum("femaleParticipants", func(t models.TrainingSession) float64 { return t.FemaleCount }),
		pipeline.CountDistinct("regions", func(t models.TrainingSession) string { return t.Region }),
	}},
	columns: []services.Column[models.TrainingSession]{
		{Label: "Date", Value: func(t models.TrainingSession) string { return formatDay(t.Date) }},
		{Label: "Topic", Value: func(t models.TrainingSession) string { return t.Topic }},
		{Label: "Region", Value: func(t models.TrainingSession) string { return t.Region }},
		{Label: "Venue", Value: func(t models.TrainingSession) string { return t.Venue }},
		{Label: "Trainer", Value: func(t models.TrainingSession) string { return t.Trainer }},
		{Label: "Male Participants", Value: func(t models.TrainingSession) string { return formatFloat(t.MaleCount) }},
		{Label: "Female Participants", Value: func(t models.TrainingSession) string { return formatFloat(t.FemaleCount) }},
	},
}
