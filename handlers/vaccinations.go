package handlers

import (
	"fmt"
	"time"

	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/services"
)

// Vaccinations serves the animal-health activity log.
var Vaccinations Resource = resource[models.VaccinationActivity]{
	collection:   models.CollectionVaccinations,
	displayName:  "vaccination activity",
	exportBase:   "vaccination_activities",
	categoryKeys: []string{"region", "disease"},
	decode:       models.VaccinationFromDoc,
	setID:        func(v *models.VaccinationActivity, id string) { v.ID = id },
	encode: func(v models.VaccinationActivity) map[string]interface{} {
		data := map[string]interface{}{
			"region":            v.Region,
			"ward":              v.Ward,
			"disease":           v.Disease,
			"vaccineType":       v.VaccineType,
			"animalsVaccinated": v.AnimalsVaccinated,
			"farmersReached":    v.FarmersReached,
			"officer":           v.Officer,
		}
		if !v.Date.IsZero() {
			data["date"] = v.Date
		}
		return data
	},
	validate: func(v models.VaccinationActivity) error {
		if v.Region == "" {
			return fmt.Errorf("region is required")
		}
		if v.Disease == "" {
			return fmt.Errorf("disease is required")
		}
		if v.AnimalsVaccinated < 0 {
			return fmt.Errorf("animalsVaccinated cannot be negative")
		}
		return nil
	},
	acc: pipeline.Accessors[models.VaccinationActivity]{
		SearchFields: []func(models.VaccinationActivity) string{
			func(v models.VaccinationActivity) string { return v.Disease },
			func(v models.VaccinationActivity) string { return v.VaccineType },
			func(v models.VaccinationActivity) string { return v.Officer },
			func(v models.VaccinationActivity) string { return v.Ward },
		},
		Date: func(v models.VaccinationActivity) time.Time { return v.Date },
		Category: map[string]func(models.VaccinationActivity) string{
			"region":  func(v models.VaccinationActivity) string { return v.Region },
			"disease": func(v models.VaccinationActivity) string { return v.Disease },
		},
	},
	agg: pipeline.Aggregator[models.VaccinationActivity]{Stats: []pipeline.Stat[models.VaccinationActivity]{
		pipeline.Count[models.VaccinationActivity]("totalActivities"),
		pipeline.Sum("animalsVaccinated", func(v models.VaccinationActivity) float64 { return v.AnimalsVaccinated }),
		pipeline.Sum("farmersReached", func(v models.VaccinationActivity) float64 { return v.FarmersReached }),
		pipeline.CountDistinct("regions", func(v models.VaccinationActivity) string { return v.Region }),
		pipeline.CountDistinct("diseases", func(v models.VaccinationActivity) string { return v.Disease }),
	}},
	columns: []services.Column[models.VaccinationActivity]{
		{Label: "Date", Value: func(v models.VaccinationActivity) string { return formatDay(v.Date) }},
		{Label: "Region", Value: func(v models.VaccinationActivity) string { return v.Region }},
		{Label: "Ward", Value: func(v models.VaccinationActivity) string { return v.Ward }},
		{Label: "Disease", Value: func(v models.VaccinationActivity) string { return v.Disease }},
		{Label: "Vaccine", Value: func(v models.VaccinationActivity) string { return v.VaccineType }},
		{Label: "Animals Vaccinated", Value: func(v models.VaccinationActivity) string { return formatFloat(v.AnimalsVaccinated) }},
		{Label: "Farmers Reached", Value: func(v models.VaccinationActivity) string { return formatFloat(v.FarmersReached) }},
		{Label: "Officer", Value: func(v models.VaccinationActivity) string { return v.Officer }},
	},
}
