package handlers

import (
	"fmt"
	"strings"
	"time"

	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/services"
)

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// LivestockFarmers serves the livestock farmer register.
var LivestockFarmers Resource = resource[models.LivestockFarmer]{
	collection:   models.CollectionLivestockFarmers,
	displayName:  "livestock farmer",
	exportBase:   "livestock_farmers",
	categoryKeys: []string{"region", "gender", "livestockType"},
	decode:       models.LivestockFarmerFromDoc,
	setID:        func(f *models.LivestockFarmer, id string) { f.ID = id },
	encode: func(f models.LivestockFarmer) map[string]interface{} {
		data := map[string]interface{}{
			"name":          f.Name,
			"idNumber":      f.IDNumber,
			"phone":         f.Phone,
			"gender":        f.Gender,
			"region":        f.Region,
			"ward":          f.Ward,
			"livestockType": f.LivestockType,
			"herdSize":      f.HerdSize,
			"registeredBy":  f.RegisteredBy,
		}
		if !f.Date.IsZero() {
			data["date"] = f.Date
		}
		return data
	},
	validate: func(f models.LivestockFarmer) error {
		if f.Name == "" {
			return fmt.Errorf("name is required")
		}
		if f.Region == "" {
			return fmt.Errorf("region is required")
		}
		return nil
	},
	acc: pipeline.Accessors[models.LivestockFarmer]{
		SearchFields: []func(models.LivestockFarmer) string{
			func(f models.LivestockFarmer) string { return f.Name },
			func(f models.LivestockFarmer) string { return f.Phone },
			func(f models.LivestockFarmer) string { return f.IDNumber },
			func(f models.LivestockFarmer) string { return f.Ward },
		},
		Date: func(f models.LivestockFarmer) time.Time { return f.Date },
		Category: map[string]func(models.LivestockFarmer) string{
			"region":        func(f models.LivestockFarmer) string { return f.Region },
			"gender":        func(f models.LivestockFarmer) string { return f.Gender },
			"livestockType": func(f models.LivestockFarmer) string { return f.LivestockType },
		},
	},
	agg: pipeline.Aggregator[models.LivestockFarmer]{Stats: []pipeline.Stat[models.LivestockFarmer]{
		pipeline.Count[models.LivestockFarmer]("totalFarmers"),
		pipeline.Sum("totalHerdSize", func(f models.LivestockFarmer) float64 { return f.HerdSize }),
		pipeline.CountDistinct("regions", func(f models.LivestockFarmer) string { return f.Region }),
		pipeline.CountWhere("maleFarmers", func(f models.LivestockFarmer) bool { return isMale(f.Gender) }),
		pipeline.CountWhere("femaleFarmers", func(f models.LivestockFarmer) bool { return isFemale(f.Gender) }),
	}},
	columns: []services.Column[models.LivestockFarmer]{
		{Label: "Name", Value: func(f models.LivestockFarmer) string { return f.Name }},
		{Label: "ID Number", Value: func(f models.LivestockFarmer) string { return f.IDNumber }},
		{Label: "Phone", Value: func(f models.LivestockFarmer) string { return f.Phone }},
		{Label: "Gender", Value: func(f models.LivestockFarmer) string { return f.Gender }},
		{Label: "Region", Value: func(f models.LivestockFarmer) string { return f.Region }},
		{Label: "Ward", Value: func(f models.LivestockFarmer) string { return f.Ward }},
		{Label: "Livestock Type", Value: func(f models.LivestockFarmer) string { return f.LivestockType }},
		{Label: "Herd Size", Value: func(f models.LivestockFarmer) string { return formatFloat(f.HerdSize) }},
		{Label: "Registered", Value: func(f models.LivestockFarmer) string { return formatDay(f.Date) }},
	},
}

// FodderFarmers serves the fodder producer register.
var FodderFarmers Resource = resource[models.FodderFarmer]{
	collection:   models.CollectionFodderFarmers,
	displayName:  "fodder farmer",
	exportBase:   "fodder_farmers",
	categoryKeys: []string{"region", "gender", "fodderType"},
	decode:       models.FodderFarmerFromDoc,
	setID:        func(f *models.FodderFarmer, id string) { f.ID = id },
	encode: func(f models.FodderFarmer) map[string]interface{} {
		data := map[string]interface{}{
			"name":           f.Name,
			"phone":          f.Phone,
			"gender":         f.Gender,
			"region":         f.Region,
			"ward":           f.Ward,
			"fodderType":     f.FodderType,
			"acreage":        f.Acreage,
			"balesHarvested": f.BalesHarvest,
			"registeredBy":   f.RegisteredBy,
		}
		if !f.Date.IsZero() {
			data["date"] = f.Date
		}
		return data
	},
	validate: func(f models.FodderFarmer) error {
		if f.Name == "" {
			return fmt.Errorf("name is required")
		}
		if f.Region == "" {
			return fmt.Errorf("region is required")
		}
		return nil
	},
	acc: pipeline.Accessors[models.FodderFarmer]{
		SearchFields: []func(models.FodderFarmer) string{
			func(f models.FodderFarmer) string { return f.Name },
			func(f models.FodderFarmer) string { return f.Phone },
			func(f models.FodderFarmer) string { return f.Ward },
		},
		Date: func(f models.FodderFarmer) time.Time { return f.Date },
		Category: map[string]func(models.FodderFarmer) string{
			"region":     func(f models.FodderFarmer) string { return f.Region },
			"gender":     func(f models.FodderFarmer) string { return f.Gender },
			"fodderType": func(f models.FodderFarmer) string { return f.FodderType },
		},
	},
	agg: pipeline.Aggregator[models.FodderFarmer]{Stats: []pipeline.Stat[models.FodderFarmer]{
		pipeline.Count[models.FodderFarmer]("totalFarmers"),
		pipeline.Sum("totalAcreage", func(f models.FodderFarmer) float64 { return f.Acreage }),
		pipeline.Sum("totalBales", func(f models.FodderFarmer) float64 { return f.BalesHarvest }),
		pipeline.CountDistinct("regions", func(f models.FodderFarmer) string { return f.Region }),
		pipeline.CountWhere("femaleFarmers", func(f models.FodderFarmer) bool { return isFemale(f.Gender) }),
	}},
	columns: []services.Column[models.FodderFarmer]{
		{Label: "Name", Value: func(f models.FodderFarmer) string { return f.Name }},
		{Label: "Phone", Value: func(f models.FodderFarmer) string { return f.Phone }},
		{Label: "Gender", Value: func(f models.FodderFarmer) string { return f.Gender }},
		{Label: "Region", Value: func(f models.FodderFarmer) string { return f.Region }},
		{Label: "Fodder Type", Value: func(f models.FodderFarmer) string { return f.FodderType }},
		{Label: "Acreage", Value: func(f models.FodderFarmer) string { return formatFloat(f.Acreage) }},
		{Label: "Bales Harvested", Value: func(f models.FodderFarmer) string { return formatFloat(f.BalesHarvest) }},
		{Label: "Registered", Value: func(f models.FodderFarmer) string { return formatDay(f.Date) }},
	},
}

func isMale(gender string) bool {
	return strings.EqualFold(gender, "male") || strings.EqualFold(gender, "m")
}

func isFemale(gender string) bool {
	return strings.EqualFold(gender, "female") || strings.EqualFold(gender, "f")
}
