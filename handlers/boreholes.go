package handlers

import (
	"fmt"
	"time"

	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/services"
)

// Boreholes serves the water infrastructure register.
var Boreholes Resource = resource[models.Borehole]{
	collection:   models.CollectionBoreholes,
	displayName:  "borehole",
	exportBase:   "boreholes",
	categoryKeys: []string{"region", "status"},
	decode:       models.BoreholeFromDoc,
	setID:        func(b *models.Borehole, id string) { b.ID = id },
	encode: func(b models.Borehole) map[string]interface{} {
		data := map[string]interface{}{
			"name":        b.Name,
			"region":      b.Region,
			"ward":        b.Ward,
			"latitude":    b.Latitude,
			"longitude":   b.Longitude,
			"depthMeters": b.Depth,
			"status":      b.Status,
		}
		if !b.Date.IsZero() {
			data["date"] = b.Date
		}
		return data
	},
	validate: func(b models.Borehole) error {
		if b.Name == "" {
			return fmt.Errorf("name is required")
		}
		if b.Region == "" {
			return fmt.Errorf("region is required")
		}
		if b.Status == "" {
			return fmt.Errorf("status is required")
		}
		return nil
	},
	acc: pipeline.Accessors[models.Borehole]{
		SearchFields: []func(models.Borehole) string{
			func(b models.Borehole) string { return b.Name },
			func(b models.Borehole) string { return b.Ward },
		},
		Date: func(b models.Borehole) time.Time { return b.Date },
		Category: map[string]func(models.Borehole) string{
			"region": func(b models.Borehole) string { return b.Region },
			"status": func(b models.Borehole) string { return b.Status },
		},
	},
	agg: pipeline.Aggregator[models.Borehole]{Stats: []pipeline.Stat[models.Borehole]{
		pipeline.Count[models.Borehole]("totalBoreholes"),
		pipeline.CountDistinct("regions", func(b models.Borehole) string { return b.Region }),
		pipeline.CountWhere("operational", func(b models.Borehole) bool { return b.Status == "operational" }),
		pipeline.Ratio("operationalPercent",
			pipeline.CountWhere("operational", func(b models.Borehole) bool { return b.Status == "operational" }),
			pipeline.Count[models.Borehole]("totalBoreholes")),
	}},
	columns: []services.Column[models.Borehole]{
		{Label: "Name", Value: func(b models.Borehole) string { return b.Name }},
		{Label: "Region", Value: func(b models.Borehole) string { return b.Region }},
		{Label: "Ward", Value: func(b models.Borehole) string { return b.Ward }},
		{Label: "Latitude", Value: func(b models.Borehole) string { return formatFloat(b.Latitude) }},
		{Label: "Longitude", Value: func(b models.Borehole) string { return formatFloat(b.Longitude) }},
		{Label: "Depth (m)", Value: func(b models.Borehole) string { return formatFloat(b.Depth) }},
		{Label: "Status", Value: func(b models.Borehole) string { return b.Status }},
		{Label: "Commissioned", Value: func(b models.Borehole) string { return formatDay(b.Date) }},
	},
}
