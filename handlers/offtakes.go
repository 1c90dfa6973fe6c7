package handlers

import (
	"fmt"
	"time"

	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/services"
)

// Offtakes serves the livestock sales register.
var Offtakes Resource = resource[models.OfftakeTransaction]{
	collection:   models.CollectionOfftakes,
	displayName:  "offtake transaction",
	exportBase:   "offtake_transactions",
	categoryKeys: []string{"region", "animalType", "buyer"},
	decode:       models.OfftakeFromDoc,
	setID:        func(o *models.OfftakeTransaction, id string) { o.ID = id },
	encode: func(o models.OfftakeTransaction) map[string]interface{} {
		total := o.TotalValue
		if total == 0 {
			total = o.Quantity * o.UnitPrice
		}
		data := map[string]interface{}{
			"farmerName": o.FarmerName,
			"region":     o.Region,
			"animalType": o.AnimalType,
			"quantity":   o.Quantity,
			"unitPrice":  o.UnitPrice,
			"totalValue": total,
			"buyer":      o.Buyer,
		}
		if !o.Date.IsZero() {
			data["date"] = o.Date
		}
		return data
	},
	validate: func(o models.OfftakeTransaction) error {
		if o.FarmerName == "" {
			return fmt.Errorf("farmerName is required")
		}
		if o.Region == "" {
			return fmt.Errorf("region is required")
		}
		if o.Quantity <= 0 {
			return fmt.Errorf("quantity must be positive")
		}
		return nil
	},
	acc: pipeline.Accessors[models.OfftakeTransaction]{
		SearchFields: []func(models.OfftakeTransaction) string{
			func(o models.OfftakeTransaction) string { return o.FarmerName },
			func(o models.OfftakeTransaction) string { return o.Buyer },
			func(o models.OfftakeTransaction) string { return o.AnimalType },
		},
		Date: func(o models.OfftakeTransaction) time.Time { return o.Date },
		Category: map[string]func(models.OfftakeTransaction) string{
			"region":     func(o models.OfftakeTransaction) string { return o.Region },
			"animalType": func(o models.OfftakeTransaction) string { return o.AnimalType },
			"buyer":      func(o models.OfftakeTransaction) string { return o.Buyer },
		},
	},
	agg: pipeline.Aggregator[models.OfftakeTransaction]{Stats: []pipeline.Stat[models.OfftakeTransaction]{
		pipeline.Count[models.OfftakeTransaction]("totalTransactions"),
		pipeline.Sum("animalsSold", func(o models.OfftakeTransaction) float64 { return o.Quantity }),
		pipeline.Sum("totalValue", func(o models.OfftakeTransaction) float64 { return o.TotalValue }),
		pipeline.CountDistinct("buyers", func(o models.OfftakeTransaction) string { return o.Buyer }),
		pipeline.CountDistinct("regions", func(o models.OfftakeTransaction) string { return o.Region }),
	}},
	columns: []services.Column[models.OfftakeTransaction]{
		{Label: "Date", Value: func(o models.OfftakeTransaction) string { return formatDay(o.Date) }},
		{Label: "Farmer", Value: func(o models.OfftakeTransaction) string { return o.FarmerName }},
		{Label: "Region", Value: func(o models.OfftakeTransaction) string { return o.Region }},
		{Label: "Animal Type", Value: func(o models.OfftakeTransaction) string { return o.AnimalType }},
		{Label: "Quantity", Value: func(o models.OfftakeTransaction) string { return formatFloat(o.Quantity) }},
		{Label: "Unit Price", Value: func(o models.OfftakeTransaction) string { return formatFloat(o.UnitPrice) }},
		{Label: "Total Value", Value: func(o models.OfftakeTransaction) string { return formatFloat(o.TotalValue) }},
		{Label: "Buyer", Value: func(o models.OfftakeTransaction) string { return o.Buyer }},
	},
}
