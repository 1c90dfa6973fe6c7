package models

import "time"

// LivestockFarmer is one registered livestock farmer. Date is the
// registration day, already normalized at the store boundary; zero means the
// source document carried no parseable date.
type LivestockFarmer struct {
	ID            string    `json:"id" firestore:"-"`
	Name          string    `json:"name" firestore:"name"`
	IDNumber      string    `json:"idNumber,omitempty" firestore:"idNumber,omitempty"`
	Phone         string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Gender        string    `json:"gender" firestore:"gender"`
	Region        string    `json:"region" firestore:"region"`
	Ward          string    `json:"ward,omitempty" firestore:"ward,omitempty"`
	LivestockType string    `json:"livestockType" firestore:"livestockType"`
	HerdSize      float64   `json:"herdSize" firestore:"herdSize"`
	RegisteredBy  string    `json:"registeredBy,omitempty" firestore:"registeredBy,omitempty"`
	Date          time.Time `json:"date,omitempty" firestore:"date"`
}

// FodderFarmer is one registered fodder producer.
type FodderFarmer struct {
	ID           string    `json:"id" firestore:"-"`
	Name         string    `json:"name" firestore:"name"`
	Phone        string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Gender       string    `json:"gender" firestore:"gender"`
	Region       string    `json:"region" firestore:"region"`
	Ward         string    `json:"ward,omitempty" firestore:"ward,omitempty"`
	FodderType   string    `json:"fodderType" firestore:"fodderType"`
	Acreage      float64   `json:"acreage" firestore:"acreage"`
	BalesHarvest float64   `json:"balesHarvested" firestore:"balesHarvested"`
	RegisteredBy string    `json:"registeredBy,omitempty" firestore:"registeredBy,omitempty"`
	Date         time.Time `json:"date,omitempty" firestore:"date"`
}
