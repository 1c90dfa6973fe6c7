package models

import "time"

// Borehole is one piece of water infrastructure tracked by the program.
type Borehole struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Region    string    `json:"region" firestore:"region"`
	Ward      string    `json:"ward,omitempty" firestore:"ward,omitempty"`
	Latitude  float64   `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude float64   `json:"longitude,omitempty" firestore:"longitude,omitempty"`
	Depth     float64   `json:"depthMeters,omitempty" firestore:"depthMeters,omitempty"`
	Status    string    `json:"status" firestore:"status"` // operational, drilling, decommissioned
	Date      time.Time `json:"date,omitempty" firestore:"date"`
}

// VaccinationActivity is one animal-health field activity.
type VaccinationActivity struct {
	ID                string    `json:"id" firestore:"-"`
	Region            string    `json:"region" firestore:"region"`
	Ward              string    `json:"ward,omitempty" firestore:"ward,omitempty"`
	Disease           string    `json:"disease" firestore:"disease"`
	VaccineType       string    `json:"vaccineType,omitempty" firestore:"vaccineType,omitempty"`
	AnimalsVaccinated float64   `json:"animalsVaccinated" firestore:"animalsVaccinated"`
	FarmersReached    float64   `json:"farmersReached" firestore:"farmersReached"`
	Officer           string    `json:"officer,omitempty" firestore:"officer,omitempty"`
	Date              time.Time `json:"date,omitempty" firestore:"date"`
}

// TrainingSession is one capacity-building session.
type TrainingSession struct {
	ID           string    `json:"id" firestore:"-"`
	Topic        string    `json:"topic" firestore:"topic"`
	Region       string    `json:"region" firestore:"region"`
	Venue        string    `json:"venue,omitempty" firestore:"venue,omitempty"`
	Trainer      string    `json:"trainer,omitempty" firestore:"trainer,omitempty"`
	MaleCount    float64   `json:"maleParticipants" firestore:"maleParticipants"`
	FemaleCount  float64   `json:"femaleParticipants" firestore:"femaleParticipants"`
	Date         time.Time `json:"date,omitempty" firestore:"date"`
}

// OfftakeTransaction is one livestock sale brokered through the program.
type OfftakeTransaction struct {
	ID         string    `json:"id" firestore:"-"`
	FarmerName string    `json:"farmerName" firestore:"farmerName"`
	Region     string    `json:"region" firestore:"region"`
	AnimalType string    `json:"animalType" firestore:"animalType"`
	Quantity   float64   `json:"quantity" firestore:"quantity"`
	UnitPrice  float64   `json:"unitPrice" firestore:"unitPrice"`
	TotalValue float64   `json:"totalValue" firestore:"totalValue"`
	Buyer      string    `json:"buyer,omitempty" firestore:"buyer,omitempty"`
	Date       time.Time `json:"date,omitempty" firestore:"date"`
}

// OnboardingSession is one community onboarding event.
type OnboardingSession struct {
	ID           string    `json:"id" firestore:"-"`
	Region       string    `json:"region" firestore:"region"`
	Venue        string    `json:"venue,omitempty" firestore:"venue,omitempty"`
	Facilitator  string    `json:"facilitator,omitempty" firestore:"facilitator,omitempty"`
	Participants float64   `json:"participants" firestore:"participants"`
	Notes        string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	Date         time.Time `json:"date,omitempty" firestore:"date"`
}
