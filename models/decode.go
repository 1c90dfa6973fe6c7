package models

import "farmhub/backend/store"

// Decoders from raw store documents to the canonical records. Field names
// drifted across frontend versions, so each field resolves a union of
// recognized source names; after this point nothing downstream ever sees a
// raw document.

func LivestockFarmerFromDoc(d store.Doc) LivestockFarmer {
	return LivestockFarmer{
		ID:            d.ID,
		Name:          d.Str("name", "farmerName", "fullName"),
		IDNumber:      d.Str("idNumber", "nationalId"),
		Phone:         d.Str("phone", "phoneNumber", "contact"),
		Gender:        d.Str("gender", "sex"),
		Region:        d.Str("region", "county"),
		Ward:          d.Str("ward", "subCounty"),
		LivestockType: d.Str("livestockType", "animalType"),
		HerdSize:      d.Float("herdSize", "numberOfAnimals"),
		RegisteredBy:  d.Str("registeredBy", "enteredBy"),
		Date:          d.Date("date", "registrationDate", "createdAt", "timestamp"),
	}
}

func FodderFarmerFromDoc(d store.Doc) FodderFarmer {
	return FodderFarmer{
		ID:           d.ID,
		Name:         d.Str("name", "farmerName", "fullName"),
		Phone:        d.Str("phone", "phoneNumber", "contact"),
		Gender:       d.Str("gender", "sex"),
		Region:       d.Str("region", "county"),
		Ward:         d.Str("ward", "subCounty"),
		FodderType:   d.Str("fodderType", "cropType"),
		Acreage:      d.Float("acreage", "acres", "landSize"),
		BalesHarvest: d.Float("balesHarvested", "bales", "harvest"),
		RegisteredBy: d.Str("registeredBy", "enteredBy"),
		Date:         d.Date("date", "registrationDate", "createdAt", "timestamp"),
	}
}

func BoreholeFromDoc(d store.Doc) Borehole {
	return Borehole{
		ID:        d.ID,
		Name:      d.Str("name", "siteName", "boreholeName"),
		Region:    d.Str("region", "county"),
		Ward:      d.Str("ward", "subCounty"),
		Latitude:  d.Float("latitude", "lat"),
		Longitude: d.Float("longitude", "lng", "lon"),
		Depth:     d.Float("depthMeters", "depth"),
		Status:    d.Str("status", "operationalStatus"),
		Date:      d.Date("date", "commissionedDate", "createdAt", "timestamp"),
	}
}

func VaccinationFromDoc(d store.Doc) VaccinationActivity {
	return VaccinationActivity{
		ID:                d.ID,
		Region:            d.Str("region", "county"),
		Ward:              d.Str("ward", "subCounty"),
		Disease:           d.Str("disease", "diseaseTargeted"),
		VaccineType:       d.Str("vaccineType", "vaccine"),
		AnimalsVaccinated: d.Float("animalsVaccinated", "numberVaccinated", "animals"),
		FarmersReached:    d.Float("farmersReached", "farmers"),
		Officer:           d.Str("officer", "vetOfficer", "conductedBy"),
		Date:              d.Date("date", "activityDate", "createdAt", "timestamp"),
	}
}

func TrainingFromDoc(d store.Doc) TrainingSession {
	return TrainingSession{
		ID:          d.ID,
		Topic:       d.Str("topic", "trainingTopic", "title"),
		Region:      d.Str("region", "county"),
		Venue:       d.Str("venue", "location"),
		Trainer:     d.Str("trainer", "facilitator"),
		MaleCount:   d.Float("maleParticipants", "male", "men"),
		FemaleCount: d.Float("femaleParticipants", "female", "women"),
		Date:        d.Date("date", "trainingDate", "createdAt", "timestamp"),
	}
}

func OfftakeFromDoc(d store.Doc) OfftakeTransaction {
	t := OfftakeTransaction{
		ID:         d.ID,
		FarmerName: d.Str("farmerName", "name", "seller"),
		Region:     d.Str("region", "county"),
		AnimalType: d.Str("animalType", "species"),
		Quantity:   d.Float("quantity", "numberSold", "animals"),
		UnitPrice:  d.Float("unitPrice", "pricePerHead", "price"),
		TotalValue: d.Float("totalValue", "totalAmount", "amount"),
		Buyer:      d.Str("buyer", "buyerName"),
		Date:       d.Date("date", "saleDate", "createdAt", "timestamp"),
	}
	// Older documents only recorded quantity and unit price.
	if t.TotalValue == 0 {
		t.TotalValue = t.Quantity * t.UnitPrice
	}
	return t
}

func OnboardingFromDoc(d store.Doc) OnboardingSession {
	return OnboardingSession{
		ID:           d.ID,
		Region:       d.Str("region", "county"),
		Venue:        d.Str("venue", "location"),
		Facilitator:  d.Str("facilitator", "conductedBy"),
		Participants: d.Float("participants", "attendees", "numberOnboarded"),
		Notes:        d.Str("notes", "remarks"),
		Date:         d.Date("date", "sessionDate", "createdAt", "timestamp"),
	}
}
