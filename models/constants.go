package models

// Record collections in the program's Firestore project
const (
	CollectionLivestockFarmers = "livestockFarmers"
	CollectionFodderFarmers    = "fodderFarmers"
	CollectionBoreholes        = "boreholes"
	CollectionVaccinations     = "vaccinationActivities"
	CollectionTrainings        = "trainingSessions"
	CollectionOfftakes         = "offtakeTransactions"
	CollectionOnboardings      = "onboardingSessions"
)

// Roles
const (
	RoleFieldStaff = "field_staff"
	RoleChiefAdmin = "chief_admin"
)

// DefaultChiefAdmins are granted the chief_admin role on first sync.
var DefaultChiefAdmins = []string{
	"Ezekiel Kirui",
	"Program Coordinator",
}
