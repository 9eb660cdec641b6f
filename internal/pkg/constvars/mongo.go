package constvars

// Collection names mirror the pluralised lowercase names Mongoose derived
// from the original model names, so the service can run against an existing
// book_a_doc_db database.
const (
	MongoCollectionPatients             = "patients"
	MongoCollectionDoctors              = "doctors"
	MongoCollectionSpecialties          = "specialties"
	MongoCollectionMedicalCentres       = "medicalcentres"
	MongoCollectionAvailabilities       = "availabilities"
	MongoCollectionDoctorCentres        = "doctorcentres"
	MongoCollectionDoctorAvailabilities = "doctoravailabilities"
	MongoCollectionBookings             = "bookings"
)
