package catalog

import "healthcare-portal/internal/models"

const (
	demoHospital         = "City General Hospital"
	demoHospitalLocation = "Downtown, Main Street"
	demoDepartment       = "Cardiology"
)

// DemoPatient builds the full default profile materialized for a demo patient login.
func DemoPatient(c Credential) models.Patient {
	name := "Jane Smith"
	if c.Username == "patient1" {
		name = "John Doe"
	}
	return models.Patient{
		Email:           c.Email,
		Username:        c.Username,
		Password:        c.Password,
		Name:            name,
		Gender:          models.GenderMale,
		Age:             35,
		BMI:             24.5,
		Address:         "123 Main Street, City",
		BloodGroup:      models.BloodOPositive,
		Income:          50000,
		Religion:        "Christianity",
		Occupation:      "Software Engineer",
		FamilyDiseases:  "Diabetes",
		Documents:       []models.Document{},
		Appointments:    []models.Appointment{},
		PreviousDetails: []models.ProfileSnapshot{},
	}
}

// DemoDoctor builds the seeded record for a demo doctor login.
func DemoDoctor(c Credential) models.Doctor {
	name := "Dr. Sarah Wilson"
	if c.Username == "dr.smith" {
		name = "Dr. John Smith"
	}
	return models.Doctor{
		Username:     c.Username,
		Password:     c.Password,
		Name:         name,
		Department:   demoDepartment,
		Hospital:     demoHospital,
		Appointments: []models.Appointment{},
		TreatmentHistory: []models.TreatmentRecord{
			{Date: "2024-12-10", PatientsCount: 12},
			{Date: "2024-12-09", PatientsCount: 15},
			{Date: "2024-12-08", PatientsCount: 10},
		},
	}
}

// DefaultDoctor is shown to a doctor session whose record is not stored.
func DefaultDoctor(username string) models.Doctor {
	return models.Doctor{
		Username:     username,
		Name:         "Dr. John Smith",
		Department:   demoDepartment,
		Hospital:     demoHospital,
		Appointments: []models.Appointment{},
		TreatmentHistory: []models.TreatmentRecord{
			{Date: "2024-12-10", PatientsCount: 12},
			{Date: "2024-12-09", PatientsCount: 15},
			{Date: "2024-12-08", PatientsCount: 10},
			{Date: "2024-12-07", PatientsCount: 14},
			{Date: "2024-12-06", PatientsCount: 11},
		},
	}
}

// DemoAdmin builds the seeded record for a demo admin login.
func DemoAdmin(c Credential) models.Admin {
	return models.Admin{
		Username:         c.Username,
		Password:         c.Password,
		HospitalName:     demoHospital,
		HospitalLocation: demoHospitalLocation,
		HospitalLogo:     "",
		Departments:      []models.DepartmentStats{},
	}
}

// DefaultAdmin is shown to an admin session whose record is not stored.
func DefaultAdmin(username string) models.Admin {
	return models.Admin{
		Username:         username,
		HospitalName:     demoHospital,
		HospitalLocation: demoHospitalLocation,
		Departments:      []models.DepartmentStats{},
	}
}
