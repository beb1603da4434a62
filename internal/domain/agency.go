package domain

// AgencyProfile is the travel agency's own record: branding and contact
// details shown on client-facing documents. One profile per installation,
// persisted as a single snapshot.
type AgencyProfile struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logoUrl"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	PrimaryColor string `json:"primaryColor"`
}

// DefaultAgency is the profile seeded on first run.
func DefaultAgency() AgencyProfile {
	return AgencyProfile{
		Name:         "TravelFlow Agency",
		Email:        "contact@travelflow.com",
		Phone:        "+1 (555) 0123-456",
		Website:      "www.travelflow.com",
		PrimaryColor: "#4f46e5",
	}
}
