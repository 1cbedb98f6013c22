package dto

// RegistrationRequest body para crear o actualizar una contraparte.
type RegistrationRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Document    string `json:"document,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Responsible string `json:"responsible,omitempty"`
	Plate       string `json:"plate,omitempty"`
	City        string `json:"city,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// RegistrationResponse representación HTTP de una contraparte.
type RegistrationResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Document    string `json:"document,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Responsible string `json:"responsible,omitempty"`
	Plate       string `json:"plate,omitempty"`
	City        string `json:"city,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
