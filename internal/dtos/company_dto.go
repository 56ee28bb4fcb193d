package dtos

import "github.com/justsurfingit/placement-portal/internal/models"

type CompanyCreationRequest struct {
	Name string `json:"name"`

	// Optional Fields
	Location            string            `json:"location"`
	Positions           []models.Position `json:"positions"`
	EligibilityCriteria []string          `json:"eligibilityCriteria"`
}

type AdminCreationRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// DataResponse is the envelope every successful response is wrapped in.
type DataResponse struct {
	Data any `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
