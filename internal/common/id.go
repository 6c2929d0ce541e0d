package common

import (
	"github.com/google/uuid"
)

// NewProductID generates a unique product ID with the "prd_" prefix
func NewProductID() string {
	return "prd_" + uuid.New().String()
}

// NewProjectID generates a unique project ID with the "prj_" prefix
func NewProjectID() string {
	return "prj_" + uuid.New().String()
}

// NewEventID generates a unique event ID with the "evt_" prefix
func NewEventID() string {
	return "evt_" + uuid.New().String()
}

// NewPostID generates a unique post ID with the "post_" prefix
func NewPostID() string {
	return "post_" + uuid.New().String()
}

// NewResourceID generates a unique resource ID with the "res_" prefix
func NewResourceID() string {
	return "res_" + uuid.New().String()
}

// NewLeadID generates a unique lead ID with the "lead_" prefix
func NewLeadID() string {
	return "lead_" + uuid.New().String()
}
