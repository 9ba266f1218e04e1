package models

import "fmt"

// SignupRequest is bound from the path parameter and the email query string.
type SignupRequest struct {
	ActivityName string `validate:"required"`
	Email        string `validate:"required"`
}

// SignupConfirmation is returned by a successful signup.
type SignupConfirmation struct {
	Email        string
	Activity     string
	Participants int // participant count right after the append
}

func (s SignupConfirmation) Message() string {
	return fmt.Sprintf("Signed up %s for %s", s.Email, s.Activity)
}

// MessageResponse ใช้เป็นโครงสร้าง JSON Response ที่ Swagger ใช้
type MessageResponse struct {
	Message string `json:"message" example:"Signed up new@mergington.edu for Chess Club"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	Activities int    `json:"activities" example:"9"`
}
