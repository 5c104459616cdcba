package handlers

// CaseRequest is the body of POST /api/cases
type CaseRequest struct {
	Name string `json:"name"`
}

// MessageResponse is the JSON body returned by the API endpoints
type MessageResponse struct {
	Message string `json:"message"`
	CaseID  uint   `json:"case_id,omitempty"`
}
