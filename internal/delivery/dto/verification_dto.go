package dto

// Review actions accepted by the review endpoints
const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

type ReviewProfileRequest struct {
	Action   string `json:"action" validate:"required,oneof=approve reject"`
	Comments string `json:"comments" validate:"required_if=Action reject,omitempty,notblank"`
}

// GateResponse explains whether the profile can be approved and what blocks it
type GateResponse struct {
	Eligible             bool     `json:"eligible"`
	Reason               string   `json:"reason,omitempty"`
	MissingDocumentTypes []string `json:"missing_document_types"`
	PendingDocumentIDs   []int    `json:"pending_document_ids"`
	RejectedDocumentIDs  []int    `json:"rejected_document_ids"`
}

type VerificationResponse struct {
	Doctor          DoctorResponse              `json:"doctor"`
	Documents       []DocumentResponse          `json:"documents"`
	LatestDocuments map[string]DocumentResponse `json:"latest_documents"`
	Gate            GateResponse                `json:"gate"`
}
