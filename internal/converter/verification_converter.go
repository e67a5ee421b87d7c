package converter

import (
	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/domain/verification"
)

func GateResultToResponse(result verification.GateResult) dto.GateResponse {
	missing := make([]string, len(result.MissingDocumentTypes))
	for i, docType := range result.MissingDocumentTypes {
		missing[i] = string(docType)
	}

	return dto.GateResponse{
		Eligible:             result.Eligible,
		Reason:               string(result.Reason),
		MissingDocumentTypes: missing,
		PendingDocumentIDs:   result.PendingDocumentIDs,
		RejectedDocumentIDs:  result.RejectedDocumentIDs,
	}
}

// VerificationToResponse builds the review page: profile, every upload, the
// current upload per type and the gate outcome.
func VerificationToResponse(profile *entity.DoctorProfile, docs []entity.VerificationDocument, result verification.GateResult) *dto.VerificationResponse {
	latest := verification.LatestByType(docs)
	latestResponses := make(map[string]dto.DocumentResponse, len(latest))
	for docType, doc := range latest {
		latestResponses[string(docType)] = *DocumentToResponse(&doc)
	}

	return &dto.VerificationResponse{
		Doctor:          *DoctorProfileToResponse(profile),
		Documents:       DocumentsToResponses(docs),
		LatestDocuments: latestResponses,
		Gate:            GateResultToResponse(result),
	}
}
