// Package verification holds the profile gate: the read-only eligibility
// predicate that must hold before a doctor profile can be approved.
package verification

import (
	"sort"

	"doctor-verification/internal/domain/entity"
	"doctor-verification/pkg/apperror"
)

// Reason names the first gate condition that failed
type Reason string

const (
	ReasonNone                     Reason = ""
	ReasonMissingRequiredDocuments Reason = "missing required documents"
	ReasonDocumentsPendingReview   Reason = "documents pending review"
	ReasonRejectedDocumentsPresent Reason = "rejected documents present"
)

// RequiredDocumentTypes must each have at least one upload, in any status
var RequiredDocumentTypes = []entity.DocumentType{
	entity.DocumentTypeLicense,
	entity.DocumentTypeProfilePhoto,
}

// GateResult is the outcome of evaluating the gate against one document snapshot
type GateResult struct {
	Eligible             bool
	Reason               Reason
	MissingDocumentTypes []entity.DocumentType
	PendingDocumentIDs   []int
	RejectedDocumentIDs  []int
}

// Err converts an ineligible result into a gate_not_satisfied error
func (r GateResult) Err() error {
	if r.Eligible {
		return nil
	}
	return apperror.GateNotSatisfied(string(r.Reason)).WithDetails(map[string]interface{}{
		"missing_document_types": r.MissingDocumentTypes,
		"pending_document_ids":   r.PendingDocumentIDs,
		"rejected_document_ids":  r.RejectedDocumentIDs,
	})
}

// LatestByType keeps the newest document of each type.
// Newest is the greatest CreatedAt; equal timestamps fall back to the greatest ID,
// so the result does not depend on the order documents were fetched in.
func LatestByType(documents []entity.VerificationDocument) map[entity.DocumentType]entity.VerificationDocument {
	latest := make(map[entity.DocumentType]entity.VerificationDocument, len(entity.DocumentTypes))
	for i := range documents {
		doc := documents[i]
		current, ok := latest[doc.DocumentType]
		if !ok || current.SupersededBy(&doc) {
			latest[doc.DocumentType] = doc
		}
	}
	return latest
}

// Evaluate checks, in order, that required documents exist, that nothing is
// pending review and that no current document is rejected. The first failing
// condition is reported. Documents belonging to another doctor are ignored.
//
// Both the pending and the rejected checks cover every document the doctor
// owns, superseded uploads included. A rejected upload keeps blocking approval
// after a corrected reupload; the admin rejects the profile instead.
func Evaluate(profile *entity.DoctorProfile, documents []entity.VerificationDocument) GateResult {
	owned := make([]entity.VerificationDocument, 0, len(documents))
	for _, doc := range documents {
		if doc.DoctorID == profile.ID {
			owned = append(owned, doc)
		}
	}

	latest := LatestByType(owned)
	result := GateResult{
		MissingDocumentTypes: []entity.DocumentType{},
		PendingDocumentIDs:   []int{},
		RejectedDocumentIDs:  []int{},
	}

	for _, required := range RequiredDocumentTypes {
		if _, ok := latest[required]; !ok {
			result.MissingDocumentTypes = append(result.MissingDocumentTypes, required)
		}
	}
	for _, doc := range owned {
		switch {
		case doc.IsPending():
			result.PendingDocumentIDs = append(result.PendingDocumentIDs, doc.ID)
		case doc.IsRejected():
			result.RejectedDocumentIDs = append(result.RejectedDocumentIDs, doc.ID)
		}
	}
	sort.Ints(result.PendingDocumentIDs)
	sort.Ints(result.RejectedDocumentIDs)

	switch {
	case len(result.MissingDocumentTypes) > 0:
		result.Reason = ReasonMissingRequiredDocuments
	case len(result.PendingDocumentIDs) > 0:
		result.Reason = ReasonDocumentsPendingReview
	case len(result.RejectedDocumentIDs) > 0:
		result.Reason = ReasonRejectedDocumentsPresent
	default:
		result.Eligible = true
	}
	return result
}
