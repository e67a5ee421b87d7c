package converter

import (
	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/domain/entity"
)

// DocumentToResponse converts a VerificationDocument entity to DocumentResponse DTO
func DocumentToResponse(doc *entity.VerificationDocument) *dto.DocumentResponse {
	if doc == nil {
		return nil
	}

	return &dto.DocumentResponse{
		ID:           doc.ID,
		DoctorID:     doc.DoctorID,
		DocumentType: string(doc.DocumentType),
		FileURL:      doc.FileURL,
		FileName:     doc.FileName,
		Status:       string(doc.Status),
		Notes:        doc.Notes,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func DocumentsToResponses(docs []entity.VerificationDocument) []dto.DocumentResponse {
	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *DocumentToResponse(&docs[i])
	}
	return responses
}
