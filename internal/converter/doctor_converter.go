package converter

import (
	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                   profile.ID,
		UserID:               profile.UserID,
		Email:                profile.User.Email,
		FirstName:            profile.User.FirstName,
		LastName:             profile.User.LastName,
		FullName:             profile.User.FullName(),
		SpecialtyID:          profile.SpecialtyID,
		Bio:                  profile.Bio,
		Education:            profile.Education,
		Experience:           profile.Experience,
		ConsultationFee:      profile.ConsultationFee,
		AvailableHours:       profile.AvailableHours,
		IsActive:             profile.User.IsActive,
		VerificationStatus:   string(profile.VerificationStatus),
		VerificationComments: profile.VerificationComments,
		CreatedAt:            profile.CreatedAt,
		UpdatedAt:            profile.UpdatedAt,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}

// StatusCountsToResponse fills every tab, including the "all" total
func StatusCountsToResponse(counts map[entity.VerificationStatus]int64) *dto.StatusCountsResponse {
	response := &dto.StatusCountsResponse{
		Pending:  counts[entity.VerificationStatusPending],
		Approved: counts[entity.VerificationStatusApproved],
		Rejected: counts[entity.VerificationStatusRejected],
	}
	response.All = response.Pending + response.Approved + response.Rejected
	return response
}
