package handler

import (
	"encoding/json"
	"net/http"

	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/delivery/http/middleware"
	"doctor-verification/internal/usecase"
	"doctor-verification/pkg/response"
	"doctor-verification/pkg/validator"
)

// VerificationHandler exposes the review actions to admins and the
// verification overview and document upload to doctors.
type VerificationHandler struct {
	verificationUsecase usecase.VerificationUsecase
	documentUsecase     usecase.DocumentReviewUsecase
	validator           *validator.CustomValidator
}

func NewVerificationHandler(
	verificationUsecase usecase.VerificationUsecase,
	documentUsecase usecase.DocumentReviewUsecase,
	validator *validator.CustomValidator,
) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
		documentUsecase:     documentUsecase,
		validator:           validator,
	}
}

func (h *VerificationHandler) GetVerification(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "Invalid doctor ID")
	if !ok {
		return
	}

	overview, err := h.verificationUsecase.GetVerification(r.Context(), doctorID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Verification retrieved successfully", overview)
}

func (h *VerificationHandler) ReviewProfile(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "Invalid doctor ID")
	if !ok {
		return
	}

	var req dto.ReviewProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.verificationUsecase.ReviewProfile(r.Context(), doctorID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile "+pastTense(req.Action), doctor)
}

func (h *VerificationHandler) ReviewDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(w, r, "Invalid document ID")
	if !ok {
		return
	}

	var req dto.ReviewDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.documentUsecase.ReviewDocument(r.Context(), documentID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Document "+pastTense(req.Action), document)
}

func (h *VerificationHandler) GetOwnVerification(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	overview, err := h.verificationUsecase.GetOwnVerification(r.Context(), userID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Verification retrieved successfully", overview)
}

func (h *VerificationHandler) SubmitDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.SubmitDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.documentUsecase.SubmitDocument(r.Context(), userID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Document submitted successfully", document)
}

func pastTense(action string) string {
	if action == dto.ReviewActionApprove {
		return "approved"
	}
	return "rejected"
}
