package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/delivery/http/middleware"
	"doctor-verification/internal/usecase/mocks"
	"doctor-verification/pkg/apperror"
	"doctor-verification/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Kind    string                 `json:"kind"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func newRequest(t *testing.T, method, target string, body interface{}, vars map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithPrincipal(req.Context(), middleware.Principal{UserID: userID}))
}

type VerificationHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	verification *mocks.MockVerificationUsecase
	documents    *mocks.MockDocumentReviewUsecase
	handler      *VerificationHandler
}

func (s *VerificationHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.verification = mocks.NewMockVerificationUsecase(s.ctrl)
	s.documents = mocks.NewMockDocumentReviewUsecase(s.ctrl)
	s.handler = NewVerificationHandler(s.verification, s.documents, validator.NewValidator())
}

func TestVerificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerificationHandlerSuite))
}

func (s *VerificationHandlerSuite) TestReviewProfile_Approve() {
	req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/doctors/7/review",
		dto.ReviewProfileRequest{Action: dto.ReviewActionApprove}, map[string]string{"id": "7"})

	s.verification.EXPECT().ReviewProfile(gomock.Any(), 7, &dto.ReviewProfileRequest{Action: dto.ReviewActionApprove}).
		Return(&dto.DoctorResponse{ID: 7, VerificationStatus: "approved"}, nil)

	rec := httptest.NewRecorder()
	s.handler.ReviewProfile(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	body := decode(s.T(), rec)
	s.True(body.Success)
	s.Equal("Doctor profile approved", body.Message)
	s.Contains(string(body.Data), `"verification_status":"approved"`)
}

func (s *VerificationHandlerSuite) TestReviewProfile_RejectRequiresComments() {
	for _, comments := range []string{"", "   "} {
		req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/doctors/7/review",
			dto.ReviewProfileRequest{Action: dto.ReviewActionReject, Comments: comments}, map[string]string{"id": "7"})

		rec := httptest.NewRecorder()
		s.handler.ReviewProfile(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code, "comments %q", comments)
		body := decode(s.T(), rec)
		s.Equal(string(apperror.KindValidation), body.Error.Kind)
		s.Contains(body.Error.Details, "fields")
	}
}

func (s *VerificationHandlerSuite) TestReviewProfile_UnknownAction() {
	req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/doctors/7/review",
		map[string]string{"action": "escalate"}, map[string]string{"id": "7"})

	rec := httptest.NewRecorder()
	s.handler.ReviewProfile(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *VerificationHandlerSuite) TestReviewProfile_GateNotSatisfied() {
	req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/doctors/7/review",
		dto.ReviewProfileRequest{Action: dto.ReviewActionApprove}, map[string]string{"id": "7"})

	gateErr := apperror.GateNotSatisfied("documents pending review").WithDetails(map[string]interface{}{
		"pending_document_ids": []int{3},
	})
	s.verification.EXPECT().ReviewProfile(gomock.Any(), 7, gomock.Any()).Return(nil, gateErr)

	rec := httptest.NewRecorder()
	s.handler.ReviewProfile(rec, req)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	body := decode(s.T(), rec)
	s.False(body.Success)
	s.Equal("documents pending review", body.Message)
	s.Equal(string(apperror.KindGateNotSatisfied), body.Error.Kind)
	s.Equal([]interface{}{float64(3)}, body.Error.Details["pending_document_ids"])
}

func (s *VerificationHandlerSuite) TestReviewProfile_InvalidID() {
	req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/doctors/abc/review",
		dto.ReviewProfileRequest{Action: dto.ReviewActionApprove}, map[string]string{"id": "abc"})

	rec := httptest.NewRecorder()
	s.handler.ReviewProfile(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid doctor ID", decode(s.T(), rec).Message)
}

func (s *VerificationHandlerSuite) TestReviewDocument_AlreadyReviewed() {
	req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/documents/4/review",
		dto.ReviewDocumentRequest{Action: dto.ReviewActionReject, Notes: "expired"}, map[string]string{"id": "4"})

	s.documents.EXPECT().ReviewDocument(gomock.Any(), 4, gomock.Any()).
		Return(nil, apperror.InvalidState("document has already been approved"))

	rec := httptest.NewRecorder()
	s.handler.ReviewDocument(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
	body := decode(s.T(), rec)
	s.Equal(string(apperror.KindInvalidState), body.Error.Kind)
	s.Equal("document has already been approved", body.Message)
}

func (s *VerificationHandlerSuite) TestReviewDocument_ConcurrentModification() {
	req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/documents/4/review",
		dto.ReviewDocumentRequest{Action: dto.ReviewActionApprove}, map[string]string{"id": "4"})

	s.documents.EXPECT().ReviewDocument(gomock.Any(), 4, gomock.Any()).
		Return(nil, apperror.ConcurrentModification("record was modified by another reviewer, refresh and retry"))

	rec := httptest.NewRecorder()
	s.handler.ReviewDocument(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(string(apperror.KindConcurrentModification), decode(s.T(), rec).Error.Kind)
}

func (s *VerificationHandlerSuite) TestReviewDocument_RejectRequiresNotes() {
	req := newRequest(s.T(), http.MethodPost, "/api/v1/admin/documents/4/review",
		dto.ReviewDocumentRequest{Action: dto.ReviewActionReject}, map[string]string{"id": "4"})

	rec := httptest.NewRecorder()
	s.handler.ReviewDocument(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *VerificationHandlerSuite) TestSubmitDocument() {
	userID := uuid.New()
	payload := dto.SubmitDocumentRequest{
		DocumentType: "license",
		FileURL:      "https://files.example.com/license.pdf",
		FileName:     "license.pdf",
	}

	s.Run("unauthenticated", func() {
		rec := httptest.NewRecorder()
		s.handler.SubmitDocument(rec, newRequest(s.T(), http.MethodPost, "/api/v1/doctor/documents", payload, nil))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid type", func() {
		bad := payload
		bad.DocumentType = "passport"
		rec := httptest.NewRecorder()
		s.handler.SubmitDocument(rec, withUser(newRequest(s.T(), http.MethodPost, "/api/v1/doctor/documents", bad, nil), userID))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("created", func() {
		s.documents.EXPECT().SubmitDocument(gomock.Any(), userID, &payload).
			Return(&dto.DocumentResponse{ID: 11, DocumentType: "license", Status: "pending"}, nil)

		rec := httptest.NewRecorder()
		s.handler.SubmitDocument(rec, withUser(newRequest(s.T(), http.MethodPost, "/api/v1/doctor/documents", payload, nil), userID))
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(string(decode(s.T(), rec).Data), `"status":"pending"`)
	})
}

func (s *VerificationHandlerSuite) TestGetOwnVerification_NoProfile() {
	userID := uuid.New()
	s.verification.EXPECT().GetOwnVerification(gomock.Any(), userID).
		Return(nil, apperror.NotFound("doctor profile not found"))

	rec := httptest.NewRecorder()
	s.handler.GetOwnVerification(rec, withUser(newRequest(s.T(), http.MethodGet, "/api/v1/doctor/verification", nil, nil), userID))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *VerificationHandlerSuite) TestGetVerification_InternalErrorHidesCause() {
	s.verification.EXPECT().GetVerification(gomock.Any(), 7).
		Return(nil, apperror.Internal(errors.New("dial tcp 10.0.0.5:5432: connection refused"), "failed to load doctor profile"))

	rec := httptest.NewRecorder()
	s.handler.GetVerification(rec, newRequest(s.T(), http.MethodGet, "/api/v1/admin/doctors/7/verification", nil, map[string]string{"id": "7"}))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "10.0.0.5")
	s.Equal("failed to load doctor profile", decode(s.T(), rec).Message)
}

func TestDoctorHandler_ListDoctors(t *testing.T) {
	ctrl := gomock.NewController(t)
	doctors := mocks.NewMockDoctorProfileUsecase(ctrl)
	h := NewDoctorHandler(doctors, validator.NewValidator())

	t.Run("invalid status tab", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ListDoctors(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/doctors?status=archived", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("search and tab", func(t *testing.T) {
		doctors.EXPECT().ListDoctors(gomock.Any(), &dto.WorklistQuery{Search: "ana", Status: "pending"}).
			Return(&dto.DoctorListResponse{Doctors: []dto.DoctorResponse{{ID: 1}, {ID: 2}}, Total: 2}, nil)

		rec := httptest.NewRecorder()
		h.ListDoctors(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/doctors?search=ana&status=pending", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Meta)
		assert.Equal(t, int64(2), body.Meta.Total)
	})
}

func TestDoctorHandler_GetDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	doctors := mocks.NewMockDoctorProfileUsecase(ctrl)
	h := NewDoctorHandler(doctors, validator.NewValidator())

	doctors.EXPECT().GetDoctor(gomock.Any(), 404).Return(nil, apperror.NotFound("doctor profile not found"))

	rec := httptest.NewRecorder()
	h.GetDoctor(rec, newRequest(t, http.MethodGet, "/api/v1/admin/doctors/404", nil, map[string]string{"id": "404"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(apperror.KindNotFound), decode(t, rec).Error.Kind)
}

func TestDoctorHandler_CreateDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	doctors := mocks.NewMockDoctorProfileUsecase(ctrl)
	h := NewDoctorHandler(doctors, validator.NewValidator())

	t.Run("validation", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CreateDoctor(rec, newRequest(t, http.MethodPost, "/api/v1/admin/doctors", map[string]string{
			"email": "not-an-email", "password": "short", "first_name": " ", "last_name": "Lee",
		}, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields, ok := decode(t, rec).Error.Details["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
		assert.Contains(t, fields, "first_name")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CreateDoctor(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/doctors", bytes.NewBufferString("{")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		doctors.EXPECT().CreateDoctor(gomock.Any(), gomock.Any()).Return(nil, apperror.Validation("email already exists"))

		rec := httptest.NewRecorder()
		h.CreateDoctor(rec, newRequest(t, http.MethodPost, "/api/v1/admin/doctors", map[string]string{
			"email": "ana@example.com", "password": "correct-horse", "first_name": "Ana", "last_name": "Lee",
		}, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email already exists", decode(t, rec).Message)
	})
}

func TestDoctorHandler_UpdateSelfProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	doctors := mocks.NewMockDoctorProfileUsecase(ctrl)
	h := NewDoctorHandler(doctors, validator.NewValidator())
	userID := uuid.New()
	bio := "Cardiologist"

	doctors.EXPECT().UpdateSelfProfile(gomock.Any(), userID, &dto.DoctorUpdateSelfRequest{Bio: &bio}).
		Return(&dto.DoctorResponse{ID: 3, Bio: bio}, nil)

	rec := httptest.NewRecorder()
	h.UpdateSelfProfile(rec, withUser(newRequest(t, http.MethodPut, "/api/v1/doctor/profile", map[string]string{"bio": bio}, nil), userID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuditLogHandler_GetAllAuditLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditLogUsecase(ctrl)
	h := NewAuditLogHandler(audit, validator.NewValidator())

	t.Run("non numeric limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetAllAuditLogs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?limit=ten", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("limit out of range", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetAllAuditLogs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?limit=1000", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("filters", func(t *testing.T) {
		audit.EXPECT().GetAllAuditLogs(gomock.Any(), &dto.AuditLogQuery{
			Entity: "doctor_profile", EntityID: "7", Limit: 20,
		}).Return(&dto.AuditLogListResponse{}, nil)

		rec := httptest.NewRecorder()
		h.GetAllAuditLogs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?entity=doctor_profile&entity_id=7&limit=20", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuditLogHandler_GetAuditLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditLogUsecase(ctrl)
	h := NewAuditLogHandler(audit, validator.NewValidator())

	audit.EXPECT().GetAuditLog(gomock.Any(), int64(9)).Return(&dto.AuditLogResponse{ID: 9}, nil)

	rec := httptest.NewRecorder()
	h.GetAuditLog(rec, newRequest(t, http.MethodGet, "/api/v1/admin/audit-logs/9", nil, map[string]string{"id": "9"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}
