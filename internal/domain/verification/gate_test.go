package verification

import (
	"math/rand"
	"testing"
	"time"

	"doctor-verification/internal/domain/entity"
	"doctor-verification/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newDoc(id int, docType entity.DocumentType, status entity.DocumentStatus, offset time.Duration) entity.VerificationDocument {
	return entity.VerificationDocument{
		ID:           id,
		DoctorID:     7,
		DocumentType: docType,
		Status:       status,
		FileURL:      "https://files.example.com/doc",
		FileName:     string(docType) + ".pdf",
		CreatedAt:    baseTime.Add(offset),
		UpdatedAt:    baseTime.Add(offset),
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	profile := &entity.DoctorProfile{ID: 7, VerificationStatus: entity.VerificationStatusPending}

	tests := []struct {
		name     string
		docs     []entity.VerificationDocument
		eligible bool
		reason   Reason
	}{
		{
			name:   "no documents",
			docs:   nil,
			reason: ReasonMissingRequiredDocuments,
		},
		{
			name: "profile photo missing",
			docs: []entity.VerificationDocument{
				newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusApproved, 0),
				newDoc(2, entity.DocumentTypeCurriculum, entity.DocumentStatusApproved, 0),
			},
			reason: ReasonMissingRequiredDocuments,
		},
		{
			name: "photo pending",
			docs: []entity.VerificationDocument{
				newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusApproved, 0),
				newDoc(2, entity.DocumentTypeProfilePhoto, entity.DocumentStatusPending, 0),
			},
			reason: ReasonDocumentsPendingReview,
		},
		{
			name: "license rejected",
			docs: []entity.VerificationDocument{
				func() entity.VerificationDocument {
					d := newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusRejected, 0)
					d.Notes = "blurry image"
					return d
				}(),
				newDoc(2, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0),
			},
			reason: ReasonRejectedDocumentsPresent,
		},
		{
			name: "all approved",
			docs: []entity.VerificationDocument{
				newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusApproved, 0),
				newDoc(2, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0),
			},
			eligible: true,
		},
		{
			name: "missing wins over pending",
			docs: []entity.VerificationDocument{
				newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusPending, 0),
			},
			reason: ReasonMissingRequiredDocuments,
		},
		{
			name: "pending wins over rejected",
			docs: []entity.VerificationDocument{
				newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusRejected, 0),
				newDoc(2, entity.DocumentTypeProfilePhoto, entity.DocumentStatusPending, 0),
			},
			reason: ReasonDocumentsPendingReview,
		},
		{
			name: "rejected optional document blocks",
			docs: []entity.VerificationDocument{
				newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusApproved, 0),
				newDoc(2, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0),
				newDoc(3, entity.DocumentTypeCertificates, entity.DocumentStatusRejected, 0),
			},
			reason: ReasonRejectedDocumentsPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(profile, tt.docs)
			assert.Equal(t, tt.eligible, result.Eligible)
			assert.Equal(t, tt.reason, result.Reason)
			if tt.eligible {
				assert.NoError(t, result.Err())
			} else {
				err := result.Err()
				require.Error(t, err)
				assert.True(t, apperror.HasKind(err, apperror.KindGateNotSatisfied))
				assert.Equal(t, string(tt.reason), apperror.Reason(err))
			}
		})
	}
}

func TestEvaluate_ReportsBlockingDocuments(t *testing.T) {
	profile := &entity.DoctorProfile{ID: 7}
	docs := []entity.VerificationDocument{
		newDoc(4, entity.DocumentTypeLicense, entity.DocumentStatusRejected, 0),
		newDoc(9, entity.DocumentTypeCurriculum, entity.DocumentStatusPending, 0),
		newDoc(5, entity.DocumentTypeCertificates, entity.DocumentStatusPending, 0),
	}

	result := Evaluate(profile, docs)

	assert.Equal(t, []entity.DocumentType{entity.DocumentTypeProfilePhoto}, result.MissingDocumentTypes)
	assert.Equal(t, []int{5, 9}, result.PendingDocumentIDs)
	assert.Equal(t, []int{4}, result.RejectedDocumentIDs)
}

func TestEvaluate_RejectedUploadBlocksAfterReupload(t *testing.T) {
	profile := &entity.DoctorProfile{ID: 7}
	rejected := newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusRejected, 0)
	photo := newDoc(3, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0)

	t.Run("pending reupload reports pending first", func(t *testing.T) {
		reupload := newDoc(2, entity.DocumentTypeLicense, entity.DocumentStatusPending, time.Hour)
		result := Evaluate(profile, []entity.VerificationDocument{rejected, photo, reupload})
		assert.Equal(t, ReasonDocumentsPendingReview, result.Reason)
		assert.Equal(t, []int{1}, result.RejectedDocumentIDs)
	})

	t.Run("approved reupload does not clear the rejection", func(t *testing.T) {
		reupload := newDoc(2, entity.DocumentTypeLicense, entity.DocumentStatusApproved, time.Hour)
		result := Evaluate(profile, []entity.VerificationDocument{reupload, photo, rejected})
		assert.False(t, result.Eligible)
		assert.Equal(t, ReasonRejectedDocumentsPresent, result.Reason)
		assert.Equal(t, []int{1}, result.RejectedDocumentIDs)
	})

	t.Run("newer rejection behind an older approval", func(t *testing.T) {
		approved := newDoc(2, entity.DocumentTypeLicense, entity.DocumentStatusApproved, -time.Hour)
		result := Evaluate(profile, []entity.VerificationDocument{approved, photo, rejected})
		assert.Equal(t, ReasonRejectedDocumentsPresent, result.Reason)
	})
}

// Adding a rejected document to an eligible set must always make the gate fail.
func TestEvaluate_RejectedDocumentBreaksEligibility(t *testing.T) {
	profile := &entity.DoctorProfile{ID: 7}
	eligible := []entity.VerificationDocument{
		newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusApproved, 0),
		newDoc(2, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0),
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		docType := entity.DocumentTypes[rng.Intn(len(entity.DocumentTypes))]
		offset := time.Duration(rng.Intn(7200)-3600) * time.Second
		rejected := newDoc(100+i, docType, entity.DocumentStatusRejected, offset)

		result := Evaluate(profile, append(append([]entity.VerificationDocument(nil), eligible...), rejected))
		assert.False(t, result.Eligible, "rejected %s at offset %s", docType, offset)
		assert.Equal(t, ReasonRejectedDocumentsPresent, result.Reason)
	}
}

func TestEvaluate_IgnoresOtherDoctorsDocuments(t *testing.T) {
	profile := &entity.DoctorProfile{ID: 7}
	foreign := newDoc(10, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0)
	foreign.DoctorID = 8

	result := Evaluate(profile, []entity.VerificationDocument{
		newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusApproved, 0),
		foreign,
	})

	assert.Equal(t, ReasonMissingRequiredDocuments, result.Reason)
}

func TestLatestByType_OrderIndependent(t *testing.T) {
	docs := []entity.VerificationDocument{
		newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusRejected, 0),
		newDoc(2, entity.DocumentTypeLicense, entity.DocumentStatusApproved, time.Minute),
		newDoc(3, entity.DocumentTypeLicense, entity.DocumentStatusPending, time.Minute),
		newDoc(4, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0),
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]entity.VerificationDocument(nil), docs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		latest := LatestByType(shuffled)
		assert.Equal(t, 3, latest[entity.DocumentTypeLicense].ID, "same timestamp falls back to highest id")
		assert.Equal(t, 4, latest[entity.DocumentTypeProfilePhoto].ID)
	}
}

// Adding a pending document to an eligible set must always make the gate fail.
func TestEvaluate_PendingDocumentBreaksEligibility(t *testing.T) {
	profile := &entity.DoctorProfile{ID: 7}
	eligible := []entity.VerificationDocument{
		newDoc(1, entity.DocumentTypeLicense, entity.DocumentStatusApproved, 0),
		newDoc(2, entity.DocumentTypeProfilePhoto, entity.DocumentStatusApproved, 0),
		newDoc(3, entity.DocumentTypeSpecialty, entity.DocumentStatusApproved, 0),
	}
	require.True(t, Evaluate(profile, eligible).Eligible)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		docType := entity.DocumentTypes[rng.Intn(len(entity.DocumentTypes))]
		offset := time.Duration(rng.Intn(7200)-3600) * time.Second
		pending := newDoc(100+i, docType, entity.DocumentStatusPending, offset)

		result := Evaluate(profile, append(append([]entity.VerificationDocument(nil), eligible...), pending))
		assert.False(t, result.Eligible, "pending %s at offset %s", docType, offset)
		assert.Equal(t, ReasonDocumentsPendingReview, result.Reason)
	}
}
