package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"doctor-verification/internal/delivery/http/middleware"
	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/domain/repository/mocks"
	"doctor-verification/internal/metrics"
	"doctor-verification/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var (
	reviewTime = time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	uploadTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	adminID    = uuid.MustParse("5b0e5f7e-3d1c-4c43-9d55-7a1f6f1f0a01")
)

// fakeTransactor runs fn without a database; repositories are mocked
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	f.calls++
	return fn(nil)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func adminContext() context.Context {
	return middleware.WithPrincipal(context.Background(), middleware.Principal{UserID: adminID, RoleID: entity.RoleIDAdmin})
}

// deps bundles the mocks and real collaborators shared by usecase tests
type deps struct {
	ctrl        *gomock.Controller
	tx          *fakeTransactor
	profileRepo *mocks.MockDoctorProfileRepository
	docRepo     *mocks.MockVerificationDocumentRepository
	auditRepo   *mocks.MockAuditLogRepository
	audit       service.AuditService
	stats       *service.VerificationStatsService
	metrics     *metrics.Metrics
	redis       *miniredis.Miniredis
	counts      map[entity.VerificationStatus]int64
}

func newDeps(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	d := &deps{
		ctrl:        ctrl,
		tx:          &fakeTransactor{},
		profileRepo: mocks.NewMockDoctorProfileRepository(ctrl),
		docRepo:     mocks.NewMockVerificationDocumentRepository(ctrl),
		auditRepo:   mocks.NewMockAuditLogRepository(ctrl),
		metrics:     metrics.New(prometheus.NewRegistry()),
		redis:       mr,
		counts: map[entity.VerificationStatus]int64{
			entity.VerificationStatusPending:  2,
			entity.VerificationStatusApproved: 1,
		},
	}
	d.audit = service.NewAuditService(quietLogger(), d.auditRepo)
	d.stats = service.NewVerificationStatsService(client, quietLogger(), func(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
		out := make(map[entity.VerificationStatus]int64, len(d.counts))
		for k, v := range d.counts {
			out[k] = v
		}
		return out, nil
	}, time.Minute)
	return d
}

func pendingProfile(id int) *entity.DoctorProfile {
	return &entity.DoctorProfile{
		ID:                 id,
		UserID:             uuid.New(),
		VerificationStatus: entity.VerificationStatusPending,
		CreatedAt:          uploadTime,
		UpdatedAt:          uploadTime,
		User: entity.User{
			Email:     "ana.souza@clinic.test",
			FirstName: "Ana",
			LastName:  "Souza",
		},
	}
}

func document(id, doctorID int, docType entity.DocumentType, status entity.DocumentStatus) entity.VerificationDocument {
	return entity.VerificationDocument{
		ID:           id,
		DoctorID:     doctorID,
		DocumentType: docType,
		FileURL:      "https://files.clinic.test/" + string(docType),
		FileName:     string(docType) + ".pdf",
		Status:       status,
		CreatedAt:    uploadTime,
		UpdatedAt:    uploadTime,
	}
}
