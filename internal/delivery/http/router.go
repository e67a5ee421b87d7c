package http

import (
	"net/http"

	"doctor-verification/internal/delivery/http/handler"
	"doctor-verification/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	verificationHandler *handler.VerificationHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
	gatherer            prometheus.Gatherer
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	verificationHandler *handler.VerificationHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		verificationHandler: verificationHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		metricsMiddleware:   metricsMiddleware,
		gatherer:            gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	// Metrics scrape endpoint
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor worklist and verification (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/counts", r.doctorHandler.GetStatusCounts).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id:[0-9]+}/verification", r.verificationHandler.GetVerification).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id:[0-9]+}/review", r.verificationHandler.ReviewProfile).Methods(http.MethodPost)
	admin.HandleFunc("/documents/{id:[0-9]+}/review", r.verificationHandler.ReviewDocument).Methods(http.MethodPost)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/verification", r.verificationHandler.GetOwnVerification).Methods(http.MethodGet)
	doctor.HandleFunc("/documents", r.verificationHandler.SubmitDocument).Methods(http.MethodPost)
	doctor.HandleFunc("/profile", r.doctorHandler.UpdateSelfProfile).Methods(http.MethodPut)

	// Preflight requests match no method-restricted route; answer them here so
	// the router middleware (CORS) still runs
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Add CORS and request metrics middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
