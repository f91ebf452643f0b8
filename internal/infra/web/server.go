package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"resumepulse/internal/infra/logging"
	"resumepulse/internal/infra/metrics"
	"resumepulse/internal/infra/security"
	"resumepulse/internal/usecase"
)

type Server struct {
	users       usecase.UserUseCase
	resumes     usecase.ResumeUseCase
	analyses    usecase.AnalysisUseCase
	tokens      *security.TokenService
	maxFileSize int64
	log         *zerolog.Logger
}

func NewServer(
	users usecase.UserUseCase,
	resumes usecase.ResumeUseCase,
	analyses usecase.AnalysisUseCase,
	tokens *security.TokenService,
	maxFileSize int64,
	log *zerolog.Logger,
) *Server {
	if maxFileSize <= 0 {
		maxFileSize = 10 << 20
	}
	return &Server{
		users:       users,
		resumes:     resumes,
		analyses:    analyses,
		tokens:      tokens,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Get("/me", s.handleMe)

			r.Post("/resumes", s.handleResumeUpload)
			r.Get("/resumes", s.handleResumeList)
			r.Get("/resumes/{id}", s.handleResumeGet)
			r.Delete("/resumes/{id}", s.handleResumeDelete)

			r.Post("/analyses", s.handleAnalysisSubmit)
			r.Get("/analyses", s.handleAnalysisList)
			r.Get("/analyses/{id}", s.handleAnalysisGet)
			r.Delete("/analyses/{id}", s.handleAnalysisDelete)
		})
	})
	return r
}

// requestLogger emits one structured line per request and feeds the HTTP
// request counter.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.WithTraceID(r.Context(), chimw.GetReqID(r.Context()))
		r = r.WithContext(ctx)
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		metrics.IncHTTPRequest(r.Method, route, ww.Status())
		logging.With(r.Context(), s.log).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}
