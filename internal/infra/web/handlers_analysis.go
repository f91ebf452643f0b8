package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type submitAnalysisRequest struct {
	ResumeID   string `json:"resumeId"`
	TargetRole string `json:"targetRole"`
}

func (s *Server) handleAnalysisSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ResumeID == "" {
		writeError(w, http.StatusBadRequest, "resumeId is required")
		return
	}

	job, err := s.analyses.Submit(r.Context(), requestUserID(r), req.ResumeID, req.TargetRole)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnalysisDTO(job))
}

func (s *Server) handleAnalysisList(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.analyses.List(r.Context(), requestUserID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]analysisDTO, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toAnalysisDTO(job))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAnalysisGet(w http.ResponseWriter, r *http.Request) {
	job, err := s.analyses.Get(r.Context(), requestUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisDTO(job))
}

func (s *Server) handleAnalysisDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.analyses.Delete(r.Context(), requestUserID(r), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "analysis deleted"})
}
