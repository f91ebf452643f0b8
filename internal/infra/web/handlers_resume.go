package web

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleResumeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxFileSize)
	if err := r.ParseMultipartForm(s.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or malformed multipart body")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing resume file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	resume, err := s.resumes.Upload(r.Context(), requestUserID(r), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResumeDTO(resume))
}

func (s *Server) handleResumeList(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.resumes.List(r.Context(), requestUserID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]resumeDTO, 0, len(resumes))
	for _, resume := range resumes {
		out = append(out, toResumeDTO(resume))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleResumeGet(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	resume, err := s.resumes.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	jobs, err := s.analyses.ListForResume(r.Context(), userID, resume.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	analyses := make([]analysisDTO, 0, len(jobs))
	for _, job := range jobs {
		analyses = append(analyses, toAnalysisDTO(job))
	}
	writeJSON(w, http.StatusOK, resumeDetailDTO{resumeDTO: toResumeDTO(resume), Analyses: analyses})
}

func (s *Server) handleResumeDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.resumes.Delete(r.Context(), requestUserID(r), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "resume deleted"})
}
