package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handleAnalyze accepts a resume document upload (multipart "file" part),
// extracts its text and returns the analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "Uploaded file is too large")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer func() { _ = file.Close() }()

	kind := extraction.KindForFilename(header.Filename)
	if kind == "" {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF, DOCX and TXT files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, err := extraction.ExtractText(kind, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Error reading document: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Analyze(text))
}

// handleAnalyzeText analyzes raw resume text supplied as JSON, bypassing
// document conversion.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Analyze(req.Text))
}
