package server

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sleebit/recruiter-agent/internal/db"
	"github.com/sleebit/recruiter-agent/internal/ingestion"
	"github.com/sleebit/recruiter-agent/internal/pipeline"
	"github.com/sleebit/recruiter-agent/internal/task"
)

const (
	maxUploadBytes   = 10 << 20
	defaultRunsLimit = 10
	maxRunsLimit     = 100
)

// TaskResponse is the task status payload returned by the API.
type TaskResponse struct {
	TaskID     string     `json:"task_id"`
	Status     string     `json:"status"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	Result     any        `json:"result,omitempty"`
	Error      string     `json:"error,omitempty"`
	AgentRunID string     `json:"agent_run_id,omitempty"`
}

// handleRunAgent accepts a multipart evaluation request and queues it as a
// background task. The resume and job description each arrive either as an
// uploaded file or as a plain text field.
func (s *Server) handleRunAgent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	candidateName := strings.TrimSpace(r.FormValue("candidate_name"))
	if candidateName == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate_name is required")
		return
	}

	resumeText, err := s.formDocument(r, "resume", "resume_text")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if resumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "provide a resume file or resume_text")
		return
	}

	jobText, err := s.formDocument(r, "job_description", "job_description_text")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if jobText == "" {
		s.errorResponse(w, http.StatusBadRequest, "provide a job_description file or job_description_text")
		return
	}

	t, err := s.tasks.Submit(r.Context(), pipeline.Input{
		CandidateName:  candidateName,
		JobDescription: jobText,
		ResumeText:     resumeText,
	})
	if err != nil {
		log.Printf("[TASK] Failed to submit task: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	s.jsonResponse(w, http.StatusAccepted, TaskResponse{
		TaskID: t.ID,
		Status: string(t.Status),
	})
}

// formDocument reads a document that arrives as either an uploaded file or a
// text field. Uploaded files are extracted and cleaned. Supplying both forms
// is an error.
func (s *Server) formDocument(r *http.Request, fileField, textField string) (string, error) {
	text := strings.TrimSpace(r.FormValue(textField))

	file, header, err := r.FormFile(fileField)
	switch {
	case err == nil:
		defer file.Close()
		if text != "" {
			return "", errors.New("provide " + fileField + " as a file or as " + textField + ", not both")
		}
		extracted, err := extractUpload(file, header)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(extracted), nil
	case errors.Is(err, http.ErrMissingFile):
		return text, nil
	default:
		return "", errors.New("failed to read " + fileField + " upload")
	}
}

func extractUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.New("failed to read " + header.Filename)
	}
	text, err := ingestion.ExtractBytes(header.Filename, data)
	if err != nil {
		if errors.Is(err, ingestion.ErrUnsupportedFormat) {
			return "", errors.New("unsupported file format: " + header.Filename)
		}
		return "", errors.New("could not extract text from " + header.Filename)
	}
	return ingestion.CleanText(text), nil
}

// handleGetTask returns the current state of a task.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("task_id")

	t, err := s.tasks.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "task not found")
			return
		}
		log.Printf("[TASK] Failed to load task %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load task")
		return
	}

	resp := TaskResponse{
		TaskID:     t.ID,
		Status:     string(t.Status),
		CreatedAt:  &t.CreatedAt,
		UpdatedAt:  &t.UpdatedAt,
		Error:      t.Error,
		AgentRunID: t.AgentRunID,
	}
	if len(t.Result) > 0 {
		resp.Result = t.Result
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListRuns returns recent archived runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}

	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxRunsLimit {
		limit = maxRunsLimit
	}

	runs, err := s.runs.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("[TASK] Failed to list runs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []db.AgentRun{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}
