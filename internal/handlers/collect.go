package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"media-collector/internal/collector"
	"media-collector/internal/logging"
)

// maxRequestBodyBytes bounds the size of a collect request body.
const maxRequestBodyBytes = 4 << 20

// InvocationHeader carries the invocation id on every collect response.
const InvocationHeader = "X-Invocation-ID"

type CollectRequest struct {
	Paths []string `json:"paths"`
}

type CollectResponse struct {
	Files        []string          `json:"files"`
	InvocationID string            `json:"invocationId"`
	Report       *collector.Report `json:"report,omitempty"`
}

type CollectErrorResponse struct {
	Error        string            `json:"error"`
	InvocationID string            `json:"invocationId"`
	Report       *collector.Report `json:"report,omitempty"`
}

// Collect expands the requested paths into media files.
//
// POST /api/collect {"paths": [...]}; ?report=true includes diagnostics.
// Returns 422 with {"error": "No valid files"} when nothing was found.
func (h *Handlers) Collect(w http.ResponseWriter, r *http.Request) {
	includeReport, ok := parseReportParam(r)
	if !ok {
		writeJSONError(w, "Invalid report parameter", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req CollectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Paths) == 0 {
		writeJSONError(w, "At least one path is required", http.StatusBadRequest)
		return
	}

	if len(req.Paths) > h.maxPaths {
		writeJSONError(w, fmt.Sprintf("Too many paths: %d (max %d)", len(req.Paths), h.maxPaths), http.StatusBadRequest)
		return
	}

	h.active.Add(1)
	report, err := h.collector.CollectAllWithReport(req.Paths)
	h.active.Add(-1)
	h.total.Add(1)
	h.lastCollect.Store(time.Now().UnixNano())

	w.Header().Set("Content-Type", "application/json")
	if report != nil {
		w.Header().Set(InvocationHeader, report.InvocationID)
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, collector.ErrNoValidFiles) {
			status = http.StatusUnprocessableEntity
		} else {
			logging.Error("collect failed: %v", err)
		}

		resp := CollectErrorResponse{Error: err.Error()}
		if report != nil {
			resp.InvocationID = report.InvocationID
			if includeReport {
				resp.Report = report
			}
		}

		w.WriteHeader(status)
		writeJSON(w, resp)
		return
	}

	resp := CollectResponse{
		Files:        report.Files,
		InvocationID: report.InvocationID,
	}
	if includeReport {
		resp.Report = report
	}

	w.WriteHeader(http.StatusOK)
	writeJSON(w, resp)
}

// parseReportParam reads the optional report query parameter.
func parseReportParam(r *http.Request) (include, ok bool) {
	raw := r.URL.Query().Get("report")
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
