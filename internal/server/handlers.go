package server

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/sells-group/vessel-qa/internal/check"
	"github.com/sells-group/vessel-qa/internal/qa"
	"github.com/sells-group/vessel-qa/internal/workbook"
)

const (
	reportIDHeader = "X-Report-ID"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Multipart field names.
const (
	fieldStandards = "standards"
	fieldVessel    = "vessel"
	fieldPeriod    = "period"
)

type errorBody struct {
	Error string `json:"error"`
}

// summaryResponse is returned by the summary endpoint.
type summaryResponse struct {
	ID          string            `json:"id"`
	Period      string            `json:"period"`
	FileName    string            `json:"file_name"`
	Passed      bool              `json:"passed"`
	Summary     []qa.SheetSummary `json:"summary"`
	Diagnostics []qa.Diagnostic   `json:"diagnostics"`
}

// apiError carries the HTTP status for a failed request.
type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleReport handles POST /api/v1/reports and returns the XLSX workbook.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	res, err := s.runUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf, res.Report.Tables()); err != nil {
		zap.L().Error("server: write report", zap.String("report_id", res.ID), zap.Error(err))
		s.writeError(w, r, &apiError{status: http.StatusInternalServerError, msg: "could not write report"})
		return
	}

	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set(reportIDHeader, res.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleSummary handles POST /api/v1/reports/summary and returns the
// summary table and diagnostics as JSON.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.runUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set(reportIDHeader, res.ID)
	render.JSON(w, r, summaryResponse{
		ID:          res.ID,
		Period:      res.Period,
		FileName:    res.FileName,
		Passed:      res.Report.Passed(),
		Summary:     res.Report.Summaries,
		Diagnostics: res.Report.Diagnostics,
	})
}

// runUpload parses the multipart form and runs the check on it.
func (s *Server) runUpload(w http.ResponseWriter, r *http.Request) (*check.Result, error) {
	maxBytes := int64(s.cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &apiError{status: http.StatusRequestEntityTooLarge, msg: "upload too large"}
		}
		return nil, &apiError{status: http.StatusBadRequest, msg: "invalid multipart form"}
	}
	defer r.MultipartForm.RemoveAll()

	period := r.FormValue(fieldPeriod)
	if err := check.ValidatePeriod(period); err != nil {
		return nil, &apiError{status: http.StatusBadRequest, msg: "period is required and must not contain path separators"}
	}

	standards, err := formFile(r, fieldStandards)
	if err != nil {
		return nil, err
	}
	defer standards.Close()
	vessel, err := formFile(r, fieldVessel)
	if err != nil {
		return nil, err
	}
	defer vessel.Close()

	res, err := check.Run(r.Context(),
		workbook.ReaderSource(fieldStandards, standards),
		workbook.ReaderSource(fieldVessel, vessel),
		period, s.opts,
	)
	if err != nil {
		s.metrics.ObserveError()
		zap.L().Warn("server: check failed", zap.Error(err))
		return nil, &apiError{status: http.StatusUnprocessableEntity, msg: "could not read workbooks"}
	}
	s.metrics.ObserveReport(res.Report)
	return res, nil
}

func formFile(r *http.Request, field string) (multipart.File, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, &apiError{status: http.StatusBadRequest, msg: fmt.Sprintf("missing file %q", field)}
	}
	return f, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	var ae *apiError
	if errors.As(err, &ae) {
		status, msg = ae.status, ae.msg
	}
	render.Status(r, status)
	render.JSON(w, r, errorBody{Error: msg})
}
