package document

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/contaro/docintel/internal/analyzer"
	"github.com/contaro/docintel/internal/encoding"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 10 << 20

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=document
type Service interface {
	Analyze(ctx context.Context, in analyzer.Input) (*analyzer.Result, error)
	AnalyzeBatch(ctx context.Context, ins []analyzer.Input) *analyzer.Batch
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/analyze", h.analyze)
	r.Post("/analyze/batch", h.analyzeBatch)
}

type analyzeRequest struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}

type batchRequest struct {
	Documents []analyzeRequest `json:"documents"`
}

// analyze accepts either a multipart upload ("file" field plus optional
// "file_name") or a JSON body. Uploaded files pass through encoding
// detection; JSON text is expected to already be UTF-8.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	in, err := decodeAnalyzeInput(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		writeAnalyzeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(result))
}

func (h *Handler) analyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Documents) == 0 {
		http.Error(w, "documents field is required", http.StatusBadRequest)
		return
	}

	ins := make([]analyzer.Input, 0, len(req.Documents))
	for _, d := range req.Documents {
		ins = append(ins, analyzer.Input{FileName: d.FileName, Text: d.Text})
	}

	batch := h.svc.AnalyzeBatch(r.Context(), ins)

	writeJSON(w, http.StatusOK, toBatchResponse(batch))
}

func decodeAnalyzeInput(r *http.Request) (analyzer.Input, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return analyzer.Input{}, errors.New("failed to parse form: " + err.Error())
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			return analyzer.Input{}, errors.New("file field is required")
		}
		defer file.Close()

		text, err := encoding.ReadAllText(file)
		if err != nil {
			return analyzer.Input{}, errors.New("failed to decode file: " + err.Error())
		}

		fileName := r.FormValue("file_name")
		if fileName == "" {
			fileName = header.Filename
		}

		return analyzer.Input{FileName: fileName, Text: text}, nil
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return analyzer.Input{}, errors.New("invalid request body: " + err.Error())
	}

	return analyzer.Input{FileName: req.FileName, Text: req.Text}, nil
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeAnalyzeError maps the analyzer's failure taxonomy onto the wire:
// the two expected failures are 422s with distinct codes so callers can
// tell "nothing to read" from "read but unusable".
func writeAnalyzeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error(), Code: "internal"}
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, analyzer.ErrNoText):
		resp.Code = "no_text"
		status = http.StatusUnprocessableEntity
	case errors.Is(err, analyzer.ErrUnusable):
		resp.Code = "extraction_unusable"
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
