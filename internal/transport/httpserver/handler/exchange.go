package handler

import (
	"net/http"

	ledgerdomain "farm-ledger-go/internal/domain/ledger"
	"farm-ledger-go/internal/transport/httpserver/middleware"
)

const maxImportSize = 10 << 20 // 10 MiB

func (h *Handlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="fertilizer_expenses.csv"`)

	if err := h.Ledger.ExportCSV(r.Context(), user.ID, w); err != nil {
		// Headers may already be out; log and give up on the body.
		h.log.InternalError("export: write failed", err, "user_id", user.ID)
	}
}

func (h *Handlers) ImportCSV(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "multipart form with a file field is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "file field is required")
		return
	}
	defer file.Close()

	result, err := h.Ledger.ImportCSV(r.Context(), user.ID, file)
	if err != nil {
		h.log.InternalError("import: import failed", err, "user_id", user.ID, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "internal_error", "import failed, nothing was saved")
		return
	}

	h.log.Info("import: completed",
		"user_id", user.ID,
		"filename", header.Filename,
		"bills_created", result.BillsCreated,
		"items_imported", result.ItemsImported,
		"row_errors", len(result.Errors),
	)
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) SampleCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sample_fertilizer_import.csv"`)

	if err := ledgerdomain.WriteSampleCSV(w); err != nil {
		h.log.InternalError("sample-csv: write failed", err)
	}
}
