package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docx"
	"github.com/kwhitfield/docforge/internal/importer"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleListDocuments lists the document types the server can render.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.catalog))
	for name := range s.catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": names})
}

// handleGetDocument renders a catalog document and streams the docx.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	planFn, ok := s.catalog[name]
	if !ok {
		jsonError(w, fmt.Sprintf("unknown document: %s", name), http.StatusNotFound)
		return
	}

	plan := planFn(time.Now())
	s.writeDocx(w, plan)
}

// handleRender imports an uploaded markdown/HTML file and streams the
// rendered docx back.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Limit total request size; extra 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	imp, err := importer.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := imp.Import(http.MaxBytesReader(w, file, s.cfg.MaxUploadBytes), filename)
	if err != nil {
		jsonError(w, "import failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	plan.Date = time.Now()

	s.writeDocx(w, plan)
}

// writeDocx serializes the plan into a buffer first so a failure can
// still produce a JSON error instead of a truncated download.
func (s *Server) writeDocx(w http.ResponseWriter, plan compose.Plan) {
	doc := compose.Build(plan)

	var buf bytes.Buffer
	if err := docx.Write(&buf, doc); err != nil {
		s.log.Error("serialize failed", "file", plan.FileName, "error", err)
		jsonError(w, "failed to serialize document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", plan.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.Write(buf.Bytes())
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
