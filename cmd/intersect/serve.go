package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/zephyrtronium/intersect"
)

const maxBodyBytes = 1 << 20

//go:embed openapi.yaml
var apiYAML []byte

// server answers solve requests over HTTP. It holds no mutable state.
type server struct {
	cfg config
	doc *openapi3.T
	// api is doc encoded as JSON.
	api []byte
	// request is the schema for solve request bodies.
	request *openapi3.Schema
}

// newServer loads and validates the API description. Requests use cfg for
// any settings they leave out.
func newServer(ctx context.Context, cfg config) (*server, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(apiYAML)
	if err != nil {
		return nil, fmt.Errorf("loading API description: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating API description: %w", err)
	}
	api, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding API description: %w", err)
	}
	req, err := requestSchema(doc, "/solve")
	if err != nil {
		return nil, err
	}
	return &server{cfg: cfg, doc: doc, api: api, request: req}, nil
}

// requestSchema finds the JSON body schema of the POST operation at path.
func requestSchema(doc *openapi3.T, path string) (*openapi3.Schema, error) {
	item := doc.Paths.Value(path)
	if item == nil || item.Post == nil || item.Post.RequestBody == nil || item.Post.RequestBody.Value == nil {
		return nil, fmt.Errorf("API description has no request body for POST %s", path)
	}
	mt := item.Post.RequestBody.Value.Content.Get("application/json")
	if mt == nil || mt.Schema == nil || mt.Schema.Value == nil {
		return nil, fmt.Errorf("API description has no JSON schema for POST %s", path)
	}
	return mt.Schema.Value, nil
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/solve", s.solve)
	mux.HandleFunc("/openapi.json", s.openapi)
	mux.HandleFunc("/health", health)
	return mux
}

// solveRequest is the body of POST /solve. Settings left out come from the
// server's config.
type solveRequest struct {
	F1        string    `json:"f1"`
	F2        string    `json:"f2"`
	Domain    []float64 `json:"domain"`
	Points    *int      `json:"points"`
	Tolerance *float64  `json:"tolerance"`
	Samples   bool      `json:"samples"`
}

// options overrides cfg with the request's settings.
func (r *solveRequest) options(cfg config) []intersect.SolveOption {
	if len(r.Domain) == 2 {
		cfg.Domain = r.Domain
	}
	if r.Points != nil {
		cfg.Points = *r.Points
	}
	if r.Tolerance != nil {
		cfg.Tolerance = *r.Tolerance
	}
	return cfg.options()
}

func (s *server) solve(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in /solve: %v\n%s", rec, debug.Stack())
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large", err)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request", err)
		return
	}
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}
	if err := s.request.VisitJSON(raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err)
		return
	}
	var req solveRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err)
		return
	}

	sol, err := intersect.Solve(req.F1, req.F2, req.options(s.cfg)...)
	if sol == nil {
		code := http.StatusInternalServerError
		if isInputError(err) {
			code = http.StatusUnprocessableEntity
		}
		writeJSONResponse(w, code, newErrorJSON(err))
		return
	}
	writeJSONResponse(w, http.StatusOK, newSolutionJSON(req.F1, req.F2, sol, err, req.Samples))
}

func (s *server) openapi(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(s.api)
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSONResponse(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string, err error) {
	writeJSONResponse(w, code, errorJSON{Error: msg, Detail: err.Error()})
}

// serve answers HTTP requests on cfg.Serve until the server fails.
func serve(ctx context.Context, cfg config) error {
	s, err := newServer(ctx, cfg)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.Serve,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Printf("listening on %s", cfg.Serve)
	log.Printf("  POST /solve        find an intersection")
	log.Printf("  GET  /openapi.json API description")
	log.Printf("  GET  /health       health check")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
