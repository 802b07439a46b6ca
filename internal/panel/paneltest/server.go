// Package paneltest provides an in-memory Pterodactyl application API for tests.
package paneltest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tacogips/egg-import/internal/panel"
)

// Request is a call received by the server.
type Request struct {
	Method string
	Path   string
}

// Mutating reports whether the call changes panel state.
func (r Request) Mutating() bool {
	return r.Method != http.MethodGet && r.Method != http.MethodHead
}

// Server is a fake panel. The zero value is not usable; call NewServer.
type Server struct {
	*httptest.Server

	// APIKey is the only bearer token accepted.
	APIKey string

	mu       sync.Mutex
	nextID   int
	nests    []panel.Nest
	eggs     map[int][]panel.Egg
	requests []Request
	failures map[string]int
}

// NewServer starts a fake panel accepting apiKey. Close it when done.
func NewServer(apiKey string) *Server {
	s := &Server{
		APIKey:   apiKey,
		nextID:   1,
		eggs:     make(map[int][]panel.Egg),
		failures: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.authenticate)
	r.Route("/api/application/nests", func(r chi.Router) {
		r.Get("/", s.listNests)
		r.Post("/", s.createNest)
		r.Get("/{nest}/eggs", s.listEggs)
		r.Post("/{nest}/eggs/import", s.importEgg)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// FailCreate makes creation of the named nest fail with status.
func (s *Server) FailCreate(nest string, status int) {
	s.fail("create:"+nest, status)
}

// FailImport makes every import of the named egg fail with status.
func (s *Server) FailImport(egg string, status int) {
	s.fail("import:"+egg, status)
}

// FailListNests makes listing nests fail with status.
func (s *Server) FailListNests(status int) {
	s.fail("list-nests", status)
}

// FailListEggs makes listing the eggs of nestID fail with status.
func (s *Server) FailListEggs(nestID int, status int) {
	s.fail(fmt.Sprintf("list-eggs:%d", nestID), status)
}

func (s *Server) fail(key string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[key] = status
}

// failure returns the injected status for key, or zero.
func (s *Server) failure(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[key]
}

// AddNest stores a nest as if it already existed on the panel.
func (s *Server) AddNest(name string) panel.Nest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNestLocked(name, "")
}

func (s *Server) addNestLocked(name, description string) panel.Nest {
	now := time.Now().UTC().Truncate(time.Second)
	n := panel.Nest{
		ID:          s.nextID,
		UUID:        uuid.NewString(),
		Author:      "support@pterodactyl.io",
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.nests = append(s.nests, n)
	return n
}

// AddEgg stores an egg in the nest as if it had been imported earlier.
func (s *Server) AddEgg(nestID int, name string) panel.Egg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addEggLocked(nestID, name, "")
}

func (s *Server) addEggLocked(nestID int, name, author string) panel.Egg {
	now := time.Now().UTC().Truncate(time.Second)
	e := panel.Egg{
		ID:        s.nextID,
		UUID:      uuid.NewString(),
		Name:      name,
		Nest:      nestID,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.eggs[nestID] = append(s.eggs[nestID], e)
	return e
}

// Nests returns the nests currently stored.
func (s *Server) Nests() []panel.Nest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]panel.Nest(nil), s.nests...)
}

// NestByName returns the stored nest with the given name.
func (s *Server) NestByName(name string) (panel.Nest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.nests {
		if n.Name == name {
			return n, true
		}
	}
	return panel.Nest{}, false
}

// Eggs returns the eggs stored in the nest.
func (s *Server) Eggs(nestID int) []panel.Egg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]panel.Egg(nil), s.eggs[nestID]...)
}

// Requests returns every call received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// MutatingRequests returns the calls that changed (or tried to change) state.
func (s *Server) MutatingRequests() []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Mutating() {
			out = append(out, r)
		}
	}
	return out
}

// ResetRequests forgets the recorded calls.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.APIKey {
			writeError(w, http.StatusUnauthorized, "AuthenticationException", "Unauthenticated.")
			return
		}
		if r.Header.Get("Accept") != "application/json" {
			writeError(w, http.StatusNotAcceptable, "NotAcceptableHttpException", "Accept header must be application/json.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listNests(w http.ResponseWriter, r *http.Request) {
	if status := s.failure("list-nests"); status != 0 {
		writeError(w, status, "HttpException", "listing nests failed")
		return
	}
	writeList(w, r, "nest", s.Nests())
}

func (s *Server) createNest(w http.ResponseWriter, r *http.Request) {
	var req panel.CreateNestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "ValidationException", "The name field is required.")
		return
	}
	if status := s.failure("create:" + req.Name); status != 0 {
		writeError(w, status, "HttpException", "nest creation failed")
		return
	}

	s.mu.Lock()
	n := s.addNestLocked(req.Name, req.Description)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"object": "nest", "attributes": n})
}

func (s *Server) listEggs(w http.ResponseWriter, r *http.Request) {
	nestID, ok := s.lookupNest(w, r)
	if !ok {
		return
	}
	if status := s.failure(fmt.Sprintf("list-eggs:%d", nestID)); status != 0 {
		writeError(w, status, "HttpException", "listing eggs failed")
		return
	}
	writeList(w, r, "egg", s.Eggs(nestID))
}

func (s *Server) importEgg(w http.ResponseWriter, r *http.Request) {
	nestID, ok := s.lookupNest(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, "HttpException", "expected application/json")
		return
	}

	var def struct {
		Name   string `json:"name"`
		Author string `json:"author"`
	}
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil || def.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "ValidationException", "The egg file is not valid.")
		return
	}
	if status := s.failure("import:" + def.Name); status != 0 {
		writeError(w, status, "HttpException", "egg import failed")
		return
	}

	s.mu.Lock()
	e := s.addEggLocked(nestID, def.Name, def.Author)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"object": "egg", "attributes": e})
}

func (s *Server) lookupNest(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "nest"))
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFoundHttpException", "nest not found")
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.nests {
		if n.ID == id {
			return id, true
		}
	}
	writeError(w, http.StatusNotFound, "NotFoundHttpException", "nest not found")
	return 0, false
}

// writeList writes a paginated list honouring the page and per_page query values.
func writeList[T any](w http.ResponseWriter, r *http.Request, object string, items []T) {
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage <= 0 {
		perPage = 50
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}

	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	start := min((page-1)*perPage, len(items))
	end := min(start+perPage, len(items))

	data := make([]map[string]any, 0, end-start)
	for _, item := range items[start:end] {
		data = append(data, map[string]any{"object": object, "attributes": item})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"object": "list",
		"data":   data,
		"meta": map[string]any{
			"pagination": map[string]any{
				"total":        len(items),
				"count":        len(data),
				"per_page":     perPage,
				"current_page": page,
				"total_pages":  totalPages,
			},
		},
	})
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]string{{
			"code":   code,
			"status": strconv.Itoa(status),
			"detail": detail,
		}},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
