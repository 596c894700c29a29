package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"aionmotion/internal/motion"
	"aionmotion/internal/preset"
)

// HeaderPrefersReducedMotion is the user preference media feature client hint.
const HeaderPrefersReducedMotion = "Sec-CH-Prefers-Reduced-Motion"

// HeaderPreference reads the reduced-motion client hint of one request.
type HeaderPreference http.Header

func (h HeaderPreference) PrefersReducedMotion() bool {
	v := http.Header(h).Get(HeaderPrefersReducedMotion)
	return strings.EqualFold(strings.Trim(strings.TrimSpace(v), `"`), "reduce")
}

type relationOutput struct {
	Name   string `json:"name"`
	Preset string `json:"preset"`
}

type transitionOutput struct {
	Transition string `json:"transition"`
	Preset     string `json:"preset"`
}

func (s *Server) plan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := motion.Request{
		RelationType:  q.Get("relation"),
		ModuleName:    q.Get("module"),
		TransitionKey: q.Get("transition"),
		Preference: motion.AnyPreference{
			s.resolver.Preference(),
			HeaderPreference(r.Header),
		},
	}
	if req.RelationType == "" && req.ModuleName == "" {
		writeError(w, http.StatusBadRequest, "relation or module is required")
		return
	}
	if v := q.Get("reduced"); v != "" {
		reduced, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "reduced must be a boolean")
			return
		}
		req.ReducedMotionRequested = reduced
	}

	w.Header().Set("Accept-CH", HeaderPrefersReducedMotion)
	w.Header().Add("Vary", HeaderPrefersReducedMotion)
	writeJSON(w, http.StatusOK, s.resolver.Resolve(req))
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]preset.Preset{"presets": s.resolver.Presets().All()})
}

func (s *Server) getPreset(w http.ResponseWriter, r *http.Request) {
	p, ok := s.resolver.Presets().Lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "preset not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) listRelations(w http.ResponseWriter, r *http.Request) {
	maps := s.resolver.Transitions()
	names := maps.RelationTypes()
	out := make([]relationOutput, 0, len(names))
	for _, name := range names {
		out = append(out, relationOutput{Name: name, Preset: maps.PresetForRelationType(name)})
	}
	writeJSON(w, http.StatusOK, map[string][]relationOutput{"relation_types": out})
}

func (s *Server) listTransitions(w http.ResponseWriter, r *http.Request) {
	module := chi.URLParam(r, "module")
	maps := s.resolver.Transitions()
	keys := maps.Transitions(module)
	if keys == nil {
		writeError(w, http.StatusNotFound, "module not found")
		return
	}
	out := make([]transitionOutput, 0, len(keys))
	for _, key := range keys {
		out = append(out, transitionOutput{Transition: key, Preset: maps.PresetForModuleTransition(module, key)})
	}
	writeJSON(w, http.StatusOK, map[string][]transitionOutput{"transitions": out})
}
