package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-checker/internal/checker"
	"github.com/jonathan/resume-checker/internal/enhancer"
	"github.com/jonathan/resume-checker/internal/grouping"
	"github.com/jonathan/resume-checker/internal/templates"
	"github.com/jonathan/resume-checker/internal/types"
)

// CheckRequest represents the request body for /check. An all-empty resume
// is still a valid request: emptiness is a scoring condition, not an error.
type CheckRequest struct {
	Resume types.ResumeRecord `json:"resume"`
}

// EnhanceRequest represents the request body for /enhance
type EnhanceRequest struct {
	Text string `json:"text" validate:"required"`
	// Mode selects single-text ("text", default) or multi-bullet
	// ("bullets") analysis.
	Mode string `json:"mode,omitempty" validate:"omitempty,oneof=text bullets"`
}

// GroupSkillsRequest represents the request body for /skills/group
type GroupSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,dive,max=200"`
}

// RecommendTemplatesRequest represents the request body for /templates/recommend
type RecommendTemplatesRequest struct {
	Resume types.ResumeRecord `json:"resume"`
}

// handleCheck scores a resume record and returns the full report.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	report, err := checker.CheckATSCompatibility(&req.Resume)
	if err != nil {
		s.errorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleEnhance runs the action-verb enhancer on free text.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	var result types.EnhancementResult
	if req.Mode == "bullets" {
		result = enhancer.EnhanceExperienceDescription(req.Text)
	} else {
		result = enhancer.AnalyzeActionVerbs(req.Text)
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGroupSkills classifies a flat skill list.
func (s *Server) handleGroupSkills(w http.ResponseWriter, r *http.Request) {
	var req GroupSkillsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusOK, grouping.GroupSkills(req.Skills))
}

// handleRecommendTemplates ranks the template catalog against a resume.
func (s *Server) handleRecommendTemplates(w http.ResponseWriter, r *http.Request) {
	var req RecommendTemplatesRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusOK, templates.RecommendTemplates(&req.Resume))
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			verr := &ErrValidation{Field: first.Field(), Message: "failed " + first.Tag() + " validation"}
			s.errorResponse(w, r, HTTPStatus(verr), verr.Error())
			return false
		}
		s.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
