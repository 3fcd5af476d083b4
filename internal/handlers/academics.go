// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"devfolio/internal/models"
	"devfolio/internal/scoring"
	"devfolio/internal/store"
)

// Academics groups program, course, and assessment handlers along with
// the skill score recompute operation.
type Academics struct {
	academics *store.AcademicStore
	skills    *store.SkillStore
}

// NewAcademics creates a new Academics handler group.
func NewAcademics(academics *store.AcademicStore, skills *store.SkillStore) *Academics {
	return &Academics{academics: academics, skills: skills}
}

// ListPrograms returns all academic programs, active first.
func (h *Academics) ListPrograms(w http.ResponseWriter, r *http.Request) {
	items, err := h.academics.ListPrograms()
	if err != nil {
		slog.Error("list programs failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// GetProgram returns a single program by ID.
func (h *Academics) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid program id")
		return
	}
	p, err := h.academics.FindProgramByID(id)
	if err != nil {
		slog.Error("find program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "program not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// CreateProgram adds a new academic program.
func (h *Academics) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var p models.AcademicProgram
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Name == "" || p.Institution == "" {
		respondError(w, http.StatusBadRequest, "name and institution are required")
		return
	}

	created, err := h.academics.CreateProgram(&p)
	if err != nil {
		slog.Error("create program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateProgram modifies an existing program.
func (h *Academics) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid program id")
		return
	}

	existing, err := h.academics.FindProgramByID(id)
	if err != nil {
		slog.Error("find program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "program not found")
		return
	}

	var p models.AcademicProgram
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id

	if err := h.academics.UpdateProgram(&p); err != nil {
		slog.Error("update program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.academics.FindProgramByID(id)
	if err != nil || updated == nil {
		slog.Error("reload program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteProgram removes a program and, via cascade, its courses.
func (h *Academics) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid program id")
		return
	}
	if err := h.academics.DeleteProgram(id); err != nil {
		slog.Error("delete program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ListCourses returns courses filtered by ?program=, ?status=, and
// ?year=, paginated.
func (h *Academics) ListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f models.CourseFilter
	if raw := q.Get("program"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid program filter")
			return
		}
		f.ProgramID = &id
	}
	f.Status = models.CourseStatus(q.Get("status"))
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			respondError(w, http.StatusBadRequest, "invalid year filter")
			return
		}
		f.Year = year
	}

	items, meta, err := h.academics.ListCoursesPaginated(f, parsePageParams(r))
	if err != nil {
		slog.Error("list courses failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(w, items, meta)
}

// GetCourse returns a single course by ID.
func (h *Academics) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	c, err := h.academics.FindCourseByID(id)
	if err != nil {
		slog.Error("find course failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if c == nil {
		respondError(w, http.StatusNotFound, "course not found")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// CreateCourse adds a course to a program.
func (h *Academics) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var c models.Course
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if c.Name == "" || c.ProgramID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "name and program_id are required")
		return
	}
	if c.Status == "" {
		c.Status = models.CourseStatusUpcoming
	}

	program, err := h.academics.FindProgramByID(c.ProgramID)
	if err != nil {
		slog.Error("find program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if program == nil {
		respondError(w, http.StatusBadRequest, "program not found")
		return
	}

	created, err := h.academics.CreateCourse(&c)
	if err != nil {
		slog.Error("create course failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateCourse modifies an existing course.
func (h *Academics) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	existing, err := h.academics.FindCourseByID(id)
	if err != nil {
		slog.Error("find course failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "course not found")
		return
	}

	var c models.Course
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = id
	if c.ProgramID == uuid.Nil {
		c.ProgramID = existing.ProgramID
	}
	if c.Status == "" {
		c.Status = existing.Status
	}

	if err := h.academics.UpdateCourse(&c); err != nil {
		slog.Error("update course failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.academics.FindCourseByID(id)
	if err != nil || updated == nil {
		slog.Error("reload course failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteCourse removes a course and its assessments.
func (h *Academics) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	if err := h.academics.DeleteCourse(id); err != nil {
		slog.Error("delete course failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ListAssessments returns the graded items of a course.
func (h *Academics) ListAssessments(w http.ResponseWriter, r *http.Request) {
	courseID, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	items, err := h.academics.ListAssessments(courseID)
	if err != nil {
		slog.Error("list assessments failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CreateAssessment adds a graded item to a course.
func (h *Academics) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	courseID, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.academics.FindCourseByID(courseID)
	if err != nil {
		slog.Error("find course failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if course == nil {
		respondError(w, http.StatusNotFound, "course not found")
		return
	}

	var a models.CourseAssessment
	if err := decodeJSON(r, &a); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if a.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	a.CourseID = courseID

	created, err := h.academics.CreateAssessment(&a)
	if err != nil {
		slog.Error("create assessment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateAssessment modifies an existing assessment.
func (h *Academics) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}

	existing, err := h.academics.FindAssessmentByID(id)
	if err != nil {
		slog.Error("find assessment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "assessment not found")
		return
	}

	var a models.CourseAssessment
	if err := decodeJSON(r, &a); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a.ID = id
	a.CourseID = existing.CourseID

	if err := h.academics.UpdateAssessment(&a); err != nil {
		slog.Error("update assessment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.academics.FindAssessmentByID(id)
	if err != nil || updated == nil {
		slog.Error("reload assessment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteAssessment removes an assessment.
func (h *Academics) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}
	if err := h.academics.DeleteAssessment(id); err != nil {
		slog.Error("delete assessment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// RecomputeSkills rescores every skill a program's courses deliver and
// upserts the resulting progression levels. Skill names with no matching
// skill row are reported back rather than silently dropped.
func (h *Academics) RecomputeSkills(w http.ResponseWriter, r *http.Request) {
	programID, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid program id")
		return
	}

	program, err := h.academics.FindProgramByID(programID)
	if err != nil {
		slog.Error("find program failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if program == nil {
		respondError(w, http.StatusNotFound, "program not found")
		return
	}

	courses, err := h.academics.ListCoursesByProgram(programID)
	if err != nil {
		slog.Error("list courses failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	scores := scoring.ComputeWithYearBonus(courses, program.CurrentYear)

	var unmatched []string
	for name, level := range scores {
		if err := h.skills.SetCurrentLevelByName(programID, name, level); err != nil {
			if errors.Is(err, store.ErrSkillNotFound) {
				unmatched = append(unmatched, name)
				continue
			}
			slog.Error("set skill level failed", "skill", name, "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		// Keep the flat skill level in step with the progression.
		if err := h.skills.SetLevelByName(name, level); err != nil {
			slog.Error("set skill level failed", "skill", name, "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	slog.Info("skill scores recomputed", "program", programID,
		"scored", len(scores), "unmatched", len(unmatched))

	respondJSON(w, http.StatusOK, map[string]any{
		"scores":    scores,
		"unmatched": unmatched,
	})
}
