// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// academic.go covers academic programs, their courses, and per-course
// assessments. Courses feed the skill progression scorer through the
// skill-name lists they deliver.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// AcademicStore handles program, course, and assessment database operations.
type AcademicStore struct {
	db *sql.DB
}

// NewAcademicStore creates a new AcademicStore.
func NewAcademicStore(db *sql.DB) *AcademicStore {
	return &AcademicStore{db: db}
}

const programColumns = `id, name, institution, description, start_date, end_date,
	current_year, total_years, is_active, created_at, updated_at`

func scanProgram(row interface{ Scan(...any) error }) (*models.AcademicProgram, error) {
	p := &models.AcademicProgram{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Institution, &p.Description, &p.StartDate, &p.EndDate,
		&p.CurrentYear, &p.TotalYears, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPrograms returns all academic programs, active first, newest first.
func (s *AcademicStore) ListPrograms() ([]models.AcademicProgram, error) {
	rows, err := s.db.Query(`
		SELECT ` + programColumns + ` FROM academic_programs
		ORDER BY is_active DESC, start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var items []models.AcademicProgram
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindProgramByID retrieves a program by UUID. Returns nil if not found.
func (s *AcademicStore) FindProgramByID(id uuid.UUID) (*models.AcademicProgram, error) {
	p, err := scanProgram(s.db.QueryRow(
		`SELECT `+programColumns+` FROM academic_programs WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find program by id: %w", err)
	}
	return p, nil
}

// CreateProgram inserts a new academic program.
func (s *AcademicStore) CreateProgram(p *models.AcademicProgram) (*models.AcademicProgram, error) {
	created, err := scanProgram(s.db.QueryRow(`
		INSERT INTO academic_programs (name, institution, description, start_date, end_date,
			current_year, total_years, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+programColumns,
		p.Name, p.Institution, p.Description, p.StartDate, p.EndDate,
		p.CurrentYear, p.TotalYears, p.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	return created, nil
}

// UpdateProgram modifies an existing academic program.
func (s *AcademicStore) UpdateProgram(p *models.AcademicProgram) error {
	_, err := s.db.Exec(`
		UPDATE academic_programs SET
			name = $1, institution = $2, description = $3, start_date = $4,
			end_date = $5, current_year = $6, total_years = $7, is_active = $8,
			updated_at = NOW()
		WHERE id = $9
	`, p.Name, p.Institution, p.Description, p.StartDate,
		p.EndDate, p.CurrentYear, p.TotalYears, p.IsActive, p.ID)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	return nil
}

// DeleteProgram removes a program; courses and progressions cascade.
func (s *AcademicStore) DeleteProgram(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM academic_programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

const courseColumns = `id, program_id, code, name, description, status, grade,
	credits, year, semester, skills, created_at, updated_at`

func scanCourse(row interface{ Scan(...any) error }) (*models.Course, error) {
	c := &models.Course{}
	var skills []byte
	err := row.Scan(
		&c.ID, &c.ProgramID, &c.Code, &c.Name, &c.Description, &c.Status, &c.Grade,
		&c.Credits, &c.Year, &c.Semester, &skills, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Skills = scanList(skills)
	return c, nil
}

// buildCourseFilter turns a CourseFilter into a WHERE clause and arguments.
func buildCourseFilter(f models.CourseFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.ProgramID != nil {
		add("program_id = $%d", *f.ProgramID)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Year > 0 {
		add("year = $%d", f.Year)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// ListCoursesPaginated returns one page of courses matching the filter,
// ordered by year, semester, then code.
func (s *AcademicStore) ListCoursesPaginated(f models.CourseFilter, p PageParams) ([]models.Course, PageMeta, error) {
	whereClause, args := buildCourseFilter(f)

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM courses`+whereClause, args...).Scan(&total); err != nil {
		return nil, PageMeta{}, fmt.Errorf("count courses: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	query := `SELECT ` + courseColumns + ` FROM courses` + whereClause +
		fmt.Sprintf(" ORDER BY year ASC, semester ASC, code ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var items []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, PageMeta{}, fmt.Errorf("scan course: %w", err)
		}
		items = append(items, *c)
	}
	return items, NewPageMeta(p, total), rows.Err()
}

// ListCoursesByProgram returns every course in a program, unpaginated.
// The skill progression scorer consumes this.
func (s *AcademicStore) ListCoursesByProgram(programID uuid.UUID) ([]models.Course, error) {
	rows, err := s.db.Query(`
		SELECT `+courseColumns+` FROM courses
		WHERE program_id = $1
		ORDER BY year ASC, semester ASC, code ASC
	`, programID)
	if err != nil {
		return nil, fmt.Errorf("list courses by program: %w", err)
	}
	defer rows.Close()

	var items []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindCourseByID retrieves a course by UUID. Returns nil if not found.
func (s *AcademicStore) FindCourseByID(id uuid.UUID) (*models.Course, error) {
	c, err := scanCourse(s.db.QueryRow(
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find course by id: %w", err)
	}
	return c, nil
}

// CreateCourse inserts a new course.
func (s *AcademicStore) CreateCourse(c *models.Course) (*models.Course, error) {
	created, err := scanCourse(s.db.QueryRow(`
		INSERT INTO courses (program_id, code, name, description, status, grade,
			credits, year, semester, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+courseColumns,
		c.ProgramID, c.Code, c.Name, c.Description, c.Status, c.Grade,
		c.Credits, c.Year, c.Semester, jsonList(c.Skills),
	))
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return created, nil
}

// UpdateCourse modifies an existing course.
func (s *AcademicStore) UpdateCourse(c *models.Course) error {
	_, err := s.db.Exec(`
		UPDATE courses SET
			code = $1, name = $2, description = $3, status = $4, grade = $5,
			credits = $6, year = $7, semester = $8, skills = $9, updated_at = NOW()
		WHERE id = $10
	`, c.Code, c.Name, c.Description, c.Status, c.Grade,
		c.Credits, c.Year, c.Semester, jsonList(c.Skills), c.ID)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// DeleteCourse removes a course; its assessments cascade.
func (s *AcademicStore) DeleteCourse(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

const assessmentColumns = `id, course_id, name, kind, weight, score, max_score,
	due_date, created_at, updated_at`

func scanAssessment(row interface{ Scan(...any) error }) (*models.CourseAssessment, error) {
	a := &models.CourseAssessment{}
	err := row.Scan(
		&a.ID, &a.CourseID, &a.Name, &a.Kind, &a.Weight, &a.Score, &a.MaxScore,
		&a.DueDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAssessments returns all assessments for a course, by due date.
func (s *AcademicStore) ListAssessments(courseID uuid.UUID) ([]models.CourseAssessment, error) {
	rows, err := s.db.Query(`
		SELECT `+assessmentColumns+` FROM course_assessments
		WHERE course_id = $1
		ORDER BY due_date ASC NULLS LAST, name ASC
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var items []models.CourseAssessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindAssessmentByID retrieves an assessment by UUID. Returns nil if not found.
func (s *AcademicStore) FindAssessmentByID(id uuid.UUID) (*models.CourseAssessment, error) {
	a, err := scanAssessment(s.db.QueryRow(
		`SELECT `+assessmentColumns+` FROM course_assessments WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find assessment by id: %w", err)
	}
	return a, nil
}

// CreateAssessment inserts a new assessment.
func (s *AcademicStore) CreateAssessment(a *models.CourseAssessment) (*models.CourseAssessment, error) {
	created, err := scanAssessment(s.db.QueryRow(`
		INSERT INTO course_assessments (course_id, name, kind, weight, score, max_score, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+assessmentColumns,
		a.CourseID, a.Name, a.Kind, a.Weight, a.Score, a.MaxScore, a.DueDate,
	))
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	return created, nil
}

// UpdateAssessment modifies an existing assessment.
func (s *AcademicStore) UpdateAssessment(a *models.CourseAssessment) error {
	_, err := s.db.Exec(`
		UPDATE course_assessments SET
			name = $1, kind = $2, weight = $3, score = $4, max_score = $5,
			due_date = $6, updated_at = NOW()
		WHERE id = $7
	`, a.Name, a.Kind, a.Weight, a.Score, a.MaxScore, a.DueDate, a.ID)
	if err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	return nil
}

// DeleteAssessment removes an assessment.
func (s *AcademicStore) DeleteAssessment(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM course_assessments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	return nil
}
