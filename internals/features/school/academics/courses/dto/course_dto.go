// file: internals/features/school/academics/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "atletaku_backend/internals/features/school/academics/courses/model"
)

type CreateCourseRequest struct {
	CoursesCode        string  `json:"courses_code"  validate:"required,max=40"`
	CoursesTitle       string  `json:"courses_title" validate:"required,max=160"`
	CoursesDescription *string `json:"courses_description,omitempty"`
	CoursesIsActive    *bool   `json:"courses_is_active,omitempty"`
}

func (r *CreateCourseRequest) ApplyToModel(dst *m.CourseModel) {
	dst.CoursesCode = strings.TrimSpace(r.CoursesCode)
	dst.CoursesTitle = strings.TrimSpace(r.CoursesTitle)
	dst.CoursesDescription = strPtrOrNil(r.CoursesDescription)
	if r.CoursesIsActive != nil {
		dst.CoursesIsActive = *r.CoursesIsActive
	} else {
		dst.CoursesIsActive = true
	}
}

type PatchCourseRequest struct {
	CoursesCode        *string `json:"courses_code,omitempty"  validate:"omitempty,max=40"`
	CoursesTitle       *string `json:"courses_title,omitempty" validate:"omitempty,max=160"`
	CoursesDescription *string `json:"courses_description,omitempty"`
	CoursesIsActive    *bool   `json:"courses_is_active,omitempty"`
}

func (p *PatchCourseRequest) ApplyPatch(dst *m.CourseModel) {
	if p.CoursesCode != nil {
		dst.CoursesCode = strings.TrimSpace(*p.CoursesCode)
	}
	if p.CoursesTitle != nil {
		dst.CoursesTitle = strings.TrimSpace(*p.CoursesTitle)
	}
	if p.CoursesDescription != nil {
		dst.CoursesDescription = strPtrOrNil(p.CoursesDescription)
	}
	if p.CoursesIsActive != nil {
		dst.CoursesIsActive = *p.CoursesIsActive
	}
}

type CourseResponse struct {
	CourseID           uuid.UUID `json:"course_id"`
	CoursesSchoolID    uuid.UUID `json:"courses_school_id"`
	CoursesCode        string    `json:"courses_code"`
	CoursesTitle       string    `json:"courses_title"`
	CoursesDescription *string   `json:"courses_description,omitempty"`
	CoursesIsActive    bool      `json:"courses_is_active"`
	CoursesCreatedAt   time.Time `json:"courses_created_at"`
	CoursesUpdatedAt   time.Time `json:"courses_updated_at"`
}

func NewCourseResponse(src *m.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:           src.CourseID,
		CoursesSchoolID:    src.CoursesSchoolID,
		CoursesCode:        src.CoursesCode,
		CoursesTitle:       src.CoursesTitle,
		CoursesDescription: src.CoursesDescription,
		CoursesIsActive:    src.CoursesIsActive,
		CoursesCreatedAt:   src.CoursesCreatedAt,
		CoursesUpdatedAt:   src.CoursesUpdatedAt,
	}
}

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
