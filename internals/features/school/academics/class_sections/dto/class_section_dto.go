// file: internals/features/school/academics/class_sections/dto/class_section_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "atletaku_backend/internals/features/school/academics/class_sections/model"
)

type CreateClassSectionRequest struct {
	ClassSectionsName         string `json:"class_sections_name"          validate:"required,max=80"`
	ClassSectionsAcademicYear string `json:"class_sections_academic_year" validate:"required,max=20"`
	ClassSectionsCapacity     *int   `json:"class_sections_capacity,omitempty" validate:"omitempty,gte=0"`
}

func (r *CreateClassSectionRequest) ApplyToModel(dst *m.ClassSectionModel) {
	dst.ClassSectionsName = strings.TrimSpace(r.ClassSectionsName)
	dst.ClassSectionsAcademicYear = strings.TrimSpace(r.ClassSectionsAcademicYear)
	if r.ClassSectionsCapacity != nil {
		dst.ClassSectionsCapacity = *r.ClassSectionsCapacity
	}
}

type PatchClassSectionRequest struct {
	ClassSectionsName         *string `json:"class_sections_name,omitempty"          validate:"omitempty,max=80"`
	ClassSectionsAcademicYear *string `json:"class_sections_academic_year,omitempty" validate:"omitempty,max=20"`
	ClassSectionsCapacity     *int    `json:"class_sections_capacity,omitempty"      validate:"omitempty,gte=0"`
}

func (p *PatchClassSectionRequest) ApplyPatch(dst *m.ClassSectionModel) {
	if p.ClassSectionsName != nil {
		dst.ClassSectionsName = strings.TrimSpace(*p.ClassSectionsName)
	}
	if p.ClassSectionsAcademicYear != nil {
		dst.ClassSectionsAcademicYear = strings.TrimSpace(*p.ClassSectionsAcademicYear)
	}
	if p.ClassSectionsCapacity != nil {
		dst.ClassSectionsCapacity = *p.ClassSectionsCapacity
	}
}

type ClassSectionResponse struct {
	ClassSectionID            uuid.UUID `json:"class_section_id"`
	ClassSectionsSchoolID     uuid.UUID `json:"class_sections_school_id"`
	ClassSectionsName         string    `json:"class_sections_name"`
	ClassSectionsAcademicYear string    `json:"class_sections_academic_year"`
	ClassSectionsCapacity     int       `json:"class_sections_capacity"`
	ClassSectionsCreatedAt    time.Time `json:"class_sections_created_at"`
	ClassSectionsUpdatedAt    time.Time `json:"class_sections_updated_at"`
}

func NewClassSectionResponse(src *m.ClassSectionModel) ClassSectionResponse {
	return ClassSectionResponse{
		ClassSectionID:            src.ClassSectionID,
		ClassSectionsSchoolID:     src.ClassSectionsSchoolID,
		ClassSectionsName:         src.ClassSectionsName,
		ClassSectionsAcademicYear: src.ClassSectionsAcademicYear,
		ClassSectionsCapacity:     src.ClassSectionsCapacity,
		ClassSectionsCreatedAt:    src.ClassSectionsCreatedAt,
		ClassSectionsUpdatedAt:    src.ClassSectionsUpdatedAt,
	}
}
