// file: internals/features/school/academics/enrollments/dto/enrollment_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "atletaku_backend/internals/features/school/academics/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentsSectionID string `json:"enrollments_section_id" validate:"required,uuid4"`
	EnrollmentsStudentID string `json:"enrollments_student_id" validate:"required,uuid4"`
}

func (r *CreateEnrollmentRequest) ApplyToModel(dst *m.EnrollmentModel) error {
	sectionID, err := uuid.Parse(strings.TrimSpace(r.EnrollmentsSectionID))
	if err != nil {
		return fmt.Errorf("enrollments_section_id: %w", err)
	}
	studentID, err := uuid.Parse(strings.TrimSpace(r.EnrollmentsStudentID))
	if err != nil {
		return fmt.Errorf("enrollments_student_id: %w", err)
	}
	dst.EnrollmentsSectionID = sectionID
	dst.EnrollmentsStudentID = studentID
	return nil
}

type EnrollmentResponse struct {
	EnrollmentID         uuid.UUID `json:"enrollment_id"`
	EnrollmentsSchoolID  uuid.UUID `json:"enrollments_school_id"`
	EnrollmentsSectionID uuid.UUID `json:"enrollments_section_id"`
	EnrollmentsStudentID uuid.UUID `json:"enrollments_student_id"`
	EnrollmentsCreatedAt time.Time `json:"enrollments_created_at"`
}

func NewEnrollmentResponse(src *m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:         src.EnrollmentID,
		EnrollmentsSchoolID:  src.EnrollmentsSchoolID,
		EnrollmentsSectionID: src.EnrollmentsSectionID,
		EnrollmentsStudentID: src.EnrollmentsStudentID,
		EnrollmentsCreatedAt: src.EnrollmentsCreatedAt,
	}
}
