// file: internals/features/school/academics/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel — roster: satu siswa terdaftar di satu section.
// Unique index-nya partial (hanya baris hidup) supaya siswa yang
// dicabut bisa didaftarkan ulang ke section yang sama.
type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"type:uuid;primaryKey;column:enrollment_id;default:gen_random_uuid()"`

	// Tenant / scope
	EnrollmentsSchoolID uuid.UUID `json:"enrollments_school_id" gorm:"type:uuid;not null;column:enrollments_school_id;index"`

	EnrollmentsSectionID uuid.UUID `json:"enrollments_section_id" gorm:"type:uuid;not null;column:enrollments_section_id;index:idx_enrollments_section_student,unique,where:enrollments_deleted_at IS NULL"`
	EnrollmentsStudentID uuid.UUID `json:"enrollments_student_id" gorm:"type:uuid;not null;column:enrollments_student_id;index:idx_enrollments_section_student,unique,where:enrollments_deleted_at IS NULL"`

	// Timestamps
	EnrollmentsCreatedAt time.Time      `json:"enrollments_created_at" gorm:"column:enrollments_created_at;not null;autoCreateTime"`
	EnrollmentsDeletedAt gorm.DeletedAt `json:"enrollments_deleted_at" gorm:"column:enrollments_deleted_at;index"`
}

func (EnrollmentModel) TableName() string { return "class_enrollments" }
