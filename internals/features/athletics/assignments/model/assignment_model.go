// file: internals/features/athletics/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ProgramAssignmentModel — program diberikan ke satu siswa.

   Kolom status hanyalah cache hasil derivasi yang ditulis ulang
   setiap kali log berubah; tampilan selalu menghitung ulang dari
   jumlah set (lihat service.DeriveStatus).
   ======================================================= */

type ProgramAssignmentModel struct {
	// PK
	ProgramAssignmentID uuid.UUID `json:"program_assignment_id" gorm:"type:uuid;primaryKey;column:program_assignment_id;default:gen_random_uuid()"`

	// Tenant / scope
	ProgramAssignmentsSchoolID uuid.UUID `json:"program_assignments_school_id" gorm:"type:uuid;not null;column:program_assignments_school_id;index"`

	ProgramAssignmentsProgramID uuid.UUID `json:"program_assignments_program_id" gorm:"type:uuid;not null;column:program_assignments_program_id;index"`
	ProgramAssignmentsStudentID uuid.UUID `json:"program_assignments_student_id" gorm:"type:uuid;not null;column:program_assignments_student_id;index"`

	ProgramAssignmentsStatus     string    `json:"program_assignments_status" gorm:"type:varchar(20);not null;default:'Assigned';column:program_assignments_status"`
	ProgramAssignmentsAssignedAt time.Time `json:"program_assignments_assigned_at" gorm:"column:program_assignments_assigned_at;not null;autoCreateTime"`

	// Timestamps
	ProgramAssignmentsUpdatedAt time.Time      `json:"program_assignments_updated_at" gorm:"column:program_assignments_updated_at;not null;autoUpdateTime"`
	ProgramAssignmentsDeletedAt gorm.DeletedAt `json:"program_assignments_deleted_at" gorm:"column:program_assignments_deleted_at;index"`
}

func (ProgramAssignmentModel) TableName() string { return "program_assignments" }
