// file: internals/features/athletics/programs/model/training_program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   TrainingProgramModel — program latihan yang disusun coach,
   berisi daftar exercise dengan jumlah set masing-masing.
   ======================================================= */

type TrainingProgramModel struct {
	// PK
	TrainingProgramID uuid.UUID `json:"training_program_id" gorm:"type:uuid;primaryKey;column:training_program_id;default:gen_random_uuid()"`

	// Tenant / scope
	TrainingProgramsSchoolID uuid.UUID `json:"training_programs_school_id" gorm:"type:uuid;not null;column:training_programs_school_id;index"`

	TrainingProgramsCoachID uuid.UUID `json:"training_programs_coach_id" gorm:"type:uuid;not null;column:training_programs_coach_id"`
	TrainingProgramsName    string    `json:"training_programs_name" gorm:"type:varchar(160);not null;column:training_programs_name"`
	TrainingProgramsNotes   *string   `json:"training_programs_notes,omitempty" gorm:"type:text;column:training_programs_notes"`

	// Tag bebas (mis. ["strength","u17"]) — JSONB
	TrainingProgramsTags datatypes.JSON `json:"training_programs_tags,omitempty" gorm:"type:jsonb;column:training_programs_tags"`

	// Timestamps
	TrainingProgramsCreatedAt time.Time      `json:"training_programs_created_at" gorm:"column:training_programs_created_at;not null;autoCreateTime"`
	TrainingProgramsUpdatedAt time.Time      `json:"training_programs_updated_at" gorm:"column:training_programs_updated_at;not null;autoUpdateTime"`
	TrainingProgramsDeletedAt gorm.DeletedAt `json:"training_programs_deleted_at" gorm:"column:training_programs_deleted_at;index"`
}

func (TrainingProgramModel) TableName() string { return "training_programs" }

/* =======================================================
   ProgramExerciseModel — satu exercise di dalam program.
   set_count = jumlah set yang bisa di-log per exercise.
   ======================================================= */

type ProgramExerciseModel struct {
	// PK
	ProgramExerciseID uuid.UUID `json:"program_exercise_id" gorm:"type:uuid;primaryKey;column:program_exercise_id;default:gen_random_uuid()"`

	// Tenant / scope
	ProgramExercisesSchoolID uuid.UUID `json:"program_exercises_school_id" gorm:"type:uuid;not null;column:program_exercises_school_id;index"`

	ProgramExercisesProgramID uuid.UUID `json:"program_exercises_program_id" gorm:"type:uuid;not null;column:program_exercises_program_id;index"`
	ProgramExercisesName      string    `json:"program_exercises_name" gorm:"type:varchar(160);not null;column:program_exercises_name"`
	ProgramExercisesSetCount  int       `json:"program_exercises_set_count" gorm:"type:int;not null;default:0;column:program_exercises_set_count"`
	ProgramExercisesPosition  int       `json:"program_exercises_position" gorm:"type:int;not null;default:0;column:program_exercises_position"`

	// Timestamps
	ProgramExercisesCreatedAt time.Time      `json:"program_exercises_created_at" gorm:"column:program_exercises_created_at;not null;autoCreateTime"`
	ProgramExercisesUpdatedAt time.Time      `json:"program_exercises_updated_at" gorm:"column:program_exercises_updated_at;not null;autoUpdateTime"`
	ProgramExercisesDeletedAt gorm.DeletedAt `json:"program_exercises_deleted_at" gorm:"column:program_exercises_deleted_at;index"`
}

func (ProgramExerciseModel) TableName() string { return "program_exercises" }
