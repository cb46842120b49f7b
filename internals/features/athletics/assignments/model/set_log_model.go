// file: internals/features/athletics/assignments/model/set_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseSetLogModel — satu set yang dicatat siswa. Unik per
// (assignment, exercise, set_number): log ulang set yang sama = upsert.
type ExerciseSetLogModel struct {
	// PK
	ExerciseSetLogID uuid.UUID `json:"exercise_set_log_id" gorm:"type:uuid;primaryKey;column:exercise_set_log_id;default:gen_random_uuid()"`

	// Tenant / scope
	ExerciseSetLogsSchoolID uuid.UUID `json:"exercise_set_logs_school_id" gorm:"type:uuid;not null;column:exercise_set_logs_school_id;index"`

	ExerciseSetLogsAssignmentID uuid.UUID `json:"exercise_set_logs_assignment_id" gorm:"type:uuid;not null;column:exercise_set_logs_assignment_id;index:idx_set_logs_unique,unique"`
	ExerciseSetLogsExerciseID   uuid.UUID `json:"exercise_set_logs_exercise_id" gorm:"type:uuid;not null;column:exercise_set_logs_exercise_id;index:idx_set_logs_unique,unique"`
	ExerciseSetLogsSetNumber    int       `json:"exercise_set_logs_set_number" gorm:"type:int;not null;column:exercise_set_logs_set_number;index:idx_set_logs_unique,unique"`

	ExerciseSetLogsReps        int     `json:"exercise_set_logs_reps" gorm:"type:int;not null;default:0;column:exercise_set_logs_reps"`
	ExerciseSetLogsWeight      float64 `json:"exercise_set_logs_weight" gorm:"type:numeric(6,2);not null;default:0;column:exercise_set_logs_weight"`
	ExerciseSetLogsIsCompleted bool    `json:"exercise_set_logs_is_completed" gorm:"type:boolean;not null;default:false;column:exercise_set_logs_is_completed"`

	ExerciseSetLogsLoggedAt time.Time `json:"exercise_set_logs_logged_at" gorm:"column:exercise_set_logs_logged_at;not null;autoUpdateTime"`

	ExerciseSetLogsDeletedAt gorm.DeletedAt `json:"exercise_set_logs_deleted_at" gorm:"column:exercise_set_logs_deleted_at;index"`
}

func (ExerciseSetLogModel) TableName() string { return "exercise_set_logs" }
