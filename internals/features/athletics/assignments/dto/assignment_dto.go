// file: internals/features/athletics/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "atletaku_backend/internals/features/athletics/assignments/model"
	svc "atletaku_backend/internals/features/athletics/assignments/service"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateAssignmentRequest struct {
	ProgramAssignmentsProgramID uuid.UUID `json:"program_assignments_program_id" validate:"required"`
	ProgramAssignmentsStudentID uuid.UUID `json:"program_assignments_student_id" validate:"required"`
}

// UpsertSetLogRequest — siswa mencatat satu set. Kombinasi
// (exercise_id, set_number) yang sudah ada akan ditimpa.
type UpsertSetLogRequest struct {
	ExerciseSetLogsExerciseID  uuid.UUID `json:"exercise_set_logs_exercise_id" validate:"required"`
	ExerciseSetLogsSetNumber   int       `json:"exercise_set_logs_set_number" validate:"required,gte=1,lte=50"`
	ExerciseSetLogsReps        int       `json:"exercise_set_logs_reps" validate:"gte=0,lte=1000"`
	ExerciseSetLogsWeight      float64   `json:"exercise_set_logs_weight" validate:"gte=0,lte=2000"`
	ExerciseSetLogsIsCompleted bool      `json:"exercise_set_logs_is_completed"`
}

/* =======================================================
   Response DTOs
   ======================================================= */

// AssignmentResponse — status dan persen selalu hasil derivasi saat
// dibaca, bukan isi kolom status (lihat service.DeriveStatus).
type AssignmentResponse struct {
	ProgramAssignmentID         uuid.UUID `json:"program_assignment_id"`
	ProgramAssignmentsSchoolID  uuid.UUID `json:"program_assignments_school_id"`
	ProgramAssignmentsProgramID uuid.UUID `json:"program_assignments_program_id"`
	ProgramAssignmentsStudentID uuid.UUID `json:"program_assignments_student_id"`
	ProgramAssignmentsStatus    string    `json:"program_assignments_status"`
	CompletionPercent           int       `json:"completion_percent"`
	TotalSets                   int       `json:"total_sets"`
	LoggedSets                  int       `json:"logged_sets"`
	CompletedSets               int       `json:"completed_sets"`
	ProgramAssignmentsAssignedAt time.Time `json:"program_assignments_assigned_at"`
}

func NewAssignmentResponse(src *m.ProgramAssignmentModel, cnt svc.UnitCounts) AssignmentResponse {
	return AssignmentResponse{
		ProgramAssignmentID:          src.ProgramAssignmentID,
		ProgramAssignmentsSchoolID:   src.ProgramAssignmentsSchoolID,
		ProgramAssignmentsProgramID:  src.ProgramAssignmentsProgramID,
		ProgramAssignmentsStudentID:  src.ProgramAssignmentsStudentID,
		ProgramAssignmentsStatus:     string(svc.DeriveStatus(cnt)),
		CompletionPercent:            svc.CompletionPercent(cnt.Total, cnt.Completed),
		TotalSets:                    cnt.Total,
		LoggedSets:                   cnt.Logged,
		CompletedSets:                cnt.Completed,
		ProgramAssignmentsAssignedAt: src.ProgramAssignmentsAssignedAt,
	}
}

type SetLogResponse struct {
	ExerciseSetLogID           uuid.UUID `json:"exercise_set_log_id"`
	ExerciseSetLogsExerciseID  uuid.UUID `json:"exercise_set_logs_exercise_id"`
	ExerciseSetLogsSetNumber   int       `json:"exercise_set_logs_set_number"`
	ExerciseSetLogsReps        int       `json:"exercise_set_logs_reps"`
	ExerciseSetLogsWeight      float64   `json:"exercise_set_logs_weight"`
	ExerciseSetLogsIsCompleted bool      `json:"exercise_set_logs_is_completed"`
	ExerciseSetLogsLoggedAt    time.Time `json:"exercise_set_logs_logged_at"`
}

func NewSetLogResponse(src *m.ExerciseSetLogModel) SetLogResponse {
	return SetLogResponse{
		ExerciseSetLogID:           src.ExerciseSetLogID,
		ExerciseSetLogsExerciseID:  src.ExerciseSetLogsExerciseID,
		ExerciseSetLogsSetNumber:   src.ExerciseSetLogsSetNumber,
		ExerciseSetLogsReps:        src.ExerciseSetLogsReps,
		ExerciseSetLogsWeight:      src.ExerciseSetLogsWeight,
		ExerciseSetLogsIsCompleted: src.ExerciseSetLogsIsCompleted,
		ExerciseSetLogsLoggedAt:    src.ExerciseSetLogsLoggedAt,
	}
}
