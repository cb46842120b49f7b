// file: internals/features/athletics/assignments/service/status.go
package service

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "atletaku_backend/internals/features/athletics/assignments/model"
	pm "atletaku_backend/internals/features/athletics/programs/model"
)

/* =======================================================
   Derivasi status assignment dari tiga hitungan set.
   ======================================================= */

type AssignmentStatus string

const (
	StatusAssigned   AssignmentStatus = "Assigned"
	StatusInProgress AssignmentStatus = "In-Progress"
	StatusCompleted  AssignmentStatus = "Completed"
)

// UnitCounts — hitungan set milik satu assignment.
// Total: seluruh set pada program; Logged: set yang punya log apapun;
// Completed: set yang ditandai selesai.
type UnitCounts struct {
	Total     int
	Logged    int
	Completed int
}

// DeriveStatus — aturan tampilan (read path), dihitung ulang setiap view:
//
//	total==0 atau logged==0  → Assigned
//	completed < total        → In-Progress
//	selain itu               → Completed
func DeriveStatus(cnt UnitCounts) AssignmentStatus {
	if cnt.Total == 0 || cnt.Logged == 0 {
		return StatusAssigned
	}
	if cnt.Completed < cnt.Total {
		return StatusInProgress
	}
	return StatusCompleted
}

// WriteBackStatus — aturan yang dipakai saat menulis kolom status setelah
// update log. Berbeda dari DeriveStatus: patokan Assigned di sini
// completed==0, bukan logged==0. Dua aturan ini memang tidak identik di
// data produksi lama; keduanya dipertahankan apa adanya.
func WriteBackStatus(cnt UnitCounts) AssignmentStatus {
	if cnt.Total == 0 || cnt.Completed == 0 {
		return StatusAssigned
	}
	if cnt.Completed < cnt.Total {
		return StatusInProgress
	}
	return StatusCompleted
}

// CompletionPercent — persen tampilan; total==0 → 0.
func CompletionPercent(total, completed int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

/* =======================================================
   Hitung set dari store (selalu dalam scope tenant).
   ======================================================= */

// CountUnits menghitung Total/Logged/Completed untuk satu assignment.
// Total dari SUM(set_count) exercise program; Logged/Completed dari
// baris log (log duplikat per set tidak mungkin — ada unique index).
func CountUnits(db *gorm.DB, schoolID uuid.UUID, assignment *m.ProgramAssignmentModel) (UnitCounts, error) {
	var cnt UnitCounts

	var total int64
	err := db.Model(&pm.ProgramExerciseModel{}).
		Where("program_exercises_school_id = ? AND program_exercises_program_id = ?",
			schoolID, assignment.ProgramAssignmentsProgramID).
		Select("COALESCE(SUM(program_exercises_set_count), 0)").
		Scan(&total).Error
	if err != nil {
		return cnt, err
	}
	cnt.Total = int(total)

	var logged int64
	err = db.Model(&m.ExerciseSetLogModel{}).
		Where("exercise_set_logs_school_id = ? AND exercise_set_logs_assignment_id = ?",
			schoolID, assignment.ProgramAssignmentID).
		Count(&logged).Error
	if err != nil {
		return cnt, err
	}
	cnt.Logged = int(logged)

	var completed int64
	err = db.Model(&m.ExerciseSetLogModel{}).
		Where("exercise_set_logs_school_id = ? AND exercise_set_logs_assignment_id = ? AND exercise_set_logs_is_completed = ?",
			schoolID, assignment.ProgramAssignmentID, true).
		Count(&completed).Error
	if err != nil {
		return cnt, err
	}
	cnt.Completed = int(completed)

	return cnt, nil
}

// RefreshAssignmentStatus — hitung ulang dan tulis balik kolom status
// (aturan write path). Dipanggil setelah setiap perubahan log.
func RefreshAssignmentStatus(db *gorm.DB, schoolID uuid.UUID, assignment *m.ProgramAssignmentModel) (UnitCounts, error) {
	cnt, err := CountUnits(db, schoolID, assignment)
	if err != nil {
		return cnt, err
	}

	newStatus := string(WriteBackStatus(cnt))
	if newStatus != assignment.ProgramAssignmentsStatus {
		err = db.Model(assignment).
			Update("program_assignments_status", newStatus).Error
		if err != nil {
			return cnt, err
		}
		assignment.ProgramAssignmentsStatus = newStatus
	}
	return cnt, nil
}
