// file: internals/features/athletics/assignments/service/status_test.go
package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "atletaku_backend/internals/features/athletics/assignments/model"
	pm "atletaku_backend/internals/features/athletics/programs/model"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		cnt  UnitCounts
		want AssignmentStatus
	}{
		{"no sets at all", UnitCounts{Total: 0, Logged: 0, Completed: 0}, StatusAssigned},
		{"nothing logged", UnitCounts{Total: 5, Logged: 0, Completed: 0}, StatusAssigned},
		{"logged but none completed", UnitCounts{Total: 5, Logged: 2, Completed: 0}, StatusInProgress},
		{"partially completed", UnitCounts{Total: 5, Logged: 3, Completed: 2}, StatusInProgress},
		{"all completed", UnitCounts{Total: 5, Logged: 5, Completed: 5}, StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.cnt); got != tt.want {
				t.Errorf("DeriveStatus(%+v) = %s, want %s", tt.cnt, got, tt.want)
			}
		})
	}
}

func TestWriteBackStatus(t *testing.T) {
	tests := []struct {
		name string
		cnt  UnitCounts
		want AssignmentStatus
	}{
		{"no sets at all", UnitCounts{Total: 0, Logged: 0, Completed: 0}, StatusAssigned},
		{"logged but none completed", UnitCounts{Total: 5, Logged: 2, Completed: 0}, StatusAssigned},
		{"partially completed", UnitCounts{Total: 5, Logged: 3, Completed: 2}, StatusInProgress},
		{"all completed", UnitCounts{Total: 5, Logged: 5, Completed: 5}, StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WriteBackStatus(tt.cnt); got != tt.want {
				t.Errorf("WriteBackStatus(%+v) = %s, want %s", tt.cnt, got, tt.want)
			}
		})
	}
}

// Dua aturan memang beda di kasus "sudah log tapi belum ada yang selesai":
// tampilan bilang In-Progress, kolom status tetap Assigned.
func TestStatusRulesDiverge(t *testing.T) {
	cnt := UnitCounts{Total: 5, Logged: 2, Completed: 0}
	if got := DeriveStatus(cnt); got != StatusInProgress {
		t.Errorf("DeriveStatus = %s, want %s", got, StatusInProgress)
	}
	if got := WriteBackStatus(cnt); got != StatusAssigned {
		t.Errorf("WriteBackStatus = %s, want %s", got, StatusAssigned)
	}
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name             string
		total, completed int
		want             int
	}{
		{"zero total", 0, 0, 0},
		{"zero completed", 5, 0, 0},
		{"one third rounds down", 3, 1, 33},
		{"two thirds rounds up", 3, 2, 67},
		{"half", 4, 2, 50},
		{"full", 5, 5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercent(tt.total, tt.completed); got != tt.want {
				t.Errorf("CompletionPercent(%d, %d) = %d, want %d", tt.total, tt.completed, got, tt.want)
			}
		})
	}
}

/* =======================================================
   CountUnits / RefreshAssignmentStatus — pakai sqlite in-memory
   ======================================================= */

func newStatusTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	for _, ddl := range []string{
		`CREATE TABLE program_exercises (
			program_exercise_id TEXT PRIMARY KEY,
			program_exercises_school_id TEXT NOT NULL,
			program_exercises_program_id TEXT NOT NULL,
			program_exercises_name TEXT NOT NULL,
			program_exercises_set_count INTEGER NOT NULL DEFAULT 0,
			program_exercises_position INTEGER NOT NULL DEFAULT 0,
			program_exercises_created_at DATETIME,
			program_exercises_updated_at DATETIME,
			program_exercises_deleted_at DATETIME
		)`,
		`CREATE TABLE program_assignments (
			program_assignment_id TEXT PRIMARY KEY,
			program_assignments_school_id TEXT NOT NULL,
			program_assignments_program_id TEXT NOT NULL,
			program_assignments_student_id TEXT NOT NULL,
			program_assignments_status TEXT NOT NULL DEFAULT 'Assigned',
			program_assignments_assigned_at DATETIME,
			program_assignments_updated_at DATETIME,
			program_assignments_deleted_at DATETIME
		)`,
		`CREATE TABLE exercise_set_logs (
			exercise_set_log_id TEXT PRIMARY KEY,
			exercise_set_logs_school_id TEXT NOT NULL,
			exercise_set_logs_assignment_id TEXT NOT NULL,
			exercise_set_logs_exercise_id TEXT NOT NULL,
			exercise_set_logs_set_number INTEGER NOT NULL,
			exercise_set_logs_reps INTEGER NOT NULL DEFAULT 0,
			exercise_set_logs_weight NUMERIC NOT NULL DEFAULT 0,
			exercise_set_logs_is_completed BOOLEAN NOT NULL DEFAULT 0,
			exercise_set_logs_logged_at DATETIME,
			exercise_set_logs_deleted_at DATETIME
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

type statusFixture struct {
	db         *gorm.DB
	schoolID   uuid.UUID
	assignment m.ProgramAssignmentModel
	exercises  []pm.ProgramExerciseModel
}

// Program dengan dua exercise: 3 set + 2 set → total 5 set.
func newStatusFixture(t *testing.T) *statusFixture {
	t.Helper()
	f := &statusFixture{
		db:       newStatusTestDB(t),
		schoolID: uuid.New(),
	}
	programID := uuid.New()

	for i, setCount := range []int{3, 2} {
		ex := pm.ProgramExerciseModel{
			ProgramExerciseID:         uuid.New(),
			ProgramExercisesSchoolID:  f.schoolID,
			ProgramExercisesProgramID: programID,
			ProgramExercisesName:      fmt.Sprintf("Exercise %d", i+1),
			ProgramExercisesSetCount:  setCount,
			ProgramExercisesPosition:  i,
		}
		if err := f.db.Create(&ex).Error; err != nil {
			t.Fatalf("seed exercise: %v", err)
		}
		f.exercises = append(f.exercises, ex)
	}

	f.assignment = m.ProgramAssignmentModel{
		ProgramAssignmentID:         uuid.New(),
		ProgramAssignmentsSchoolID:  f.schoolID,
		ProgramAssignmentsProgramID: programID,
		ProgramAssignmentsStudentID: uuid.New(),
		ProgramAssignmentsStatus:    string(StatusAssigned),
	}
	if err := f.db.Create(&f.assignment).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return f
}

func (f *statusFixture) logSet(t *testing.T, exercise *pm.ProgramExerciseModel, setNumber int, completed bool) {
	t.Helper()
	log := m.ExerciseSetLogModel{
		ExerciseSetLogID:            uuid.New(),
		ExerciseSetLogsSchoolID:     f.schoolID,
		ExerciseSetLogsAssignmentID: f.assignment.ProgramAssignmentID,
		ExerciseSetLogsExerciseID:   exercise.ProgramExerciseID,
		ExerciseSetLogsSetNumber:    setNumber,
		ExerciseSetLogsReps:         10,
		ExerciseSetLogsIsCompleted:  completed,
	}
	if err := f.db.Create(&log).Error; err != nil {
		t.Fatalf("seed log: %v", err)
	}
}

func TestCountUnits(t *testing.T) {
	f := newStatusFixture(t)
	f.logSet(t, &f.exercises[0], 1, true)
	f.logSet(t, &f.exercises[0], 2, false)

	cnt, err := CountUnits(f.db, f.schoolID, &f.assignment)
	if err != nil {
		t.Fatalf("CountUnits: %v", err)
	}
	want := UnitCounts{Total: 5, Logged: 2, Completed: 1}
	if cnt != want {
		t.Errorf("CountUnits = %+v, want %+v", cnt, want)
	}
}

func TestCountUnitsScopedToTenant(t *testing.T) {
	f := newStatusFixture(t)
	f.logSet(t, &f.exercises[0], 1, true)

	cnt, err := CountUnits(f.db, uuid.New(), &f.assignment)
	if err != nil {
		t.Fatalf("CountUnits: %v", err)
	}
	if cnt.Total != 0 || cnt.Logged != 0 || cnt.Completed != 0 {
		t.Errorf("tenant lain harus melihat nol, got %+v", cnt)
	}
}

func TestRefreshAssignmentStatus(t *testing.T) {
	f := newStatusFixture(t)

	// tanpa log sama sekali → tetap Assigned
	if _, err := RefreshAssignmentStatus(f.db, f.schoolID, &f.assignment); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if f.assignment.ProgramAssignmentsStatus != string(StatusAssigned) {
		t.Errorf("status = %s, want Assigned", f.assignment.ProgramAssignmentsStatus)
	}

	// log tanpa completed → kolom status tetap Assigned (aturan write path)
	f.logSet(t, &f.exercises[0], 1, false)
	cnt, err := RefreshAssignmentStatus(f.db, f.schoolID, &f.assignment)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if f.assignment.ProgramAssignmentsStatus != string(StatusAssigned) {
		t.Errorf("status = %s, want Assigned", f.assignment.ProgramAssignmentsStatus)
	}
	// tapi tampilan dari hitungan yang sama bilang In-Progress
	if got := DeriveStatus(cnt); got != StatusInProgress {
		t.Errorf("DeriveStatus = %s, want In-Progress", got)
	}

	// sebagian completed → In-Progress
	f.logSet(t, &f.exercises[0], 2, true)
	if _, err := RefreshAssignmentStatus(f.db, f.schoolID, &f.assignment); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if f.assignment.ProgramAssignmentsStatus != string(StatusInProgress) {
		t.Errorf("status = %s, want In-Progress", f.assignment.ProgramAssignmentsStatus)
	}

	// semua 5 set completed → Completed, dan tersimpan di DB
	err = f.db.Model(&m.ExerciseSetLogModel{}).
		Where("exercise_set_logs_assignment_id = ? AND exercise_set_logs_exercise_id = ? AND exercise_set_logs_set_number = ?",
			f.assignment.ProgramAssignmentID, f.exercises[0].ProgramExerciseID, 1).
		Update("exercise_set_logs_is_completed", true).Error
	if err != nil {
		t.Fatalf("update log: %v", err)
	}
	f.logSet(t, &f.exercises[0], 3, true)
	f.logSet(t, &f.exercises[1], 1, true)
	f.logSet(t, &f.exercises[1], 2, true)

	cnt, err = RefreshAssignmentStatus(f.db, f.schoolID, &f.assignment)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if cnt.Completed < cnt.Total {
		t.Fatalf("fixture salah: %+v", cnt)
	}
	if f.assignment.ProgramAssignmentsStatus != string(StatusCompleted) {
		t.Errorf("status = %s, want Completed", f.assignment.ProgramAssignmentsStatus)
	}

	var stored m.ProgramAssignmentModel
	if err := f.db.First(&stored, "program_assignment_id = ?", f.assignment.ProgramAssignmentID).Error; err != nil {
		t.Fatalf("reload assignment: %v", err)
	}
	if stored.ProgramAssignmentsStatus != string(StatusCompleted) {
		t.Errorf("stored status = %s, want Completed", stored.ProgramAssignmentsStatus)
	}
}
