// file: internals/features/school/academics/enrollments/controller/enrollment_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	d "atletaku_backend/internals/features/school/academics/enrollments/dto"
	helper "atletaku_backend/internals/helpers"
)

type enrollmentTestEnv struct {
	app      *fiber.App
	schoolID uuid.UUID
}

func newEnrollmentTestEnv(t *testing.T) *enrollmentTestEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Index unik partial, sama seperti tag di model: hanya baris hidup.
	for _, ddl := range []string{
		`CREATE TABLE class_enrollments (
			enrollment_id TEXT PRIMARY KEY,
			enrollments_school_id TEXT NOT NULL,
			enrollments_section_id TEXT NOT NULL,
			enrollments_student_id TEXT NOT NULL,
			enrollments_created_at DATETIME,
			enrollments_deleted_at DATETIME
		)`,
		`CREATE UNIQUE INDEX idx_enrollments_section_student
			ON class_enrollments (enrollments_section_id, enrollments_student_id)
			WHERE enrollments_deleted_at IS NULL`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	env := &enrollmentTestEnv{schoolID: uuid.New()}
	ctl := New(db, validator.New())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocSchoolID, env.schoolID.String())
		c.Locals(helper.LocUserID, uuid.NewString())
		return c.Next()
	})
	app.Post("/enrollments", ctl.Create)
	app.Delete("/enrollments/:id", ctl.Delete)

	env.app = app
	return env
}

func (env *enrollmentTestEnv) enroll(t *testing.T, sectionID, studentID uuid.UUID) *http.Response {
	t.Helper()
	body, err := json.Marshal(d.CreateEnrollmentRequest{
		EnrollmentsSectionID: sectionID.String(),
		EnrollmentsStudentID: studentID.String(),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodPost, "/enrollments", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func decodeEnrollmentID(t *testing.T, resp *http.Response) uuid.UUID {
	t.Helper()
	var body struct {
		Data d.EnrollmentResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Data.EnrollmentID
}

// Cabut siswa dari section lalu daftarkan lagi: pendaftaran ulang harus
// diterima, baris lama yang sudah dicabut tidak boleh menghalangi.
func TestReEnrollAfterDelete(t *testing.T) {
	env := newEnrollmentTestEnv(t)
	sectionID := uuid.New()
	studentID := uuid.New()

	resp := env.enroll(t, sectionID, studentID)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first enroll: status %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}
	enrollmentID := decodeEnrollmentID(t, resp)

	delReq := httptest.NewRequest(fiber.MethodDelete, "/enrollments/"+enrollmentID.String(), nil)
	delResp, err := env.app.Test(delReq)
	if err != nil {
		t.Fatalf("delete request: %v", err)
	}
	if delResp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete: status %d, want %d", delResp.StatusCode, fiber.StatusOK)
	}

	resp = env.enroll(t, sectionID, studentID)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("re-enroll: status %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}
	if got := decodeEnrollmentID(t, resp); got == enrollmentID {
		t.Error("re-enroll mengembalikan enrollment_id lama")
	}
}

// Selama masih terdaftar, daftar ganda di section yang sama ditolak 409.
func TestDuplicateActiveEnrollmentRejected(t *testing.T) {
	env := newEnrollmentTestEnv(t)
	sectionID := uuid.New()
	studentID := uuid.New()

	if resp := env.enroll(t, sectionID, studentID); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first enroll: status %d", resp.StatusCode)
	}
	resp := env.enroll(t, sectionID, studentID)
	if resp.StatusCode == fiber.StatusCreated {
		t.Fatalf("duplicate enroll diterima, want error")
	}
}
