// file: internals/features/school/academics/class_offerings/controller/class_offering_controller_test.go
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

	d "atletaku_backend/internals/features/school/academics/class_offerings/dto"
	m "atletaku_backend/internals/features/school/academics/class_offerings/model"
	helper "atletaku_backend/internals/helpers"
)

type offeringTestEnv struct {
	app      *fiber.App
	db       *gorm.DB
	schoolID uuid.UUID
}

func newOfferingTestEnv(t *testing.T) *offeringTestEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	for _, ddl := range []string{
		`CREATE TABLE class_offerings (
			class_offering_id TEXT PRIMARY KEY,
			class_offerings_school_id TEXT NOT NULL,
			class_offerings_course_id TEXT NOT NULL,
			class_offerings_section_id TEXT NOT NULL,
			class_offerings_coach_id TEXT,
			class_offerings_status TEXT NOT NULL DEFAULT 'upcoming',
			class_offerings_capacity INTEGER NOT NULL DEFAULT 0,
			class_offerings_created_at DATETIME,
			class_offerings_updated_at DATETIME,
			class_offerings_deleted_at DATETIME
		)`,
		`CREATE TABLE class_schedule_entries (
			schedule_entry_id TEXT PRIMARY KEY,
			schedule_entries_school_id TEXT NOT NULL,
			schedule_entries_offering_id TEXT NOT NULL UNIQUE,
			schedule_entries_section_id TEXT NOT NULL,
			schedule_entries_days TEXT NOT NULL,
			schedule_entries_time_ranges TEXT NOT NULL,
			schedule_entries_rooms TEXT NOT NULL,
			schedule_entries_created_at DATETIME,
			schedule_entries_updated_at DATETIME
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	env := &offeringTestEnv{db: db, schoolID: uuid.New()}
	ctl := New(db, validator.New(), nil)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocSchoolID, env.schoolID.String())
		c.Locals(helper.LocUserID, uuid.NewString())
		return c.Next()
	})
	app.Put("/class-offerings/:id/schedule", ctl.SetSchedule)
	app.Delete("/class-offerings/:id/schedule", ctl.DeleteSchedule)

	env.app = app
	return env
}

func (env *offeringTestEnv) seedOffering(t *testing.T, status m.OfferingStatus, sectionID uuid.UUID) uuid.UUID {
	t.Helper()
	offering := m.ClassOfferingModel{
		ClassOfferingID:         uuid.New(),
		ClassOfferingsSchoolID:  env.schoolID,
		ClassOfferingsCourseID:  uuid.New(),
		ClassOfferingsSectionID: sectionID,
		ClassOfferingsStatus:    status,
	}
	if err := env.db.Create(&offering).Error; err != nil {
		t.Fatalf("seed offering: %v", err)
	}
	return offering.ClassOfferingID
}

func (env *offeringTestEnv) putSchedule(t *testing.T, offeringID uuid.UUID, req d.SetScheduleRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	httpReq := httptest.NewRequest(fiber.MethodPut,
		"/class-offerings/"+offeringID.String()+"/schedule", bytes.NewReader(body))
	httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := env.app.Test(httpReq)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func (env *offeringTestEnv) deleteSchedule(t *testing.T, offeringID uuid.UUID) *http.Response {
	t.Helper()
	httpReq := httptest.NewRequest(fiber.MethodDelete,
		"/class-offerings/"+offeringID.String()+"/schedule", nil)
	resp, err := env.app.Test(httpReq)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func weeklySlot(room string) d.SetScheduleRequest {
	return d.SetScheduleRequest{
		Days:       []string{"Monday"},
		TimeRanges: []string{"08:00-09:00"},
		Rooms:      []string{room},
	}
}

// Hapus jadwal lalu pasang lagi untuk offering yang sama: entry lama harus
// benar-benar hilang, bukan tertinggal dan menabrak unique index offering.
func TestSetScheduleAfterDelete(t *testing.T) {
	env := newOfferingTestEnv(t)
	offeringID := env.seedOffering(t, m.OfferingUpcoming, uuid.New())

	if resp := env.putSchedule(t, offeringID, weeklySlot("R1")); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first set: status %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}
	if resp := env.deleteSchedule(t, offeringID); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete: status %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if resp := env.putSchedule(t, offeringID, weeklySlot("R1")); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("set after delete: status %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	var count int64
	if err := env.db.Model(&m.ScheduleEntryModel{}).
		Where("schedule_entries_offering_id = ?", offeringID).
		Count(&count).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 1 {
		t.Errorf("entry count = %d, want 1", count)
	}
}

func TestSetScheduleConflictRejected(t *testing.T) {
	env := newOfferingTestEnv(t)
	first := env.seedOffering(t, m.OfferingUpcoming, uuid.New())
	second := env.seedOffering(t, m.OfferingUpcoming, uuid.New())

	if resp := env.putSchedule(t, first, weeklySlot("R1")); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first set: status %d", resp.StatusCode)
	}

	resp := env.putSchedule(t, second, weeklySlot("R1"))
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status %d, want %d", resp.StatusCode, fiber.StatusConflict)
	}

	var body struct {
		Conflict struct {
			Kind string `json:"kind"`
			Day  string `json:"day"`
			Room string `json:"room"`
		} `json:"conflict"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Conflict.Kind != "room_conflict" || body.Conflict.Room != "R1" {
		t.Errorf("conflict payload = %+v", body.Conflict)
	}
}

// Rooms "online" (case apapun) lolos tanpa cek bentrok walau jam dan harinya
// tumpang tindih persis dengan entry lain.
func TestSetScheduleOnlineSkipsConflictCheck(t *testing.T) {
	env := newOfferingTestEnv(t)
	first := env.seedOffering(t, m.OfferingUpcoming, uuid.New())
	second := env.seedOffering(t, m.OfferingUpcoming, uuid.New())

	if resp := env.putSchedule(t, first, weeklySlot("R1")); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first set: status %d", resp.StatusCode)
	}

	resp := env.putSchedule(t, second, weeklySlot("Online"))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("online set: status %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	var entry m.ScheduleEntryModel
	if err := env.db.First(&entry, "schedule_entries_offering_id = ?", second).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.ScheduleEntriesRooms != m.RoomOnline {
		t.Errorf("rooms = %q, want %q", entry.ScheduleEntriesRooms, m.RoomOnline)
	}
}

// Offering completed/cancelled tidak kena cek bentrok sama sekali.
func TestSetScheduleSkipsCheckForFinishedOffering(t *testing.T) {
	env := newOfferingTestEnv(t)
	first := env.seedOffering(t, m.OfferingUpcoming, uuid.New())

	if resp := env.putSchedule(t, first, weeklySlot("R1")); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first set: status %d", resp.StatusCode)
	}

	for _, status := range []m.OfferingStatus{m.OfferingCompleted, m.OfferingCancelled} {
		t.Run(string(status), func(t *testing.T) {
			offeringID := env.seedOffering(t, status, uuid.New())
			resp := env.putSchedule(t, offeringID, weeklySlot("R1"))
			if resp.StatusCode != fiber.StatusCreated {
				t.Errorf("status %d, want %d", resp.StatusCode, fiber.StatusCreated)
			}
		})
	}
}
