// file: internals/features/school/academics/class_offerings/controller/timetable_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "atletaku_backend/internals/features/school/academics/class_offerings/dto"
	m "atletaku_backend/internals/features/school/academics/class_offerings/model"
	cm "atletaku_backend/internals/features/school/academics/courses/model"
	em "atletaku_backend/internals/features/school/academics/enrollments/model"
	helper "atletaku_backend/internals/helpers"
)

/* =======================================================
   Timetable siswa (/api/u/timetable)
   ======================================================= */

type timetableItem struct {
	d.ScheduleResponse
	ClassOfferingID       uuid.UUID        `json:"class_offering_id"`
	ClassOfferingsStatus  m.OfferingStatus `json:"class_offerings_status"`
	CoursesTitle          string           `json:"courses_title"`
	CoursesCode           string           `json:"courses_code"`
}

// MyTimetable — seluruh jadwal dari section tempat siswa terdaftar.
// Offering completed/cancelled tidak ikut tampil.
func (ctl *ClassOfferingController) MyTimetable(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var sectionIDs []uuid.UUID
	err = ctl.DB.WithContext(c.Context()).Model(&em.EnrollmentModel{}).
		Where("enrollments_school_id = ? AND enrollments_student_id = ?", schoolID, studentID).
		Pluck("enrollments_section_id", &sectionIDs).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if len(sectionIDs) == 0 {
		return helper.JsonList(c, "", []timetableItem{}, nil)
	}

	var entries []m.ScheduleEntryModel
	err = ctl.DB.WithContext(c.Context()).
		Where("schedule_entries_school_id = ? AND schedule_entries_section_id IN ?", schoolID, sectionIDs).
		Find(&entries).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if len(entries) == 0 {
		return helper.JsonList(c, "", []timetableItem{}, nil)
	}

	offeringIDs := make([]uuid.UUID, 0, len(entries))
	for i := range entries {
		offeringIDs = append(offeringIDs, entries[i].ScheduleEntriesOfferingID)
	}

	var offerings []m.ClassOfferingModel
	err = ctl.DB.WithContext(c.Context()).
		Where("class_offerings_school_id = ? AND class_offering_id IN ?", schoolID, offeringIDs).
		Find(&offerings).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}

	offeringByID := make(map[uuid.UUID]*m.ClassOfferingModel, len(offerings))
	courseIDs := make([]uuid.UUID, 0, len(offerings))
	for i := range offerings {
		offeringByID[offerings[i].ClassOfferingID] = &offerings[i]
		courseIDs = append(courseIDs, offerings[i].ClassOfferingsCourseID)
	}

	var courses []cm.CourseModel
	if len(courseIDs) > 0 {
		err = ctl.DB.WithContext(c.Context()).
			Where("courses_school_id = ? AND course_id IN ?", schoolID, courseIDs).
			Find(&courses).Error
		if err != nil {
			return helper.WritePGError(c, err)
		}
	}
	courseByID := make(map[uuid.UUID]*cm.CourseModel, len(courses))
	for i := range courses {
		courseByID[courses[i].CourseID] = &courses[i]
	}

	out := make([]timetableItem, 0, len(entries))
	for i := range entries {
		off := offeringByID[entries[i].ScheduleEntriesOfferingID]
		if off == nil || !off.ClassOfferingsStatus.SubjectToConflictCheck() {
			continue
		}
		item := timetableItem{
			ScheduleResponse:     d.NewScheduleResponse(&entries[i]),
			ClassOfferingID:      off.ClassOfferingID,
			ClassOfferingsStatus: off.ClassOfferingsStatus,
		}
		if course := courseByID[off.ClassOfferingsCourseID]; course != nil {
			item.CoursesTitle = course.CoursesTitle
			item.CoursesCode = course.CoursesCode
		}
		out = append(out, item)
	}
	return helper.JsonList(c, "", out, nil)
}
