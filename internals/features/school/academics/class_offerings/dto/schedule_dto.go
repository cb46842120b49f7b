// file: internals/features/school/academics/class_offerings/dto/schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "atletaku_backend/internals/features/school/academics/class_offerings/model"
	svc "atletaku_backend/internals/features/school/academics/class_offerings/service"
)

/* =======================================================
   Set/replace jadwal — tiga list paralel dari FE.
   days[i] ↔ time_ranges[i] ↔ rooms[i].
   ======================================================= */

type SetScheduleRequest struct {
	Days       []string `json:"days"        validate:"required,min=1,dive,required"`
	TimeRanges []string `json:"time_ranges" validate:"required,min=1,dive,required"`
	Rooms      []string `json:"rooms"       validate:"required,min=1,dive,required"`
}

// ApplyToEntry — encode ke bentuk simpan ("/"-joined) + normalisasi rooms.
// Entry diganti utuh: ketiga kolom selalu ditulis ulang.
func (r *SetScheduleRequest) ApplyToEntry(dst *m.ScheduleEntryModel) {
	dst.ScheduleEntriesDays = svc.EncodeField(r.Days)
	dst.ScheduleEntriesTimeRanges = svc.EncodeField(r.TimeRanges)
	dst.ScheduleEntriesRooms = svc.NormalizeRoomsField(svc.EncodeField(r.Rooms))
}

/* =======================================================
   Response DTO
   ======================================================= */

type ScheduleResponse struct {
	ScheduleEntryID           uuid.UUID `json:"schedule_entry_id"`
	ScheduleEntriesOfferingID uuid.UUID `json:"schedule_entries_offering_id"`
	ScheduleEntriesSectionID  uuid.UUID `json:"schedule_entries_section_id"`
	Days                      []string  `json:"days"`
	TimeRanges                []string  `json:"time_ranges"`
	Rooms                     []string  `json:"rooms"`
	IsOnline                  bool      `json:"is_online"`
	ScheduleEntriesCreatedAt  time.Time `json:"schedule_entries_created_at"`
	ScheduleEntriesUpdatedAt  time.Time `json:"schedule_entries_updated_at"`
}

func NewScheduleResponse(src *m.ScheduleEntryModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleEntryID:           src.ScheduleEntryID,
		ScheduleEntriesOfferingID: src.ScheduleEntriesOfferingID,
		ScheduleEntriesSectionID:  src.ScheduleEntriesSectionID,
		Days:                      svc.DecodeField(src.ScheduleEntriesDays),
		TimeRanges:                svc.DecodeField(src.ScheduleEntriesTimeRanges),
		Rooms:                     svc.DecodeField(src.ScheduleEntriesRooms),
		IsOnline:                  svc.IsOnline(src.ScheduleEntriesRooms),
		ScheduleEntriesCreatedAt:  src.ScheduleEntriesCreatedAt,
		ScheduleEntriesUpdatedAt:  src.ScheduleEntriesUpdatedAt,
	}
}
