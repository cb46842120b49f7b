// file: internals/features/school/academics/class_offerings/model/schedule_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ScheduleEntryModel — booking hari/jam/ruang milik satu offering.

   days / time_ranges / rooms adalah tiga string ber-delimiter "/"
   yang sejajar per indeks (index i pada days = index i pada
   time_ranges dan rooms). Panjang yang tidak sama ditoleransi:
   posisi yang hilang dianggap absen, bukan error.

   Room sentinel "ONLINE" berarti tanpa ruang fisik dan bebas dari
   cek bentrok ruang/jam. Entry diganti utuh saat edit (bukan merge),
   dan dihapus permanen (bukan soft delete): baris soft-deleted akan
   menabrak unique index offering saat jadwal dibuat ulang.
   ======================================================= */

const RoomOnline = "ONLINE"

type ScheduleEntryModel struct {
	// PK
	ScheduleEntryID uuid.UUID `json:"schedule_entry_id" gorm:"type:uuid;primaryKey;column:schedule_entry_id;default:gen_random_uuid()"`

	// Tenant / scope
	ScheduleEntriesSchoolID uuid.UUID `json:"schedule_entries_school_id" gorm:"type:uuid;not null;column:schedule_entries_school_id;index"`

	// Pemilik: tepat satu offering, satu entry per offering
	ScheduleEntriesOfferingID uuid.UUID `json:"schedule_entries_offering_id" gorm:"type:uuid;not null;uniqueIndex;column:schedule_entries_offering_id"`
	ScheduleEntriesSectionID  uuid.UUID `json:"schedule_entries_section_id" gorm:"type:uuid;not null;column:schedule_entries_section_id;index"`

	// Encoded parallel lists ("/"-joined)
	ScheduleEntriesDays       string `json:"schedule_entries_days" gorm:"type:text;not null;column:schedule_entries_days"`
	ScheduleEntriesTimeRanges string `json:"schedule_entries_time_ranges" gorm:"type:text;not null;column:schedule_entries_time_ranges"`
	ScheduleEntriesRooms      string `json:"schedule_entries_rooms" gorm:"type:text;not null;column:schedule_entries_rooms"`

	// Timestamps
	ScheduleEntriesCreatedAt time.Time `json:"schedule_entries_created_at" gorm:"column:schedule_entries_created_at;not null;autoCreateTime"`
	ScheduleEntriesUpdatedAt time.Time `json:"schedule_entries_updated_at" gorm:"column:schedule_entries_updated_at;not null;autoUpdateTime"`
}

func (ScheduleEntryModel) TableName() string { return "class_schedule_entries" }
