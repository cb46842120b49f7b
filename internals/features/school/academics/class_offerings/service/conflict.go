// file: internals/features/school/academics/class_offerings/service/conflict.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "atletaku_backend/internals/features/school/academics/class_offerings/model"
)

/* =======================================================
   Deteksi bentrok jadwal.

   Dipanggil sebelum entry jadwal disimpan. Precondition di sisi
   caller: status offering upcoming/ongoing DAN rooms bukan ONLINE;
   selain itu langsung diterima tanpa cek.
   ======================================================= */

type ConflictKind string

const (
	KindRoomConflict ConflictKind = "room_conflict"
	KindTimeConflict ConflictKind = "time_conflict"
)

// ScheduleConflictError — penolakan yang menyebut persis hari/jam/ruang
// penyebabnya, supaya user bisa langsung memperbaiki input.
type ScheduleConflictError struct {
	Kind      ConflictKind `json:"kind"`
	Day       string       `json:"day"`
	TimeRange string       `json:"time_range"`
	Room      string       `json:"room,omitempty"`
}

func (e *ScheduleConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == KindRoomConflict {
		return fmt.Sprintf("Bentrok ruang: %s sudah terpakai pada %s %s", e.Room, e.Day, e.TimeRange)
	}
	return fmt.Sprintf("Bentrok waktu: section sudah punya jadwal pada %s %s", e.Day, e.TimeRange)
}

// CheckInput — kandidat jadwal yang sudah didekode jadi tiga list paralel.
// ExcludeEntryID diisi saat edit supaya entry lama milik offering ini
// tidak dianggap bentrok dengan dirinya sendiri.
type CheckInput struct {
	SchoolID       uuid.UUID
	OfferingID     uuid.UUID
	SectionID      uuid.UUID
	Days           []string
	TimeRanges     []string
	Rooms          []string
	ExcludeEntryID *uuid.UUID
}

// entry lama yang sudah didekode sekali di awal
type decodedEntry struct {
	offeringID uuid.UUID
	sectionID  uuid.UUID
	days       []string
	times      []string
	rooms      []string
}

// CheckScheduleConflict memeriksa kandidat terhadap seluruh entry lain
// dalam tenant yang sama. Entry lama dimuat sekali (satu query), lalu
// dicek per posisi kandidat sesuai urutan days; cek ruang dulu baru cek
// section, kegagalan pertama langsung dikembalikan (posisi sisanya tidak
// dievaluasi). Days kosong → diterima. Tidak ada mutasi di sini.
func CheckScheduleConflict(db *gorm.DB, in CheckInput) error {
	if len(in.Days) == 0 {
		return nil
	}

	var rows []m.ScheduleEntryModel
	q := db.Where("schedule_entries_school_id = ?", in.SchoolID)
	if in.ExcludeEntryID != nil {
		q = q.Where("schedule_entry_id <> ?", *in.ExcludeEntryID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return fmt.Errorf("load schedule entries: %w", err)
	}

	entries := make([]decodedEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, decodedEntry{
			offeringID: r.ScheduleEntriesOfferingID,
			sectionID:  r.ScheduleEntriesSectionID,
			days:       TokenSet(r.ScheduleEntriesDays),
			times:      TokenSet(r.ScheduleEntriesTimeRanges),
			rooms:      TokenSet(r.ScheduleEntriesRooms),
		})
	}

	for i := range in.Days {
		day := in.Days[i]
		timeRange, hasTime := at(in.TimeRanges, i)
		room, hasRoom := at(in.Rooms, i)

		// 1) Cek ruang: ruang yang sama, hari dan jam yang sama, siapapun
		// pemilik offering-nya. Posisi dengan time/room absen tidak bisa
		// bentrok ruang (absen tidak pernah sama dengan token nyata).
		if hasTime && hasRoom {
			for _, e := range entries {
				if containsToken(e.days, day) &&
					containsToken(e.times, timeRange) &&
					containsToken(e.rooms, room) {
					return &ScheduleConflictError{
						Kind:      KindRoomConflict,
						Day:       day,
						TimeRange: timeRange,
						Room:      room,
					}
				}
			}
		}

		// 2) Cek section (cohort): section yang sama tidak boleh punya dua
		// offering berbeda pada hari+jam yang sama — ruang tidak relevan.
		if hasTime {
			for _, e := range entries {
				if e.sectionID == in.SectionID &&
					e.offeringID != in.OfferingID &&
					containsToken(e.days, day) &&
					containsToken(e.times, timeRange) {
					return &ScheduleConflictError{
						Kind:      KindTimeConflict,
						Day:       day,
						TimeRange: timeRange,
					}
				}
			}
		}
	}

	return nil
}

func at(xs []string, i int) (string, bool) {
	if i < 0 || i >= len(xs) {
		return "", false
	}
	return xs[i], true
}
