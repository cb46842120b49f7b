// file: internals/features/school/academics/class_offerings/service/schedule_encoding.go
package service

import (
	"strings"

	m "atletaku_backend/internals/features/school/academics/class_offerings/model"
)

/* =======================================================
   Encoding jadwal: tiga list paralel → tiga string "/"-joined.

   days[i] ↔ time_ranges[i] ↔ rooms[i]. Decode dilakukan per kolom
   secara independen; panjang tidak divalidasi sama — posisi yang
   hilang diperlakukan absen.
   ======================================================= */

const fieldDelimiter = "/"

// EncodeField — join token dengan "/" (token di-trim dulu).
func EncodeField(tokens []string) string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, strings.TrimSpace(t))
	}
	return strings.Join(out, fieldDelimiter)
}

// DecodeField — split "/" per kolom. String kosong → slice kosong.
// Index hasil adalah posisi jadwal.
func DecodeField(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, fieldDelimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// TokenSet — dekode untuk uji keanggotaan token: pecah pada "/" DAN ",",
// trim, buang yang kosong. Pembandingan SELALU pada token hasil dekode,
// bukan substring pada string mentah ("10" tidak boleh match di "110").
func TokenSet(s string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == ','
	}) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsToken(tokens []string, tok string) bool {
	for _, t := range tokens {
		if t == tok {
			return true
		}
	}
	return false
}

// NormalizeRoomsField — trim; kalau case-insensitive sama dengan "online",
// seluruh kolom rooms diganti sentinel ONLINE (jadwal multi-ruang ikut
// kolaps — perilaku data lama dipertahankan).
func NormalizeRoomsField(rooms string) string {
	rooms = strings.TrimSpace(rooms)
	if strings.EqualFold(rooms, "online") {
		return m.RoomOnline
	}
	return rooms
}

// IsOnline — kolom rooms yang ternormalisasi ONLINE bebas dari cek bentrok.
func IsOnline(rooms string) bool {
	return NormalizeRoomsField(rooms) == m.RoomOnline
}
