// file: internals/features/school/academics/class_offerings/service/schedule_encoding_test.go
package service

import (
	"reflect"
	"testing"
)

func TestEncodeField(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"empty", nil, ""},
		{"single", []string{"Monday"}, "Monday"},
		{"multiple", []string{"Monday", "Wednesday"}, "Monday/Wednesday"},
		{"trims tokens", []string{" Monday ", "Wednesday "}, "Monday/Wednesday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeField(tt.tokens); got != tt.want {
				t.Errorf("EncodeField(%v) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestDecodeField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "Monday", []string{"Monday"}},
		{"multiple", "Monday/Wednesday", []string{"Monday", "Wednesday"}},
		{"trims parts", " Monday / Wednesday ", []string{"Monday", "Wednesday"}},
		{"keeps empty positions", "Monday//Friday", []string{"Monday", "", "Friday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeField(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeField(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenSet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"slash delimited", "Monday/Wednesday", []string{"Monday", "Wednesday"}},
		{"comma delimited", "Monday,Tuesday", []string{"Monday", "Tuesday"}},
		{"mixed delimiters", "Monday,Tuesday/Wednesday", []string{"Monday", "Tuesday", "Wednesday"}},
		{"drops empties and trims", "Monday, /Wednesday/", []string{"Monday", "Wednesday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenSet(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenSet(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Pembandingan harus per token: "R1" bukan anggota dari "R110".
func TestContainsTokenNoSubstringMatch(t *testing.T) {
	set := TokenSet("R110/R2")
	if containsToken(set, "R1") {
		t.Error("containsToken matched R1 against R110")
	}
	if containsToken(set, "10:00") {
		t.Error("containsToken matched 10:00 against R110")
	}
	if !containsToken(set, "R110") {
		t.Error("containsToken missed exact token R110")
	}
}

func TestNormalizeRoomsField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase online", "online", "ONLINE"},
		{"mixed case online", "OnLiNe", "ONLINE"},
		{"online with spaces", "  online  ", "ONLINE"},
		{"physical room untouched", "Lapangan A", "Lapangan A"},
		{"online as part of list untouched", "R1/online", "R1/online"},
		{"trims physical rooms", "  R1/R2 ", "R1/R2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRoomsField(tt.in); got != tt.want {
				t.Errorf("NormalizeRoomsField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsOnline(t *testing.T) {
	if !IsOnline("ONLINE") {
		t.Error("IsOnline(ONLINE) = false")
	}
	if !IsOnline("online") {
		t.Error("IsOnline(online) = false")
	}
	if IsOnline("R1") {
		t.Error("IsOnline(R1) = true")
	}
	if IsOnline("R1/ONLINE") {
		t.Error("IsOnline(R1/ONLINE) = true, kolom campuran bukan online")
	}
}
