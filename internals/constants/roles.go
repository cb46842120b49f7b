package constants

// Role names as carried inside the JWT "role" claim.
const (
	RoleOwner   = "owner"   // operator platform (global)
	RoleAdmin   = "admin"   // admin sekolah
	RoleCoach   = "coach"   // pelatih / guru olahraga
	RoleStudent = "student" // siswa / atlet
)

var AllowedRoles = []string{RoleOwner, RoleAdmin, RoleCoach, RoleStudent}
