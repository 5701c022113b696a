package models

// AccountSource tells which table an account was resolved from.
type AccountSource int

const (
	// SourceStaff is the general users table.
	SourceStaff AccountSource = iota + 1
	// SourceSuperAdmin is the separate super_admin table.
	SourceSuperAdmin
)

func (s AccountSource) String() string {
	switch s {
	case SourceStaff:
		return "users"
	case SourceSuperAdmin:
		return "super_admin"
	default:
		return "unknown"
	}
}

// Account captures the fields login needs from either account table.
type Account struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	WhatsApp     string        `json:"whatsapp"`
	PasswordHash string        `json:"-"`
	RoleName     string        `json:"role_name"`
	BranchID     *int64        `json:"branch_id"`
	BranchName   *string       `json:"branch_name"`
	Jabatan      *string       `json:"jabatan"`
	Source       AccountSource `json:"-"`
}

// Principal is the authenticated identity carried in the session cookie.
type Principal struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	WhatsApp     string  `json:"whatsapp"`
	RoleName     string  `json:"role_name"`
	BranchID     *int64  `json:"branch_id"`
	BranchName   *string `json:"branch_name"`
	Jabatan      *string `json:"jabatan"`
	IsSuperAdmin bool    `json:"isSuperAdmin"`
}

// PrincipalFor builds the session identity for a verified account. Elevated
// accounts always carry RoleSuperAdmin, whatever their stored role says.
func PrincipalFor(acc Account, superAdmin bool) Principal {
	role := acc.RoleName
	if superAdmin {
		role = RoleSuperAdmin
	}
	return Principal{
		ID:           acc.ID,
		Name:         acc.Name,
		WhatsApp:     acc.WhatsApp,
		RoleName:     role,
		BranchID:     acc.BranchID,
		BranchName:   acc.BranchName,
		Jabatan:      acc.Jabatan,
		IsSuperAdmin: superAdmin,
	}
}
