package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table         string
	ID            string
	Email         string
	Password      string
	Role          string
	DisplayName   string
	AvatarURL     string
	Company       string
	Phone         string
	PreferredLang string
	Theme         string
	IsVerified    string
	IsActive      string
	LastLoginAt   string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:         "users.account",
	ID:            "id",
	Email:         "email",
	Password:      "passwordhash",
	Role:          "role",
	DisplayName:   "displayname",
	AvatarURL:     "avatarurl",
	Company:       "company",
	Phone:         "phone",
	PreferredLang: "preferredlang",
	Theme:         "theme",
	IsVerified:    "isverified",
	IsActive:      "isactive",
	LastLoginAt:   "lastloginat",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
	DeletedAt:     "deletedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.Role, t.DisplayName, t.AvatarURL,
		t.Company, t.Phone, t.PreferredLang, t.Theme, t.IsVerified,
		t.IsActive, t.LastLoginAt, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
