package models

// User is a staff account. PasswordHash holds a bcrypt hash and is never serialised.
// IsActive is a pointer so an explicit false is stored instead of the default.
type User struct {
	UserID         uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName       string `gorm:"size:25;not null"                        json:"user_name"       validate:"max=25"`
	Email          string `gorm:"size:255;not null;uniqueIndex"           json:"email"           validate:"max=255"`
	PasswordHash   string `gorm:"size:150;not null"                       json:"-"`
	Role           string `gorm:"size:10;not null"                        json:"role"            validate:"max=10"`
	IsActive       *bool  `gorm:"not null;default:true"                   json:"is_active"`
	ConfirmedAdmin bool   `gorm:"not null;default:false"                  json:"confirmed_admin"`

	Invitations    []Invitation    `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	SupplyRequests []SupplyRequest `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (User) TableName() string { return "users" }
