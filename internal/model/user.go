package model

// swagger:model User
type User struct {
	BaseModel
	Nickname string `gorm:"size:20;uniqueIndex;not null" json:"nickname"`
	Password string `gorm:"size:128;not null" json:"-"`
	Gender   string `gorm:"size:10" json:"gender"`
	City     string `gorm:"size:10" json:"city"`
	Bio      string `gorm:"size:256" json:"bio"`
}

func (User) TableName() string {
	return "users"
}
