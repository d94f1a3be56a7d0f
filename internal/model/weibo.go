package model

// Weibo 微博正文，创建后不再修改
type Weibo struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func (Weibo) TableName() string {
	return "weibos"
}
