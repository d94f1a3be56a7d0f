package model

// Comment 评论。ParentID 非 0 时表示回复某条更早的评论，
// 创建时间严格向前，不会构成引用环。
type Comment struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	WeiboID  uint   `gorm:"index;not null" json:"weiboId"`
	ParentID uint   `gorm:"default:0" json:"parentId"` // 0 = 一级评论
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}
