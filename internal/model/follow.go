package model

import "time"

// Follow 关注表。(user_id, follow_id) 联合主键，同 Like 的翻转语义：
// 取消关注置 status=false，重新关注改回 true。
type Follow struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`   // 关注者
	FollowID  uint      `gorm:"primaryKey;autoIncrement:false" json:"followId"` // 被关注者
	Status    bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt time.Time `json:"createdAt"` // 首次关注的时间
}

func (Follow) TableName() string {
	return "follows"
}
