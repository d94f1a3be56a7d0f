package model

import "time"

// Like 点赞表。(weibo_id, user_id) 联合主键，一对用户-微博全程只有一行；
// 取消点赞翻转 status 而不删行，保留首次点赞时间，也避免重复点赞时的主键竞争。
type Like struct {
	WeiboID   uint      `gorm:"primaryKey;autoIncrement:false" json:"weiboId"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	Status    bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
