package model

type CustomerAccount struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CustomerID   int64  `gorm:"index" json:"customer_id"`
}

func (CustomerAccount) TableName() string {
	return "Customer_Accounts"
}
