package model

import "time"

type Order struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	CustomerID int64     `gorm:"index" json:"customer_id"`

	// Order_Product（order_id, product_id の複合PK）経由の多対多
	Products []Product `gorm:"many2many:Order_Product" json:"-"`
}

func (Order) TableName() string {
	return "Orders"
}
