package model

type Product struct {
	ID    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`

	Orders []Order `gorm:"many2many:Order_Product" json:"-"`
}

func (Product) TableName() string {
	return "Products"
}
