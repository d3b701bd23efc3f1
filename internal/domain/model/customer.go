package model

type Customer struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(320)" json:"email"`
	Phone string `gorm:"type:varchar(15)" json:"phone"`

	Orders  []Order          `gorm:"foreignKey:CustomerID" json:"-"`
	Account *CustomerAccount `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Customer) TableName() string {
	return "Customers"
}
