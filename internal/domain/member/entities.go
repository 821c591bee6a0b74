package member

type Member struct {
	ID       uint64  `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name     string  `gorm:"column:name;size:255;not null" json:"name"`
	IDNumber string  `gorm:"column:id_number;size:255;not null;uniqueIndex:ux_members_id_number" json:"id_number"`
	Phone    string  `gorm:"column:phone;size:255;not null" json:"phone"`
	Email    string  `gorm:"column:email;size:255" json:"email"`
	Balance  float64 `gorm:"column:balance;type:decimal(10,2);default:0" json:"balance"`
}

func (Member) TableName() string { return "members" }
