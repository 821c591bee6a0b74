package staff

// Staff exists in the schema only; nothing reads or writes it yet.
type Staff struct {
	ID   uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name string `gorm:"column:name;size:255;not null" json:"name"`
	Role string `gorm:"column:role;size:255;not null" json:"role"`
}

func (Staff) TableName() string { return "staff" }
