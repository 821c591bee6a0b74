package loan

import (
	"sacco-admin/internal/domain/member"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusDisbursed Status = "Disbursed"
)

type Loan struct {
	ID           uint64         `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	MemberID     uint64         `gorm:"column:member_id;not null;index:idx_loans_member" json:"member_id"`
	Amount       float64        `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`
	InterestRate float64        `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	Status       Status         `gorm:"column:status;size:50;default:'Pending'" json:"status"`
	Member       *member.Member `gorm:"foreignKey:MemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Summary is the loan count and principal total across every status.
type Summary struct {
	Count int64   `gorm:"column:count" json:"count"`
	Total float64 `gorm:"column:total" json:"total"`
}
