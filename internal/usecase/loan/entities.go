package loan

// ApplyInput carries raw form text; parsing happens in Apply.
type ApplyInput struct {
	MemberID     string `json:"member_id" form:"member_id" validate:"required"`
	Amount       string `json:"amount" form:"amount" validate:"required"`
	InterestRate string `json:"interest_rate" form:"interest_rate" validate:"required"`
}

type LoanDTO struct {
	ID           uint64  `json:"id"`
	MemberID     uint64  `json:"member_id"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	Status       string  `json:"status"`
}
