package member

type RegisterInput struct {
	Name     string `json:"name" form:"name" validate:"required"`
	IDNumber string `json:"id_number" form:"id_number" validate:"required"`
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Email    string `json:"email" form:"email"`
}

type MemberDTO struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	IDNumber string  `json:"id_number"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
}
