package http

import (
	"net/http"

	"sacco-admin/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// createLoanReq only checks presence; Apply parses the numbers.
type createLoanReq struct {
	MemberID     flexText `json:"member_id" validate:"notblank"`
	Amount       flexText `json:"amount" validate:"notblank"`
	InterestRate flexText `json:"interest_rate" validate:"notblank"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: loan.MsgMissingFields, Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		MemberID:     req.MemberID.String(),
		Amount:       req.Amount.String(),
		InterestRate: req.InterestRate.String(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
