package dto

// UpdateProfileRequest carries the FIRE parameters to change. Rates are
// percentages and money values decimal strings.
type UpdateProfileRequest struct {
	SwrRate         *string `json:"swr_rate,omitempty" validate:"omitempty,money"`
	CurrentAge      *int    `json:"current_age,omitempty" validate:"omitempty,min=0,max=120"`
	RetirementAge   *int    `json:"retirement_age,omitempty" validate:"omitempty,min=0,max=120"`
	ExpectedReturn  *string `json:"expected_return,omitempty" validate:"omitempty,money"`
	MonthlyExpenses *string `json:"monthly_expenses,omitempty" validate:"omitempty,money"`
	AnnualExpenses  *string `json:"annual_expenses,omitempty" validate:"omitempty,money"`
	PartTimeIncome  *string `json:"part_time_income,omitempty" validate:"omitempty,money"`
}
