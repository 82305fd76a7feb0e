package models

// Common categories offered by clients and used for demo data.
// Categories are free text; these are not enforced.
const (
	CategoryHousing       = "Housing"
	CategoryGroceries     = "Groceries"
	CategoryDining        = "Dining"
	CategoryTransport     = "Transport"
	CategoryUtilities     = "Utilities"
	CategoryHealth        = "Health"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryTravel        = "Travel"
	CategorySalary        = "Salary"
	CategoryFreelance     = "Freelance"
	CategoryInvestments   = "Investments"
)

// ExpenseCategories returns the common expense categories
func ExpenseCategories() []string {
	return []string{
		CategoryHousing,
		CategoryGroceries,
		CategoryDining,
		CategoryTransport,
		CategoryUtilities,
		CategoryHealth,
		CategoryEntertainment,
		CategoryShopping,
		CategoryTravel,
	}
}

// IncomeCategories returns the common income categories
func IncomeCategories() []string {
	return []string{
		CategorySalary,
		CategoryFreelance,
		CategoryInvestments,
	}
}

// IsCommonCategory checks if a category is one of the predefined ones
func IsCommonCategory(category string) bool {
	for _, c := range append(ExpenseCategories(), IncomeCategories()...) {
		if category == c {
			return true
		}
	}
	return false
}
