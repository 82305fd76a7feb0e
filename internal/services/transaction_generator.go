package services

import (
	"time"

	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	faker     *gofakeit.Faker
	merchants map[string][]string
}

const (
	salaryDay          = 27
	rentDay            = 1
	maxDailyPurchases  = 2
	uncategorizedOdds  = 15
	freelanceOdds      = 30
	businessHoursStart = 7
	businessHoursEnd   = 22
)

// NewTransactionGenerator creates a generator with a random seed
func NewTransactionGenerator() TransactionGeneratorInterface {
	return NewSeededTransactionGenerator(0)
}

// NewSeededTransactionGenerator creates a generator whose output is reproducible for a non-zero seed
func NewSeededTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker:     gofakeit.New(seed),
		merchants: initializeMerchantPool(),
	}
}

func initializeMerchantPool() map[string][]string {
	return map[string][]string{
		models.CategoryGroceries:     {"Esselunga", "Coop", "Carrefour", "Lidl", "Conad", "Aldi"},
		models.CategoryDining:        {"Trattoria da Mario", "Starbucks", "Pizzeria Napoli", "Sushi Ko", "Bar Centrale"},
		models.CategoryTransport:     {"Trenitalia", "ATM Milano", "Eni Station", "Uber", "Q8"},
		models.CategoryEntertainment: {"Netflix", "Spotify", "UCI Cinemas", "Steam"},
		models.CategoryShopping:      {"Amazon", "IKEA", "Decathlon", "Zara", "MediaWorld"},
		models.CategoryHealth:        {"Farmacia Comunale", "Dentista Rossi", "Virgin Active"},
		models.CategoryTravel:        {"Ryanair", "Booking.com", "Italo"},
	}
}

// GenerateMonth generates salary, bills and everyday purchases for the given period
func (g *transactionGenerator) GenerateMonth(userID uuid.UUID, month finance.Period) []models.Transaction {
	transactions := g.GenerateSalaryTransactions(userID, month)
	transactions = append(transactions, g.GenerateBillTransactions(userID, month)...)
	transactions = append(transactions, g.GenerateDailyPurchases(userID, month)...)
	return transactions
}

// GenerateAmount generates a realistic amount based on category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.getAmountRange(category)
	return decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2)
}

func (g *transactionGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryHousing:       {650.00, 1100.00},
		models.CategoryGroceries:     {12.00, 140.00},
		models.CategoryDining:        {6.00, 75.00},
		models.CategoryTransport:     {2.00, 70.00},
		models.CategoryUtilities:     {35.00, 160.00},
		models.CategoryHealth:        {10.00, 180.00},
		models.CategoryEntertainment: {8.00, 45.00},
		models.CategoryShopping:      {15.00, 250.00},
		models.CategoryTravel:        {40.00, 600.00},
		models.CategorySalary:        {2200.00, 4200.00},
		models.CategoryFreelance:     {150.00, 1200.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 5.00, 60.00
}

// GenerateTimestamp generates a random timestamp within the date range during business hours
func (g *transactionGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	if !endDate.After(startDate) {
		return startDate
	}
	day := g.faker.DateRange(startDate, endDate)

	hour := g.faker.IntRange(businessHoursStart, businessHoursEnd-1)
	minute := g.faker.IntRange(0, 59)

	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	if ts.Before(startDate) {
		return startDate
	}
	if ts.After(endDate) {
		return endDate
	}
	return ts
}

// GenerateSalaryTransactions generates the monthly salary and the occasional freelance payment
func (g *transactionGenerator) GenerateSalaryTransactions(userID uuid.UUID, month finance.Period) []models.Transaction {
	transactions := make([]models.Transaction, 0, 2)

	payday := dayOfMonth(month.Start, salaryDay)
	if month.Contains(payday) {
		transactions = append(transactions, g.newTransaction(userID, models.TransactionTypeIncome,
			models.CategorySalary, "Salary - "+g.employer(userID), payday))
	}

	if g.faker.IntRange(1, 100) <= freelanceOdds {
		transactions = append(transactions, g.newTransaction(userID, models.TransactionTypeIncome,
			models.CategoryFreelance, "Invoice paid by "+g.faker.Company(), g.GenerateTimestamp(month.Start, month.End)))
	}

	return transactions
}

// GenerateBillTransactions generates rent and utility bills for the month
func (g *transactionGenerator) GenerateBillTransactions(userID uuid.UUID, month finance.Period) []models.Transaction {
	transactions := make([]models.Transaction, 0, 3)

	rent := dayOfMonth(month.Start, rentDay)
	if month.Contains(rent) {
		transactions = append(transactions, g.newTransaction(userID, models.TransactionTypeExpense,
			models.CategoryHousing, "Rent", rent))
	}

	for _, bill := range []string{"Electricity bill", "Internet bill"} {
		billDate := dayOfMonth(month.Start, g.faker.IntRange(5, 28))
		if !month.Contains(billDate) {
			continue
		}
		transactions = append(transactions, g.newTransaction(userID, models.TransactionTypeExpense,
			models.CategoryUtilities, bill, billDate))
	}

	return transactions
}

// GenerateDailyPurchases generates everyday expenses for each day of the period
func (g *transactionGenerator) GenerateDailyPurchases(userID uuid.UUID, month finance.Period) []models.Transaction {
	transactions := make([]models.Transaction, 0)
	categories := []string{
		models.CategoryGroceries,
		models.CategoryDining,
		models.CategoryTransport,
		models.CategoryEntertainment,
		models.CategoryShopping,
		models.CategoryHealth,
		models.CategoryTravel,
	}

	for day := month.Start; !day.After(month.End); day = day.AddDate(0, 0, 1) {
		purchases := g.faker.IntRange(0, maxDailyPurchases)
		dayEnd := day.Add(24*time.Hour - time.Second)
		if dayEnd.After(month.End) {
			dayEnd = month.End
		}

		for i := 0; i < purchases; i++ {
			category := g.faker.RandomString(categories)
			merchant := g.faker.RandomString(g.merchants[category])
			txn := g.newTransaction(userID, models.TransactionTypeExpense, category,
				"Purchase at "+merchant, g.GenerateTimestamp(day, dayEnd))

			if g.faker.IntRange(1, 100) <= uncategorizedOdds {
				txn.Category = nil
			}
			transactions = append(transactions, txn)
		}
	}

	return transactions
}

func (g *transactionGenerator) newTransaction(userID uuid.UUID, txnType, category, description string, date time.Time) models.Transaction {
	cat := category
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      g.GenerateAmount(category),
		Category:    &cat,
		Type:        txnType,
		Date:        date,
		Notes:       "demo data",
	}
}

// employer picks a stable company name per user so salaries look consistent across months
func (g *transactionGenerator) employer(userID uuid.UUID) string {
	return gofakeit.New(uint64(userID.ID()) + 1).Company()
}

// dayOfMonth returns the given day in ref's month, clamped to the month's last day
func dayOfMonth(ref time.Time, day int) time.Time {
	last := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	if day > last {
		day = last
	}
	return time.Date(ref.Year(), ref.Month(), day, 12, 0, 0, 0, ref.Location())
}
