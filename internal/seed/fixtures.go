package seed

import (
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

var users = []models.User{
	{
		ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
		Name:     "Admin",
		Email:    "admin@invoice-dashboard.dev",
		Password: "123456",
	},
}

var customers = []models.Customer{
	{
		ID:       uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"),
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"),
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"),
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"),
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"),
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"),
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

// invoiceFixture keeps the fixture table readable; amounts are cents.
type invoiceFixture struct {
	customer int
	amount   int64
	status   string
	date     string
}

var invoices = []invoiceFixture{
	{0, 15795, models.StatusPending, "2022-12-06"},
	{1, 20348, models.StatusPending, "2022-11-14"},
	{4, 3040, models.StatusPaid, "2022-10-29"},
	{3, 44800, models.StatusPaid, "2023-09-10"},
	{5, 34577, models.StatusPending, "2023-08-05"},
	{2, 54246, models.StatusPending, "2023-07-16"},
	{0, 666, models.StatusPending, "2023-06-27"},
	{3, 32545, models.StatusPaid, "2023-06-09"},
	{4, 1250, models.StatusPaid, "2023-06-17"},
	{5, 8546, models.StatusPaid, "2023-06-07"},
	{1, 500, models.StatusPaid, "2023-08-19"},
	{5, 8945, models.StatusPaid, "2023-06-03"},
	{2, 1000, models.StatusPaid, "2022-06-05"},
}

var revenue = []models.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
