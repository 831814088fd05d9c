package memory

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
)

// Dataset datos base del backend en memoria, con la misma forma que las tablas de PostgreSQL.
type Dataset struct {
	Customers []entity.Customer
	Invoices  []entity.Invoice
	Revenue   []entity.Revenue
	Users     []entity.User
}

// Usuario de demostración del dashboard.
const (
	DemoUserEmail    = "user@nextmail.com"
	DemoUserPassword = "123456"
)

var demoUsers = sync.OnceValues(func() ([]entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo user: %w", err)
	}
	return []entity.User{{
		ID:           "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:         "User",
		Email:        DemoUserEmail,
		PasswordHash: string(hash),
	}}, nil
})

// Fixture devuelve el dataset de demostración (6 clientes, 13 facturas, 12 meses de ingresos).
func Fixture() (Dataset, error) {
	users, err := demoUsers()
	if err != nil {
		return Dataset{}, err
	}

	customers := []entity.Customer{
		{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}

	invoices := []entity.Invoice{
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000001", CustomerID: customers[0].ID, Amount: 15795, Status: "pending", Date: day("2022-12-06")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000002", CustomerID: customers[1].ID, Amount: 20348, Status: "pending", Date: day("2022-11-14")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000003", CustomerID: customers[4].ID, Amount: 3040, Status: "paid", Date: day("2022-10-29")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000004", CustomerID: customers[3].ID, Amount: 44800, Status: "paid", Date: day("2023-09-10")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000005", CustomerID: customers[5].ID, Amount: 34577, Status: "pending", Date: day("2023-08-05")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000006", CustomerID: customers[2].ID, Amount: 54246, Status: "pending", Date: day("2023-07-16")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000007", CustomerID: customers[0].ID, Amount: 666, Status: "pending", Date: day("2023-06-27")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000008", CustomerID: customers[3].ID, Amount: 32545, Status: "paid", Date: day("2023-06-09")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000009", CustomerID: customers[4].ID, Amount: 1250, Status: "paid", Date: day("2023-06-17")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000010", CustomerID: customers[5].ID, Amount: 8546, Status: "paid", Date: day("2023-06-07")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000011", CustomerID: customers[1].ID, Amount: 500, Status: "paid", Date: day("2023-08-19")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000012", CustomerID: customers[5].ID, Amount: 8945, Status: "paid", Date: day("2023-06-03")},
		{ID: "2f6b5a9e-0c1d-4e8a-9b3f-000000000013", CustomerID: customers[2].ID, Amount: 1000, Status: "paid", Date: day("2022-06-05")},
	}

	revenue := []entity.Revenue{
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

	return Dataset{Customers: customers, Invoices: invoices, Revenue: revenue, Users: users}, nil
}

// day parsea una fecha literal del fixture; un literal inválido es un error de programación.
func day(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("fixture: fecha inválida %q: %v", s, err))
	}
	return t
}
