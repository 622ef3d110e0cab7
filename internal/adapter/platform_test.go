package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
)

func platformTx(id string, daysAgo int, amount float64, txType domain.TransactionType, desc string) domain.Transaction {
	t := manualTx(id, daysAgo, amount, txType, desc, "Sales")
	t.Source = domain.SourcePlatform
	return t
}

func order(id, customerID string, daysAgo int, total float64, items ...domain.LineItem) domain.Order {
	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		CreatedAt:  testNow.AddDate(0, 0, -daysAgo),
		TotalPrice: total,
		LineItems:  items,
	}
}

func TestPlatformAdapter_Revenue(t *testing.T) {
	txs := []domain.Transaction{
		platformTx("t1", 5, 29.99, domain.TypeIncome, "Monthly subscription renewal"),
		platformTx("t2", 12, 29.99, domain.TypeIncome, "Monthly Subscription renewal"),
		platformTx("t3", 20, 150, domain.TypeIncome, "Order #1001"),
	}
	rev := NewPlatformAdapter(txs, nil, testNow).Revenue()
	assert.InDelta(t, 209.98, rev.TotalRevenue, 0.001)
	assert.InDelta(t, 59.98, rev.RecurringRevenue, 0.001, "subscription marker is case-insensitive")
	assert.InDelta(t, 150.0, rev.OneTimeRevenue, 0.001)
	assert.Equal(t, 3, rev.IncomeCount)
}

func TestPlatformAdapter_ExpensesAreRefundsOnly(t *testing.T) {
	txs := []domain.Transaction{
		platformTx("t1", 5, 500, domain.TypeIncome, "Order #1"),
		platformTx("t2", 3, 45, domain.TypeExpense, "Refund order #1"),
	}
	exp := NewPlatformAdapter(txs, nil, testNow).Expenses()
	assert.Equal(t, 45.0, exp.TotalExpenses)
	// Platforms report no operating costs, so both splits stay zero.
	assert.Equal(t, 0.0, exp.OperatingExpenses)
	assert.Equal(t, 0.0, exp.CostOfGoods)
}

func TestPlatformAdapter_CustomersFromOrders(t *testing.T) {
	orders := []domain.Order{
		order("o1", "cust-1", 5, 80),
		order("o2", "cust-1", 40, 80),
		order("o3", "cust-2", 10, 120),
		// Customer with no order in more than 90 days: churned.
		order("o4", "cust-3", 120, 60),
		// No id: not attributable.
		order("o5", "", 5, 10),
	}
	txs := []domain.Transaction{platformTx("t1", 5, 340, domain.TypeIncome, "Orders")}
	cust := NewPlatformAdapter(txs, orders, testNow).Customers()

	assert.Equal(t, 3, cust.TotalCustomers)
	assert.Equal(t, 2, cust.ActiveCustomers)
	assert.Equal(t, 1, cust.NewCustomers, "only cust-2's earliest order is within 30 days")
	assert.InDelta(t, 1.0/3.0, cust.ChurnRate, 0.001, "platform churn counts every known customer")
	assert.InDelta(t, 340.0/3.0, cust.LifetimeValue, 0.01)
}

func TestPlatformAdapter_ProductsFromLineItems(t *testing.T) {
	orders := []domain.Order{
		order("o1", "c1", 5, 70,
			domain.LineItem{Title: "Mug", Price: 15, Quantity: 2},
			domain.LineItem{Title: "Poster", Price: 40, Quantity: 1}),
		order("o2", "c2", 8, 45,
			domain.LineItem{Title: "Mug", Price: 15, Quantity: 3}),
	}
	prods := NewPlatformAdapter(nil, orders, testNow).Products()
	require.Equal(t, 2, prods.TotalProducts)
	assert.Equal(t, "Mug", prods.TopProducts[0].Name)
	assert.Equal(t, 75.0, prods.TopProducts[0].Revenue)
	assert.Equal(t, 5, prods.TopProducts[0].Quantity)
}

func TestPlatformAdapter_AvailabilityNeedsTransactions(t *testing.T) {
	a := NewPlatformAdapter(nil, []domain.Order{order("o1", "c1", 2, 10)}, testNow)
	assert.False(t, a.Available(), "orders alone do not make the source available")
	assert.True(t, NewPlatformAdapter([]domain.Transaction{platformTx("t1", 1, 10, domain.TypeIncome, "x")}, nil, testNow).Available())
}
