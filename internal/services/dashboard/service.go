package dashboard

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ItemsPerPage is the fixed page size of the invoice listing.
const ItemsPerPage = 6

// InvoiceListingView is the cache key the mutation side invalidates after a
// successful write.
const InvoiceListingView = "/dashboard/invoices"

type Service struct {
	customers *repository.CustomerRepository
	invoices  *repository.InvoiceRepository
	revenue   *repository.RevenueRepository

	// Cached pages of the invoice listing: "query|page" -> []repository.InvoiceRow
	listingCache sync.Map
}

func NewService(
	customers *repository.CustomerRepository,
	invoices *repository.InvoiceRepository,
	revenue *repository.RevenueRepository,
) *Service {
	return &Service{
		customers: customers,
		invoices:  invoices,
		revenue:   revenue,
	}
}

// LatestInvoice is a recent invoice joined with its customer, amount already
// formatted for display.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   string    `json:"amount"`
}

// CardData carries the dashboard's top-line counts and sums.
type CardData struct {
	NumberOfCustomers    int64  `json:"number_of_customers"`
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// InvoiceForm is the editable view of one invoice, amount in dollars.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// CustomerTableRow is one row of the customers table with formatted sums.
type CustomerTableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

func (s *Service) Revenue() ([]models.Revenue, error) {
	rows, err := s.revenue.All()
	if err != nil {
		log.Println("database error fetching revenue:", err)
		return nil, errors.New("Failed to fetch revenue.")
	}
	return rows, nil
}

func (s *Service) LatestInvoices() ([]LatestInvoice, error) {
	rows, err := s.invoices.Latest(5)
	if err != nil {
		log.Println("database error fetching latest invoices:", err)
		return nil, errors.New("Failed to fetch the latest invoices.")
	}

	latest := make([]LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   money.FormatUSD(row.Amount),
		})
	}
	return latest, nil
}

// CardData runs its three aggregates concurrently; they are read-only and
// independent of each other.
func (s *Service) CardData() (CardData, error) {
	var data CardData
	var paidSum, pendingSum int64

	g := new(errgroup.Group)
	g.Go(func() error {
		n, err := s.customers.Count()
		data.NumberOfCustomers = n
		return err
	})
	g.Go(func() error {
		n, err := s.invoices.Count()
		data.NumberOfInvoices = n
		return err
	})
	g.Go(func() error {
		var err error
		if paidSum, err = s.invoices.SumAmountByStatus(models.StatusPaid); err != nil {
			return err
		}
		pendingSum, err = s.invoices.SumAmountByStatus(models.StatusPending)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Println("database error fetching card data:", err)
		return CardData{}, errors.New("Failed to fetch card data.")
	}

	data.TotalPaidInvoices = money.FormatUSD(paidSum)
	data.TotalPendingInvoices = money.FormatUSD(pendingSum)
	return data, nil
}

// FilteredInvoices returns one page of the invoice listing. Pages are served
// from the in-process cache until a mutation invalidates it.
func (s *Service) FilteredInvoices(query string, page int) ([]repository.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	key := fmt.Sprintf("%s|%d", query, page)
	if cached, ok := s.listingCache.Load(key); ok {
		return copyRows(cached.([]repository.InvoiceRow)), nil
	}

	offset := (page - 1) * ItemsPerPage
	rows, err := s.invoices.Filtered(query, ItemsPerPage, offset)
	if err != nil {
		log.Println("database error fetching invoices:", err)
		return nil, errors.New("Failed to fetch invoices.")
	}

	s.listingCache.Store(key, rows)
	return copyRows(rows), nil
}

// copyRows keeps callers from mutating the cached page in place.
func copyRows(rows []repository.InvoiceRow) []repository.InvoiceRow {
	out := make([]repository.InvoiceRow, len(rows))
	copy(out, rows)
	return out
}

// InvoicesPages returns the page count for the same filter, ceil(count / 6).
func (s *Service) InvoicesPages(query string) (int, error) {
	count, err := s.invoices.CountFiltered(query)
	if err != nil {
		log.Println("database error counting invoices:", err)
		return 0, errors.New("Failed to fetch total number of invoices.")
	}
	return int(math.Ceil(float64(count) / float64(ItemsPerPage))), nil
}

// InvoiceByID returns the editable view of one invoice, or nil when no row
// matches. Absence is a normal outcome, not an error.
func (s *Service) InvoiceByID(id uuid.UUID) (*InvoiceForm, error) {
	invoice, err := s.invoices.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Println("database error fetching invoice:", err)
		return nil, errors.New("Failed to fetch invoice.")
	}
	return &InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     money.ToDollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (s *Service) Customers() ([]repository.CustomerField, error) {
	fields, err := s.customers.All()
	if err != nil {
		log.Println("database error fetching customers:", err)
		return nil, errors.New("Failed to fetch all customers.")
	}
	return fields, nil
}

func (s *Service) FilteredCustomers(query string) ([]CustomerTableRow, error) {
	rows, err := s.customers.FilteredWithTotals(query)
	if err != nil {
		log.Println("database error fetching customer table:", err)
		return nil, errors.New("Failed to fetch customer table.")
	}

	table := make([]CustomerTableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, CustomerTableRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  money.FormatUSD(row.TotalPending),
			TotalPaid:     money.FormatUSD(row.TotalPaid),
		})
	}
	return table, nil
}

// Invalidate drops every cached page of the given view so the next read hits
// the database. Only the invoice listing is cached today.
func (s *Service) Invalidate(viewKey string) {
	if viewKey != InvoiceListingView {
		return
	}
	s.listingCache.Range(func(key, _ interface{}) bool {
		s.listingCache.Delete(key)
		return true
	})
}
