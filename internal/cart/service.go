// Package cart is the in-memory marketplace: products that can be
// moved in and out of the cart, plus counselling appointment booking.
package cart

import (
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"

	"myple/internal/catalog"
	"myple/internal/common"
)

type Product struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Seller    string `json:"seller"`
	Condition string `json:"condition"`
	Category  string `json:"category"`
	InCart    bool   `json:"in_cart"`
}

type Service struct {
	products []Product
	now      func() time.Time
}

func NewService(specs []catalog.ProductSpec) *Service {
	s := &Service{now: time.Now}
	for _, p := range specs {
		s.products = append(s.products, Product{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Seller:    p.Seller,
			Condition: p.Condition,
			Category:  p.Category,
			InCart:    p.InCart,
		})
	}
	return s
}

func (s *Service) Products() []Product {
	return append([]Product(nil), s.products...)
}

// Search filters products by name, case-insensitive.
func (s *Service) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

// ToggleCart flips a product's cart flag; unknown ids are ignored.
func (s *Service) ToggleCart(productID int) {
	for i, p := range s.products {
		if p.ID == productID {
			s.products[i].InCart = !p.InCart
			return
		}
	}
}

// CartItems returns the products currently in the cart, preserving
// listing order.
func (s *Service) CartItems() []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.InCart {
			out = append(out, p)
		}
	}
	return out
}

// Total sums the prices of the cart items.
func (s *Service) Total() int {
	total := 0
	for _, p := range s.products {
		if p.InCart {
			total += p.Price
		}
	}
	return total
}

type AppointmentForm struct {
	Name            string
	DOB             string
	StudentNo       string
	Major           string
	AreasOfConcern  []string
	MeetingType     string // "online" or "physical"
	AdditionalNotes string
}

type Appointment struct {
	ID        string          `json:"id"`
	Form      AppointmentForm `json:"form"`
	CreatedAt string          `json:"created_at"`
}

// BookAppointment validates the counselling form and records the
// appointment. Every field except the notes is required and at least
// one area of concern must be picked.
func (s *Service) BookAppointment(form AppointmentForm) (Appointment, error) {
	if strings.TrimSpace(form.Name) == "" {
		return Appointment{}, common.InvalidArgumentError(nil, "name is required")
	}
	if strings.TrimSpace(form.DOB) == "" {
		return Appointment{}, common.InvalidArgumentError(nil, "date of birth is required")
	}
	if strings.TrimSpace(form.StudentNo) == "" {
		return Appointment{}, common.InvalidArgumentError(nil, "student number is required")
	}
	if strings.TrimSpace(form.Major) == "" {
		return Appointment{}, common.InvalidArgumentError(nil, "major is required")
	}
	if len(form.AreasOfConcern) == 0 {
		return Appointment{}, common.InvalidArgumentError(nil, "pick at least one area of concern")
	}
	if form.MeetingType != "online" && form.MeetingType != "physical" {
		return Appointment{}, common.InvalidArgumentError(nil, "meeting type must be online or physical")
	}
	return Appointment{
		ID:        uuid.NewV4().String(),
		Form:      form,
		CreatedAt: s.now().Format("02.01.2006 15:04"),
	}, nil
}
