package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mystore/storefront/internal/domain"
)

// Wire shapes of the store API. Prices travel as JSON numbers and are
// converted to decimals at this edge.

type productDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

func (d productDTO) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Image:       d.Image,
	}
}

func toProducts(dtos []productDTO) []domain.Product {
	products := make([]domain.Product, len(dtos))
	for i, d := range dtos {
		products[i] = d.toDomain()
	}
	return products
}

type userDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type credentialsDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

func (d credentialsDTO) toDomain() domain.Credentials {
	return domain.Credentials{
		Token: d.Token,
		User:  domain.User{ID: d.User.ID, Name: d.User.Name, Email: d.User.Email},
	}
}

type productRefDTO struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type orderItemDTO struct {
	Product  productRefDTO `json:"product"`
	Quantity int           `json:"quantity"`
}

type orderDTO struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []orderItemDTO `json:"items"`
	Total     float64        `json:"total"`
	Status    string         `json:"status,omitempty"`
}

func (d orderDTO) toDomain() domain.Order {
	items := make([]domain.OrderItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = domain.OrderItem{
			Product: domain.Product{
				ID:    it.Product.ID,
				Name:  it.Product.Name,
				Price: decimal.NewFromFloat(it.Product.Price),
			},
			Quantity: it.Quantity,
		}
	}
	return domain.Order{
		ID:        d.ID,
		CreatedAt: d.CreatedAt,
		Items:     items,
		Total:     decimal.NewFromFloat(d.Total),
		Status:    d.Status,
	}
}

type orderDraftDTO struct {
	UserID int64          `json:"userId"`
	Items  []orderItemDTO `json:"items"`
	Total  float64        `json:"total"`
}

func toOrderDraftDTO(draft domain.OrderDraft) orderDraftDTO {
	items := make([]orderItemDTO, len(draft.Items))
	for i, line := range draft.Items {
		items[i] = orderItemDTO{
			Product: productRefDTO{
				ID:    line.ProductID,
				Name:  line.Name,
				Price: line.Price.InexactFloat64(),
			},
			Quantity: line.Quantity,
		}
	}
	return orderDraftDTO{
		UserID: draft.UserID,
		Items:  items,
		Total:  draft.Total.InexactFloat64(),
	}
}
