package httptransport

import (
	"time"

	domcart "github.com/farmchain/marketplace/internal/domain/cart"
	domcatalog "github.com/farmchain/marketplace/internal/domain/catalog"
	"github.com/farmchain/marketplace/internal/pkg/money"
)

type productPayload struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	PriceETH      string  `json:"priceETH"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	Farmer        string  `json:"farmer"`
	FarmerAddress string  `json:"farmerAddress"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	Verified      bool    `json:"verified"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

func toProductPayload(p *domcatalog.Product) productPayload {
	payload := productPayload{
		ID:            p.ID,
		Name:          p.Name,
		Price:         money.FormatINR(p.Price),
		PriceETH:      money.FormatETH(p.PriceETH),
		Category:      p.Category,
		Image:         p.Image,
		Farmer:        p.FarmerName,
		FarmerAddress: p.FarmerAddress,
		Location:      p.Location,
		Description:   p.Description,
		Quantity:      p.Quantity,
		Unit:          p.Unit,
		Verified:      p.Verified,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
	}
	if !p.CreatedAt.IsZero() {
		payload.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return payload
}

type farmerPayload struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Location      string   `json:"location"`
	Image         string   `json:"image"`
	Specialties   []string `json:"specialties"`
	Experience    string   `json:"experience"`
	Rating        float64  `json:"rating"`
	TotalProducts int      `json:"totalProducts"`
	Verified      bool     `json:"verified"`
	Bio           string   `json:"bio"`
	FarmSize      float64  `json:"farmSize,omitempty"`
	JoinDate      string   `json:"joinDate,omitempty"`
}

func toFarmerPayload(f *domcatalog.Farmer) farmerPayload {
	payload := farmerPayload{
		ID:            f.ID,
		Name:          f.Name,
		Address:       f.Address,
		Location:      f.Location,
		Image:         f.Image,
		Specialties:   f.Specialties,
		Experience:    f.Experience,
		Rating:        f.Rating,
		TotalProducts: f.TotalProducts,
		Verified:      f.Verified,
		Bio:           f.Bio,
		FarmSize:      f.FarmSize,
	}
	if !f.JoinedAt.IsZero() {
		payload.JoinDate = f.JoinedAt.Format(time.RFC3339)
	}
	return payload
}

type cartItemPayload struct {
	ProductID int64          `json:"productId"`
	Quantity  int            `json:"quantity"`
	Product   productPayload `json:"product"`
}

func toCartPayload(items []domcart.Item) []cartItemPayload {
	payload := make([]cartItemPayload, 0, len(items))
	for i := range items {
		payload = append(payload, cartItemPayload{
			ProductID: items[i].ProductID,
			Quantity:  items[i].Quantity,
			Product:   toProductPayload(&items[i].Product),
		})
	}
	return payload
}
