package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/farmchain/marketplace/internal/domain/catalog"
)

type seedFarmer struct {
	name        string
	address     string
	location    string
	image       string
	specialties []string
	experience  string
	rating      float64
	bio         string
}

type seedProduct struct {
	name          string
	price         string
	priceETH      string
	category      string
	image         string
	farmerName    string
	farmerAddress string
	location      string
	description   string
	quantity      int
	unit          string
	rating        float64
	reviews       int
}

var seedFarmers = []seedFarmer{
	{
		name:        "Rajesh Kumar",
		address:     "0x1234...5678",
		location:    "Punjab, India",
		image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop",
		specialties: []string{"Organic Vegetables", "Wheat", "Rice"},
		experience:  "15 years",
		rating:      4.8,
		bio:         "Passionate organic farmer from Punjab, dedicated to sustainable agriculture practices and traditional farming methods.",
	},
	{
		name:        "Priya Sharma",
		address:     "0x2345...6789",
		location:    "Himachal Pradesh, India",
		image:       "https://images.unsplash.com/photo-1544723795-3fb6469f5b39?w=300&h=300&fit=crop",
		specialties: []string{"Fruits", "Berries", "Apple Orchards"},
		experience:  "12 years",
		rating:      4.9,
		bio:         "Hill station farmer specializing in fresh, seasonal fruits and berries grown in the cool climate of Himachal.",
	},
	{
		name:        "Suresh Patel",
		address:     "0x3456...7890",
		location:    "Gujarat, India",
		image:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&fit=crop",
		specialties: []string{"Cotton", "Groundnut", "Vegetables"},
		experience:  "20 years",
		rating:      4.7,
		bio:         "Third-generation farmer from Gujarat committed to organic and sustainable farming methods.",
	},
	{
		name:        "Amarjeet Singh",
		address:     "0x4567...8901",
		location:    "Haryana, India",
		image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop",
		specialties: []string{"Rice", "Basmati", "Grains"},
		experience:  "22 years",
		rating:      4.6,
		bio:         "Grain farmer from Haryana growing aromatic long-grain Basmati rice on family fields.",
	},
	{
		name:        "Lakshmi Devi",
		address:     "0x5678...9012",
		location:    "Uttar Pradesh, India",
		image:       "https://images.unsplash.com/photo-1494790108755-2616c96f8a14?w=300&h=300&fit=crop",
		specialties: []string{"Dairy", "Buffalo Farming", "Milk Products"},
		experience:  "18 years",
		rating:      4.9,
		bio:         "Dairy farmer from UP focused on producing high-quality milk and traditional dairy products.",
	},
	{
		name:        "Ramesh Yadav",
		address:     "0x6789...0123",
		location:    "Maharashtra, India",
		image:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&fit=crop",
		specialties: []string{"Mangoes", "Fruits", "Orchards"},
		experience:  "17 years",
		rating:      4.8,
		bio:         "Orchard farmer from Maharashtra known for sweet Alphonso mangoes.",
	},
	{
		name:        "Meera Patel",
		address:     "0x7890...1234",
		location:    "Kerala, India",
		image:       "https://images.unsplash.com/photo-1544723795-3fb6469f5b39?w=300&h=300&fit=crop",
		specialties: []string{"Spices", "Turmeric", "Organic Spices"},
		experience:  "14 years",
		rating:      4.9,
		bio:         "Spice farmer from Kerala specializing in organic turmeric and traditional spices.",
	},
	{
		name:        "Kiran Singh",
		address:     "0x8901...2345",
		location:    "Rajasthan, India",
		image:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&fit=crop",
		specialties: []string{"Spices", "Chili", "Desert Farming"},
		experience:  "16 years",
		rating:      4.7,
		bio:         "Desert farmer from Rajasthan known for high-quality chili and spice production.",
	},
	{
		name:        "Arjun Sharma",
		address:     "0x9012...3456",
		location:    "Uttar Pradesh, India",
		image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop",
		specialties: []string{"Spices", "Masala Blends"},
		experience:  "13 years",
		rating:      4.8,
		bio:         "Spice blender from UP carrying on a family tradition of garam masala blends.",
	},
}

var seedProducts = []seedProduct{
	{
		name: "Organic Tomatoes", price: "150", priceETH: "0.002", category: "vegetables",
		image:      "https://images.unsplash.com/photo-1592841200221-a6898f307baa?w=400&h=300&fit=crop",
		farmerName: "Rajesh Kumar", farmerAddress: "0x1234...5678", location: "Punjab, India",
		description: "Fresh organic tomatoes grown without pesticides in the fertile fields of Punjab",
		quantity:    50, unit: "kg", rating: 4.8, reviews: 23,
	},
	{
		name: "Fresh Strawberries", price: "300", priceETH: "0.004", category: "fruits",
		image:      "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400&h=300&fit=crop",
		farmerName: "Priya Sharma", farmerAddress: "0x2345...6789", location: "Himachal Pradesh, India",
		description: "Sweet, juicy strawberries picked fresh daily from hill stations",
		quantity:    30, unit: "kg", rating: 4.9, reviews: 45,
	},
	{
		name: "Organic Carrots", price: "80", priceETH: "0.001", category: "vegetables",
		image:      "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=400&h=300&fit=crop",
		farmerName: "Suresh Patel", farmerAddress: "0x3456...7890", location: "Gujarat, India",
		description: "Crisp, sweet organic carrots perfect for any meal, grown in Gujarat's rich soil",
		quantity:    75, unit: "kg", rating: 4.7, reviews: 18,
	},
	{
		name: "Basmati Rice", price: "120", priceETH: "0.0015", category: "grains",
		image:      "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400&h=300&fit=crop",
		farmerName: "Amarjeet Singh", farmerAddress: "0x4567...8901", location: "Haryana, India",
		description: "Premium quality Basmati rice, aromatic and long-grain from Haryana fields",
		quantity:    200, unit: "kg", rating: 4.6, reviews: 12,
	},
	{
		name: "Fresh Buffalo Milk", price: "60", priceETH: "0.0008", category: "dairy",
		image:      "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=400&h=300&fit=crop",
		farmerName: "Lakshmi Devi", farmerAddress: "0x5678...9012", location: "Uttar Pradesh, India",
		description: "Pure, fresh buffalo milk from grass-fed animals in rural UP",
		quantity:    100, unit: "liters", rating: 4.9, reviews: 67,
	},
	{
		name: "Organic Mangoes", price: "200", priceETH: "0.0025", category: "fruits",
		image:      "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400&h=300&fit=crop",
		farmerName: "Ramesh Yadav", farmerAddress: "0x6789...0123", location: "Maharashtra, India",
		description: "Sweet, juicy Alphonso mangoes from the orchards of Maharashtra",
		quantity:    80, unit: "kg", rating: 4.8, reviews: 34,
	},
	{
		name: "Organic Turmeric Powder", price: "180", priceETH: "0.0022", category: "spices",
		image:      "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?w=400&h=300&fit=crop",
		farmerName: "Meera Patel", farmerAddress: "0x7890...1234", location: "Kerala, India",
		description: "Pure organic turmeric powder with high curcumin content, traditionally grown in Kerala",
		quantity:    25, unit: "kg", rating: 4.9, reviews: 28,
	},
	{
		name: "Red Chili Powder", price: "150", priceETH: "0.0018", category: "spices",
		image:      "https://images.unsplash.com/photo-1596040832847-d0085d4f8e87?w=400&h=300&fit=crop",
		farmerName: "Kiran Singh", farmerAddress: "0x8901...2345", location: "Rajasthan, India",
		description: "Authentic red chili powder with perfect heat and flavor from Rajasthan",
		quantity:    40, unit: "kg", rating: 4.7, reviews: 19,
	},
	{
		name: "Garam Masala", price: "250", priceETH: "0.003", category: "spices",
		image:      "https://images.unsplash.com/photo-1596040832847-d0085d4f8e87?w=400&h=300&fit=crop",
		farmerName: "Arjun Sharma", farmerAddress: "0x9012...3456", location: "Uttar Pradesh, India",
		description: "Traditional garam masala blend with authentic spices from UP",
		quantity:    15, unit: "kg", rating: 4.8, reviews: 22,
	},
}

// SeedCatalog loads the demo farmers and products through the repository
// operations, so product counts stay consistent with the actual catalog.
func SeedCatalog(ctx context.Context, repo catalog.Repository) error {
	for _, f := range seedFarmers {
		_, err := repo.InsertFarmer(ctx, &catalog.Farmer{
			Name:        f.name,
			Address:     f.address,
			Location:    f.location,
			Image:       f.image,
			Specialties: f.specialties,
			Experience:  f.experience,
			Rating:      f.rating,
			Verified:    true,
			Bio:         f.bio,
		})
		if err != nil {
			return fmt.Errorf("seed farmer %q: %w", f.name, err)
		}
	}

	for _, p := range seedProducts {
		_, err := repo.InsertProduct(ctx, &catalog.Product{
			Name:          p.name,
			Category:      p.category,
			Description:   p.description,
			Price:         decimal.RequireFromString(p.price),
			PriceETH:      decimal.RequireFromString(p.priceETH),
			Quantity:      p.quantity,
			Unit:          p.unit,
			Image:         p.image,
			FarmerName:    p.farmerName,
			FarmerAddress: p.farmerAddress,
			Location:      p.location,
			Verified:      true,
			Rating:        p.rating,
			Reviews:       p.reviews,
		})
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
	}

	return nil
}
