package storage

import (
	"context"
	"fmt"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// Seeder is implemented by every backend that can receive the demo catalog.
type Seeder interface {
	CreateRestaurant(ctx context.Context, rest domain.Restaurant) (domain.Restaurant, error)
	CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error)
}

var seedRestaurants = []domain.Restaurant{
	{
		Name:        "Spice Garden",
		Description: "Authentic North Indian cuisine with a royal touch",
		Image:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
		Rating:      decimal.RequireFromString("4.5"),
		Cuisine:     "North Indian",
		PriceRange:  "₹₹",
		Location:    "Mumbai, Maharashtra",
	},
	{
		Name:        "South Flavors",
		Description: "Traditional South Indian delicacies",
		Image:       "https://images.unsplash.com/photo-1516714435131-44d6b64dc6a2",
		Rating:      decimal.RequireFromString("4.3"),
		Cuisine:     "South Indian",
		PriceRange:  "₹₹",
		Location:    "Bangalore, Karnataka",
	},
	{
		Name:        "Street Food Hub",
		Description: "Famous Indian street food and chaats",
		Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950",
		Rating:      decimal.RequireFromString("4.2"),
		Cuisine:     "Street Food",
		PriceRange:  "₹",
		Location:    "Delhi, NCR",
	},
}

// seedDishes reference restaurants by their 1-based seed position. Some rows
// repeat on purpose (e.g. two "Butter Chicken" at Spice Garden); they stay
// distinct catalog entries.
var seedDishes = []domain.Dish{
	{RestaurantID: 1, Name: "Paneer Butter Masala", Description: "Rich and creamy paneer curry with tomato gravy", Price: decimal.NewFromInt(349), Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7", Category: "Vegetarian", SpiceLevel: 2},
	{RestaurantID: 1, Name: "Palak Paneer", Description: "Cottage cheese cubes in spinach gravy", Price: decimal.NewFromInt(329), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950", Category: "Vegetarian", SpiceLevel: 1},
	{RestaurantID: 2, Name: "Veg Biryani", Description: "Aromatic rice dish with mixed vegetables", Price: decimal.NewFromInt(299), Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8", Category: "Vegetarian", SpiceLevel: 2},
	{RestaurantID: 1, Name: "Butter Chicken", Description: "Classic creamy chicken curry", Price: decimal.NewFromInt(399), Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398", Category: "Non-Vegetarian", SpiceLevel: 2},
	{RestaurantID: 2, Name: "Chicken Biryani", Description: "Fragrant rice with tender chicken pieces", Price: decimal.NewFromInt(449), Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0", Category: "Non-Vegetarian", SpiceLevel: 3},
	{RestaurantID: 1, Name: "Mutton Rogan Josh", Description: "Kashmiri style spicy mutton curry", Price: decimal.NewFromInt(499), Image: "https://images.unsplash.com/photo-1545247181-516f71cf4b25", Category: "Non-Vegetarian", SpiceLevel: 4},
	{RestaurantID: 2, Name: "Schezwan Noodles", Description: "Spicy noodles with vegetables", Price: decimal.NewFromInt(249), Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246", Category: "Chinese", SpiceLevel: 3},
	{RestaurantID: 2, Name: "Kung Pao Chicken", Description: "Diced chicken with peanuts and vegetables", Price: decimal.NewFromInt(349), Image: "https://images.unsplash.com/photo-1525755662778-989d0524087e", Category: "Chinese", SpiceLevel: 3},
	{RestaurantID: 1, Name: "Pani Puri", Description: "Crispy puris with spicy tangy water", Price: decimal.NewFromInt(129), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950", Category: "Street Food", SpiceLevel: 2},
	{RestaurantID: 2, Name: "Samosa", Description: "Crispy pastry with spiced potato filling", Price: decimal.NewFromInt(99), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950", Category: "Street Food", SpiceLevel: 2},
	{RestaurantID: 1, Name: "Gulab Jamun", Description: "Deep-fried milk solids in sugar syrup", Price: decimal.NewFromInt(199), Image: "https://images.unsplash.com/photo-1589119908995-c6837fa14848", Category: "Desserts", SpiceLevel: 0},
	{RestaurantID: 2, Name: "Rasmalai", Description: "Soft cottage cheese dumplings in milk", Price: decimal.NewFromInt(249), Image: "https://images.unsplash.com/photo-1582716401301-b2407dc7563d", Category: "Desserts", SpiceLevel: 0},
	{RestaurantID: 1, Name: "Dal Makhani", Description: "Creamy black lentils simmered overnight with butter and cream", Price: decimal.NewFromInt(299), Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe", Category: "Vegetarian", SpiceLevel: 1},
	{RestaurantID: 1, Name: "Butter Chicken", Description: "Tender chicken pieces in rich tomato and butter gravy", Price: decimal.NewFromInt(399), Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398", Category: "Non-Vegetarian", SpiceLevel: 2},
	{RestaurantID: 1, Name: "Chicken Biryani", Description: "Fragrant basmati rice cooked with spiced chicken and aromatics", Price: decimal.NewFromInt(449), Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8", Category: "Non-Vegetarian", SpiceLevel: 3},
	{RestaurantID: 2, Name: "Masala Dosa", Description: "Crispy rice crepe with spiced potato filling and chutneys", Price: decimal.NewFromInt(199), Image: "https://images.unsplash.com/photo-1630383249896-2b88c97b7083", Category: "Vegetarian", SpiceLevel: 2},
	{RestaurantID: 2, Name: "Idli Sambar", Description: "Steamed rice cakes with lentil soup and coconut chutney", Price: decimal.NewFromInt(149), Image: "https://images.unsplash.com/photo-1589301760014-d929f3979dbc", Category: "Vegetarian", SpiceLevel: 1},
	{RestaurantID: 2, Name: "Chilli Paneer", Description: "Indo-Chinese style spicy paneer with bell peppers", Price: decimal.NewFromInt(299), Image: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8", Category: "Chinese", SpiceLevel: 3},
	{RestaurantID: 2, Name: "Veg Hakka Noodles", Description: "Stir-fried noodles with mixed vegetables in Indo-Chinese style", Price: decimal.NewFromInt(249), Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246", Category: "Chinese", SpiceLevel: 2},
	{RestaurantID: 3, Name: "Pani Puri", Description: "Crispy hollow puris filled with spiced water and chutney", Price: decimal.NewFromInt(99), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950", Category: "Street Food", SpiceLevel: 3},
	{RestaurantID: 3, Name: "Samosa", Description: "Crispy pastry triangles with spiced potato filling", Price: decimal.NewFromInt(79), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950", Category: "Street Food", SpiceLevel: 2},
	{RestaurantID: 3, Name: "Gulab Jamun", Description: "Deep-fried milk solids soaked in sugar syrup", Price: decimal.NewFromInt(199), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950", Category: "Desserts", SpiceLevel: 0},
	{RestaurantID: 3, Name: "Rasmalai", Description: "Soft cottage cheese patties in saffron flavored milk", Price: decimal.NewFromInt(249), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950", Category: "Desserts", SpiceLevel: 0},
}

// Seed loads the demo catalog. Restaurant references are remapped to the
// ids the backend actually assigned.
func Seed(ctx context.Context, s Seeder) error {
	assigned := make(map[int]int, len(seedRestaurants))
	for i, rest := range seedRestaurants {
		created, err := s.CreateRestaurant(ctx, rest)
		if err != nil {
			return fmt.Errorf("seed restaurant %q: %w", rest.Name, err)
		}
		assigned[i+1] = created.ID
	}
	for _, dish := range seedDishes {
		dish.RestaurantID = assigned[dish.RestaurantID]
		if _, err := s.CreateDish(ctx, dish); err != nil {
			return fmt.Errorf("seed dish %q: %w", dish.Name, err)
		}
	}
	return nil
}
