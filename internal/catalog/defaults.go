package catalog

import "github.com/qwikker/business-import/internal/domain"

type defaultProfile struct {
	label string
	types []string
}

// defaultProfiles is indexed by domain.Category. Index 0 is CategoryUnknown
// and stays empty.
var defaultProfiles = [...]defaultProfile{
	domain.CategoryRestaurant: {
		label: "Restaurants",
		types: []string{"restaurant", "meal_delivery", "meal_takeaway", "bar", "night_club", "food", "steak_house", "seafood_restaurant"},
	},
	domain.CategoryCafe: {
		label: "Cafes & Coffee",
		types: []string{"cafe", "coffee_shop", "tea_house"},
	},
	domain.CategoryBar: {
		label: "Bars & Pubs",
		types: []string{"bar", "pub", "night_club", "wine_bar"},
	},
	domain.CategoryBakery: {
		label: "Bakeries",
		types: []string{"bakery"},
	},
	domain.CategoryDessert: {
		label: "Desserts",
		types: []string{"ice_cream_shop", "dessert_shop", "confectionery", "donut_shop", "chocolate_shop"},
	},
	domain.CategoryTakeaway: {
		label: "Takeaway",
		types: []string{"meal_takeaway", "meal_delivery", "fast_food_restaurant", "pizza_restaurant", "sandwich_shop", "hamburger_restaurant"},
	},
	domain.CategorySalon: {
		label: "Hair & Beauty",
		types: []string{"beauty_salon", "hair_salon", "hair_care", "nail_salon"},
	},
	domain.CategoryBarber: {
		label: "Barbers",
		types: []string{"barber_shop", "hair_care"},
	},
	domain.CategoryTattoo: {
		label: "Tattoo & Piercing",
		types: []string{"tattoo_parlor", "piercing_shop"},
	},
	domain.CategoryWellness: {
		label: "Wellness & Spa",
		types: []string{"spa", "massage", "sauna", "wellness_center", "yoga_studio", "physiotherapist"},
	},
	domain.CategoryFitness: {
		label: "Fitness",
		types: []string{"gym", "fitness_center", "yoga_studio"},
	},
	domain.CategoryRetail: {
		label: "Shops",
		types: []string{"clothing_store", "shoe_store", "jewelry_store", "book_store", "gift_shop", "florist", "home_goods_store", "furniture_store", "electronics_store", "pet_store", "bicycle_store", "department_store", "shopping_mall", "store", "market", "liquor_store", "sporting_goods_store", "hardware_store"},
	},
	domain.CategoryHotel: {
		label: "Hotels & Stays",
		types: []string{"lodging", "hotel", "bed_and_breakfast", "guest_house"},
	},
	domain.CategoryVenue: {
		label: "Venues",
		types: []string{"event_venue", "banquet_hall", "wedding_venue", "convention_center"},
	},
	domain.CategoryEntertainment: {
		label: "Entertainment",
		types: []string{"movie_theater", "bowling_alley", "amusement_center", "art_gallery", "museum", "casino", "tourist_attraction"},
	},
	domain.CategoryProfessional: {
		label: "Professional Services",
		types: []string{"accounting", "lawyer", "real_estate_agency", "insurance_agency", "travel_agency"},
	},
}

// Both array lengths must agree; a missing trailing entry fails to compile.
var (
	_ [len(defaultProfiles) - int(domain.CategoryCount)]struct{}
	_ [int(domain.CategoryCount) - len(defaultProfiles)]struct{}
)
