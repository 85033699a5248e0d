package catalog

import "github.com/Zhouyuxin4/Scalor/internal/domain"

// Product categories used by the seed data.
const (
	CategoryFruits     = "Fruits"
	CategoryVegetables = "Vegetables"
	CategoryDairy      = "Dairy"
	CategoryMeat       = "Meat"
	CategoryBakery     = "Bakery"
	CategoryBeverages  = "Beverages"
	CategorySnacks     = "Snacks"
	CategoryPantry     = "Pantry"
	CategoryFrozen     = "Frozen"
	CategoryHousehold  = "Household"
)

// seed is the starter catalog. PLU codes follow the IFPS produce codes.
var seed = []domain.CatalogProduct{
	{ID: "cat-banana", Name: "Banana", Category: CategoryFruits, ImageType: "emoji", ImageSource: "🍌", PLUCode: "4011"},
	{ID: "cat-fuji-apple", Name: "Fuji Apple", Category: CategoryFruits, ImageType: "emoji", ImageSource: "🍎", PLUCode: "3613"},
	{ID: "cat-orange", Name: "Orange", Category: CategoryFruits, ImageType: "emoji", ImageSource: "🍊", PLUCode: "4012"},

	{ID: "cat-spinach", Name: "Spinach", Category: CategoryVegetables, ImageType: "emoji", ImageSource: "🥬", PLUCode: "4090"},
	{ID: "cat-carrot", Name: "Carrot", Category: CategoryVegetables, ImageType: "emoji", ImageSource: "🥕", PLUCode: "4562"},
	{ID: "cat-tomato", Name: "Tomato", Category: CategoryVegetables, ImageType: "emoji", ImageSource: "🍅", PLUCode: "4087"},

	{ID: "cat-whole-milk", Name: "Whole Milk", Category: CategoryDairy, ImageType: "emoji", ImageSource: "🥛"},
	{ID: "cat-eggs", Name: "Eggs", Category: CategoryDairy, ImageType: "emoji", ImageSource: "🥚"},
	{ID: "cat-cheddar", Name: "Cheddar Cheese", Category: CategoryDairy, ImageType: "emoji", ImageSource: "🧀"},

	{ID: "cat-chicken-breast", Name: "Chicken Breast", Category: CategoryMeat, ImageType: "emoji", ImageSource: "🍗"},
	{ID: "cat-ground-beef", Name: "Ground Beef", Category: CategoryMeat, ImageType: "emoji", ImageSource: "🥩"},

	{ID: "cat-wheat-bread", Name: "Wheat Bread", Category: CategoryBakery, ImageType: "emoji", ImageSource: "🍞"},
	{ID: "cat-croissant", Name: "Croissant", Category: CategoryBakery, ImageType: "emoji", ImageSource: "🥐"},

	{ID: "cat-bottled-water", Name: "Bottled Water", Category: CategoryBeverages, ImageType: "emoji", ImageSource: "💧"},
	{ID: "cat-coffee", Name: "Coffee", Category: CategoryBeverages, ImageType: "emoji", ImageSource: "☕"},
}
