package models

import (
	"github.com/foodie-app/internal/logger"

	"github.com/shopspring/decimal"
)

// defaultMenu 初始菜单数据
var defaultMenu = []MenuItem{
	{
		Name:        "Galouti Kebab",
		Category:    "Appetizers",
		PriceAmount: NewMoneyFromDecimal(decimal.NewFromInt(280)),
		ImageURL:    "https://www.yummytummyaarthi.com/wp-content/uploads/2023/02/galouti-kebab-1.jpg",
		Description: "Melt-in-the-mouth minced mutton kebabs, a signature dish of Lucknow.",
		Rating:      4.9,
		CookTime:    "25-30 min",
		Tags:        StringArray{"Non-Vegetarian", "Mughlai", "Awadhi", "Spicy"},
		Featured:    false,
		Available:   true,
		SortOrder:   1,
	},
	{
		Name:        "Tunday Kebab",
		Category:    "Appetizers",
		PriceAmount: NewMoneyFromDecimal(decimal.NewFromInt(250)),
		ImageURL:    "https://akm-img-a-in.tosshub.com/aajtak/images/story/202211/tunday_kabab-sixteen_nine.jpg",
		Description: "Famous melt-in-the-mouth kebab, made with minced buffalo meat and secret spices.",
		Rating:      4.8,
		CookTime:    "20-25 min",
		Tags:        StringArray{"Non-Vegetarian", "Mughlai", "Awadhi"},
		Featured:    true,
		Available:   true,
		SortOrder:   2,
	},
	{
		Name:        "Lucknowi Biryani",
		Category:    "Main Course",
		PriceAmount: NewMoneyFromDecimal(decimal.NewFromInt(320)),
		Description: "Aromatic biryani with tender meat, cooked in traditional Awadhi 'dum' style.",
		Rating:      4.9,
		CookTime:    "40-45 min",
		Tags:        StringArray{"Non-Vegetarian", "Mughlai", "Awadhi", "Rice"},
		Featured:    true,
		Available:   true,
		SortOrder:   3,
	},
	{
		Name:        "Paneer Butter Masala",
		Category:    "Main Course",
		PriceAmount: NewMoneyFromDecimal(decimal.NewFromInt(280)),
		Description: "Cottage cheese cubes cooked in rich and creamy tomato-based gravy.",
		Rating:      4.7,
		CookTime:    "25-30 min",
		Tags:        StringArray{"Vegetarian", "Curry", "North Indian"},
		Featured:    false,
		Available:   true,
		SortOrder:   4,
	},
	{
		Name:        "Masala Chai",
		Category:    "Beverages",
		PriceAmount: NewMoneyFromDecimal(decimal.NewFromInt(30)),
		Description: "Spiced tea beverage made with aromatic Indian spices and herbs.",
		Rating:      4.9,
		CookTime:    "10 min",
		Tags:        StringArray{"Vegetarian", "Beverage", "Hot"},
		Featured:    false,
		Available:   true,
		SortOrder:   5,
	},
}

// SeedDefaultMenu 初始化默认菜单。只在菜单表为空时写入，可重复调用。
func SeedDefaultMenu() error {
	var count int64
	if err := DB.Model(&MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := DB.Create(&defaultMenu).Error; err != nil {
		return err
	}
	logger.Infow("default_menu_seeded", "items", len(defaultMenu))
	return nil
}
