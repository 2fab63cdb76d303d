package db

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

// SampleProducts は初期投入するカタログ。
var SampleProducts = []model.Product{
	{
		Name:        "Classic White T-Shirt",
		Description: "Comfortable and versatile white t-shirt made from 100% cotton.",
		Price:       19.99,
		Category:    model.CategoryMen,
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=1480&q=80",
		Stock:       50,
	},
	{
		Name:        "Floral Summer Dress",
		Description: "Beautiful floral print dress perfect for summer occasions.",
		Price:       39.99,
		Category:    model.CategoryWomen,
		Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?ixlib=rb-4.0.3&auto=format&fit=crop&w=1374&q=80",
		Stock:       30,
	},
	{
		Name:        "Slim Fit Jeans",
		Description: "Modern slim fit jeans with stretch for maximum comfort.",
		Price:       49.99,
		Category:    model.CategoryMen,
		Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1326&q=80",
		Stock:       25,
	},
	{
		Name:        "Leather Crossbody Bag",
		Description: "Genuine leather crossbody bag with adjustable strap.",
		Price:       59.99,
		Category:    model.CategoryAccessories,
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-4.0.3&auto=format&fit=crop&w=1374&q=80",
		Stock:       15,
	},
	{
		Name:        "Knit Sweater",
		Description: "Warm and cozy knit sweater for chilly days.",
		Price:       45.99,
		Category:    model.CategoryWomen,
		Image:       "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?ixlib=rb-4.0.3&auto=format&fit=crop&w=1410&q=80",
		Stock:       20,
	},
	{
		Name:        "Running Shoes",
		Description: "Lightweight running shoes with excellent cushioning.",
		Price:       79.99,
		Category:    model.CategoryMen,
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
		Stock:       40,
	},
	{
		Name:        "Silver Necklace",
		Description: "Elegant silver necklace with minimalist design.",
		Price:       29.99,
		Category:    model.CategoryAccessories,
		Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
		Stock:       35,
	},
	{
		Name:        "Denim Jacket",
		Description: "Classic denim jacket with modern fit and style.",
		Price:       65.99,
		Category:    model.CategoryWomen,
		Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
		Stock:       18,
	},
	{
		Name:        "Dinosaur Print T-Shirt",
		Description: "Fun and colorful t-shirt with a dinosaur print for kids.",
		Price:       15.99,
		Category:    model.CategoryKids,
		Image:       "https://images.unsplash.com/photo-1593495181229-7045a4846f6d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
		Stock:       40,
	},
	{
		Name:        "Rainbow Tutu Skirt",
		Description: "A vibrant and playful rainbow tutu skirt for kids.",
		Price:       22.99,
		Category:    model.CategoryKids,
		Image:       "https://images.unsplash.com/photo-1596753861853-55a9b88a26a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
		Stock:       25,
	},
}

// SeedProducts はサンプル商品を冪等に投入する。
// 商品名で既存判定するので、何度起動しても増殖しない。
func SeedProducts(ctx context.Context, gormDB *gorm.DB) error {
	for _, p := range SampleProducts {
		product := p
		err := gormDB.WithContext(ctx).
			Where("name = ?", product.Name).
			FirstOrCreate(&product).Error
		if err != nil {
			return err
		}
	}
	return nil
}
