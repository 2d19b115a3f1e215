package store

import (
	"time"

	"voltstore/entities"
)

// DefaultSettings mirrors the stock VOLT configuration: free shipping from
// 50000, standard shipping 3000.
func DefaultSettings() entities.Settings {
	return entities.Settings{
		StoreName:             "VOLT",
		StoreEmail:            "info@volt.com",
		StorePhone:            "+54 11 1234-5678",
		StoreAddress:          "Av. Santa Fe 1234, Buenos Aires",
		FreeShippingThreshold: 50000,
		StandardShipping:      3000,
		ExpressShipping:       5000,
		AcceptCash:            true,
		AcceptCard:            true,
		AcceptTransfer:        true,
		EmailNewOrder:         true,
		EmailLowStock:         true,
		StockThreshold:        10,
		MetaTitle:             "VOLT - Streetwear Premium",
		MetaDescription:       "Ropa urbana de calidad premium para la cultura street",
		Instagram:             "@volt.streetwear",
		Facebook:              "volt.streetwear",
		Twitter:               "@voltstreet",
	}
}

func CouponCatalog() []entities.Coupon {
	return []entities.Coupon{
		{Code: "VOLT10", Discount: 10, Type: entities.CouponPercentage, MinAmount: 0},
		{Code: "WELCOME20", Discount: 20, Type: entities.CouponPercentage, MinAmount: 30000},
		{Code: "FIRST5000", Discount: 5000, Type: entities.CouponFixed, MinAmount: 20000},
	}
}

func seedCategories() []entities.Category {
	return []entities.Category{
		{Id: 1, Name: "Remeras", Slug: "remeras"},
		{Id: 2, Name: "Hoodies", Slug: "hoodies"},
		{Id: 3, Name: "Pantalones", Slug: "pantalones"},
		{Id: 4, Name: "Accesorios", Slug: "accesorios"},
	}
}

func intp(v int) *int { return &v }

func img(photo string) string {
	return "https://images.unsplash.com/" + photo + "?w=400"
}

func seedProducts() []entities.Product {
	return []entities.Product{
		{Id: 1, Name: "VOLT Logo Tee", Slug: "volt-logo-tee-black", Sku: "TEE-001", Category: 1, Price: 12000, Description: "Remera premium con logo VOLT bordado. Algodón 100% peinado de alta densidad.", Image: img("photo-1521572163474-6864f9cf17ab"), Colors: []string{"Black", "White"}, Sizes: []string{"S", "M", "L", "XL", "XXL"}, Stock: 50, Featured: true, Rating: 4.8, Reviews: 124},
		{Id: 2, Name: "Neon Strike Tee", Slug: "neon-strike-tee", Sku: "TEE-002", Category: 1, Price: 13500, Description: "Diseño exclusivo con estampado neón. Corte regular, 100% algodón.", Image: img("photo-1583743814966-8936f5b7be1a"), Colors: []string{"White", "Black"}, Sizes: []string{"XS", "S", "M", "L", "XL"}, Stock: 35, Featured: true, New: true, Rating: 4.9, Reviews: 89},
		{Id: 3, Name: "Urban Lines Tee", Slug: "urban-lines-tee", Sku: "TEE-003", Category: 1, Price: 11500, OriginalPrice: intp(15000), Description: "Remera con gráfica urbana minimalista. Fit moderno.", Image: img("photo-1562157873-818bc0726f68"), Colors: []string{"Gray", "Charcoal"}, Sizes: []string{"S", "M", "L", "XL"}, Stock: 28, Sale: true, Rating: 4.6, Reviews: 67},
		{Id: 4, Name: "Oversized Drop Tee", Slug: "oversized-drop-tee", Sku: "TEE-004", Category: 1, Price: 14000, Description: "Corte oversized. Diseño dropped shoulder. Premium cotton.", Image: img("photo-1618354691373-d851c5c3a990"), Colors: []string{"Black", "White", "Charcoal"}, Sizes: []string{"M", "L", "XL", "XXL"}, Stock: 42, Featured: true, New: true, Rating: 4.9, Reviews: 156},
		{Id: 5, Name: "Graphic Wave Tee", Slug: "graphic-wave-tee", Sku: "TEE-005", Category: 1, Price: 12500, Description: "Estampado wave exclusive. Fit regular, cuello reforzado.", Image: img("photo-1576566588028-4147f3842f27"), Colors: []string{"White", "Black"}, Sizes: []string{"S", "M", "L", "XL"}, Stock: 31, Rating: 4.7, Reviews: 93},
		{Id: 6, Name: "Minimal Logo Tee", Slug: "minimal-logo-tee", Sku: "TEE-006", Category: 1, Price: 10500, Description: "Logo minimalista bordado. Esencial de closet.", Image: img("photo-1627225924765-552d49cf47ad"), Colors: []string{"Charcoal", "Black", "Navy"}, Sizes: []string{"XS", "S", "M", "L", "XL"}, Stock: 55, Rating: 4.8, Reviews: 201},
		{Id: 7, Name: "Street Culture Tee", Slug: "street-culture-tee", Sku: "TEE-007", Category: 1, Price: 13000, Description: "Diseño street exclusive. Limited edition.", Image: img("photo-1503341504253-dff4815485f1"), Colors: []string{"Black"}, Sizes: []string{"M", "L", "XL"}, Stock: 18, Featured: true, New: true, Rating: 5.0, Reviews: 45},
		{Id: 8, Name: "Retro Fade Tee", Slug: "retro-fade-tee", Sku: "TEE-008", Category: 1, Price: 9500, OriginalPrice: intp(13000), Description: "Efecto retro fade. Vintage vibes.", Image: img("photo-1529374255404-311a2a4f1fd9"), Colors: []string{"Navy", "Charcoal"}, Sizes: []string{"S", "M", "L", "XL"}, Stock: 22, Sale: true, Rating: 4.5, Reviews: 78},
		{Id: 9, Name: "VOLT Essential Hoodie", Slug: "volt-essential-hoodie", Sku: "HOO-001", Category: 2, Price: 28000, Description: "Hoodie esencial con logo bordado. Felpa premium 320gsm.", Image: img("photo-1556821840-3a63f95609a7"), Colors: []string{"Black", "Charcoal"}, Sizes: []string{"S", "M", "L", "XL", "XXL"}, Stock: 45, Featured: true, Rating: 4.9, Reviews: 287},
		{Id: 10, Name: "Neon Arc Hoodie", Slug: "neon-arc-hoodie", Sku: "HOO-002", Category: 2, Price: 32000, Description: "Diseño arc exclusive con detalles reflectivos.", Image: img("photo-1578768079052-aa76e52ff62e"), Colors: []string{"Charcoal", "Black"}, Sizes: []string{"M", "L", "XL", "XXL"}, Stock: 28, Featured: true, New: true, Rating: 4.8, Reviews: 143},
		{Id: 11, Name: "Oversized Hoodie", Slug: "oversized-hoodie", Sku: "HOO-003", Category: 2, Price: 30000, OriginalPrice: intp(38000), Description: "Fit oversized relaxed. Heavy weight fleece.", Image: img("photo-1620799140408-edc6dcb6d633"), Colors: []string{"White", "Black", "Gray"}, Sizes: []string{"L", "XL", "XXL"}, Stock: 19, Sale: true, Rating: 4.7, Reviews: 98},
		{Id: 12, Name: "Tech Fleece Hoodie", Slug: "tech-fleece-hoodie", Sku: "HOO-004", Category: 2, Price: 35000, Description: "Tecnología fleece avanzada. Ultra soft.", Image: img("photo-1542406775-ade58c52d2e4"), Colors: []string{"Black", "Navy"}, Sizes: []string{"S", "M", "L", "XL"}, Stock: 33, Featured: true, New: true, Rating: 5.0, Reviews: 76},
		{Id: 13, Name: "Quarter Zip Hoodie", Slug: "quarter-zip-hoodie", Sku: "HOO-005", Category: 2, Price: 29500, Description: "Diseño quarter zip. Versátil y moderno.", Image: img("photo-1609873814058-a8928924184a"), Colors: []string{"Gray", "Charcoal"}, Sizes: []string{"M", "L", "XL"}, Stock: 24, Rating: 4.6, Reviews: 54},
		{Id: 14, Name: "Cropped Hoodie", Slug: "cropped-hoodie", Sku: "HOO-006", Category: 2, Price: 27000, Description: "Corte cropped moderno. Unisex fit.", Image: img("photo-1515886657613-9f3515b0c78f"), Colors: []string{"Black", "White"}, Sizes: []string{"XS", "S", "M", "L"}, Stock: 31, Rating: 4.8, Reviews: 112},
		{Id: 15, Name: "Zip-up Hoodie", Slug: "zipup-hoodie", Sku: "HOO-007", Category: 2, Price: 31000, Description: "Full zip con capucha ajustable. Premium quality.", Image: img("photo-1611312449408-fcece27cdbb7"), Colors: []string{"Navy", "Black"}, Sizes: []string{"S", "M", "L", "XL", "XXL"}, Stock: 27, Rating: 4.7, Reviews: 89},
		{Id: 16, Name: "Logo Print Hoodie", Slug: "logo-print-hoodie", Sku: "HOO-008", Category: 2, Price: 26000, OriginalPrice: intp(34000), Description: "Estampado logo all-over. Statement piece.", Image: img("photo-1604644401890-0bd678c83788"), Colors: []string{"Charcoal"}, Sizes: []string{"M", "L", "XL"}, Stock: 15, Sale: true, Rating: 4.5, Reviews: 63},
		{Id: 17, Name: "Cargo Pants", Slug: "cargo-pants-black", Sku: "PAN-001", Category: 3, Price: 24000, Description: "Cargo pants con múltiples bolsillos. Tela resistente.", Image: img("photo-1624378439575-d8705ad7ae80"), Colors: []string{"Black", "Olive"}, Sizes: []string{"S", "M", "L", "XL"}, Stock: 38, Featured: true, Rating: 4.8, Reviews: 167},
		{Id: 18, Name: "Joggers Premium", Slug: "joggers-premium", Sku: "PAN-002", Category: 3, Price: 22000, Description: "Joggers de felpa premium. Fit tapered.", Image: img("photo-1552374196-1ab2a1c593e8"), Colors: []string{"Charcoal", "Black", "Gray"}, Sizes: []string{"S", "M", "L", "XL", "XXL"}, Stock: 52, Featured: true, Rating: 4.9, Reviews: 234},
		{Id: 19, Name: "Wide Leg Pants", Slug: "wide-leg-pants", Sku: "PAN-003", Category: 3, Price: 26000, Description: "Corte wide leg moderno. High fashion.", Image: img("photo-1541099649105-f69ad21f3246"), Colors: []string{"Black", "Charcoal"}, Sizes: []string{"M", "L", "XL"}, Stock: 21, New: true, Rating: 4.6, Reviews: 48},
		{Id: 20, Name: "Track Pants", Slug: "track-pants-white", Sku: "PAN-004", Category: 3, Price: 20000, OriginalPrice: intp(26000), Description: "Track pants con stripe lateral. Athleisure style.", Image: img("photo-1606107557195-0e29a4b5b4aa"), Colors: []string{"White", "Black"}, Sizes: []string{"S", "M", "L", "XL"}, Stock: 29, Sale: true, Rating: 4.5, Reviews: 91},
		{Id: 21, Name: "Utility Cargo", Slug: "utility-cargo-olive", Sku: "PAN-005", Category: 3, Price: 27000, Description: "Cargo utility con detalles técnicos. Urban exploration.", Image: img("photo-1517445312882-bc9910d016b7"), Colors: []string{"Olive", "Black"}, Sizes: []string{"M", "L", "XL"}, Stock: 17, Featured: true, New: true, Rating: 4.9, Reviews: 72},
		{Id: 22, Name: "Slim Fit Joggers", Slug: "slim-fit-joggers", Sku: "PAN-006", Category: 3, Price: 19500, Description: "Joggers slim fit. Versátil para cualquier ocasión.", Image: img("photo-1473966968600-fa801b869a1a"), Colors: []string{"Gray", "Black", "Navy"}, Sizes: []string{"S", "M", "L", "XL"}, Stock: 44, Rating: 4.7, Reviews: 128},
		{Id: 23, Name: "VOLT Cap", Slug: "volt-cap-black", Sku: "ACC-001", Category: 4, Price: 8000, Description: "Gorra snapback con logo bordado. Ajustable.", Image: img("photo-1588850561407-ed78c282e89b"), Colors: []string{"Black"}, Sizes: []string{"Único"}, Stock: 67, Rating: 4.8, Reviews: 203},
		{Id: 24, Name: "Beanie Essential", Slug: "beanie-essential", Sku: "ACC-002", Category: 4, Price: 6500, Description: "Gorro beanie de punto. Logo patch.", Image: img("photo-1576871337632-b9aef4c17ab9"), Colors: []string{"Black", "Gray"}, Sizes: []string{"Único"}, Stock: 89, Rating: 4.6, Reviews: 145},
	}
}

func seedCollections() []entities.Collection {
	return []entities.Collection{
		{Id: 1, Name: "Neon Nights", Slug: "neon-nights", Description: "Colección inspirada en la cultura urbana nocturna", Image: "https://images.unsplash.com/photo-1534452203293-494d7ddbf7e0?w=600", ProductIds: []int{1, 2, 4, 10, 17}},
		{Id: 2, Name: "Essential Pack", Slug: "essential-pack", Description: "Los básicos que no pueden faltar en tu closet", Image: "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?w=600", ProductIds: []int{6, 9, 18, 23}},
		{Id: 3, Name: "Street Elite", Slug: "street-elite", Description: "Premium streetwear para los que marcan tendencia", Image: "https://images.unsplash.com/photo-1523398002811-999ca8dec234?w=600", ProductIds: []int{7, 12, 21}},
	}
}

func seedOrders(products []entities.Product) []entities.Order {
	line := func(productId int, size, color string, qty int) entities.CartLine {
		for _, p := range products {
			if p.Id == productId {
				return entities.CartLine{
					ProductId: p.Id,
					Name:      p.Name,
					Price:     p.Price,
					Image:     p.Image,
					Size:      size,
					Color:     color,
					Quantity:  qty,
				}
			}
		}
		return entities.CartLine{ProductId: productId, Size: size, Color: color, Quantity: qty}
	}

	return []entities.Order{
		{
			Id: 1004, Date: time.Date(2026, 2, 6, 11, 0, 0, 0, time.UTC),
			Items:    []entities.CartLine{line(2, "S", "White", 2), line(23, "Único", "Black", 1)},
			Subtotal: 35000, Shipping: 3000, Total: 38000, Status: entities.OrderPending,
			CheckoutInfo: entities.CheckoutInfo{Email: "cliente4@email.com", FirstName: "Lucas", LastName: "Fernández", Phone: "+54 11 2222-3456", Address: "Av. Santa Fe 4567", City: "Buenos Aires", State: "CABA", ZipCode: "1425"},
		},
		{
			Id: 1003, Date: time.Date(2026, 2, 5, 9, 20, 0, 0, time.UTC),
			Items:    []entities.CartLine{line(12, "M", "Black", 1)},
			Subtotal: 35000, Total: 35000, Status: entities.OrderProcessing,
			CheckoutInfo: entities.CheckoutInfo{Email: "cliente3@email.com", FirstName: "Ana", LastName: "Martínez", Phone: "+54 11 3333-9012", Address: "Av. Cabildo 2345", City: "Buenos Aires", State: "CABA", ZipCode: "1428"},
		},
		{
			Id: 1002, Date: time.Date(2026, 2, 3, 15, 45, 0, 0, time.UTC),
			Items:    []entities.CartLine{line(4, "L", "White", 1), line(17, "M", "Black", 1)},
			Subtotal: 38000, Discount: 3800, Total: 34200, Status: entities.OrderShipped,
			Coupon:       &entities.Coupon{Code: "VOLT10", Discount: 10, Type: entities.CouponPercentage},
			CheckoutInfo: entities.CheckoutInfo{Email: "cliente2@email.com", FirstName: "Carlos", LastName: "Rodríguez", Phone: "+54 11 4444-5678", Address: "Calle Florida 567", City: "Buenos Aires", State: "CABA", ZipCode: "1005"},
		},
		{
			Id: 1001, Date: time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC),
			Items:    []entities.CartLine{line(1, "M", "Black", 2), line(9, "L", "Black", 1)},
			Subtotal: 52000, Total: 52000, Status: entities.OrderDelivered,
			CheckoutInfo: entities.CheckoutInfo{Email: "cliente1@email.com", FirstName: "María", LastName: "González", Phone: "+54 11 5555-1234", Address: "Av. Corrientes 1234", City: "Buenos Aires", State: "CABA", ZipCode: "1043"},
		},
	}
}
