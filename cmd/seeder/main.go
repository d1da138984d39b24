package main

import (
	"context"
	"log"
	"time"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/config"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	log.Println("✅ Connected to MongoDB")

	db := client.Database(cfg.Mongo.Database)

	seedDevices(ctx, db)
	seedDemoUser(ctx, db)

	log.Println("🎉 Seeding completed!")
}

// seedDevices upserts the demo catalog, keyed by brand+model so re-runs
// never duplicate entries
func seedDevices(ctx context.Context, db *mongo.Database) {
	devices := demoCatalog()
	log.Printf("🌱 Seeding %d devices...", len(devices))

	col := db.Collection("devices")
	for _, d := range devices {
		filter := bson.M{"brand": d.Brand, "model": d.Model}
		update := bson.M{"$setOnInsert": d}

		res, err := col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Printf("❌ Failed to seed %s %s: %v", d.Brand, d.Model, err)
			continue
		}
		if res.UpsertedCount > 0 {
			log.Printf("✅ Created device: %s %s", d.Brand, d.Model)
		}
	}
}

// seedDemoUser creates a login for manual testing
func seedDemoUser(ctx context.Context, db *mongo.Database) {
	email := "demo@projectx.local"
	password := "password123"

	col := db.Collection("users")
	if err := col.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	user := model.User{
		Name:     "Demo User",
		Email:    email,
		Password: string(hashed),
		OS:       "Android",
	}
	if _, err := col.InsertOne(ctx, user); err != nil {
		log.Printf("❌ Failed to create demo user: %v", err)
		return
	}
	log.Printf("✅ Created user: %s | Pass: %s", email, password)
}

func demoCatalog() []model.Device {
	return []model.Device{
		{
			Brand: "Samsung", Model: "Galaxy S24 Ultra",
			ImageURL:    "https://images.projectx.local/devices/galaxy-s24-ultra.png",
			ReleaseDate: "24 January 2024", MarketStatus: true,
			Display: "6.8-inch QHD+ AMOLED 120Hz", Processor: "Snapdragon 8 Gen 3",
			FrontCamera: "12MP", RearCamera: "200MP + 50MP + 12MP + 10MP",
			RAM: "12GB", Storage: "256GB", OS: "Android 14",
		},
		{
			Brand: "Apple", Model: "iPhone 15 Pro",
			ImageURL:    "https://images.projectx.local/devices/iphone-15-pro.png",
			ReleaseDate: "22 September 2023", MarketStatus: true,
			Display: "6.1-inch Super Retina XDR 120Hz", Processor: "A17 Pro",
			FrontCamera: "12MP", RearCamera: "48MP + 12MP + 12MP",
			RAM: "8GB", Storage: "128GB", OS: "iOS 17",
		},
		{
			Brand: "Google", Model: "Pixel 8",
			ImageURL:    "https://images.projectx.local/devices/pixel-8.png",
			ReleaseDate: "12 October 2023", MarketStatus: true,
			Display: "6.2-inch FHD+ OLED 120Hz", Processor: "Tensor G3",
			FrontCamera: "10.5MP", RearCamera: "50MP + 12MP",
			RAM: "8GB", Storage: "128GB", OS: "Android 14",
		},
		{
			Brand: "OnePlus", Model: "12",
			ImageURL:    "https://images.projectx.local/devices/oneplus-12.png",
			ReleaseDate: "23 January 2024", MarketStatus: true,
			Display: "6.82-inch QHD+ AMOLED 120Hz", Processor: "Snapdragon 8 Gen 3",
			FrontCamera: "32MP", RearCamera: "50MP + 64MP + 48MP",
			RAM: "16GB", Storage: "512GB", OS: "OxygenOS 14",
		},
		{
			Brand: "Xiaomi", Model: "14 Pro",
			ImageURL:    "https://images.projectx.local/devices/xiaomi-14-pro.png",
			ReleaseDate: "October 2023", MarketStatus: false,
			Display: "6.73-inch WQHD+ AMOLED 120Hz", Processor: "Snapdragon 8 Gen 3",
			FrontCamera: "32MP", RearCamera: "50MP + 50MP + 50MP",
			RAM: "12GB", Storage: "256GB", OS: "HyperOS",
		},
		{
			Brand: "Nothing", Model: "Phone (2)",
			ImageURL:    "https://images.projectx.local/devices/nothing-phone-2.png",
			ReleaseDate: "July 11, 2023", MarketStatus: true,
			Display: "6.7-inch FHD+ OLED 120Hz", Processor: "Snapdragon 8+ Gen 1",
			FrontCamera: "32MP", RearCamera: "50MP + 50MP",
			RAM: "12GB", Storage: "256GB", OS: "Nothing OS 2.0",
		},
		{
			Brand: "Sony", Model: "Xperia 1 V",
			ImageURL:    "https://images.projectx.local/devices/xperia-1-v.png",
			ReleaseDate: "2023-06-16", MarketStatus: false,
			Display: "6.5-inch 4K OLED 120Hz", Processor: "Snapdragon 8 Gen 2",
			FrontCamera: "12MP", RearCamera: "48MP + 12MP + 12MP",
			RAM: "12GB", Storage: "256GB", OS: "Android 13",
		},
		{
			Brand: "Nokia", Model: "3310",
			ImageURL:    "https://images.projectx.local/devices/nokia-3310.png",
			ReleaseDate: "legacy model", MarketStatus: false,
			Display: "2.4-inch QVGA", Processor: "MediaTek MT6260A",
			FrontCamera: "none", RearCamera: "2MP",
			RAM: "16MB", Storage: "16MB", OS: "Nokia Series 30+",
		},
	}
}
