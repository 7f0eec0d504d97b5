package main

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/config"
	"github.com/Sameer222006/flatfinder/internal/db"
	"github.com/Sameer222006/flatfinder/internal/model"
)

const demoPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Amenity{},
		&model.PropertyAmenity{},
		&model.Favorite{},
		&model.Message{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	amenities, err := seedAmenities(gormDB)
	if err != nil {
		log.Fatalf("Failed to seed amenities: %v", err)
	}

	users, err := seedUsers(gormDB)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	if err := seedProperties(gormDB, users, amenities); err != nil {
		log.Fatalf("Failed to seed properties: %v", err)
	}

	log.Println("Seed completed")
}

// seedAmenities inserts the amenity catalog once and returns all rows
// keyed by name.
func seedAmenities(gormDB *gorm.DB) (map[string]uint, error) {
	catalog := []model.Amenity{
		{Name: "WiFi", Icon: "wifi"},
		{Name: "Air Conditioning", Icon: "air-conditioning"},
		{Name: "Heating", Icon: "heating"},
		{Name: "Washing Machine", Icon: "washing-machine"},
		{Name: "Dryer", Icon: "dryer"},
		{Name: "Kitchen", Icon: "kitchen"},
		{Name: "Parking", Icon: "parking"},
		{Name: "Elevator", Icon: "elevator"},
		{Name: "Pool", Icon: "pool"},
		{Name: "Gym", Icon: "gym"},
		{Name: "Pets Allowed", Icon: "pets"},
		{Name: "TV", Icon: "tv"},
		{Name: "Balcony", Icon: "balcony"},
		{Name: "Garden", Icon: "garden"},
		{Name: "Security System", Icon: "security"},
	}

	var count int64
	if err := gormDB.Model(&model.Amenity{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		log.Println("Seeding amenities...")
		if err := gormDB.Create(&catalog).Error; err != nil {
			return nil, err
		}
	}

	var all []model.Amenity
	if err := gormDB.Find(&all).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]uint, len(all))
	for _, a := range all {
		byName[a.Name] = a.ID
	}
	return byName, nil
}

// seedUsers inserts the demo accounts once and returns all demo users
// keyed by username.
func seedUsers(gormDB *gorm.DB) (map[string]uint, error) {
	var count int64
	if err := gormDB.Model(&model.User{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		log.Println("Seeding users...")
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		users := []model.User{
			{
				Username:     "owner1",
				Email:        "owner1@example.com",
				PasswordHash: string(hash),
				Name:         "Michael Chen",
				Avatar:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200&h=200&fit=crop",
				Bio:          "Property owner with multiple listings in San Francisco",
				Phone:        "+1 (555) 123-4567",
				Role:         model.RoleOwner,
			},
			{
				Username:     "owner2",
				Email:        "owner2@example.com",
				PasswordHash: string(hash),
				Name:         "Jessica Brown",
				Avatar:       "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=200&h=200&fit=crop",
				Bio:          "Real estate investor with properties in Oakland and San Jose",
				Phone:        "+1 (555) 234-5678",
				Role:         model.RoleOwner,
			},
			{
				Username:     "tenant1",
				Email:        "tenant1@example.com",
				PasswordHash: string(hash),
				Name:         "Sarah Johnson",
				Avatar:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop",
				Bio:          "Looking for a nice apartment in San Francisco",
				Phone:        "+1 (555) 345-6789",
				Role:         model.RoleTenant,
			},
			{
				Username:     "tenant2",
				Email:        "tenant2@example.com",
				PasswordHash: string(hash),
				Name:         "Jason Rodriguez",
				Avatar:       "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?w=200&h=200&fit=crop",
				Bio:          "Moving to the Bay Area, searching for a place to call home",
				Phone:        "+1 (555) 456-7890",
				Role:         model.RoleTenant,
			},
		}
		if err := gormDB.Create(&users).Error; err != nil {
			return nil, err
		}
	}

	var all []model.User
	if err := gormDB.Find(&all).Error; err != nil {
		return nil, err
	}
	byUsername := make(map[string]uint, len(all))
	for _, u := range all {
		byUsername[u.Username] = u.ID
	}
	return byUsername, nil
}

type seedListing struct {
	property  model.Property
	owner     string
	images    []model.PropertyImage
	amenities []string
}

// seedProperties inserts the sample listings with their images, amenity
// links, favorites, and opening messages. Skipped entirely when any
// property already exists.
func seedProperties(gormDB *gorm.DB, users map[string]uint, amenities map[string]uint) error {
	var count int64
	if err := gormDB.Model(&model.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Properties already seeded, skipping")
		return nil
	}
	if users["owner1"] == 0 || users["owner2"] == 0 {
		log.Println("Demo owners missing, skipping property seed")
		return nil
	}

	log.Println("Seeding properties...")

	listings := []seedListing{
		{
			owner: "owner1",
			property: model.Property{
				Title:       "Luxury Studio in Downtown",
				Description: "Beautiful studio apartment in the heart of downtown. Featuring modern furniture, high ceilings, and great natural lighting. Walking distance to restaurants, shops, and public transportation.",
				Type:        "studio",
				Address:     "123 Main St",
				City:        "San Francisco",
				State:       "CA",
				ZipCode:     "94105",
				Price:       decimal.NewFromInt(1450),
				Bedrooms:    1,
				Bathrooms:   decimal.NewFromInt(1),
				Area:        650,
				Available:   true,
				Latitude:    decimal.NewFromFloat(37.7897),
				Longitude:   decimal.NewFromFloat(-122.3972),
			},
			images: []model.PropertyImage{
				{URL: "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&h=600&fit=crop", IsPrimary: true},
				{URL: "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop"},
				{URL: "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop"},
			},
			amenities: []string{"WiFi", "Air Conditioning", "Kitchen", "Elevator"},
		},
		{
			owner: "owner1",
			property: model.Property{
				Title:       "Modern Family House with Garden",
				Description: "Spacious family home with a beautiful garden. Features 3 bedrooms, 2 bathrooms, a modern kitchen, and a cozy living area. Great neighborhood with excellent schools nearby.",
				Type:        "house",
				Address:     "456 Park Ave",
				City:        "Oakland",
				State:       "CA",
				ZipCode:     "94611",
				Price:       decimal.NewFromInt(2850),
				Bedrooms:    3,
				Bathrooms:   decimal.NewFromInt(2),
				Area:        1450,
				Available:   true,
				Latitude:    decimal.NewFromFloat(37.8122),
				Longitude:   decimal.NewFromFloat(-122.2583),
			},
			images: []model.PropertyImage{
				{URL: "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=800&h=600&fit=crop", IsPrimary: true},
				{URL: "https://images.unsplash.com/photo-1583608205776-bfd35f0d9f83?w=800&h=600&fit=crop"},
				{URL: "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800&h=600&fit=crop"},
			},
			amenities: []string{"WiFi", "Air Conditioning", "Heating", "Washing Machine", "Dryer", "Kitchen", "Parking", "Garden"},
		},
		{
			owner: "owner2",
			property: model.Property{
				Title:       "Cozy 1BR with City Views",
				Description: "Charming one-bedroom apartment with stunning city views. Features a renovated kitchen, modern bathroom, and spacious living area. Located in a quiet neighborhood with easy access to public transportation.",
				Type:        "apartment",
				Address:     "789 Broadway",
				City:        "San Jose",
				State:       "CA",
				ZipCode:     "95112",
				Price:       decimal.NewFromInt(1750),
				Bedrooms:    1,
				Bathrooms:   decimal.NewFromInt(1),
				Area:        750,
				Available:   true,
				Latitude:    decimal.NewFromFloat(37.3359),
				Longitude:   decimal.NewFromFloat(-121.8914),
			},
			images: []model.PropertyImage{
				{URL: "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop", IsPrimary: true},
				{URL: "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop"},
				{URL: "https://images.unsplash.com/photo-1536376072261-38c75010e6c9?w=800&h=600&fit=crop"},
			},
			amenities: []string{"WiFi", "Heating", "Kitchen", "TV", "Balcony"},
		},
		{
			owner: "owner2",
			property: model.Property{
				Title:       "Luxury Penthouse Suite",
				Description: "Exquisite penthouse apartment with panoramic views. Features 2 spacious bedrooms, 2 luxury bathrooms, a gourmet kitchen, and a large balcony. Located in a premier building with 24/7 security, a fitness center, and a rooftop pool.",
				Type:        "apartment",
				Address:     "101 Market St",
				City:        "San Francisco",
				State:       "CA",
				ZipCode:     "94103",
				Price:       decimal.NewFromInt(3200),
				Bedrooms:    2,
				Bathrooms:   decimal.NewFromInt(2),
				Area:        1200,
				Available:   true,
				Latitude:    decimal.NewFromFloat(37.7937),
				Longitude:   decimal.NewFromFloat(-122.3965),
			},
			images: []model.PropertyImage{
				{URL: "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop", IsPrimary: true},
				{URL: "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800&h=600&fit=crop"},
				{URL: "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&h=600&fit=crop"},
			},
			amenities: []string{"WiFi", "Air Conditioning", "Heating", "Kitchen", "Elevator", "Pool", "Gym", "TV", "Balcony", "Security System"},
		},
	}

	propertyIDs := make([]uint, len(listings))
	err := gormDB.Transaction(func(tx *gorm.DB) error {
		for i, listing := range listings {
			property := listing.property
			property.OwnerID = users[listing.owner]
			if err := tx.Create(&property).Error; err != nil {
				return err
			}
			propertyIDs[i] = property.ID

			for _, image := range listing.images {
				image.PropertyID = property.ID
				if err := tx.Create(&image).Error; err != nil {
					return err
				}
			}
			for _, name := range listing.amenities {
				amenityID, ok := amenities[name]
				if !ok {
					log.Printf("Unknown amenity %q, skipping", name)
					continue
				}
				link := model.PropertyAmenity{PropertyID: property.ID, AmenityID: amenityID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}

		if users["tenant1"] != 0 && users["tenant2"] != 0 {
			favorites := []model.Favorite{
				{UserID: users["tenant1"], PropertyID: propertyIDs[2]},
				{UserID: users["tenant2"], PropertyID: propertyIDs[0]},
				{UserID: users["tenant2"], PropertyID: propertyIDs[3]},
			}
			if err := tx.Create(&favorites).Error; err != nil {
				return err
			}

			messages := []model.Message{
				{
					SenderID:   users["tenant1"],
					ReceiverID: users["owner2"],
					PropertyID: propertyIDs[2],
					Content:    "Hi, I'm interested in your apartment. Is it still available?",
				},
				{
					SenderID:   users["owner2"],
					ReceiverID: users["tenant1"],
					PropertyID: propertyIDs[2],
					Content:    "Yes, it's still available. Would you like to schedule a viewing?",
				},
				{
					SenderID:   users["tenant2"],
					ReceiverID: users["owner1"],
					PropertyID: propertyIDs[0],
					Content:    "Hello, could you tell me more about the studio? Is parking included?",
				},
			}
			if err := tx.Create(&messages).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded %d properties", len(listings))
	return nil
}
