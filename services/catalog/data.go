package catalog

import "homezy/models"

var homestays = []models.Homestay{
	{ID: 1, Title: "Eco Villa Retreat", Location: "Da Lat, Vietnam", Price: 1500000, Rating: 4.9, Category: "Villa",
		Image: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=2070&q=80"},
	{ID: 2, Title: "Modern Beachfront Condo", Location: "Da Nang, Vietnam", Price: 2200000, Rating: 4.8, Category: "Apartment",
		Image: "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=2070&q=80"},
	{ID: 3, Title: "Traditional Wooden House", Location: "Hoi An, Vietnam", Price: 900000, Rating: 4.7, Category: "House",
		Image: "https://images.unsplash.com/photo-1518780664697-55e3ad937233?auto=format&fit=crop&w=1665&q=80"},
	{ID: 4, Title: "Skyline Luxury Penthouse", Location: "Ho Chi Minh City, Vietnam", Price: 3500000, Rating: 5.0, Category: "Penthouse",
		Image: "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&w=1980&q=80"},
	{ID: 5, Title: "Mountain View Cabin", Location: "Sapa, Vietnam", Price: 1200000, Rating: 4.8, Category: "Cabin",
		Image: "https://images.unsplash.com/photo-1449156493391-d2cfa28e468b?auto=format&fit=crop&w=2070&q=80"},
	{ID: 6, Title: "Luxury Pool Villa", Location: "Phu Quoc, Vietnam", Price: 4500000, Rating: 4.9, Category: "Villa",
		Image: "https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=2071&q=80"},
}

var destinations = []models.Destination{
	{ID: 1, Name: "Hoi An", Properties: 1240, Size: "large",
		Image: "https://images.unsplash.com/photo-1528127269322-539801943592?auto=format&fit=crop&w=2070&q=80"},
	{ID: 2, Name: "Da Lat", Properties: 856, Size: "medium",
		Image: "https://images.unsplash.com/photo-1558619819-3382753303c6?auto=format&fit=crop&w=2070&q=80"},
	{ID: 3, Name: "Ho Chi Minh City", Properties: 2100, Size: "medium",
		Image: "https://images.unsplash.com/photo-1583417319070-4a69db38a482?auto=format&fit=crop&w=2070&q=80"},
	{ID: 4, Name: "Da Nang", Properties: 1540, Size: "wide",
		Image: "https://images.unsplash.com/photo-1559592413-7cec4d0cae2b?auto=format&fit=crop&w=2070&q=80"},
}
