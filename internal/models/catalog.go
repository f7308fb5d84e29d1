package models

// DefaultCatalog returns the seed products used to populate an empty catalog
// store. Seeding is one-time and not part of ongoing request handling.
func DefaultCatalog() []Product {
	return []Product{
		{Name: "Wireless Headphones", Price: 79.99, Description: "Premium sound quality", Image: "🎧", Stock: 50},
		{Name: "Smart Watch", Price: 199.99, Description: "Track your fitness", Image: "⌚", Stock: 30},
		{Name: "Laptop Stand", Price: 49.99, Description: "Ergonomic design", Image: "💻", Stock: 100},
		{Name: "USB-C Cable", Price: 12.99, Description: "Fast charging", Image: "🔌", Stock: 200},
		{Name: "Wireless Mouse", Price: 29.99, Description: "Smooth scrolling", Image: "🖱️", Stock: 75},
		{Name: "Mechanical Keyboard", Price: 89.99, Description: "RGB backlight", Image: "⌨️", Stock: 40},
		{Name: "Desk Lamp", Price: 39.99, Description: "Adjustable brightness", Image: "💡", Stock: 60},
		{Name: "Phone Case", Price: 19.99, Description: "Protective & stylish", Image: "📱", Stock: 150},
	}
}
