package categories

var ordered = []Config{
	{
		Key:            "kirana",
		Label:          "Kirana Store",
		Icon:           "shopping-basket",
		PrimaryColor:   "#16a34a",
		SecondaryColor: "#dcfce7",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Daily essentials, delivered from your neighbourhood store",
		SampleProducts: []SampleProduct{
			{Name: "Aashirvaad Atta 5kg", Price: "260", Unit: "pack"},
			{Name: "Tata Salt 1kg", Price: "28", Unit: "pack"},
			{Name: "Fortune Sunflower Oil 1L", Price: "145", Unit: "bottle"},
		},
	},
	{
		Key:            "bakery",
		Label:          "Bakery",
		Icon:           "cake",
		PrimaryColor:   "#d97706",
		SecondaryColor: "#fef3c7",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Fresh bakes every morning",
		SampleProducts: []SampleProduct{
			{Name: "Chocolate Truffle Cake 500g", Price: "450", Unit: "piece"},
			{Name: "Whole Wheat Bread", Price: "45", Unit: "loaf"},
			{Name: "Butter Croissant", Price: "60", Unit: "piece"},
		},
	},
	{
		Key:            "dairy",
		Label:          "Dairy & Milk Products",
		Icon:           "milk",
		PrimaryColor:   "#0284c7",
		SecondaryColor: "#e0f2fe",
		ProductNoun:    "product",
		ProductNounPl:  "products",
		Tagline:        "Farm-fresh dairy at your doorstep",
		SampleProducts: []SampleProduct{
			{Name: "Full Cream Milk 1L", Price: "66", Unit: "litre"},
			{Name: "Fresh Paneer 250g", Price: "95", Unit: "pack"},
			{Name: "Curd 500g", Price: "35", Unit: "cup"},
		},
	},
	{
		Key:            "clothing",
		Label:          "Clothing & Apparel",
		Icon:           "shirt",
		PrimaryColor:   "#9333ea",
		SecondaryColor: "#f3e8ff",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Styles for every occasion",
		SampleProducts: []SampleProduct{
			{Name: "Cotton Kurta", Price: "799", Unit: "piece"},
			{Name: "Slim Fit Jeans", Price: "1299", Unit: "piece"},
			{Name: "Printed T-Shirt", Price: "399", Unit: "piece"},
		},
	},
	{
		Key:            "cosmetic",
		Label:          "Cosmetics & Beauty",
		Icon:           "sparkles",
		PrimaryColor:   "#db2777",
		SecondaryColor: "#fce7f3",
		ProductNoun:    "product",
		ProductNounPl:  "products",
		Tagline:        "Beauty picks your customers love",
		SampleProducts: []SampleProduct{
			{Name: "Matte Lipstick", Price: "299", Unit: "piece"},
			{Name: "Vitamin C Face Serum 30ml", Price: "549", Unit: "bottle"},
			{Name: "Aloe Vera Gel 150ml", Price: "180", Unit: "tube"},
		},
	},
	{
		Key:            "mobile",
		Label:          "Mobile & Accessories",
		Icon:           "smartphone",
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#dbeafe",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Phones, covers, chargers and more",
		SampleProducts: []SampleProduct{
			{Name: "USB-C Fast Charger 25W", Price: "899", Unit: "piece"},
			{Name: "Tempered Glass Screen Guard", Price: "199", Unit: "piece"},
			{Name: "Wireless Earbuds", Price: "1499", Unit: "pair"},
		},
	},
	{
		Key:            "fruits",
		Label:          "Fruits & Vegetables",
		Icon:           "apple",
		PrimaryColor:   "#65a30d",
		SecondaryColor: "#ecfccb",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Fresh from the mandi, every day",
		SampleProducts: []SampleProduct{
			{Name: "Bananas", Price: "50", Unit: "dozen"},
			{Name: "Tomatoes", Price: "40", Unit: "kg"},
			{Name: "Onions", Price: "35", Unit: "kg"},
		},
	},
	{
		Key:            "electrical",
		Label:          "Electrical & Hardware",
		Icon:           "plug",
		PrimaryColor:   "#ca8a04",
		SecondaryColor: "#fef9c3",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Everything for your home wiring needs",
		SampleProducts: []SampleProduct{
			{Name: "LED Bulb 9W", Price: "99", Unit: "piece"},
			{Name: "Extension Board 4 Socket", Price: "349", Unit: "piece"},
			{Name: "Insulation Tape", Price: "25", Unit: "roll"},
		},
	},
	{
		Key:            "pharmacy",
		Label:          "Pharmacy & Medical",
		Icon:           "pill",
		PrimaryColor:   "#dc2626",
		SecondaryColor: "#fee2e2",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Medicines and wellness essentials",
		SampleProducts: []SampleProduct{
			{Name: "Paracetamol 500mg Strip", Price: "30", Unit: "strip"},
			{Name: "Digital Thermometer", Price: "249", Unit: "piece"},
			{Name: "Hand Sanitizer 100ml", Price: "75", Unit: "bottle"},
		},
	},
	{
		Key:            "stationery",
		Label:          "Stationery & Books",
		Icon:           "pencil",
		PrimaryColor:   "#4f46e5",
		SecondaryColor: "#e0e7ff",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "School and office supplies under one roof",
		SampleProducts: []SampleProduct{
			{Name: "Classmate Notebook 200 pages", Price: "60", Unit: "piece"},
			{Name: "Ball Pen Blue (Pack of 5)", Price: "50", Unit: "pack"},
			{Name: "A4 Paper Ream", Price: "280", Unit: "ream"},
		},
	},
	{
		Key:            "hardware",
		Label:          "Hardware & Tools",
		Icon:           "wrench",
		PrimaryColor:   "#57534e",
		SecondaryColor: "#f5f5f4",
		ProductNoun:    "item",
		ProductNounPl:  "items",
		Tagline:        "Tools and fittings for every job",
		SampleProducts: []SampleProduct{
			{Name: "Hammer 500g", Price: "220", Unit: "piece"},
			{Name: "Screwdriver Set", Price: "350", Unit: "set"},
			{Name: "PVC Pipe 1 inch", Price: "120", Unit: "metre"},
		},
	},
}

var fallback = Config{
	Key:            "other",
	Label:          "General Store",
	Icon:           "store",
	PrimaryColor:   "#0f766e",
	SecondaryColor: "#ccfbf1",
	ProductNoun:    "item",
	ProductNounPl:  "items",
	Tagline:        "Everything your customers need",
	SampleProducts: []SampleProduct{
		{Name: "Sample Product", Price: "100", Unit: "piece"},
	},
}

var byKey = func() map[string]Config {
	m := make(map[string]Config, len(ordered))
	for _, cfg := range ordered {
		m[cfg.Key] = cfg
	}
	return m
}()
