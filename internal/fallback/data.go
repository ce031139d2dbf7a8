package fallback

import "github.com/bilgisen/uknews/internal/models"

func builtinSnapshot() Snapshot {
	politics := models.Category{ID: 1, NameEN: "Politics", NameHI: "राजनीति", CreatedAt: "2025-01-01T00:00:00Z"}
	education := models.Category{ID: 2, NameEN: "Education", NameHI: "शिक्षा", CreatedAt: "2025-01-01T00:00:00Z"}
	tourism := models.Category{ID: 3, NameEN: "Tourism", NameHI: "पर्यटन", CreatedAt: "2025-01-01T00:00:00Z"}
	health := models.Category{ID: 6, NameEN: "Health", NameHI: "स्वास्थ्य", CreatedAt: "2025-01-01T00:00:00Z"}

	city := func(hi, en string) *models.CityRef {
		return &models.CityRef{Name: models.Text(hi, en)}
	}
	cat := func(c models.Category) *models.Category {
		return &c
	}

	return Snapshot{
		Articles: []models.Article{
			{
				Slug:        "uttarakhand-tourism-boost",
				Title:       models.Text("उत्तराखंड के पहाड़ों में नया पर्यटन केंद्र, पर्यटकों की संख्या बढ़ने की उम्मीद", "New tourism center in Uttarakhand mountains, expected increase in tourist numbers"),
				Description: "राज्य सरकार ने उत्तराखंड के पहाड़ी क्षेत्रों में नए पर्यटन केंद्र विकसित करने की योजना की घोषणा की है।",
				ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600",
				Category:    cat(tourism),
				City:        city("देहरादून", "Dehradun"),
				PublishedAt: "2025-01-24T10:45:33.443768Z",
				HoursAgo:    models.Hours(2),
			},
			{
				Slug:        "char-dham-yatra-record",
				Title:       models.Text("चारधाम यात्रा: इस साल रिकॉर्ड तीर्थयात्रियों की संख्या", "Char Dham Yatra: Record number of pilgrims this year"),
				Description: "इस साल की चारधाम यात्रा में रिकॉर्ड संख्या में तीर्थयात्रियों ने पवित्र स्थानों का दर्शन किया है।",
				ImageURL:    "https://images.unsplash.com/photo-1544735716-392fe2489ffa?w=800&h=600",
				Category:    cat(tourism),
				City:        city("ऋषिकेश", "Rishikesh"),
				PublishedAt: "2025-01-24T08:30:33.443768Z",
				HoursAgo:    models.Hours(4),
			},
			{
				Slug:        "uttarakhand-education-policy",
				Title:       models.Text("उत्तराखंड के स्कूलों में नई शिक्षा नीति लागू, छात्रों में उत्साह", "New education policy implemented in Uttarakhand schools, enthusiasm among students"),
				Description: "राज्य के सभी सरकारी स्कूलों में नई शिक्षा नीति लागू की गई है।",
				ImageURL:    "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=400&h=300",
				Category:    cat(education),
				City:        city("देहरादून", "Dehradun"),
				PublishedAt: "2025-01-24T05:00:00Z",
				HoursAgo:    models.Hours(8),
				Views:       150,
			},
			{
				Slug:        "mussoorie-tourist-rush",
				Title:       models.Text("मसूरी में पर्यटकों की भीड़, होटल व्यवसायियों ने की रिकॉर्ड कमाई", "Tourist rush in Mussoorie, hotel businessmen make record earnings"),
				Description: "गर्मियों की छुट्टियों में मसूरी में पर्यटकों की भारी भीड़ देखी जा रही है।",
				ImageURL:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300",
				Category:    cat(tourism),
				City:        city("मसूरी", "Mussoorie"),
				PublishedAt: "2025-01-24T03:00:00Z",
				HoursAgo:    models.Hours(10),
				Views:       230,
			},
			{
				Slug:        "haridwar-election-update",
				Title:       models.Text("हरिद्वार में चुनावी तैयारियां तेज, प्रशासन ने जारी की गाइडलाइन", "Election preparations intensify in Haridwar, administration issues guidelines"),
				Description: "आगामी चुनावों को लेकर हरिद्वार में तैयारियां तेज हो गई हैं।",
				ImageURL:    "https://images.unsplash.com/photo-1529107386315-e1a2ed48a620?w=400&h=300",
				Category:    cat(politics),
				City:        city("हरिद्वार", "Haridwar"),
				PublishedAt: "2025-01-23T20:00:00Z",
				HoursAgo:    models.Hours(17),
				Views:       180,
			},
			{
				Slug:        "nainital-health-initiative",
				Title:       models.Text("नैनीताल में स्वास्थ्य सेवाओं का विस्तार, नई योजना की शुरुआत", "Expansion of health services in Nainital, new scheme launched"),
				Description: "नैनीताल में स्वास्थ्य सेवाओं के विस्तार के लिए नई योजना शुरू की गई है।",
				ImageURL:    "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=400&h=300",
				Category:    cat(health),
				City:        city("नैनीताल", "Nainital"),
				PublishedAt: "2025-01-23T18:00:00Z",
				HoursAgo:    models.Hours(19),
				Views:       95,
			},
		},
		Categories: []models.Category{
			politics,
			education,
			tourism,
			{ID: 4, NameEN: "Business", NameHI: "व्यापार", CreatedAt: "2025-01-01T00:00:00Z"},
			{ID: 5, NameEN: "Sports", NameHI: "खेल", CreatedAt: "2025-01-01T00:00:00Z"},
		},
		Cities: []models.City{
			{ID: 1, Name: models.Text("देहरादून", "Dehradun"), State: "Uttarakhand"},
			{ID: 2, Name: models.Text("हरिद्वार", "Haridwar"), State: "Uttarakhand"},
			{ID: 3, Name: models.Text("ऋषिकेश", "Rishikesh"), State: "Uttarakhand"},
			{ID: 4, Name: models.Text("नैनीताल", "Nainital"), State: "Uttarakhand"},
			{ID: 5, Name: models.Text("मसूरी", "Mussoorie"), State: "Uttarakhand"},
		},
		Trending: []models.TrendingItem{
			{Slug: "trending-0", Title: models.Text("उत्तराखंड में नई पर्यटन नीति की घोषणा, स्थानीय व्यवसायों को मिलेगा बढ़ावा", "New tourism policy announced in Uttarakhand, local businesses to get boost")},
			{Slug: "trending-1", Title: models.Text("चारधाम यात्रा: इस साल रिकॉर्ड तीर्थयात्रियों की संख्या, व्यापारियों में खुशी", "Char Dham Yatra: Record number of pilgrims this year, traders rejoice")},
			{Slug: "trending-2", Title: models.Text("देहरादून में नया आईटी पार्क, हजारों युवाओं को मिलेगा रोजगार", "New IT park in Dehradun, thousands of youth to get employment")},
			{Slug: "trending-3", Title: models.Text("उत्तराखंड के स्कूलों में नई शिक्षा नीति लागू, छात्रों में उत्साह", "New education policy implemented in Uttarakhand schools, enthusiasm among students")},
			{Slug: "trending-4", Title: models.Text("मसूरी में पर्यटकों की भीड़, होटल व्यवसायियों ने की रिकॉर्ड कमाई", "Tourist rush in Mussoorie, hotel businessmen make record earnings")},
		},
	}
}
