package backend

import (
	"time"

	"shamba/internal/domain/entity"
)

// catalogFixtures is the marketplace catalog served by GetProducts. Prices
// are in Kenyan shillings, matching the target market.
var catalogFixtures = []entity.Product{
	{
		ID:          "prod-1",
		Name:        "Hybrid Maize Seeds - H614",
		Category:    entity.CategorySeeds,
		Description: "High-yield hybrid maize seeds suitable for various climates. Drought-resistant and disease-tolerant.",
		Price:       2500,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/22c55e/ffffff?text=Maize+Seeds",
		InStock:     true,
		Rating:      4.5,
		Reviews:     128,
	},
	{
		ID:          "prod-2",
		Name:        "Organic Pesticide - BioGuard",
		Category:    entity.CategoryPesticides,
		Description: "Eco-friendly pesticide for controlling fall armyworm and other pests. Safe for crops and environment.",
		Price:       1800,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/16a34a/ffffff?text=Pesticide",
		InStock:     true,
		Rating:      4.7,
		Reviews:     95,
	},
	{
		ID:          "prod-3",
		Name:        "Copper Fungicide - CropShield",
		Category:    entity.CategoryPesticides,
		Description: "Effective copper-based fungicide for treating blight, rust, and other fungal diseases.",
		Price:       1500,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/15803d/ffffff?text=Fungicide",
		InStock:     true,
		Rating:      4.6,
		Reviews:     73,
	},
	{
		ID:          "prod-4",
		Name:        "NPK Fertilizer 23-23-0",
		Category:    entity.CategoryFertilizers,
		Description: "Balanced NPK fertilizer for optimal crop growth. Suitable for maize, wheat, and vegetables.",
		Price:       3200,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/166534/ffffff?text=NPK+Fertilizer",
		InStock:     true,
		Rating:      4.8,
		Reviews:     156,
	},
	{
		ID:          "prod-5",
		Name:        "Tomato Seeds - Money Maker",
		Category:    entity.CategorySeeds,
		Description: "Popular tomato variety with excellent yield. Disease-resistant and suitable for greenhouse or open field.",
		Price:       800,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/22c55e/ffffff?text=Tomato+Seeds",
		InStock:     true,
		Rating:      4.4,
		Reviews:     89,
	},
	{
		ID:          "prod-6",
		Name:        "Garden Hoe - Heavy Duty",
		Category:    entity.CategoryTools,
		Description: "Durable steel garden hoe with wooden handle. Perfect for weeding and soil preparation.",
		Price:       1200,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/14532d/ffffff?text=Garden+Hoe",
		InStock:     true,
		Rating:      4.3,
		Reviews:     45,
	},
	{
		ID:          "prod-7",
		Name:        "Organic Compost - 50kg",
		Category:    entity.CategoryFertilizers,
		Description: "Premium organic compost for improving soil fertility. Rich in nutrients and beneficial microorganisms.",
		Price:       1000,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/166534/ffffff?text=Compost",
		InStock:     false,
		Rating:      4.9,
		Reviews:     203,
	},
	{
		ID:          "prod-8",
		Name:        "Sprayer Pump - 20L",
		Category:    entity.CategoryEquipment,
		Description: "Manual knapsack sprayer for applying pesticides and fertilizers. Adjustable nozzle and comfortable straps.",
		Price:       4500,
		Currency:    "KES",
		ImageURL:    "https://via.placeholder.com/300x300/15803d/ffffff?text=Sprayer",
		InStock:     true,
		Rating:      4.5,
		Reviews:     67,
	},
}

// diagnosisFixture is one canned analysis outcome; the picker chooses among
// them per request.
type diagnosisFixture struct {
	cropName            string
	issue               string
	severity            entity.Severity
	confidence          float64
	advice              string
	recommendedProducts []string
}

var diagnosisFixtures = []diagnosisFixture{
	{
		cropName:            "Tomato",
		issue:               "Early Blight (Alternaria solani)",
		severity:            entity.SeverityMedium,
		confidence:          0.87,
		advice:              "Remove affected leaves immediately. Apply copper-based fungicide. Ensure proper spacing between plants for air circulation. Water at the base of plants, not overhead.",
		recommendedProducts: []string{"prod-1", "prod-3", "prod-5"},
	},
	{
		cropName:            "Maize",
		issue:               "Fall Armyworm Infestation",
		severity:            entity.SeverityHigh,
		confidence:          0.92,
		advice:              "Apply recommended pesticides early morning or late evening. Scout fields regularly. Remove and destroy egg masses. Consider biological control agents.",
		recommendedProducts: []string{"prod-2", "prod-4"},
	},
	{
		cropName:            "Coffee",
		issue:               "Coffee Berry Disease",
		severity:            entity.SeverityCritical,
		confidence:          0.89,
		advice:              "Immediate action required. Remove and burn infected berries. Apply copper-based fungicide. Improve drainage and reduce humidity around plants.",
		recommendedProducts: []string{"prod-3", "prod-6"},
	},
	{
		cropName:            "Beans",
		issue:               "Healthy - No Issues Detected",
		severity:            entity.SeverityLow,
		confidence:          0.95,
		advice:              "Your crop appears healthy! Continue with regular care: adequate watering, proper fertilization, and regular monitoring for pests.",
		recommendedProducts: []string{"prod-1", "prod-7"},
	},
}

// weatherFixture builds the seven-day outlook relative to now.
func weatherFixture(location entity.Location, now time.Time) entity.WeatherData {
	locationName := location.Address
	if locationName == "" {
		locationName = "Nairobi, Kenya"
	}

	day := 24 * time.Hour
	forecast := []entity.ForecastDay{
		{Date: now, MinTemp: 18, MaxTemp: 26, Condition: "Partly Cloudy", Icon: "02d", Precipitation: 10},
		{Date: now.Add(1 * day), MinTemp: 19, MaxTemp: 27, Condition: "Sunny", Icon: "01d", Precipitation: 5},
		{Date: now.Add(2 * day), MinTemp: 17, MaxTemp: 25, Condition: "Light Rain", Icon: "10d", Precipitation: 60},
		{Date: now.Add(3 * day), MinTemp: 16, MaxTemp: 23, Condition: "Rainy", Icon: "09d", Precipitation: 80},
		{Date: now.Add(4 * day), MinTemp: 18, MaxTemp: 24, Condition: "Cloudy", Icon: "03d", Precipitation: 30},
		{Date: now.Add(5 * day), MinTemp: 19, MaxTemp: 26, Condition: "Partly Cloudy", Icon: "02d", Precipitation: 15},
		{Date: now.Add(6 * day), MinTemp: 20, MaxTemp: 28, Condition: "Sunny", Icon: "01d", Precipitation: 5},
	}

	return entity.WeatherData{
		Location: locationName,
		Current: entity.CurrentConditions{
			Temperature: 24,
			Humidity:    65,
			WindSpeed:   12,
			Condition:   "Partly Cloudy",
			Icon:        "02d",
		},
		Forecast: forecast,
		Alerts: []entity.WeatherAlert{
			{
				ID:          "alert-1",
				Type:        entity.AlertWarning,
				Title:       "Heavy Rain Expected",
				Description: "Heavy rainfall expected in the next 48 hours. Ensure proper drainage in your fields.",
				Severity:    entity.SeverityMedium,
				StartTime:   now.Add(2 * day),
				EndTime:     now.Add(3 * day),
			},
		},
		FarmingTips: []string{
			"Good weather for planting this week",
			"Prepare drainage systems for upcoming rain",
			"Monitor crops for fungal diseases after rain",
			"Apply fertilizer before the rain for better absorption",
		},
	}
}

// seededOrders is the order history shown before the user places anything.
func seededOrders(userID string, now time.Time) []entity.Order {
	week := 7 * 24 * time.Hour

	return []entity.Order{
		{
			ID:     "order-1",
			UserID: userID,
			Items: []entity.CartItem{
				{Product: catalogFixtures[0], Quantity: 2},
			},
			TotalAmount:     catalogFixtures[0].Price * 2,
			Status:          entity.OrderStatusDelivered,
			CreatedAt:       now.Add(-week),
			DeliveryAddress: "Nairobi, Kenya",
			PaymentMethod:   "M-Pesa",
		},
		{
			ID:     "order-2",
			UserID: userID,
			Items: []entity.CartItem{
				{Product: catalogFixtures[3], Quantity: 1},
			},
			TotalAmount:     catalogFixtures[3].Price,
			Status:          entity.OrderStatusProcessing,
			CreatedAt:       now.Add(-2 * 24 * time.Hour),
			DeliveryAddress: "Nakuru, Kenya",
			PaymentMethod:   "M-Pesa",
		},
	}
}

// seededDiagnosisHistory is the diagnosis history shown on first load.
func seededDiagnosisHistory(now time.Time) []entity.DiagnosisResult {
	day := 24 * time.Hour

	return []entity.DiagnosisResult{
		{
			ID:                  "diag-1",
			CropName:            "Tomato",
			Issue:               "Early Blight",
			Severity:            entity.SeverityMedium,
			Confidence:          0.87,
			Advice:              "Apply fungicide and remove affected leaves.",
			RecommendedProducts: []string{"prod-1", "prod-3"},
			ImageURI:            "https://via.placeholder.com/300",
			CreatedAt:           now.Add(-day),
		},
		{
			ID:                  "diag-2",
			CropName:            "Maize",
			Issue:               "Fall Armyworm",
			Severity:            entity.SeverityHigh,
			Confidence:          0.92,
			Advice:              "Apply pesticides and monitor regularly.",
			RecommendedProducts: []string{"prod-2", "prod-4"},
			ImageURI:            "https://via.placeholder.com/300",
			CreatedAt:           now.Add(-2 * day),
		},
	}
}
