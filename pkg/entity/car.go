package entity

// Car is the typed view of a car record used by the pricing engine.
type Car struct {
	ID            int     `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	EngineVolume  float64 `json:"engine_volume"`
	Horsepower    int     `json:"horsepower"`
	SteeringWheel string  `json:"steering_wheel,omitempty"`
	FuelType      string  `json:"fuel_type,omitempty"`
	PriceUSD      float64 `json:"price_usd"`
	Country       string  `json:"country,omitempty"`
}

// CarFromRecord decodes the fields pricing needs. Absent or
// mistyped fields decode as zero values, as the original file format
// has no schema enforcement.
func CarFromRecord(rec Record) Car {
	c := Car{ID: rec.ID()}
	c.Brand, _ = AsString(rec["brand"])
	c.Model, _ = AsString(rec["model"])
	c.Year, _ = AsInt(rec["year"])
	c.EngineVolume, _ = AsFloat(rec["engine_volume"])
	c.Horsepower, _ = AsInt(rec["horsepower"])
	c.SteeringWheel, _ = AsString(rec["steering_wheel"])
	c.FuelType, _ = AsString(rec["fuel_type"])
	c.PriceUSD, _ = AsFloat(rec["price_usd"])
	c.Country, _ = AsString(rec["country"])
	return c
}

// City is the typed view of a city record.
type City struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	DeliveryDays int     `json:"delivery_days"`
	DeliveryCost float64 `json:"delivery_cost"`
}

// CityFromRecord decodes the fields pricing needs.
func CityFromRecord(rec Record) City {
	c := City{ID: rec.ID()}
	c.Name, _ = AsString(rec["name"])
	c.DeliveryDays, _ = AsInt(rec["delivery_days"])
	c.DeliveryCost, _ = AsFloat(rec["delivery_cost"])
	return c
}

// Document categories.
const (
	DocumentCategoryPurchase     = "purchase"
	DocumentCategoryRegistration = "registration"
)

// Document is the typed view of a document record.
type Document struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}
