package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ID(t *testing.T) {
	assert.Equal(t, 7, Record{"id": 7}.ID())
	assert.Equal(t, 7, Record{"id": float64(7)}.ID()) // JSON decode shape
	assert.Equal(t, 0, Record{"id": "7"}.ID())
	assert.Equal(t, 0, Record{}.ID())
}

func TestRecord_CloneIsolatesCaller(t *testing.T) {
	orig := Record{"id": 1, "brand": "Toyota"}
	clone := orig.Clone()
	clone["brand"] = "Honda"

	assert.Equal(t, "Toyota", orig["brand"])
}

func TestValidate_CompleteRecord(t *testing.T) {
	rec := Record{"brand": "Toyota", "model": "Camry", "year": 2020, "price_usd": 25000}
	assert.NoError(t, Validate(KindCar, rec))
}

func TestValidate_MissingFieldNamesFullRequiredSet(t *testing.T) {
	err := Validate(KindCar, Record{"brand": "Toyota"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields: brand, model, year, price_usd", err.Error())
}

func TestValidate_PerKindRequirements(t *testing.T) {
	assert.Error(t, Validate(KindCity, Record{"name": "Moscow"}))
	assert.NoError(t, Validate(KindCity, Record{"name": "Moscow", "delivery_days": 14, "delivery_cost": 1500}))

	assert.Error(t, Validate(KindDocument, Record{"name": "Sales contract"}))
	assert.NoError(t, Validate(KindDocument, Record{"category": "purchase", "name": "Sales contract"}))
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Car", KindCar.Label())
	assert.Equal(t, "City", KindCity.Label())
	assert.Equal(t, "Document", KindDocument.Label())
}

func TestCarFromRecord(t *testing.T) {
	car := CarFromRecord(Record{
		"id":            float64(3),
		"brand":         "Toyota",
		"model":         "Camry",
		"year":          float64(2022),
		"price_usd":     float64(28000),
		"engine_volume": 2.5,
		"horsepower":    float64(200),
	})

	assert.Equal(t, 3, car.ID)
	assert.Equal(t, "Toyota", car.Brand)
	assert.Equal(t, 2022, car.Year)
	assert.Equal(t, 28000.0, car.PriceUSD)
	assert.Equal(t, 2.5, car.EngineVolume)
	assert.Equal(t, 200, car.Horsepower)
}

func TestCityFromRecord(t *testing.T) {
	city := CityFromRecord(Record{
		"id":            float64(1),
		"name":          "Moscow",
		"delivery_days": float64(14),
		"delivery_cost": float64(1500),
	})

	assert.Equal(t, 1, city.ID)
	assert.Equal(t, "Moscow", city.Name)
	assert.Equal(t, 14, city.DeliveryDays)
	assert.Equal(t, 1500.0, city.DeliveryCost)
}
