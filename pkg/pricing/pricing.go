// Package pricing computes the full import cost of a car delivered to
// a city: customs duty, utilization fee, fixed clearance and broker
// fees, and delivery.
//
// Estimate is a pure function. The same car, city and rates always
// produce the same result; the vehicle age is derived from the fixed
// CurrentYear in Rates, never from the wall clock.
package pricing

import "github.com/YoDarkol23/Absolute-Service/pkg/entity"

// Rates carries the exchange rates and the fixed reference year.
type Rates struct {
	USDToRUB    float64
	EURToRUB    float64
	CurrentYear int
}

// Fixed ruble fees charged on every import.
const (
	CustomsClearanceRUB = 70000.0
	BrokerFeeRUB        = 60000.0
)

// Duty method labels included in the breakdown.
const (
	DutyMethodByPrice  = "by price (age < 3 years)"
	DutyMethodByVolume = "by engine volume (age >= 3 years)"
)

// Utilization fee type labels.
const (
	FeeTypePreferential = "preferential (<=160 hp and <=3.0 L)"
	FeeTypeFull         = "full"
)

// CarBreakdown describes the priced vehicle.
type CarBreakdown struct {
	ID              int     `json:"id"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	AgeYears        int     `json:"age_years"`
	Horsepower      int     `json:"horsepower"`
	EngineVolume    float64 `json:"engine_volume"`
	EngineVolumeCm3 int     `json:"engine_volume_cm3"`
	PriceUSD        float64 `json:"price_usd"`
	PriceEUR        float64 `json:"price_eur"`
	PriceRUB        float64 `json:"price_rub"`
}

// CityBreakdown describes the destination city.
type CityBreakdown struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	DeliveryDays    int     `json:"delivery_days"`
	DeliveryCostUSD float64 `json:"delivery_cost_usd"`
	DeliveryCostRUB float64 `json:"delivery_cost_rub"`
}

// CustomsBreakdown itemizes the duty and fees.
type CustomsBreakdown struct {
	Method              string  `json:"method"`
	DutyEUR             float64 `json:"duty_eur"`
	DutyRUB             float64 `json:"duty_rub"`
	UtilizationFeeType  string  `json:"utilization_fee_type"`
	UtilizationFeeRUB   float64 `json:"utilization_fee_rub"`
	CustomsClearanceRUB float64 `json:"customs_clearance_rub"`
	BrokerFeeRUB        float64 `json:"broker_fee_rub"`
}

// Calculation carries every term of the total.
type Calculation struct {
	CarPriceRUB         float64 `json:"car_price_rub"`
	CustomsDutyRUB      float64 `json:"customs_duty_rub"`
	UtilizationFeeRUB   float64 `json:"utilization_fee_rub"`
	CustomsClearanceRUB float64 `json:"customs_clearance_rub"`
	BrokerFeeRUB        float64 `json:"broker_fee_rub"`
	CityDeliveryCostUSD float64 `json:"city_delivery_cost_usd"`
	CityDeliveryCostRUB float64 `json:"city_delivery_cost_rub"`
	TotalCostRUB        float64 `json:"total_cost_rub"`
	TotalCostUSD        float64 `json:"total_cost_usd"`
}

// ExchangeRates echoes the rates an estimate was computed with.
type ExchangeRates struct {
	USDToRUB float64 `json:"USD_TO_RUB"`
	EURToRUB float64 `json:"EUR_TO_RUB"`
}

// Summary repeats the totals for clients that only want the headline
// numbers.
type Summary struct {
	TotalCostRUB float64 `json:"total_cost_rub"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	DeliveryDays int     `json:"delivery_days"`
}

// Result is the complete per-stage cost breakdown.
type Result struct {
	Car           CarBreakdown     `json:"car"`
	City          CityBreakdown    `json:"city"`
	Customs       CustomsBreakdown `json:"customs_calculation"`
	Calculation   Calculation      `json:"calculation"`
	ExchangeRates ExchangeRates    `json:"exchange_rates"`
	Summary       Summary          `json:"summary"`
}

// Estimate computes the import cost breakdown for car delivered to
// city under rates.
func Estimate(car entity.Car, city entity.City, rates Rates) Result {
	age := rates.CurrentYear - car.Year
	volumeCm3 := int(car.EngineVolume * 1000)

	priceEUR := car.PriceUSD * (rates.USDToRUB / rates.EURToRUB)
	priceRUB := car.PriceUSD * rates.USDToRUB

	dutyEUR, method := customsDutyEUR(age, priceEUR, volumeCm3)
	dutyRUB := dutyEUR * rates.EURToRUB

	feeRUB, feeType := utilizationFeeRUB(age, car.EngineVolume, car.Horsepower)

	deliveryRUB := city.DeliveryCost * rates.USDToRUB

	totalRUB := priceRUB + dutyRUB + feeRUB + CustomsClearanceRUB + BrokerFeeRUB + deliveryRUB
	totalUSD := totalRUB / rates.USDToRUB

	return Result{
		Car: CarBreakdown{
			ID:              car.ID,
			Brand:           car.Brand,
			Model:           car.Model,
			Year:            car.Year,
			AgeYears:        age,
			Horsepower:      car.Horsepower,
			EngineVolume:    car.EngineVolume,
			EngineVolumeCm3: volumeCm3,
			PriceUSD:        car.PriceUSD,
			PriceEUR:        priceEUR,
			PriceRUB:        priceRUB,
		},
		City: CityBreakdown{
			ID:              city.ID,
			Name:            city.Name,
			DeliveryDays:    city.DeliveryDays,
			DeliveryCostUSD: city.DeliveryCost,
			DeliveryCostRUB: deliveryRUB,
		},
		Customs: CustomsBreakdown{
			Method:              method,
			DutyEUR:             dutyEUR,
			DutyRUB:             dutyRUB,
			UtilizationFeeType:  feeType,
			UtilizationFeeRUB:   feeRUB,
			CustomsClearanceRUB: CustomsClearanceRUB,
			BrokerFeeRUB:        BrokerFeeRUB,
		},
		Calculation: Calculation{
			CarPriceRUB:         priceRUB,
			CustomsDutyRUB:      dutyRUB,
			UtilizationFeeRUB:   feeRUB,
			CustomsClearanceRUB: CustomsClearanceRUB,
			BrokerFeeRUB:        BrokerFeeRUB,
			CityDeliveryCostUSD: city.DeliveryCost,
			CityDeliveryCostRUB: deliveryRUB,
			TotalCostRUB:        totalRUB,
			TotalCostUSD:        totalUSD,
		},
		ExchangeRates: ExchangeRates{
			USDToRUB: rates.USDToRUB,
			EURToRUB: rates.EURToRUB,
		},
		Summary: Summary{
			TotalCostRUB: totalRUB,
			TotalCostUSD: totalUSD,
			DeliveryDays: city.DeliveryDays,
		},
	}
}
