package domain

// Pricing производная стоимость бронирования
// Никогда не сохраняется - пересчитывается при каждом чтении flow
type Pricing struct {
	ServiceCost float64
	Discount    float64
	PlatformFee float64
	Tax         float64
	Total       float64
}

// ComputePricing вычисляет стоимость бронирования
// Чистая функция от (цена выбранной услуги, ставка профессионала, экономия оффера):
//   - serviceCost: цена услуги, иначе ставка профессионала, иначе FallbackServiceCost
//   - tax = serviceCost * TaxRate
//   - discount = min(offerSavings, serviceCost)
//   - total = serviceCost - discount + PlatformFee + tax
//
// Инвариант: discount <= serviceCost, поэтому total >= PlatformFee + tax
func ComputePricing(servicePrice, professionalRate, offerSavings *float64) Pricing {
	serviceCost := FallbackServiceCost
	switch {
	case servicePrice != nil:
		serviceCost = *servicePrice
	case professionalRate != nil:
		serviceCost = *professionalRate
	}

	tax := serviceCost * TaxRate

	discount := 0.0
	if offerSavings != nil {
		discount = *offerSavings
		if discount > serviceCost {
			discount = serviceCost
		}
	}

	return Pricing{
		ServiceCost: serviceCost,
		Discount:    discount,
		PlatformFee: PlatformFee,
		Tax:         tax,
		Total:       serviceCost - discount + PlatformFee + tax,
	}
}

// Pricing возвращает актуальную стоимость для текущего состояния flow
func (f *Flow) Pricing() Pricing {
	var savings *float64
	if f.OfferSavings != nil {
		savings = f.OfferSavings
	}
	return ComputePricing(f.ServicePrice, f.ProfessionalRate, savings)
}
