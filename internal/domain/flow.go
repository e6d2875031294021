package domain

import (
	"time"

	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

// FlowStep шаг мастера бронирования
type FlowStep int

const (
	StepProfessional FlowStep = 1
	StepSchedule     FlowStep = 2
	StepOffers       FlowStep = 3
	StepPayment      FlowStep = 4
	StepConfirmed    FlowStep = 5
)

// FlowStatus статус сессии бронирования
type FlowStatus string

const (
	FlowStatusDraft      FlowStatus = "draft"
	FlowStatusSubmitting FlowStatus = "submitting"
	FlowStatusConfirmed  FlowStatus = "confirmed"
)

// AvailabilityStatus состояние проверки доступности слота
type AvailabilityStatus string

const (
	AvailabilityUnchecked   AvailabilityStatus = "unchecked"
	AvailabilityChecking    AvailabilityStatus = "checking"
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// Flow сессия мастера бронирования
// Хранит выбор пользователя по всем шагам; стоимость не хранится,
// а выводится из состояния (см. Pricing)
type Flow struct {
	ID          string
	UserID      int64
	CurrentStep FlowStep
	Status      FlowStatus

	// Шаг 1: профессионал (снапшот) и выбранная услуга
	ProfessionalID   int64
	ProfessionalName string
	ProfessionalRate *float64
	ServiceCount     int

	ServiceID    *int64
	ServiceName  *string
	ServicePrice *float64

	// Шаг 2: расписание, адрес и контакт
	Date          *time.Time
	TimeSlot      types.TimeString
	ContactNumber *string
	Notes         *string

	AddressID *int64
	Address   *Address

	// Результат последней проверки доступности
	// Generation растёт при каждом изменении даты/слота и каждой новой
	// проверке; завершившаяся проверка применяется только при совпадении
	Availability           AvailabilityStatus
	AvailabilityGeneration int64

	// Шаг 3: применённый оффер (максимум один)
	OfferID      *int64
	OfferCode    *string
	OfferSavings *float64

	// Шаг 4: способ оплаты
	PaymentMethod *string

	// Шаг 5: подтверждённое бронирование
	BookingID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StepValid возвращает true, если предикат валидности шага выполнен
func (f *Flow) StepValid(step FlowStep) bool {
	switch step {
	case StepProfessional:
		// Профессионал выбран всегда (flow создаётся от него);
		// услуга обязательна, только если их больше одной
		return f.ProfessionalID > 0 && (f.ServiceCount <= 1 || f.ServiceID != nil)
	case StepSchedule:
		return f.Date != nil &&
			!f.TimeSlot.IsZero() &&
			f.AddressID != nil &&
			f.ContactNumber != nil && *f.ContactNumber != "" &&
			f.Availability == AvailabilityAvailable
	case StepOffers:
		// Офферы опциональны
		return true
	case StepPayment:
		return f.PaymentMethod != nil && *f.PaymentMethod != ""
	case StepConfirmed:
		return f.Status == FlowStatusConfirmed
	default:
		return false
	}
}

// CanAdvance возвращает true, если с текущего шага возможен переход вперёд
// Шаг 5 достижим только через успешную отправку бронирования, не через next
func (f *Flow) CanAdvance() bool {
	return f.CurrentStep >= StepProfessional && f.CurrentStep < StepPayment
}

// CanGoBack возвращает true, если возможен переход на предыдущий шаг
// С шага 1 и шага 5 назад вернуться нельзя
func (f *Flow) CanGoBack() bool {
	return f.CurrentStep >= StepSchedule && f.CurrentStep <= StepPayment
}

// Advance переводит flow на следующий шаг
// Вызывающий обязан предварительно проверить CanAdvance и StepValid
func (f *Flow) Advance() {
	f.CurrentStep++
}

// Back переводит flow на предыдущий шаг
func (f *Flow) Back() {
	f.CurrentStep--
}

// SelectService выбирает услугу и снапшотит её цену
func (f *Flow) SelectService(svc *Service) {
	f.ServiceID = &svc.ID
	f.ServiceName = &svc.Name
	price := svc.Price
	f.ServicePrice = &price
}

// SetSchedule задаёт дату, слот и контактный номер
// Любое изменение даты или слота сбрасывает результат проверки доступности -
// это инвариант, устаревший положительный результат использовать нельзя
func (f *Flow) SetSchedule(date time.Time, slot types.TimeString, contactNumber string) {
	scheduleChanged := f.Date == nil || !f.Date.Equal(date) || f.TimeSlot != slot

	f.Date = &date
	f.TimeSlot = slot
	f.ContactNumber = &contactNumber

	if scheduleChanged {
		f.ResetAvailability()
	}
}

// ResetAvailability сбрасывает доступность и инвалидирует незавершённые проверки
func (f *Flow) ResetAvailability() {
	f.Availability = AvailabilityUnchecked
	f.AvailabilityGeneration++
}

// BeginAvailabilityCheck помечает начало новой проверки и возвращает её generation
func (f *Flow) BeginAvailabilityCheck() int64 {
	f.AvailabilityGeneration++
	f.Availability = AvailabilityChecking
	return f.AvailabilityGeneration
}

// ScheduleComplete возвращает true, если все входные данные для проверки
// доступности заданы (дата, слот, адрес)
func (f *Flow) ScheduleComplete() bool {
	return f.Date != nil && !f.TimeSlot.IsZero() && f.AddressID != nil
}

// SelectAddress выбирает адрес (со снапшотом)
func (f *Flow) SelectAddress(addr *Address) {
	f.AddressID = &addr.ID
	snapshot := *addr
	f.Address = &snapshot
}

// ClearAddress сбрасывает выбранный адрес
func (f *Flow) ClearAddress() {
	f.AddressID = nil
	f.Address = nil
}

// ApplyOffer применяет оффер, снапшотя экономию от текущей стоимости услуги
func (f *Flow) ApplyOffer(offer *Offer) {
	f.OfferID = &offer.ID
	f.OfferCode = &offer.Code
	savings := offer.Savings(f.Pricing().ServiceCost)
	f.OfferSavings = &savings
}

// RemoveOffer снимает применённый оффер
func (f *Flow) RemoveOffer() {
	f.OfferID = nil
	f.OfferCode = nil
	f.OfferSavings = nil
}

// SetPaymentMethod задаёт способ оплаты
func (f *Flow) SetPaymentMethod(method string) {
	f.PaymentMethod = &method
}

// ReadyToSubmit возвращает true, если выполнены все предусловия отправки:
// выбран способ оплаты и валидны шаги 1-2
func (f *Flow) ReadyToSubmit() bool {
	return f.Status == FlowStatusDraft &&
		f.CurrentStep == StepPayment &&
		f.StepValid(StepProfessional) &&
		f.StepValid(StepSchedule) &&
		f.StepValid(StepPayment)
}

// Confirm фиксирует успешное создание бронирования и форсирует шаг 5
func (f *Flow) Confirm(bookingID string) {
	f.BookingID = &bookingID
	f.Status = FlowStatusConfirmed
	f.CurrentStep = StepConfirmed
}

// IsConfirmed возвращает true, если бронирование создано
func (f *Flow) IsConfirmed() bool {
	return f.Status == FlowStatusConfirmed
}
