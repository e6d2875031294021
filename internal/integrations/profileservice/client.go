package profileservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ProfileService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfessionalPublicProfile получает публичный профиль профессионала
func (c *Client) GetProfessionalPublicProfile(ctx context.Context, professionalID int64) (*domain.Professional, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d/public-profile", c.baseURL, professionalID)

	var professional Professional
	if err := c.getJSON(ctx, url, &professional, ErrProfessionalNotFound); err != nil {
		return nil, err
	}

	return professional.ToDomain(), nil
}

// GetServicesByProfessional получает список услуг профессионала
func (c *Client) GetServicesByProfessional(ctx context.Context, professionalID int64) ([]*domain.Service, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d/services", c.baseURL, professionalID)

	var payload struct {
		Services []Service `json:"services"`
	}
	if err := c.getJSON(ctx, url, &payload, ErrProfessionalNotFound); err != nil {
		return nil, err
	}

	services := make([]*domain.Service, 0, len(payload.Services))
	for i := range payload.Services {
		services = append(services, payload.Services[i].ToDomain())
	}

	return services, nil
}

// GetOffers получает список активных офферов
func (c *Client) GetOffers(ctx context.Context) ([]*domain.Offer, error) {
	url := fmt.Sprintf("%s/internal/offers", c.baseURL)

	var payload struct {
		Offers []Offer `json:"offers"`
	}
	if err := c.getJSON(ctx, url, &payload, nil); err != nil {
		return nil, err
	}

	offers := make([]*domain.Offer, 0, len(payload.Offers))
	for i := range payload.Offers {
		offers = append(offers, payload.Offers[i].ToDomain())
	}

	return offers, nil
}

// GetTimeSlots получает сетку временных слотов
func (c *Client) GetTimeSlots(ctx context.Context) ([]domain.TimeSlotGroup, error) {
	url := fmt.Sprintf("%s/internal/timeslots", c.baseURL)

	var payload struct {
		Groups []timeSlotGroup `json:"groups"`
	}
	if err := c.getJSON(ctx, url, &payload, nil); err != nil {
		return nil, err
	}

	groups := make([]domain.TimeSlotGroup, 0, len(payload.Groups))
	for i := range payload.Groups {
		group, err := payload.Groups[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse time slot: %v", ErrInvalidResponse, err)
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// CheckAvailability проверяет доступность профессионала на дату/слот/адрес
// Отрицательный результат - не ошибка, а валидный исход проверки
func (c *Client) CheckAvailability(ctx context.Context, professionalID int64, date time.Time, slot types.TimeString, pincode string) (bool, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d/availability-check", c.baseURL, professionalID)

	reqBody, err := json.Marshal(availabilityRequest{
		Date:     date.Format(domain.DateFormat),
		TimeSlot: slot.String(),
		Pincode:  pincode,
	})
	if err != nil {
		return false, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return false, ErrProfessionalNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.Available, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на 404; если nil - 404 считается неожиданным статусом
func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		fallthrough
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
