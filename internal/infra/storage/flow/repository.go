package flow

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/pkg/dbmetrics"
	"github.com/m04kA/HSM-BookingFlowService/pkg/psqlbuilder"
)

var flowColumns = []string{
	"id",
	"user_id",
	"current_step",
	"status",
	"professional_id",
	"professional_name",
	"professional_rate",
	"service_count",
	"service_id",
	"service_name",
	"service_price",
	"scheduled_date",
	"time_slot",
	"contact_number",
	"notes",
	"address_id",
	"address_snapshot",
	"availability_status",
	"availability_generation",
	"offer_id",
	"offer_code",
	"offer_savings",
	"payment_method",
	"booking_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий сессий бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию бронирования
func (r *Repository) Create(ctx context.Context, f *domain.Flow) (*domain.Flow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addressJSON, err := marshalAddress(f.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal address snapshot: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("booking_flows").
		Columns(
			"id",
			"user_id",
			"current_step",
			"status",
			"professional_id",
			"professional_name",
			"professional_rate",
			"service_count",
			"service_id",
			"service_name",
			"service_price",
			"scheduled_date",
			"time_slot",
			"contact_number",
			"notes",
			"address_id",
			"address_snapshot",
			"availability_status",
			"availability_generation",
			"offer_id",
			"offer_code",
			"offer_savings",
			"payment_method",
			"booking_id",
		).
		Values(
			f.ID,
			f.UserID,
			int(f.CurrentStep),
			f.Status,
			f.ProfessionalID,
			f.ProfessionalName,
			f.ProfessionalRate,
			f.ServiceCount,
			f.ServiceID,
			f.ServiceName,
			f.ServicePrice,
			f.Date,
			f.TimeSlot,
			f.ContactNumber,
			f.Notes,
			f.AddressID,
			addressJSON,
			f.Availability,
			f.AvailabilityGeneration,
			f.OfferID,
			f.OfferCode,
			f.OfferSavings,
			f.PaymentMethod,
			f.BookingID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return f, nil
}

// GetByID получает сессию по ID
// Внутри транзакции добавляет FOR UPDATE для блокировки строки -
// используется usecase'ами отправки бронирования и проверки доступности
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Flow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(flowColumns...).
		From("booking_flows").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanFlow(executor.QueryRowContext(ctx, query, args...))
}

// Update сохраняет изменённое состояние сессии
func (r *Repository) Update(ctx context.Context, f *domain.Flow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addressJSON, err := marshalAddress(f.Address)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal address snapshot: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("booking_flows").
		Set("current_step", int(f.CurrentStep)).
		Set("status", f.Status).
		Set("service_id", f.ServiceID).
		Set("service_name", f.ServiceName).
		Set("service_price", f.ServicePrice).
		Set("scheduled_date", f.Date).
		Set("time_slot", f.TimeSlot).
		Set("contact_number", f.ContactNumber).
		Set("notes", f.Notes).
		Set("address_id", f.AddressID).
		Set("address_snapshot", addressJSON).
		Set("availability_status", f.Availability).
		Set("availability_generation", f.AvailabilityGeneration).
		Set("offer_id", f.OfferID).
		Set("offer_code", f.OfferCode).
		Set("offer_savings", f.OfferSavings).
		Set("payment_method", f.PaymentMethod).
		Set("booking_id", f.BookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFlowNotFound
	}

	return nil
}

// ApplyAvailabilityResult применяет результат проверки доступности
// compare-and-set по generation: если дата/слот изменились после старта
// проверки, generation уже другой и устаревший результат отбрасывается
// Возвращает true, если результат был применён
func (r *Repository) ApplyAvailabilityResult(ctx context.Context, flowID string, generation int64, status domain.AvailabilityStatus) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_flows").
		Set("availability_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":                      flowID,
			"availability_generation": generation,
			"availability_status":     domain.AvailabilityChecking,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ApplyAvailabilityResult - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ApplyAvailabilityResult - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: ApplyAvailabilityResult - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanFlow(row rowScanner) (*domain.Flow, error) {
	var f domain.Flow
	var step int
	var addressJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&f.ID,
		&f.UserID,
		&step,
		&f.Status,
		&f.ProfessionalID,
		&f.ProfessionalName,
		&f.ProfessionalRate,
		&f.ServiceCount,
		&f.ServiceID,
		&f.ServiceName,
		&f.ServicePrice,
		&f.Date,
		&f.TimeSlot,
		&f.ContactNumber,
		&f.Notes,
		&f.AddressID,
		&addressJSON,
		&f.Availability,
		&f.AvailabilityGeneration,
		&f.OfferID,
		&f.OfferCode,
		&f.OfferSavings,
		&f.PaymentMethod,
		&f.BookingID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFlowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanFlow - scan row: %v", ErrScanRow, err)
	}

	f.CurrentStep = domain.FlowStep(step)

	if len(addressJSON) > 0 {
		var addr domain.Address
		if err := json.Unmarshal(addressJSON, &addr); err != nil {
			return nil, fmt.Errorf("%w: scanFlow - unmarshal address snapshot: %v", ErrScanRow, err)
		}
		f.Address = &addr
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return &f, nil
}

func marshalAddress(addr *domain.Address) ([]byte, error) {
	if addr == nil {
		return nil, nil
	}
	return json.Marshal(addr)
}
