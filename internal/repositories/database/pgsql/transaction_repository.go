package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/models"
	"github.com/mlakumulu/travel_backend/internal/utils/mapping"
	"github.com/mlakumulu/travel_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for ledger data.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveLedgerEntry inserts a transaction and its detail line inside a single
// database transaction. Only this pair is atomic: the trip mutation that
// triggered the entry has already been committed independently, and stays
// committed even if this write fails.
func (r *PgxTransactionRepository) SaveLedgerEntry(ctx context.Context, txn domain.Transaction, detail domain.TransactionDetail) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	modelTxn := mapping.ToModelTransaction(txn)
	txnQuery := `
		INSERT INTO transactions (transaction_id, transaction_date, amount, status, payment_method, reference_number, notes, tourist_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING transaction_id;
	`
	var transactionID string
	err = tx.QueryRow(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.TransactionDate,
		modelTxn.Amount,
		modelTxn.Status,
		modelTxn.PaymentMethod,
		modelTxn.ReferenceNumber,
		modelTxn.Notes,
		modelTxn.TouristID,
		modelTxn.CreatedByID,
		modelTxn.CreatedAt,
		modelTxn.UpdatedAt,
	).Scan(&transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	modelDetail := mapping.ToModelTransactionDetail(detail)
	detailQuery := `
		INSERT INTO transaction_details (detail_id, amount, description, transaction_id, trip_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, detailQuery,
		modelDetail.DetailID,
		modelDetail.Amount,
		modelDetail.Description,
		transactionID,
		modelDetail.TripID,
		modelDetail.CreatedAt,
		modelDetail.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction detail for "+transactionID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteDetailsByTripID removes every detail referencing the trip,
// regardless of which transaction owns it. Parent transactions survive,
// possibly with zero details left.
func (r *PgxTransactionRepository) DeleteDetailsByTripID(ctx context.Context, tripID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM transaction_details WHERE trip_id = $1;`, tripID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction details for trip "+tripID, err)
	}
	return nil
}

// FindDetailsByTripID retrieves details referencing a trip, with the parent
// transaction's payment method joined in.
func (r *PgxTransactionRepository) FindDetailsByTripID(ctx context.Context, tripID string) ([]domain.TransactionDetail, error) {
	query := `
		SELECT td.detail_id, td.amount, td.description, td.transaction_id, td.trip_id, td.created_at, td.updated_at, t.payment_method
		FROM transaction_details td
		JOIN transactions t ON td.transaction_id = t.transaction_id
		WHERE td.trip_id = $1
		ORDER BY td.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction details for trip "+tripID, err)
	}
	defer rows.Close()

	details := []models.TransactionDetail{}
	for rows.Next() {
		var m models.TransactionDetail
		var description sql.NullString
		if err := rows.Scan(
			&m.DetailID,
			&m.Amount,
			&description,
			&m.TransactionID,
			&m.TripID,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.PaymentMethod,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction detail row for trip "+tripID, err)
		}
		m.Description = description.String
		details = append(details, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction detail rows for trip "+tripID, err)
	}

	return mapping.ToDomainTransactionDetailSlice(details), nil
}

// transactionSelect joins the creator and the tourist's user for display names.
const transactionSelect = `
	SELECT t.transaction_id, t.transaction_date, t.amount, t.status, t.payment_method, t.reference_number, t.notes,
	       t.tourist_id, t.created_by, t.created_at, t.updated_at,
	       u.first_name, u.last_name, tu.first_name, tu.last_name
	FROM transactions t
	LEFT JOIN users u ON t.created_by = u.user_id
	LEFT JOIN tourists tr ON t.tourist_id = tr.tourist_id
	LEFT JOIN users tu ON tr.user_id = tu.user_id
`

func scanJoinedTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var refNumber, notes sql.NullString
	var creatorFirst, creatorLast, touristFirst, touristLast sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionDate,
		&m.Amount,
		&m.Status,
		&m.PaymentMethod,
		&refNumber,
		&notes,
		&m.TouristID,
		&m.CreatedByID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&creatorFirst,
		&creatorLast,
		&touristFirst,
		&touristLast,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	m.ReferenceNumber = refNumber.String
	m.Notes = notes.String
	m.CreatedByFirstName = creatorFirst.String
	m.CreatedByLastName = creatorLast.String
	m.TouristFirstName = touristFirst.String
	m.TouristLastName = touristLast.String
	return m, nil
}

func collectJoinedTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	for rows.Next() {
		m, err := scanJoinedTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return txns, nil
}

// ListTransactions retrieves a page of transactions using token-based
// pagination on (transaction_date, created_at), newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	orderByClause := `ORDER BY t.transaction_date DESC, t.created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `WHERE (t.transaction_date, t.created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)

		query := transactionSelect + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := transactionSelect + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	txns, err := collectJoinedTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	results := txns
	if len(txns) > limit {
		lastTxn := txns[limit-1]
		token := pagination.EncodeToken(lastTxn.TransactionDate, lastTxn.CreatedAt)
		nextTokenVal = &token
		results = txns[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// FindTransactionByID retrieves a single transaction with joined names.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1;`
	m, err := scanJoinedTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionsByTouristID retrieves all of a tourist's transactions,
// newest first.
func (r *PgxTransactionRepository) FindTransactionsByTouristID(ctx context.Context, touristID string) ([]domain.Transaction, error) {
	query := transactionSelect + `
		WHERE t.tourist_id = $1
		ORDER BY t.transaction_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, touristID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for tourist "+touristID, err)
	}
	defer rows.Close()

	txns, err := collectJoinedTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// FindTransactionsByTripID retrieves every transaction that has at least one
// detail referencing the trip, newest first.
func (r *PgxTransactionRepository) FindTransactionsByTripID(ctx context.Context, tripID string) ([]domain.Transaction, error) {
	idRows, err := r.Pool.Query(ctx, `SELECT DISTINCT transaction_id FROM transaction_details WHERE trip_id = $1;`, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction ids for trip "+tripID, err)
	}
	defer idRows.Close()

	transactionIDs := []string{}
	for idRows.Next() {
		var id string
		if err := idRows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction id for trip "+tripID, err)
		}
		transactionIDs = append(transactionIDs, id)
	}
	if err := idRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction ids for trip "+tripID, err)
	}
	if len(transactionIDs) == 0 {
		return []domain.Transaction{}, nil
	}

	query := transactionSelect + `
		WHERE t.transaction_id = ANY($1)
		ORDER BY t.transaction_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for trip "+tripID, err)
	}
	defer rows.Close()

	txns, err := collectJoinedTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// FindDetailsByTransactionID retrieves a transaction's details with trip
// name and price joined in. The trip join is LEFT because trips may be
// deleted while their old transactions remain.
func (r *PgxTransactionRepository) FindDetailsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionDetail, error) {
	query := `
		SELECT td.detail_id, td.amount, td.description, td.transaction_id, td.trip_id, td.created_at, td.updated_at,
		       tr.name, tr.price
		FROM transaction_details td
		LEFT JOIN trips tr ON td.trip_id = tr.trip_id
		WHERE td.transaction_id = $1
		ORDER BY td.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query details for transaction "+transactionID, err)
	}
	defer rows.Close()

	details := []models.TransactionDetail{}
	for rows.Next() {
		var m models.TransactionDetail
		var description, tripName sql.NullString
		var tripPrice *decimal.Decimal
		if err := rows.Scan(
			&m.DetailID,
			&m.Amount,
			&description,
			&m.TransactionID,
			&m.TripID,
			&m.CreatedAt,
			&m.UpdatedAt,
			&tripName,
			&tripPrice,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan detail row for transaction "+transactionID, err)
		}
		m.Description = description.String
		m.TripName = tripName.String
		if tripPrice != nil {
			m.TripPrice = *tripPrice
		}
		details = append(details, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating detail rows for transaction "+transactionID, err)
	}

	return mapping.ToDomainTransactionDetailSlice(details), nil
}
