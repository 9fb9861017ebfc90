package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, transaction_date, description, debit_account_id, credit_account_id, amount, created_at, created_by`

// PgxTransactionRepository reads and appends rows of the ledger_transactions table.
// It never issues UPDATE or DELETE.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.TransactionDate,
		&t.Description,
		&t.DebitAccountID,
		&t.CreditAccountID,
		&t.Amount,
		&t.CreatedAt,
		&t.CreatedBy,
	)
	return t, err
}

// AppendTransaction inserts a validated transaction within tx.
func (r *PgxTransactionRepository) AppendTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO ledger_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.TransactionDate,
		m.Description,
		m.DebitAccountID,
		m.CreditAccountID,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: transaction references an unknown account", apperrors.ErrValidation)
		case pgCheckViolation:
			return fmt.Errorf("%w: transaction violates a ledger constraint", apperrors.ErrValidation)
		case pgUniqueViolation:
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to append transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns every transaction within the filter's date bounds in posting order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, "transaction_date >= $"+strconv.Itoa(len(args))+"::date")
	}
	if filter.AsOf != nil {
		args = append(args, *filter.AsOf)
		conditions = append(conditions, "transaction_date <= $"+strconv.Itoa(len(args))+"::date")
	}

	query := `SELECT ` + transactionColumns + ` FROM ledger_transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY transaction_date, created_at, transaction_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(results), nil
}

// ListTransactionsByAccount retrieves a page of transactions on either side of an account using
// keyset pagination, newest first. It returns the transactions and a token for the next page.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM ledger_transactions
		WHERE (debit_account_id = $1 OR credit_account_id = $1)
	`
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC`
	args := []any{accountID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (transaction_date, created_at, transaction_id) < ($2::date, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions for account "+accountID, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan transaction row for account "+accountID, err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating transaction rows for account "+accountID, err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		// The token points at the last row included in this page.
		last := results[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt, last.TransactionID)
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}
