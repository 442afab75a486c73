package pg

import (
	"context"
	"time"

	"parkcompare/internal/domain/promo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromoRepository struct {
	db *pgxpool.Pool
}

func NewPromoRepository(db *pgxpool.Pool) *PromoRepository {
	return &PromoRepository{db: db}
}

const promoColumns = `id, code, valid_from, valid_to, minimum_spend, discount_type, discount_value, discount_cap, created_at, updated_at`

func (r *PromoRepository) Create(ctx context.Context, p *promo.Promo) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO promo_codes (id, code, valid_from, valid_to, minimum_spend, discount_type, discount_value, discount_cap)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID(), p.Code().String(), p.ValidFrom(), p.ValidTo(), p.MinimumSpend(),
		p.Discount().Type().String(), p.Discount().Value(), p.Discount().Cap(),
	)
	if err != nil {
		return wrapErr("failed to create promo code", err)
	}
	return nil
}

func (r *PromoRepository) Update(ctx context.Context, p *promo.Promo) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE promo_codes
		SET code = $2, valid_from = $3, valid_to = $4, minimum_spend = $5,
		    discount_type = $6, discount_value = $7, discount_cap = $8, updated_at = now()
		WHERE id = $1`,
		p.ID(), p.Code().String(), p.ValidFrom(), p.ValidTo(), p.MinimumSpend(),
		p.Discount().Type().String(), p.Discount().Value(), p.Discount().Cap(),
	)
	if err != nil {
		return wrapErr("failed to update promo code", err)
	}
	if cmd.RowsAffected() == 0 {
		return wrapErr("promo code not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *PromoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM promo_codes WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete promo code", err)
	}
	if cmd.RowsAffected() == 0 {
		return wrapErr("promo code not found", pgx.ErrNoRows)
	}
	return nil
}

// FindByCode looks a promo up by its normalized code. Codes are stored
// upper case, so the lookup is exact.
func (r *PromoRepository) FindByCode(ctx context.Context, code promo.Code) (*promo.Promo, error) {
	row := r.db.QueryRow(ctx, `SELECT `+promoColumns+` FROM promo_codes WHERE code = $1`, code.String())
	p, err := scanPromo(row)
	if err != nil {
		return nil, wrapErr("failed to find promo code", err)
	}
	return p, nil
}

func (r *PromoRepository) FindByID(ctx context.Context, id uuid.UUID) (*promo.Promo, error) {
	row := r.db.QueryRow(ctx, `SELECT `+promoColumns+` FROM promo_codes WHERE id = $1`, id)
	p, err := scanPromo(row)
	if err != nil {
		return nil, wrapErr("failed to find promo code", err)
	}
	return p, nil
}

func (r *PromoRepository) FindAll(ctx context.Context) ([]*promo.Promo, error) {
	rows, err := r.db.Query(ctx, `SELECT `+promoColumns+` FROM promo_codes ORDER BY code`)
	if err != nil {
		return nil, wrapErr("failed to list promo codes", err)
	}
	defer rows.Close()

	var promos []*promo.Promo
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, wrapErr("failed to scan promo code", err)
		}
		promos = append(promos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to read promo codes", err)
	}
	return promos, nil
}

func scanPromo(row pgx.Row) (*promo.Promo, error) {
	var (
		id                      uuid.UUID
		code, discountType      string
		validFrom, validTo      time.Time
		minimumSpend            float64
		discountValue, cap      float64
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(
		&id, &code, &validFrom, &validTo, &minimumSpend,
		&discountType, &discountValue, &cap, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	dtype, err := promo.NewDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	discount, err := promo.NewDiscount(dtype, discountValue, cap)
	if err != nil {
		return nil, err
	}

	return promo.ReconstructPromo(
		id, promo.Code(code), validFrom, validTo, minimumSpend, discount, createdAt, updatedAt,
	), nil
}
