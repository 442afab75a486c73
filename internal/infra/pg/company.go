package pg

import (
	"context"
	"encoding/json"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/pricing"
	"parkcompare/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyRepository stores parking providers. The tier table lives in a
// jsonb column and goes through pricing.ParseTiers on the way out, so a
// misconfigured tier surfaces as an error instead of pricing to zero.
type CompanyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, name, airport, description, services, distance_to_terminal, pricing_tiers, created_at, updated_at`

func (r *CompanyRepository) Create(ctx context.Context, c *catalog.Company) error {
	tiers, err := json.Marshal(c.Tiers)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing tiers", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO companies (id, name, airport, description, services, distance_to_terminal, pricing_tiers)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Airport, c.Description, c.Services, c.DistanceToTerminal, tiers,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return wrapErr("failed to create company", err)
	}
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *catalog.Company) error {
	tiers, err := json.Marshal(c.Tiers)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing tiers", err)
	}

	err = r.db.QueryRow(ctx, `
		UPDATE companies
		SET name = $2, airport = $3, description = $4, services = $5,
		    distance_to_terminal = $6, pricing_tiers = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		c.ID, c.Name, c.Airport, c.Description, c.Services, c.DistanceToTerminal, tiers,
	).Scan(&c.UpdatedAt)
	if err != nil {
		return wrapErr("failed to update company", err)
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete company", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	c, err := scanCompany(row)
	if err != nil {
		return nil, wrapErr("failed to find company", err)
	}
	return c, nil
}

// FindByAirport lists providers serving one airport, the compare page's
// primary query.
func (r *CompanyRepository) FindByAirport(ctx context.Context, airport string) ([]*catalog.Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+companyColumns+` FROM companies
		WHERE lower(airport) = lower($1)
		ORDER BY name`, airport)
	if err != nil {
		return nil, wrapErr("failed to list companies by airport", err)
	}
	defer rows.Close()
	return collectCompanies(rows)
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]*catalog.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY airport, name`)
	if err != nil {
		return nil, wrapErr("failed to list companies", err)
	}
	defer rows.Close()
	return collectCompanies(rows)
}

func collectCompanies(rows pgx.Rows) ([]*catalog.Company, error) {
	var companies []*catalog.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, wrapErr("failed to scan company", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to read companies", err)
	}
	return companies, nil
}

func scanCompany(row pgx.Row) (*catalog.Company, error) {
	var (
		c        catalog.Company
		rawTiers []byte
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Airport, &c.Description, &c.Services,
		&c.DistanceToTerminal, &rawTiers, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tiers, err := pricing.ParseTiers(rawTiers)
	if err != nil {
		return nil, err
	}
	c.Tiers = tiers
	return &c, nil
}
