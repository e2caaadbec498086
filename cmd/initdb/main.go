// Comando initdb: crea el esquema si no existe y siembra los usuarios base
// (un administrador y un vendedor) para poder entrar al sistema de inmediato.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/myfoodtruck/pos-api/internal/domain/entity"
	"github.com/myfoodtruck/pos-api/internal/infrastructure/postgres"
	"github.com/myfoodtruck/pos-api/pkg/config"
	"github.com/myfoodtruck/pos-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name TEXT NOT NULL,
	email TEXT,
	role TEXT NOT NULL,
	reset_code TEXT,
	reset_expires TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	price NUMERIC(12,2) NOT NULL DEFAULT 0,
	category_id TEXT NOT NULL,
	category_name TEXT NOT NULL DEFAULT '',
	stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	min_stock INTEGER NOT NULL DEFAULT 0 CHECK (min_stock >= 0),
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sales (
	id UUID PRIMARY KEY,
	items JSONB NOT NULL,
	total NUMERIC(12,2) NOT NULL,
	payment_method TEXT NOT NULL,
	date TIMESTAMPTZ NOT NULL,
	seller_id TEXT NOT NULL,
	seller_name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-initdb"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema verificado")

	userRepo := postgres.NewUserRepository(pool)
	seedUser(log, userRepo, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, "Administrador", entity.RoleAdmin)
	seedUser(log, userRepo, cfg.Seed.SellerUsername, cfg.Seed.SellerPassword, "Vendedor "+cfg.Seed.SellerUsername, entity.RoleVendedor)

	log.Info().Msg("base de datos inicializada")
}

type userCreator interface {
	GetByUsername(username string) (*entity.User, error)
	Create(user *entity.User) error
}

// seedUser crea el usuario si no existe todavía; nunca pisa uno existente.
func seedUser(log *logger.Logger, repo userCreator, username, password, name, role string) {
	existing, err := repo.GetByUsername(username)
	if err != nil {
		log.Fatal().Err(err).Str("user", username).Msg("consultar usuario semilla")
	}
	if existing != nil {
		log.Info().Str("user", username).Msg("usuario semilla ya existe")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear clave semilla")
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(user); err != nil {
		log.Fatal().Err(err).Str("user", username).Msg("crear usuario semilla")
	}
	log.Info().Str("user", username).Str("role", role).Msg("usuario semilla creado")
}
