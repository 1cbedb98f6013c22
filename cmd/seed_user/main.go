// seed_user crea un usuario de la API en la base documental. Pensado para dar
// de alta el primer admin antes de exponer el servicio.
//
// Uso: SEED_EMAIL=... SEED_PASSWORD=... go run ./cmd/seed_user
// Variables opcionales: SEED_NAME, SEED_ROLE (admin por defecto).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
)

func main() {
	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_EMAIL y SEED_PASSWORD son requeridos")
		os.Exit(1)
	}
	name := os.Getenv("SEED_NAME")
	if name == "" {
		name = email
	}
	role := os.Getenv("SEED_ROLE")
	if role == "" {
		role = entity.RoleAdmin
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	repo := mongodb.NewUserRepository(db)
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Fprintf(os.Stderr, "El usuario %s ya existe\n", email)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario %s creado con rol %s\n", email, role)
}
