package repository_test

import (
	"context"
	"testing"

	"buildtrack/internal/model"
	"buildtrack/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	userID := uuid.New()
	user := &model.User{
		ID:             userID,
		Email:          "sarah@example.com",
		HashedPassword: "hashed_password",
		Name:           "Sarah Johnson",
		Avatar:         "https://i.pravatar.cc/150?u=SarahJohnson",
		Role:           model.RoleSiteEngineer,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WithArgs(sqlmock.AnyArg(), user.Email, user.HashedPassword, user.Name, user.Avatar, string(user.Role), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
	mock.ExpectCommit()

	// Act
	err := userRepo.Create(context.Background(), user)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	userID := uuid.New()
	email := "sarah@example.com"

	mock.ExpectQuery(`SELECT .* FROM "profiles" WHERE email = .* LIMIT 1`).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "avatar", "role", "created_at"}).
			AddRow(userID.String(), email, "hashed_password", "Sarah Johnson", "", "Site Engineer", "2026-01-01 00:00:00"))

	// Act
	user, err := userRepo.FindByEmail(context.Background(), email)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, email, user.Email)
	assert.Equal(t, model.RoleSiteEngineer, user.Role)
	assert.False(t, user.Role.IsAdmin())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	email := "nonexistent@example.com"

	mock.ExpectQuery(`SELECT .* FROM "profiles" WHERE email = .* LIMIT 1`).
		WithArgs(email).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	user, err := userRepo.FindByEmail(context.Background(), email)

	// Assert: absence is not an error, just a nil user
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	email := "sarah@example.com"

	mock.ExpectQuery(`SELECT .* FROM "profiles" WHERE email = .* LIMIT 1`).
		WithArgs(email).
		WillReturnError(assert.AnError)

	// Act
	user, err := userRepo.FindByEmail(context.Background(), email)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetAll_OrderedByName(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "profiles" ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "avatar", "role", "created_at"}).
			AddRow(uuid.New().String(), "amy@example.com", "x", "Amy Chen", "", "Architect", "2026-01-01 00:00:00").
			AddRow(uuid.New().String(), "sarah@example.com", "x", "Sarah Johnson", "", "Worker", "2026-01-01 00:00:00"))

	// Act
	users, err := userRepo.GetAll(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Amy Chen", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
