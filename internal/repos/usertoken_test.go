package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rainaarpit12/Sih-2025/internal/repos/testutil"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

func TestUserTokenRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	userRepo := NewUserRepo(db, testutil.Logger(t))
	repo := NewUserTokenRepo(db, testutil.Logger(t))
	ctx := context.Background()

	users, err := userRepo.Create(ctx, tx, []*types.User{
		{
			ID:       uuid.New(),
			Email:    "tokenrepo@example.com",
			Password: "hashed",
			Name:     "Ravi",
			Role:     types.RoleDistributor,
		},
	})
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	created, err := repo.Create(ctx, tx, []*types.UserToken{
		{
			ID:           uuid.New(),
			UserID:       users[0].ID,
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresAt:    time.Now().Add(time.Hour),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byUser, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{users[0].ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(byUser) != 1 || byUser[0].RefreshToken != "refresh-token" {
		t.Fatalf("GetByUserIDs: unexpected result: %+v", byUser)
	}

	byRefresh, err := repo.GetByRefreshTokens(ctx, tx, []string{"refresh-token"})
	if err != nil {
		t.Fatalf("GetByRefreshTokens: %v", err)
	}
	if len(byRefresh) != 1 || byRefresh[0].UserID != users[0].ID {
		t.Fatalf("GetByRefreshTokens: unexpected result: %+v", byRefresh)
	}

	if err := repo.DeleteByIDs(ctx, tx, []uuid.UUID{created[0].ID}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}
	byUser, err = repo.GetByUserIDs(ctx, tx, []uuid.UUID{users[0].ID})
	if err != nil {
		t.Fatalf("GetByUserIDs (after delete): %v", err)
	}
	if len(byUser) != 0 {
		t.Fatalf("expected tokens deleted, got %+v", byUser)
	}
}
