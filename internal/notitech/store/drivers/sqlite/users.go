package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmailAndQuestion(ctx context.Context, email, question string) (domain.User, error) {
	row, err := r.q.GetUserByEmailAndQuestion(ctx, gen.GetUserByEmailAndQuestionParams{
		Email:            email,
		SecurityQuestion: mapStringNull(question),
	})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		SecurityQuestion: mapStringNull(u.SecurityQuestion),
		SecurityAnswer:   mapStringNull(u.SecurityAnswer),
		CreatedAt:        ts(u.CreatedAt),
		UpdatedAt:        ts(u.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) (int64, error) {
	version, err := r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: newHash,
		UpdatedAt:    ts(nowUTC()),
		ID:           userID,
	})
	if err != nil {
		return 0, mapNotFound(err)
	}
	return version, nil
}

func (r *usersRepo) IncrementSignInCount(ctx context.Context, userID string) error {
	return requireAffected(r.q.IncrementUserSignInCount(ctx, userID))
}

func (r *usersRepo) IncrementAppUsageCount(ctx context.Context, userID string) (int64, error) {
	n, err := r.q.IncrementUserAppUsageCount(ctx, userID)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return n, nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return requireAffected(r.q.DeleteUser(ctx, userID))
}
