package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sociogram/backend/internal/domain"
)

const userColumns = "id, name, username, email, password_hash, bio, posts, saved, followers, following, revision, created_at, updated_at"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, username, email, password_hash, bio, posts, saved, followers, following, revision, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Name, user.Username, user.Email, user.PasswordHash, user.Bio,
		user.Posts, user.Saved, user.Followers, user.Following,
		user.Revision, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return translateConflict(err, true)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

// Update applies only the fields present in the change set and bumps the
// revision counter. The unique indexes make the conflict check and the
// write a single atomic step.
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) error {
	if update.Empty() {
		// Nothing to merge; still report a vanished record.
		u, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}
		return nil
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Username != nil {
		add("username", *update.Username)
	}
	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.Bio != nil {
		add("bio", *update.Bio)
	}
	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s, revision = revision + 1 WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateConflict(err, false)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Bio,
		&u.Posts, &u.Saved, &u.Followers, &u.Following,
		&u.Revision, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Empty Postgres arrays scan as nil slices; callers expect [].
	if u.Posts == nil {
		u.Posts = []uuid.UUID{}
	}
	if u.Saved == nil {
		u.Saved = []uuid.UUID{}
	}
	if u.Followers == nil {
		u.Followers = []uuid.UUID{}
	}
	if u.Following == nil {
		u.Following = []uuid.UUID{}
	}
	return &u, nil
}

// translateConflict maps unique-violation errors onto the domain error set.
// On insert the violated constraint tells apart username and email; on
// update either one means some other user already owns the value.
func translateConflict(err error, insert bool) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	if !insert {
		return domain.ErrDuplicateUser
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return domain.ErrUsernameTaken
	case "users_email_key":
		return domain.ErrEmailTaken
	default:
		return domain.ErrDuplicateUser
	}
}
