package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// CreateUserTxParams contains the input parameters for creating a new user
type CreateUserTxParams struct {
	Phone          string
	HashedPassword string
	FullName       string
	Role           string
}

// CreateUserTxResult contains the result of user creation transaction
type CreateUserTxResult struct {
	User         User
	Notification Notification
}

// CreateUserTx creates a new user and a welcome notification in a single transaction.
func (store *SQLStore) CreateUserTx(ctx context.Context, arg CreateUserTxParams) (CreateUserTxResult, error) {
	var result CreateUserTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// Step 1: 创建用户
		result.User, err = q.CreateUser(ctx, CreateUserParams{
			Phone:          arg.Phone,
			HashedPassword: arg.HashedPassword,
			FullName:       arg.FullName,
			Role:           arg.Role,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		// Step 2: 创建欢迎通知
		result.Notification, err = q.CreateNotification(ctx, CreateNotificationParams{
			UserID:  result.User.ID,
			Type:    "system",
			Title:   "欢迎加入 FoodBridge",
			Content: "感谢注册，让每一份余量食物都找到需要它的人。",
			RelatedType: pgtype.Text{
				String: "user",
				Valid:  true,
			},
			RelatedID: pgtype.Int8{
				Int64: result.User.ID,
				Valid: true,
			},
		})
		if err != nil {
			return fmt.Errorf("create welcome notification: %w", err)
		}

		return nil
	})

	return result, err
}
