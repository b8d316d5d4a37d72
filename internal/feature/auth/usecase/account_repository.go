package usecase

import (
	"context"

	"resume_backend/internal/feature/auth/domain/entity"
)

// AccountRepository はアカウントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AccountRepository interface {
	// Create は新しいアカウントとプロフィールを1つのトランザクションで永続化します。
	// 同じメールアドレスのアカウントが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, account *entity.Account, profile *entity.AccountProfile) error

	// FindByEmail は指定されたメールアドレスに一致するアカウントを取得します。
	// アカウントが存在しない場合、ErrAccountNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID は指定されたIDに一致するアカウントを取得します。
	// アカウントが存在しない場合、ErrAccountNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Account, error)

	// FindWithProfile はアカウントとプロフィールをIDで取得します。
	// どちらかが存在しない場合、ErrAccountNotFoundを返します。
	FindWithProfile(ctx context.Context, id uint) (*entity.Account, *entity.AccountProfile, error)
}
