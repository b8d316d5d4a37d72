// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"resume_backend/internal/feature/auth/domain/entity"
	"resume_backend/internal/feature/auth/usecase"
	jwtmw "resume_backend/internal/platform/jwt"
)

// accountGorm はAccountRepositoryインターフェースのGORM実装です。
type accountGorm struct {
	db *gorm.DB
}

// accountGormが各インターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.AccountRepository = (*accountGorm)(nil)
	_ jwtmw.AccountChecker      = (*accountGorm)(nil)
)

// NewAccountGorm は指定されたgorm.DB接続でaccountGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewAccountGorm(db *gorm.DB) *accountGorm {
	return &accountGorm{db: db}
}

// isUniqueViolation はユニーク制約違反かどうかを判定します。
// PostgreSQL本番ではpgconnのSQLSTATE 23505、テスト用SQLiteでは
// 翻訳済みのgorm.ErrDuplicatedKeyとして現れます。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create はアカウントとプロフィールを1つのトランザクションで作成します。
// 片方の作成に失敗した場合は両方ロールバックされます。
// 同じメールアドレスのアカウントが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *accountGorm) Create(ctx context.Context, account *entity.Account, profile *entity.AccountProfile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *accountGorm) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByID はIDでアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *accountGorm) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindWithProfile はアカウントとプロフィールをIDで取得します。
// どちらかが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *accountGorm) FindWithProfile(ctx context.Context, id uint) (*entity.Account, *entity.AccountProfile, error) {
	account, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var profile entity.AccountProfile
	if err := r.db.WithContext(ctx).Where("account_id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, usecase.ErrAccountNotFound
		}
		return nil, nil, err
	}
	return account, &profile, nil
}

// Exists はアカウントが現在も存在するかを返します。
// 認可ガードが呼び出しごとに実行する存在チェックです。
func (r *accountGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Account{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
