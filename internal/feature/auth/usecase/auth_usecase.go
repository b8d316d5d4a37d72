package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"resume_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6
)

// emailRegex はメールアドレスのlocal@domain形式を検証します。
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PasswordHasher はパスワードのハッシュ化と検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/password）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Hash は平文パスワードからソルト付きハッシュを生成します。
	Hash(raw string) (string, error)
	// Verify は平文パスワードが保存済みハッシュと一致するかを返します。
	Verify(raw, hashed string) bool
}

// TokenIssuer は署名付きトークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたアカウントの署名済みトークンを生成します。
	GenerateToken(accountID uint) (string, error)
}

// ProfileView はサインアップ結果として返すプロフィール情報です。
// パスワードハッシュは決して含めません。
type ProfileView struct {
	AccountID uint        `json:"accountId"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// AccountView は自分の情報照会の結果です。タイムスタンプはプロフィール由来です。
type AccountView struct {
	AccountID uint        `json:"accountId"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	accounts AccountRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(accounts AccountRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// SignUp は新規アカウントを登録し、作成されたプロフィール情報を返します。
// バリデーションは先頭から順に評価し、最初に失敗したチェックで打ち切ります。
// アカウントとプロフィールは1つのトランザクションで作成されます。
func (u *authUsecase) SignUp(ctx context.Context, email, password, passwordConfirm, name string) (*ProfileView, error) {
	if email == "" || password == "" || passwordConfirm == "" || name == "" {
		return nil, ErrMissingFields
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmailFormat
	}

	// メールアドレスの重複チェック
	if _, err := u.accounts.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	// バイト数ではなく文字数で判定する（マルチバイト入力対応）
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entity.Account{Email: email, Password: hashed, Name: name}
	profile := &entity.AccountProfile{Role: entity.RoleApplicant}

	// 同時サインアップの競合はユニーク制約に委ね、adaptersがErrEmailAlreadyExistsへ変換する
	if err := u.accounts.Create(ctx, account, profile); err != nil {
		return nil, err
	}

	return &ProfileView{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}, nil
}

// SignIn はアカウントを認証し、成功時に署名済みトークンを返します。
// タイミング攻撃を防止するため、アカウントが存在しない場合でもハッシュ比較を実行します。
// 未登録メールとパスワード不一致は同一のErrInvalidCredentialsとして返します。
func (u *authUsecase) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", ErrMissingEmail
	}
	if password == "" {
		return "", ErrMissingPassword
	}
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmailFormat
	}

	account, err := u.accounts.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return "", err
	}

	// アカウント未検出時のタイミング攻撃緩和用ダミーハッシュ
	// ハッシュ比較が常に実行されることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = account.Password
	}

	ok := u.hasher.Verify(password, passwordHash)

	// アカウント未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(account.ID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// WhoAmI はアカウントとプロフィールを結合した自分の情報を返します。
// アカウントが既に削除されている場合、ErrAccountNotFoundを返します。
func (u *authUsecase) WhoAmI(ctx context.Context, accountID uint) (*AccountView, error) {
	account, profile, err := u.accounts.FindWithProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &AccountView{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}, nil
}
