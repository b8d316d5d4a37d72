package usecase

import (
	"context"

	"resume_backend/internal/feature/resume/domain/entity"
)

// ResumeWithOwner は所有者の表示名を結合した一覧用の行です。
type ResumeWithOwner struct {
	entity.Resume
	OwnerName string
}

// ResumeRepository は履歴書エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// 取得系はresumeIdとaccountIdの両方で絞り込み、所有権をクエリレベルで強制します。
type ResumeRepository interface {
	// Create は新しい履歴書をストレージに永続化します。
	Create(ctx context.Context, resume *entity.Resume) error

	// ListByAccount は指定アカウントの履歴書を作成日時順で取得します。
	// 所有者の表示名をaccountsから結合して返します。該当なしの場合は空スライスです。
	ListByAccount(ctx context.Context, accountID uint, ascending bool) ([]*ResumeWithOwner, error)

	// FindByIDAndAccount はIDと所有アカウントIDの両方に一致する履歴書を取得します。
	// 一致しない場合、ErrResumeNotFoundを返します。
	FindByIDAndAccount(ctx context.Context, id, accountID uint) (*entity.Resume, error)

	// Save は履歴書の変更を永続化し、UpdatedAtを更新します。
	Save(ctx context.Context, resume *entity.Resume) error

	// Delete はIDと所有アカウントIDの両方に一致する履歴書を削除します。
	// 一致しない場合、ErrResumeNotFoundを返します。
	Delete(ctx context.Context, id, accountID uint) error
}
