// Package adapters はresumeフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"resume_backend/internal/feature/resume/domain/entity"
	"resume_backend/internal/feature/resume/usecase"
)

// resumeGorm はResumeRepositoryインターフェースのGORM実装です。
type resumeGorm struct {
	db *gorm.DB
}

// resumeGormがResumeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ResumeRepository = (*resumeGorm)(nil)

// NewResumeGorm は指定されたgorm.DB接続でresumeGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewResumeGorm(db *gorm.DB) *resumeGorm {
	return &resumeGorm{db: db}
}

// Create は履歴書をデータベースに追加します。
func (r *resumeGorm) Create(ctx context.Context, resume *entity.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

// resumeOwnerRow は一覧クエリのスキャン先です。
type resumeOwnerRow struct {
	ID        uint
	AccountID uint
	Title     string
	Content   string
	Status    entity.Status
	CreatedAt time.Time
	UpdatedAt time.Time
	OwnerName string
}

// ListByAccount は指定アカウントの履歴書を所有者名付きで取得します。
// 所有者の表示名はaccountsテーブルから1クエリで結合します。
func (r *resumeGorm) ListByAccount(ctx context.Context, accountID uint, ascending bool) ([]*usecase.ResumeWithOwner, error) {
	order := "resumes.created_at DESC"
	if ascending {
		order = "resumes.created_at ASC"
	}

	var rows []resumeOwnerRow
	err := r.db.WithContext(ctx).
		Table("resumes").
		Select("resumes.id, resumes.account_id, resumes.title, resumes.content, resumes.status, resumes.created_at, resumes.updated_at, accounts.name AS owner_name").
		Joins("JOIN accounts ON accounts.id = resumes.account_id").
		Where("resumes.account_id = ?", accountID).
		Order(order).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*usecase.ResumeWithOwner, 0, len(rows))
	for _, row := range rows {
		result = append(result, &usecase.ResumeWithOwner{
			Resume: entity.Resume{
				ID:        row.ID,
				AccountID: row.AccountID,
				Title:     row.Title,
				Content:   row.Content,
				Status:    row.Status,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			OwnerName: row.OwnerName,
		})
	}
	return result, nil
}

// FindByIDAndAccount はIDと所有アカウントIDの両方で絞り込んで履歴書を取得します。
// 所有権チェックを後段で行わず、1クエリで強制します。
// 一致しない場合、usecase.ErrResumeNotFoundを返します。
func (r *resumeGorm) FindByIDAndAccount(ctx context.Context, id, accountID uint) (*entity.Resume, error) {
	var resume entity.Resume
	if err := r.db.WithContext(ctx).Where("id = ? AND account_id = ?", id, accountID).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

// Save は履歴書の変更を永続化します。GORMがUpdatedAtを更新します。
func (r *resumeGorm) Save(ctx context.Context, resume *entity.Resume) error {
	return r.db.WithContext(ctx).Save(resume).Error
}

// Delete はIDと所有アカウントIDの両方に一致する履歴書を削除します。
// 一致する行がない場合、usecase.ErrResumeNotFoundを返します。
func (r *resumeGorm) Delete(ctx context.Context, id, accountID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND account_id = ?", id, accountID).Delete(&entity.Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrResumeNotFound
	}
	return nil
}
