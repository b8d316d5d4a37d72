package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"resume_backend/internal/feature/resume/domain/entity"
)

const (
	// minContentLength は自己紹介の最低文字数を定義します。
	minContentLength = 10
)

// ResumeView は履歴書1件の完全なビューです。
type ResumeView struct {
	ResumeID  uint          `json:"resumeId"`
	AccountID uint          `json:"accountId"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Status    entity.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ResumeSummary は一覧用のビューで、所有者の表示名を含みます。
type ResumeSummary struct {
	ResumeID  uint          `json:"resumeId"`
	Name      string        `json:"name"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Status    entity.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// resumeUsecase は履歴書ライフサイクルのビジネスロジックを実装します。
// 全操作は認可ガードが解決したaccountIDを前提とします。
type resumeUsecase struct {
	resumes ResumeRepository
}

// NewResumeUsecase はresumeUsecaseの新しいインスタンスを生成します。
func NewResumeUsecase(resumes ResumeRepository) *resumeUsecase {
	return &resumeUsecase{resumes: resumes}
}

func newResumeView(r *entity.Resume) *ResumeView {
	return &ResumeView{
		ResumeID:  r.ID,
		AccountID: r.AccountID,
		Title:     r.Title,
		Content:   r.Content,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Create は新しい履歴書をステータスAPPLYで作成します。
// バリデーションは先頭から順に評価し、最初に失敗したチェックで打ち切ります。
func (u *resumeUsecase) Create(ctx context.Context, accountID uint, title, content string) (*ResumeView, error) {
	if title == "" {
		return nil, ErrMissingTitle
	}
	if content == "" {
		return nil, ErrMissingContent
	}
	// バイト数ではなく文字数で判定する（マルチバイト入力対応）
	if utf8.RuneCountInString(content) < minContentLength {
		return nil, ErrContentTooShort
	}

	resume := &entity.Resume{
		AccountID: accountID,
		Title:     title,
		Content:   content,
		Status:    entity.StatusApply,
	}
	if err := u.resumes.Create(ctx, resume); err != nil {
		return nil, err
	}

	return newResumeView(resume), nil
}

// List は呼び出しアカウントの履歴書一覧を返します。
// sortOrderが"asc"（大文字小文字を区別しない）の場合のみ昇順、
// それ以外の値や未指定は作成日時の降順にフォールバックします。
// 該当なしの場合はエラーではなく空スライスを返します。
func (u *resumeUsecase) List(ctx context.Context, accountID uint, sortOrder string) ([]*ResumeSummary, error) {
	ascending := strings.EqualFold(sortOrder, "asc")

	rows, err := u.resumes.ListByAccount(ctx, accountID, ascending)
	if err != nil {
		return nil, err
	}

	summaries := make([]*ResumeSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &ResumeSummary{
			ResumeID:  row.ID,
			Name:      row.OwnerName,
			Title:     row.Title,
			Content:   row.Content,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return summaries, nil
}

// GetByID は呼び出しアカウントが所有する履歴書1件を返します。
// 他アカウントの履歴書は存在しないものと同じErrResumeNotFoundになります。
func (u *resumeUsecase) GetByID(ctx context.Context, accountID, resumeID uint) (*ResumeView, error) {
	resume, err := u.resumes.FindByIDAndAccount(ctx, resumeID, accountID)
	if err != nil {
		return nil, err
	}
	return newResumeView(resume), nil
}

// Update は指定されたフィールドのみを更新し、更新後の全体を返します。
// 空文字列は未指定として扱い、両方未指定の場合はErrNothingToUpdateを返します。
// contentを指定する場合は作成時と同じ最低文字数を満たす必要があります。
func (u *resumeUsecase) Update(ctx context.Context, accountID, resumeID uint, title, content string) (*ResumeView, error) {
	if title == "" && content == "" {
		return nil, ErrNothingToUpdate
	}

	resume, err := u.resumes.FindByIDAndAccount(ctx, resumeID, accountID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		resume.Title = title
	}
	if content != "" {
		// 更新でも最低文字数の不変条件を維持する
		if utf8.RuneCountInString(content) < minContentLength {
			return nil, ErrContentTooShort
		}
		resume.Content = content
	}

	if err := u.resumes.Save(ctx, resume); err != nil {
		return nil, err
	}

	return newResumeView(resume), nil
}

// Delete は呼び出しアカウントが所有する履歴書を削除し、削除したIDを返します。
func (u *resumeUsecase) Delete(ctx context.Context, accountID, resumeID uint) (uint, error) {
	if err := u.resumes.Delete(ctx, resumeID, accountID); err != nil {
		return 0, err
	}
	return resumeID, nil
}
