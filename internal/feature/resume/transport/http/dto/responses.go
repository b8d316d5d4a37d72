package dto

import "resume_backend/internal/feature/resume/usecase"

// ResumeRes は履歴書1件を返す操作のレスポンスボディです。
type ResumeRes struct {
	Message string              `json:"message"`
	Resume  *usecase.ResumeView `json:"resume"`
}

// ListRes は一覧照会のレスポンスボディです。
type ListRes struct {
	Message string                   `json:"message"`
	Resumes []*usecase.ResumeSummary `json:"resumes"`
}

// DeleteRes は削除操作のレスポンスボディです。削除したIDのみを返します。
type DeleteRes struct {
	Message  string `json:"message"`
	ResumeID uint   `json:"resumeId"`
}
