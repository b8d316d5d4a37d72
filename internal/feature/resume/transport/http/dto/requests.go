// Package dto はresumeフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateReq はPOST /auth/resumesのリクエストボディを表します。
// 必須チェックはusecase側で定義順に評価するため、bindingタグは付けません。
type CreateReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateReq はPATCH /auth/resumes/:resumeIdのリクエストボディを表します。
// 空のフィールドは未指定として扱われます。
type UpdateReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
