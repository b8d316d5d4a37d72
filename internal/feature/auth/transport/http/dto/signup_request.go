// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SignUpReq は/auth/sign-upエンドポイントのリクエストボディを表します。
// 必須チェックはusecase側で定義順に評価するため、bindingタグは付けません。
type SignUpReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Name            string `json:"name"`
}
