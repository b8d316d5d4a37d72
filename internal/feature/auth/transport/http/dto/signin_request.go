package dto

// SignInReq は/auth/sign-inエンドポイントのリクエストボディを表します。
type SignInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
