package dto

import "resume_backend/internal/feature/auth/usecase"

// SignUpRes はサインアップ成功時のレスポンスボディです。
type SignUpRes struct {
	Message  string               `json:"message"`
	UserInfo *usecase.ProfileView `json:"userInfo"`
}

// SignInRes はサインイン成功時のレスポンスボディです。
type SignInRes struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MeRes は自分の情報照会のレスポンスボディです。
type MeRes struct {
	Message string               `json:"message"`
	User    *usecase.AccountView `json:"user"`
}
