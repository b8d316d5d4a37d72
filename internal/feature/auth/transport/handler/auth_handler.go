// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume_backend/internal/api"
	"resume_backend/internal/feature/auth/transport/http/dto"
	"resume_backend/internal/feature/auth/usecase"
	jwtmw "resume_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// SignUp は新規アカウントを登録し、作成されたプロフィール情報を返します。
	SignUp(ctx context.Context, email, password, passwordConfirm, name string) (*usecase.ProfileView, error)
	// SignIn はアカウントを認証し、成功時に署名済みトークンを返します。
	SignIn(ctx context.Context, email, password string) (string, error)
	// WhoAmI はアカウントとプロフィールを結合した自分の情報を返します。
	WhoAmI(ctx context.Context, accountID uint) (*usecase.AccountView, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp はアカウント登録APIエンドポイントを処理します。
// - リクエストJSONをSignUpReqにバインド
// - バリデーション失敗時はusecaseのエラーを種別ごとのステータスへ変換
// - 成功時は201とプロフィール情報を返却
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	profile, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password, req.PasswordConfirm, req.Name)
	if err != nil {
		slog.Warn("signup failed", "error", err, "remote_addr", c.ClientIP())
		api.HandleError(c, err)
		return
	}

	slog.Info("account signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignUpRes{Message: "sign-up completed", UserInfo: profile})
}

// SignIn はサインインAPIエンドポイントを処理します。
// - リクエストJSONをSignInReqにバインド
// - 認証失敗時は汎用の401を返却（未登録メールとパスワード不一致は区別しない）
// - 成功時はトークン付きで200を返却
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	token, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("signin failed", "error", err, "remote_addr", c.ClientIP())
		api.HandleError(c, err)
		return
	}

	slog.Info("account signin successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SignInRes{Message: "sign-in succeeded", Token: token})
}

// Me は自分の情報照会APIエンドポイントを処理します。
// 認可ガードが解決したアカウントIDでアカウントとプロフィールを取得します。
func (h *AuthHandler) Me(c *gin.Context) {
	accountID := jwtmw.AccountID(c)

	view, err := h.auth.WhoAmI(c.Request.Context(), accountID)
	if err != nil {
		api.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeRes{Message: "ok", User: view})
}
