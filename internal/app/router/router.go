package router

import (
	"github.com/gin-gonic/gin"

	"resume_backend/internal/app/middleware"
	authhandler "resume_backend/internal/feature/auth/transport/handler"
	resumehandler "resume_backend/internal/feature/resume/transport/handler"
	"resume_backend/internal/platform/http/handler"
	jwtmw "resume_backend/internal/platform/jwt"
)

// NewRouter は全ルートを登録したginエンジンを生成します。
func NewRouter(authH *authhandler.AuthHandler, resumeH *resumehandler.ResumeHandler,
	verifier jwtmw.Verifier, accounts jwtmw.AccountChecker) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規アカウント登録
	r.POST("/auth/sign-up", authH.SignUp)
	// サインイン（トークン発行）
	r.POST("/auth/sign-in", authH.SignIn)

	// 認証必須のルート
	// トークン検証に加え、アカウントの存在を毎回確認する
	auth := r.Group("/auth")
	auth.Use(jwtmw.AuthRequired(verifier, accounts))
	{
		auth.GET("/users", authH.Me)
		auth.POST("/resumes", resumeH.Create)
		auth.GET("/resumes", resumeH.List)
		auth.GET("/resumes/:resumeId", resumeH.Get)
		auth.PATCH("/resumes/:resumeId", resumeH.Update)
		auth.DELETE("/resumes/:resumeId", resumeH.Delete)
	}

	return r
}
