package main

import (
	"fmt"
	"log"

	"resume_backend/internal/app/config"
	"resume_backend/internal/app/router"
	authadapters "resume_backend/internal/feature/auth/adapters"
	authhandler "resume_backend/internal/feature/auth/transport/handler"
	authusecase "resume_backend/internal/feature/auth/usecase"
	resumeadapters "resume_backend/internal/feature/resume/adapters"
	resumehandler "resume_backend/internal/feature/resume/transport/handler"
	resumeusecase "resume_backend/internal/feature/resume/usecase"
	"resume_backend/internal/platform/db"
	jwtmw "resume_backend/internal/platform/jwt"
	"resume_backend/internal/platform/password"
)

func main() {
	// 設定（署名鍵が未設定の場合はここで起動失敗）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	conn := db.Open(cfg.Database)

	// Platform
	hasher := password.NewHasher()
	tokens := jwtmw.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)

	// Repository
	accountRepo := authadapters.NewAccountGorm(conn)
	resumeRepo := resumeadapters.NewResumeGorm(conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(accountRepo, hasher, tokens)
	resumeUC := resumeusecase.NewResumeUsecase(resumeRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	resumeH := resumehandler.NewResumeHandler(resumeUC)

	// ルータ生成
	r := router.NewRouter(authH, resumeH, tokens, accountRepo)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatal(err)
	}
}
