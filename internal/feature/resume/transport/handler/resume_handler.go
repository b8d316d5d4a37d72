// Package handler はresumeフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume_backend/internal/api"
	"resume_backend/internal/feature/resume/transport/http/dto"
	"resume_backend/internal/feature/resume/usecase"
	jwtmw "resume_backend/internal/platform/jwt"
)

// ResumeUsecase は履歴書操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ResumeUsecase interface {
	// Create は新しい履歴書をステータスAPPLYで作成します。
	Create(ctx context.Context, accountID uint, title, content string) (*usecase.ResumeView, error)
	// List は呼び出しアカウントの履歴書一覧を返します。
	List(ctx context.Context, accountID uint, sortOrder string) ([]*usecase.ResumeSummary, error)
	// GetByID は呼び出しアカウントが所有する履歴書1件を返します。
	GetByID(ctx context.Context, accountID, resumeID uint) (*usecase.ResumeView, error)
	// Update は指定されたフィールドのみを更新し、更新後の全体を返します。
	Update(ctx context.Context, accountID, resumeID uint, title, content string) (*usecase.ResumeView, error)
	// Delete は呼び出しアカウントが所有する履歴書を削除し、削除したIDを返します。
	Delete(ctx context.Context, accountID, resumeID uint) (uint, error)
}

// ResumeHandler は履歴書操作のHTTPリクエストを処理します。
type ResumeHandler struct {
	resumes ResumeUsecase
}

// NewResumeHandler はResumeHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からResumeUsecaseを注入します。
func NewResumeHandler(resumes ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// resumeID はパスパラメータ:resumeIdを解析します。数値でない場合はfalseを返します。
func resumeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("resumeId"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Create は履歴書作成APIエンドポイントを処理します。
func (h *ResumeHandler) Create(c *gin.Context) {
	var req dto.CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("resume create bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	view, err := h.resumes.Create(c.Request.Context(), jwtmw.AccountID(c), req.Title, req.Content)
	if err != nil {
		api.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ResumeRes{Message: "resume created", Resume: view})
}

// List は履歴書一覧照会APIエンドポイントを処理します。
// sortクエリパラメータが"asc"の場合のみ昇順、それ以外は作成日時の降順です。
func (h *ResumeHandler) List(c *gin.Context) {
	summaries, err := h.resumes.List(c.Request.Context(), jwtmw.AccountID(c), c.Query("sort"))
	if err != nil {
		api.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListRes{Message: "ok", Resumes: summaries})
}

// Get は履歴書詳細照会APIエンドポイントを処理します。
// 他アカウントの履歴書は404になります（存在有無を漏らさない）。
func (h *ResumeHandler) Get(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	view, err := h.resumes.GetByID(c.Request.Context(), jwtmw.AccountID(c), id)
	if err != nil {
		api.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResumeRes{Message: "ok", Resume: view})
}

// Update は履歴書修正APIエンドポイントを処理します。
func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("resume update bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	view, err := h.resumes.Update(c.Request.Context(), jwtmw.AccountID(c), id, req.Title, req.Content)
	if err != nil {
		api.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResumeRes{Message: "resume updated", Resume: view})
}

// Delete は履歴書削除APIエンドポイントを処理します。
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	deletedID, err := h.resumes.Delete(c.Request.Context(), jwtmw.AccountID(c), id)
	if err != nil {
		api.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteRes{Message: "resume deleted", ResumeID: deletedID})
}
