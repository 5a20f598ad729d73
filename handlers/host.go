package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	hostRepo "slotbook/database/repository/host"
	"slotbook/services/host"
	"slotbook/utils"
)

// HostHandler exposes host account endpoints.
type HostHandler struct {
	Service host.HostService
}

// NewHostHandler creates a HostHandler.
func NewHostHandler(svc host.HostService) *HostHandler {
	return &HostHandler{Service: svc}
}

// RegisterHostHandler handles POST /api/hosts/register.
func (h *HostHandler) RegisterHostHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Nickname string `json:"nickname" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Register(c.Request.Context(), input.Email, input.Password, input.Nickname)
	if err != nil {
		if errors.Is(err, hostRepo.ErrNicknameTaken) {
			utils.JSONError(c, http.StatusConflict, "nickname or email already taken", "")
			return
		}
		utils.JSONError(c, statusForError(err), "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created.Public())
}

// LoginHostHandler handles POST /api/hosts/login.
func (h *HostHandler) LoginHostHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, record, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"host":  record.Public(),
	})
}

// GetHostByNicknameHandler handles GET /api/hosts/nickname/:nickname.
// The public profile behind a share link.
func (h *HostHandler) GetHostByNicknameHandler(c *gin.Context) {
	record, err := h.Service.GetByNickname(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "host not found", "")
		return
	}
	c.JSON(http.StatusOK, record.Public())
}

// UpdateHostInfoHandler handles PUT /api/hosts/info for the session host.
func (h *HostHandler) UpdateHostInfoHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	var input struct {
		AdditionalInfo string `json:"additionalInfo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateAdditionalInfo(c.Request.Context(), hostID, input.AdditionalInfo); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update info", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
