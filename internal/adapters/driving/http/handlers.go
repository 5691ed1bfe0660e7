package http

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

type handlers struct {
	ports *Ports
	cfg   Config
}

type healthResponse struct {
	Status              string `json:"status"`
	Version             string `json:"version"`
	KnowledgeBaseLoaded bool   `json:"knowledge_base_loaded"`
	TotalChunks         int    `json:"total_chunks"`
	Environment         string `json:"environment"`
}

type knowledgeBaseResponse struct {
	TotalChunks int            `json:"total_chunks"`
	FilesLoaded int            `json:"files_loaded"`
	FileDetails map[string]int `json:"file_details"`
	Status      string         `json:"status"`
}

func (h *handlers) root(c *gin.Context) {
	c.JSON(nethttp.StatusOK, gin.H{
		"message": "Bienvenue sur l'API Chatbot AfricTivistes CitizenLab",
		"version": h.cfg.Version,
		"status":  "running",
	})
}

func (h *handlers) health(c *gin.Context) {
	resp := healthResponse{
		Status:      "healthy",
		Version:     h.cfg.Version,
		Environment: h.cfg.Environment,
	}
	if h.ports.Search.Initialized() {
		resp.KnowledgeBaseLoaded = true
		resp.TotalChunks = h.ports.Search.Stats().TotalChunks
	}
	c.JSON(nethttp.StatusOK, resp)
}

func (h *handlers) chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, nethttp.StatusUnprocessableEntity, err.Error())
		return
	}

	resp, err := h.ports.Chat.Chat(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondDetail(c, nethttp.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.Error("chat: %v", err)
		respondDetail(c, nethttp.StatusInternalServerError, "Erreur interne")
		return
	}
	c.JSON(nethttp.StatusOK, resp)
}

func (h *handlers) getSession(c *gin.Context) {
	id := c.Param("id")
	snapshot, err := h.ports.Chat.Snapshot(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondDetail(c, nethttp.StatusNotFound, fmt.Sprintf("Session '%s' non trouvée", id))
			return
		}
		respondDetail(c, nethttp.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(nethttp.StatusOK, snapshot)
}

func (h *handlers) deleteSession(c *gin.Context) {
	id := c.Param("id")
	if !h.ports.Sessions.Delete(id) {
		respondDetail(c, nethttp.StatusNotFound, fmt.Sprintf("Session '%s' non trouvée", id))
		return
	}
	c.JSON(nethttp.StatusOK, gin.H{"message": fmt.Sprintf("Session '%s' supprimée avec succès", id)})
}

func (h *handlers) adminStats(c *gin.Context) {
	c.JSON(nethttp.StatusOK, h.ports.Chat.AdminStats())
}

func (h *handlers) cleanup(c *gin.Context) {
	count := h.ports.Sessions.SweepExpired()
	c.JSON(nethttp.StatusOK, gin.H{"message": fmt.Sprintf("%d sessions expirées supprimées", count)})
}

func (h *handlers) knowledgeBase(c *gin.Context) {
	stats := h.ports.Search.Stats()
	status := "not_loaded"
	if h.ports.Search.Initialized() {
		status = "loaded"
	}
	c.JSON(nethttp.StatusOK, knowledgeBaseResponse{
		TotalChunks: stats.TotalChunks,
		FilesLoaded: stats.FilesLoaded,
		FileDetails: stats.FileDetails,
		Status:      status,
	})
}

func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}
