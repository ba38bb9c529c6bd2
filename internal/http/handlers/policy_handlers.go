package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
)

// PolicyHandlers exposes the stored authorization policies on the admin API
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

type policyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// List handles GET /admin/policies
func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"policies": h.policySvc.GetPolicies()})
}

// Add handles POST /admin/policies
func (h *PolicyHandlers) Add(c *gin.Context) {
	var req policyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.policySvc.AddPolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add policy"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// Remove handles DELETE /admin/policies
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var req policyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.policySvc.RemovePolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
