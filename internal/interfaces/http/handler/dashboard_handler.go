package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	app "ecomdash/internal/application/dashboard"
)

type DashboardHandler struct {
	svc *app.Service
}

func NewDashboardHandler(svc *app.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetDashboard runs the derivation battery for the requested state selection.
// The states parameter may repeat and/or hold comma-separated values; absent
// means every state, states= (present but empty) is a valid empty selection.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	states := parseStates(c)

	r, err := h.svc.BuildReport(c.Request.Context(), states)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, r)
}

// GetStates returns the distinct customer states, the default filter set.
func (h *DashboardHandler) GetStates(c *gin.Context) {
	states, err := h.svc.States(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": states})
}

func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseStates distinguishes "no filter given" (nil) from "everything
// deselected" (empty slice): both are legal, only the former defaults to all.
func parseStates(c *gin.Context) []string {
	values, present := c.Request.URL.Query()["states"]
	if !present {
		return nil
	}

	states := []string{}
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				states = append(states, s)
			}
		}
	}
	return states
}
