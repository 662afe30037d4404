// Package api exposes the game core over HTTP using the JSON contract
// the web client speaks.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SnickALt21/juego-pardo/internal/clients/telegram"
	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/combat"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/loot"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/matchmaking"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/mission"
)

// Config holds the dependencies for the API handler. Telegram is
// optional; when nil the webhook route replies ok without doing
// anything.
type Config struct {
	Combat      combat.Service
	Loot        loot.Service
	Mission     mission.Service
	Matchmaking matchmaking.Service

	Telegram *telegram.Client
	GameURL  string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Loot == nil {
		vb.RequiredField("Loot")
	}
	if c.Mission == nil {
		vb.RequiredField("Mission")
	}
	if c.Matchmaking == nil {
		vb.RequiredField("Matchmaking")
	}

	return vb.Build()
}

// Handler wires the orchestrators to gin routes
type Handler struct {
	combat      combat.Service
	loot        loot.Service
	mission     mission.Service
	matchmaking matchmaking.Service
	telegram    *telegram.Client
	gameURL     string
}

// NewHandler creates an API handler from the config
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		combat:      cfg.Combat,
		loot:        cfg.Loot,
		mission:     cfg.Mission,
		matchmaking: cfg.Matchmaking,
		telegram:    cfg.Telegram,
		gameURL:     cfg.GameURL,
	}, nil
}

// RegisterRoutes attaches all routes to the engine
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.index)
	router.GET("/health", h.health)
	router.POST("/webhook", h.webhook)

	pve := router.Group("/api/pve")
	pve.POST("/mission/:id", h.startMission)
	pve.POST("/attack", h.attack)
	pve.POST("/complete", h.completeMission)

	pvp := router.Group("/api/pvp")
	pvp.POST("/join_queue", h.joinQueue)
	pvp.POST("/cancel", h.cancelQueue)
	pvp.POST("/attack", h.attack)

	router.GET("/api/marketplace/items", h.marketplaceItems)
}

func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Pardo RPG Bot API",
		"version": "1.0",
		"endpoints": []string{
			"/health",
			"/webhook",
			"/api/pve/mission/<id>",
			"/api/pve/attack",
			"/api/pve/complete",
			"/api/pvp/join_queue",
			"/api/pvp/cancel",
			"/api/pvp/attack",
			"/api/marketplace/items",
		},
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"bot":       "pardo_rpg",
		"missions":  mission.CatalogSize(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type startMissionRequest struct {
	PlayerStats *entities.StatBlock `json:"player_stats"`
}

// startMission returns the briefing for a fight: the enemy stat block
// plus the player's own stats echoed back
func (h *Handler) startMission(c *gin.Context) {
	missionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.writeError(c, errors.InvalidArgument("mission id must be a number"))
		return
	}

	var req startMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlayerStats == nil {
		h.writeError(c, errors.InvalidArgument("player_stats is required"))
		return
	}

	output, err := h.mission.GetMission(c.Request.Context(), &mission.GetMissionInput{ID: missionID})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mission_id": missionID,
		"enemy":      output.Mission,
		"player":     req.PlayerStats,
	})
}

type attackRequest struct {
	Attacker *entities.StatBlock `json:"attacker"`
	Defender *entities.StatBlock `json:"defender"`
}

// attack resolves one exchange; PvE and PvP share the resolver
func (h *Handler) attack(c *gin.Context) {
	var req attackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.InvalidArgument("attacker and defender are required"))
		return
	}

	output, err := h.combat.ResolveAttack(c.Request.Context(), &combat.ResolveAttackInput{
		Attacker: req.Attacker,
		Defender: req.Defender,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Outcome)
}

type completeMissionRequest struct {
	MissionID int    `json:"mission_id"`
	UserID    string `json:"user_id"`
	Victory   bool   `json:"victory"`
}

func (h *Handler) completeMission(c *gin.Context) {
	var req completeMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.InvalidArgument("mission_id and user_id are required"))
		return
	}
	if req.MissionID == 0 || req.UserID == "" {
		h.writeError(c, errors.InvalidArgument("mission_id and user_id are required"))
		return
	}

	output, err := h.mission.CompleteMission(c.Request.Context(), &mission.CompleteMissionInput{
		ID:      req.MissionID,
		Victory: req.Victory,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Reward)
}

type joinQueueRequest struct {
	UserID string             `json:"user_id"`
	Level  int                `json:"level"`
	Stats  entities.StatBlock `json:"stats"`
}

func (h *Handler) joinQueue(c *gin.Context) {
	var req joinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.InvalidArgument("user_id and level are required"))
		return
	}

	output, err := h.matchmaking.JoinQueue(c.Request.Context(), &matchmaking.JoinQueueInput{
		PlayerID: req.UserID,
		Level:    req.Level,
		Stats:    req.Stats,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if !output.MatchFound {
		c.JSON(http.StatusOK, gin.H{
			"match_found": false,
			"message":     "Buscando oponente...",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"match_found": true,
		"opponent":    output.Opponent,
		"match_id":    output.MatchID,
	})
}

type cancelQueueRequest struct {
	UserID string `json:"user_id"`
}

func (h *Handler) cancelQueue(c *gin.Context) {
	var req cancelQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.InvalidArgument("user_id is required"))
		return
	}

	output, err := h.matchmaking.LeaveQueue(c.Request.Context(), &matchmaking.LeaveQueueInput{
		PlayerID: req.UserID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": output.Removed})
}

// marketplaceItems returns the full catalog, or a single slot's list
// when the type query parameter is present
func (h *Handler) marketplaceItems(c *gin.Context) {
	slot := entities.EquipmentSlot(c.Query("type"))

	output, err := h.loot.ListMarketplace(c.Request.Context(), &loot.ListMarketplaceInput{Slot: slot})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if slot != "" {
		items := output.Catalog[slot]
		if items == nil {
			items = []entities.Item{}
		}
		c.JSON(http.StatusOK, items)
		return
	}

	c.JSON(http.StatusOK, output.Catalog)
}

// webhook handles incoming Telegram updates. Telegram retries
// non-200 responses, so parse failures still answer ok.
func (h *Handler) webhook(c *gin.Context) {
	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		slog.Error("Failed to parse webhook update", "error", err)
		c.String(http.StatusOK, "ok")
		return
	}

	if h.telegram != nil && update.Message != nil && update.Message.Text == "/start" {
		username := "Usuario"
		if update.Message.From != nil && update.Message.From.Username != "" {
			username = update.Message.From.Username
		}

		welcome := fmt.Sprintf(
			"¡Bienvenido %s! 🚀\n\n🗡️ Nivel 1-10: Completa misiones PVE\n⚔️ Nivel 10+: Combate PVP en tiempo real\n\nHaz clic para empezar tu aventura.",
			username,
		)

		if err := h.telegram.SendGameButton(c.Request.Context(), update.Message.Chat.ID, welcome, h.gameURL); err != nil {
			slog.Error("Failed to send welcome message",
				"chat_id", update.Message.Chat.ID,
				"error", err,
			)
		}
	}

	c.String(http.StatusOK, "ok")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	c.JSON(errors.HTTPStatus(err), errors.HTTPBody(err))
}
