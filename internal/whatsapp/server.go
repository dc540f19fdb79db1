package whatsapp

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"financebot/internal/pipeline"
)

// Responder turns a free-text user message into a reply.
type Responder interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Sender delivers a text reply to a phone number.
type Sender interface {
	SendText(ctx context.Context, to, body string) error
}

// Server exposes the webhook endpoints the WhatsApp Cloud API calls:
// GET /webhook for the verification handshake and POST /webhook for
// incoming message notifications.
type Server struct {
	verifyToken string
	responder   Responder
	sender      Sender
}

func NewServer(verifyToken string, responder Responder, sender Sender) *Server {
	return &Server{
		verifyToken: verifyToken,
		responder:   responder,
		sender:      sender,
	}
}

// Router builds the gin engine with the webhook routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/webhook", s.verify)
	router.POST("/webhook", s.receive)

	return router
}

func (s *Server) verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken {
		log.Println("[Server.verify] webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}

	c.String(http.StatusForbidden, "Failed validation")
}

func (s *Server) receive(c *gin.Context) {
	var payload Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Println("[Server.receive] invalid payload:", err)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	from, body, ok := payload.FirstTextMessage()
	if !ok {
		// Status updates and non-text events are acknowledged and dropped.
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	log.Printf("[Server.receive] message from %s: %s", from, body)

	ctx := c.Request.Context()
	reply, err := s.responder.Answer(ctx, body)
	if err != nil {
		log.Println("[Server.receive] answer failed:", err)
		reply = pipeline.ApologyReply
	}

	if err := s.sender.SendText(ctx, from, reply); err != nil {
		log.Println("[Server.receive] failed to send reply:", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
