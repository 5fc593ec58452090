package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/cep"
)

type CEPHandler struct {
	client *cep.Client
}

func NewCEPHandler(client *cep.Client) *CEPHandler {
	return &CEPHandler{client: client}
}

// Lookup consulta o CEP no ViaCEP (com cache). Qualquer falha vira
// {"success": false}: formato errado, CEP inexistente, timeout ou
// erro de rede. Nunca responde erro HTTP.
func (h *CEPHandler) Lookup(c *gin.Context) {
	result := h.client.Lookup(c.Request.Context(), c.Param("cep"))
	c.JSON(200, result)
}
