package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/audit"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/config"
	domain "github.com/gestaodeatendimentos/crm-atendimentos/internal/domain/atendimento"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httperr"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httpresp"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/middleware"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/validators"
)

const clientesPerPage = 10

// ======================================================
// HANDLER
// ======================================================

type ClienteHandler struct {
	db     *gorm.DB
	config *config.Config
	repo   domain.Repository
	audit  *audit.Dispatcher
}

func NewClienteHandler(
	db *gorm.DB,
	cfg *config.Config,
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ClienteHandler {
	return &ClienteHandler{db: db, config: cfg, repo: repo, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

// Campos sem binding:"required" de propósito: a engine de validação
// acumula todos os erros de uma vez, em vez do fail-fast do binding.
type ClienteRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	CPF         string `json:"cpf"`
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

func (r *ClienteRequest) form() *validators.ClienteForm {
	return &validators.ClienteForm{
		Nome:        r.Nome,
		Email:       r.Email,
		Telefone:    r.Telefone,
		CPF:         r.CPF,
		CEP:         r.CEP,
		Logradouro:  r.Logradouro,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Bairro:      r.Bairro,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
	}
}

// ======================================================
// UNICIDADE (pré-check amigável; o índice único decide)
// ======================================================

type clienteUniquenessGorm struct {
	db *gorm.DB
}

func (u clienteUniquenessGorm) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	q := u.db.Model(&models.Cliente{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (u clienteUniquenessGorm) CPFTaken(cpfDigits string, excludeID uint) (bool, error) {
	var count int64
	q := u.db.Model(&models.Cliente{}).Where("cpf_digits = ?", cpfDigits)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ======================================================
// LIST
// ======================================================

func (h *ClienteHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	q := h.db.Model(&models.Cliente{})

	if search != "" {
		cond, args := clienteSearchClause(search)
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_clientes", "Erro ao listar clientes.")
		return
	}

	var clientes []models.Cliente
	if err := q.
		Order("nome ASC").
		Limit(clientesPerPage).
		Offset((page - 1) * clientesPerPage).
		Find(&clientes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clientes", "Erro ao listar clientes.")
		return
	}

	httpresp.Paged(c, clientes, page, clientesPerPage, total)
}

// clienteSearchClause monta o predicado do termo de busca: nome e
// email sem caixa, cpf e telefone por substring do valor gravado.
func clienteSearchClause(search string) (string, []any) {
	like := "%" + search + "%"
	return "LOWER(nome) LIKE ? OR LOWER(email) LIKE ? OR cpf LIKE ? OR telefone LIKE ?",
		[]any{like, like, like, like}
}

// ======================================================
// GET
// ======================================================

func (h *ClienteHandler) Get(c *gin.Context) {
	var cliente models.Cliente
	if err := h.db.First(&cliente, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, cliente)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClienteHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	form := req.form()
	fe, err := validators.ValidateCliente(form, validators.ClienteOptions{
		StrictCPF:  h.config.StrictCPF,
		Uniqueness: clienteUniquenessGorm{db: h.db},
	})
	if err != nil {
		httperr.Internal(c, "validation_query_failed", "Erro ao validar cliente.")
		return
	}
	if !fe.Empty() {
		httperr.Validation(c, fe)
		return
	}

	cliente := models.Cliente{
		Nome:        strings.TrimSpace(req.Nome),
		Email:       form.EmailNormalized(),
		Telefone:    req.Telefone,
		CPF:         req.CPF,
		CPFDigits:   form.CPFDigits(),
		CEP:         req.CEP,
		Logradouro:  req.Logradouro,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		Estado:      strings.ToUpper(strings.TrimSpace(req.Estado)),
	}

	if err := h.db.Create(&cliente).Error; err != nil {
		if fe := duplicateFieldErrors(err); fe != nil {
			httperr.Validation(c, fe)
			return
		}
		httperr.Internal(c, "failed_to_create_cliente", "Erro ao salvar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "cliente_created",
		Entity:    "cliente",
		EntityID:  &cliente.ID,
	})

	c.JSON(201, cliente)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClienteHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var cliente models.Cliente
	if err := h.db.First(&cliente, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	form := req.form()
	fe, err := validators.ValidateCliente(form, validators.ClienteOptions{
		StrictCPF:  h.config.StrictCPF,
		Uniqueness: clienteUniquenessGorm{db: h.db},
		ExcludeID:  cliente.ID,
	})
	if err != nil {
		httperr.Internal(c, "validation_query_failed", "Erro ao validar cliente.")
		return
	}
	if !fe.Empty() {
		httperr.Validation(c, fe)
		return
	}

	cliente.Nome = strings.TrimSpace(req.Nome)
	cliente.Email = form.EmailNormalized()
	cliente.Telefone = req.Telefone
	cliente.CPF = req.CPF
	cliente.CPFDigits = form.CPFDigits()
	cliente.CEP = req.CEP
	cliente.Logradouro = req.Logradouro
	cliente.Numero = req.Numero
	cliente.Complemento = req.Complemento
	cliente.Bairro = req.Bairro
	cliente.Cidade = req.Cidade
	cliente.Estado = strings.ToUpper(strings.TrimSpace(req.Estado))

	if err := h.db.Save(&cliente).Error; err != nil {
		if fe := duplicateFieldErrors(err); fe != nil {
			httperr.Validation(c, fe)
			return
		}
		httperr.Internal(c, "failed_to_update_cliente", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "cliente_updated",
		Entity:    "cliente",
		EntityID:  &cliente.ID,
	})

	httpresp.OK(c, cliente)
}

// ======================================================
// DELETE (cascata para os atendimentos do cliente)
// ======================================================

func (h *ClienteHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var cliente models.Cliente
	if err := h.db.First(&cliente, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}

	if err := h.repo.DeleteClienteCascade(c.Request.Context(), &cliente); err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "referential_integrity_violation", "Cliente possui registros associados.")
			return
		}
		httperr.Internal(c, "failed_to_delete_cliente", "Erro ao excluir cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "cliente_deleted",
		Entity:    "cliente",
		EntityID:  &cliente.ID,
	})

	c.JSON(200, gin.H{"deleted": true})
}

// duplicateFieldErrors traduz a quebra do índice único (a autoridade
// contra corridas) no mesmo formato de rejeição da validação.
func duplicateFieldErrors(err error) validators.FieldErrors {
	if !httperr.IsUniqueViolation(err) {
		return nil
	}

	constraint := httperr.UniqueViolationConstraint(err)
	fe := validators.FieldErrors{}

	switch {
	case strings.Contains(constraint, "cpf"):
		fe.Add("cpf", "duplicate_cpf")
	case strings.Contains(constraint, "email"):
		fe.Add("email", "duplicate_email")
	default:
		fe.Add("email", "duplicate_email")
	}

	return fe
}
