package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/validators"
)

// Result é o contrato do lookup: Found=false cobre CEP inexistente,
// resposta malformada, timeout e erro de rede. Nunca vira erro fatal.
type Result struct {
	Found      bool   `json:"success"`
	Logradouro string `json:"logradouro,omitempty"`
	Bairro     string `json:"bairro,omitempty"`
	Cidade     string `json:"cidade,omitempty"`
	Estado     string `json:"estado,omitempty"`
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

type Client struct {
	baseURL string
	http    *http.Client

	cache    *redis.Client
	cacheTTL time.Duration
}

// NewClient monta o cliente ViaCEP. cache pode ser nil; sem redis o
// lookup vai direto no serviço.
func NewClient(baseURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// NewRedisClient conecta no redis; devolve nil se o endereço estiver
// vazio ou o ping falhar, e o chamador degrada sem cache.
func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, cep cache disabled: %v", err)
		return nil
	}

	return client
}

// Lookup normaliza o CEP para 8 dígitos e consulta cache → ViaCEP.
func (c *Client) Lookup(ctx context.Context, cep string) Result {
	digits := validators.Digits(cep)
	if len(digits) != 8 {
		return Result{Found: false}
	}

	if cached, ok := c.fromCache(ctx, digits); ok {
		return cached
	}

	res := c.fetch(ctx, digits)
	c.store(ctx, digits, res)
	return res
}

func (c *Client) fetch(ctx context.Context, digits string) Result {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, digits)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Found: false}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Found: false}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Found: false}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{Found: false}
	}

	var data viaCEPResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return Result{Found: false}
	}

	// ViaCEP responde 200 com {"erro": true} para CEP inexistente.
	if data.Erro != nil && data.Erro != false {
		return Result{Found: false}
	}

	return Result{
		Found:      true,
		Logradouro: data.Logradouro,
		Bairro:     data.Bairro,
		Cidade:     data.Localidade,
		Estado:     data.UF,
	}
}

func (c *Client) fromCache(ctx context.Context, digits string) (Result, bool) {
	if c.cache == nil {
		return Result{}, false
	}

	raw, err := c.cache.Get(ctx, cacheKey(digits)).Result()
	if err != nil {
		return Result{}, false
	}

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, false
	}
	return res, true
}

func (c *Client) store(ctx context.Context, digits string, res Result) {
	if c.cache == nil || !res.Found {
		return
	}

	if b, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, cacheKey(digits), b, c.cacheTTL)
	}
}

func cacheKey(digits string) string {
	return "cep:" + digits
}
