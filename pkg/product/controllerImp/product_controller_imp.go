package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/ai"
	"farmops/pkg/product/repository"
)

type ProductCtrl struct {
	repo     repository.ProductRepository
	llm      ai.Client
	allow    map[string]bool
	maxBytes int
}

func New(repo repository.ProductRepository, llm ai.Client, allowDomains []string, maxBytes int) *ProductCtrl {
	allow := map[string]bool{}
	for _, h := range allowDomains {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &ProductCtrl{repo: repo, llm: llm, allow: allow, maxBytes: maxBytes}
}

type productReq struct {
	Name         string                `json:"name" validate:"required"`
	Manufacturer string                `json:"manufacturer"`
	Roles        []string              `json:"roles"`
	Chemical     entities.ChemicalData `json:"chemical"`
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	p := &entities.Product{Name: req.Name, Manufacturer: req.Manufacturer, Roles: req.Roles, Chemical: req.Chemical}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Manufacturer != "" {
		p.Manufacturer = req.Manufacturer
	}
	if req.Roles != nil {
		p.Roles = req.Roles
	}
	p.Chemical = req.Chemical
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ExtractLabel takes raw label text or a label URL and runs the chemical
// extraction model over it. The result is returned for review, not saved.
func (h *ProductCtrl) ExtractLabel(c echo.Context) error {
	var body struct {
		Text string `json:"text"`
		URL  string `json:"url"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	text := strings.TrimSpace(body.Text)
	if text == "" && body.URL != "" {
		u, err := url.Parse(body.URL)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
		}
		host := strings.ToLower(u.Host)
		if !h.allow[host] {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
		}
		fetched, err := fetchLabelText(body.URL, h.maxBytes)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		text = fetched
	}
	if text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text or url required"})
	}

	out, err := h.llm.ExtractLabel(text)
	if err != nil {
		return c.JSON(aiStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) SuggestRoles(c echo.Context) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name required"})
	}
	out, err := h.llm.SuggestRoles(body.Name, body.Description)
	if err != nil {
		return c.JSON(aiStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func aiStatus(err error) int {
	switch {
	case errors.Is(err, ai.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ai.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ai.ErrCreditsExhausted):
		return http.StatusPaymentRequired
	case errors.Is(err, ai.ErrExtractionFailed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

// --- helpers ---
func fetchLabelText(u string, maxBytes int) (string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "text/plain") {
		return string(b), nil
	}
	if !strings.Contains(ct, "text/html") {
		return "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li,td").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return cleanWhitespace(strings.Join(parts, "\n")), nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}
