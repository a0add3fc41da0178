// Package site serves the server-rendered landing page, the FAQ as HTML and
// JSON, and the embedded static assets.
//
// Each request builds its own faq.Accordion from the immutable items, so no
// render state is shared between requests. The open item comes from the
// query string; toggle links carry the next state, which keeps the
// accordion usable without JavaScript.
package site

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nestera/nestera-web/errors"
	"github.com/nestera/nestera-web/faq"
	"github.com/nestera/nestera-web/logger"
	"github.com/nestera/nestera-web/modules"
	"github.com/nestera/nestera-web/server"
	"github.com/nestera/nestera-web/validation"
	"github.com/nestera/nestera-web/web"
)

// Name is the module name.
const Name = "site"

const pageTitle = "Nestera | On-chain stablecoin savings"

var _ modules.Module = (*Module)(nil)

// Module renders the landing page.
type Module struct {
	cfg   Config
	hero  Hero
	items []faq.Item
	tmpl  *template.Template
	log   *logger.Logger
}

// New creates the site module from a defaulted, validated config.
func New(cfg Config) *Module {
	return &Module{
		cfg:   cfg,
		hero:  DefaultHero(cfg.LaunchURL),
		items: faq.DefaultItems(),
	}
}

// Name implements modules.Module.
func (m *Module) Name() string { return Name }

// Mount parses the templates and registers the page, FAQ and asset routes.
func (m *Module) Mount(h *modules.Host) error {
	tmpl, err := web.Templates(template.FuncMap{})
	if err != nil {
		return err
	}
	m.tmpl = tmpl
	m.log = h.Logger

	h.Router.GET("/", m.index)
	h.Router.GET("/faq", m.fragment)
	h.Router.GET("/api/faq", m.faqJSON)
	h.Router.StaticFS("/static", http.FS(web.Static()))
	return nil
}

type faqItem struct {
	faq.ItemView
	Href string
}

type faqSection struct {
	Title string
	Open  int
	Items []faqItem
}

type page struct {
	Title   string
	BaseURL string
	Hero    Hero
	FAQ     faqSection
}

// FAQResponse is the body of GET /api/faq.
type FAQResponse struct {
	Title string         `json:"title"`
	Open  int            `json:"open"`
	Items []faq.ItemView `json:"items"`
}

// accordion builds a measured accordion with the given item open.
func (m *Module) accordion(open int) *faq.Accordion {
	acc := faq.New(m.items)
	acc.Measure(faq.EstimateHeight)
	acc.Open(open)
	return acc
}

// pageOpen reads ?faq=. Anything that is not a valid index collapses the list.
func (m *Module) pageOpen(c *gin.Context) int {
	i, err := strconv.Atoi(c.Query("faq"))
	if err != nil || i < 0 || i >= len(m.items) {
		return faq.None
	}
	return i
}

func (m *Module) section(acc *faq.Accordion) faqSection {
	views := acc.View()
	items := make([]faqItem, len(views))
	for i, v := range views {
		items[i] = faqItem{ItemView: v, Href: toggleHref(v.Target)}
	}
	return faqSection{Title: FAQTitle, Open: acc.OpenIndex(), Items: items}
}

// toggleHref links to the page state after a toggle.
func toggleHref(target int) string {
	if target == faq.None {
		return "/#faq"
	}
	return "/?faq=" + strconv.Itoa(target) + "#" + faq.QuestionID(target)
}

func (m *Module) index(c *gin.Context) {
	m.render(c, "index", page{
		Title:   pageTitle,
		BaseURL: m.cfg.BaseURL,
		Hero:    m.hero,
		FAQ:     m.section(m.accordion(m.pageOpen(c))),
	})
}

func (m *Module) fragment(c *gin.Context) {
	m.render(c, "fragment", page{FAQ: m.section(m.accordion(m.pageOpen(c)))})
}

func (m *Module) faqJSON(c *gin.Context) {
	open := faq.None
	if raw, ok := c.GetQuery("open"); ok {
		if appErr := validation.NewParams().Int("open", raw, faq.None, len(m.items)-1, &open).Err(); appErr != nil {
			server.RespondWithError(c, appErr.WithDetail("parameter", "open"))
			return
		}
	}

	acc := m.accordion(open)
	server.RespondOK(c, FAQResponse{Title: FAQTitle, Open: acc.OpenIndex(), Items: acc.View()})
}

func (m *Module) render(c *gin.Context, name string, data page) {
	var buf bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		if m.log != nil {
			m.log.Error("Template render failed", map[string]interface{}{
				"template":        name,
				logger.FieldError: err.Error(),
			})
		}
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
