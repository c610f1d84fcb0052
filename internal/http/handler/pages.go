package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const pageHeading = "Hello There!"

type pageData struct {
	Title   string
	Heading string
}

// LandingPage renders the public placeholder page.
func LandingPage() fiber.Handler {
	return renderPage("landing.html", pageData{Title: "Landing", Heading: pageHeading})
}

// DashboardPage renders the dashboard shell.
func DashboardPage() fiber.Handler {
	return renderPage("dashboard.html", pageData{Title: "Dashboard", Heading: pageHeading})
}

func renderPage(name string, data pageData) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
			return err
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	}
}
