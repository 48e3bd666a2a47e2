package router

import "github.com/labstack/echo/v4"

// Pages is the set of endpoints the web shell mounts.  The handler
// package implements it; accepting the interface here keeps this
// package free of a dependency on the handlers it dispatches to.
type Pages interface {
	Health(c echo.Context) error
	Page(c echo.Context) error
	ToggleSeat(c echo.Context) error
	NextStep(c echo.Context) error
	PrevStep(c echo.Context) error
	Pay(c echo.Context) error
}

// RegisterRoutes wires the application onto the Echo instance.  Page
// dispatch is deliberately not Echo's: a single catch-all feeds every
// GET through Match so the route table in the view package stays the
// one source of page routing.  Only the wizard's step transitions and
// the health check are plain Echo endpoints.
func RegisterRoutes(e *echo.Echo, p Pages) {
	e.GET("/healthz", p.Health)

	// Wizard step transitions, one POST per interaction.
	b := e.Group("/booking/:id")
	b.POST("/seats", p.ToggleSeat)
	b.POST("/next", p.NextStep)
	b.POST("/prev", p.PrevStep)
	b.POST("/pay", p.Pay)

	// Everything else is a page.
	e.GET("/", p.Page)
	e.GET("/*", p.Page)
}
