package pages

import (
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/ui/gate"

	. "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// appPage wraps body in the console shell. Navigation entries are gated on
// READ for their resource so a user never sees a link to a page they cannot open.
func appPage(title, active string, s gate.Session, body ...Node) Node {
	nav := make([]Node, 0, len(sections))
	for _, item := range sections {
		className := "app-nav-link"
		if item.Key == active {
			className += " active"
		}
		nav = append(nav, gate.PermissionGate(s, item.Resource, access.ActionRead,
			h.A(h.Href(item.Href), h.Class(className), Text(item.Label)),
		))
	}

	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(Text(title+" | Finance Console")),
		),
		h.Body(
			h.Main(h.Class("app-shell"),
				h.Aside(h.Class("app-sidebar"),
					h.Div(h.Class("brand"), h.A(h.Href("/ui/dashboard"), h.Strong(Text("Finance Console")))),
					h.Nav(h.Class("app-nav"), Group(nav)),
				),
				h.Section(h.Class("app-main"),
					h.Div(h.Class("topbar"),
						h.H1(h.Class("page-title"), Text(title)),
						signedInAs(s),
					),
					h.Div(h.Class("content"), Group(body)),
				),
			),
		),
	)
}

func signedInAs(s gate.Session) Node {
	u, ok := s.User()
	if !ok {
		return h.P(h.Class("muted"), Text("Loading session…"))
	}
	return h.Div(
		h.P(h.Class("muted"), Text("Signed in as "+u.Username+" ("+roleLabel(u.Role)+")")),
		h.Form(h.Method("post"), h.Action("/auth/logout"),
			h.Button(h.Type("submit"), h.Class("btn btn-sm"), Text("Sign out")),
		),
	)
}

var roleLabels = map[domain.Role]string{
	domain.RoleSuperAdmin:     "Super admin",
	domain.RoleAdmin:          "Admin",
	domain.RoleFinanceManager: "Finance manager",
	domain.RoleAccountant:     "Accountant",
	domain.RoleManager:        "Manager",
	domain.RoleEmployee:       "Employee",
}

func roleLabel(r domain.Role) string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return roleLabels[domain.RoleDefault]
}

func card(title string, body ...Node) Node {
	return h.Div(h.Class("card"),
		h.H2(h.Class("card-title"), Text(title)),
		Group(body),
	)
}

// actionLink points at another console page; href must be a routed section.
func actionLink(label, href string) Node {
	return h.A(h.Href(href), h.Class("btn btn-sm"), Text(label))
}

// actionButton is an in-page action handled client side.
func actionButton(label, action string) Node {
	return h.Button(h.Type("button"), h.Class("btn btn-sm"), Attr("data-action", action), Text(label))
}

func noAccess(what string) Node {
	return h.P(h.Class("muted"), Text("You do not have access to "+what+"."))
}
